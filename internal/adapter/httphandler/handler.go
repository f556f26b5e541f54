package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/niksmo/emi-catalog/internal/core/domain"
	"github.com/niksmo/emi-catalog/internal/core/port"
	"github.com/niksmo/emi-catalog/pkg/emi"
)

// GET  api/products (200 OK)
// POST api/products/newProduct JSON (201 Created, 400 Bad request, 409 Conflict)
// GET  api/products/singleProduct/{productName} (200 OK)

type ProductsHandler struct {
	creator port.ProductsCreator
	reader  port.ProductsReader
}

func RegisterProducts(
	mux *http.ServeMux, c port.ProductsCreator, r port.ProductsReader,
) {
	h := ProductsHandler{c, r}
	mux.HandleFunc("GET /api/products", h.ListProducts)
	mux.HandleFunc("GET /api/products/{$}", h.ListProducts)
	mux.HandleFunc("POST /api/products/newProduct", h.CreateProduct)
	mux.HandleFunc("GET /api/products/singleProduct/{productName}", h.FindProductsByName)
}

func (h ProductsHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.CreateProduct"

	var req createProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, op, err)
		return
	}

	p, err := h.creator.CreateProduct(r.Context(), req.toDomain())
	if err != nil {
		writeError(w, r, op, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, toProductResponse(p))
	slog.Info("product created", "op", op, "productID", p.ID)
}

func (h ProductsHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.ListProducts"

	vs, err := h.reader.ListProducts(r.Context())
	if err != nil {
		writeError(w, r, op, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, toProductViewResponses(vs))
}

func (h ProductsHandler) FindProductsByName(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.FindProductsByName"

	vs, err := h.reader.FindProductsByName(r.Context(), r.PathValue("productName"))
	if err != nil {
		writeError(w, r, op, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, toProductViewResponses(vs))
}

// POST api/emi/createEmi JSON (201 Created, 400 Bad request)
// POST api/emi/insertMultipleEmi JSON {"emiPlans": [...]} (201 Created, 400 Bad request)
// GET  api/emi/emiByProduct?productId=id (200 OK, 400 Bad request)
// GET  api/emi/quote?principal=p&interestRate=r&tenureMonths=n (200 OK, 400 Bad request)

type EMIPlansHandler struct {
	creator port.EMIPlansCreator
	reader  port.EMIPlansReader
}

func RegisterEMIPlans(
	mux *http.ServeMux, c port.EMIPlansCreator, r port.EMIPlansReader,
) {
	h := EMIPlansHandler{c, r}
	mux.HandleFunc("POST /api/emi/createEmi", h.CreateEMIPlan)
	mux.HandleFunc("POST /api/emi/insertMultipleEmi", h.InsertEMIPlans)
	mux.HandleFunc("GET /api/emi/emiByProduct", h.EMIPlansByProduct)
	mux.HandleFunc("GET /api/emi/quote", h.Quote)
}

func (h EMIPlansHandler) CreateEMIPlan(w http.ResponseWriter, r *http.Request) {
	const op = "EMIPlansHandler.CreateEMIPlan"

	var req emiPlanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, op, err)
		return
	}

	p, err := h.creator.CreateEMIPlan(r.Context(), req.toDomain())
	if err != nil {
		writeError(w, r, op, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, toEMIPlanResponses([]domain.EMIPlan{p})[0])
}

func (h EMIPlansHandler) InsertEMIPlans(w http.ResponseWriter, r *http.Request) {
	const op = "EMIPlansHandler.InsertEMIPlans"

	var req insertEMIPlansRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, op, err)
		return
	}

	if len(req.EMIPlans) == 0 {
		writeError(w, r, op, domain.ErrNoPlans)
		return
	}

	plans := make([]domain.EMIPlan, len(req.EMIPlans))
	for i, p := range req.EMIPlans {
		plans[i] = p.toDomain()
	}

	created, err := h.creator.InsertEMIPlans(r.Context(), plans)
	if err != nil {
		writeError(w, r, op, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, toEMIPlanResponses(created))
	slog.Info("emi plans inserted", "op", op, "nPlans", len(created))
}

func (h EMIPlansHandler) EMIPlansByProduct(w http.ResponseWriter, r *http.Request) {
	const op = "EMIPlansHandler.EMIPlansByProduct"

	productID := r.URL.Query().Get("productId")
	if productID == "" {
		writeError(w, r, op, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "productId", Message: "productId is required"},
		}})
		return
	}

	vs, err := h.reader.EMIPlansByProduct(r.Context(), productID)
	if err != nil {
		writeError(w, r, op, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, toEMIPlanViewResponses(vs))
}

func (h EMIPlansHandler) Quote(w http.ResponseWriter, r *http.Request) {
	const op = "EMIPlansHandler.Quote"

	principal, rate, tenure, err := parseQuoteQuery(r)
	if err != nil {
		writeError(w, r, op, err)
		return
	}

	q, err := emi.NewQuote(principal, rate, tenure)
	if err != nil {
		writeError(w, r, op, quoteError(err))
		return
	}

	writeSuccess(w, r, http.StatusOK, quoteResponse{
		Principal:     q.Principal.InexactFloat64(),
		InterestRate:  q.InterestRate.InexactFloat64(),
		TenureMonths:  q.TenureMonths,
		MonthlyAmount: q.Monthly.InexactFloat64(),
		TotalPayable:  q.TotalPayable.InexactFloat64(),
		TotalInterest: q.TotalInterest.InexactFloat64(),
	})
}

func parseQuoteQuery(r *http.Request) (principal, rate float64, tenure int, err error) {
	q := r.URL.Query()
	var fields []domain.FieldError

	principal, pErr := strconv.ParseFloat(q.Get("principal"), 64)
	if pErr != nil {
		fields = append(fields, domain.FieldError{
			Field: "principal", Message: "principal must be a number",
		})
	}

	rate, rErr := strconv.ParseFloat(q.Get("interestRate"), 64)
	if rErr != nil {
		fields = append(fields, domain.FieldError{
			Field: "interestRate", Message: "interestRate must be a number",
		})
	}

	tenure, tErr := strconv.Atoi(q.Get("tenureMonths"))
	if tErr != nil {
		fields = append(fields, domain.FieldError{
			Field: "tenureMonths", Message: "tenureMonths must be an integer",
		})
	}

	if len(fields) != 0 {
		return 0, 0, 0, &domain.ValidationError{Fields: fields}
	}
	return principal, rate, tenure, nil
}

func quoteError(err error) error {
	field := "principal"
	switch {
	case errors.Is(err, emi.ErrInvalidTenure), errors.Is(err, emi.ErrOverflow):
		field = "tenureMonths"
	case errors.Is(err, emi.ErrNegativeRate):
		field = "interestRate"
	}
	return &domain.ValidationError{Fields: []domain.FieldError{
		{Field: field, Message: field + ": " + err.Error()},
	}}
}

// POST api/mutualFunds/createMutualFund JSON (201 Created, 400 Bad request)

type MutualFundsHandler struct {
	creator port.MutualFundsCreator
}

func RegisterMutualFunds(mux *http.ServeMux, c port.MutualFundsCreator) {
	h := MutualFundsHandler{c}
	mux.HandleFunc("POST /api/mutualFunds/createMutualFund", h.CreateMutualFund)
}

func (h MutualFundsHandler) CreateMutualFund(w http.ResponseWriter, r *http.Request) {
	const op = "MutualFundsHandler.CreateMutualFund"

	var req createMutualFundRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, op, err)
		return
	}

	f, err := h.creator.CreateMutualFund(r.Context(), req.toDomain())
	if err != nil {
		writeError(w, r, op, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, toMutualFundResponse(f))
}

// GET healthz (200 OK, 503 Service unavailable)

func RegisterHealth(mux *http.ServeMux, hc port.HealthChecker) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		const op = "httphandler.Health"

		if err := hc.Ping(r.Context()); err != nil {
			slog.Warn("database is unreachable", "op", op, "err", err)
			writeJSON(w, r, http.StatusServiceUnavailable,
				errorResponse{Message: "database unavailable"})
			return
		}
		writeSuccess(w, r, http.StatusOK, map[string]string{"database": "up"})
	})
}
