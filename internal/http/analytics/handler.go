package analytics

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/spendwise/spendwise/internal/analytics"
	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
}

type summaryResponse struct {
	TotalIncome       decimal.Decimal                          `json:"totalIncome"`
	TotalExpenses     decimal.Decimal                          `json:"totalExpenses"`
	Balance           decimal.Decimal                          `json:"balance"`
	TotalTransactions int                                      `json:"totalTransactions"`
	TotalTurnover     decimal.Decimal                          `json:"totalTurnover"`
	IncomeShare       float64                                  `json:"incomeShare"`
	CategoryIncome    map[transaction.Category]decimal.Decimal `json:"categoryWiseIncome"`
	CategoryExpense   map[transaction.Category]decimal.Decimal `json:"categoryWiseExpense"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "missing caller identity", http.StatusUnauthorized)
		return
	}

	txs, err := h.svc.List(r.Context(), owner)
	if err != nil {
		slog.Error("listing transactions for summary", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	s := analytics.Summarize(txs)

	resp := summaryResponse{
		TotalIncome:       s.TotalIncome,
		TotalExpenses:     s.TotalExpenses,
		Balance:           s.Balance,
		TotalTransactions: s.TotalTransactions,
		TotalTurnover:     s.TotalTurnover,
		IncomeShare:       s.IncomeShare(),
		CategoryIncome:    s.CategoryIncome,
		CategoryExpense:   s.CategoryExpense,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
