package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/spendwise/internal/transaction"
)

type transactionResponse struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title"`
	Amount      decimal.Decimal       `json:"amount"`
	Date        time.Time             `json:"date"`
	Category    transaction.Category  `json:"category"`
	Type        transaction.Type      `json:"type"`
	Frequency   transaction.Frequency `json:"frequency"`
	Description string                `json:"description,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   *time.Time            `json:"updated_at,omitempty"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	return transactionResponse{
		ID:          tx.ID,
		Title:       tx.Title,
		Amount:      tx.Amount,
		Date:        tx.Date,
		Category:    tx.Category,
		Type:        tx.Type,
		Frequency:   tx.Frequency,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
		UpdatedAt:   tx.UpdatedAt,
	}
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondDomainError maps domain errors to status codes. Validation
// failures echo the offending field; anything unexpected stays opaque.
func respondDomainError(w http.ResponseWriter, err error) {
	var vErr *transaction.ValidationError

	switch {
	case errors.As(err, &vErr):
		respondError(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, transaction.ErrNotFound):
		respondError(w, http.StatusNotFound, "transaction not found")
	case errors.Is(err, transaction.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "not authorized")
	default:
		slog.Error("transaction request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
