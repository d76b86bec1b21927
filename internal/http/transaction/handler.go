package transaction

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/query"
	"github.com/spendwise/spendwise/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// date accepts both RFC 3339 timestamps and bare 2006-01-02 dates,
// which is what browser date inputs submit.
type date struct {
	time.Time
}

func (d *date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return err
	}

	d.Time = t

	return nil
}

type createTransactionRequest struct {
	Title       string                `json:"title"`
	Amount      decimal.Decimal       `json:"amount"`
	Date        date                  `json:"date"`
	Category    transaction.Category  `json:"category"`
	Type        transaction.Type      `json:"type"`
	Frequency   transaction.Frequency `json:"frequency"`
	Description string                `json:"description"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := h.svc.Create(r.Context(), owner, transaction.CreateParams{
		Title:       req.Title,
		Amount:      req.Amount,
		Date:        req.Date.Time,
		Category:    req.Category,
		Type:        req.Type,
		Frequency:   req.Frequency,
		Description: req.Description,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toResponse(tx))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	txs, err := h.svc.List(r.Context(), owner)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	q := r.URL.Query()

	filter := query.Filter{
		Type:     q.Get("type"),
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}

	srt := query.DefaultSort
	if k := query.Key(q.Get("sort")); k.Valid() {
		srt = query.Sort{Key: k, Direction: query.Asc}
		if q.Get("direction") == string(query.Desc) {
			srt.Direction = query.Desc
		}
	}

	txs = query.Order(query.Apply(txs, filter), srt)

	respondJSON(w, http.StatusOK, toResponseList(txs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	tx, err := h.svc.Get(r.Context(), id, owner)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toResponse(tx))
}

type updateTransactionRequest struct {
	Title       *string                `json:"title,omitempty"`
	Amount      *decimal.Decimal       `json:"amount,omitempty"`
	Date        *date                  `json:"date,omitempty"`
	Category    *transaction.Category  `json:"category,omitempty"`
	Type        *transaction.Type      `json:"type,omitempty"`
	Frequency   *transaction.Frequency `json:"frequency,omitempty"`
	Description *string                `json:"description,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := transaction.UpdateParams{
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		Type:        req.Type,
		Frequency:   req.Frequency,
		Description: req.Description,
	}
	if req.Date != nil {
		params.Date = &req.Date.Time
	}

	tx, err := h.svc.Update(r.Context(), id, owner, params)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toResponse(tx))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id, owner); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
