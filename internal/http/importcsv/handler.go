package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/spendwise/spendwise/internal/auth"
	"github.com/spendwise/spendwise/internal/importer"
	"github.com/spendwise/spendwise/internal/transaction"
)

type Handler struct {
	importSvc *importer.Service
	txSvc     *transaction.Service
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service) *Handler {
	return &Handler{importSvc: importSvc, txSvc: txSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importResponse struct {
	Imported int         `json:"imported"`
	IDs      []uuid.UUID `json:"ids"`
}

// importCSV parses an uploaded statement and creates every row for the
// caller. Rows share the validation rules of manual creation, so the
// first bad row aborts the import with its row number.
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.UserID(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing caller identity")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(importer.FormatCSV, file)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ids := make([]uuid.UUID, 0, len(params))

	for i, p := range params {
		tx, err := h.txSvc.Create(r.Context(), owner, p)
		if err != nil {
			var vErr *transaction.ValidationError
			if errors.As(err, &vErr) {
				respondError(w, http.StatusBadRequest, (&importer.RowError{Row: i + 1, Err: vErr}).Error())
				return
			}

			slog.Error("creating imported transaction", "error", err)
			respondError(w, http.StatusInternalServerError, "internal error")

			return
		}

		ids = append(ids, tx.ID)
	}

	respondJSON(w, http.StatusCreated, importResponse{Imported: len(ids), IDs: ids})
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
