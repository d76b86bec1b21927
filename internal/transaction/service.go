package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

// Service owns all transaction mutations. Ownership is enforced here:
// the owner is taken from the caller identity on create and every
// update or delete verifies the requester against the stored owner
// before touching the record.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	Title       string
	Amount      decimal.Decimal
	Date        time.Time
	Category    Category
	Type        Type
	Frequency   Frequency
	Description string
}

// UpdateParams carries the replaceable fields of an update. Nil fields
// keep their stored value; id and owner are never replaceable.
type UpdateParams struct {
	Title       *string
	Amount      *decimal.Decimal
	Date        *time.Time
	Category    *Category
	Type        *Type
	Frequency   *Frequency
	Description *string
}

// Create validates the payload and persists a new transaction owned by
// ownerID. The owner always comes from the authenticated caller, never
// from the payload. A missing date defaults to the creation time and a
// missing frequency to one-time.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, params CreateParams) (*Transaction, error) {
	tx := &Transaction{
		OwnerID:     ownerID,
		Title:       params.Title,
		Amount:      params.Amount,
		Date:        params.Date,
		Category:    params.Category,
		Type:        params.Type,
		Frequency:   params.Frequency,
		Description: params.Description,
	}

	if tx.Date.IsZero() {
		tx.Date = s.now()
	}

	if tx.Frequency == "" {
		tx.Frequency = FrequencyOneTime
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// List returns every transaction owned by ownerID, newest first.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*Transaction, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Get returns the transaction with the given id if requesterID owns it.
func (s *Service) Get(ctx context.Context, id, requesterID uuid.UUID) (*Transaction, error) {
	return s.authorize(ctx, id, requesterID)
}

// Update overwrites the mutable fields of the transaction with the given
// id. The requester must own the record; the result is validated exactly
// like a create before anything is written.
func (s *Service) Update(ctx context.Context, id, requesterID uuid.UUID, params UpdateParams) (*Transaction, error) {
	tx, err := s.authorize(ctx, id, requesterID)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		tx.Title = *params.Title
	}

	if params.Amount != nil {
		tx.Amount = *params.Amount
	}

	if params.Date != nil {
		tx.Date = *params.Date
	}

	if params.Category != nil {
		tx.Category = *params.Category
	}

	if params.Type != nil {
		tx.Type = *params.Type
	}

	if params.Frequency != nil {
		tx.Frequency = *params.Frequency
	}

	if params.Description != nil {
		tx.Description = *params.Description
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// Delete removes the transaction with the given id. The requester must
// own the record; nothing is deleted otherwise.
func (s *Service) Delete(ctx context.Context, id, requesterID uuid.UUID) error {
	if _, err := s.authorize(ctx, id, requesterID); err != nil {
		return err
	}

	return s.repo.DeleteTransaction(ctx, id)
}

// authorize fetches a transaction and verifies the requester owns it.
// The fetched record is returned so mutations need no second lookup.
func (s *Service) authorize(ctx context.Context, id, requesterID uuid.UUID) (*Transaction, error) {
	tx, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	if tx.OwnerID != requesterID {
		return nil, ErrUnauthorized
	}

	return tx, nil
}
