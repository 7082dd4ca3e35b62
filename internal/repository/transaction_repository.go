package repository

import (
	"context"

	"gorm.io/gorm"

	"mywallet/internal/model"
)

// TransactionRepository defines persistence operations for ledger entries.
// The ledger is append-only: there are no update or delete methods.
type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	ListByUser(ctx context.Context, userID uint) ([]model.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository builds a GORM-backed repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *model.Transaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// ListByUser returns the user's transactions in insertion order.
func (r *transactionRepository) ListByUser(ctx context.Context, userID uint) ([]model.Transaction, error) {
	var transactions []model.Transaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}
