package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"mywallet/internal/model"
	"mywallet/internal/repository"
)

// LedgerService handles the append-only transaction ledger of a user.
type LedgerService interface {
	Add(ctx context.Context, userID uint, txType model.TransactionType, amount decimal.Decimal, description string) (*model.Transaction, error)
	List(ctx context.Context, userID uint) ([]model.Transaction, decimal.Decimal, error)
}

type ledgerService struct {
	transactionRepo repository.TransactionRepository
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(transactionRepo repository.TransactionRepository) LedgerService {
	return &ledgerService{transactionRepo: transactionRepo}
}

// Add appends one transaction scoped to userID, stamped with the current
// day/month date.
func (s *ledgerService) Add(ctx context.Context, userID uint, txType model.TransactionType, amount decimal.Decimal, description string) (*model.Transaction, error) {
	tx := &model.Transaction{
		Type:        txType,
		Amount:      amount,
		Description: description,
		UserID:      userID,
		Date:        time.Now().Format(model.DateLayout),
	}

	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	return tx, nil
}

// List returns the user's transactions in insertion order together with
// the balance: the signed sum of amounts, credits adding and debits
// subtracting.
func (s *ledgerService) List(ctx context.Context, userID uint) ([]model.Transaction, decimal.Decimal, error) {
	transactions, err := s.transactionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("list transactions: %w", err)
	}

	balance := decimal.Zero
	for i := range transactions {
		balance = balance.Add(transactions[i].Signed())
	}

	return transactions, balance, nil
}
