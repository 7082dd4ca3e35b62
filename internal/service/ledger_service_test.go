package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mywallet/internal/model"
)

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Create(ctx context.Context, tx *model.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListByUser(ctx context.Context, userID uint) ([]model.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func TestLedgerService_Add(t *testing.T) {
	mockRepo := new(MockTransactionRepository)
	var created *model.Transaction
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Transaction")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.Transaction)
		}).Return(nil)

	svc := NewLedgerService(mockRepo)
	tx, err := svc.Add(context.Background(), 7, model.TransactionCredit, decimal.NewFromInt(100), "salary")

	assert.NoError(t, err)
	assert.Same(t, created, tx)
	assert.Equal(t, uint(7), tx.UserID)
	assert.Equal(t, model.TransactionCredit, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "salary", tx.Description)
	// Stamped with today's day/month only.
	assert.Equal(t, time.Now().Format(model.DateLayout), tx.Date)
	mockRepo.AssertExpectations(t)
}

func TestLedgerService_List(t *testing.T) {
	tests := []struct {
		name            string
		transactions    []model.Transaction
		expectedBalance string
	}{
		{
			name:            "empty ledger has zero balance",
			transactions:    []model.Transaction{},
			expectedBalance: "0",
		},
		{
			name: "credits add and debits subtract",
			transactions: []model.Transaction{
				{ID: 1, Type: model.TransactionCredit, Amount: decimal.NewFromInt(100)},
				{ID: 2, Type: model.TransactionDebit, Amount: decimal.NewFromInt(40)},
			},
			expectedBalance: "60",
		},
		{
			name: "balance can go negative",
			transactions: []model.Transaction{
				{ID: 1, Type: model.TransactionCredit, Amount: decimal.RequireFromString("10.50")},
				{ID: 2, Type: model.TransactionDebit, Amount: decimal.RequireFromString("25.25")},
			},
			expectedBalance: "-14.75",
		},
		{
			name: "fractional amounts stay exact",
			transactions: []model.Transaction{
				{ID: 1, Type: model.TransactionCredit, Amount: decimal.RequireFromString("0.10")},
				{ID: 2, Type: model.TransactionCredit, Amount: decimal.RequireFromString("0.20")},
			},
			expectedBalance: "0.30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTransactionRepository)
			mockRepo.On("ListByUser", mock.Anything, uint(7)).Return(tt.transactions, nil)

			svc := NewLedgerService(mockRepo)
			transactions, balance, err := svc.List(context.Background(), 7)

			assert.NoError(t, err)
			assert.Equal(t, tt.transactions, transactions)
			assert.True(t, balance.Equal(decimal.RequireFromString(tt.expectedBalance)),
				"balance = %s, want %s", balance, tt.expectedBalance)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestLedgerService_List_PreservesInsertionOrder(t *testing.T) {
	stored := []model.Transaction{
		{ID: 1, Type: model.TransactionCredit, Amount: decimal.NewFromInt(1), Description: "first"},
		{ID: 2, Type: model.TransactionCredit, Amount: decimal.NewFromInt(2), Description: "second"},
		{ID: 3, Type: model.TransactionCredit, Amount: decimal.NewFromInt(3), Description: "third"},
	}
	mockRepo := new(MockTransactionRepository)
	mockRepo.On("ListByUser", mock.Anything, uint(7)).Return(stored, nil)

	svc := NewLedgerService(mockRepo)
	transactions, _, err := svc.List(context.Background(), 7)

	assert.NoError(t, err)
	descriptions := make([]string, 0, len(transactions))
	for _, tx := range transactions {
		descriptions = append(descriptions, tx.Description)
	}
	assert.Equal(t, []string{"first", "second", "third"}, descriptions)
}
