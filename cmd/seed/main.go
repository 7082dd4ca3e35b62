package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mywallet/internal/config"
	"mywallet/internal/db"
	"mywallet/internal/model"
	"mywallet/internal/repository"
)

const (
	demoName     = "Demo User"
	demoEmail    = "demo@mywallet.local"
	demoPassword = "demo1234"
)

// demoTransactions is the initial ledger for the demo user.
var demoTransactions = []struct {
	txType      model.TransactionType
	amount      string
	description string
}{
	{model.TransactionCredit, "2500.00", "salary"},
	{model.TransactionDebit, "42.50", "groceries"},
	{model.TransactionDebit, "120.00", "electricity bill"},
	{model.TransactionCredit, "300.00", "freelance gig"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Transaction{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	transactionRepo := repository.NewTransactionRepository(gormDB)

	user, err := seedUser(ctx, userRepo, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}

	created, err := seedLedger(ctx, transactionRepo, user.ID)
	if err != nil {
		log.Fatalf("Failed to seed transactions: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Demo login: %s / %s", demoEmail, demoPassword)
	log.Printf("  - Transactions created: %d", created)
}

// seedUser creates the demo user, or returns the existing one.
func seedUser(ctx context.Context, repo repository.UserRepository, bcryptCost int) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, demoEmail)
	if err == nil {
		log.Printf("Demo user already exists (id=%d)", existing.ID)
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         demoName,
		Email:        demoEmail,
		PasswordHash: string(hash),
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	log.Printf("Created demo user (id=%d)", user.ID)
	return user, nil
}

// seedLedger appends the demo transactions unless the user already has some.
func seedLedger(ctx context.Context, repo repository.TransactionRepository, userID uint) (int, error) {
	existing, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		log.Printf("Demo user already has %d transactions, skipping ledger seed", len(existing))
		return 0, nil
	}

	created := 0
	for _, entry := range demoTransactions {
		amount, err := decimal.NewFromString(entry.amount)
		if err != nil {
			return created, err
		}
		tx := &model.Transaction{
			Type:        entry.txType,
			Amount:      amount,
			Description: entry.description,
			UserID:      userID,
			Date:        time.Now().Format(model.DateLayout),
		}
		if err := repo.Create(ctx, tx); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
