package main

import (
	"context"
	"errors"
	"log"
	"time"

	"financas/internal/models"
	"financas/internal/repository"
	"financas/pkg/config"
	"financas/pkg/logger"
	"financas/pkg/postgres"

	"go.uber.org/zap"
)

// Seeds a demo account with categories, a month of transactions, savings
// goals and a small stock portfolio so the frontend has data to show.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	catRepo := repository.NewCategoryRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	goalRepo := repository.NewSavingsGoalRepository(db, appLogger)
	invRepo := repository.NewInvestmentRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	user, err := seedUser(ctx, userRepo)
	if err != nil {
		appLogger.Fatal("Failed to seed demo user", zap.Error(err))
	}
	appLogger.Info("Demo user ready", zap.Int64("user_id", user.ID), zap.String("email", user.Email))

	categories, err := seedCategories(ctx, catRepo, user.ID)
	if err != nil {
		appLogger.Fatal("Failed to seed categories", zap.Error(err))
	}
	appLogger.Info("Categories ready", zap.Int("count", len(categories)))

	if err := seedTransactions(ctx, txRepo, user.ID, categories, appLogger); err != nil {
		appLogger.Fatal("Failed to seed transactions", zap.Error(err))
	}

	if err := seedGoals(ctx, goalRepo, user.ID, appLogger); err != nil {
		appLogger.Fatal("Failed to seed savings goals", zap.Error(err))
	}

	if err := seedInvestments(ctx, invRepo, user.ID, appLogger); err != nil {
		appLogger.Fatal("Failed to seed investments", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func seedUser(ctx context.Context, repo *repository.UserRepository) (*models.User, error) {
	existing, err := repo.GetByExternalID(ctx, "demo-user", "seed")
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user := &models.User{
		ExternalID:  "demo-user",
		Provider:    "seed",
		Email:       "demo@financas.local",
		DisplayName: "Demo",
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func seedCategories(ctx context.Context, repo *repository.CategoryRepository, userID int64) (map[string]int64, error) {
	ids := make(map[string]int64, len(models.DefaultCategories))
	for _, def := range models.DefaultCategories {
		existing, err := repo.GetByName(ctx, userID, def.Name)
		if err == nil {
			ids[def.Name] = existing.ID
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}

		category := &models.Category{
			UserID: userID,
			Name:   def.Name,
			Colour: def.Colour,
		}
		if err := repo.Create(ctx, category); err != nil {
			return nil, err
		}
		ids[def.Name] = category.ID
	}
	return ids, nil
}

func seedTransactions(ctx context.Context, repo *repository.TransactionRepository, userID int64, categories map[string]int64, appLogger *zap.Logger) error {
	existing, err := repo.List(ctx, userID, nil, nil, 1)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		appLogger.Info("Transactions already present, skipping")
		return nil
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	samples := []struct {
		day      int
		txType   models.TransactionType
		amount   float64
		category string
		notes    string
	}{
		{1, models.TypeIncome, 2400, "", "Salário"},
		{2, models.TypeExpense, 850, "Habitação", "Renda"},
		{3, models.TypeExpense, 60, "Serviços", "Eletricidade"},
		{5, models.TypeExpense, 120.50, "Alimentação", "Supermercado"},
		{7, models.TypeExpense, 40, "Transporte", "Passe mensal"},
		{10, models.TypeExpense, 35, "Lazer", "Cinema e jantar"},
		{12, models.TypeExpense, 95.30, "Alimentação", "Supermercado"},
		{15, models.TypeExpense, 25, "Saúde", "Farmácia"},
		{18, models.TypeExpense, 49.99, "Educação", "Curso online"},
		{20, models.TypeExpense, 15.90, "Outros", "Presentes"},
	}

	for _, s := range samples {
		tx := &models.Transaction{
			UserID:   userID,
			Type:     s.txType,
			Amount:   s.amount,
			Currency: "EUR",
			Date:     monthStart.AddDate(0, 0, s.day-1),
			Notes:    s.notes,
		}
		if s.category != "" {
			if id, ok := categories[s.category]; ok {
				catID := id
				tx.CategoryID = &catID
			}
		}
		if err := repo.Create(ctx, tx); err != nil {
			return err
		}
	}

	appLogger.Info("Seeded transactions", zap.Int("count", len(samples)))
	return nil
}

func seedGoals(ctx context.Context, repo *repository.SavingsGoalRepository, userID int64, appLogger *zap.Logger) error {
	existing, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		appLogger.Info("Savings goals already present, skipping")
		return nil
	}

	now := time.Now()
	goals := []models.SavingsGoal{
		{UserID: userID, Name: "Fundo de emergência", TargetAmount: 6000, CurrentAmount: 2500, Deadline: now.AddDate(1, 0, 0)},
		{UserID: userID, Name: "Férias de verão", TargetAmount: 1500, CurrentAmount: 400, Deadline: now.AddDate(0, 8, 0)},
	}
	for i := range goals {
		if err := repo.Create(ctx, &goals[i]); err != nil {
			return err
		}
	}

	appLogger.Info("Seeded savings goals", zap.Int("count", len(goals)))
	return nil
}

func seedInvestments(ctx context.Context, repo *repository.InvestmentRepository, userID int64, appLogger *zap.Logger) error {
	existing, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		appLogger.Info("Investments already present, skipping")
		return nil
	}

	investments := []models.Investment{
		{UserID: userID, Symbol: "AAPL", Quantity: 5, AvgPrice: 190.20, LastPrice: 236.50, Market: "stock", Currency: "USD"},
		{UserID: userID, Symbol: "MSFT", Quantity: 2, AvgPrice: 380.00, LastPrice: 420.75, Market: "stock", Currency: "USD"},
	}
	for i := range investments {
		if err := repo.Create(ctx, &investments[i]); err != nil {
			return err
		}
	}

	appLogger.Info("Seeded investments", zap.Int("count", len(investments)))
	return nil
}
