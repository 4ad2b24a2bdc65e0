package api

import (
	"strings"

	"financas/internal/api/handlers"
	"financas/pkg/auth"
	"financas/pkg/config"
	"financas/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Transaction *handlers.TransactionHandler
	Summary     *handlers.SummaryHandler
	Goal        *handlers.GoalHandler
	Investment  *handlers.InvestmentHandler
	Settings    *handlers.SettingsHandler
	Stock       *handlers.StockHandler
	Chat        *handlers.ChatHandler
	Public      *handlers.PublicHandler
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, cfg *config.ServerConfig, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowedOrigins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	}))
	app.Use(logger.New())

	// Health checks
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Financas API",
			"status":  "running",
		})
	})
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// OAuth flow (public)
	app.Get("/login/google", h.Auth.LoginGoogle)
	app.Get("/callback/google", h.Auth.CallbackGoogle)
	app.Post("/api/logout", h.Auth.Logout)

	// Stock data (public, mirrors the market-data provider)
	app.Get("/api/stock/quote/:symbol", h.Stock.DetailedQuote)
	app.Get("/api/stock/:symbol", h.Stock.Quote)
	app.Get("/api/stocks/search", h.Stock.Search)

	// Read-only web services (no session)
	ws := app.Group("/ws/users/:id")
	ws.Get("/transactions", h.Public.Transactions)
	ws.Get("/summary", h.Public.Summary)
	ws.Get("/savings-goals", h.Public.SavingsGoals)

	// Protected routes
	protected := app.Group("/api", middleware.Session(jwtManager, appLogger))
	protected.Get("/dashboard", h.Auth.Dashboard)
	protected.Get("/categories", h.Transaction.ListCategories)
	protected.Get("/transactions", h.Transaction.List)
	protected.Post("/transactions", h.Transaction.Add)
	protected.Get("/activity-summary", h.Summary.ActivitySummary)
	protected.Get("/financial-health", h.Summary.FinancialHealth)
	protected.Get("/savings-goals", h.Goal.List)
	protected.Post("/savings-goals", h.Goal.Create)
	protected.Put("/savings-goals/:id", h.Goal.Update)
	protected.Delete("/savings-goals/:id", h.Goal.Delete)
	protected.Get("/user/settings", h.Settings.Get)
	protected.Put("/user/settings", h.Settings.Update)
	protected.Post("/user/settings", h.Settings.Update)
	protected.Get("/investments/stocks", h.Investment.List)
	protected.Post("/investments/stocks", h.Investment.Add)
	protected.Put("/investments/stocks/:id", h.Investment.Update)
	protected.Delete("/investments/stocks/:id", h.Investment.Delete)
	protected.Post("/chat", h.Chat.Chat)

	return app
}
