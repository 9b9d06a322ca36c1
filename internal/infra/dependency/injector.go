// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/config"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/usecase/account"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/usecase/auth"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/usecase/category"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/usecase/ledger"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/usecase/report"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/infra/server/router"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/integration/adapters"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/integration/entrypoint/controller"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/integration/entrypoint/middleware"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	reportRepo := persistence.NewReportRepository(db)
	unitOfWork := persistence.NewUnitOfWork(db)
	tokenStore := persistence.NewRedisTokenStore(redisClient)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
		tokenStore,
	)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(unitOfWork, passwordService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo, transactionRepo)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	accountSummaryUseCase := account.NewAccountSummaryUseCase(accountRepo)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, transactionRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)

	// Create ledger use cases
	createTransactionUseCase := ledger.NewCreateTransactionUseCase(unitOfWork)
	updateTransactionUseCase := ledger.NewUpdateTransactionUseCase(unitOfWork)
	deleteTransactionUseCase := ledger.NewDeleteTransactionUseCase(unitOfWork)

	// Create report use cases
	monthlySummaryUseCase := report.NewMonthlySummaryUseCase(reportRepo)
	dailySummaryUseCase := report.NewDailySummaryUseCase(reportRepo)
	recentTransactionsUseCase := report.NewRecentTransactionsUseCase(reportRepo)
	searchTransactionsUseCase := report.NewSearchTransactionsUseCase(reportRepo)
	exportTransactionsUseCase := report.NewExportTransactionsUseCase(reportRepo)
	dashboardUseCase := report.NewDashboardUseCase(accountRepo, reportRepo)

	// Create controllers
	healthController := controller.NewHealthController()

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	accountController := controller.NewAccountController(
		createAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
		listAccountsUseCase,
		accountSummaryUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		listCategoriesUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		monthlySummaryUseCase,
		dailySummaryUseCase,
		recentTransactionsUseCase,
		searchTransactionsUseCase,
		exportTransactionsUseCase,
	)

	dashboardController := controller.NewDashboardController(dashboardUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		accountController,
		categoryController,
		transactionController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
