//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/adapter"
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
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/integration/persistence/model"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri      string
	headers  map[string]string
	client   *http.Client
	response *response
	db       *mock.Db

	accessToken       string
	refreshToken      string
	currentUserID     uuid.UUID
	currentUserEmail  string
	currentAccountID  uuid.UUID
	currentCategoryID uuid.UUID
	lastTransactionID string
}

type response struct {
	status int
	body   []byte
}

var serverInit sync.Once
var testDB *mock.Db
var testTokenService adapter.TokenService
var testServerPort int
var portInit sync.Once

var tableModels = map[string]any{
	"users":        &model.UserModel{},
	"accounts":     &model.AccountModel{},
	"categories":   &model.CategoryModel{},
	"transactions": &model.TransactionModel{},
}

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb([]any{
			&model.UserModel{},
			&model.AccountModel{},
			&model.CategoryModel{},
			&model.TransactionModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Setup steps
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in$`, test.theUserIsLoggedIn)
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^an account exists with name "([^"]*)" and balance (-?\d+)$`, test.anAccountExistsWithNameAndBalance)
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentUserEmail = ""
	t.currentAccountID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.lastTransactionID = ""

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			accountRepo := persistence.NewAccountRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			reportRepo := persistence.NewReportRepository(testDB.DbConn)
			unitOfWork := persistence.NewUnitOfWork(testDB.DbConn)
			tokenStore := persistence.NewRedisTokenStore(mock.NewRedis())

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute, 7*24*time.Hour, tokenStore)
			testTokenService = tokenService

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
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

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
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	userID := uuid.New()
	t.currentUserID = userID
	t.currentUserEmail = email

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Nickname:     "Test User",
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedIn() error {
	if t.currentUserID == uuid.Nil {
		return fmt.Errorf("no user has been created")
	}
	if testTokenService == nil {
		return fmt.Errorf("server has not been started")
	}

	pair, err := testTokenService.GenerateTokenPair(context.Background(), t.currentUserID, t.currentUserEmail)
	if err != nil {
		return fmt.Errorf("failed to generate token pair: %w", err)
	}

	t.accessToken = pair.AccessToken
	t.refreshToken = pair.RefreshToken
	return nil
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	category := &model.CategoryModel{
		ID:        categoryID,
		UserID:    t.currentUserID,
		Name:      name,
		Type:      categoryType,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(category).Error
}

func (t *testContext) anAccountExistsWithNameAndBalance(name string, balance int) error {
	accountID := uuid.New()
	t.currentAccountID = accountID

	now := time.Now().UTC()
	account := &model.AccountModel{
		ID:        accountID,
		UserID:    t.currentUserID,
		Name:      name,
		Balance:   int64(balance),
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(account).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

// replacePlaceholders substitutes scenario state into request paths and
// bodies.
func (t *testContext) replacePlaceholders(s string) string {
	s = strings.ReplaceAll(s, "{categoryId}", t.currentCategoryID.String())
	s = strings.ReplaceAll(s, "{accountId}", t.currentAccountID.String())
	s = strings.ReplaceAll(s, "{transactionId}", t.lastTransactionID)
	s = strings.ReplaceAll(s, "{refreshToken}", t.refreshToken)
	return s
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	content := t.replacePlaceholders(body.Content)
	return t.executeRequest(method, t.replacePlaceholders(path), bytes.NewBufferString(content))
}

func (t *testContext) executeRequest(method, path string, body io.Reader) error {
	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	t.response = &response{
		status: resp.StatusCode,
		body:   responseBody,
	}

	// Remember the created transaction so later steps can reference it
	if method == http.MethodPost && path == "/api/v1/transactions" && resp.StatusCode == http.StatusCreated {
		var data map[string]any
		if err := json.Unmarshal(responseBody, &data); err == nil {
			if id, ok := data["id"].(string); ok {
				t.lastTransactionID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, t.response.status, string(t.response.body))
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	var js json.RawMessage
	if err := json.Unmarshal(t.response.body, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}
	if !strings.Contains(string(t.response.body), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(t.response.body))
	}
	return nil
}

// decodeResponseJSON parses the response body keeping numbers as
// json.Number, so integer fields compare by their literal form instead
// of float64's exponent notation.
func (t *testContext) decodeResponseJSON() (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(t.response.body))
	decoder.UseNumber()

	var data map[string]any
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}
	return data, nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}

	data, err := t.decodeResponseJSON()
	if err != nil {
		return err
	}

	value, ok := data[field]
	if !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(t.response.body))
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}

	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return fmt.Errorf("no response received")
	}

	data, err := t.decodeResponseJSON()
	if err != nil {
		return err
	}

	if _, ok := data[field]; !ok {
		return fmt.Errorf("field '%s' not found in response. Body: %s", field, string(t.response.body))
	}

	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(expectedCount int, table string) error {
	tableModel, ok := tableModels[table]
	if !ok {
		return fmt.Errorf("unknown table '%s'", table)
	}

	count, err := t.db.Count(tableModel)
	if err != nil {
		return fmt.Errorf("failed to count rows in '%s': %w", table, err)
	}
	if count != int64(expectedCount) {
		return fmt.Errorf("expected %d rows in '%s', got %d", expectedCount, table, count)
	}

	return nil
}
