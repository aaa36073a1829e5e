package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	portssvc "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/services"
	"github.com/dukaanbook/dukaanbook_backend/internal/dto"
	"github.com/dukaanbook/dukaanbook_backend/internal/handlers"
	"github.com/dukaanbook/dukaanbook_backend/internal/middleware"
	"github.com/dukaanbook/dukaanbook_backend/pkg/config"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	args := m.Called(ctx, transactionID, userID)
	return args.Error(0)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, scope domain.ShopScope, customerID string, startDate, endDate string) ([]domain.Transaction, error) {
	args := m.Called(ctx, scope, customerID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransactionService
	jwtSecret   string
}

func (suite *TransactionHandlerTestSuite) generateTestToken(userID, role, shopID string) string {
	claims := middleware.LedgerClaims{
		Role:   role,
		ShopID: shopID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "dukaanbook-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockService = new(MockTransactionService)

	suite.router = gin.New()
	services := &portssvc.ServiceContainer{Transaction: suite.mockService}
	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true, RateLimit: "100-S"}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *TransactionHandlerTestSuite) doRequest(method, path, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) TestGetOwnShopTransaction() {
	token := suite.generateTestToken("user-1", string(domain.RoleAdmin), "shop-1")
	suite.mockService.On("GetTransactionByID", mock.Anything, "txn-1").
		Return(&domain.Transaction{TransactionID: "txn-1", ShopID: "shop-1"}, nil)

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/txn-1", token, nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetOtherShopTransactionForbidden() {
	token := suite.generateTestToken("user-1", string(domain.RoleAdmin), "shop-1")
	suite.mockService.On("GetTransactionByID", mock.Anything, "txn-9").
		Return(&domain.Transaction{TransactionID: "txn-9", ShopID: "shop-2"}, nil)

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/txn-9", token, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestSuperAdminReadsAnyShopTransaction() {
	token := suite.generateTestToken("root-1", string(domain.RoleSuperAdmin), "")
	suite.mockService.On("GetTransactionByID", mock.Anything, "txn-9").
		Return(&domain.Transaction{TransactionID: "txn-9", ShopID: "shop-2"}, nil)

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/txn-9", token, nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestUpdateOtherShopTransactionForbidden() {
	token := suite.generateTestToken("user-1", string(domain.RoleAdmin), "shop-1")
	suite.mockService.On("GetTransactionByID", mock.Anything, "txn-9").
		Return(&domain.Transaction{TransactionID: "txn-9", ShopID: "shop-2"}, nil)

	w := suite.doRequest(http.MethodPut, "/api/v1/transactions/txn-9", token, []byte(`{}`))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestDeleteOtherShopTransactionForbidden() {
	token := suite.generateTestToken("user-1", string(domain.RoleAdmin), "shop-1")
	suite.mockService.On("GetTransactionByID", mock.Anything, "txn-9").
		Return(&domain.Transaction{TransactionID: "txn-9", ShopID: "shop-2"}, nil)

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/txn-9", token, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateForOtherShopForbidden() {
	token := suite.generateTestToken("user-1", string(domain.RoleAdmin), "shop-1")

	body := []byte(`{"shopId":"shop-2","customerId":"cust-1","transactionType":"receivable","amount":100,"date":"2024-03-15"}`)
	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", token, body)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
