package handlers_test

import (
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

// --- Mock CustomerService ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) ListCustomers(ctx context.Context, shopID string) ([]domain.Customer, error) {
	args := m.Called(ctx, shopID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

// --- Test Suite ---
type CustomerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockCustomerService
	jwtSecret   string
}

func (suite *CustomerHandlerTestSuite) generateTestToken(userID, role, shopID string) string {
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

func (suite *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockService = new(MockCustomerService)

	suite.router = gin.New()
	services := &portssvc.ServiceContainer{Customer: suite.mockService}
	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true, RateLimit: "100-S"}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *CustomerHandlerTestSuite) doRequest(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CustomerHandlerTestSuite) TestGetOwnShopCustomer() {
	token := suite.generateTestToken("user-1", string(domain.RoleAdmin), "shop-1")
	suite.mockService.On("GetCustomerByID", mock.Anything, "cust-1").
		Return(&domain.Customer{CustomerID: "cust-1", ShopID: "shop-1"}, nil)

	w := suite.doRequest("/api/v1/customers/cust-1", token)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *CustomerHandlerTestSuite) TestGetOtherShopCustomerForbidden() {
	token := suite.generateTestToken("user-1", string(domain.RoleAdmin), "shop-1")
	suite.mockService.On("GetCustomerByID", mock.Anything, "cust-9").
		Return(&domain.Customer{CustomerID: "cust-9", ShopID: "shop-2"}, nil)

	w := suite.doRequest("/api/v1/customers/cust-9", token)

	suite.Equal(http.StatusForbidden, w.Code)
}

func TestCustomerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}
