package handlers_test

import (
	"context"
	"encoding/json"
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

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) GenerateSummaryReport(ctx context.Context, req dto.ReportRequest) (*dto.ReportResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportResult), args.Error(1)
}

func (m *MockReportService) GenerateDailyStatement(ctx context.Context, req dto.ReportRequest) (*dto.ReportResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReportResult), args.Error(1)
}

var _ portssvc.ReportSvcFacade = (*MockReportService)(nil)

// --- Test Suite ---
type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockReportService
	jwtSecret   string
}

func (suite *ReportHandlerTestSuite) generateTestToken(userID, role, shopID string) string {
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

func (suite *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockService = new(MockReportService)

	suite.router = gin.New()
	services := &portssvc.ServiceContainer{Report: suite.mockService}
	cfg := &config.Config{JWTSecret: suite.jwtSecret, IsProduction: true, RateLimit: "100-S"}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *ReportHandlerTestSuite) doRequest(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportHandlerTestSuite) TestSummaryReportRequiresAuth() {
	w := suite.doRequest("/api/v1/reports/summary", "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ReportHandlerTestSuite) TestAdminGetsOwnShopSummary() {
	token := suite.generateTestToken("user-1", string(domain.RoleAdmin), "shop-1")

	suite.mockService.On("GenerateSummaryReport", mock.Anything, mock.MatchedBy(func(req dto.ReportRequest) bool {
		shopID, ok := req.Scope.ShopID()
		return ok && shopID == "shop-1" && req.StartDate == "2024-03-01"
	})).Return(&dto.ReportResult{Response: &dto.ReportResponse{Balance: 1300}}, nil)

	w := suite.doRequest("/api/v1/reports/summary?startDate=2024-03-01", token)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ReportResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1300.0, resp.Balance)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestAdminCannotRequestAllShops() {
	token := suite.generateTestToken("user-1", string(domain.RoleAdmin), "shop-1")

	w := suite.doRequest("/api/v1/reports/summary?shopId=all", token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GenerateSummaryReport", mock.Anything, mock.Anything)
}

func (suite *ReportHandlerTestSuite) TestAdminCannotRequestAnotherShop() {
	token := suite.generateTestToken("user-1", string(domain.RoleAdmin), "shop-1")

	w := suite.doRequest("/api/v1/reports/summary?shopId=shop-2", token)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *ReportHandlerTestSuite) TestSuperAdminGetsAllShops() {
	token := suite.generateTestToken("root-1", string(domain.RoleSuperAdmin), "")

	suite.mockService.On("GenerateSummaryReport", mock.Anything, mock.MatchedBy(func(req dto.ReportRequest) bool {
		return req.Scope.IsAll()
	})).Return(&dto.ReportResult{Response: &dto.ReportResponse{}}, nil)

	w := suite.doRequest("/api/v1/reports/summary?shopId=all", token)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ReportHandlerTestSuite) TestSuperAdminMustNameAShop() {
	token := suite.generateTestToken("root-1", string(domain.RoleSuperAdmin), "")

	w := suite.doRequest("/api/v1/reports/summary", token)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GenerateSummaryReport", mock.Anything, mock.Anything)
}

func (suite *ReportHandlerTestSuite) TestPDFFormatReturnsArtifactURL() {
	token := suite.generateTestToken("user-1", string(domain.RoleAdmin), "shop-1")

	suite.mockService.On("GenerateDailyStatement", mock.Anything, mock.MatchedBy(func(req dto.ReportRequest) bool {
		return req.Format == dto.FormatPDF
	})).Return(&dto.ReportResult{
		Artifact: &dto.ReportArtifact{URL: "https://storage.googleapis.com/bucket/reports/statement.pdf"},
	}, nil)

	w := suite.doRequest("/api/v1/reports/daily-statement?format=pdf", token)

	suite.Equal(http.StatusOK, w.Code)
	var artifact dto.ReportArtifact
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &artifact))
	suite.Equal("https://storage.googleapis.com/bucket/reports/statement.pdf", artifact.URL)
}

func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
