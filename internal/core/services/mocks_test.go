package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/dukaanbook/dukaanbook_backend/internal/core/domain"
	portsrepo "github.com/dukaanbook/dukaanbook_backend/internal/core/ports/repositories"
)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	args := m.Called(ctx, txn, balanceDelta)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceDelta decimal.Decimal) error {
	args := m.Called(ctx, txn, balanceDelta)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID, customerID string, balanceDelta decimal.Decimal) error {
	args := m.Called(ctx, transactionID, customerID, balanceDelta)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindForReport(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) SumPriorNet(ctx context.Context, scope domain.ShopScope, customerID string, before time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, scope, customerID, before)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock CustomerRepository ---

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	var customer *domain.Customer
	if args.Get(0) != nil {
		customer = args.Get(0).(*domain.Customer)
	}
	return customer, args.Error(1)
}

func (m *MockCustomerRepository) ListCustomersByShop(ctx context.Context, shopID string) ([]domain.Customer, error) {
	args := m.Called(ctx, shopID)
	var customers []domain.Customer
	if args.Get(0) != nil {
		customers = args.Get(0).([]domain.Customer)
	}
	return customers, args.Error(1)
}

// --- Mock ShopRepository ---

type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) FindShopByID(ctx context.Context, shopID string) (*domain.Shop, error) {
	args := m.Called(ctx, shopID)
	var shop *domain.Shop
	if args.Get(0) != nil {
		shop = args.Get(0).(*domain.Shop)
	}
	return shop, args.Error(1)
}

func (m *MockShopRepository) SaveShop(ctx context.Context, shop domain.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

// --- Mock SettingRepository ---

type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) FindSettingByShop(ctx context.Context, shopID string) (*domain.Setting, error) {
	args := m.Called(ctx, shopID)
	var setting *domain.Setting
	if args.Get(0) != nil {
		setting = args.Get(0).(*domain.Setting)
	}
	return setting, args.Error(1)
}

func (m *MockSettingRepository) SaveSetting(ctx context.Context, setting domain.Setting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

func (m *MockSettingRepository) SumOpeningBalances(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock BlobStore ---

type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Put(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, objectName, data, contentType)
	return args.String(0), args.Error(1)
}

// --- Mock ImageFetcher ---

type MockImageFetcher struct {
	mock.Mock
}

func (m *MockImageFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	var data []byte
	if args.Get(0) != nil {
		data = args.Get(0).([]byte)
	}
	return data, args.Error(1)
}

// --- Mock BalanceResolver ---

type MockBalanceResolver struct {
	mock.Mock
}

func (m *MockBalanceResolver) ResolveOpeningBalance(ctx context.Context, scope domain.ShopScope, customerID string, windowStart *time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, scope, customerID, windowStart)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
