package services

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"

	"renti/internal/models"
	"renti/internal/repositories"
)

const testTimeout = 5 * time.Second

// testNow is a Wednesday morning.
var testNow = time.Date(2024, time.February, 14, 10, 0, 0, 0, time.UTC)

func newTestClock() clockwork.Clock {
	return clockwork.NewFakeClockAt(testNow)
}

func newTestRepositories() *repositories.Repositories {
	return repositories.NewRepositories(repositories.SeedDataset(testNow))
}

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Record(ctx context.Context, activityType models.ActivityType, title, description string) {
	m.Called(ctx, activityType, title, description)
}

func (m *MockActivityService) Recent(ctx context.Context, limit int) ([]*models.Activity, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*models.Activity), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, to, message string) {
	m.Called(ctx, to, message)
}

type MockSMSService struct {
	mock.Mock
	mu   sync.Mutex
	sent []string
}

func (m *MockSMSService) Send(ctx context.Context, to, message string) (*models.SMSResult, error) {
	m.mu.Lock()
	m.sent = append(m.sent, to)
	m.mu.Unlock()

	args := m.Called(ctx, to, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SMSResult), args.Error(1)
}

func (m *MockSMSService) Stubbed() bool {
	return m.Called().Bool(0)
}

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) Create(ctx context.Context, tenant *models.Tenant) error {
	return m.Called(ctx, tenant).Error(0)
}

func (m *MockTenantRepository) GetByID(ctx context.Context, id int) (*models.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenant), args.Error(1)
}

func (m *MockTenantRepository) GetByName(ctx context.Context, name string) (*models.Tenant, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByPhone(ctx context.Context, match func(phone string) bool) (*models.Tenant, error) {
	args := m.Called(ctx, match)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Update(ctx context.Context, tenant *models.Tenant) error {
	return m.Called(ctx, tenant).Error(0)
}

func (m *MockTenantRepository) SetStatus(ctx context.Context, id int, status func(models.PaymentStatus) models.PaymentStatus) (*models.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTenantRepository) List(ctx context.Context) ([]*models.Tenant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Load(seed []models.Tenant) {
	m.Called(seed)
}

func (m *MockTenantRepository) Revision() uint64 {
	return uint64(m.Called().Int(0))
}
