package api

import (
	"context"
	"io"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/rental-manager-api/internal/api/dto"
	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/service"
)

type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) Create(ctx context.Context, fields domain.RoomFields) (*domain.Room, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) Update(ctx context.Context, id string, fields domain.RoomFields) (*domain.Room, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRoomService) FindByName(ctx context.Context, name string) ([]domain.Room, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomService) List(ctx context.Context, status domain.RoomStatus) ([]domain.RoomWithOccupancy, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.RoomWithOccupancy), args.Error(1)
}

func (m *MockRoomService) Search(ctx context.Context, query string, status domain.RoomStatus) ([]domain.Room, error) {
	args := m.Called(ctx, query, status)
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomService) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	args := m.Called(ctx, filename, r)
	return args.String(0), args.Error(1)
}

type MockOccupancyService struct {
	mock.Mock
}

func (m *MockOccupancyService) Reconcile(ctx context.Context) (*service.ReconcileResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReconcileResult), args.Error(1)
}

type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) Create(ctx context.Context, fields domain.TenantFields) (*domain.Tenant, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) Update(ctx context.Context, id string, fields domain.TenantFields) (*domain.Tenant, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantService) Delete(ctx context.Context, id, roomNumber string) error {
	return m.Called(ctx, id, roomNumber).Error(0)
}

func (m *MockTenantService) List(ctx context.Context) ([]domain.Tenant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Record(ctx context.Context, fields domain.PaymentFields) (*domain.Payment, error) {
	args := m.Called(ctx, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) History(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentService) MonthlyReport(ctx context.Context, month, year int) (*domain.MonthlyReport, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyReport), args.Error(1)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, identity service.Identity) (*domain.UserProfile, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockProfileService) Update(ctx context.Context, identity service.Identity, fields domain.ProfileFields) (*domain.UserProfile, error) {
	args := m.Called(ctx, identity, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

type MockSnapshotSource struct {
	mock.Mock
}

func (m *MockSnapshotSource) Build(ctx context.Context, kind domain.CollectionKind) (*dto.Snapshot, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Snapshot), args.Error(1)
}

// fakeSubscriber records callbacks in memory in place of Redis
type fakeSubscriber struct {
	mu        sync.Mutex
	callbacks map[domain.CollectionKind]func(*dto.Snapshot)
}

func newFakeSubscriber() *fakeSubscriber {
	return &fakeSubscriber{callbacks: make(map[domain.CollectionKind]func(*dto.Snapshot))}
}

func (f *fakeSubscriber) Subscribe(ctx context.Context, kind domain.CollectionKind, callback func(*dto.Snapshot)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callbacks[kind] = callback
	return nil
}

func (f *fakeSubscriber) Unsubscribe(kind domain.CollectionKind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.callbacks, kind)
}

func (f *fakeSubscriber) Close() {}

func (f *fakeSubscriber) publish(snapshot *dto.Snapshot) bool {
	f.mu.Lock()
	callback, ok := f.callbacks[domain.CollectionKind(snapshot.Collection)]
	f.mu.Unlock()
	if ok {
		callback(snapshot)
	}
	return ok
}

func (f *fakeSubscriber) subscribed(kind domain.CollectionKind) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.callbacks[kind]
	return ok
}
