package service

import (
	"context"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/rental-manager-api/internal/api/dto"
	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/repository"
	"github.com/kingrain94/rental-manager-api/internal/repository/composite"
	"github.com/kingrain94/rental-manager-api/internal/repository/postgres"
	"github.com/kingrain94/rental-manager-api/internal/testutil"
	"github.com/kingrain94/rental-manager-api/pkg/logger"
)

var testLogger = logger.NewLogger("test")

// newTestRepository returns a repository over a fresh SQLite database, without search.
func newTestRepository(t *testing.T) repository.Repository {
	t.Helper()
	return composite.New(postgres.NewPostgresRepository(testutil.NewDatabase(t)), nil)
}

func seedRoom(t *testing.T, repo repository.Repository, name string, status domain.RoomStatus) *domain.Room {
	t.Helper()
	room := &domain.Room{
		Name:        name,
		Address:     "12 Le Loi",
		Description: "Room " + name,
		Price:       2000000,
		ImageURL:    "https://img.example.com/" + name + ".jpg",
		Status:      status,
	}
	require.NoError(t, repo.Room().Create(context.Background(), room))
	return room
}

func seedTenant(t *testing.T, repo repository.Repository, name, roomNumber string) *domain.Tenant {
	t.Helper()
	tenant := &domain.Tenant{
		Name:       name,
		Phone:      "0901234567",
		RoomNumber: roomNumber,
		StartDate:  "2024-01-05",
	}
	require.NoError(t, repo.Tenant().Create(context.Background(), tenant))
	return tenant
}

func roomStatus(t *testing.T, repo repository.Repository, id string) (domain.RoomStatus, *string) {
	t.Helper()
	room, err := repo.Room().GetByID(context.Background(), id)
	require.NoError(t, err)
	return room.Status, room.TenantID
}

type MockSQSService struct {
	mock.Mock
}

func (m *MockSQSService) SendRoomIndexMessage(ctx context.Context, room *domain.Room) error {
	return m.Called(ctx, room).Error(0)
}

func (m *MockSQSService) SendRoomDeleteMessage(ctx context.Context, roomID string) error {
	return m.Called(ctx, roomID).Error(0)
}

func (m *MockSQSService) SendReconcileMessage(ctx context.Context, reason string) error {
	return m.Called(ctx, reason).Error(0)
}

func (m *MockSQSService) SendArchiveMessage(ctx context.Context, year, month int) error {
	return m.Called(ctx, year, month).Error(0)
}

type MockImageUploader struct {
	mock.Mock
}

func (m *MockImageUploader) UploadRoomImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	args := m.Called(ctx, filename, r)
	return args.String(0), args.Error(1)
}

type MockSnapshotPublisher struct {
	mock.Mock
}

func (m *MockSnapshotPublisher) Publish(ctx context.Context, snapshot *dto.Snapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

// recordingNotifier remembers which collections were reported as changed
type recordingNotifier struct {
	mu    sync.Mutex
	kinds []domain.CollectionKind
}

func (n *recordingNotifier) CollectionChanged(ctx context.Context, kind domain.CollectionKind) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.kinds = append(n.kinds, kind)
}

func (n *recordingNotifier) changed() []domain.CollectionKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.CollectionKind(nil), n.kinds...)
}
