package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/repository"
)

type TenantServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	repo     repository.Repository
	notifier *recordingNotifier
	service  *TenantService
	room101  *domain.Room
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = newTestRepository(s.T())
	s.notifier = &recordingNotifier{}

	occupancy := NewOccupancyService(s.repo, nil, testLogger)
	s.service = NewTenantService(s.repo, occupancy, testLogger)
	s.service.SetNotifier(s.notifier)

	s.room101 = seedRoom(s.T(), s.repo, "101", domain.RoomAvailable)
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func (s *TenantServiceTestSuite) alice(room string) domain.TenantFields {
	return domain.TenantFields{
		Name:       "Alice",
		Phone:      "0901234567",
		RoomNumber: room,
		StartDate:  "2024-01-05",
	}
}

func (s *TenantServiceTestSuite) TestCreate_MarksRoomRented() {
	// Act
	tenant, err := s.service.Create(s.ctx, s.alice("101"))

	// Assert
	s.Require().NoError(err)
	s.NotEmpty(tenant.ID)

	status, tenantID := roomStatus(s.T(), s.repo, s.room101.ID)
	s.Equal(domain.RoomRented, status)
	s.Require().NotNil(tenantID)
	s.Equal(tenant.ID, *tenantID)
	s.ElementsMatch([]domain.CollectionKind{domain.CollectionTenants, domain.CollectionRooms}, s.notifier.changed())
}

func (s *TenantServiceTestSuite) TestCreate_UnknownRoomWritesNothing() {
	// Act
	tenant, err := s.service.Create(s.ctx, s.alice("999"))

	// Assert
	s.Nil(tenant)
	s.ErrorIs(err, ErrRoomNotFound)

	tenants, err := s.repo.Tenant().List(s.ctx)
	s.Require().NoError(err)
	s.Empty(tenants)
	s.Empty(s.notifier.changed())
}

func (s *TenantServiceTestSuite) TestCreate_MissingField() {
	fields := s.alice("101")
	fields.Phone = "  "

	_, err := s.service.Create(s.ctx, fields)

	s.ErrorIs(err, domain.ErrValidation)
	s.Contains(err.Error(), "phone")
}

func (s *TenantServiceTestSuite) TestCreate_NormalizesStartDate() {
	fields := s.alice("101")
	fields.StartDate = "2024-01-05T22:30:00+07:00"

	tenant, err := s.service.Create(s.ctx, fields)

	s.Require().NoError(err)
	s.Equal("2024-01-05", tenant.StartDate)
}

func (s *TenantServiceTestSuite) TestCreate_MarksEveryRoomWithTheName() {
	// Arrange
	twin := seedRoom(s.T(), s.repo, "101", domain.RoomAvailable)

	// Act
	_, err := s.service.Create(s.ctx, s.alice("101"))

	// Assert
	s.Require().NoError(err)
	first, _ := roomStatus(s.T(), s.repo, s.room101.ID)
	second, _ := roomStatus(s.T(), s.repo, twin.ID)
	s.Equal(domain.RoomRented, first)
	s.Equal(domain.RoomRented, second)
}

func (s *TenantServiceTestSuite) TestGetByID_NotFound() {
	_, err := s.service.GetByID(s.ctx, "00000000-0000-0000-0000-000000000000")

	s.ErrorIs(err, ErrNotFound)
}

func (s *TenantServiceTestSuite) TestDelete_FreesRoom() {
	// Arrange
	tenant, err := s.service.Create(s.ctx, s.alice("101"))
	s.Require().NoError(err)

	// Act
	err = s.service.Delete(s.ctx, tenant.ID, "101")

	// Assert
	s.Require().NoError(err)
	status, tenantID := roomStatus(s.T(), s.repo, s.room101.ID)
	s.Equal(domain.RoomAvailable, status)
	s.Nil(tenantID)

	_, err = s.service.GetByID(s.ctx, tenant.ID)
	s.ErrorIs(err, ErrNotFound)
}

func (s *TenantServiceTestSuite) TestDelete_Twice() {
	tenant, err := s.service.Create(s.ctx, s.alice("101"))
	s.Require().NoError(err)
	s.Require().NoError(s.service.Delete(s.ctx, tenant.ID, "101"))

	err = s.service.Delete(s.ctx, tenant.ID, "101")

	s.NoError(err)
	status, _ := roomStatus(s.T(), s.repo, s.room101.ID)
	s.Equal(domain.RoomAvailable, status)
}

func (s *TenantServiceTestSuite) TestDelete_LooksUpRoomNumber() {
	tenant, err := s.service.Create(s.ctx, s.alice("101"))
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.ctx, tenant.ID, ""))

	status, _ := roomStatus(s.T(), s.repo, s.room101.ID)
	s.Equal(domain.RoomAvailable, status)
}

func (s *TenantServiceTestSuite) TestDelete_UnknownTenantWithoutRoomNumber() {
	err := s.service.Delete(s.ctx, "00000000-0000-0000-0000-000000000000", "")

	s.ErrorIs(err, ErrNotFound)
}

func (s *TenantServiceTestSuite) TestDelete_SharedRoomStaysRented() {
	// Arrange
	alice, err := s.service.Create(s.ctx, s.alice("101"))
	s.Require().NoError(err)
	bobFields := s.alice("101")
	bobFields.Name = "Bob"
	bob, err := s.service.Create(s.ctx, bobFields)
	s.Require().NoError(err)

	// Act
	s.Require().NoError(s.service.Delete(s.ctx, alice.ID, "101"))
	afterFirst, _ := roomStatus(s.T(), s.repo, s.room101.ID)
	s.Require().NoError(s.service.Delete(s.ctx, bob.ID, "101"))
	afterSecond, _ := roomStatus(s.T(), s.repo, s.room101.ID)

	// Assert
	s.Equal(domain.RoomRented, afterFirst)
	s.Equal(domain.RoomAvailable, afterSecond)
}

func (s *TenantServiceTestSuite) TestDelete_SharedRoomPassesToRemainingTenant() {
	// Arrange
	alice, err := s.service.Create(s.ctx, s.alice("101"))
	s.Require().NoError(err)
	bobFields := s.alice("101")
	bobFields.Name = "Bob"
	bob, err := s.service.Create(s.ctx, bobFields)
	s.Require().NoError(err)

	// Act
	s.Require().NoError(s.service.Delete(s.ctx, alice.ID, "101"))

	// Assert
	status, tenantID := roomStatus(s.T(), s.repo, s.room101.ID)
	s.Equal(domain.RoomRented, status)
	s.Require().NotNil(tenantID)
	s.Equal(bob.ID, *tenantID)

	result, err := s.service.occupancy.Reconcile(s.ctx)
	s.Require().NoError(err)
	s.Empty(result.Repaired)
}

func (s *TenantServiceTestSuite) TestUpdate_MovingOutPassesRoomToRemainingTenant() {
	// Arrange
	seedRoom(s.T(), s.repo, "102", domain.RoomAvailable)
	alice, err := s.service.Create(s.ctx, s.alice("101"))
	s.Require().NoError(err)
	bobFields := s.alice("101")
	bobFields.Name = "Bob"
	bob, err := s.service.Create(s.ctx, bobFields)
	s.Require().NoError(err)

	// Act
	_, err = s.service.Update(s.ctx, alice.ID, s.alice("102"))

	// Assert
	s.Require().NoError(err)
	status, tenantID := roomStatus(s.T(), s.repo, s.room101.ID)
	s.Equal(domain.RoomRented, status)
	s.Require().NotNil(tenantID)
	s.Equal(bob.ID, *tenantID)
}

func (s *TenantServiceTestSuite) TestUpdate_MovesRoom() {
	// Arrange
	room102 := seedRoom(s.T(), s.repo, "102", domain.RoomAvailable)
	tenant, err := s.service.Create(s.ctx, s.alice("101"))
	s.Require().NoError(err)

	// Act
	updated, err := s.service.Update(s.ctx, tenant.ID, s.alice("102"))

	// Assert
	s.Require().NoError(err)
	s.Equal("102", updated.RoomNumber)

	oldStatus, _ := roomStatus(s.T(), s.repo, s.room101.ID)
	newStatus, newTenant := roomStatus(s.T(), s.repo, room102.ID)
	s.Equal(domain.RoomAvailable, oldStatus)
	s.Equal(domain.RoomRented, newStatus)
	s.Require().NotNil(newTenant)
	s.Equal(tenant.ID, *newTenant)
}

func (s *TenantServiceTestSuite) TestUpdate_SameRoomKeepsStatus() {
	tenant, err := s.service.Create(s.ctx, s.alice("101"))
	s.Require().NoError(err)

	fields := s.alice("101")
	fields.Notes = "Deposit paid"
	updated, err := s.service.Update(s.ctx, tenant.ID, fields)

	s.Require().NoError(err)
	s.Equal("Deposit paid", updated.Notes)
	status, _ := roomStatus(s.T(), s.repo, s.room101.ID)
	s.Equal(domain.RoomRented, status)
}

func (s *TenantServiceTestSuite) TestUpdate_UnknownRoomLeavesTenant() {
	tenant, err := s.service.Create(s.ctx, s.alice("101"))
	s.Require().NoError(err)

	_, err = s.service.Update(s.ctx, tenant.ID, s.alice("999"))

	s.ErrorIs(err, ErrRoomNotFound)
	stored, err := s.service.GetByID(s.ctx, tenant.ID)
	s.Require().NoError(err)
	s.Equal("101", stored.RoomNumber)
}

func (s *TenantServiceTestSuite) TestUpdate_NotFound() {
	_, err := s.service.Update(s.ctx, "00000000-0000-0000-0000-000000000000", s.alice("101"))

	s.ErrorIs(err, ErrNotFound)
}
