//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stayline/internal/availability"
	"stayline/internal/domain/reservation"
	"stayline/internal/domain/room"
	"stayline/internal/pkg/clock"
	"stayline/internal/usecase/commands"
	commandsmock "stayline/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HydratorTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockRoomTypes    *commandsmock.MockRoomTypeRepository
	mockReservations *commandsmock.MockReservationRepository
	registry         *availability.Registry
	clock            *clock.MockClock
	hydrator         *commands.Hydrator
}

func TestHydratorSuite(t *testing.T) {
	suite.Run(t, new(HydratorTestSuite))
}

func (s *HydratorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoomTypes = commandsmock.NewMockRoomTypeRepository(s.mockCtrl)
	s.mockReservations = commandsmock.NewMockReservationRepository(s.mockCtrl)
	s.registry = availability.NewRegistry()
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.hydrator = commands.NewHydrator(s.mockRoomTypes, s.mockReservations, s.registry, s.clock)
}

func (s *HydratorTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func reconstructReservation(roomTypeID uuid.UUID, unit int, checkIn, checkOut string) *reservation.Reservation {
	stay, err := reservation.ParseStayRange(checkIn, checkOut)
	if err != nil {
		panic(err)
	}
	total, _ := reservation.NewMoney(int64(stay.Nights()) * 15000)
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return reservation.ReconstructReservation(
		uuid.New(), uuid.New(), uuid.New(), roomTypeID,
		unit, stay, 2, 0, total,
		reservation.PaymentUnpaid, reservation.StatusConfirmed,
		now, now,
	)
}

func (s *HydratorTestSuite) TestHydrateRebuildsOccupancy() {
	rt, err := room.NewRoomType(uuid.New(), "Standard", 15000, 4, nil, nil, []int{101, 102})
	s.Require().NoError(err)

	persisted := []*reservation.Reservation{
		reconstructReservation(rt.ID(), 101, "2026-10-01", "2026-10-05"),
		reconstructReservation(rt.ID(), 102, "2026-10-03", "2026-10-06"),
	}

	s.mockRoomTypes.EXPECT().ListAll(gomock.Any()).
		Return([]*room.RoomType{rt}, nil).Times(1)
	s.mockReservations.EXPECT().ListActiveFrom(gomock.Any(), s.clock.Now()).
		Return(persisted, nil).Times(1)

	s.Require().NoError(s.hydrator.Hydrate(context.Background()))

	ledger, ok := s.registry.Get(rt.ID())
	s.Require().True(ok)

	lease, err := ledger.Acquire(context.Background())
	s.Require().NoError(err)
	defer lease.Release()

	stay, err := reservation.ParseStayRange("2026-10-04", "2026-10-07")
	s.Require().NoError(err)
	_, err = lease.FindFreeUnit(stay)
	s.ErrorIs(err, availability.ErrNoFreeUnit, "rehydrated stays occupy their units")

	free, err := lease.FindFreeUnit(mustParseStay(s.T(), "2026-10-06", "2026-10-09"))
	s.Require().NoError(err)
	s.Equal(101, free)
}

func (s *HydratorTestSuite) TestHydrateSkipsOrphanedReservations() {
	rt, err := room.NewRoomType(uuid.New(), "Standard", 15000, 4, nil, nil, []int{101})
	s.Require().NoError(err)

	orphan := reconstructReservation(uuid.New(), 301, "2026-10-01", "2026-10-05")

	s.mockRoomTypes.EXPECT().ListAll(gomock.Any()).
		Return([]*room.RoomType{rt}, nil).Times(1)
	s.mockReservations.EXPECT().ListActiveFrom(gomock.Any(), s.clock.Now()).
		Return([]*reservation.Reservation{orphan}, nil).Times(1)

	s.NoError(s.hydrator.Hydrate(context.Background()))

	ledger, ok := s.registry.Get(rt.ID())
	s.Require().True(ok)

	lease, err := ledger.Acquire(context.Background())
	s.Require().NoError(err)
	defer lease.Release()

	unit, err := lease.FindFreeUnit(mustParseStay(s.T(), "2026-10-01", "2026-10-05"))
	s.Require().NoError(err)
	s.Equal(101, unit)
}

func mustParseStay(t *testing.T, checkIn, checkOut string) reservation.StayRange {
	t.Helper()
	stay, err := reservation.ParseStayRange(checkIn, checkOut)
	if err != nil {
		t.Fatalf("parse stay: %v", err)
	}
	return stay
}
