//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stayline/internal/availability"
	"stayline/internal/domain/reservation"
	"stayline/internal/domain/room"
	"stayline/internal/domain/user"
	"stayline/internal/infra"
	"stayline/internal/infra/db"
	"stayline/internal/pkg/clock"
	"stayline/internal/usecase/commands"
	commandsmock "stayline/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const admissionTimeout = 50 * time.Millisecond

type ReservationCommandsTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockRoomTypes    *commandsmock.MockRoomTypeRepository
	mockReservations *commandsmock.MockReservationRepository
	mockTx           *commandsmock.MockTxRunner
	registry         *availability.Registry
	clock            *clock.MockClock
	commands         commands.ReservationCommands

	roomType *room.RoomType
	guestID  uuid.UUID
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoomTypes = commandsmock.NewMockRoomTypeRepository(s.mockCtrl)
	s.mockReservations = commandsmock.NewMockReservationRepository(s.mockCtrl)
	s.mockTx = commandsmock.NewMockTxRunner(s.mockCtrl)
	s.registry = availability.NewRegistry()
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))

	s.commands = commands.NewReservationCommands(
		s.mockRoomTypes, s.mockReservations, s.registry, s.mockTx, s.clock, admissionTimeout)

	rt, err := room.NewRoomType(uuid.New(), "Deluxe", 15000, 3, nil, nil, []int{1, 2})
	s.Require().NoError(err)
	s.roomType = rt
	s.guestID = uuid.New()
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReservationCommandsTestSuite) expectRoomType() {
	s.mockRoomTypes.EXPECT().FindByID(gomock.Any(), s.roomType.ID()).
		Return(s.roomType, nil).AnyTimes()
}

func (s *ReservationCommandsTestSuite) expectTxPassthrough() {
	s.mockTx.EXPECT().RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(db.DBTX) error) error {
			return fn(nil)
		}).AnyTimes()
}

func (s *ReservationCommandsTestSuite) book(checkIn, checkOut string) (*commands.BookRequest, error) {
	req := commands.BookRequest{
		RoomTypeID: s.roomType.ID(),
		GuestID:    s.guestID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Adults:     2,
	}
	_, err := s.commands.Book(context.Background(), req)
	return &req, err
}

func (s *ReservationCommandsTestSuite) TestBookAllocatesLowestFreeUnit() {
	s.expectRoomType()
	s.expectTxPassthrough()
	s.mockReservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(2)

	view1, err := s.commands.Book(context.Background(), commands.BookRequest{
		RoomTypeID: s.roomType.ID(), GuestID: s.guestID,
		CheckIn: "2026-10-01", CheckOut: "2026-10-05", Adults: 2,
	})
	s.Require().NoError(err)
	s.Equal(1, view1.Unit)
	s.Equal("confirmed", view1.Status)
	s.Equal(int64(4*15000), view1.TotalCents)

	view2, err := s.commands.Book(context.Background(), commands.BookRequest{
		RoomTypeID: s.roomType.ID(), GuestID: s.guestID,
		CheckIn: "2026-10-03", CheckOut: "2026-10-06", Adults: 2,
	})
	s.Require().NoError(err)
	s.Equal(2, view2.Unit)
}

func (s *ReservationCommandsTestSuite) TestBookConflictWhenAllUnitsTaken() {
	s.expectRoomType()
	s.expectTxPassthrough()
	s.mockReservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(2)

	_, err := s.book("2026-10-01", "2026-10-05")
	s.Require().NoError(err)
	_, err = s.book("2026-10-02", "2026-10-06")
	s.Require().NoError(err)

	_, err = s.book("2026-10-04", "2026-10-07")
	s.ErrorIs(err, commands.ErrNoAvailability)
}

func (s *ReservationCommandsTestSuite) TestBookBackToBackStaysShareUnit() {
	s.expectRoomType()
	s.expectTxPassthrough()
	s.mockReservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(2)

	view1, err := s.commands.Book(context.Background(), commands.BookRequest{
		RoomTypeID: s.roomType.ID(), GuestID: s.guestID,
		CheckIn: "2026-10-01", CheckOut: "2026-10-05", Adults: 1,
	})
	s.Require().NoError(err)

	view2, err := s.commands.Book(context.Background(), commands.BookRequest{
		RoomTypeID: s.roomType.ID(), GuestID: s.guestID,
		CheckIn: "2026-10-05", CheckOut: "2026-10-08", Adults: 1,
	})
	s.Require().NoError(err)
	s.Equal(view1.Unit, view2.Unit, "check-out day is free for the next guest")
}

func (s *ReservationCommandsTestSuite) TestBookValidationBeforeAllocation() {
	s.expectRoomType()

	_, err := s.book("2026-10-05", "2026-10-01")
	s.ErrorIs(err, commands.ErrInvalidStay)

	_, err = s.commands.Book(context.Background(), commands.BookRequest{
		RoomTypeID: s.roomType.ID(), GuestID: s.guestID,
		CheckIn: "2026-10-01", CheckOut: "2026-10-05", Adults: 0,
	})
	s.ErrorIs(err, commands.ErrInvalidOccupants)

	_, err = s.commands.Book(context.Background(), commands.BookRequest{
		RoomTypeID: s.roomType.ID(), GuestID: s.guestID,
		CheckIn: "2026-10-01", CheckOut: "2026-10-05", Adults: 3, Children: 1,
	})
	s.ErrorIs(err, commands.ErrInvalidOccupants)
}

func (s *ReservationCommandsTestSuite) TestBookUnknownRoomType() {
	unknown := uuid.New()
	s.mockRoomTypes.EXPECT().FindByID(gomock.Any(), unknown).
		Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound)).Times(1)

	_, err := s.commands.Book(context.Background(), commands.BookRequest{
		RoomTypeID: unknown, GuestID: s.guestID,
		CheckIn: "2026-10-01", CheckOut: "2026-10-05", Adults: 1,
	})
	s.ErrorIs(err, commands.ErrRoomTypeNotFound)
}

func (s *ReservationCommandsTestSuite) TestBookBusyWhenGateHeld() {
	s.expectRoomType()

	ledger := s.registry.GetOrCreate(s.roomType.ID(), s.roomType.Units())
	lease, err := ledger.Acquire(context.Background())
	s.Require().NoError(err)
	defer lease.Release()

	_, err = s.book("2026-10-01", "2026-10-05")
	s.ErrorIs(err, commands.ErrAdmissionBusy)
}

func (s *ReservationCommandsTestSuite) TestBookRollsBackIntervalOnPersistFailure() {
	s.expectRoomType()

	persistErr := infra.WrapRepoErr("insert failed", nil, infra.KindDBFailure)
	failing := s.mockTx.EXPECT().RunInTx(gomock.Any(), gomock.Any()).
		Return(persistErr).Times(1)
	s.mockTx.EXPECT().RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(db.DBTX) error) error {
			return fn(nil)
		}).After(failing)
	s.mockReservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(1)

	_, err := s.book("2026-10-01", "2026-10-05")
	s.ErrorIs(err, commands.ErrPersistenceFailure)

	// The failed attempt left no phantom interval: the same stay can be
	// booked again on the same unit.
	view, err := s.commands.Book(context.Background(), commands.BookRequest{
		RoomTypeID: s.roomType.ID(), GuestID: s.guestID,
		CheckIn: "2026-10-01", CheckOut: "2026-10-05", Adults: 1,
	})
	s.Require().NoError(err)
	s.Equal(1, view.Unit)
}

func (s *ReservationCommandsTestSuite) bookConfirmed(checkIn, checkOut string) *reservation.Reservation {
	s.T().Helper()

	var persisted *reservation.Reservation
	s.mockReservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, res *reservation.Reservation) error {
			persisted = res
			return nil
		}).Times(1)

	_, err := s.book(checkIn, checkOut)
	s.Require().NoError(err)
	s.Require().NotNil(persisted)
	return persisted
}

func (s *ReservationCommandsTestSuite) TestCancelFreesUnit() {
	s.expectRoomType()
	s.expectTxPassthrough()

	res := s.bookConfirmed("2026-10-01", "2026-10-05")

	s.mockReservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil).Times(1)
	s.mockReservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), res.ID(), reservation.StatusCancelled).
		Return(nil).Times(1)

	err := s.commands.Cancel(context.Background(), res.ID(), s.guestID, user.RoleGuest)
	s.Require().NoError(err)

	// The unit is free again for the same range.
	s.mockReservations.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	view, err := s.commands.Book(context.Background(), commands.BookRequest{
		RoomTypeID: s.roomType.ID(), GuestID: s.guestID,
		CheckIn: "2026-10-01", CheckOut: "2026-10-05", Adults: 1,
	})
	s.Require().NoError(err)
	s.Equal(res.Unit(), view.Unit)
}

func (s *ReservationCommandsTestSuite) TestCancelRejectsOtherGuest() {
	s.expectRoomType()
	s.expectTxPassthrough()

	res := s.bookConfirmed("2026-10-01", "2026-10-05")

	s.mockReservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil).Times(1)

	err := s.commands.Cancel(context.Background(), res.ID(), uuid.New(), user.RoleGuest)
	s.ErrorIs(err, commands.ErrNotReservationOwner)
}

func (s *ReservationCommandsTestSuite) TestCancelAllowsAdmin() {
	s.expectRoomType()
	s.expectTxPassthrough()

	res := s.bookConfirmed("2026-10-01", "2026-10-05")

	s.mockReservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil).Times(1)
	s.mockReservations.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), res.ID(), reservation.StatusCancelled).
		Return(nil).Times(1)

	err := s.commands.Cancel(context.Background(), res.ID(), uuid.New(), user.RoleAdmin)
	s.NoError(err)
}

func (s *ReservationCommandsTestSuite) TestCancelAlreadyCancelled() {
	s.expectRoomType()
	s.expectTxPassthrough()

	res := s.bookConfirmed("2026-10-01", "2026-10-05")
	s.Require().NoError(res.Cancel())

	s.mockReservations.EXPECT().FindByID(gomock.Any(), res.ID()).Return(res, nil).Times(1)

	err := s.commands.Cancel(context.Background(), res.ID(), s.guestID, user.RoleGuest)
	s.ErrorIs(err, commands.ErrAlreadyCancelled)
}

func (s *ReservationCommandsTestSuite) TestCancelUnknownReservation() {
	id := uuid.New()
	s.mockReservations.EXPECT().FindByID(gomock.Any(), id).
		Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound)).Times(1)

	err := s.commands.Cancel(context.Background(), id, s.guestID, user.RoleGuest)
	s.ErrorIs(err, commands.ErrReservationNotFound)
}
