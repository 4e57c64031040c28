//go:build unit

package reservation_test

import (
	"testing"

	"stayline/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() reservation.RoomTypeSpec {
	return reservation.RoomTypeSpec{
		ID:           uuid.New(),
		HotelID:      uuid.New(),
		NightlyCents: 15000,
		MaxOccupancy: 4,
	}
}

func TestNewReservation(t *testing.T) {
	t.Parallel()

	spec := testSpec()
	guestID := uuid.New()
	stay := mustStay(t, "2026-10-01", "2026-10-04")

	t.Run("confirmed with total of nights times nightly rate", func(t *testing.T) {
		t.Parallel()

		res, err := reservation.NewReservation(spec, guestID, 101, stay, 2, 1)
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, reservation.PaymentUnpaid, res.PaymentStatus())
		assert.Equal(t, int64(45000), res.Total().Cents())
		assert.Equal(t, 101, res.Unit())
		assert.True(t, res.IsActive())
	})

	t.Run("requires at least one adult", func(t *testing.T) {
		t.Parallel()

		_, err := reservation.NewReservation(spec, guestID, 101, stay, 0, 2)
		assert.ErrorIs(t, err, reservation.ErrInvalidOccupants)
	})

	t.Run("rejects negative children", func(t *testing.T) {
		t.Parallel()

		_, err := reservation.NewReservation(spec, guestID, 101, stay, 1, -1)
		assert.ErrorIs(t, err, reservation.ErrInvalidOccupants)
	})

	t.Run("rejects occupants beyond capacity", func(t *testing.T) {
		t.Parallel()

		_, err := reservation.NewReservation(spec, guestID, 101, stay, 3, 2)
		assert.ErrorIs(t, err, reservation.ErrOccupancyExceeded)
	})
}

func TestReservationCancel(t *testing.T) {
	t.Parallel()

	res, err := reservation.NewReservation(testSpec(), uuid.New(), 101, mustStay(t, "2026-10-01", "2026-10-02"), 1, 0)
	require.NoError(t, err)

	require.NoError(t, res.Cancel())
	assert.True(t, res.IsCancelled())
	assert.False(t, res.IsActive())

	assert.ErrorIs(t, res.Cancel(), reservation.ErrAlreadyCancelled)
}

func TestHasFutureCheckout(t *testing.T) {
	t.Parallel()

	res, err := reservation.NewReservation(testSpec(), uuid.New(), 101, mustStay(t, "2026-10-01", "2026-10-04"), 1, 0)
	require.NoError(t, err)

	assert.True(t, res.HasFutureCheckout(mustStay(t, "2026-10-01", "2026-10-02").CheckIn()))
	assert.True(t, res.HasFutureCheckout(mustStay(t, "2026-10-03", "2026-10-04").CheckIn()))
	assert.False(t, res.HasFutureCheckout(res.Stay().CheckOut()))
}
