//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"stayline/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStay(t *testing.T, checkIn, checkOut string) reservation.StayRange {
	t.Helper()
	stay, err := reservation.ParseStayRange(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

func TestParseStayRange(t *testing.T) {
	t.Parallel()

	t.Run("valid range", func(t *testing.T) {
		t.Parallel()

		stay := mustStay(t, "2026-10-01", "2026-10-04")
		assert.Equal(t, 3, stay.Nights())
		assert.Equal(t, "[2026-10-01,2026-10-04)", stay.String())
	})

	t.Run("check-out equal to check-in is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := reservation.ParseStayRange("2026-10-01", "2026-10-01")
		assert.ErrorIs(t, err, reservation.ErrInvalidStayRange)
	})

	t.Run("check-out before check-in is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := reservation.ParseStayRange("2026-10-04", "2026-10-01")
		assert.ErrorIs(t, err, reservation.ErrInvalidStayRange)
	})

	t.Run("malformed dates are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := reservation.ParseStayRange("2026/10/01", "2026-10-04")
		assert.Error(t, err)

		_, err = reservation.ParseStayRange("2026-10-01", "tomorrow")
		assert.Error(t, err)
	})
}

func TestNewStayRangeTruncatesToMidnightUTC(t *testing.T) {
	t.Parallel()

	in := time.Date(2026, 10, 1, 15, 30, 0, 0, time.UTC)
	out := time.Date(2026, 10, 3, 9, 0, 0, 0, time.UTC)

	stay, err := reservation.NewStayRange(in, out)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), stay.CheckIn())
	assert.Equal(t, time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), stay.CheckOut())
	assert.Equal(t, 2, stay.Nights())
}

func TestStayRangeOverlaps(t *testing.T) {
	t.Parallel()

	base := mustStay(t, "2026-10-05", "2026-10-10")

	tests := []struct {
		name  string
		other reservation.StayRange
		want  bool
	}{
		{"identical range", mustStay(t, "2026-10-05", "2026-10-10"), true},
		{"contained range", mustStay(t, "2026-10-06", "2026-10-08"), true},
		{"overlapping start", mustStay(t, "2026-10-03", "2026-10-06"), true},
		{"overlapping end", mustStay(t, "2026-10-09", "2026-10-12"), true},
		{"surrounding range", mustStay(t, "2026-10-01", "2026-10-20"), true},
		{"back-to-back before", mustStay(t, "2026-10-01", "2026-10-05"), false},
		{"back-to-back after", mustStay(t, "2026-10-10", "2026-10-14"), false},
		{"disjoint before", mustStay(t, "2026-09-01", "2026-09-05"), false},
		{"disjoint after", mustStay(t, "2026-11-01", "2026-11-05"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestNewMoney(t *testing.T) {
	t.Parallel()

	m, err := reservation.NewMoney(12550)
	require.NoError(t, err)
	assert.Equal(t, int64(12550), m.Cents())
	assert.InDelta(t, 125.50, m.Dollars(), 0.001)

	_, err = reservation.NewMoney(-1)
	assert.Error(t, err)
}
