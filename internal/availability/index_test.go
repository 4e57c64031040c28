//go:build unit

package availability

import (
	"testing"
	"time"

	"stayline/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stay(t *testing.T, checkIn, checkOut string) reservation.StayRange {
	t.Helper()
	s, err := reservation.ParseStayRange(checkIn, checkOut)
	require.NoError(t, err)
	return s
}

func TestIndexOverlaps(t *testing.T) {
	t.Parallel()

	idx := NewIndex()
	idx.Insert(101, uuid.New(), stay(t, "2026-10-05", "2026-10-10"))

	assert.True(t, idx.Overlaps(101, stay(t, "2026-10-07", "2026-10-08")))
	assert.True(t, idx.Overlaps(101, stay(t, "2026-10-09", "2026-10-12")))
	assert.False(t, idx.Overlaps(101, stay(t, "2026-10-10", "2026-10-12")), "back-to-back is not overlap")
	assert.False(t, idx.Overlaps(101, stay(t, "2026-10-01", "2026-10-05")), "back-to-back is not overlap")
	assert.False(t, idx.Overlaps(102, stay(t, "2026-10-07", "2026-10-08")), "other units are independent")
}

func TestIndexInsertKeepsSpansSorted(t *testing.T) {
	t.Parallel()

	idx := NewIndex()
	idx.Insert(101, uuid.New(), stay(t, "2026-10-20", "2026-10-22"))
	idx.Insert(101, uuid.New(), stay(t, "2026-10-01", "2026-10-03"))
	idx.Insert(101, uuid.New(), stay(t, "2026-10-10", "2026-10-12"))

	spans := idx.byUnit[101]
	require.Len(t, spans, 3)
	for i := 1; i < len(spans); i++ {
		assert.True(t, spans[i-1].stay.CheckIn().Before(spans[i].stay.CheckIn()))
	}

	assert.True(t, idx.Overlaps(101, stay(t, "2026-10-02", "2026-10-11")))
	assert.False(t, idx.Overlaps(101, stay(t, "2026-10-04", "2026-10-09")))
}

func TestIndexRemove(t *testing.T) {
	t.Parallel()

	idx := NewIndex()
	resID := uuid.New()
	s := stay(t, "2026-10-05", "2026-10-10")
	idx.Insert(101, resID, s)

	assert.True(t, idx.Remove(101, resID))
	assert.False(t, idx.Overlaps(101, s))
	assert.False(t, idx.Remove(101, resID), "second removal is a no-op")
	assert.False(t, idx.Remove(101, uuid.New()))
}

func TestHasStayEndingAfter(t *testing.T) {
	t.Parallel()

	idx := NewIndex()
	idx.Insert(101, uuid.New(), stay(t, "2026-10-05", "2026-10-10"))

	before := time.Date(2026, 10, 7, 0, 0, 0, 0, time.UTC)
	after := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, idx.HasStayEndingAfter(101, before))
	assert.False(t, idx.HasStayEndingAfter(101, after), "check-out boundary does not block")
	assert.False(t, idx.HasStayEndingAfter(102, before))
}
