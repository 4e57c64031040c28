//go:build unit

package availability

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireTimesOutWhileHeld(t *testing.T) {
	t.Parallel()

	ledger := NewLedger([]int{101})

	lease, err := ledger.Acquire(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = ledger.Acquire(ctx)
	assert.ErrorIs(t, err, ErrBusy)

	lease.Release()

	lease2, err := ledger.Acquire(context.Background())
	require.NoError(t, err)
	lease2.Release()
}

func TestReleaseIsIdempotent(t *testing.T) {
	t.Parallel()

	ledger := NewLedger([]int{101})
	lease, err := ledger.Acquire(context.Background())
	require.NoError(t, err)

	lease.Release()
	lease.Release()

	lease2, err := ledger.Acquire(context.Background())
	require.NoError(t, err)
	lease2.Release()
}

func TestFindFreeUnitPrefersLowestUnit(t *testing.T) {
	t.Parallel()

	ledger := NewLedger([]int{103, 101, 102})
	lease, err := ledger.Acquire(context.Background())
	require.NoError(t, err)
	defer lease.Release()

	s := stay(t, "2026-10-01", "2026-10-03")

	unit, err := lease.FindFreeUnit(s)
	require.NoError(t, err)
	assert.Equal(t, 101, unit)

	lease.Insert(101, uuid.New(), s)
	unit, err = lease.FindFreeUnit(s)
	require.NoError(t, err)
	assert.Equal(t, 102, unit)

	lease.Insert(102, uuid.New(), s)
	lease.Insert(103, uuid.New(), s)
	_, err = lease.FindFreeUnit(s)
	assert.ErrorIs(t, err, ErrNoFreeUnit)
}

func TestFindFreeUnitEmptyPool(t *testing.T) {
	t.Parallel()

	ledger := NewLedger(nil)
	lease, err := ledger.Acquire(context.Background())
	require.NoError(t, err)
	defer lease.Release()

	_, err = lease.FindFreeUnit(stay(t, "2026-10-01", "2026-10-03"))
	assert.ErrorIs(t, err, ErrPoolEmpty)
}

func TestBlockedUnits(t *testing.T) {
	t.Parallel()

	ledger := NewLedger([]int{101, 102, 103})
	lease, err := ledger.Acquire(context.Background())
	require.NoError(t, err)
	defer lease.Release()

	lease.Insert(101, uuid.New(), stay(t, "2026-10-05", "2026-10-10"))
	lease.Insert(102, uuid.New(), stay(t, "2026-09-01", "2026-09-03"))

	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	blocked := lease.BlockedUnits([]int{101, 102, 103}, now)
	assert.Equal(t, []int{101}, blocked, "only future checkouts block")
}

// Concurrent bookings against a pool of k units for the same stay must
// produce exactly k winners, each on a distinct unit.
func TestConcurrentBookingsClaimDistinctUnits(t *testing.T) {
	t.Parallel()

	units := []int{101, 102, 103}
	ledger := NewLedger(units)
	s := stay(t, "2026-10-01", "2026-10-05")

	const goroutines = 20
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won []int
	)

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()

			lease, err := ledger.Acquire(context.Background())
			if err != nil {
				return
			}
			defer lease.Release()

			unit, err := lease.FindFreeUnit(s)
			if err != nil {
				return
			}
			lease.Insert(unit, uuid.New(), s)

			mu.Lock()
			won = append(won, unit)
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, won, len(units))
	claimed := make(map[int]bool)
	for _, u := range won {
		assert.False(t, claimed[u], "unit %d claimed twice", u)
		claimed[u] = true
	}
}

func TestRegistryGetOrCreate(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	id := uuid.New()

	_, ok := reg.Get(id)
	assert.False(t, ok)

	l1 := reg.GetOrCreate(id, []int{1, 2})
	l2 := reg.GetOrCreate(id, []int{9})
	assert.Same(t, l1, l2, "seed pool is ignored for an existing ledger")

	got, ok := reg.Get(id)
	require.True(t, ok)
	assert.Same(t, l1, got)
}
