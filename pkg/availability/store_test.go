package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetAbsentMeansNoOverride(t *testing.T) {
	t.Parallel()

	s := NewStore()
	status, ok := s.Get("tech-1", "2024-05-01")
	require.False(t, ok)
	require.Empty(t, status)
}

func TestStore_SetOneAndRemove(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.SetOne(Key("tech-1", "2024-05-01"), StatusVacation)

	status, ok := s.Get("tech-1", "2024-05-01")
	require.True(t, ok)
	require.Equal(t, StatusVacation, status)

	s.Remove(Key("tech-1", "2024-05-01"))
	_, ok = s.Get("tech-1", "2024-05-01")
	require.False(t, ok)
}

func TestStore_SetAllReplacesWholesale(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.SetOne(Key("tech-1", "2024-05-01"), StatusSick)

	s.SetAll(map[string]Status{
		Key("tech-2", "2024-05-02"): StatusWarehouse,
	})

	_, ok := s.Get("tech-1", "2024-05-01")
	require.False(t, ok)
	status, ok := s.Get("tech-2", "2024-05-02")
	require.True(t, ok)
	require.Equal(t, StatusWarehouse, status)
}

func TestStore_SnapshotStableWithoutMutation(t *testing.T) {
	t.Parallel()

	s := NewStore()
	s.SetOne(Key("tech-1", "2024-05-01"), StatusTravel)

	first := s.Snapshot()
	second := s.Snapshot()
	assert.True(t, mapsShareReference(first, second), "snapshot reference changed without mutation")

	s.SetOne(Key("tech-1", "2024-05-02"), StatusTravel)
	third := s.Snapshot()
	assert.False(t, mapsShareReference(first, third), "snapshot reference survived a mutation")
	// The old snapshot is untouched by the mutation.
	_, ok := first[Key("tech-1", "2024-05-02")]
	assert.False(t, ok)
}

func TestStore_SubscribersNotifiedOnEveryMutation(t *testing.T) {
	t.Parallel()

	s := NewStore()
	calls := 0
	unsubscribe := s.Subscribe(func() { calls++ })

	s.SetOne("k", StatusDayOff)
	s.SetAll(map[string]Status{})
	s.Remove("k")
	require.Equal(t, 3, calls)

	unsubscribe()
	s.SetOne("k", StatusDayOff)
	require.Equal(t, 3, calls)
}

func TestStore_ListenerSeesFullyUpdatedSnapshot(t *testing.T) {
	t.Parallel()

	s := NewStore()
	var seen map[string]Status
	s.Subscribe(func() { seen = s.Snapshot() })

	s.SetAll(map[string]Status{
		Key("tech-1", "2024-05-01"): StatusVacation,
		Key("tech-2", "2024-05-01"): StatusSick,
	})
	require.Len(t, seen, 2)
}

func TestStore_ReentrantMutationDoesNotDeadlock(t *testing.T) {
	t.Parallel()

	s := NewStore()
	patched := false
	s.Subscribe(func() {
		if !patched {
			patched = true
			s.SetOne(Key("tech-2", "2024-05-01"), StatusUnavailable)
		}
	})

	s.SetOne(Key("tech-1", "2024-05-01"), StatusVacation)

	_, ok := s.Get("tech-1", "2024-05-01")
	require.True(t, ok)
	_, ok = s.Get("tech-2", "2024-05-01")
	require.True(t, ok)
}

func TestStore_SubscribeDuringNotifyDeferredToNextCycle(t *testing.T) {
	t.Parallel()

	s := NewStore()
	lateCalls := 0
	added := false
	s.Subscribe(func() {
		if !added {
			added = true
			s.Subscribe(func() { lateCalls++ })
		}
	})

	s.SetOne("k1", StatusTravel)
	require.Equal(t, 0, lateCalls, "listener added during notify ran in the same cycle")

	s.SetOne("k2", StatusTravel)
	require.Equal(t, 1, lateCalls)
}

func TestStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, status := range []Status{StatusVacation, StatusTravel, StatusSick, StatusDayOff, StatusUnavailable, StatusWarehouse} {
		assert.True(t, status.Valid(), "%s", status)
	}
	assert.False(t, Status("available").Valid())
	assert.False(t, Status("").Valid())
}

func TestKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "tech-1-2024-05-01", Key("tech-1", "2024-05-01"))
}

// mapsShareReference reports whether both maps are the same underlying map by
// probing a write through one and observing it in the other.
func mapsShareReference(a, b map[string]Status) bool {
	if len(a) != len(b) {
		return false
	}
	const probe = "__probe__"
	a[probe] = StatusSick
	_, shared := b[probe]
	delete(a, probe)
	return shared
}
