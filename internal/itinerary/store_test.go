package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(s *Store, day int) []string {
	snap, _ := s.Snapshot()
	return snap.Days[day].StopTexts()
}

func TestAddStop(t *testing.T) {
	s := NewStore()

	stop, ok := s.AddStop("  Eiffel Tower, Paris  ")
	require.True(t, ok)
	assert.Equal(t, "Eiffel Tower, Paris", stop.Text)
	assert.NotEmpty(t, stop.ID)

	_, ok = s.AddStop("   ")
	assert.False(t, ok, "blank input should be ignored")

	assert.Equal(t, []string{"Eiffel Tower, Paris"}, texts(s, 0))
}

func TestAddStopGoesToLastDay(t *testing.T) {
	s := NewStore()
	s.AddStop("Louvre")
	s.AddDay()
	s.AddStop("Versailles")

	assert.Equal(t, []string{"Louvre"}, texts(s, 0))
	assert.Equal(t, []string{"Versailles"}, texts(s, 1))
}

func TestRemoveThenReAddLandsAtEnd(t *testing.T) {
	s := NewStore()
	s.AddStop("A")
	s.AddStop("B")
	s.AddStop("C")

	s.RemoveStop(0, 0)
	s.AddStop("A")

	// re-adding does not restore the original position
	assert.Equal(t, []string{"B", "C", "A"}, texts(s, 0))
}

func TestRemoveStopOutOfRange(t *testing.T) {
	s := NewStore()
	s.AddStop("A")

	s.RemoveStop(5, 0)
	s.RemoveStop(0, 3)
	s.RemoveStop(-1, -1)

	assert.Equal(t, []string{"A"}, texts(s, 0))
}

func TestNeverZeroDays(t *testing.T) {
	s := NewStore()
	s.AddStop("A")
	s.AddStop("B")
	s.RemoveStop(0, 0)
	s.RemoveStop(0, 0)

	snap, _ := s.Snapshot()
	require.Len(t, snap.Days, 1, "draining the only day must leave it in place")
	assert.Empty(t, snap.Days[0].Stops)
}

func TestReorderTwoElementInvolution(t *testing.T) {
	s := NewStore()
	a, _ := s.AddStop("A")
	b, _ := s.AddStop("B")

	s.ReorderStops(0, a.ID, b.ID)
	assert.Equal(t, []string{"B", "A"}, texts(s, 0))

	s.ReorderStops(0, b.ID, a.ID)
	assert.Equal(t, []string{"A", "B"}, texts(s, 0))
}

func TestReorderThreeElements(t *testing.T) {
	s := NewStore()
	x, _ := s.AddStop("X")
	s.AddStop("Y")
	z, _ := s.AddStop("Z")

	// moving X to Z's position shifts the middle element down
	s.ReorderStops(0, x.ID, z.ID)
	assert.Equal(t, []string{"Y", "Z", "X"}, texts(s, 0))
}

func TestReorderNoOps(t *testing.T) {
	s := NewStore()
	a, _ := s.AddStop("A")
	s.AddStop("B")

	s.ReorderStops(0, a.ID, a.ID)
	s.ReorderStops(0, a.ID, "missing")
	s.ReorderStops(3, a.ID, a.ID)

	assert.Equal(t, []string{"A", "B"}, texts(s, 0))
}

func TestImportReplacesEverything(t *testing.T) {
	s := NewStore()
	s.AddStop("A")
	s.AddDay()
	s.AddStop("B")

	s.Import([][]string{{"C"}})

	snap, _ := s.Snapshot()
	require.Len(t, snap.Days, 1)
	assert.Equal(t, []string{"C"}, snap.Days[0].StopTexts())
}

func TestImportEmptyKeepsOneDay(t *testing.T) {
	s := NewStore()
	s.AddStop("A")

	s.Import(nil)

	snap, _ := s.Snapshot()
	require.Len(t, snap.Days, 1)
	assert.Empty(t, snap.Days[0].Stops)
}

func TestImportDropsBlankStops(t *testing.T) {
	s := NewStore()
	s.Import([][]string{{" Louvre ", "  ", "Eiffel Tower"}})

	assert.Equal(t, []string{"Louvre", "Eiffel Tower"}, texts(s, 0))
}

func TestDuplicateStopsPermitted(t *testing.T) {
	s := NewStore()
	s.AddStop("Louvre")
	s.AddStop("Louvre")

	assert.Equal(t, []string{"Louvre", "Louvre"}, texts(s, 0))
}

func TestVersionBumpsOnMutation(t *testing.T) {
	s := NewStore()
	v0 := s.Version()
	s.AddStop("A")
	v1 := s.Version()
	assert.Greater(t, v1, v0)

	snap, sv := s.Snapshot()
	assert.Equal(t, v1, sv)

	// mutating the snapshot must not touch the store
	snap.Days[0].Stops[0].Text = "hacked"
	assert.Equal(t, []string{"A"}, texts(s, 0))
}
