// internal/sshconf/collection_test.go

package sshconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCollection(ids ...string) *Collection {
	hosts := make([]Host, len(ids))
	for i, id := range ids {
		hosts[i] = Host{ID: id}
	}
	return NewCollection(hosts)
}

func selected(t *testing.T, c *Collection) int {
	t.Helper()
	i, ok := c.Selected()
	require.True(t, ok, "expected a selection")
	return i
}

func TestNewCollectionHasNoSelection(t *testing.T) {
	c := testCollection("a", "b")
	_, ok := c.Selected()
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, c.Total())
}

func TestSelectNextIsBounded(t *testing.T) {
	c := testCollection("a", "b", "c")

	c.SelectNext()
	assert.Equal(t, 0, selected(t, c))

	for i := 0; i < 10; i++ {
		c.SelectNext()
	}
	assert.Equal(t, 2, selected(t, c), "must converge to the last index and stay")
}

func TestSelectPreviousIsBounded(t *testing.T) {
	c := testCollection("a", "b", "c")

	// With no selection, previous enters the list from the bottom.
	c.SelectPrevious()
	assert.Equal(t, 2, selected(t, c))

	for i := 0; i < 10; i++ {
		c.SelectPrevious()
	}
	assert.Equal(t, 0, selected(t, c), "must converge to index 0 and stay")
}

func TestNavigationOnEmptyCollection(t *testing.T) {
	c := testCollection()

	c.SelectNext()
	c.SelectPrevious()
	c.SelectFirst()
	c.SelectLast()
	c.ToggleExpand()

	_, ok := c.Selected()
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestSelectFirstAndLast(t *testing.T) {
	c := testCollection("a", "b", "c", "d")

	c.SelectLast()
	assert.Equal(t, 3, selected(t, c))
	c.SelectFirst()
	assert.Equal(t, 0, selected(t, c))
}

func TestClearSelection(t *testing.T) {
	c := testCollection("a", "b")
	c.SelectNext()
	c.ClearSelection()
	_, ok := c.Selected()
	assert.False(t, ok)

	// Clearing twice is fine.
	c.ClearSelection()
	_, ok = c.Selected()
	assert.False(t, ok)
}

func TestToggleExpandPairsUp(t *testing.T) {
	c := testCollection("a", "b")
	c.SelectNext()

	c.ToggleExpand()
	assert.True(t, c.At(0).Expanded)
	c.ToggleExpand()
	assert.False(t, c.At(0).Expanded)
}

func TestToggleExpandWithoutSelection(t *testing.T) {
	c := testCollection("a")
	c.ToggleExpand()
	assert.False(t, c.At(0).Expanded)
}

func TestSetViewKeepsVisibleSelection(t *testing.T) {
	c := testCollection("alpha", "beta", "gamma")
	c.SelectNext()
	c.SelectNext() // beta

	c.SetView([]int{1, 2})
	assert.Equal(t, 0, selected(t, c), "beta moved to view position 0")
	assert.Equal(t, "beta", c.At(0).ID)
}

func TestSetViewClearsHiddenSelection(t *testing.T) {
	c := testCollection("alpha", "beta", "gamma")
	c.SelectFirst() // alpha

	c.SetView([]int{1, 2})
	_, ok := c.Selected()
	assert.False(t, ok)
}

func TestSetViewEmpty(t *testing.T) {
	c := testCollection("alpha", "beta")
	c.SelectFirst()

	c.SetView(nil)
	assert.Equal(t, 0, c.Len())
	_, ok := c.Selected()
	assert.False(t, ok)

	c.SelectNext()
	_, ok = c.Selected()
	assert.False(t, ok)
}

func TestResetViewRestoresAllHosts(t *testing.T) {
	c := testCollection("alpha", "beta", "gamma")
	c.SetView([]int{2})
	c.SelectFirst()

	c.ResetView()
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 2, selected(t, c), "gamma keeps its selection at its full-list position")
	assert.Equal(t, "gamma", c.At(2).ID)
}

func TestExpandedSurvivesFiltering(t *testing.T) {
	c := testCollection("alpha", "beta")
	c.SelectLast()
	c.ToggleExpand()

	c.SetView([]int{0})
	c.ResetView()
	assert.True(t, c.At(1).Expanded)
}
