package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mmuldo/colormatch/cie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDuplicate(t *testing.T) {
	_, err := New([]Entry[int]{
		{ID: 1, Color: cie.RGB(0, 0, 0), Label: "a"},
		{ID: 1, Color: cie.RGB(1, 1, 1), Label: "b"},
	})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestNewInvalidEntry(t *testing.T) {
	_, err := New([]Entry[int]{{ID: 3, Color: cie.RGB(0, 2, 0), Label: "bad"}})
	assert.ErrorIs(t, err, cie.ErrInvalidInput)
	assert.ErrorContains(t, err, "catalog entry 3 (bad)")
}

func TestFromMap(t *testing.T) {
	c, err := FromMap(map[int]Entry[int]{
		11: {Color: cie.RGB(0.5, 0, 0.5), Label: "purple"},
		10: {Color: cie.RGB(1, 1, 1), Label: "white"},
		2:  {Color: cie.RGB(1, 0, 0), Label: "red"},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 10, 11}, c.Keys())

	e, ok := c.Lookup(10)
	require.True(t, ok)
	assert.Equal(t, "white", e.Label)
	assert.Equal(t, 10, e.ID)

	_, ok = c.Lookup(3)
	assert.False(t, ok)

	lab, ok := c.Lab(10)
	require.True(t, ok)
	assert.InDelta(t, 100, lab.L, 0.01)
}

func TestFindLabel(t *testing.T) {
	c := system(t)

	e, ok := c.FindLabel("Secondary Label")
	require.True(t, ok)
	assert.Equal(t, 2, e.ID)

	e, ok = c.FindLabel("BLACK")
	require.True(t, ok)
	assert.Equal(t, 12, e.ID)

	_, ok = c.FindLabel("magenta")
	assert.False(t, ok)
}

func TestEntriesOrdered(t *testing.T) {
	c := system(t)
	entries := c.Entries()
	require.Len(t, entries, 12)
	for i, e := range entries {
		assert.Equal(t, i+1, e.ID)
	}
	assert.Equal(t, "white", entries[9].Label)
	assert.Equal(t, "purple", entries[10].Label)
}

const catalogYAML = `
- id: 3
  label: teal
  color: "#008080"
- id: 1
  label: coral
  color: "#ff7f50"
- id: 2
  label: translucent navy
  color: 0,0,0.5,0.4
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(catalogYAML))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, c.Keys())

	e, ok := c.Lookup(2)
	require.True(t, ok)
	assert.Equal(t, cie.RGBA(0, 0, 0.5, 0.4), e.Color)

	r, err := c.Match(cie.RGB(0, 0.45, 0.45))
	require.NoError(t, err)
	assert.Equal(t, "teal", r.Label)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("id: 1"))
	assert.ErrorContains(t, err, "decode catalog")

	_, err = Parse([]byte("- id: 1\n  label: x\n  color: nope\n"))
	assert.ErrorContains(t, err, "catalog entry 1 (x)")

	_, err = Parse([]byte("- id: 1\n  color: '#000'\n- id: 1\n  color: '#fff'\n"))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfusable(t *testing.T) {
	c, err := New([]Entry[int]{
		{ID: 1, Color: cie.RGB(1, 0, 0), Label: "red"},
		{ID: 2, Color: cie.RGB(0, 0, 1), Label: "blue"},
		{ID: 3, Color: cie.RGB(0.98, 0.02, 0.01), Label: "almost red"},
	})
	require.NoError(t, err)

	pairs := Confusable(c, 5)
	require.Len(t, pairs, 1)
	assert.Equal(t, 1, pairs[0].A.ID)
	assert.Equal(t, 3, pairs[0].B.ID)
	assert.Less(t, pairs[0].Distance, 5.0)

	assert.Empty(t, Confusable(c, 0))
}

func TestConfusableSystem(t *testing.T) {
	// the label greys differ only in alpha, and label equals black
	pairs := Confusable(system(t), 1)
	var ids [][2]int
	for _, p := range pairs {
		ids = append(ids, [2]int{p.A.ID, p.B.ID})
	}
	assert.Equal(t, [][2]int{{1, 12}, {2, 3}, {2, 4}, {3, 4}}, ids)
}
