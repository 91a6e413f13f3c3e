package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinesIdentical(t *testing.T) {
	t.Parallel()

	res := Lines([]string{"FF0000", "00FF00"}, []string{"FF0000", "00FF00"})
	assert.True(t, res.Identical())
	assert.Empty(t, res.Unified("a", "b"))
	assert.Len(t, res.Lines, 2)
}

func TestLinesCountsChanges(t *testing.T) {
	t.Parallel()

	res := Lines(
		[]string{"000000", "111111", "222222"},
		[]string{"000000", "333333", "222222", "444444"},
	)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 1, res.Removed)
	assert.Equal(t, []Line{
		{Op: Equal, Text: "000000"},
		{Op: Delete, Text: "111111"},
		{Op: Insert, Text: "333333"},
		{Op: Equal, Text: "222222"},
		{Op: Insert, Text: "444444"},
	}, res.Lines)
}

func TestUnifiedFormat(t *testing.T) {
	t.Parallel()

	out := Lines([]string{"AAAAAA", "BBBBBB"}, []string{"AAAAAA", "CCCCCC"}).Unified("old.hex", "new.hex")
	assert.Equal(t, "--- old.hex\n+++ new.hex\n@@ -1,2 +1,2 @@\n AAAAAA\n-BBBBBB\n+CCCCCC\n", out)
}

func TestLinesEmptySides(t *testing.T) {
	t.Parallel()

	res := Lines(nil, []string{"ABCDEF"})
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 0, res.Removed)

	res = Lines([]string{"ABCDEF"}, nil)
	assert.Equal(t, 1, res.Removed)
	assert.True(t, Lines(nil, nil).Identical())
}

func TestUnifiedTruncatesLargeOutput(t *testing.T) {
	t.Parallel()

	var actual []string
	for i := 0; i < maxDiffLines+10; i++ {
		actual = append(actual, fmt.Sprintf("%06X", i))
	}

	out := Lines(nil, actual).Unified("a", "b")
	require.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
}
