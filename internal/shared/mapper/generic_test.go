package mapper

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSlice(t *testing.T) {
	got := MapSlice([]int{1, 2, 3}, strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, got)

	empty := MapSlice[int, string](nil, strconv.Itoa)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestMapSliceWithError(t *testing.T) {
	got, err := MapSliceWithError([]string{"1", "2"}, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	_, err = MapSliceWithError([]string{"1", "x"}, strconv.Atoi)
	assert.Error(t, err)

	failing := func(string) (int, error) { return 0, errors.New("boom") }
	_, err = MapSliceWithError([]string{"a"}, failing)
	assert.EqualError(t, err, "boom")
}

func TestFilterAndIndexBy(t *testing.T) {
	even := Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)

	idx := IndexBy([]string{"a", "bb"}, func(s string) int { return len(s) })
	assert.Equal(t, "bb", idx[2])
}
