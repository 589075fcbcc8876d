package transduce

import (
	"strconv"
	"testing"

	"github.com/jake-scott/go-transduce/iter/slice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		xf    Transducer[int, []int]
		want  [][]int
	}{
		{
			name:  "partition all with remainder",
			input: []int{1, 2, 3, 4, 5},
			xf:    PartitionAll[int](2),
			want:  [][]int{{1, 2}, {3, 4}, {5}},
		},
		{
			name:  "partition all exact",
			input: []int{1, 2, 3, 4},
			xf:    PartitionAll[int](2),
			want:  [][]int{{1, 2}, {3, 4}},
		},
		{
			name:  "partition all larger than input",
			input: []int{1, 2},
			xf:    PartitionAll[int](5),
			want:  [][]int{{1, 2}},
		},
		{
			name:  "partition all empty",
			input: []int{},
			xf:    PartitionAll[int](3),
			want:  [][]int{},
		},
		{
			name:  "partition by parity",
			input: []int{1, 3, 2, 4, 5},
			xf:    PartitionBy(isOdd),
			want:  [][]int{{1, 3}, {2, 4}, {5}},
		},
		{
			name:  "partition by constant",
			input: []int{1, 2, 3},
			xf:    PartitionBy(func(int) bool { return true }),
			want:  [][]int{{1, 2, 3}},
		},
		{
			name:  "partition by empty",
			input: []int{},
			xf:    PartitionBy(isOdd),
			want:  [][]int{},
		},
		{
			name:  "take before partition flushes the partial group",
			input: []int{1, 2, 3, 4, 5, 6},
			xf:    Compose(Take[int](3), PartitionAll[int](2)),
			want:  [][]int{{1, 2}, {3}},
		},
		{
			name:  "take after partition by",
			input: []int{1, 1, 2, 2, 3},
			xf:    Compose(PartitionBy(func(i int) int { return i }), Take[[]int](1)),
			want:  [][]int{{1, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transduce(slice.New(tt.input), tt.xf, Collect[[]int]())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPartitionGroupsAreIndependent(t *testing.T) {
	assert := assert.New(t)

	got, err := Transduce(slice.New([]int{1, 2, 3, 4}), PartitionAll[int](2), Collect[[]int]())
	assert.NoError(err)

	got[0][0] = 100
	assert.Equal([]int{3, 4}, got[1])
}

func TestPartitionByStopsAtFlush(t *testing.T) {
	assert := assert.New(t)

	src := counting[int](slice.New([]int{1, 1, 2, 2, 3}))
	xf := Compose(PartitionBy(func(i int) int { return i }), Take[[]int](1))
	got, err := Transduce(src, xf, Collect[[]int]())
	assert.NoError(err)
	assert.Equal([][]int{{1, 1}}, got)
	assert.Equal(3, src.calls)
}

func TestPartitionAllInvalid(t *testing.T) {
	assert := assert.New(t)

	for _, n := range []int{0, -2} {
		err := recoverError(func() { PartitionAll[int](n) })
		assert.ErrorIs(err, ErrInvalidArgument)
		assert.EqualError(err, "PartitionAll: n must be positive, got "+strconv.Itoa(n))
	}
}
