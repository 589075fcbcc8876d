package xform_test

import (
	"iter"
	"strconv"
	"strings"
	"testing"

	"github.com/jake-scott/go-transduce"
	"github.com/jake-scott/go-transduce/iter/slice"
	"github.com/jake-scott/go-transduce/xform"
	"github.com/stretchr/testify/assert"
)

func isEven(i int) bool {
	return i%2 == 0
}

func TestBuilderReuse(t *testing.T) {
	assert := assert.New(t)

	xf := xform.Map(xform.New[int]().Filter(isEven).Take(2), strconv.Itoa).Build()

	// the built transducer is applied twice with independent stage state
	for _, input := range [][]int{{1, 2, 3, 4, 6}, {8, 9, 10}} {
		got, err := transduce.Transduce(slice.New(input), xf, transduce.Collect[string]())
		assert.NoError(err)
		assert.Len(got, 2)
	}

	joined, err := transduce.Transduce(slice.New([]int{2, 4, 6}), xf, transduce.Join[string]("+"))
	assert.NoError(err)
	assert.Equal("2+4", joined)
}

func TestBuilderStages(t *testing.T) {
	input := []int{1, 1, 2, 3, 4, 5, 6, 7, 8}

	tests := []struct {
		name string
		b    *xform.Builder[int, int]
		want []int
	}{
		{name: "empty", b: xform.New[int](), want: input},
		{name: "remove", b: xform.New[int]().Remove(isEven), want: []int{1, 1, 3, 5, 7}},
		{
			name: "filter indexed",
			b:    xform.New[int]().FilterIndexed(func(i int, _ int) bool { return i%4 == 0 }),
			want: []int{1, 4, 8},
		},
		{name: "drop", b: xform.New[int]().Drop(6), want: []int{6, 7, 8}},
		{
			name: "drop while then take while",
			b: xform.New[int]().
				DropWhile(func(i int) bool { return i < 3 }).
				TakeWhile(func(i int) bool { return i < 6 }),
			want: []int{3, 4, 5},
		},
		{name: "take nth", b: xform.New[int]().TakeNth(3), want: []int{1, 3, 6}},
		{name: "interpose", b: xform.New[int]().Take(3).Interpose(-1), want: []int{1, -1, 1, -1, 2}},
		{name: "dedupe", b: xform.Dedupe(xform.New[int]()).Take(3), want: []int{1, 2, 3}},
		{
			name: "dedupe func",
			b:    xform.New[int]().DedupeFunc(func(a, b int) bool { return isEven(a) == isEven(b) }),
			want: []int{1, 2, 3, 4, 5, 6, 7, 8},
		},
		{
			name: "compose",
			b:    xform.New[int]().Compose(transduce.Drop[int](7)),
			want: []int{7, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := transduce.Transduce(slice.New(input), tt.b.Build(), transduce.Collect[int]())
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuilderTypeChanging(t *testing.T) {
	assert := assert.New(t)
	words := []string{"a1", "b", "c22", "d"}

	lengths := xform.MapIndexed(xform.New[string](), func(i int, s string) int { return i * len(s) }).Build()
	got, err := transduce.Transduce(slice.New(words), lengths, transduce.Collect[int]())
	assert.NoError(err)
	assert.Equal([]int{0, 1, 6, 3}, got)

	digits := xform.Keep(xform.New[string](), func(s string) (int, bool) {
		n, err := strconv.Atoi(strings.TrimLeft(s, "abcd"))
		return n, err == nil
	}).Build()
	got, err = transduce.Transduce(slice.New(words), digits, transduce.Collect[int]())
	assert.NoError(err)
	assert.Equal([]int{1, 22}, got)

	chars := xform.FlatMapSlice(xform.New[string](), func(s string) []byte { return []byte(s) })
	n, err := transduce.Transduce(slice.New(words), chars.Build(), transduce.Count[byte]())
	assert.NoError(err)
	assert.Equal(7, n)

	pairs := xform.PartitionAll(xform.New[string](), 2).Build()
	grouped, err := transduce.Transduce(slice.New(words), pairs, transduce.Collect[[]string]())
	assert.NoError(err)
	assert.Equal([][]string{{"a1", "b"}, {"c22", "d"}}, grouped)

	byLen := xform.PartitionBy(xform.New[string](), func(s string) int { return len(s) }).Build()
	grouped, err = transduce.Transduce(slice.New([]string{"a", "b", "cc", "d"}), byLen, transduce.Collect[[]string]())
	assert.NoError(err)
	assert.Equal([][]string{{"a", "b"}, {"cc"}, {"d"}}, grouped)

	upper := xform.Then(xform.New[string]().Take(1), transduce.Map(strings.ToUpper)).Build()
	got2, err := transduce.Transduce(slice.New(words), upper, transduce.Collect[string]())
	assert.NoError(err)
	assert.Equal([]string{"A1"}, got2)
}

func TestBuilderLazy(t *testing.T) {
	assert := assert.New(t)

	xf := xform.FlatMap(xform.New[int](), func(i int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for range i {
				if !yield(i) {
					return
				}
			}
		}
	}).Build()

	it := transduce.Lazy(slice.New([]int{1, 2, 3}), xf)
	got := []int{}
	for v := range it.All(t.Context()) {
		got = append(got, v)
	}
	assert.Equal([]int{1, 2, 2, 3, 3, 3}, got)
}
