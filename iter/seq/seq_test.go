package seq

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSeqIter(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	iter := New(slices.Values([]string{"a", "b", "c"}))
	defer iter.Stop()

	got := []string{}
	for iter.Next(ctx) {
		got = append(got, iter.Get())
	}

	assert.Equal([]string{"a", "b", "c"}, got)
	assert.Nil(iter.Error())
	assert.Equal("", iter.Get())
}

func TestSeqIterStop(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	cleanedUp := false
	endless := func(yield func(int) bool) {
		defer func() { cleanedUp = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}

	iter := New(endless)
	assert.True(iter.Next(ctx))
	assert.True(iter.Next(ctx))
	assert.Equal(1, iter.Get())

	iter.Stop()
	iter.Stop()
	assert.True(cleanedUp)
	assert.False(iter.Next(ctx))
}

func TestSeqIterCancelled(t *testing.T) {
	assert := assert.New(t)
	ctx, cancel := context.WithCancel(context.Background())

	iter := New(slices.Values([]int{1, 2, 3}))
	assert.True(iter.Next(ctx))

	cancel()
	assert.False(iter.Next(ctx))
	assert.ErrorIs(iter.Error(), context.Canceled)
}

func TestRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       []int
	}{
		{name: "several", start: 2, end: 6, want: []int{2, 3, 4, 5}},
		{name: "negative start", start: -2, end: 1, want: []int{-2, -1, 0}},
		{name: "empty", start: 3, end: 3, want: []int{}},
		{name: "reversed", start: 5, end: 1, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iter := Range(tt.start, tt.end)
			assert.Equal(t, uint(len(tt.want)), iter.Size())

			got := []int{}
			for iter.Next(context.Background()) {
				got = append(got, iter.Get())
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, uint(0), iter.Size())
		})
	}
}

func TestFrom(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	iter := From(uint8(250))
	assert.Equal(uint(0), iter.Size())

	for want := uint8(250); want < 255; want++ {
		assert.True(iter.Next(ctx))
		assert.Equal(want, iter.Get())
	}

	ctx, cancel := context.WithCancel(ctx)
	cancel()
	assert.False(iter.Next(ctx))
	assert.ErrorIs(iter.Error(), context.Canceled)
}
