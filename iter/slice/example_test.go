package slice_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/jake-scott/go-transduce"
	"github.com/jake-scott/go-transduce/iter/slice"
)

func ExampleIterator() {
	input := []string{"dog", "cat", "fox", "pigeon"}

	ctx := context.Background()
	src := slice.New(input)

	// upper case the first three animals; the last is never read
	iter := transduce.Lazy(src, transduce.Compose(
		transduce.Map(strings.ToUpper),
		transduce.Take[string](3),
	))

	for animal := range iter.All(ctx) {
		fmt.Printf("Animal: <%s>\n", animal)
	}

	if err := iter.Error(); err != nil {
		panic(err)
	}

	fmt.Printf("Read %d of %d\n", src.Pos(), src.Size())

	// output:
	// Animal: <DOG>
	// Animal: <CAT>
	// Animal: <FOX>
	// Read 3 of 4
}
