package pagehash_test

import (
	"fmt"
	"strings"

	"github.com/bodgit/teletext/pagehash"
)

func ExampleDecode() {
	page, err := pagehash.Decode("https://example.com/#0:" + strings.Repeat("A", 1167))
	if err != nil {
		panic(err)
	}
	fmt.Println(len(page), len(page)/40)
	// Output: 1000 25
}

func ExampleDecodeBitstream() {
	cells, err := pagehash.DecodeBitstream("gA")
	if err != nil {
		panic(err)
	}
	fmt.Println(cells)
	// Output: [64]
}
