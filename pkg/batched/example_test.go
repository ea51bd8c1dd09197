package batched_test

import (
	"fmt"
	"slices"

	"github.com/rshade/batchview/pkg/batched"
)

func ExampleRange_Batched() {
	view := batched.Range{Lo: 0, Hi: 7}.Batched(3)
	for i, batch := range view.All() {
		fmt.Println(i, batch)
	}
	// Output:
	// 0 [0,3)
	// 1 [3,6)
	// 2 [6,7)
}

func Example_array() {
	pages := batched.ArrayOf([]string{"a", "b", "c", "d", "e"}).Batched(2)
	fmt.Println(pages.Count())
	fmt.Println(pages.At(2))
	for i, page := range pages.Backward() {
		fmt.Println(i, page)
	}
	// Output:
	// 3
	// [e]
	// 2 [e]
	// 1 [c d]
	// 0 [a b]
}

func Example_forwardOnly() {
	l := batched.NewList(1, 2, 3, 4, 5)
	for _, batch := range l.Batched(2).All() {
		fmt.Println(slices.Collect(batch.All()))
	}
	// Output:
	// [1 2]
	// [3 4]
	// [5]
}

func ExampleText_Batched() {
	for _, chunk := range batched.Text("héllo, wörld").Batched(4).All() {
		fmt.Printf("%q\n", chunk)
	}
	// Output:
	// "héll"
	// "o, w"
	// "örld"
}
