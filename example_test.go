package rectarena_test

import (
	"fmt"

	"github.com/vkngwrapper/rectarena"
)

func Example() {
	arena := rectarena.New(100, 50)

	header, err := arena.Allocate(100, 10)
	if err != nil {
		panic(err)
	}
	fmt.Println("header", header)

	sidebar, err := arena.Allocate(20, 40)
	if err != nil {
		panic(err)
	}
	fmt.Println("sidebar", sidebar)

	_, err = arena.Allocate(100, 50)
	kind, _ := rectarena.KindOf(err)
	fmt.Println(kind)

	if err := arena.Release(sidebar); err != nil {
		panic(err)
	}
	fmt.Println(arena.AllocationCount(), arena.SumFreeArea())

	// Output:
	// header 100x10@(0, 0)
	// sidebar 20x40@(0, 10)
	// OutOfSpace
	// 1 4000
}
