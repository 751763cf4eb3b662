package unty_test

import (
	"fmt"

	"go.dw1.io/unty"
)

// describe only knows its argument through a type parameter, but can still
// specialize for a concrete type.
func describe[S any](s S) string {
	if n, err := unty.To[uint8](s); err == nil {
		return fmt.Sprintf("it is a uint8 with value %d", n)
	}

	return "it is not a uint8"
}

func ExampleTo() {
	fmt.Println(describe(uint8(10)))
	fmt.Println(describe("test"))
	// Output:
	// it is a uint8 with value 10
	// it is not a uint8
}

func ExampleTypeEqual() {
	fmt.Println(unty.TypeEqual[int, int]())
	fmt.Println(unty.TypeEqual[int, int8]())
	// Output:
	// true
	// false
}
