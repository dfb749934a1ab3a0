package fibonacci

import "fmt"

// ExampleCompute compares the two strategies on the same index.
func ExampleCompute() {
	rec, _ := Compute(10, Recursive)
	iter, _ := Compute(10, Iterative)

	fmt.Println(rec.Value, rec.Steps)
	fmt.Println(iter.Value, iter.Steps)
	// Output:
	// 55 177
	// 55 9
}

// ExampleDefaultFactory lists the registered calculators.
func ExampleDefaultFactory() {
	factory := NewDefaultFactory()
	fmt.Println(factory.List())

	calc, err := factory.Get("iterative")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	res, _ := calc.Calculate(50)
	fmt.Println(res.Value)
	// Output:
	// [iterative recursive]
	// 12586269025
}
