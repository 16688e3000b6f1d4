package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/gaussteps/matrix"
)

// ExampleNewFromRows builds the augmented matrix of 2x + y = 5, x + 3y = 10.
func ExampleNewFromRows() {
	m, err := matrix.NewFromRows([][]float64{{2, 1, 5}, {1, 3, 10}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m.Rows(), "equations,", m.Vars(), "variables")
	fmt.Print(m)

	// Output:
	// 2 equations, 2 variables
	// [2, 1, 5]
	// [1, 3, 10]
}
