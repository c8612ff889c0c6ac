package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/bplp/matrix"
)

// ExampleDense_Flatten shows the row-major convention shared with the LP adapter.
func ExampleDense_Flatten() {
	m, _ := matrix.NewFromRows([][]float64{
		{1, 2},
		{3, 4},
	})
	flat := m.Flatten()
	back, _ := matrix.NewFromVector(2, 2, flat)

	fmt.Println(flat)
	fmt.Print(back)
	fmt.Println(m.RowSums(), m.ColSums())
	// Output:
	// [1 2 3 4]
	// [1, 2]
	// [3, 4]
	// [3 7] [4 6]
}
