package tabular_test

import (
	"fmt"
	"strings"

	"github.com/Bmdistef/ggcor/tabular"
)

// ExampleFromCSV parses a small table and slices one column block.
func ExampleFromCSV() {
	in := strings.NewReader("ph,temp,depth\n6.5,12,3\n7.0,11,2\n7.2,16,8\n")

	tbl, err := tabular.FromCSV(in)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	block, err := tbl.Select("depth", "ph")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(block.Columns(), block.Rows(), block.At(2, 0))
	// Output:
	// [depth ph] 3 8
}

// ExampleTable_SplitBy partitions rows by a grouping vector; groups come
// back in first-appearance order.
func ExampleTable_SplitBy() {
	tbl, _ := tabular.New(
		[]string{"v"},
		[][]float64{{1}, {2}, {3}, {4}},
	)
	groups, _ := tbl.SplitBy([]string{"b", "a", "b", "a"})
	for _, g := range groups {
		fmt.Println(g.Label, g.Table.Rows())
	}
	// Output:
	// b 2
	// a 2
}
