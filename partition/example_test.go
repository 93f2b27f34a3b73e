package partition_test

import (
	"fmt"

	"github.com/katalvlaran/parlab/partition"
)

// ExampleSplit shows how ten rows are shared between four workers.
func ExampleSplit() {
	rs, _ := partition.Split(10, 4)
	for i, r := range rs {
		fmt.Printf("worker %d: %v (%d rows)\n", i, r, r.Len())
	}

	// Output:
	// worker 0: [0,3) (3 rows)
	// worker 1: [3,6) (3 rows)
	// worker 2: [6,8) (2 rows)
	// worker 3: [8,10) (2 rows)
}
