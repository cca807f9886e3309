package indexheap_test

import (
	"fmt"

	"github.com/katalvlaran/shortpath/indexheap"
)

// ExampleHeap shows insert, decrease-key and draining in key order.
func ExampleHeap() {
	h, _ := indexheap.New(3)
	_, _ = h.DecreaseKeyOrInsert(1, 7)
	_, _ = h.DecreaseKeyOrInsert(2, 3)
	_, _ = h.DecreaseKeyOrInsert(3, 5)
	_, _ = h.DecreaseKeyOrInsert(1, 1) // 7 → 1

	for !h.IsEmpty() {
		v, k, _ := h.ExtractMin()
		fmt.Printf("%d:%d ", v, k)
	}
	fmt.Println()
	// Output: 1:1 2:3 3:5
}
