package utils

import (
	"fmt"
	"io"

	"elevsim/src/types"
)

// PrintStatus writes one line per elevator, in fleet order.
func PrintStatus(w io.Writer, states []types.ElevState) {
	fmt.Fprintln(w, "\n=== Building Status ===")
	for _, state := range states {
		fmt.Fprintln(w, state)
	}
	fmt.Fprintln(w, "=======================")
}
