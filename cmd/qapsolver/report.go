// Final-result rendering. Instances of size 4 and 6 belong to the silicon
// spire fab scenario and render with its facility/bay names; everything
// else falls back to bare indices.
package main

import (
	"fmt"
	"io"

	"github.com/Prajwal-k-tech/siliconspire/gwo"
)

var facilityNames = map[int][]string{
	4: {
		"Photolithography Bay",
		"Etching & Cleaning Station",
		"Deposition Chamber",
		"Metrology & Inspection Hub",
	},
	6: {
		"Photolithography Bay",
		"Etching & Cleaning Station",
		"Deposition Chamber",
		"Metrology & Inspection Hub",
		"Ion Implantation Wing",
		"Wafer Probe & Test Lab",
	},
}

var bayNames = map[int][]string{
	4: {"Alpha", "Beta", "Gamma", "Delta"},
	6: {"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta"},
}

// writeReport prints the final block: best cost and the facility → location
// assignment, named when a scenario table matches the instance size.
func writeReport(w io.Writer, res gwo.Result) {
	fmt.Fprintf(w, "\n=== FINAL RESULTS ===\n")
	fmt.Fprintf(w, "Best cost found: %d\n", res.Cost)
	fmt.Fprintf(w, "Best assignment:\n")

	var (
		n          = len(res.Permutation)
		facilities = facilityNames[n]
		bays       = bayNames[n]
	)
	for i, loc := range res.Permutation {
		if facilities != nil {
			fmt.Fprintf(w, "  %s -> Bay %s\n", facilities[i], bays[loc])
			continue
		}
		fmt.Fprintf(w, "  Facility %d -> Location %d\n", i, loc)
	}
}
