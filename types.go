package recurgo

import (
	"fmt"

	"github.com/hupe1980/recurgo/matrix"
)

// Mode selects how recurrence-matrix entries are valued.
type Mode int

const (
	// ModeConnectivity stores 1 for linked frame pairs and 0 otherwise.
	ModeConnectivity Mode = iota
	// ModeDistance stores the raw metric distance between linked frames.
	ModeDistance
	// ModeAffinity stores exp(-distance/bandwidth), a value in (0, 1].
	ModeAffinity
)

func (m Mode) String() string {
	switch m {
	case ModeConnectivity:
		return "Connectivity"
	case ModeDistance:
		return "Distance"
	case ModeAffinity:
		return "Affinity"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// SimilarityMatrix is a square recurrence, distance or affinity matrix
// tagged with the mode it was built in. It is symmetric exactly when it
// was built with the mutual-neighbor constraint.
type SimilarityMatrix struct {
	matrix.Matrix

	// Mode records how the entries are valued.
	Mode Mode
}
