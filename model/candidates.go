package model

// Candidates represents raw, not yet validated input supplied by discovery
type Candidates struct {
	// Groups holds group candidates keyed by group id
	Groups *Fields
	// Definitions holds workflow candidates keyed by workflow id
	Definitions *Fields
	// Sources maps workflow id to the location it was discovered at
	Sources map[string]string
}

// NewCandidates creates empty candidates
func NewCandidates() *Candidates {
	return &Candidates{Groups: &Fields{}, Definitions: &Fields{}, Sources: map[string]string{}}
}
