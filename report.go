package fluxreg

import (
	"github.com/viant/fluxreg/service/group"
	"github.com/viant/fluxreg/service/registry"
	"github.com/viant/fluxreg/service/validator"
)

// Report describes the outcome of one load
type Report struct {
	Snapshot *registry.Snapshot
	Accepted []string
	Rejected []*validator.Rejection
	// RejectedGroups holds group candidates skipped by a lenient load
	RejectedGroups []*group.Rejection
	// Sources maps workflow ids to the file that declared them
	Sources map[string]string
}

// Revision returns the installed snapshot revision
func (r *Report) Revision() string {
	if r == nil || r.Snapshot == nil {
		return ""
	}
	return r.Snapshot.Revision
}

// ReloadEvent is published after a definition set was installed
type ReloadEvent struct {
	Revision string   `json:"revision"`
	Accepted int      `json:"accepted"`
	Rejected []string `json:"rejected,omitempty"`
	// RejectedGroups lists ids of skipped group candidates
	RejectedGroups []string `json:"rejectedGroups,omitempty"`
}

func (r *Report) event() *ReloadEvent {
	ret := &ReloadEvent{Revision: r.Revision(), Accepted: len(r.Accepted)}
	for _, rejection := range r.Rejected {
		ret.Rejected = append(ret.Rejected, rejection.ID)
	}
	for _, rejection := range r.RejectedGroups {
		ret.RejectedGroups = append(ret.RejectedGroups, rejection.ID)
	}
	return ret
}
