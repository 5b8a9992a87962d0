package service

import (
	"sort"

	"competition-registration-backend/internal/database/models"
)

// RunOrderAssigner keeps relay run orders a contiguous 1..N permutation. Group rosters are left alone.
type RunOrderAssigner struct{}

// NewRunOrderAssigner creates a new run order assigner
func NewRunOrderAssigner() *RunOrderAssigner {
	return &RunOrderAssigner{}
}

// Renumber assigns 1..N following the current relative order. Members with an order keep
// their sequence; members without one (0) follow them in list position.
func (a *RunOrderAssigner) Renumber(roster *models.TeamRoster) *models.TeamRoster {
	out := roster.Clone()
	if out == nil || out.Kind != models.DisciplineKindRelay {
		return out
	}
	sort.SliceStable(out.Members, func(i, j int) bool {
		oi, oj := out.Members[i].RunOrder, out.Members[j].RunOrder
		switch {
		case oi == 0:
			return false
		case oj == 0:
			return true
		default:
			return oi < oj
		}
	})
	for i := range out.Members {
		out.Members[i].RunOrder = i + 1
	}
	return out
}

// NextOrder is the run order a newly appended relay member gets
func (a *RunOrderAssigner) NextOrder(roster *models.TeamRoster) int {
	return roster.Size() + 1
}
