package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Member is one student on a team roster. Relay and group members share this struct so a
// roster stays one flat jsonb array; the roster's Kind selects the variant. Relay members
// carry a RunOrder, group members must leave it zero. NewMember builds either variant from a
// kind and ValidateShape holds stored rosters to the same rule.
type Member struct {
	StudentID uuid.UUID `json:"student_id"`
	RunOrder  int       `json:"run_order,omitempty"`
	Captain   bool      `json:"captain"`
}

// NewMember builds the member variant that fits kind. A relay run order of zero means
// "not chosen yet" and is filled in by renumbering.
func NewMember(kind DisciplineKind, studentID uuid.UUID, runOrder int, captain bool) (Member, error) {
	switch kind {
	case DisciplineKindRelay:
		if runOrder < 0 {
			return Member{}, fmt.Errorf("run_order for student %s must be positive", studentID)
		}
		return NewRelayMember(studentID, runOrder, captain), nil
	case DisciplineKindGroup:
		if runOrder != 0 {
			return Member{}, fmt.Errorf("group member %s cannot carry a run_order", studentID)
		}
		return NewGroupMember(studentID, captain), nil
	default:
		return Member{}, fmt.Errorf("kind %q does not carry a team", kind)
	}
}

// NewRelayMember builds a relay-shaped member
func NewRelayMember(studentID uuid.UUID, runOrder int, captain bool) Member {
	return Member{StudentID: studentID, RunOrder: runOrder, Captain: captain}
}

// NewGroupMember builds a group-shaped member
func NewGroupMember(studentID uuid.UUID, captain bool) Member {
	return Member{StudentID: studentID, Captain: captain}
}

// TeamRoster is one replica of a team's membership, embedded in each member's registration
type TeamRoster struct {
	Name    string         `json:"name"`
	Kind    DisciplineKind `json:"kind"`
	Members []Member       `json:"members"`
}

// Clone returns a deep copy so replicas never share a member slice
func (r *TeamRoster) Clone() *TeamRoster {
	if r == nil {
		return nil
	}
	out := &TeamRoster{Name: r.Name, Kind: r.Kind}
	if r.Members != nil {
		out.Members = make([]Member, len(r.Members))
		copy(out.Members, r.Members)
	}
	return out
}

// Size returns the number of members
func (r *TeamRoster) Size() int {
	if r == nil {
		return 0
	}
	return len(r.Members)
}

// IndexOf returns the position of a student in the roster or -1
func (r *TeamRoster) IndexOf(studentID uuid.UUID) int {
	if r == nil {
		return -1
	}
	for i, m := range r.Members {
		if m.StudentID == studentID {
			return i
		}
	}
	return -1
}

// Has reports whether a student is on the roster
func (r *TeamRoster) Has(studentID uuid.UUID) bool {
	return r.IndexOf(studentID) >= 0
}

// Captain returns the captain member, if any
func (r *TeamRoster) Captain() (Member, bool) {
	if r == nil {
		return Member{}, false
	}
	for _, m := range r.Members {
		if m.Captain {
			return m, true
		}
	}
	return Member{}, false
}

// IsCaptain reports whether the given student is the roster's captain
func (r *TeamRoster) IsCaptain(studentID uuid.UUID) bool {
	i := r.IndexOf(studentID)
	return i >= 0 && r.Members[i].Captain
}

// StudentIDs lists members in roster order
func (r *TeamRoster) StudentIDs() []uuid.UUID {
	if r == nil {
		return nil
	}
	ids := make([]uuid.UUID, len(r.Members))
	for i, m := range r.Members {
		ids[i] = m.StudentID
	}
	return ids
}

// State infers the team lifecycle from its size and the discipline maximum
func (r *TeamRoster) State(maxSize int) TeamState {
	switch {
	case r.Size() == 0:
		return TeamStateDissolved
	case maxSize > 0 && r.Size() >= maxSize:
		return TeamStateFull
	default:
		return TeamStateForming
	}
}

// ValidateShape checks the member shape against the roster kind and rejects duplicates.
// It does not check captaincy or run-order contiguity; those are policy checks.
func (r *TeamRoster) ValidateShape() error {
	if r == nil {
		return fmt.Errorf("team roster is required")
	}
	if !r.Kind.IsTeam() {
		return fmt.Errorf("kind %q does not carry a team", r.Kind)
	}
	seen := make(map[uuid.UUID]struct{}, len(r.Members))
	for _, m := range r.Members {
		if m.StudentID == uuid.Nil {
			return fmt.Errorf("member student_id is required")
		}
		if _, dup := seen[m.StudentID]; dup {
			return fmt.Errorf("student %s is listed more than once", m.StudentID)
		}
		seen[m.StudentID] = struct{}{}
		switch r.Kind {
		case DisciplineKindRelay:
			if m.RunOrder < 0 {
				return fmt.Errorf("run_order for student %s must be positive", m.StudentID)
			}
		case DisciplineKindGroup:
			if m.RunOrder != 0 {
				return fmt.Errorf("group member %s cannot carry a run_order", m.StudentID)
			}
		}
	}
	return nil
}
