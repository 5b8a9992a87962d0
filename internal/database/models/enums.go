package models

// RegistrationStatus defines the lifecycle status of a registration
type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusConfirmed RegistrationStatus = "confirmed"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
)

// DisciplineKind decides whether a discipline carries a team and which member shape it uses
type DisciplineKind string

const (
	DisciplineKindIndividual DisciplineKind = "individual"
	DisciplineKindRelay      DisciplineKind = "relay"
	DisciplineKindGroup      DisciplineKind = "group"
)

// TeamState is the inferred lifecycle of a team; it is never persisted
type TeamState string

const (
	TeamStateForming   TeamState = "forming"
	TeamStateFull      TeamState = "full"
	TeamStateDissolved TeamState = "dissolved"
)

// IsValid checks if the RegistrationStatus is valid
func (s RegistrationStatus) IsValid() bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusConfirmed, RegistrationStatusCancelled:
		return true
	}
	return false
}

// IsValid checks if the DisciplineKind is valid
func (k DisciplineKind) IsValid() bool {
	switch k {
	case DisciplineKindIndividual, DisciplineKindRelay, DisciplineKindGroup:
		return true
	}
	return false
}

// IsTeam reports whether entries of this kind carry a TeamRoster
func (k DisciplineKind) IsTeam() bool {
	return k == DisciplineKindRelay || k == DisciplineKindGroup
}
