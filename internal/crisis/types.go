// Package crisis defines the consequence system's reference data: crisis
// templates, their triggers, and the live instances tracked per nation.
// Templates and triggers are immutable after load and shared by every
// nation; instances are owned by one nation's state and never shared.
package crisis

import "fmt"

// Type is the closed set of crisis kinds. Trigger and escalation logic
// switches over this enum rather than free-form strings, so an unknown type
// is a load-time validation error, never a silent miss at tick time.
type Type uint8

const (
	TypeNone Type = iota
	TypeFamine
	TypeRiot
	TypeRebellion
	TypeRevolution
	TypeDebtCrisis
	TypeEconomicCollapse
	TypeMutiny
	TypePlague
)

var typeNames = map[Type]string{
	TypeNone:             "none",
	TypeFamine:           "famine",
	TypeRiot:             "riot",
	TypeRebellion:        "rebellion",
	TypeRevolution:       "revolution",
	TypeDebtCrisis:       "debt_crisis",
	TypeEconomicCollapse: "economic_collapse",
	TypeMutiny:           "mutiny",
	TypePlague:           "plague",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// ParseType resolves a crisis name from reference data files.
func ParseType(s string) (Type, error) {
	for t, n := range typeNames {
		if n == s {
			return t, nil
		}
	}
	return TypeNone, fmt.Errorf("unknown crisis type %q", s)
}

// Severity tiers order crises from nuisance to existential.
type Severity uint8

const (
	SeverityMinor Severity = iota
	SeverityModerate
	SeveritySevere
	SeverityCritical
)

var severityNames = map[Severity]string{
	SeverityMinor:    "minor",
	SeverityModerate: "moderate",
	SeveritySevere:   "severe",
	SeverityCritical: "critical",
}

func (s Severity) String() string {
	if n, ok := severityNames[s]; ok {
		return n
	}
	return fmt.Sprintf("severity(%d)", uint8(s))
}

// ParseSeverity resolves a severity tier from reference data files.
func ParseSeverity(s string) (Severity, error) {
	for sev, n := range severityNames {
		if n == s {
			return sev, nil
		}
	}
	return SeverityMinor, fmt.Errorf("unknown severity %q", s)
}
