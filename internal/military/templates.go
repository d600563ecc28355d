package military

import (
	"fmt"

	"github.com/talgya/statecraft/internal/history"
)

// Kind is the closed set of unit types.
type Kind uint8

const (
	KindLineInfantry Kind = iota
	KindIrregulars
	KindCavalry
	KindArtillery
	KindEngineers
	KindFrigate
	KindShipOfTheLine
	KindIronclad
	KindDreadnought
)

func (k Kind) String() string {
	switch k {
	case KindLineInfantry:
		return "line_infantry"
	case KindIrregulars:
		return "irregulars"
	case KindCavalry:
		return "cavalry"
	case KindArtillery:
		return "artillery"
	case KindEngineers:
		return "engineers"
	case KindFrigate:
		return "frigate"
	case KindShipOfTheLine:
		return "ship_of_the_line"
	case KindIronclad:
		return "ironclad"
	case KindDreadnought:
		return "dreadnought"
	}
	return "unknown"
}

// Template is the immutable definition a new unit is stamped from.
type Template struct {
	Kind       Kind
	Name       string
	Naval      bool
	Manpower   int
	Equipment  int
	Attack     float64
	Defense    float64
	SupplyCost float64
	Speed      float64
}

// Process-wide immutable reference table, indexed by Kind.
var templates = map[Kind]Template{
	KindLineInfantry:  {Kind: KindLineInfantry, Name: "Line Infantry", Manpower: 1000, Equipment: 1000, Attack: 6, Defense: 7, SupplyCost: 1.0, Speed: 4},
	KindIrregulars:    {Kind: KindIrregulars, Name: "Irregulars", Manpower: 800, Equipment: 400, Attack: 4, Defense: 4, SupplyCost: 0.5, Speed: 5},
	KindCavalry:       {Kind: KindCavalry, Name: "Cavalry", Manpower: 600, Equipment: 700, Attack: 8, Defense: 4, SupplyCost: 1.5, Speed: 8},
	KindArtillery:     {Kind: KindArtillery, Name: "Artillery", Manpower: 400, Equipment: 60, Attack: 10, Defense: 3, SupplyCost: 2.0, Speed: 2},
	KindEngineers:     {Kind: KindEngineers, Name: "Engineers", Manpower: 500, Equipment: 300, Attack: 3, Defense: 6, SupplyCost: 1.2, Speed: 3},
	KindFrigate:       {Kind: KindFrigate, Name: "Frigate", Naval: true, Manpower: 300, Equipment: 1, Attack: 7, Defense: 5, SupplyCost: 1.5, Speed: 9},
	KindShipOfTheLine: {Kind: KindShipOfTheLine, Name: "Ship of the Line", Naval: true, Manpower: 800, Equipment: 1, Attack: 12, Defense: 10, SupplyCost: 2.5, Speed: 6},
	KindIronclad:      {Kind: KindIronclad, Name: "Ironclad", Naval: true, Manpower: 500, Equipment: 1, Attack: 15, Defense: 14, SupplyCost: 3.0, Speed: 7},
	KindDreadnought:   {Kind: KindDreadnought, Name: "Dreadnought", Naval: true, Manpower: 1100, Equipment: 1, Attack: 22, Defense: 20, SupplyCost: 5.0, Speed: 8},
}

// TemplateFor returns the reference template for a unit kind.
func TemplateFor(k Kind) Template {
	return templates[k]
}

// NewUnit stamps a fresh unit from its template at full strength.
func NewUnit(k Kind, ordinal int) Unit {
	t := templates[k]
	return Unit{
		Kind:       k,
		Name:       fmt.Sprintf("%d. %s", ordinal, t.Name),
		Manpower:   t.Manpower,
		Equipment:  t.Equipment,
		Attack:     t.Attack,
		Defense:    t.Defense,
		Morale:     85,
		Experience: 10,
		SupplyCost: t.SupplyCost,
		Speed:      t.Speed,
		Status:     StatusReady,
		Strength:   100,
	}
}

// DefaultRoster builds an era-appropriate starting force pair. Scale sets
// roughly how many brigades a great power fields; the navy follows at about
// a third of that.
func DefaultRoster(era history.Era, scale int) (army, navy []Unit) {
	if scale < 1 {
		scale = 1
	}
	for i := 0; i < scale; i++ {
		army = append(army, NewUnit(KindLineInfantry, i+1))
	}
	for i := 0; i < scale/3+1; i++ {
		army = append(army, NewUnit(KindCavalry, i+1))
	}
	for i := 0; i < scale/4+1; i++ {
		army = append(army, NewUnit(KindArtillery, i+1))
	}
	if era >= history.EraIndustrial {
		army = append(army, NewUnit(KindEngineers, 1))
	}

	capital := KindShipOfTheLine
	switch {
	case era >= history.EraGreatWar:
		capital = KindDreadnought
	case era >= history.EraImperial:
		capital = KindIronclad
	}
	for i := 0; i < scale/3+1; i++ {
		navy = append(navy, NewUnit(capital, i+1))
	}
	for i := 0; i < scale/2+1; i++ {
		navy = append(navy, NewUnit(KindFrigate, i+1))
	}
	return army, navy
}

// ForceManpower sums the manpower of a unit list.
func ForceManpower(units []Unit) int {
	total := 0
	for _, u := range units {
		total += u.Manpower
	}
	return total
}
