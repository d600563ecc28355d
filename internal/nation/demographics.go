package nation

// SocialClass is one stratum of the population. Shares across a nation's
// classes sum to ~100. Wealth and influence use the same 1–5 scale as
// capability scores; satisfaction is a 0–100 gauge.
type SocialClass struct {
	Name        string  `json:"name"`
	Share       float64 `json:"share"` // % of total population
	Wealth      int     `json:"wealth"`
	Influence   int     `json:"influence"`
	Satisfaction float64 `json:"satisfaction"`
	Description string  `json:"description,omitempty"`
}

// PopulationCenter is a named city or region tracked for flavor and for the
// presentation layer; the engines only read its population figure.
type PopulationCenter struct {
	Name       string `json:"name"`
	Population int64  `json:"population"`
}

// Demographics holds a nation's population state.
type Demographics struct {
	TotalPopulation int64              `json:"total_population"`
	GrowthRate      float64            `json:"growth_rate"` // % per year, signed
	Urbanization    float64            `json:"urbanization"`
	Literacy        float64            `json:"literacy"`
	Classes         []SocialClass      `json:"classes"`
	Centers         []PopulationCenter `json:"centers,omitempty"`
}

// Clone returns a deep copy; class and center slices are never shared.
func (d *Demographics) Clone() *Demographics {
	if d == nil {
		return nil
	}
	out := *d
	out.Classes = append([]SocialClass(nil), d.Classes...)
	out.Centers = append([]PopulationCenter(nil), d.Centers...)
	return &out
}

// ClassUnrest measures population-weighted dissatisfaction. Each class
// contributes (100 − satisfaction) weighted by share × (6 − wealth), so
// poorer classes weigh more. A single class at 100% share and zero
// satisfaction yields 100; at full satisfaction, 0.
func ClassUnrest(classes []SocialClass) float64 {
	var weighted, weights float64
	for _, c := range classes {
		w := c.Share * float64(6-c.Wealth)
		weighted += (100 - c.Satisfaction) * w
		weights += w
	}
	if weights == 0 {
		return 0
	}
	return weighted / weights
}

// ConflictKind classifies a brewing confrontation between classes.
type ConflictKind uint8

const (
	ConflictNone ConflictKind = iota
	ConflictClassWar
	ConflictRiots
	ConflictLiberalUprising
)

func (k ConflictKind) String() string {
	switch k {
	case ConflictClassWar:
		return "class war"
	case ConflictRiots:
		return "riots"
	case ConflictLiberalUprising:
		return "liberal uprising"
	}
	return "none"
}

// CheckClassConflict flags a qualitative conflict from fixed thresholds on
// the satisfaction gap between wealthy (wealth ≥ 4) and poor (wealth ≤ 2)
// classes. A content elite over a miserable base is a class war in waiting;
// a smaller gap produces riots. A dissatisfied middle class with no such gap
// signals a liberal uprising instead.
func CheckClassConflict(classes []SocialClass) ConflictKind {
	var richSum, richN, poorSum, poorN, midSum, midN float64
	for _, c := range classes {
		switch {
		case c.Wealth >= 4:
			richSum += c.Satisfaction
			richN++
		case c.Wealth <= 2:
			poorSum += c.Satisfaction
			poorN++
		default:
			midSum += c.Satisfaction
			midN++
		}
	}
	if richN > 0 && poorN > 0 {
		gap := richSum/richN - poorSum/poorN
		if gap >= 50 {
			return ConflictClassWar
		}
		if gap >= 30 {
			return ConflictRiots
		}
	}
	if midN > 0 && midSum/midN < 35 {
		return ConflictLiberalUprising
	}
	return ConflictNone
}

// AdjustSatisfaction shifts one class's satisfaction by delta, clamped to
// [0, 100]. Class lookup is by name; unknown names are ignored.
func AdjustSatisfaction(classes []SocialClass, name string, delta float64) {
	for i := range classes {
		if classes[i].Name == name {
			classes[i].Satisfaction = ClampPercent(classes[i].Satisfaction + delta)
			return
		}
	}
}
