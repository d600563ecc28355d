package crisis

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/statecraft/internal/nation"
)

// YAML-facing records. Types, severities, and stats are names here and are
// resolved against the closed enums during conversion, so a typo in a data
// file is a load error rather than a crisis that can never fire.

type templateFile struct {
	Templates []templateRecord `yaml:"templates"`
	Triggers  []triggerRecord  `yaml:"triggers"`
}

type templateRecord struct {
	Type                string         `yaml:"type"`
	Name                string         `yaml:"name"`
	Severity            string         `yaml:"severity"`
	Description         string         `yaml:"description"`
	Effects             map[string]int `yaml:"effects"`
	Duration            int            `yaml:"duration"`
	SpreadChance        float64        `yaml:"spread_chance"`
	EscalatesTo         string         `yaml:"escalates_to"`
	EscalationThreshold float64        `yaml:"escalation_threshold"`
	AutoResolveChance   float64        `yaml:"auto_resolve_chance"`
}

type triggerRecord struct {
	Produces      string             `yaml:"produces"`
	StatBelow     map[string]int     `yaml:"stat_below"`
	MinUnrest     float64            `yaml:"min_unrest"`
	MinWarYears   int                `yaml:"min_war_years"`
	Probability   float64            `yaml:"probability"`
	StatModifiers map[string]float64 `yaml:"stat_modifiers"`
}

// LoadLibrary reads a crisis reference file and validates it. The file
// replaces the built-in tables wholesale; partial overrides are not a thing,
// a campaign ships its complete crisis set or none.
func LoadLibrary(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open crisis library: %w", err)
	}
	defer f.Close()

	var file templateFile
	if err := yaml.NewDecoder(f).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode crisis library %s: %w", path, err)
	}

	lib := &Library{Templates: make(map[Type]Consequence, len(file.Templates))}
	for _, rec := range file.Templates {
		c, err := rec.toConsequence()
		if err != nil {
			return nil, fmt.Errorf("template %q: %w", rec.Type, err)
		}
		if _, dup := lib.Templates[c.Type]; dup {
			return nil, fmt.Errorf("duplicate template for type %s", c.Type)
		}
		lib.Templates[c.Type] = c
	}
	for i, rec := range file.Triggers {
		tr, err := rec.toTrigger()
		if err != nil {
			return nil, fmt.Errorf("trigger %d: %w", i, err)
		}
		lib.Triggers = append(lib.Triggers, tr)
	}

	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("crisis library %s: %w", path, err)
	}
	return lib, nil
}

func (r templateRecord) toConsequence() (Consequence, error) {
	t, err := ParseType(r.Type)
	if err != nil {
		return Consequence{}, err
	}
	sev, err := ParseSeverity(r.Severity)
	if err != nil {
		return Consequence{}, err
	}
	effects, err := parseStatInts(r.Effects)
	if err != nil {
		return Consequence{}, err
	}
	c := Consequence{
		Type:                t,
		Name:                r.Name,
		Severity:            sev,
		Description:         r.Description,
		Effects:             effects,
		Duration:            r.Duration,
		SpreadChance:        r.SpreadChance,
		EscalationThreshold: r.EscalationThreshold,
		AutoResolveChance:   r.AutoResolveChance,
	}
	if r.EscalatesTo != "" {
		esc, err := ParseType(r.EscalatesTo)
		if err != nil {
			return Consequence{}, err
		}
		c.EscalatesTo = esc
	}
	return c, nil
}

func (r triggerRecord) toTrigger() (Trigger, error) {
	t, err := ParseType(r.Produces)
	if err != nil {
		return Trigger{}, err
	}
	below, err := parseStatInts(r.StatBelow)
	if err != nil {
		return Trigger{}, err
	}
	mods := make(map[nation.Stat]float64, len(r.StatModifiers))
	for name, w := range r.StatModifiers {
		s, err := nation.ParseStat(name)
		if err != nil {
			return Trigger{}, err
		}
		mods[s] = w
	}
	if len(mods) == 0 {
		mods = nil
	}
	return Trigger{
		Produces:      t,
		StatBelow:     below,
		MinUnrest:     r.MinUnrest,
		MinWarYears:   r.MinWarYears,
		Probability:   r.Probability,
		StatModifiers: mods,
	}, nil
}

func parseStatInts(in map[string]int) (map[nation.Stat]int, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make(map[nation.Stat]int, len(in))
	for name, v := range in {
		s, err := nation.ParseStat(name)
		if err != nil {
			return nil, err
		}
		out[s] = v
	}
	return out, nil
}
