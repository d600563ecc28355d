// Chronicle generation — converts a year's event descriptors into prose.
package narrative

import (
	"fmt"
	"strings"
	"time"

	"github.com/talgya/statecraft/internal/engine"
)

// Chronicle holds a generated yearly chronicle.
type Chronicle struct {
	GeneratedAt time.Time `json:"generated_at"`
	Year        int       `json:"year"`
	Content     string    `json:"content"`
}

// GenerateChronicle writes the year's chronicle from its event descriptors.
// Without a configured client (or on API failure) it falls back to a plain
// assembled digest, so the chronicle never blocks the simulation.
func GenerateChronicle(client *Client, year int, events []engine.Event) (*Chronicle, error) {
	if !client.Enabled() {
		return &Chronicle{
			GeneratedAt: time.Now(),
			Year:        year,
			Content:     fallbackChronicle(year, events),
		}, nil
	}

	system := `You are the anonymous author of a yearly chronicle covering the great powers of an alternate 18th-to-20th-century world. You receive terse dispatches — crises breaking out and resolving, armies starving, treasuries drowning in debt — and weave them into measured, period-appropriate annals. Write under 400 words, in the voice of a contemporary observer. Do not invent events beyond the dispatches; do not break character.`

	content, err := client.Complete(system, buildPrompt(year, events), 800)
	if err != nil {
		return &Chronicle{
			GeneratedAt: time.Now(),
			Year:        year,
			Content:     fallbackChronicle(year, events),
		}, nil
	}

	return &Chronicle{
		GeneratedAt: time.Now(),
		Year:        year,
		Content:     content,
	}, nil
}

func buildPrompt(year int, events []engine.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dispatches for the year %d:\n", year)
	if len(events) == 0 {
		b.WriteString("- An uneventful year; the powers kept the peace and their books balanced.\n")
	}
	for _, e := range events {
		fmt.Fprintf(&b, "- [%s] %s: %s\n", e.Category, e.Nation, e.Description)
	}
	b.WriteString("\nWrite the chronicle for this year.")
	return b.String()
}

func fallbackChronicle(year int, events []engine.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Annals of the year %d\n\n", year)

	byNation := make(map[string][]engine.Event)
	var order []string
	for _, e := range events {
		if _, seen := byNation[e.Nation]; !seen {
			order = append(order, e.Nation)
		}
		byNation[e.Nation] = append(byNation[e.Nation], e)
	}

	if len(order) == 0 {
		b.WriteString("A quiet year. No crisis troubled the chancelleries, and the harvests came in on time.\n")
		return b.String()
	}

	for _, tag := range order {
		fmt.Fprintf(&b, "%s:\n", tag)
		for _, e := range byNation[tag] {
			fmt.Fprintf(&b, "  - %s\n", e.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}
