package narrative

import (
	"fmt"
	"strings"

	"wrapped/internal/stats"
	"wrapped/internal/trend"
)

// ContextStats is everything besides the transcript that goes into the
// model's context.
type ContextStats struct {
	TotalMessages int
	TotalContacts int
	YearsSpan     int
	TopContacts   []stats.ContactTotals
	Fading        []trend.Fading
	Emerging      []trend.Emerging
	YearlyVolume  []stats.YearVolume
}

// BuildContext renders the stats and transcript into the markdown
// document both prompts share.
func BuildContext(cs ContextStats, transcript string) string {
	var b strings.Builder
	b.WriteString("# iMessage Data Context\n\n")
	b.WriteString("## Overview\n")
	fmt.Fprintf(&b, "- Total messages: %d\n", cs.TotalMessages)
	fmt.Fprintf(&b, "- Unique contacts: %d\n", cs.TotalContacts)
	fmt.Fprintf(&b, "- Years analyzed: %d\n", cs.YearsSpan)

	if len(cs.TopContacts) > 0 {
		b.WriteString("\n## Top Contacts\n")
		for i, c := range cs.TopContacts {
			if i >= 10 {
				break
			}
			fmt.Fprintf(&b, "%d. %s: %d messages (sent %d, received %d)\n",
				i+1, c.Contact, c.Total, c.Sent, c.Received)
		}
	}

	if len(cs.Fading) > 0 {
		b.WriteString("\n## Fading Relationships\n")
		for i, f := range cs.Fading {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "- %s: was ~%.0f/wk, now ~%.0f/wk\n", f.Contact, f.BaselineRate, f.RecentRate)
		}
	}

	if len(cs.Emerging) > 0 {
		b.WriteString("\n## Emerging Connections\n")
		for i, e := range cs.Emerging {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "- %s: %s\n", e.Contact, e.Growth)
		}
	}

	if len(cs.YearlyVolume) > 0 {
		b.WriteString("\n## Yearly Volume\n")
		volumes := cs.YearlyVolume
		if len(volumes) > 5 {
			volumes = volumes[len(volumes)-5:]
		}
		for _, y := range volumes {
			fmt.Fprintf(&b, "- %d: %d messages\n", y.Year, y.Total)
		}
	}

	b.WriteString("\n# Substantive Messages\n")
	b.WriteString("(Longest messages from top relationships, with skipped message counts)\n")
	b.WriteString(transcript)
	return b.String()
}
