package netgraph

import "time"

// ============================================================================
// Activity Aggregation
// ============================================================================

// ActivitySummary reduces a contact's interaction history to the two numbers
// the graph needs: how often, and how recently.
type ActivitySummary struct {
	Count      int
	MostRecent *time.Time
}

// SummarizeActivity folds an unordered activity set into per-contact
// summaries in a single pass. Ties on the timestamp keep the greatest value.
// Contacts with no activity simply have no entry; the zero summary
// (count 0, no date) is the correct default for them.
func SummarizeActivity(records []ActivityRecord) map[string]ActivitySummary {
	summaries := make(map[string]ActivitySummary, len(records))

	for _, rec := range records {
		s := summaries[rec.ContactID]
		s.Count++
		if s.MostRecent == nil || rec.OccurredAt.After(*s.MostRecent) {
			t := rec.OccurredAt
			s.MostRecent = &t
		}
		summaries[rec.ContactID] = s
	}

	return summaries
}
