package app

import "strings"

// Traced queries are collapsed to single-line form and capped so span
// attributes stay readable for multi-row inserts.
const maxTracedQueryLength = 512

func formatDBQueryForTrace(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	return normalized[:maxTracedQueryLength] + "..."
}
