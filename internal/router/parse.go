package router

import "strings"

// Parse extracts (intent, sub-query) from raw model text.
//
// Grammar, tried in order:
//  1. Bracket form — the instructed "[agent_type] query" format.
//  2. Bare-prefix fallback — tolerates models that drop the brackets but
//     still lead with a recognizable label token.
//  3. No match — the whole text is treated as a conversational answer,
//     returned untouched.
//
// Parse never fails; the worst model output degrades to case 3.
func Parse(raw string) RoutedQuery {
	if strings.HasPrefix(raw, "[") && strings.Contains(raw, "]") {
		agentPart, query, _ := strings.Cut(raw, "]")
		// An empty label would collide with the IntentNone sentinel;
		// "[]" output is conversational text, not a routed query.
		if label := strings.TrimSpace(agentPart[1:]); label != "" {
			return RoutedQuery{
				Intent:   Intent(label),
				RawQuery: strings.TrimSpace(query),
			}
		}
	}

	lowered := strings.ToLower(raw)
	for _, intent := range registry {
		prefix := string(intent) + " "
		if strings.HasPrefix(lowered, prefix) {
			return RoutedQuery{
				Intent:   intent,
				RawQuery: strings.TrimSpace(raw[len(prefix):]),
			}
		}
	}

	return RoutedQuery{Intent: IntentNone, RawQuery: raw}
}
