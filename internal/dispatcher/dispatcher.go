package dispatcher

import (
	"context"
	"fmt"
	"strings"

	"search-agent-system/internal/router"
)

// Clean normalizes a raw sub-query: anything from the first "(" on is
// discarded (models sometimes append a clarifying parenthetical), then the
// remainder is trimmed and lower-cased. Cleaning is idempotent and an
// empty input stays empty.
func Clean(raw string) string {
	head, _, _ := strings.Cut(raw, "(")
	return strings.ToLower(strings.TrimSpace(head))
}

// Route maps a parsed query to displayed text. Model output with no
// recognized intent passes through verbatim as a general answer; an
// unrecognized label is reported without invoking any agent.
func (d *QueryDispatcher) Route(ctx context.Context, routed router.RoutedQuery) string {
	if routed.Intent == router.IntentNone {
		return routed.RawQuery
	}

	if !router.IsValid(routed.Intent) {
		d.l.Warnf(ctx, "%s: model produced unknown agent type %q", LogPrefixRoute, routed.Intent)
		return fmt.Sprintf(MsgUnknownAgentFmt, routed.Intent)
	}

	query := Clean(routed.RawQuery)
	d.l.Infof(ctx, "%s: intent=%s query=%q", LogPrefixRoute, routed.Intent, query)

	switch routed.Intent {
	case router.IntentCrypto:
		return d.crypto.Answer(ctx, query)
	case router.IntentStock:
		return d.stock.Answer(ctx, query)
	case router.IntentWeather:
		return d.weather.Answer(ctx, query)
	case router.IntentWeb:
		return d.routeWeb(ctx, query)
	default:
		// IsValid and this switch enumerate the same closed set.
		return fmt.Sprintf(MsgUnknownAgentFmt, routed.Intent)
	}
}

// routeWeb renders the web-search path: the agent's error text verbatim,
// a no-results notice, or a model summary followed by numbered sources.
func (d *QueryDispatcher) routeWeb(ctx context.Context, query string) string {
	results, err := d.web.Search(ctx, query)
	if err != nil {
		return err.Error()
	}
	if len(results) == 0 {
		return MsgNoResults
	}

	summaryText, err := d.summarizer.Summarize(ctx, query, results)
	if err != nil {
		summaryText = fmt.Sprintf("Summarization Error: %v", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, MsgFoundAboutFmt, query)
	b.WriteString("\n")
	b.WriteString(summaryText)
	b.WriteString("\n\nSources:")
	for i, r := range results {
		fmt.Fprintf(&b, "\n%d. %s\n   %s", i+1, r.Title, r.Link)
	}
	return b.String()
}
