package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"search-agent-system/internal/router"
	"search-agent-system/pkg/websearch"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockAgent struct {
	intent    router.Intent
	lastQuery string
	called    int
}

func (m *mockAgent) Intent() router.Intent { return m.intent }
func (m *mockAgent) Answer(ctx context.Context, query string) string {
	m.called++
	m.lastQuery = query
	return fmt.Sprintf("%s answer for %s", m.intent, query)
}

type mockSearchAgent struct {
	results   []websearch.Result
	err       error
	lastQuery string
	called    int
}

func (m *mockSearchAgent) Search(ctx context.Context, query string) ([]websearch.Result, error) {
	m.called++
	m.lastQuery = query
	return m.results, m.err
}

type mockSummarizer struct {
	summary string
	err     error
	called  int
}

func (m *mockSummarizer) Summarize(ctx context.Context, topic string, results []websearch.Result) (string, error) {
	m.called++
	return m.summary, m.err
}

type fixture struct {
	crypto     *mockAgent
	stock      *mockAgent
	weather    *mockAgent
	web        *mockSearchAgent
	summarizer *mockSummarizer
	d          *QueryDispatcher
}

func newFixture() *fixture {
	f := &fixture{
		crypto:     &mockAgent{intent: router.IntentCrypto},
		stock:      &mockAgent{intent: router.IntentStock},
		weather:    &mockAgent{intent: router.IntentWeather},
		web:        &mockSearchAgent{},
		summarizer: &mockSummarizer{summary: "three points"},
	}
	f.d = New(&mockLogger{}, f.crypto, f.stock, f.weather, f.web, f.summarizer)
	return f
}

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"parenthetical dropped", "bitcoin (approx)", "bitcoin"},
		{"trim and lower", "  TSLA  ", "tsla"},
		{"empty stays empty", "", ""},
		{"only parenthetical", "(note)", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.raw); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		once := Clean("Bitcoin (approx)")
		if twice := Clean(once); twice != once {
			t.Errorf("expected %q, got %q", once, twice)
		}
	})
}

func TestRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("no intent passes model text through verbatim", func(t *testing.T) {
		f := newFixture()
		raw := "I think the weather is nice"
		if got := f.d.Route(ctx, router.RoutedQuery{Intent: router.IntentNone, RawQuery: raw}); got != raw {
			t.Errorf("expected verbatim text, got %q", got)
		}
		if f.crypto.called+f.stock.called+f.weather.called+f.web.called != 0 {
			t.Error("expected no agent calls")
		}
	})

	t.Run("unknown agent type reported without agent call", func(t *testing.T) {
		f := newFixture()
		got := f.d.Route(ctx, router.RoutedQuery{Intent: "currency_asset", RawQuery: "euro"})
		if got != "Unknown agent type: currency_asset" {
			t.Errorf("unexpected notice: %q", got)
		}
		if f.crypto.called+f.stock.called+f.weather.called+f.web.called != 0 {
			t.Error("expected no agent calls")
		}
	})

	t.Run("agents receive the cleaned query", func(t *testing.T) {
		f := newFixture()
		f.d.Route(ctx, router.RoutedQuery{Intent: router.IntentCrypto, RawQuery: "Bitcoin (approx)"})
		if f.crypto.lastQuery != "bitcoin" {
			t.Errorf("expected cleaned query, got %q", f.crypto.lastQuery)
		}

		f.d.Route(ctx, router.RoutedQuery{Intent: router.IntentStock, RawQuery: "  TSLA "})
		if f.stock.lastQuery != "tsla" {
			t.Errorf("expected cleaned query, got %q", f.stock.lastQuery)
		}

		f.d.Route(ctx, router.RoutedQuery{Intent: router.IntentWeather, RawQuery: "Tokyo"})
		if f.weather.lastQuery != "tokyo" {
			t.Errorf("expected cleaned query, got %q", f.weather.lastQuery)
		}
	})

	t.Run("single-string agents answer directly", func(t *testing.T) {
		f := newFixture()
		got := f.d.Route(ctx, router.RoutedQuery{Intent: router.IntentWeather, RawQuery: "tokyo"})
		if got != "weather_asset answer for tokyo" {
			t.Errorf("unexpected answer: %q", got)
		}
	})
}

func TestRouteWeb(t *testing.T) {
	ctx := context.Background()

	t.Run("search error text shown directly", func(t *testing.T) {
		f := newFixture()
		f.web.err = errors.New("Web Search Error: denied")
		got := f.d.Route(ctx, router.RoutedQuery{Intent: router.IntentWeb, RawQuery: "pixel 9"})
		if got != "Web Search Error: denied" {
			t.Errorf("unexpected output: %q", got)
		}
		if f.summarizer.called != 0 {
			t.Error("expected no summarization")
		}
	})

	t.Run("zero results skip summarization", func(t *testing.T) {
		f := newFixture()
		got := f.d.Route(ctx, router.RoutedQuery{Intent: router.IntentWeb, RawQuery: "pixel 9"})
		if got != MsgNoResults {
			t.Errorf("unexpected output: %q", got)
		}
		if f.summarizer.called != 0 {
			t.Error("expected no summarization")
		}
	})

	t.Run("results summarized with numbered sources", func(t *testing.T) {
		f := newFixture()
		f.web.results = []websearch.Result{
			{Title: "First", Link: "https://example.com/1", Snippet: "a"},
			{Title: "Second", Link: "https://example.com/2", Snippet: "b"},
		}

		got := f.d.Route(ctx, router.RoutedQuery{Intent: router.IntentWeb, RawQuery: "Pixel 9 reviews"})

		if !strings.HasPrefix(got, "Here's what I found about pixel 9 reviews:") {
			t.Errorf("missing header: %q", got)
		}
		if !strings.Contains(got, "three points") {
			t.Errorf("missing summary: %q", got)
		}
		if !strings.Contains(got, "Sources:") ||
			!strings.Contains(got, "1. First\n   https://example.com/1") ||
			!strings.Contains(got, "2. Second\n   https://example.com/2") {
			t.Errorf("missing sources: %q", got)
		}
	})

	t.Run("summarization failure reported inline, sources kept", func(t *testing.T) {
		f := newFixture()
		f.web.results = []websearch.Result{{Title: "First", Link: "https://example.com/1"}}
		f.summarizer.err = errors.New("timeout")

		got := f.d.Route(ctx, router.RoutedQuery{Intent: router.IntentWeb, RawQuery: "pixel"})
		if !strings.Contains(got, "Summarization Error: timeout") {
			t.Errorf("missing summarization error: %q", got)
		}
		if !strings.Contains(got, "1. First") {
			t.Errorf("missing sources: %q", got)
		}
	})
}
