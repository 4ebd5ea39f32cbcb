package alphavantage_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"search-agent-system/pkg/alphavantage"
)

func TestGlobalQuote(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/query", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("function") != "GLOBAL_QUOTE" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		switch r.URL.Query().Get("symbol") {
		case "TSLA":
			json.NewEncoder(w).Encode(map[string]any{
				"Global Quote": map[string]string{
					"01. symbol": "TSLA",
					"05. price":  "248.5000",
				},
			})
		default:
			// Alpha Vantage answers unknown symbols with an empty quote block.
			json.NewEncoder(w).Encode(map[string]any{"Global Quote": map[string]string{}})
		}
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := alphavantage.NewClient("test-key", ts.URL)
	ctx := context.Background()

	t.Run("known symbol", func(t *testing.T) {
		quote, err := client.GlobalQuote(ctx, "TSLA")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote == nil || quote.Price != "248.5000" {
			t.Errorf("unexpected quote: %+v", quote)
		}
	})

	t.Run("unknown symbol yields nil quote", func(t *testing.T) {
		quote, err := client.GlobalQuote(ctx, "NOPE")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote != nil {
			t.Errorf("expected nil quote, got %+v", quote)
		}
	})
}
