package coingecko_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"search-agent-system/pkg/coingecko"
)

func TestSimplePrice(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/simple/price", func(w http.ResponseWriter, r *http.Request) {
		ids := r.URL.Query().Get("ids")
		switch ids {
		case "bitcoin":
			json.NewEncoder(w).Encode(map[string]map[string]float64{
				"bitcoin": {"usd": 64250.0},
			})
		case "nullcoin":
			w.Write([]byte(`{"nullcoin":{"usd":null}}`))
		case "ratelimited":
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]string{"error": "rate limited"})
		default:
			// Unknown ids come back as an empty object, not an error.
			w.Write([]byte(`{}`))
		}
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := coingecko.NewClient(ts.URL)
	ctx := context.Background()

	t.Run("known coin", func(t *testing.T) {
		prices, err := client.SimplePrice(ctx, "bitcoin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		entry, ok := prices["bitcoin"]
		if !ok {
			t.Fatal("expected bitcoin entry")
		}
		if entry["usd"] == nil || *entry["usd"] != 64250.0 {
			t.Errorf("unexpected price: %+v", entry)
		}
	})

	t.Run("unknown coin yields empty map", func(t *testing.T) {
		prices, err := client.SimplePrice(ctx, "notacoin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := prices["notacoin"]; ok {
			t.Error("expected no entry for unknown coin")
		}
	})

	t.Run("null price decodes to nil", func(t *testing.T) {
		prices, err := client.SimplePrice(ctx, "nullcoin")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if prices["nullcoin"]["usd"] != nil {
			t.Error("expected nil price for null value")
		}
	})

	t.Run("non-200 maps to APIError", func(t *testing.T) {
		_, err := client.SimplePrice(ctx, "ratelimited")
		var apiErr *coingecko.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.Message != "rate limited" || apiErr.StatusCode != http.StatusTooManyRequests {
			t.Errorf("unexpected APIError: %+v", apiErr)
		}
	})
}
