package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJSON(t *testing.T) {
	t.Run("decodes a successful response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			w.Write([]byte(`{"id":"GABC","sequence":"42"}`))
		}))
		defer server.Close()

		var out struct {
			ID       string `json:"id"`
			Sequence string `json:"sequence"`
		}
		err := GetJSON(t.Context(), NewClient(), server.URL, &out)
		require.NoError(t, err)
		assert.Equal(t, "GABC", out.ID)
		assert.Equal(t, "42", out.Sequence)
	})

	t.Run("returns a StatusError for 4xx responses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status":404,"title":"Resource Missing"}`))
		}))
		defer server.Close()

		var out map[string]any
		err := GetJSON(t.Context(), NewClient(WithRetryMax(0)), server.URL+"/accounts/GABC", &out)

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
		assert.Equal(t, http.MethodGet, statusErr.Method)
		assert.Contains(t, statusErr.URL, "/accounts/GABC")
		assert.JSONEq(t, `{"status":404,"title":"Resource Missing"}`, string(statusErr.Body))
	})

	t.Run("passes the last 5xx through after retries", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(
			WithRetryMax(2),
			WithRetryWaitMin(time.Millisecond),
			WithRetryWaitMax(2*time.Millisecond),
		)

		var out map[string]any
		err := GetJSON(t.Context(), client, server.URL, &out)

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
		assert.Equal(t, 3, calls, "one attempt plus two transport retries")
	})

	t.Run("reports malformed bodies", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("this is not json"))
		}))
		defer server.Close()

		var out map[string]any
		err := GetJSON(t.Context(), NewClient(), server.URL, &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid character")
	})
}
