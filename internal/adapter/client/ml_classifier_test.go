package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMLClassifier_Classify(t *testing.T) {
	t.Run("maps label order onto scores", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req ClassifyRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.NotEmpty(t, req.RequestID)

			// Pipeline returns labels sorted by descending score, not in
			// the submitted order.
			resp := ClassifyResponse{
				Labels: []string{"sports", "tech", "politics"},
				Scores: []float64{0.6, 0.3, 0.1},
			}
			w.Header().Set("Content-Type", "application/json")
			require.NoError(t, json.NewEncoder(w).Encode(resp))
		}))
		defer server.Close()

		classifier := NewMLClassifier(NewMLClient(server.URL, 5*time.Second))
		scores, err := classifier.Classify(context.Background(), "title", []string{"tech", "sports", "politics"})

		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"sports": 0.6, "tech": 0.3, "politics": 0.1}, scores)
	})

	t.Run("propagates client errors", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		classifier := NewMLClassifier(NewMLClient(server.URL, 5*time.Second))
		_, err := classifier.Classify(context.Background(), "title", []string{"a"})

		assert.Error(t, err)
	})
}
