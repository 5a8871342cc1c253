package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GenerateRoadmap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/roadmaps", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

		var req RoadmapRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "learn Go", req.Goal)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"roadmap": map[string]any{"id": "rm-7", "title": "Go in 12 weeks"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithToken("tok-1"))
	rm, err := c.GenerateRoadmap(context.Background(), RoadmapRequest{
		Goal:  "learn Go",
		Level: LevelBeginner,
	})
	require.NoError(t, err)
	assert.Equal(t, "rm-7", rm.ID)
	assert.Equal(t, "Go in 12 weeks", rm.Title)
}

func TestClient_CheckSimilar_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"similar_items": []any{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	items, err := c.CheckSimilar(context.Background(), "rust basics", LevelBeginner)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClient_GetDueCards_Query(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "spanish", r.URL.Query().Get("deck"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"cards": []map[string]any{{"id": "c1", "front": "hola", "back": "hello"}},
			"count": 1,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	cards, err := c.GetDueCards(context.Background(), "spanish", 20)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "c1", cards[0].ID)
}

func TestClient_StatusErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind Kind
		wantMsg  string
	}{
		{"validation with message", 422, `{"error":"prompt too short"}`, KindValidation, "prompt too short"},
		{"not found", 404, `{}`, KindNotFound, "not found"},
		{"server error", 500, `{"error":"generation failed"}`, KindServer, "generation failed"},
		{"server error no body", 503, ``, KindServer, "the tutor service failed (HTTP 503)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL)
			err := c.Publish(context.Background(), "course-1")
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
			assert.Equal(t, tt.wantMsg, Message(err))
		})
	}
}

func TestClient_NetworkErrorKind(t *testing.T) {
	// Point at a server that is no longer listening.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL)
	err := c.Enroll(context.Background(), "course-1")
	require.Error(t, err)
	assert.Equal(t, KindNetwork, KindOf(err))
}

func TestClient_ContextCancellation(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL)
	err := c.ReviewCard(ctx, ReviewSubmission{CardID: "c1", Quality: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, KindNetwork, KindOf(err))
}
