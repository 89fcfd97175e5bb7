package score

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	dto "mini_casino/internal/api/dto/score"
	"mini_casino/internal/model"
)

func TestSaveScore(t *testing.T) {
	var got dto.SaveScoreRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/save_score" {
			t.Errorf("request = %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(dto.SaveScoreResponse{Status: "success", Message: "saved", PlayerID: got.PlayerID, TotalGames: 3})
	}))
	defer srv.Close()

	ack, err := New(srv.URL+"/", 0).SaveScore(context.Background(), "alice", model.GamePlinko, -10)
	if err != nil {
		t.Fatalf("SaveScore() error = %v", err)
	}
	if ack.Status != "success" || ack.Message != "saved" || ack.Local {
		t.Errorf("ack = %+v", ack)
	}
	if got.PlayerID != "alice" || got.Score == nil || *got.Score != -10 || got.GameType != "plinko" {
		t.Errorf("request body = %+v", got)
	}
}

func TestSaveScoreErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    error
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			want: model.ErrNetworkFailure,
		},
		{
			name: "not json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>"))
			},
			want: model.ErrMalformedResponse,
		},
		{
			name: "missing status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"message":"?"}`))
			},
			want: model.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := New(srv.URL, time.Second).SaveScore(context.Background(), "bob", model.GameSlot, 50)
			if !errors.Is(err, tt.want) {
				t.Errorf("SaveScore() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, time.Second)
	if _, err := c.SaveScore(context.Background(), "bob", model.GameSlot, 1); !errors.Is(err, model.ErrNetworkFailure) {
		t.Errorf("SaveScore() error = %v, want ErrNetworkFailure", err)
	}
	if _, err := c.LatestScores(context.Background(), "bob", 1); !errors.Is(err, model.ErrNetworkFailure) {
		t.Errorf("LatestScores() error = %v, want ErrNetworkFailure", err)
	}
}

func TestLatestScores(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("player_id") != "alice" || r.URL.Query().Get("limit") != "1" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(dto.ScoresResponse{
			PlayerID:   "alice",
			Scores:     []dto.ScoreData{{ID: 7, Score: 100, GameType: "slot", Timestamp: ts}},
			TotalCount: 1,
		})
	}))
	defer srv.Close()

	scores, err := New(srv.URL, 0).LatestScores(context.Background(), "alice", 1)
	if err != nil {
		t.Fatalf("LatestScores() error = %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 100 || scores[0].ID != 7 || !scores[0].Timestamp.Equal(ts) {
		t.Errorf("scores = %+v", scores)
	}
}
