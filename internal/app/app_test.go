package app

import (
	"bytes"
	"context"
	"encoding/json"
	scoreAPI "mini_casino/internal/api/score"
	"mini_casino/internal/model"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

type stubScores struct {
	saved []model.SaveScore
}

func (s *stubScores) SaveScore(_ context.Context, req model.SaveScore) (*model.SaveScoreResult, error) {
	if req.Score == nil {
		return nil, model.ErrScoreRequired
	}
	s.saved = append(s.saved, req)
	return &model.SaveScoreResult{
		Entry:      model.ScoreEntry{ID: 1, PlayerID: req.PlayerID, GameType: req.GameType, Score: *req.Score, Timestamp: time.Now()},
		TotalGames: len(s.saved),
	}, nil
}

func (s *stubScores) Scores(context.Context, model.ScoresQuery) ([]model.ScoreEntry, error) {
	return nil, nil
}

func (s *stubScores) Leaderboard(context.Context) ([]model.LeaderboardEntry, error) {
	return nil, nil
}

func (s *stubScores) PlayerStats(context.Context, string) (*model.PlayerStats, error) {
	return nil, model.ErrPlayerNotFound
}

func (s *stubScores) Players(context.Context) ([]string, error) {
	return []string{"alice"}, nil
}

func (s *stubScores) Health(context.Context) (*model.Health, error) {
	return &model.Health{Storage: "postgres", Timestamp: time.Now()}, nil
}

func TestRouter(t *testing.T) {
	h := scoreAPI.NewHandler(scoreAPI.HandlerDeps{Serv: &stubScores{}, Logger: zap.NewNop()})
	srv := httptest.NewServer(newRouter(h, zap.NewNop()))
	defer srv.Close()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"save", http.MethodPost, "/save_score", `{"player_id":"alice","score":50}`, http.StatusOK},
		{"save without score", http.MethodPost, "/save_score", `{"player_id":"alice"}`, http.StatusBadRequest},
		{"scores", http.MethodGet, "/get_scores?player_id=alice", "", http.StatusOK},
		{"leaderboard", http.MethodGet, "/get_leaderboard", "", http.StatusOK},
		{"unknown player stats", http.MethodGet, "/get_player_stats?player_id=bob", "", http.StatusNotFound},
		{"players", http.MethodGet, "/get_all_players", "", http.StatusOK},
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"save is post only", http.MethodGet, "/save_score", "", http.StatusMethodNotAllowed},
		{"unknown route", http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			res, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			defer res.Body.Close()
			if res.StatusCode != tt.want {
				t.Errorf("%s %s = %d, want %d", tt.method, tt.path, res.StatusCode, tt.want)
			}
		})
	}
}

func TestRouterCORS(t *testing.T) {
	h := scoreAPI.NewHandler(scoreAPI.HandlerDeps{Serv: &stubScores{}})
	router := newRouter(h, zap.NewNop())

	req := httptest.NewRequest(http.MethodOptions, "/save_score", nil)
	req.Header.Set("Origin", "http://localhost:8080")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" {
		t.Errorf("health status = %v, want healthy", body["status"])
	}
}

func TestNewArcadeRejectsUnknownGame(t *testing.T) {
	if _, err := NewArcade(ArcadeOptions{Game: "roulette"}); err == nil {
		t.Fatal("NewArcade(roulette) should fail")
	}
}

func runArcade(t *testing.T, opts ArcadeOptions, input string) string {
	t.Helper()
	var out bytes.Buffer
	opts.In = strings.NewReader(input)
	opts.Out = &out
	a, err := NewArcade(opts)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestArcadeKeepsProfileAcrossRuns(t *testing.T) {
	for _, driver := range []string{"sqlite", "bolt"} {
		t.Run(driver, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("SNAPSHOT_DRIVER", driver)
			t.Setenv("SNAPSHOT_PATH", filepath.Join(dir, "arcade.db"))
			// nothing listens there, saves fall back to local
			t.Setenv("SLOT_SERVER_URL", "http://127.0.0.1:1")
			t.Setenv("SERVER_TIMEOUT", "1s")
			t.Setenv("LOG_LEVEL", "error")

			opts := ArcadeOptions{
				Game:       model.GameSlot,
				ConfigPath: filepath.Join(dir, "missing.yaml"),
				Player:     "carol",
			}
			out := runArcade(t, opts, "spin\nquit\n")
			if !strings.Contains(out, `player "carol"`) || !strings.Contains(out, "bet -10") {
				t.Fatalf("first run output:\n%s", out)
			}

			opts.Player = ""
			out = runArcade(t, opts, "history\nquit\n")
			if !strings.Contains(out, `player "carol"`) {
				t.Errorf("last player not restored:\n%s", out)
			}
			if !strings.Contains(out, "-10") || strings.Contains(out, "no rounds yet") {
				t.Errorf("history not restored:\n%s", out)
			}
		})
	}
}
