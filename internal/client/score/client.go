// Package score is the HTTP client of the score server.
package score

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	dto "mini_casino/internal/api/dto/score"
	"mini_casino/internal/client"
	"mini_casino/internal/model"
)

// maxBody caps how much of a response is read
const maxBody = 1 << 20

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the server at baseURL. A zero timeout leaves requests unbounded.
func New(baseURL string, timeout time.Duration) client.ScoreClient {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) SaveScore(ctx context.Context, playerID string, gameType model.GameType, score int) (model.SaveAck, error) {
	body, err := json.Marshal(dto.SaveScoreRequest{
		PlayerID: playerID,
		Score:    &score,
		GameType: string(gameType),
	})
	if err != nil {
		return model.SaveAck{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/save_score", bytes.NewReader(body))
	if err != nil {
		return model.SaveAck{}, fmt.Errorf("%w: %v", model.ErrNetworkFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")

	var payload dto.SaveScoreResponse
	if err := c.do(req, &payload); err != nil {
		return model.SaveAck{}, err
	}
	if payload.Status == "" {
		return model.SaveAck{}, fmt.Errorf("%w: save response without status", model.ErrMalformedResponse)
	}

	return model.SaveAck{Status: payload.Status, Message: payload.Message}, nil
}

func (c *Client) LatestScores(ctx context.Context, playerID string, limit int) ([]model.ScoreEntry, error) {
	q := url.Values{}
	q.Set("player_id", playerID)
	q.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get_scores?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrNetworkFailure, err)
	}

	var payload dto.ScoresResponse
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}

	out := make([]model.ScoreEntry, 0, len(payload.Scores))
	for _, s := range payload.Scores {
		out = append(out, model.ScoreEntry{
			ID:        s.ID,
			PlayerID:  playerID,
			GameType:  model.GameType(s.GameType),
			Score:     s.Score,
			Timestamp: s.Timestamp,
		})
	}
	return out, nil
}

// do sends the request and decodes a 2xx JSON body into out
func (c *Client) do(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrNetworkFailure, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxBody))
		return fmt.Errorf("%w: %s %s: status %d", model.ErrNetworkFailure, req.Method, req.URL.Path, res.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(res.Body, maxBody)).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", model.ErrMalformedResponse, err)
	}
	return nil
}
