package score

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	dto "mini_casino/internal/api/dto/score"
	"mini_casino/internal/converter"
	"mini_casino/internal/model"
	"mini_casino/internal/service"
	"mini_casino/pkg/req"
	"mini_casino/pkg/resp"
)

type HandlerDeps struct {
	Serv   service.ScoreService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.ScoreService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, logger: logger}
}

func (h *Handler) SaveScore(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SaveScoreRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	result, err := h.serv.SaveScore(r.Context(), converter.ToSaveScore(payload))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSaveScoreResponse(*result))
}

func (h *Handler) GetScores(w http.ResponseWriter, r *http.Request) {
	playerID := playerParam(r)
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			resp.WriteJSONError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = v
	}

	scores, err := h.serv.Scores(r.Context(), model.ScoresQuery{PlayerID: playerID, Limit: limit})
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToScoresResponse(playerID, scores))
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.serv.Leaderboard(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeaderboardResponse(entries, time.Now().UTC()))
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.serv.PlayerStats(r.Context(), playerParam(r))
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayerStatsResponse(*stats))
}

func (h *Handler) GetAllPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.serv.Players(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayersResponse(players))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	health, err := h.serv.Health(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHealthResponse(*health))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrScoreRequired):
		resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrPlayerNotFound):
		resp.WriteJSONError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("request failed", zap.Error(err))
		resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
	}
}

func playerParam(r *http.Request) string {
	if id := r.URL.Query().Get("player_id"); id != "" {
		return id
	}
	return "guest"
}
