package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"

	"harvestduel/internal/app/match"
	"harvestduel/internal/app/ports"
	"harvestduel/internal/domain/farming"
)

// ProviderFactory builds a fresh decision provider per match so stateful
// policies never leak between games.
type ProviderFactory func() ports.DecisionProvider

type Handler struct {
	Rules      *farming.Rules
	Player1    ProviderFactory
	Player2    ProviderFactory
	History    ports.MatchHistoryRepository
	Metrics    ports.MatchMetrics
	KPI        kpiSnapshotProvider
	NewMatchID func() string

	mu      sync.Mutex
	running bool
	matchID string
	cancel  context.CancelFunc
	latest  *match.DaySnapshot
	done    chan struct{}
}

func (h *Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())
	s.POST("/start_game", h.startGame)
	s.POST("/stop_game", h.stopGame)
	s.GET("/game_state", h.gameState)
	s.GET("/matches/:match_id/log", h.matchLog)
	s.GET("/ops/kpi", h.kpi)
}

type startGameResponse struct {
	MatchID string `json:"match_id"`
	Message string `json:"message"`
}

func (h *Handler) startGame(_ context.Context, ctx *app.RequestContext) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.running {
		writeErrorBody(ctx, consts.StatusConflict, "match_in_progress", "a match is already running")
		return
	}

	newMatchID := h.NewMatchID
	if newMatchID == nil {
		newMatchID = uuid.NewString
	}
	matchID := newMatchID()

	runCtx, cancel := context.WithCancel(context.Background())
	driver := match.Driver{
		Rules:   h.Rules,
		Player1: h.Player1(),
		Player2: h.Player2(),
		History: h.History,
		Metrics: h.Metrics,
		MatchID: matchID,
		Sink:    h.recordSnapshot,
	}

	h.running = true
	h.matchID = matchID
	h.cancel = cancel
	h.latest = nil
	h.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		defer cancel()
		_, _ = driver.Run(runCtx)
		h.mu.Lock()
		h.running = false
		h.mu.Unlock()
	}(h.done)

	ctx.JSON(consts.StatusAccepted, startGameResponse{
		MatchID: matchID,
		Message: "match started",
	})
}

func (h *Handler) recordSnapshot(snap match.DaySnapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = &snap
}

func (h *Handler) stopGame(_ context.Context, ctx *app.RequestContext) {
	h.mu.Lock()
	cancel := h.cancel
	done := h.done
	running := h.running
	h.cancel = nil
	h.mu.Unlock()

	if !running || cancel == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "no_match_running", "no match is running")
		return
	}
	cancel()
	if done != nil {
		<-done
	}

	ctx.JSON(consts.StatusOK, map[string]string{"message": "Game stopped"})
}

func (h *Handler) gameState(_ context.Context, ctx *app.RequestContext) {
	h.mu.Lock()
	latest := h.latest
	h.mu.Unlock()

	if latest == nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "game_not_started", "Game not started")
		return
	}
	ctx.JSON(consts.StatusOK, latest)
}

func (h *Handler) matchLog(c context.Context, ctx *app.RequestContext) {
	if h.History == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "match history not configured")
		return
	}
	matchID := strings.TrimSpace(ctx.Param("match_id"))
	if matchID == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_match_id", "missing match_id")
		return
	}

	records, err := h.History.ListByMatchID(c, matchID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	days := make([]json.RawMessage, 0, len(records))
	for _, r := range records {
		days = append(days, json.RawMessage(r.Snapshot))
	}
	ctx.JSON(consts.StatusOK, map[string]any{
		"match_id": matchID,
		"days":     days,
	})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h *Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
