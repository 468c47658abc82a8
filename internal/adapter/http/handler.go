package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"survivalcraft/internal/app/action"
	"survivalcraft/internal/app/navigate"
	"survivalcraft/internal/app/observe"
	"survivalcraft/internal/app/ports"
	"survivalcraft/internal/app/replay"
	"survivalcraft/internal/app/saves"
	"survivalcraft/internal/app/session"
	"survivalcraft/internal/app/status"
	"survivalcraft/internal/app/worldgen"
	"survivalcraft/internal/domain/mapgen"
	"survivalcraft/internal/domain/savegame"
	"survivalcraft/internal/domain/survival"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	ObserveUC  observe.UseCase
	StatusUC   status.UseCase
	ActionUC   action.UseCase
	PathUC     navigate.UseCase
	GenerateUC worldgen.UseCase
	SaveUC     saves.SaveUseCase
	LoadUC     saves.LoadUseCase
	ListUC     saves.ListUseCase
	DeleteUC   saves.DeleteUseCase
	ReplayUC   replay.UseCase
	KPI        kpiSnapshotProvider

	// GenerateTimeout bounds a generate request; zero means no bound.
	GenerateTimeout time.Duration
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	w := s.Group("/api/world")
	w.POST("/observe", h.observe)
	w.POST("/status", h.status)
	w.POST("/action", h.action)
	w.POST("/path", h.path)
	w.POST("/generate", h.generate)
	w.GET("/replay", h.replay)

	s.GET("/api/catalog/recipes", h.recipes)

	sv := s.Group("/api/saves")
	sv.GET("", h.listSaves)
	sv.POST("/:name", h.save)
	sv.POST("/:name/load", h.load)
	sv.DELETE("/:name", h.deleteSave)

	s.GET("/ops/kpi", h.kpi)
}

type actionRequest struct {
	Intent survival.ActionIntent `json:"intent"`
}

func (h Handler) observe(c context.Context, ctx *app.RequestContext) {
	var body observe.Request
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ObserveUC.Execute(c, body)
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	// The vitals clock runs on the server tick.
	if hasJSONField(ctx.Request.Body(), "dt") {
		writeActionRejected(ctx, consts.StatusBadRequest, "dt_managed_by_server", "dt is managed by server", map[string]any{"field": "dt"})
		return
	}

	resp, err := h.ActionUC.Execute(c, action.Request{Intent: body.Intent})
	if err != nil {
		if writeActionRejectedFromErr(ctx, err) {
			return
		}
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) path(c context.Context, ctx *app.RequestContext) {
	var body navigate.Request
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.PathUC.Execute(c, body)
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) generate(c context.Context, ctx *app.RequestContext) {
	var body worldgen.Request
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if h.GenerateTimeout > 0 {
		var cancel context.CancelFunc
		c, cancel = context.WithTimeout(c, h.GenerateTimeout)
		defer cancel()
	}
	start := time.Now()
	resp, err := h.GenerateUC.Execute(c, body)
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	hlog.CtxInfof(c, "generated world %q seed=%d land=%d water=%d beach=%d in %s",
		resp.WorldName, resp.Report.Seed, resp.Report.Land, resp.Report.Water, resp.Report.Beach, time.Since(start))
	ctx.JSON(consts.StatusOK, resp)
}

type catalogResponse struct {
	Recipes []survival.ProductionRecipeRule `json:"recipes"`
	Items   []catalogItem                   `json:"items"`
}

type catalogItem struct {
	ID          survival.ItemType `json:"id"`
	DisplayName string            `json:"display_name"`
	Stackable   bool              `json:"stackable"`
	Edible      bool              `json:"edible"`
	Durability  int               `json:"durability,omitempty"`
}

func (h Handler) recipes(_ context.Context, ctx *app.RequestContext) {
	resp := catalogResponse{Recipes: survival.ProductionRecipeRules()}
	for _, id := range survival.ItemTypes() {
		it, _ := survival.LookupItem(id)
		resp.Items = append(resp.Items, catalogItem{
			ID:          id,
			DisplayName: it.DisplayName,
			Stackable:   it.Stackable(),
			Edible:      it.Edible(),
			Durability:  it.DefaultDurability,
		})
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listSaves(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ListUC.Execute(c, saves.ListRequest{})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) save(c context.Context, ctx *app.RequestContext) {
	resp, err := h.SaveUC.Execute(c, saves.SaveRequest{Name: ctx.Param("name")})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) load(c context.Context, ctx *app.RequestContext) {
	resp, err := h.LoadUC.Execute(c, saves.LoadRequest{Name: ctx.Param("name")})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	if resp.Skipped > 0 {
		hlog.CtxWarnf(c, "loaded save %q with %d unknown records skipped", resp.Save.WorldName, resp.Skipped)
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) deleteSave(c context.Context, ctx *app.RequestContext) {
	resp, err := h.DeleteUC.Execute(c, saves.DeleteRequest{Name: ctx.Param("name")})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
		Type:         string(ctx.Query("type")),
	})
	if err != nil {
		writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func hasJSONField(body []byte, key string) bool {
	if len(body) == 0 {
		return false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		return false
	}
	_, ok := m[key]
	return ok
}

func writeError(c context.Context, ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, action.ErrInvalidActionParams):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_action_params", err.Error())
	case errors.Is(err, mapgen.ErrInvalidParameters):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_map_parameters", err.Error())
	case errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, observe.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, navigate.ErrInvalidRequest),
		errors.Is(err, worldgen.ErrInvalidRequest),
		errors.Is(err, saves.ErrInvalidRequest),
		errors.Is(err, replay.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, savegame.ErrUnsupportedVersion):
		writeErrorBody(ctx, consts.StatusUnprocessableEntity, "unsupported_save_version", err.Error())
	case errors.Is(err, savegame.ErrInvalidDimensions):
		writeErrorBody(ctx, consts.StatusUnprocessableEntity, "invalid_save_dimensions", err.Error())
	case errors.Is(err, session.ErrSpawnUnavailable):
		writeErrorBody(ctx, consts.StatusUnprocessableEntity, "spawn_unavailable", err.Error())
	case errors.Is(err, session.ErrNoWorld):
		writeErrorBody(ctx, consts.StatusConflict, "no_world", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "cancelled", err.Error())
	default:
		hlog.CtxErrorf(c, "request %s failed: %v", ctx.Path(), err)
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

func writeActionRejectedFromErr(ctx *app.RequestContext, err error) bool {
	switch {
	case errors.Is(err, action.ErrInvalidActionParams):
		writeActionRejected(ctx, consts.StatusBadRequest, "invalid_action_params", err.Error(), nil)
		return true
	case errors.Is(err, action.ErrInvalidRequest):
		writeActionRejected(ctx, consts.StatusBadRequest, "bad_request", err.Error(), nil)
		return true
	default:
		return false
	}
}

func writeActionRejected(ctx *app.RequestContext, status int, code, message string, details map[string]any) {
	ctx.JSON(status, map[string]any{
		"result_code": survival.ResultRejected,
		"events":      []survival.DomainEvent{},
		"error": map[string]any{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
