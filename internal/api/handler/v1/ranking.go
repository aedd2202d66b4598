package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bolaohub/bolao-api/internal/api/handler/v1/response"
	"github.com/bolaohub/bolao-api/internal/ranking"
	"github.com/bolaohub/bolao-api/internal/service"
)

type RankingService interface {
	GetRanking(ctx context.Context, contestID, selectedDrawID uint) (ranking.Result, error)
	ExportCSV(ctx context.Context, w io.Writer, contestID, selectedDrawID uint) error
}

type RankingHandler struct {
	svc RankingService
}

func NewRankingHandler(svc RankingService) *RankingHandler {
	return &RankingHandler{
		svc: svc,
	}
}

// HandleGetRanking godoc
// @Summary      Get the ranking and prize distribution of a contest
// @Description  Pass drawId to see the standings as of an earlier draw.
// @Tags         ranking
// @Produce      json
// @Param        contestID path      int true "contest ID"
// @Param        drawId    query     int false "compute as of this draw"
// @Success      200 {object} ranking.Result
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      422 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /contests/{contestID}/ranking [get]
// @Security     BearerAuth
func (h *RankingHandler) HandleGetRanking(ctx *gin.Context) {
	contestID, ok := parseIDParam(ctx, "contestID")
	if !ok {
		return
	}

	selectedDrawID, ok := parseDrawIDQuery(ctx)
	if !ok {
		return
	}

	result, err := h.svc.GetRanking(ctx.Request.Context(), contestID, selectedDrawID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContestNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrContestNotFound))
		case errors.Is(err, service.ErrInvalidPercentages):
			response.RenderErr(ctx, response.ErrUnprocessableEntity(err))
		default:
			err = fmt.Errorf("v1.HandleGetRanking -> h.svc.GetRanking -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// HandleExportRankingCSV godoc
// @Summary      Download the ranking as CSV
// @Tags         ranking
// @Produce      text/csv
// @Param        contestID path      int true "contest ID"
// @Param        drawId    query     int false "compute as of this draw"
// @Success      200 {string} string "csv content"
// @Failure      400 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /contests/{contestID}/ranking/export [get]
// @Security     BearerAuth
func (h *RankingHandler) HandleExportRankingCSV(ctx *gin.Context) {
	contestID, ok := parseIDParam(ctx, "contestID")
	if !ok {
		return
	}

	selectedDrawID, ok := parseDrawIDQuery(ctx)
	if !ok {
		return
	}

	filename := service.CSVFileName(contestID, time.Now())
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.svc.ExportCSV(ctx.Request.Context(), ctx.Writer, contestID, selectedDrawID); err != nil {
		switch {
		case errors.Is(err, service.ErrContestNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrContestNotFound))
		case errors.Is(err, service.ErrInvalidPercentages):
			response.RenderErr(ctx, response.ErrUnprocessableEntity(err))
		default:
			err = fmt.Errorf("v1.HandleExportRankingCSV -> h.svc.ExportCSV -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}
}

func parseDrawIDQuery(ctx *gin.Context) (uint, bool) {
	raw := ctx.Query("drawId")
	if raw == "" {
		return 0, true
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid drawId %q", raw)))
		return 0, false
	}

	return uint(id), true
}
