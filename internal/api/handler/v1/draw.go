package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bolaohub/bolao-api/internal/api/handler/v1/request"
	"github.com/bolaohub/bolao-api/internal/api/handler/v1/response"
	"github.com/bolaohub/bolao-api/internal/domain"
	"github.com/bolaohub/bolao-api/internal/service"
)

type DrawService interface {
	PublishDraw(ctx context.Context, draw domain.Draw) (domain.Draw, error)
	GetDraw(ctx context.Context, id uint) (domain.Draw, error)
	ListDraws(ctx context.Context, contestID uint) ([]domain.Draw, error)
	DeleteDraw(ctx context.Context, id uint) error
}

type DrawHandler struct {
	svc  DrawService
	uSvc UserService
}

func NewDrawHandler(svc DrawService, uSvc UserService) *DrawHandler {
	return &DrawHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandlePublishDraw godoc
// @Summary      Publish a draw for a contest (admin only)
// @Tags         draws
// @Produce      json
// @Param        contestID path      int true "contest ID"
// @Param        request   body      request.PublishDrawRequest true "request body"
// @Success      201 {object} domain.Draw
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /contests/{contestID}/draws [post]
// @Security     BearerAuth
func (h *DrawHandler) HandlePublishDraw(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied())
		return
	}

	contestID, ok := parseIDParam(ctx, "contestID")
	if !ok {
		return
	}

	var req request.PublishDrawRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.PublishDraw(ctx.Request.Context(), domain.Draw{
		ContestID: contestID,
		Numbers:   req.Numbers,
		DrawDate:  req.DrawDate,
		CreatedBy: user.ID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContestNotFound):
			response.RenderErr(ctx, response.ErrNotFound(service.ErrContestNotFound))
		case errors.Is(err, service.ErrDrawContestInactive),
			errors.Is(err, service.ErrDrawNumbersEmpty),
			errors.Is(err, service.ErrDrawNumbersRange),
			errors.Is(err, service.ErrDrawNumbersDuplicate):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandlePublishDraw -> h.svc.PublishDraw -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListDraws godoc
// @Summary      List the draws of a contest
// @Tags         draws
// @Produce      json
// @Param        contestID path      int true "contest ID"
// @Success      200 {array} domain.Draw
// @Failure      400 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /contests/{contestID}/draws [get]
// @Security     BearerAuth
func (h *DrawHandler) HandleListDraws(ctx *gin.Context) {
	contestID, ok := parseIDParam(ctx, "contestID")
	if !ok {
		return
	}

	draws, err := h.svc.ListDraws(ctx.Request.Context(), contestID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListDraws -> h.svc.ListDraws -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, draws)
}

// HandleDeleteDraw godoc
// @Summary      Delete a draw (admin only)
// @Tags         draws
// @Produce      json
// @Param        drawID path      int true "draw ID"
// @Success      204 {string} string "no content"
// @Failure      400 {object} response.Err
// @Failure      403 {object} response.Err
// @Failure      404 {object} response.Err
// @Failure      500 {object} response.Err
// @Router       /draws/{drawID} [delete]
// @Security     BearerAuth
func (h *DrawHandler) HandleDeleteDraw(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if !user.IsAdmin() {
		response.RenderErr(ctx, response.ErrPermissionDenied())
		return
	}

	drawID, ok := parseIDParam(ctx, "drawID")
	if !ok {
		return
	}

	if err := h.svc.DeleteDraw(ctx.Request.Context(), drawID); err != nil {
		if errors.Is(err, service.ErrDrawNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrDrawNotFound))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteDraw -> h.svc.DeleteDraw -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
