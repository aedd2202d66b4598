package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/bolaohub/bolao-api/internal/api/handler/v1/response"
	"github.com/bolaohub/bolao-api/internal/api/middleware"
	"github.com/bolaohub/bolao-api/internal/domain"
)

func getUserFromContext(ctx *gin.Context, svc UserService) (domain.User, *response.Err) {
	value, exists := ctx.Get(middleware.ContextKeyUserID)
	if !exists {
		return domain.User{}, response.ErrUnauthorized()
	}

	userID, ok := value.(uint)
	if !ok {
		return domain.User{}, response.ErrUnauthorized()
	}

	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		return domain.User{}, response.ErrInternalServerError(fmt.Errorf("v1.getUserFromContext -> svc.GetUser -> %w", err))
	}

	return user, nil
}
