package api

import (
	"net/http"

	reqdto "ticket-seckill/internal/handler/dto/request"
	resdto "ticket-seckill/internal/handler/dto/response"
	"ticket-seckill/internal/handler/httperr"
	"ticket-seckill/internal/handler/middleware"
	"ticket-seckill/internal/pkg/errs"
	"ticket-seckill/internal/usecase/commands"
	"ticket-seckill/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
	}
}

// @Summary Login or register
// @Description The first login for a username registers it; later logins verify the password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), commands.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		UserID:      result.UserID,
		Username:    result.Username,
		Role:        result.Role.String(),
	})
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Respond(c, errs.Mark(errs.New("user not authenticated"), errs.ErrUnauthorized))
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	var res resdto.UserResponse
	if err := copier.Copy(&res, view); err != nil {
		httperr.Respond(c, errs.Mark(err, errs.ErrStorageFailure))
		return
	}
	c.JSON(http.StatusOK, res)
}
