package api

import (
	"net/http"

	reqdto "ticket-seckill/internal/handler/dto/request"
	resdto "ticket-seckill/internal/handler/dto/response"
	"ticket-seckill/internal/handler/httperr"
	"ticket-seckill/internal/pkg/errs"
	"ticket-seckill/internal/usecase/commands"
	"ticket-seckill/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type IntentHandler struct {
	intentCommands commands.IntentCommands
	intentQueries  queries.IntentQueries
	catalogQueries queries.CatalogQueries
}

func NewIntentHandler(intentCommands commands.IntentCommands, intentQueries queries.IntentQueries, catalogQueries queries.CatalogQueries) *IntentHandler {
	return &IntentHandler{
		intentCommands: intentCommands,
		intentQueries:  intentQueries,
		catalogQueries: catalogQueries,
	}
}

// @Summary Queue a purchase intent
// @Description The reconciliation worker turns the intent into an order once inventory allows
// @Tags intents
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateIntentRequest true "Intent request"
// @Success 200 {object} resdto.IntentResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /purchase-intents [post]
func (h *IntentHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req reqdto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	if _, err := h.catalogQueries.GetTicketType(c.Request.Context(), req.TicketTypeID); err != nil {
		httperr.Respond(c, err)
		return
	}

	view, err := h.intentCommands.Create(c.Request.Context(), userID, req.TicketTypeID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := resdto.FromIntentView(view)
	if err != nil {
		httperr.Respond(c, errs.Mark(err, errs.ErrStorageFailure))
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List my purchase intents
// @Tags intents
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.IntentResponse
// @Router /purchase-intents/mine [get]
func (h *IntentHandler) ListMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	views, err := h.intentQueries.ListMine(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := resdto.FromIntentViews(views)
	if err != nil {
		httperr.Respond(c, errs.Mark(err, errs.ErrStorageFailure))
		return
	}
	c.JSON(http.StatusOK, res)
}
