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
	"github.com/google/uuid"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

// @Summary Grab a ticket
// @Description Allocates one unit and creates an order. Replays with the same Idempotency-Key return the original order.
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.GrabRequest true "Grab request"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /tickets/grab [post]
func (h *OrderHandler) Grab(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req reqdto.GrabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.orderCommands.Grab(c.Request.Context(), commands.GrabRequest{
		UserID:         userID,
		TicketTypeID:   req.TicketTypeID,
		Quantity:       req.GetQuantity(),
		IdempotencyKey: c.GetHeader(IdempotencyKeyHeader),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respondOrder(c, result.Order)
}

// @Summary List my orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Router /orders/me [get]
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	views, err := h.orderQueries.ListMine(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := resdto.FromOrderViews(views)
	if err != nil {
		httperr.Respond(c, errs.Mark(err, errs.ErrStorageFailure))
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get one of my orders
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.orderQueries.GetMine(c.Request.Context(), userID, orderID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respondOrder(c, view)
}

// @Summary Pay an order
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/pay [post]
func (h *OrderHandler) Pay(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.orderCommands.Pay(c.Request.Context(), userID, orderID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respondOrder(c, view)
}

func respondOrder(c *gin.Context, view *queries.OrderView) {
	res, err := resdto.FromOrderView(view)
	if err != nil {
		httperr.Respond(c, errs.Mark(err, errs.ErrStorageFailure))
		return
	}
	c.JSON(http.StatusOK, res)
}

func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.Respond(c, errs.Mark(errs.New("user not authenticated"), errs.ErrUnauthorized))
		return uuid.Nil, false
	}
	return userID, true
}
