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
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary Create event
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateEventRequest true "Event"
// @Success 200 {object} resdto.EventResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/events [post]
func (h *CatalogHandler) CreateEvent(c *gin.Context) {
	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.catalogCommands.CreateEvent(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	respondEvent(c, view)
}

// @Summary Create ticket type for an event
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param event_id path string true "Event ID"
// @Param request body reqdto.CreateTicketTypeRequest true "Ticket type"
// @Success 200 {object} resdto.TicketTypeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/events/{event_id}/ticket_types [post]
func (h *CatalogHandler) CreateTicketType(c *gin.Context) {
	eventID, ok := pathUUID(c, "event_id")
	if !ok {
		return
	}

	var req reqdto.CreateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	h.createTicketType(c, req.ToCommand(eventID))
}

// @Summary Create ticket type with the event in the body
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateTicketTypeRequest true "Ticket type"
// @Success 200 {object} resdto.TicketTypeResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/ticket-types [post]
func (h *CatalogHandler) CreateTicketTypeFromBody(c *gin.Context) {
	var req reqdto.CreateTicketTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request format")
		return
	}
	if req.EventID == uuid.Nil {
		httperr.BadRequest(c, errs.New("event_id is required"), "event_id is required")
		return
	}
	h.createTicketType(c, req.ToCommand(req.EventID))
}

func (h *CatalogHandler) createTicketType(c *gin.Context, cmd commands.CreateTicketTypeRequest) {
	view, err := h.catalogCommands.CreateTicketType(c.Request.Context(), cmd)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := resdto.FromTicketTypeView(view)
	if err != nil {
		httperr.Respond(c, errs.Mark(err, errs.ErrStorageFailure))
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List events
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.EventResponse
// @Router /events [get]
func (h *CatalogHandler) ListEvents(c *gin.Context) {
	views, err := h.catalogQueries.ListEvents(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := resdto.FromEventViews(views)
	if err != nil {
		httperr.Respond(c, errs.Mark(err, errs.ErrStorageFailure))
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List ticket types of an event
// @Tags catalog
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {array} resdto.TicketTypeResponse
// @Failure 400 {object} httperr.Response
// @Router /events/{event_id}/ticket_types [get]
func (h *CatalogHandler) ListTicketTypes(c *gin.Context) {
	eventID, ok := pathUUID(c, "event_id")
	if !ok {
		return
	}

	views, err := h.catalogQueries.ListTicketTypes(c.Request.Context(), eventID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	res, err := resdto.FromTicketTypeViews(views)
	if err != nil {
		httperr.Respond(c, errs.Mark(err, errs.ErrStorageFailure))
		return
	}
	c.JSON(http.StatusOK, res)
}

func respondEvent(c *gin.Context, view *queries.EventView) {
	res, err := resdto.FromEventView(view)
	if err != nil {
		httperr.Respond(c, errs.Mark(err, errs.ErrStorageFailure))
		return
	}
	c.JSON(http.StatusOK, res)
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
