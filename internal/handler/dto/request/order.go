package request

import (
	"github.com/google/uuid"
)

type GrabRequest struct {
	TicketTypeID uuid.UUID `json:"ticket_type_id" binding:"required"`
	// Defaults to 1 when omitted; any other value is rejected by the use case.
	Quantity *int32 `json:"quantity,omitempty"`
}

func (r GrabRequest) GetQuantity() int32 {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type CreateIntentRequest struct {
	TicketTypeID uuid.UUID `json:"ticket_type_id" binding:"required"`
}
