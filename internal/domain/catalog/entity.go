package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	id        uuid.UUID
	name      string
	schedule  Window
	createdAt time.Time
}

func NewEvent(name string, startsAt, endsAt time.Time) (*Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	schedule, err := NewWindow(startsAt, endsAt)
	if err != nil {
		return nil, err
	}
	return &Event{
		id:       uuid.New(),
		name:     name,
		schedule: schedule,
	}, nil
}

func (e *Event) ID() uuid.UUID        { return e.id }
func (e *Event) Name() string         { return e.name }
func (e *Event) StartsAt() time.Time  { return e.schedule.Start() }
func (e *Event) EndsAt() time.Time    { return e.schedule.End() }
func (e *Event) CreatedAt() time.Time { return e.createdAt }

// TicketType is a sellable inventory pool. Once created, only allocation changes it.
type TicketType struct {
	id                 uuid.UUID
	eventID            uuid.UUID
	name               string
	price              Money
	inventoryTotal     int32
	inventoryRemaining int32
	sale               Window
	createdAt          time.Time
}

func NewTicketType(eventID uuid.UUID, name string, priceCents int64, inventoryTotal int32, saleStartsAt, saleEndsAt time.Time) (*TicketType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if inventoryTotal <= 0 {
		return nil, ErrInvalidQuantity
	}
	price, err := NewMoney(priceCents)
	if err != nil {
		return nil, err
	}
	sale, err := NewWindow(saleStartsAt, saleEndsAt)
	if err != nil {
		return nil, err
	}
	return &TicketType{
		id:                 uuid.New(),
		eventID:            eventID,
		name:               name,
		price:              price,
		inventoryTotal:     inventoryTotal,
		inventoryRemaining: inventoryTotal,
		sale:               sale,
	}, nil
}

// CanAllocate mirrors the allocation predicate evaluated by storage:
// at least one unit left and now inside the sale window.
func (t *TicketType) CanAllocate(now time.Time) bool {
	return t.inventoryRemaining >= 1 && t.sale.Contains(now)
}

func (t *TicketType) ID() uuid.UUID             { return t.id }
func (t *TicketType) EventID() uuid.UUID        { return t.eventID }
func (t *TicketType) Name() string              { return t.name }
func (t *TicketType) Price() Money              { return t.price }
func (t *TicketType) InventoryTotal() int32     { return t.inventoryTotal }
func (t *TicketType) InventoryRemaining() int32 { return t.inventoryRemaining }
func (t *TicketType) SaleStartsAt() time.Time   { return t.sale.Start() }
func (t *TicketType) SaleEndsAt() time.Time     { return t.sale.End() }
func (t *TicketType) CreatedAt() time.Time      { return t.createdAt }

func ReconstructEvent(id uuid.UUID, name string, startsAt, endsAt, createdAt time.Time) *Event {
	return &Event{
		id:        id,
		name:      name,
		schedule:  Window{start: startsAt, end: endsAt},
		createdAt: createdAt,
	}
}

func ReconstructTicketType(
	id, eventID uuid.UUID,
	name string,
	priceCents int64,
	inventoryTotal, inventoryRemaining int32,
	saleStartsAt, saleEndsAt, createdAt time.Time,
) *TicketType {
	return &TicketType{
		id:                 id,
		eventID:            eventID,
		name:               name,
		price:              Money{cents: priceCents},
		inventoryTotal:     inventoryTotal,
		inventoryRemaining: inventoryRemaining,
		sale:               Window{start: saleStartsAt, end: saleEndsAt},
		createdAt:          createdAt,
	}
}
