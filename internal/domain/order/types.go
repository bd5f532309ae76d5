package order

type Status string

const (
	StatusCreated Status = "CREATED"
	StatusPaid    Status = "PAID"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusPaid:
		return true
	default:
		return false
	}
}

// IsActive reports whether an order in this status blocks another order for the same
// buyer and ticket type.
func (s Status) IsActive() bool {
	return s == StatusCreated || s == StatusPaid
}
