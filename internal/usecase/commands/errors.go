package commands

import (
	"ticket-seckill/internal/infra"
	"ticket-seckill/internal/pkg/errs"
)

// Every sentinel carries exactly one category from errs so handlers map it without a lookup table.
var (
	ErrTicketUnavailable    = errs.Mark(errs.New("out of stock or not in sale window"), errs.ErrConflict)
	ErrOrderRaceUnresolved  = errs.Mark(errs.New("order conflict could not be resolved"), errs.ErrConflict)
	ErrOrderNotPayable      = errs.Mark(errs.New("order not payable"), errs.ErrConflict)
	ErrOrderNotFound        = errs.Mark(errs.New("order not found"), errs.ErrNotFound)
	ErrActiveIntentExists   = errs.Mark(errs.New("active intent already exists"), errs.ErrConflict)
	ErrIntentKeyTaken       = errs.Mark(errs.New("intent key already used by an order for another ticket type"), errs.ErrConflict)
	ErrTicketTypeNotFound   = errs.Mark(errs.New("ticket type not found"), errs.ErrNotFound)
	ErrEventNotFound        = errs.Mark(errs.New("event not found"), errs.ErrNotFound)
	ErrInvalidCredentials   = errs.Mark(errs.New("invalid credentials"), errs.ErrUnauthorized)
	ErrTokenGeneration      = errs.Mark(errs.New("token generation failed"), errs.ErrStorageFailure)
	ErrAuthenticationFailed = errs.Mark(errs.New("authentication failed"), errs.ErrInvalidInput)
)

// invalidInput tags a domain validation error, keeping its message for the response.
func invalidInput(err error) error {
	return errs.Mark(err, errs.ErrInvalidInput)
}

// storageFailure tags unexpected repository errors. Expected outcomes are mapped before this.
func storageFailure(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errs.Mark(errs.Wrap(err, msg), errs.ErrStorageFailure)
}

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
