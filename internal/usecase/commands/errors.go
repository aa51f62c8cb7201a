package commands

import (
	"hotel-backoffice/internal/infra"
	"hotel-backoffice/internal/pkg/errs"
)

var (
	ErrRoomNameTaken = errs.New("room name already in use")
	ErrEmailTaken    = errs.New("email already registered")
)

// markRepoErr attaches the domain sentinel matching a repository error kind.
// notFound is used for KindNotFound and may be nil.
func markRepoErr(err, notFound error) error {
	if err == nil {
		return nil
	}
	switch infra.KindOf(err) {
	case infra.KindNotFound:
		if notFound != nil {
			return errs.Mark(err, notFound)
		}
	case infra.KindExclusionViolated:
		return errs.Mark(err, errs.ErrBookingConflict)
	case infra.KindCheckViolated:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	return err
}
