package lattice_services

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of a service mutation. Handlers translate it to a
// status code and must treat values outside this set as unreachable.
type Result int

const (
	Ok Result = iota
	NotFound
	UserNotFound
	InvalidEmail
	EmailAlreadyTaken
	UnknownError
)

func (r Result) String() string {
	switch r {
	case Ok:
		return "Ok"
	case NotFound:
		return "NotFound"
	case UserNotFound:
		return "UserNotFound"
	case InvalidEmail:
		return "InvalidEmail"
	case EmailAlreadyTaken:
		return "EmailAlreadyTaken"
	case UnknownError:
		return "UnknownError"
	default:
		return "Unknown"
	}
}

// ExistenceChecker is the capability a service exposes to its peers for
// validating foreign references before an insert.
type ExistenceChecker interface {
	Exists(ctx context.Context, id uint64) (bool, error)
}

// failure logs an unexpected persistence error and folds it into the one
// result value handlers map to a 500.
func failure(op string, err error) Result {
	logrus.WithError(err).Errorf("%s failed", op)
	return UnknownError
}
