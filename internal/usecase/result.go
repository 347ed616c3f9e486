package usecase

import (
	"usermgr/internal/domain/entity"
	domainerrors "usermgr/internal/domain/errors"
)

// Result is the outcome of a user service operation. A successful result may
// carry the affected user; a failed one carries the domain error describing
// the failure category and never a user.
type Result struct {
	success bool
	message string
	user    *entity.User
	err     *domainerrors.BaseError
}

// Succeed builds a successful result. user may be nil.
func Succeed(message string, user *entity.User) Result {
	return Result{success: true, message: message, user: user}
}

// Fail builds a failed result whose message is shown to the caller verbatim.
func Fail(err *domainerrors.BaseError, message string) Result {
	if err == nil {
		err = domainerrors.ErrInternalError
	}

	return Result{message: message, err: err.WithDetails(message)}
}

// Success reports whether the operation succeeded.
func (r Result) Success() bool {
	return r.success
}

// Message returns the human readable outcome.
func (r Result) Message() string {
	return r.message
}

// User returns the user attached to a successful result, or nil.
func (r Result) User() *entity.User {
	return r.user
}

// Err returns the failure category, or nil on success.
func (r Result) Err() domainerrors.AppError {
	if r.err == nil {
		return nil
	}

	return r.err
}

func (r Result) String() string {
	status := "failure"
	if r.success {
		status = "success"
	}
	username := "<none>"
	if r.user != nil {
		username = r.user.Username
	}

	return status + ": " + r.message + " (user " + username + ")"
}
