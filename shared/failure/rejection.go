package failure

import (
	"errors"
	"fmt"
	"frontdesk/shared/constant"
	"net/http"
	"strings"

	"github.com/lib/pq"
)

// Rejection kinds. Triggers and procedures signal errors as plain text, so these are the only
// outcomes callers should ever branch on.
var (
	ErrBookingConflict      = errors.New("room is already booked for those dates")
	ErrServiceOrderRejected = errors.New("service order was rejected")
	ErrForeignKeyViolation  = errors.New("referenced record does not exist")
	ErrDuplicate            = errors.New("record already exists")
	ErrPersistence          = errors.New("database error")
	ErrCheckoutFailed       = errors.New("checkout failed")
)

type fragment struct {
	text string
	kind error
}

// fragments are matched in order against the lower-cased database message. They mirror the
// RAISE EXCEPTION texts in migrations/postgres.
var fragments = []fragment{
	{text: "already booked", kind: ErrBookingConflict},
	{text: "cannot add service", kind: ErrServiceOrderRejected},
	{text: "service order", kind: ErrServiceOrderRejected},
	{text: "foreign key constraint", kind: ErrForeignKeyViolation},
}

// Rejection is a classified database failure. Kind is one of the Err* values above and Err keeps
// the raw driver error for diagnostics. Detail, when set, replaces the kind text in responses.
type Rejection struct {
	Kind   error
	Err    error
	Detail string
}

func (r *Rejection) Error() string {
	if r.Err == nil {
		return r.Kind.Error()
	}

	return fmt.Sprintf("%s: %s", r.Kind, r.Err)
}

func (r *Rejection) Unwrap() []error {
	if r.Err == nil {
		return []error{r.Kind}
	}

	return []error{r.Kind, r.Err}
}

// Message is the caller-facing text. Text raised by a trigger or procedure may be part of it,
// driver and constraint messages never are.
func (r *Rejection) Message() string {
	if r.Detail != "" {
		return r.Detail
	}

	return r.Kind.Error()
}

// Code maps the rejection kind to an HTTP status.
func (r *Rejection) Code() int {
	switch r.Kind {
	case ErrBookingConflict, ErrCheckoutFailed, ErrDuplicate:
		return http.StatusConflict
	case ErrServiceOrderRejected:
		return http.StatusUnprocessableEntity
	case ErrForeignKeyViolation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Classify turns a raw database error into a *Rejection. Errors that are already classified are
// returned unchanged and unknown text falls back to ErrPersistence.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var rejection *Rejection
	if errors.As(err, &rejection) {
		return err
	}

	return &Rejection{Kind: KindOf(err), Err: err}
}

// KindOf reports the rejection kind for err without wrapping it.
func KindOf(err error) error {
	if err == nil {
		return nil
	}

	var rejection *Rejection
	if errors.As(err, &rejection) {
		return rejection.Kind
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeFkViolation:
			return ErrForeignKeyViolation
		case constant.PqErrorCodeUniqueViolation:
			return ErrDuplicate
		}
	}

	message := strings.ToLower(err.Error())
	for _, frag := range fragments {
		if strings.Contains(message, frag.text) {
			return frag.kind
		}
	}

	return ErrPersistence
}

// RaisedMessage returns the text of a RAISE EXCEPTION issued by a trigger or procedure, or ""
// for any other error.
func RaisedMessage(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeRaiseException {
		return pqErr.Message
	}

	return ""
}

// Reject reports err under the given kind regardless of its text. The innermost driver error is
// kept so the diagnostic message survives re-tagging, and raised text is appended to the message.
func Reject(kind, err error) error {
	if err == nil {
		return nil
	}

	var rejection *Rejection
	if errors.As(err, &rejection) && rejection.Err != nil {
		err = rejection.Err
	}

	rejected := &Rejection{Kind: kind, Err: err}

	if raised := RaisedMessage(err); raised != "" {
		rejected.Detail = fmt.Sprintf("%s: %s", kind, raised)
	}

	return rejected
}

// RejectWithMessage is Reject with a caller-facing message tailored to the operation.
func RejectWithMessage(kind, err error, message string) error {
	rejected := Reject(kind, err)
	if rejected == nil {
		return nil
	}

	rejection, _ := rejected.(*Rejection)
	rejection.Detail = message

	return rejection
}
