package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusConflict       = http.StatusConflict
	ErrStatusUnprocessable  = http.StatusUnprocessableEntity
	ErrStatusBadGateway     = http.StatusBadGateway
)

var (
	ErrInternalServer       = errors.New("Internal server error")
	ErrClient               = errors.New("Bad request")
	ErrNotFound             = errors.New("Resource not found")
	ErrSessionNotFound      = errors.New("Form session not found")
	ErrMissingRequiredField = errors.New("Missing required field")
	ErrUnknownField         = errors.New("Unknown field")
	ErrReadOnlyField        = errors.New("Field is assigned by the backend")
	ErrInvalidFieldValue    = errors.New("Invalid field value")
	ErrUnknownEditOperation = errors.New("Unknown edit operation")
	ErrInvalidSeed          = errors.New("Unknown seed")
	ErrStructuralIndex      = errors.New("Index out of range")
	ErrSubmissionInProgress = errors.New("A submission is already in progress")
	ErrTransportFailure     = errors.New("Aggregate service request failed")
)

var errorMap = map[error]int{
	ErrInternalServer:       ErrStatusInternalServer,
	ErrClient:               ErrStatusClient,
	ErrNotFound:             ErrStatusNotFound,
	ErrSessionNotFound:      ErrStatusNotFound,
	ErrMissingRequiredField: ErrStatusClient,
	ErrUnknownField:         ErrStatusClient,
	ErrReadOnlyField:        ErrStatusClient,
	ErrInvalidFieldValue:    ErrStatusClient,
	ErrUnknownEditOperation: ErrStatusClient,
	ErrInvalidSeed:          ErrStatusClient,
	ErrStructuralIndex:      ErrStatusUnprocessable,
	ErrSubmissionInProgress: ErrStatusConflict,
	ErrTransportFailure:     ErrStatusBadGateway,
}

// GetErrorStatusCode maps err to an HTTP status. Typed errors that unwrap to
// one of the sentinels above get the sentinel's status.
func GetErrorStatusCode(err error) int {
	if errStatusCode, ok := errorMap[err]; ok {
		return errStatusCode
	}

	for sentinel, errStatusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return errStatusCode
		}
	}

	return errorMap[ErrInternalServer]
}
