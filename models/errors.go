package models

const (
	MessageBadRequest     = "bad request"
	MessageNotFound       = "resource not found"
	MessageTopicExists    = "topic already exists"
	MessageInternalServer = "internal server error"
)

// ErrorBadRequest covers malformed input and references in a request body
// that point at nothing.
type ErrorBadRequest struct {
	Message string
	Err     error
}

func (e *ErrorBadRequest) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ErrorBadRequest) Unwrap() error { return e.Err }

// ErrorNotFound is returned when the resource addressed by the URL is absent.
type ErrorNotFound struct {
	Message string
	Err     error
}

func (e *ErrorNotFound) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ErrorNotFound) Unwrap() error { return e.Err }

type ErrorConflict struct {
	Message string
	Err     error
}

func (e *ErrorConflict) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ErrorConflict) Unwrap() error { return e.Err }

type ErrorInternalServer struct {
	Err error
}

func (e *ErrorInternalServer) Error() string {
	if e.Err != nil {
		return MessageInternalServer + ": " + e.Err.Error()
	}
	return MessageInternalServer
}

func (e *ErrorInternalServer) Unwrap() error { return e.Err }

func NewBadRequest(err error) error {
	return &ErrorBadRequest{Message: MessageBadRequest, Err: err}
}

func NewNotFound(err error) error {
	return &ErrorNotFound{Message: MessageNotFound, Err: err}
}

func NewTopicConflict(err error) error {
	return &ErrorConflict{Message: MessageTopicExists, Err: err}
}
