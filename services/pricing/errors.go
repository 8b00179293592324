package pricing

import "fmt"

type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSessionNotFoundError(sessionID string) error {
	return &SessionError{
		Code:    "sessionNotFound",
		Message: fmt.Sprintf("configurator session %s not found or expired", sessionID),
	}
}

func NewIncompleteSelectionError(hint string) error {
	return &SessionError{
		Code:    "incompleteSelection",
		Message: hint,
	}
}
