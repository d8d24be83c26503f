package hotel

import "fmt"

// UnavailableError reports a room that cannot be reserved. Callers feed it
// back to the conversation rather than treating it as a failure.
type UnavailableError struct {
	RoomID int
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("room %d is not available for booking", e.RoomID)
}

func NewUnavailableError(roomID int) error {
	return &UnavailableError{RoomID: roomID}
}
