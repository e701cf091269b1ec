package ticket

import (
	"strings"

	"github.com/BruksfildServices01/cleaning-booking/internal/httperr"
)

// Status names match the ticket_statuses rows, which are looked up by name.
// Any status may follow any other; closed is not terminal.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

var AllStatuses = []Status{StatusOpen, StatusInProgress, StatusClosed}

func ParseStatus(name string) (Status, error) {
	switch s := Status(strings.ToLower(strings.TrimSpace(name))); s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return s, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func InitialStatus() Status {
	return StatusOpen
}

func (s Status) String() string {
	return string(s)
}
