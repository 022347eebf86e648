package domain

import (
	"database/sql/driver"
	"fmt"
)

// Status is the lifecycle state of a merge request.
// The numeric value is the ordinal rank; closedness derives from it.
type Status int

// Status constants, in ascending ordinal order.
const (
	StatusOpen Status = iota
	StatusIntegrating
	StatusNeedsRebase
	StatusAccepted
	StatusAbandoned
)

// CloseLimit is the first ordinal considered closed.
const CloseLimit = 3

var statusNames = [...]string{
	StatusOpen:        "open",
	StatusIntegrating: "integrating",
	StatusNeedsRebase: "needs_rebase",
	StatusAccepted:    "accepted",
	StatusAbandoned:   "abandoned",
}

// Statuses lists every status in ordinal order.
func Statuses() []Status {
	return []Status{StatusOpen, StatusIntegrating, StatusNeedsRebase, StatusAccepted, StatusAbandoned}
}

// ParseStatus converts a status name into a Status.
func ParseStatus(s string) (Status, error) {
	for i, name := range statusNames {
		if name == s {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("invalid merge request status: %q", s)
}

// IsValid checks if the status is one of the known alternatives.
func (s Status) IsValid() bool {
	return s >= StatusOpen && s <= StatusAbandoned
}

// IsClosed reports whether the status is at or above CloseLimit.
func (s Status) IsClosed() bool {
	return int(s) >= CloseLimit
}

// IsPending is the complement of IsClosed.
func (s Status) IsPending() bool {
	return !s.IsClosed()
}

// AllowsUpdate is false while the request is integrating or accepted.
func (s Status) AllowsUpdate() bool {
	return s != StatusIntegrating && s != StatusAccepted
}

func (s Status) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid merge request status: %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	status, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// Scan implements sql.Scanner. Statuses are stored as their ordinal.
func (s *Status) Scan(value any) error {
	if value == nil {
		return fmt.Errorf("Status cannot be NULL")
	}

	var ordinal int64
	switch v := value.(type) {
	case int64:
		ordinal = v
	case int32:
		ordinal = int64(v)
	case []byte:
		status, err := ParseStatus(string(v))
		if err != nil {
			return err
		}
		*s = status
		return nil
	case string:
		status, err := ParseStatus(v)
		if err != nil {
			return err
		}
		*s = status
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Status", value)
	}

	status := Status(ordinal)
	if !status.IsValid() {
		return fmt.Errorf("invalid merge request status ordinal: %d", ordinal)
	}
	*s = status
	return nil
}

// Value implements driver.Valuer.
func (s Status) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid Status value: %d", int(s))
	}
	return int64(s), nil
}
