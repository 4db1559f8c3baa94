package domain

import (
	"errors"
	"strings"
)

// StateFilter is a query-time projection of a booking relative to the
// current moment and its status. It is never persisted.
type StateFilter string

const (
	StateAll      StateFilter = "ALL"
	StateCurrent  StateFilter = "CURRENT"
	StatePast     StateFilter = "PAST"
	StateFuture   StateFilter = "FUTURE"
	StateWaiting  StateFilter = "WAITING"
	StateRejected StateFilter = "REJECTED"
)

var ErrUnknownState = errors.New("unknown state filter")

// ParseStateFilter maps a raw query string onto a StateFilter. Unknown
// input is reported with ErrUnknownState instead of falling back to ALL.
// An empty string means ALL.
func ParseStateFilter(raw string) (StateFilter, error) {
	switch StateFilter(strings.ToUpper(strings.TrimSpace(raw))) {
	case "", StateAll:
		return StateAll, nil
	case StateCurrent:
		return StateCurrent, nil
	case StatePast:
		return StatePast, nil
	case StateFuture:
		return StateFuture, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateRejected:
		return StateRejected, nil
	default:
		return "", ErrUnknownState
	}
}
