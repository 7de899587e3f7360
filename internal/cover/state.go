// Package cover resolves book image keys to display-ready URLs, either on the
// image CDN or on a bundled placeholder reflecting the image's moderation state.
package cover

import (
	"encoding/json"
	"fmt"
)

// State is the moderation status of a book image.
type State int

const (
	StateApproved State = iota + 1
	StatePendingApproval
	StateInappropriate
	StateUnavailable
)

// States lists every moderation state in declaration order.
var States = []State{StateApproved, StatePendingApproval, StateInappropriate, StateUnavailable}

// String returns the database representation of the state.
func (s State) String() string {
	switch s {
	case StateApproved:
		return "APPROVED"
	case StatePendingApproval:
		return "PENDING_APPROVAL"
	case StateInappropriate:
		return "INAPPROPRIATE"
	case StateUnavailable:
		return "UNAVAILABLE"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ParseState converts a stored image_state value into a State.
func ParseState(v string) (State, error) {
	for _, s := range States {
		if s.String() == v {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownState, v)
}

// MarshalJSON encodes the state as its database string.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts the database string form.
func (s *State) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	parsed, err := ParseState(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
