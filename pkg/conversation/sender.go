package conversation

import "fmt"

// Sender identifies which side of the conversation a message belongs to
type Sender int

const (
	// SenderOther is the remote conversation partner
	SenderOther Sender = iota
	// SenderSelf is the local user
	SenderSelf
)

// String returns the string representation of the sender
func (s Sender) String() string {
	switch s {
	case SenderOther:
		return "other"
	case SenderSelf:
		return "self"
	default:
		return "unknown"
	}
}

// IsSelf reports whether the message was written by the local user
func (s Sender) IsSelf() bool {
	return s == SenderSelf
}

// ParseSender converts "self" or "other" into a Sender
func ParseSender(s string) (Sender, error) {
	switch s {
	case "other":
		return SenderOther, nil
	case "self":
		return SenderSelf, nil
	default:
		return SenderOther, NewInvalidArgumentError("sender", fmt.Sprintf("unknown sender %q", s))
	}
}

// MarshalText encodes the sender as "self" or "other"
func (s Sender) MarshalText() ([]byte, error) {
	if s != SenderOther && s != SenderSelf {
		return nil, NewInvalidArgumentError("sender", fmt.Sprintf("unknown sender %d", int(s)))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes "self" or "other"
func (s *Sender) UnmarshalText(text []byte) error {
	parsed, err := ParseSender(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
