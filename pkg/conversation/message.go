package conversation

import (
	"time"
)

// DisplayedMessage is a render-time record. It is produced on demand and
// never stored by the generator.
type DisplayedMessage struct {
	Position  int
	Text      string
	Timestamp time.Time
	Sender    Sender
}

// Rand is the random source used for message generation.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Build synthesizes the message shown at position. The text is the suffix
// of seed starting at a uniformly drawn rune index, so it is never empty.
// The position does not influence the result; it is carried for rendering.
func Build(seed string, position int, rng Rand, now time.Time) (DisplayedMessage, error) {
	runes := []rune(seed)
	if len(runes) == 0 {
		return DisplayedMessage{}, NewInvalidArgumentError("lastMessage", "must not be empty")
	}
	if rng == nil {
		return DisplayedMessage{}, NewInvalidArgumentError("rand", "random source is required")
	}

	start := rng.IntN(len(runes))
	if start < 0 || start >= len(runes) {
		return DisplayedMessage{}, NewInvalidArgumentError("rand", "index out of range")
	}
	sender := SenderSelf
	if rng.IntN(2) == 0 {
		sender = SenderOther
	}

	return DisplayedMessage{
		Position:  position,
		Text:      string(runes[start:]),
		Timestamp: now,
		Sender:    sender,
	}, nil
}

// IsSelf reports whether the message belongs to the local user
func (m DisplayedMessage) IsSelf() bool {
	return m.Sender.IsSelf()
}

// FormatTime returns the time-of-day label shown next to the text
func (m DisplayedMessage) FormatTime(layout string) string {
	if layout == "" {
		layout = DefaultTimeFormat
	}
	return m.Timestamp.Format(layout)
}

// DefaultTimeFormat renders times like "3:45 PM"
const DefaultTimeFormat = "3:04 PM"
