// Package history keeps the bounded conversation log that feeds the model
// context window.
package history

// Role tags a conversation turn. The log tolerates any sequence; strict
// user/model alternation is not enforced.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one role-tagged unit of conversation.
type Turn struct {
	Role Role
	Text string
}

// DefaultLimit is 5 user/model pairs.
const DefaultLimit = 10

// Log is an append-only turn sequence capped at a maximum length. When the
// cap is exceeded the oldest turns are dropped. Not safe for concurrent
// use; each chat session owns its own instance.
type Log struct {
	turns []Turn
	limit int
}

// NewLog creates a Log holding at most limit turns. limit < 1 falls back
// to DefaultLimit.
func NewLog(limit int) *Log {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &Log{limit: limit}
}

// Append adds a turn, dropping the oldest turns if the cap is exceeded.
func (l *Log) Append(role Role, text string) {
	l.turns = append(l.turns, Turn{Role: role, Text: text})
	if over := len(l.turns) - l.limit; over > 0 {
		l.turns = l.turns[over:]
	}
}

// Current returns a snapshot of the retained turns, oldest first.
func (l *Log) Current() []Turn {
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Len returns the number of retained turns.
func (l *Log) Len() int { return len(l.turns) }

// Clear empties the log.
func (l *Log) Clear() {
	l.turns = nil
}
