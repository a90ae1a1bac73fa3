package conversation

import "time"

// Message is one stored conversation turn.
type Message struct {
	ID        int64
	UserID    string
	Role      string
	Text      string
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type AppendInput struct {
	UserID string
	Role   string
	Text   string
}

type AppendExchangeInput struct {
	UserID        string
	UserText      string
	AssistantText string
}

type HistoryInput struct {
	UserID string
	Limit  int
}

// DefaultMaxContextMessages is how many turns RecentContext renders.
const DefaultMaxContextMessages = 10
