package evaluation

import "time"

// Feedback is one stored human rating.
type Feedback struct {
	ID        int64
	Task      string
	Output    string
	Rating    int
	Feedback  string
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type JudgeInput struct {
	Task   string
	Output string
}

type FeedbackInput struct {
	Task     string
	Output   string
	Rating   string // "1".."10"; blank means 10
	Feedback string
}

// --- UseCase Outputs ---

// JudgeOutput holds the decoded verdict. When the model reply is not JSON,
// Verdict is {"raw": <reply>, "error": "..."} and Valid is false.
type JudgeOutput struct {
	Verdict map[string]any
	Valid   bool
}

type FeedbackOutput struct {
	Recorded bool
	Message  string
	Feedback Feedback
}
