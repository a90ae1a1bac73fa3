package usecase

import "time"

const (
	DefaultJudgeTimeout = 60 * time.Second
	DefaultRating       = 10
	DefaultListLimit    = 50

	judgeTemperature = 0.2
	judgeMaxTokens   = 1024

	msgJudgeInvalidJSON = "Judge failed to return valid JSON"
	msgFeedbackRecorded = "Feedback recorded. The agent will improve."
	msgAcceptedAsIs     = "Output accepted as perfect."
)

const promptJudge = `You are a strict evaluator of AI agent output. Rate the following agent output on a scale of 1-10 across 5 criteria. Be extremely harsh: only perfection gets 10.

Task Description:
%s

Agent Output:
%s

Rate strictly:

1. Correctness & Accuracy : /10
2. Structure & Clarity : /10
3. Creativity & Polish : /10
4. Adherence to Instructions : /10
5. Overall Impact : /10

Total Score: /50

Give a one-sentence justification. If score < 45, explain exactly what to fix.
Respond in JSON only.`
