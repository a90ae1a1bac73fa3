package orchestrator

// MaxAgentSteps bounds model calls per Run. Each tool round trip is one step.
const MaxAgentSteps = 5

const LogPrefixRun = "internal.agent.orchestrator.Run"

// Text returned to the model or the caller.
const (
	ErrMsgAgentLLMError = "generation failed at step %d"
	ErrMsgToolNotFound  = "tool not found"
)

const (
	LogMsgAgentStep          = "step %d/%d"
	LogMsgAgentFinished      = "final answer at step %d"
	LogMsgAgentCallingTool   = "calling tool %s args=%v"
	LogMsgToolExecutionError = "tool %s returned error: %v"
	LogMsgAgentMaxSteps      = "no final answer after %d steps"
)
