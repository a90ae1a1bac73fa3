package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"agentforge/internal/agent"
	"agentforge/pkg/llmprovider"
)

// Run executes the ReAct loop: Reason → Act → Observe.
// The caller's request is not modified.
func (o *Orchestrator) Run(ctx context.Context, req *llmprovider.Request) (Outcome, error) {
	work := *req
	work.Messages = append([]llmprovider.Message(nil), req.Messages...)
	if o.registry.Len() > 0 {
		work.Tools = append(append([]llmprovider.Tool(nil), req.Tools...), o.registry.ToFunctionDefinitions()...)
	}

	var out Outcome
	for step := 0; step < o.maxSteps; step++ {
		out.Steps = step + 1
		o.l.Debugf(ctx, LogPrefixRun+": "+LogMsgAgentStep, step+1, o.maxSteps)

		// 1. Reason: Ask LLM what to do
		resp, err := o.llm.GenerateContent(ctx, &work)
		if err != nil {
			return out, fmt.Errorf(ErrMsgAgentLLMError+": %w", step+1, err)
		}
		out.addUsage(resp.Usage)
		out.ProviderName, out.ModelName = resp.ProviderName, resp.ModelName

		calls := resp.Content.FunctionCalls()

		// 2. Check if LLM wants to call a tool
		if len(calls) == 0 {
			text := strings.TrimSpace(resp.Content.Text())
			if text == "" {
				return out, agent.ErrEmptyResponse
			}
			o.l.Debugf(ctx, LogPrefixRun+": "+LogMsgAgentFinished, step+1)
			out.Text = text
			return out, nil
		}

		// 3. Act: Execute every requested tool
		results := make([]llmprovider.Part, 0, len(calls))
		for _, call := range calls {
			out.ToolCalls++
			results = append(results, llmprovider.Part{
				FunctionResponse: &llmprovider.FunctionResponse{
					ID:       call.ID,
					Name:     call.Name,
					Response: o.execute(ctx, call),
				},
			})
		}

		// 4. Observe: Add tool results to conversation history
		work.Messages = append(work.Messages,
			llmprovider.Message{Role: llmprovider.RoleModel, Parts: resp.Content.Parts},
			llmprovider.Message{Role: llmprovider.RoleFunction, Parts: results},
		)
	}

	o.l.Warnf(ctx, LogPrefixRun+": "+LogMsgAgentMaxSteps, o.maxSteps)
	return out, fmt.Errorf("%w: %d", ErrMaxSteps, o.maxSteps)
}

// execute runs one tool call. Failures are reported to the model, not the caller.
func (o *Orchestrator) execute(ctx context.Context, call *llmprovider.FunctionCall) interface{} {
	o.l.Infof(ctx, LogPrefixRun+": "+LogMsgAgentCallingTool, call.Name, call.Args)

	tool, ok := o.registry.Get(call.Name)
	if !ok {
		o.l.Errorf(ctx, LogPrefixRun+": tool %s not found", call.Name)
		return map[string]string{"error": ErrMsgToolNotFound}
	}

	res, err := tool.Execute(ctx, call.Args)
	if err != nil {
		o.l.Errorf(ctx, LogPrefixRun+": "+LogMsgToolExecutionError, call.Name, err)
		return map[string]string{"error": err.Error()}
	}
	return res
}
