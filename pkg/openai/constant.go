package openai

import "time"

const (
	// DefaultModel is the default OpenAI chat model
	DefaultModel = "gpt-4o-mini"

	// DefaultBaseURL is the OpenAI API endpoint
	DefaultBaseURL = "https://api.openai.com/v1"

	// QwenBaseURL is Alibaba DashScope's OpenAI-compatible endpoint
	QwenBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	// DeepSeekBaseURL is DeepSeek's OpenAI-compatible endpoint
	DeepSeekBaseURL = "https://api.deepseek.com/v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second
)
