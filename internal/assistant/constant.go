package assistant

// Log prefixes
const (
	LogPrefixRespond = "internal.assistant.Respond"
)

// User-facing messages
const (
	MsgLLMErrorFmt   = "LLM Error: %v"
	MsgUnexpectedFmt = "Unexpected error - %v"
)
