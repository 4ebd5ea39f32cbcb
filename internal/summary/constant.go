package summary

// Log prefixes
const (
	LogPrefixSummarize = "internal.summary.Summarize"
)

// PromptSummarizeSystem is the system instruction; the topic is
// interpolated into it.
const PromptSummarizeSystem = "Summarize web results about %s in 3 concise points"

// Summarization request parameters
const (
	SummarizeTemperature = 0.3
	SummarizeMaxTokens   = 300
)
