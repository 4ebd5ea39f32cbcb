package dispatcher

// Log prefixes
const (
	LogPrefixRoute = "internal.dispatcher.Route"
)

// User-facing messages
const (
	MsgNoResults       = "No relevant results found."
	MsgUnknownAgentFmt = "Unknown agent type: %s"
	MsgFoundAboutFmt   = "Here's what I found about %s:"
)
