package core

// ChatRole is the author of a chat message.
type ChatRole string

const (
	RoleSystem ChatRole = "system"
	RoleUser   ChatRole = "user"
)

// ChatMessage is a single message sent to a chat-completion endpoint.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ChatRequest describes one chat-completion call.
type ChatRequest struct {
	Model       string
	Messages    []ChatMessage
	Temperature float64
	// MaxTokens of zero leaves the limit to the server.
	MaxTokens int
}
