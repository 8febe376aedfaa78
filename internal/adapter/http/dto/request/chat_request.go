package request

import "strings"

// ChatRequest accepts both `message` and the older widget's `userMessage`.
type ChatRequest struct {
	Message     string `json:"message"`
	UserMessage string `json:"userMessage"`
}

func (r ChatRequest) ResolveMessage() string {
	if v := strings.TrimSpace(r.Message); v != "" {
		return v
	}
	return strings.TrimSpace(r.UserMessage)
}
