package usecase

import (
	"context"
	"errors"
	"fmt"
	"granite_estimator/internal/config"
	"granite_estimator/internal/usecase/interfaces"
	"log"
	"strings"
)

const maxChatMessageLen = 2000

var (
	ErrEmptyChatMessage     = errors.New("message is required")
	ErrChatMessageTooLong   = errors.New("message is too long")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)

// IAssistantUseCase answers customer questions as the shop's design assistant.
type IAssistantUseCase interface {
	Chat(ctx context.Context, message string) (string, error)
	BusinessInfo() config.BusinessInfo
}

type AssistantUseCase struct {
	assistant    interfaces.IChatAssistant
	business     config.BusinessInfo
	instructions string
}

var _ IAssistantUseCase = (*AssistantUseCase)(nil)

func NewAssistantUseCase(assistant interfaces.IChatAssistant, business config.BusinessInfo) *AssistantUseCase {
	return &AssistantUseCase{
		assistant:    assistant,
		business:     business,
		instructions: SystemInstructions(business),
	}
}

// SystemInstructions is the persona prompt sent with every chat message.
func SystemInstructions(b config.BusinessInfo) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are CARI, the %s Design Assistant.\n", b.Name)
	sb.WriteString("You must:\n")
	sb.WriteString("- Greet customers politely and remain in character as \"CARI.\"\n")
	sb.WriteString("- Provide countertop estimates (if asked) using a 35% markup and a 20% waste factor.\n")
	sb.WriteString("- Point customers to the estimate form for exact pricing.\n")
	fmt.Fprintf(&sb, "- %s Info:\n", b.Name)
	fmt.Fprintf(&sb, "  Name: %s\n", b.Name)
	fmt.Fprintf(&sb, "  Address: %s\n", b.Address)
	fmt.Fprintf(&sb, "  Phone: %s\n", b.Phone)
	fmt.Fprintf(&sb, "  Email: %s\n", b.Email)
	fmt.Fprintf(&sb, "  Google: %s\n", b.GoogleBusiness)
	return sb.String()
}

func (u *AssistantUseCase) Chat(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyChatMessage
	}
	if len(message) > maxChatMessageLen {
		return "", ErrChatMessageTooLong
	}
	if u.assistant == nil {
		return "", ErrAssistantUnavailable
	}

	reply, err := u.assistant.Reply(ctx, u.instructions, message)
	if err != nil {
		log.Printf("[assistant][usecase] reply failed err=%v", err)
		return "", fmt.Errorf("%w: %w", ErrAssistantUnavailable, err)
	}
	return reply, nil
}

func (u *AssistantUseCase) BusinessInfo() config.BusinessInfo {
	return u.business
}
