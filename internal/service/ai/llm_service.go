// Package ai wraps the chat-model collaborator used for open-ended follow-up
// once an assessment is complete. The conversation core treats it as an
// optional dependency: any failure here degrades to a canned reply.
package ai

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/sulnaq/snti/backend/internal/config"
	"github.com/sulnaq/snti/backend/internal/model/assessment"
)

// Service generates personalized follow-up replies through a prompt -> chat
// model chain.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
	chain     compose.Runnable[map[string]any, *schema.Message]
}

// NewService creates the chat model from config and compiles the chain.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile follow-up chain: %w", err)
	}

	return &Service{
		chatModel: chatModel,
		cfg:       cfg,
		chain:     runnable,
	}, nil
}

// FollowUp answers a post-assessment message in the voice of an empathetic
// psychology assistant grounded in the participant's type profile. The
// history slice is expected to be pre-trimmed by the caller.
func (s *Service) FollowUp(ctx context.Context, profile assessment.TypeProfile, userName string, history []assessment.HistoryEntry, message string) (string, error) {
	input := map[string]any{
		"system":  buildSystemPrompt(profile, userName),
		"history": buildHistoryMessages(history),
		"query":   message,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run follow-up chain: %w", err)
	}

	log.Printf("[ai] generated follow-up for type=%s, length=%d", profile.Code, len(response.Content))
	return response.Content, nil
}

// GetChatModel returns the underlying chat model.
func (s *Service) GetChatModel() model.ChatModel {
	return s.chatModel
}

// buildSystemPrompt frames the model as a supportive assistant who knows the
// participant's assessment outcome.
func buildSystemPrompt(profile assessment.TypeProfile, userName string) string {
	if userName == "" {
		userName = "the participant"
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "You are a warm, supportive psychology assistant talking with %s, who just completed a personality assessment.\n", userName)
	fmt.Fprintf(&builder, "Their result is %s (%s).\n\n", profile.Code, profile.Name)
	fmt.Fprintf(&builder, "About this type: %s\n", profile.Summary)
	fmt.Fprintf(&builder, "Strengths: %s\n", strings.Join(profile.Strengths, ", "))
	fmt.Fprintf(&builder, "Growth areas: %s\n\n", strings.Join(profile.GrowthAreas, ", "))
	builder.WriteString("Address them by name, relate your guidance to their type where it helps, and keep replies concrete and encouraging. ")
	builder.WriteString("You are not a therapist: if they describe serious distress, gently point them toward a licensed professional or a local helpline.")
	return builder.String()
}

func buildHistoryMessages(history []assessment.HistoryEntry) []*schema.Message {
	if len(history) == 0 {
		return nil
	}

	messages := make([]*schema.Message, 0, len(history))
	for _, entry := range history {
		switch entry.Sender {
		case "user":
			messages = append(messages, schema.UserMessage(entry.Text))
		case "assistant":
			messages = append(messages, schema.AssistantMessage(entry.Text, nil))
		}
	}
	return messages
}
