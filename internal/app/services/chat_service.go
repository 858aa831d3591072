package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/edustack/coachhub/internal/app/models/dto"
	"github.com/edustack/coachhub/internal/pkg/apperrors"
	"github.com/edustack/coachhub/internal/pkg/genai"
	"github.com/edustack/coachhub/internal/pkg/logger"
)

// maxHistoryTurns bounds the conversation window included in the prompt
const maxHistoryTurns = 10

const tutorSystemPrompt = `You are StudyBuddy, a friendly AI tutor for Indian school and competitive exam students (classes 6-12, JEE, NEET, boards).
Explain concepts step by step in simple language. Use short paragraphs and examples an Indian student would recognise.
If a question is not about studies, gently steer the student back to their studies.`

// ChatService defines the interface for AI tutoring conversations
type ChatService interface {
	Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	generator genai.TextGenerator
}

// NewChatService creates a new ChatService
func NewChatService(generator genai.TextGenerator) ChatService {
	return &chatService{generator: generator}
}

// Ask sends one tutoring question, with the trailing window of prior turns
// stitched into the prompt, and post-processes the reply for display.
func (s *chatService) Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	prompt := buildTutorPrompt(req.Message, req.History)

	reply, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		logger.Error().Err(err).Msg("Tutor generation failed")
		return nil, apperrors.NewCustomError(apperrors.ErrExternalService, "the tutor is unavailable right now, please try again")
	}

	return &dto.ChatResponse{Reply: insertSectionHeaders(reply)}, nil
}

// buildTutorPrompt stitches the system prompt, the bounded history window
// and the new question into one text prompt.
func buildTutorPrompt(message string, history []dto.ChatTurn) string {
	var b strings.Builder
	b.WriteString(tutorSystemPrompt)
	b.WriteString("\n\n")

	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	for _, turn := range history {
		speaker := "Student"
		if turn.Role == "assistant" {
			speaker = "Tutor"
		}
		fmt.Fprintf(&b, "%s: %s\n", speaker, strings.TrimSpace(turn.Content))
	}

	fmt.Fprintf(&b, "Student: %s\nTutor:", strings.TrimSpace(message))
	return b.String()
}

// sectionMarkers maps a substring cue in a paragraph to the header inserted
// above the first paragraph mentioning it.
var sectionMarkers = []struct {
	cue    string
	header string
}{
	{"example", "### Example"},
	{"practice", "### Practice"},
	{"summary", "### Summary"},
}

// insertSectionHeaders adds light structure to an unstructured reply. When
// the model already emitted markdown headers the reply passes through
// untouched; otherwise the first paragraph mentioning an example, practice
// work or a summary gets a matching section header above it.
func insertSectionHeaders(reply string) string {
	if strings.Contains(reply, "#") {
		return reply
	}

	paragraphs := strings.Split(reply, "\n\n")
	inserted := map[string]bool{}
	for i, para := range paragraphs {
		lower := strings.ToLower(para)
		for _, m := range sectionMarkers {
			if inserted[m.header] || !strings.Contains(lower, m.cue) {
				continue
			}
			// The opening paragraph stays a plain introduction
			if i == 0 {
				continue
			}
			paragraphs[i] = m.header + "\n" + para
			inserted[m.header] = true
			break
		}
	}
	return strings.Join(paragraphs, "\n\n")
}
