package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustack/coachhub/internal/app/models/dto"
	"github.com/edustack/coachhub/internal/pkg/apperrors"
)

type stubGenerator struct {
	gotPrompt string
	reply     string
	err       error
}

func (g *stubGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.gotPrompt = prompt
	return g.reply, g.err
}

func TestAskStitchesHistoryIntoPrompt(t *testing.T) {
	gen := &stubGenerator{reply: "Photosynthesis is how plants make food."}
	svc := NewChatService(gen)

	_, err := svc.Ask(context.Background(), &dto.ChatRequest{
		Message: "And why is it green?",
		History: []dto.ChatTurn{
			{Role: "user", Content: "What is photosynthesis?"},
			{Role: "assistant", Content: "It is how plants make food from sunlight."},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, gen.gotPrompt, "Student: What is photosynthesis?")
	assert.Contains(t, gen.gotPrompt, "Tutor: It is how plants make food from sunlight.")
	assert.True(t, strings.HasSuffix(gen.gotPrompt, "Student: And why is it green?\nTutor:"))

	// history precedes the new question
	assert.Less(t,
		strings.Index(gen.gotPrompt, "What is photosynthesis?"),
		strings.Index(gen.gotPrompt, "And why is it green?"))
}

func TestAskBoundsHistoryWindow(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	svc := NewChatService(gen)

	history := make([]dto.ChatTurn, 0, 16)
	for i := 0; i < 16; i++ {
		history = append(history, dto.ChatTurn{Role: "user", Content: "turn" + string(rune('A'+i))})
	}

	_, err := svc.Ask(context.Background(), &dto.ChatRequest{Message: "final", History: history})
	require.NoError(t, err)

	// oldest turns fall out of the window, the most recent stay
	assert.NotContains(t, gen.gotPrompt, "turnA")
	assert.NotContains(t, gen.gotPrompt, "turnF")
	assert.Contains(t, gen.gotPrompt, "turnG")
	assert.Contains(t, gen.gotPrompt, "turnP")
}

func TestAskWrapsGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("boom")}
	svc := NewChatService(gen)

	_, err := svc.Ask(context.Background(), &dto.ChatRequest{Message: "hello"})
	assert.ErrorIs(t, err, apperrors.ErrExternalService)
}

func TestInsertSectionHeadersAddsStructure(t *testing.T) {
	in := "Newton's first law says an object stays at rest.\n\n" +
		"For example, a book on a table stays put until you push it.\n\n" +
		"In summary, bodies resist changes to their motion."
	got := insertSectionHeaders(in)

	assert.Equal(t,
		"Newton's first law says an object stays at rest.\n\n"+
			"### Example\nFor example, a book on a table stays put until you push it.\n\n"+
			"### Summary\nIn summary, bodies resist changes to their motion.",
		got)
}

func TestInsertSectionHeadersInsertsEachHeaderOnce(t *testing.T) {
	in := "Intro.\n\nAn example here.\n\nAnother example there."
	got := insertSectionHeaders(in)

	assert.Equal(t, 1, strings.Count(got, "### Example"))
	assert.Contains(t, got, "### Example\nAn example here.")
}

func TestInsertSectionHeadersKeepsStructuredRepliesUntouched(t *testing.T) {
	in := "## Newton's First Law\n\nFor example, a book on a table."
	assert.Equal(t, in, insertSectionHeaders(in))
}

func TestInsertSectionHeadersLeavesPlainRepliesAlone(t *testing.T) {
	in := "Just a short answer with no cue words."
	assert.Equal(t, in, insertSectionHeaders(in))
}
