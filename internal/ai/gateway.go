package ai

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BoomMccloud/interviewer-pro-sub001/internal/interview"
	"github.com/BoomMccloud/interviewer-pro-sub001/internal/persona"
	"github.com/BoomMccloud/interviewer-pro-sub001/pkg/metrics"
)

// Gateway satisfies interview.Gateway on top of a chat-completion
// provider. It builds prompts, forwards raw model text unchanged, and
// never retries: a failed generation surfaces to the engine as-is.
type Gateway struct {
	provider Provider
	personas *persona.Registry
	log      *zap.SugaredLogger
}

// NewGateway wires a gateway over the given provider.
func NewGateway(provider Provider, personas *persona.Registry, log *zap.SugaredLogger) *Gateway {
	return &Gateway{provider: provider, personas: personas, log: log}
}

// GenerateFirstQuestion asks for the interview's opening question.
func (g *Gateway) GenerateFirstQuestion(ctx context.Context, req interview.GenerateRequest) (string, error) {
	return g.complete(ctx, "first_question", req, firstQuestionPrompt())
}

// GenerateFollowUp asks for an assessment of the user's answer plus a
// follow-up question on the same topic.
func (g *Gateway) GenerateFollowUp(ctx context.Context, req interview.GenerateRequest, history []interview.ConversationTurn, userResponse string) (string, error) {
	return g.complete(ctx, "follow_up", req, followUpPrompt(history, userResponse))
}

// GenerateNewTopic asks for a fresh question avoiding covered topics.
func (g *Gateway) GenerateNewTopic(ctx context.Context, req interview.GenerateRequest, coveredTopics []string) (string, error) {
	return g.complete(ctx, "new_topic", req, newTopicPrompt(coveredTopics))
}

// GenerateBatch asks for count independent question blocks up front.
func (g *Gateway) GenerateBatch(ctx context.Context, req interview.GenerateRequest, count int) (string, error) {
	return g.complete(ctx, "batch", req, batchPrompt(count))
}

func (g *Gateway) complete(ctx context.Context, operation string, req interview.GenerateRequest, prompt string) (string, error) {
	p := g.personas.Get(req.PersonaID)
	system := systemPrompt(p, req)

	start := time.Now()
	raw, err := g.provider.Complete(ctx, system, []Message{{Role: roleUser, Content: prompt}})
	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.RecordGeneration(operation, g.provider.Name(), status, time.Since(start).Seconds())

	if err != nil {
		if g.log != nil {
			g.log.Errorw("ai generation failed",
				"operation", operation, "provider", g.provider.Name(), "persona", p.ID, "err", err)
		}
		return "", err
	}
	return raw, nil
}
