package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/BoomMccloud/interviewer-pro-sub001/internal/interview"
	"github.com/BoomMccloud/interviewer-pro-sub001/internal/persona"
)

type stubProvider struct {
	raw string
	err error

	lastSystem   string
	lastMessages []Message
}

func (s *stubProvider) Complete(_ context.Context, system string, messages []Message) (string, error) {
	s.lastSystem = system
	s.lastMessages = messages
	return s.raw, s.err
}

func (s *stubProvider) Name() string { return "stub" }

func newTestGateway(t *testing.T, p *stubProvider) *Gateway {
	t.Helper()
	personas, err := persona.NewRegistry("", nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return NewGateway(p, personas, nil)
}

func TestGateway_ForwardsRawText(t *testing.T) {
	p := &stubProvider{raw: "<QUESTION>Q</QUESTION>"}
	g := newTestGateway(t, p)

	got, err := g.GenerateFirstQuestion(context.Background(), interview.GenerateRequest{
		JobDescription: "Platform engineer",
	})
	if err != nil {
		t.Fatalf("GenerateFirstQuestion: %v", err)
	}
	if got != "<QUESTION>Q</QUESTION>" {
		t.Errorf("raw = %q, want the provider output unchanged", got)
	}
	if !strings.Contains(p.lastSystem, "Platform engineer") {
		t.Error("system prompt missing the job description")
	}
	if len(p.lastMessages) != 1 || p.lastMessages[0].Role != roleUser {
		t.Errorf("messages = %+v, want one user message", p.lastMessages)
	}
}

func TestGateway_ProviderFailureWithNilLogger(t *testing.T) {
	p := &stubProvider{err: errors.New("model timeout")}
	g := newTestGateway(t, p)

	_, err := g.GenerateFollowUp(context.Background(), interview.GenerateRequest{
		JobDescription: "SRE",
	}, nil, "an answer")
	if err == nil {
		t.Fatal("GenerateFollowUp = nil error, want the provider error")
	}
	if !strings.Contains(err.Error(), "model timeout") {
		t.Errorf("err = %v, want the provider error surfaced unchanged", err)
	}
}
