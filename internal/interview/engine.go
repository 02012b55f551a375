// Package interview implements the mock-interview session engine: the
// question-segment state machine, the topic-advancement policy, and the
// parser that turns raw model output into typed results.
package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BoomMccloud/interviewer-pro-sub001/pkg/metrics"
)

// Store persists sessions. Save must be atomic per session and reject
// writes whose in-memory Version no longer matches the stored one.
type Store interface {
	Create(ctx context.Context, s *Session) error
	Load(ctx context.Context, id uuid.UUID) (*Session, error)
	Save(ctx context.Context, s *Session) error
}

// Store contract sentinels. Implementations wrap these so the engine can
// translate storage failures into its error taxonomy.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrVersionConflict = errors.New("session version conflict")
	ErrSegmentsSchema  = errors.New("unsupported segments schema")
)

// GenerateRequest carries the interview context every generation needs.
type GenerateRequest struct {
	PersonaID      string
	JobDescription string
	Resume         string
}

// Gateway produces raw tagged text from the model. Implementations do
// not retry; a failed call surfaces to the caller as GenerationFailed.
type Gateway interface {
	GenerateFirstQuestion(ctx context.Context, req GenerateRequest) (string, error)
	GenerateFollowUp(ctx context.Context, req GenerateRequest, history []ConversationTurn, userResponse string) (string, error)
	GenerateNewTopic(ctx context.Context, req GenerateRequest, coveredTopics []string) (string, error)
	GenerateBatch(ctx context.Context, req GenerateRequest, count int) (string, error)
}

// Locker serializes mutations per session. Acquire returns ErrLockBusy
// when another mutation is already in flight for the same session.
type Locker interface {
	Acquire(ctx context.Context, sessionID uuid.UUID) (release func(), err error)
}

// ErrLockBusy is returned by Locker.Acquire when the session is already
// being mutated by another request.
var ErrLockBusy = errors.New("session is locked by another request")

// StateCache holds read projections for GetActiveSessionState. All
// methods are best-effort; implementations log and swallow their own
// failures.
type StateCache interface {
	Get(ctx context.Context, sessionID uuid.UUID) (*SessionState, bool)
	Set(ctx context.Context, sessionID uuid.UUID, state *SessionState)
	Invalidate(ctx context.Context, sessionID uuid.UUID)
}

// Event types published on session lifecycle transitions.
const (
	EventSessionStarted   = "session.started"
	EventTopicAdvanced    = "session.topic_advanced"
	EventSessionCompleted = "session.completed"
)

// Event is a session lifecycle notification for downstream consumers
// (report and analytics services).
type Event struct {
	Type           string    `json:"type"`
	SessionID      uuid.UUID `json:"session_id"`
	UserID         uuid.UUID `json:"user_id"`
	QuestionNumber int       `json:"question_number"`
	TotalQuestions int       `json:"total_questions"`
	Reason         string    `json:"reason,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// EventSink receives lifecycle events. Publishing is best-effort: the
// engine logs failures and never fails an operation over one.
type EventSink interface {
	Publish(ctx context.Context, ev Event) error
}

// CreateParams describes a new interview session.
type CreateParams struct {
	PersonaID      string
	JobDescription string
	Resume         string
	QuestionBudget int
}

// StartResult is returned by StartSession.
type StartResult struct {
	SessionID      uuid.UUID          `json:"session_id"`
	Question       string             `json:"question"`
	KeyPoints      []string           `json:"key_points"`
	QuestionNumber int                `json:"question_number"`
	TotalQuestions int                `json:"total_questions"`
	Conversation   []ConversationTurn `json:"conversation"`
}

// SubmitResult is returned by SubmitResponse.
type SubmitResult struct {
	FollowUpQuestion      string             `json:"follow_up_question"`
	Analysis              string             `json:"analysis"`
	FeedbackPoints        []string           `json:"feedback_points"`
	Conversation          []ConversationTurn `json:"conversation"`
	CanProceedToNextTopic bool               `json:"can_proceed_to_next_topic"`
}

// TopicResult is returned by AdvanceTopic and MoveToNextPreGenerated.
// IsComplete means the interview just ended and no new topic exists.
type TopicResult struct {
	IsComplete     bool               `json:"is_complete"`
	Message        string             `json:"message,omitempty"`
	Question       string             `json:"question,omitempty"`
	KeyPoints      []string           `json:"key_points,omitempty"`
	QuestionNumber int                `json:"question_number"`
	TotalQuestions int                `json:"total_questions"`
	Conversation   []ConversationTurn `json:"conversation,omitempty"`
}

// SessionState is the read projection returned by GetActiveSessionState.
type SessionState struct {
	OwnerID               uuid.UUID          `json:"owner_id"`
	IsActive              bool               `json:"is_active"`
	Question              string             `json:"question"`
	KeyPoints             []string           `json:"key_points"`
	Conversation          []ConversationTurn `json:"conversation"`
	QuestionNumber        int                `json:"question_number"`
	TotalQuestions        int                `json:"total_questions"`
	CanProceedToNextTopic bool               `json:"can_proceed_to_next_topic"`
}

// SaveResult is returned by SaveSession.
type SaveResult struct {
	Saved     bool      `json:"saved"`
	Ended     bool      `json:"ended"`
	Timestamp time.Time `json:"timestamp"`
}

// Transcript is the finished-interview projection the report layer reads.
type Transcript struct {
	SessionID      uuid.UUID         `json:"session_id"`
	PersonaID      string            `json:"persona_id"`
	Segments       []QuestionSegment `json:"segments"`
	TotalQuestions int               `json:"total_questions"`
	EndTime        *time.Time        `json:"end_time"`
	CreatedAt      time.Time         `json:"created_at"`
}

// Options tunes engine behavior.
type Options struct {
	// QuestionBudget is the default number of topics per interview.
	QuestionBudget int
	// Pregenerate makes StartSession build the whole question batch up
	// front so later topic changes need no model call.
	Pregenerate bool
}

// Engine orchestrates the interview session lifecycle. It is stateless
// between calls; every operation is one read-modify-write cycle against
// the session record, serialized per session by the Locker.
type Engine struct {
	store       Store
	gateway     Gateway
	locker      Locker
	cache       StateCache
	events      EventSink
	log         *zap.SugaredLogger
	budget      int
	pregenerate bool

	now func() time.Time
}

// NewEngine wires an engine. locker, cache, and events may be nil; nil
// collaborators are replaced with no-ops.
func NewEngine(store Store, gateway Gateway, locker Locker, cache StateCache, events EventSink, log *zap.SugaredLogger, opts Options) *Engine {
	if locker == nil {
		locker = noopLocker{}
	}
	if cache == nil {
		cache = noopCache{}
	}
	if events == nil {
		events = noopSink{}
	}
	budget := opts.QuestionBudget
	if budget <= 0 {
		budget = DefaultQuestionBudget
	}
	return &Engine{
		store:       store,
		gateway:     gateway,
		locker:      locker,
		cache:       cache,
		events:      events,
		log:         log,
		budget:      budget,
		pregenerate: opts.Pregenerate,
		now:         time.Now,
	}
}

// CreateSession persists a fresh, unstarted session owned by userID.
func (e *Engine) CreateSession(ctx context.Context, userID uuid.UUID, params CreateParams) (*Session, error) {
	if strings.TrimSpace(params.JobDescription) == "" {
		return nil, errValidation("job description must not be empty")
	}
	budget := params.QuestionBudget
	if budget <= 0 {
		budget = e.budget
	}
	now := e.now()
	s := &Session{
		ID:               uuid.New(),
		UserID:           userID,
		PersonaID:        params.PersonaID,
		JobDescription:   params.JobDescription,
		Resume:           params.Resume,
		QuestionSegments: []QuestionSegment{},
		QuestionBudget:   budget,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := e.store.Create(ctx, s); err != nil {
		return nil, e.storeError("create session", err)
	}
	return s, nil
}

// StartSession populates the first question (or, in pregenerate mode,
// the whole batch) and makes segment 0 current. All segments are written
// in one update: either the session starts fully or not at all.
func (e *Engine) StartSession(ctx context.Context, userID, sessionID uuid.UUID) (*StartResult, error) {
	release, err := e.acquire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	s, err := e.loadOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if s.Ended() {
		return nil, errSessionEnded()
	}
	if s.Started() {
		return nil, errValidation("session has already been started")
	}

	req := e.generateRequest(s)
	now := e.now()

	if e.pregenerate {
		raw, err := e.generate(ctx, "batch", func() (string, error) {
			return e.gateway.GenerateBatch(ctx, req, s.QuestionBudget)
		})
		if err != nil {
			return nil, err
		}
		batch, err := ParseBatch(raw)
		if err != nil {
			return nil, errGeneration("parse question batch", err)
		}
		if len(batch.Questions) != s.QuestionBudget {
			return nil, errGeneration(
				fmt.Sprintf("batch has %d questions, want %d", len(batch.Questions), s.QuestionBudget), nil)
		}

		segments := make([]QuestionSegment, 0, len(batch.Questions))
		for i, q := range batch.Questions {
			qt := QuestionTypeForPosition(i)
			seg := QuestionSegment{
				QuestionID:     SegmentID(i+1, qt),
				QuestionNumber: i + 1,
				QuestionType:   qt,
				Question:       q.QuestionText,
				KeyPoints:      q.KeyPoints,
				Conversation:   []ConversationTurn{},
			}
			if i == 0 {
				seg.StartTime = &now
				seg.Conversation = []ConversationTurn{newQuestionTurn(q.QuestionText, now)}
			}
			segments = append(segments, seg)
		}
		s.QuestionSegments = segments
	} else {
		raw, err := e.generate(ctx, "first_question", func() (string, error) {
			return e.gateway.GenerateFirstQuestion(ctx, req)
		})
		if err != nil {
			return nil, err
		}
		first, err := ParseFirstQuestion(raw)
		if err != nil {
			return nil, errGeneration("parse first question", err)
		}
		s.QuestionSegments = []QuestionSegment{{
			QuestionID:     SegmentID(1, QuestionTypeOpening),
			QuestionNumber: 1,
			QuestionType:   QuestionTypeOpening,
			Question:       first.QuestionText,
			KeyPoints:      first.KeyPoints,
			StartTime:      &now,
			Conversation:   []ConversationTurn{newQuestionTurn(first.QuestionText, now)},
		}}
	}

	s.CurrentQuestionIndex = 0
	if err := e.save(ctx, s); err != nil {
		return nil, err
	}
	e.cache.Invalidate(ctx, s.ID)
	metrics.SessionsStarted.Inc()
	e.publish(ctx, Event{
		Type:           EventSessionStarted,
		SessionID:      s.ID,
		UserID:         s.UserID,
		QuestionNumber: 1,
		TotalQuestions: len(s.QuestionSegments),
		Timestamp:      now,
	})

	seg := s.ActiveSegment()
	return &StartResult{
		SessionID:      s.ID,
		Question:       seg.Question,
		KeyPoints:      seg.KeyPoints,
		QuestionNumber: seg.QuestionNumber,
		TotalQuestions: len(s.QuestionSegments),
		Conversation:   seg.Conversation,
	}, nil
}

// SubmitResponse records the user's answer on the active segment, asks
// the model for a follow-up, and records that too. The user's turn is
// written before the model call and kept even if generation fails, so a
// flaky model never loses an answer.
func (e *Engine) SubmitResponse(ctx context.Context, userID, sessionID uuid.UUID, userResponse string) (*SubmitResult, error) {
	userResponse = strings.TrimSpace(userResponse)
	if userResponse == "" {
		return nil, errValidation("response must not be empty")
	}

	release, err := e.acquire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	s, err := e.loadOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if s.Ended() {
		return nil, errSessionEnded()
	}
	seg := s.ActiveSegment()
	if seg == nil || !seg.Started() {
		return nil, errValidation("session has no active question")
	}

	history := append([]ConversationTurn(nil), seg.Conversation...)

	seg.Conversation = append(seg.Conversation, newResponseTurn(RoleUser, userResponse, e.now()))
	if err := e.save(ctx, s); err != nil {
		return nil, err
	}
	e.cache.Invalidate(ctx, s.ID)
	metrics.RecordTurn(string(RoleUser))

	req := e.generateRequest(s)
	raw, err := e.generate(ctx, "follow_up", func() (string, error) {
		return e.gateway.GenerateFollowUp(ctx, req, history, userResponse)
	})
	if err != nil {
		return nil, err
	}
	parsed, err := ParseFollowUp(raw)
	if err != nil {
		return nil, errGeneration("parse follow-up", err)
	}

	seg.Conversation = append(seg.Conversation, newResponseTurn(RoleAI, parsed.FollowUpQuestion, e.now()))
	if err := e.save(ctx, s); err != nil {
		return nil, err
	}
	e.cache.Invalidate(ctx, s.ID)
	metrics.RecordTurn(string(RoleAI))

	return &SubmitResult{
		FollowUpQuestion:      parsed.FollowUpQuestion,
		Analysis:              parsed.Analysis,
		FeedbackPoints:        parsed.FeedbackPoints,
		Conversation:          seg.Conversation,
		CanProceedToNextTopic: seg.CanProceedToNextTopic(),
	}, nil
}

// AdvanceTopic closes the active segment and opens a freshly generated
// one, or completes the interview when the question budget is spent.
// Used when questions are generated on demand rather than pre-batched.
func (e *Engine) AdvanceTopic(ctx context.Context, userID, sessionID uuid.UUID) (*TopicResult, error) {
	release, err := e.acquire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	s, err := e.loadOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if s.Ended() {
		return nil, errSessionEnded()
	}
	if !s.Started() {
		return nil, errValidation("session has not been started")
	}

	now := e.now()
	if len(s.QuestionSegments) >= s.QuestionBudget {
		return e.complete(ctx, s, now, "budget_exhausted")
	}

	req := e.generateRequest(s)
	raw, err := e.generate(ctx, "new_topic", func() (string, error) {
		return e.gateway.GenerateNewTopic(ctx, req, s.CoveredTopics())
	})
	if err != nil {
		return nil, err
	}
	parsed, err := ParseTopicalQuestion(raw)
	if err != nil {
		return nil, errGeneration("parse new topic", err)
	}

	if seg := s.ActiveSegment(); seg != nil && !seg.Closed() {
		seg.EndTime = &now
	}
	n := len(s.QuestionSegments) + 1
	s.QuestionSegments = append(s.QuestionSegments, QuestionSegment{
		QuestionID:     SegmentID(n, QuestionTypeTopical),
		QuestionNumber: n,
		QuestionType:   QuestionTypeTopical,
		Question:       parsed.QuestionText,
		KeyPoints:      parsed.KeyPoints,
		StartTime:      &now,
		Conversation:   []ConversationTurn{newQuestionTurn(parsed.QuestionText, now)},
	})
	s.CurrentQuestionIndex = len(s.QuestionSegments) - 1

	if err := e.save(ctx, s); err != nil {
		return nil, err
	}
	e.cache.Invalidate(ctx, s.ID)
	e.publish(ctx, Event{
		Type:           EventTopicAdvanced,
		SessionID:      s.ID,
		UserID:         s.UserID,
		QuestionNumber: n,
		TotalQuestions: len(s.QuestionSegments),
		Timestamp:      now,
	})

	seg := s.ActiveSegment()
	return &TopicResult{
		Question:       seg.Question,
		KeyPoints:      seg.KeyPoints,
		QuestionNumber: seg.QuestionNumber,
		TotalQuestions: len(s.QuestionSegments),
		Conversation:   seg.Conversation,
	}, nil
}

// MoveToNextPreGenerated advances to the next segment created up front
// by StartSession in batch mode. It never calls the model: its whole
// point is instant navigation through already-generated content.
func (e *Engine) MoveToNextPreGenerated(ctx context.Context, userID, sessionID uuid.UUID) (*TopicResult, error) {
	release, err := e.acquire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	s, err := e.loadOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if s.Ended() {
		return nil, errSessionEnded()
	}
	if !s.Started() {
		return nil, errValidation("session has not been started")
	}

	now := e.now()
	if s.CurrentQuestionIndex+1 >= len(s.QuestionSegments) {
		return e.complete(ctx, s, now, "exhausted")
	}

	if seg := s.ActiveSegment(); seg != nil && !seg.Closed() {
		seg.EndTime = &now
	}
	s.CurrentQuestionIndex++
	next := s.ActiveSegment()
	if next.StartTime == nil {
		next.StartTime = &now
	}
	if len(next.Conversation) == 0 {
		next.Conversation = []ConversationTurn{newQuestionTurn(next.Question, now)}
	}

	if err := e.save(ctx, s); err != nil {
		return nil, err
	}
	e.cache.Invalidate(ctx, s.ID)
	e.publish(ctx, Event{
		Type:           EventTopicAdvanced,
		SessionID:      s.ID,
		UserID:         s.UserID,
		QuestionNumber: next.QuestionNumber,
		TotalQuestions: len(s.QuestionSegments),
		Timestamp:      now,
	})

	return &TopicResult{
		Question:       next.Question,
		KeyPoints:      next.KeyPoints,
		QuestionNumber: next.QuestionNumber,
		TotalQuestions: len(s.QuestionSegments),
		Conversation:   next.Conversation,
	}, nil
}

// GetActiveSessionState returns the read projection of the session
// without mutating anything.
func (e *Engine) GetActiveSessionState(ctx context.Context, userID, sessionID uuid.UUID) (*SessionState, error) {
	if state, ok := e.cache.Get(ctx, sessionID); ok {
		if state.OwnerID != userID {
			return nil, errUnauthorized()
		}
		return state, nil
	}

	s, err := e.loadOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	state := projectState(s)
	e.cache.Set(ctx, sessionID, state)
	return state, nil
}

// SaveSession is the heartbeat/termination endpoint. With endSession it
// closes the interview unconditionally; otherwise it confirms the
// session exists and mutates nothing.
func (e *Engine) SaveSession(ctx context.Context, userID, sessionID uuid.UUID, endSession bool) (*SaveResult, error) {
	if !endSession {
		if _, err := e.loadOwned(ctx, userID, sessionID); err != nil {
			return nil, err
		}
		return &SaveResult{Saved: true, Ended: false, Timestamp: e.now()}, nil
	}

	release, err := e.acquire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	s, err := e.loadOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if s.Ended() {
		return nil, errSessionEnded()
	}

	now := e.now()
	if seg := s.ActiveSegment(); seg != nil && seg.Started() && !seg.Closed() {
		seg.EndTime = &now
	}
	s.EndTime = &now
	if err := e.save(ctx, s); err != nil {
		return nil, err
	}
	e.cache.Invalidate(ctx, s.ID)
	metrics.RecordSessionCompleted("user_ended")
	e.publish(ctx, Event{
		Type:           EventSessionCompleted,
		SessionID:      s.ID,
		UserID:         s.UserID,
		QuestionNumber: s.CurrentQuestionIndex + 1,
		TotalQuestions: len(s.QuestionSegments),
		Reason:         "user_ended",
		Timestamp:      now,
	})
	return &SaveResult{Saved: true, Ended: true, Timestamp: now}, nil
}

// GetTranscript returns the full segment history. The report layer
// consumes this once the interview is over, but reading an in-progress
// session is allowed.
func (e *Engine) GetTranscript(ctx context.Context, userID, sessionID uuid.UUID) (*Transcript, error) {
	s, err := e.loadOwned(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	return &Transcript{
		SessionID:      s.ID,
		PersonaID:      s.PersonaID,
		Segments:       s.QuestionSegments,
		TotalQuestions: len(s.QuestionSegments),
		EndTime:        s.EndTime,
		CreatedAt:      s.CreatedAt,
	}, nil
}

// complete closes the active segment and the session in one write.
func (e *Engine) complete(ctx context.Context, s *Session, now time.Time, reason string) (*TopicResult, error) {
	if seg := s.ActiveSegment(); seg != nil && seg.Started() && !seg.Closed() {
		seg.EndTime = &now
	}
	s.EndTime = &now
	if err := e.save(ctx, s); err != nil {
		return nil, err
	}
	e.cache.Invalidate(ctx, s.ID)
	metrics.RecordSessionCompleted(reason)
	e.publish(ctx, Event{
		Type:           EventSessionCompleted,
		SessionID:      s.ID,
		UserID:         s.UserID,
		QuestionNumber: s.CurrentQuestionIndex + 1,
		TotalQuestions: len(s.QuestionSegments),
		Reason:         reason,
		Timestamp:      now,
	})
	return &TopicResult{
		IsComplete:     true,
		Message:        fmt.Sprintf("Interview complete. You covered %d questions.", len(s.QuestionSegments)),
		TotalQuestions: len(s.QuestionSegments),
		QuestionNumber: s.CurrentQuestionIndex + 1,
	}, nil
}

func projectState(s *Session) *SessionState {
	state := &SessionState{
		OwnerID:        s.UserID,
		IsActive:       !s.Ended(),
		TotalQuestions: len(s.QuestionSegments),
	}
	if seg := s.ActiveSegment(); seg != nil {
		state.Question = seg.Question
		state.KeyPoints = seg.KeyPoints
		state.Conversation = seg.Conversation
		state.QuestionNumber = seg.QuestionNumber
		state.CanProceedToNextTopic = seg.CanProceedToNextTopic()
	}
	return state
}

func (e *Engine) generateRequest(s *Session) GenerateRequest {
	return GenerateRequest{
		PersonaID:      s.PersonaID,
		JobDescription: s.JobDescription,
		Resume:         s.Resume,
	}
}

// generate wraps one gateway call with uniform error translation.
func (e *Engine) generate(ctx context.Context, operation string, call func() (string, error)) (string, error) {
	raw, err := call()
	if err != nil {
		return "", errGeneration("generate "+operation, err)
	}
	return raw, nil
}

func (e *Engine) acquire(ctx context.Context, sessionID uuid.UUID) (func(), error) {
	release, err := e.locker.Acquire(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrLockBusy) {
			return nil, errConcurrent("another request is mutating this session", err)
		}
		return nil, errConcurrent("acquire session lock", err)
	}
	return release, nil
}

func (e *Engine) loadOwned(ctx context.Context, userID, sessionID uuid.UUID) (*Session, error) {
	s, err := e.store.Load(ctx, sessionID)
	if err != nil {
		return nil, e.storeError("load session", err)
	}
	if s.UserID != userID {
		return nil, errUnauthorized()
	}
	return s, nil
}

func (e *Engine) save(ctx context.Context, s *Session) error {
	s.UpdatedAt = e.now()
	if err := e.store.Save(ctx, s); err != nil {
		return e.storeError("save session", err)
	}
	return nil
}

func (e *Engine) storeError(op string, err error) error {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return &Error{Kind: KindNotFound, Message: "session not found", Err: err}
	case errors.Is(err, ErrVersionConflict):
		return errConcurrent(op, err)
	case errors.Is(err, ErrSegmentsSchema):
		return &Error{Kind: KindSchema, Message: op, Err: err}
	default:
		// storage outage or driver failure: not part of the taxonomy,
		// surfaces to the transport layer as a plain 500
		return fmt.Errorf("%s: %w", op, err)
	}
}

// publish sends a lifecycle event; failures are logged, never returned.
func (e *Engine) publish(ctx context.Context, ev Event) {
	if err := e.events.Publish(ctx, ev); err != nil && e.log != nil {
		e.log.Errorw("publish session event", "type", ev.Type, "session_id", ev.SessionID, "err", err)
	}
}

type noopLocker struct{}

func (noopLocker) Acquire(context.Context, uuid.UUID) (func(), error) { return func() {}, nil }

type noopCache struct{}

func (noopCache) Get(context.Context, uuid.UUID) (*SessionState, bool) { return nil, false }
func (noopCache) Set(context.Context, uuid.UUID, *SessionState)        {}
func (noopCache) Invalidate(context.Context, uuid.UUID)                {}

type noopSink struct{}

func (noopSink) Publish(context.Context, Event) error { return nil }
