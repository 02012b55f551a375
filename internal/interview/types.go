package interview

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role identifies who authored a conversation turn.
type Role string

const (
	RoleAI   Role = "ai"
	RoleUser Role = "user"
)

// MessageType distinguishes the topic prompt that opens a segment from
// the back-and-forth that follows it.
type MessageType string

const (
	MessageTypeQuestion MessageType = "question"
	MessageTypeResponse MessageType = "response"
)

// QuestionType categorizes a topic within the interview.
type QuestionType string

const (
	QuestionTypeOpening    QuestionType = "opening"
	QuestionTypeTechnical  QuestionType = "technical"
	QuestionTypeBehavioral QuestionType = "behavioral"
	QuestionTypeFollowup   QuestionType = "followup"
	QuestionTypeTopical    QuestionType = "topical"
)

// minTurnsBeforeTopicChange is the conversation length an active segment
// must reach before the UI is told the candidate may move on. Two full
// exchanges (question, answer, follow-up, answer) stops topic-hopping
// after a single shallow answer.
const minTurnsBeforeTopicChange = 4

// DefaultQuestionBudget is the number of topics an interview covers when
// the caller does not ask for a different budget.
const DefaultQuestionBudget = 3

// SegmentsSchemaVersion tags the persisted segments payload so decode
// failures surface as schema errors instead of silently dropped fields.
const SegmentsSchemaVersion = 1

// ConversationTurn is one message within a question segment.
type ConversationTurn struct {
	Role        Role        `json:"role"`
	Content     string      `json:"content"`
	Timestamp   time.Time   `json:"timestamp"`
	MessageType MessageType `json:"message_type"`
}

// QuestionSegment is one topic's life span: the question that opened it
// plus every turn exchanged on it.
type QuestionSegment struct {
	QuestionID     string             `json:"question_id"`
	QuestionNumber int                `json:"question_number"`
	QuestionType   QuestionType       `json:"question_type"`
	Question       string             `json:"question"`
	KeyPoints      []string           `json:"key_points"`
	StartTime      *time.Time         `json:"start_time"`
	EndTime        *time.Time         `json:"end_time"`
	Conversation   []ConversationTurn `json:"conversation"`
}

// Started reports whether the segment has become current at least once.
func (s *QuestionSegment) Started() bool { return s.StartTime != nil }

// Closed reports whether the segment will receive no further turns.
func (s *QuestionSegment) Closed() bool { return s.EndTime != nil }

// CanProceedToNextTopic reports whether enough has been said on this
// segment for the interview to move on.
func (s *QuestionSegment) CanProceedToNextTopic() bool {
	return len(s.Conversation) >= minTurnsBeforeTopicChange
}

// SegmentID builds the stable identifier for question number n of the
// given type, e.g. "q2_technical".
func SegmentID(n int, qt QuestionType) string {
	return fmt.Sprintf("q%d_%s", n, qt)
}

// batchQuestionTypes is the type rotation applied to pre-generated
// batches: the interview opens soft, then alternates technical and
// behavioral topics.
var batchQuestionTypes = []QuestionType{
	QuestionTypeOpening,
	QuestionTypeTechnical,
	QuestionTypeBehavioral,
}

// QuestionTypeForPosition returns the type assigned to the segment at
// 0-based position i in a pre-generated batch.
func QuestionTypeForPosition(i int) QuestionType {
	if i == 0 {
		return QuestionTypeOpening
	}
	// positions past the opener alternate technical/behavioral
	return batchQuestionTypes[1+(i-1)%2]
}

// Session is the interview record: the arena of question segments plus
// the index of the one currently active.
type Session struct {
	ID                   uuid.UUID         `json:"id"`
	UserID               uuid.UUID         `json:"user_id"`
	PersonaID            string            `json:"persona_id"`
	JobDescription       string            `json:"job_description"`
	Resume               string            `json:"resume"`
	QuestionSegments     []QuestionSegment `json:"question_segments"`
	CurrentQuestionIndex int               `json:"current_question_index"`
	QuestionBudget       int               `json:"question_budget"`
	EndTime              *time.Time        `json:"end_time"`
	Version              int64             `json:"-"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

// Ended reports whether the session is terminated, either explicitly or
// by exhausting its question budget.
func (s *Session) Ended() bool { return s.EndTime != nil }

// Started reports whether the first engine call has populated segments.
func (s *Session) Started() bool { return len(s.QuestionSegments) > 0 }

// ActiveSegment returns the segment at CurrentQuestionIndex, or nil if
// the session has no segments or the index is out of range.
func (s *Session) ActiveSegment() *QuestionSegment {
	if s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex >= len(s.QuestionSegments) {
		return nil
	}
	return &s.QuestionSegments[s.CurrentQuestionIndex]
}

// CoveredTopics lists the question text of every segment so far, used to
// keep freshly generated topics from repeating ground already covered.
func (s *Session) CoveredTopics() []string {
	topics := make([]string, 0, len(s.QuestionSegments))
	for _, seg := range s.QuestionSegments {
		topics = append(topics, seg.Question)
	}
	return topics
}

// Validate checks the structural invariants every stored session must
// satisfy. A violation means the record was corrupted outside the engine.
func (s *Session) Validate() error {
	active := 0
	for i := range s.QuestionSegments {
		seg := &s.QuestionSegments[i]
		if seg.QuestionNumber != i+1 {
			return fmt.Errorf("segment %d has question number %d, want %d", i, seg.QuestionNumber, i+1)
		}
		if seg.Started() && !seg.Closed() {
			active++
		}
		if seg.Started() {
			if len(seg.Conversation) == 0 {
				return fmt.Errorf("segment %d started with empty conversation", i)
			}
			if seg.Conversation[0].MessageType != MessageTypeQuestion {
				return fmt.Errorf("segment %d conversation does not open with a question", i)
			}
		}
	}
	if active > 1 {
		return fmt.Errorf("%d segments active, want at most 1", active)
	}
	if len(s.QuestionSegments) > 0 {
		if s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex >= len(s.QuestionSegments) {
			return fmt.Errorf("current question index %d out of range [0,%d)", s.CurrentQuestionIndex, len(s.QuestionSegments))
		}
	}
	return nil
}

func newQuestionTurn(question string, at time.Time) ConversationTurn {
	return ConversationTurn{
		Role:        RoleAI,
		Content:     question,
		Timestamp:   at,
		MessageType: MessageTypeQuestion,
	}
}

func newResponseTurn(role Role, content string, at time.Time) ConversationTurn {
	return ConversationTurn{
		Role:        role,
		Content:     content,
		Timestamp:   at,
		MessageType: MessageTypeResponse,
	}
}
