package interview

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSegmentID(t *testing.T) {
	tests := []struct {
		n    int
		qt   QuestionType
		want string
	}{
		{1, QuestionTypeOpening, "q1_opening"},
		{2, QuestionTypeTechnical, "q2_technical"},
		{5, QuestionTypeTopical, "q5_topical"},
	}
	for _, tt := range tests {
		if got := SegmentID(tt.n, tt.qt); got != tt.want {
			t.Errorf("SegmentID(%d, %s) = %q, want %q", tt.n, tt.qt, got, tt.want)
		}
	}
}

func TestQuestionTypeForPosition(t *testing.T) {
	want := []QuestionType{
		QuestionTypeOpening,
		QuestionTypeTechnical,
		QuestionTypeBehavioral,
		QuestionTypeTechnical,
		QuestionTypeBehavioral,
	}
	for i, w := range want {
		if got := QuestionTypeForPosition(i); got != w {
			t.Errorf("QuestionTypeForPosition(%d) = %s, want %s", i, got, w)
		}
	}
}

func TestCanProceedToNextTopic_Threshold(t *testing.T) {
	now := time.Now()
	seg := QuestionSegment{StartTime: &now}

	// below the threshold for any mix of content
	for i := 0; i < minTurnsBeforeTopicChange; i++ {
		if seg.CanProceedToNextTopic() {
			t.Fatalf("CanProceedToNextTopic = true at %d turns, want false", len(seg.Conversation))
		}
		role := RoleUser
		if i%2 == 0 {
			role = RoleAI
		}
		seg.Conversation = append(seg.Conversation, newResponseTurn(role, "x", now))
	}

	// at and above the threshold
	if !seg.CanProceedToNextTopic() {
		t.Errorf("CanProceedToNextTopic = false at %d turns, want true", len(seg.Conversation))
	}
	seg.Conversation = append(seg.Conversation, newResponseTurn(RoleUser, "y", now))
	if !seg.CanProceedToNextTopic() {
		t.Errorf("CanProceedToNextTopic = false at %d turns, want true", len(seg.Conversation))
	}
}

func validTestSession() *Session {
	now := time.Now()
	return &Session{
		ID:     uuid.New(),
		UserID: uuid.New(),
		QuestionSegments: []QuestionSegment{
			{
				QuestionID:     "q1_opening",
				QuestionNumber: 1,
				QuestionType:   QuestionTypeOpening,
				Question:       "Q1",
				StartTime:      &now,
				EndTime:        &now,
				Conversation:   []ConversationTurn{newQuestionTurn("Q1", now)},
			},
			{
				QuestionID:     "q2_technical",
				QuestionNumber: 2,
				QuestionType:   QuestionTypeTechnical,
				Question:       "Q2",
				StartTime:      &now,
				Conversation:   []ConversationTurn{newQuestionTurn("Q2", now)},
			},
			{
				QuestionID:     "q3_behavioral",
				QuestionNumber: 3,
				QuestionType:   QuestionTypeBehavioral,
				Question:       "Q3",
			},
		},
		CurrentQuestionIndex: 1,
		QuestionBudget:       3,
	}
}

func TestSessionValidate(t *testing.T) {
	s := validTestSession()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestSessionValidate_QuestionNumbers(t *testing.T) {
	s := validTestSession()
	s.QuestionSegments[1].QuestionNumber = 7
	if err := s.Validate(); err == nil {
		t.Error("Validate() = nil, want question-number error")
	}
}

func TestSessionValidate_SingleActiveSegment(t *testing.T) {
	s := validTestSession()
	// reopen segment 0 so two started segments have no end time
	s.QuestionSegments[0].EndTime = nil
	if err := s.Validate(); err == nil {
		t.Error("Validate() = nil, want single-active-segment error")
	}
}

func TestSessionValidate_StartedSegmentNeedsSeededQuestion(t *testing.T) {
	s := validTestSession()
	s.QuestionSegments[1].Conversation = nil
	if err := s.Validate(); err == nil {
		t.Error("Validate() = nil, want empty-conversation error")
	}

	s = validTestSession()
	s.QuestionSegments[1].Conversation[0].MessageType = MessageTypeResponse
	if err := s.Validate(); err == nil {
		t.Error("Validate() = nil, want first-turn-is-question error")
	}
}

func TestSessionValidate_IndexRange(t *testing.T) {
	s := validTestSession()
	s.CurrentQuestionIndex = 3
	if err := s.Validate(); err == nil {
		t.Error("Validate() = nil, want index-out-of-range error")
	}
}

func TestActiveSegment(t *testing.T) {
	s := validTestSession()
	seg := s.ActiveSegment()
	if seg == nil || seg.QuestionNumber != 2 {
		t.Fatalf("ActiveSegment() = %+v, want segment 2", seg)
	}

	empty := &Session{}
	if got := empty.ActiveSegment(); got != nil {
		t.Errorf("ActiveSegment() on empty session = %+v, want nil", got)
	}
}

func TestCoveredTopics(t *testing.T) {
	s := validTestSession()
	got := s.CoveredTopics()
	if len(got) != 3 || got[0] != "Q1" || got[2] != "Q3" {
		t.Errorf("CoveredTopics() = %v, want [Q1 Q2 Q3]", got)
	}
}
