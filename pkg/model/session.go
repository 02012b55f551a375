package model

// CreateSessionReq creates a new interview session.
type CreateSessionReq struct {
	PersonaID      string `json:"persona_id"`
	JobDescription string `json:"job_description" binding:"required"`
	Resume         string `json:"resume"`
	QuestionBudget int    `json:"question_budget" binding:"omitempty,min=1,max=10"`
}

// SubmitResponseReq carries the user's answer on the active topic.
type SubmitResponseReq struct {
	Response string `json:"response" binding:"required"`
}

// SaveSessionReq is the heartbeat/termination payload. CurrentResponse
// is accepted for wire compatibility with older clients but is never
// written into the conversation.
type SaveSessionReq struct {
	CurrentResponse string `json:"current_response"`
	EndSession      bool   `json:"end_session"`
}
