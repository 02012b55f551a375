package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/BoomMccloud/interviewer-pro-sub001/internal/interview"
	"github.com/BoomMccloud/interviewer-pro-sub001/pkg/model"
	"github.com/BoomMccloud/interviewer-pro-sub001/pkg/response"
)

// CreateSession creates a new, unstarted interview session.
func (h *Handler) CreateSession(c *gin.Context) {
	var req model.CreateSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	uid, ok := UserIDFrom(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}

	s, err := h.Engine.CreateSession(c.Request.Context(), uid, interview.CreateParams{
		PersonaID:      req.PersonaID,
		JobDescription: req.JobDescription,
		Resume:         req.Resume,
		QuestionBudget: req.QuestionBudget,
	})
	if err != nil {
		h.Logger.Errorw("create session", "user_id", uid, "err", err)
		response.FromEngineError(c, err)
		return
	}
	response.Created(c, gin.H{
		"session_id":      s.ID,
		"persona_id":      s.PersonaID,
		"question_budget": s.QuestionBudget,
	})
}

// StartSession generates the opening question (or the whole batch) and
// returns the first topic.
func (h *Handler) StartSession(c *gin.Context) {
	uid, ok := UserIDFrom(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "invalid session id")
		return
	}

	res, err := h.Engine.StartSession(c.Request.Context(), uid, id)
	if err != nil {
		h.Logger.Errorw("start session", "session_id", id, "err", err)
		response.FromEngineError(c, err)
		return
	}
	response.OK(c, res)
}

// SubmitResponse records the user's answer and returns the follow-up.
func (h *Handler) SubmitResponse(c *gin.Context) {
	var req model.SubmitResponseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	uid, ok := UserIDFrom(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "invalid session id")
		return
	}

	res, err := h.Engine.SubmitResponse(c.Request.Context(), uid, id, req.Response)
	if err != nil {
		h.Logger.Errorw("submit response", "session_id", id, "err", err)
		response.FromEngineError(c, err)
		return
	}
	response.OK(c, res)
}

// AdvanceTopic closes the current topic and generates the next one.
func (h *Handler) AdvanceTopic(c *gin.Context) {
	uid, ok := UserIDFrom(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "invalid session id")
		return
	}

	res, err := h.Engine.AdvanceTopic(c.Request.Context(), uid, id)
	if err != nil {
		h.Logger.Errorw("advance topic", "session_id", id, "err", err)
		response.FromEngineError(c, err)
		return
	}
	response.OK(c, res)
}

// NextQuestion moves to the next pre-generated topic.
func (h *Handler) NextQuestion(c *gin.Context) {
	uid, ok := UserIDFrom(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "invalid session id")
		return
	}

	res, err := h.Engine.MoveToNextPreGenerated(c.Request.Context(), uid, id)
	if err != nil {
		h.Logger.Errorw("next question", "session_id", id, "err", err)
		response.FromEngineError(c, err)
		return
	}
	response.OK(c, res)
}

// GetSessionState returns the read projection of the session.
func (h *Handler) GetSessionState(c *gin.Context) {
	uid, ok := UserIDFrom(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "invalid session id")
		return
	}

	res, err := h.Engine.GetActiveSessionState(c.Request.Context(), uid, id)
	if err != nil {
		response.FromEngineError(c, err)
		return
	}
	response.OK(c, res)
}

// SaveSession is the heartbeat/termination endpoint.
func (h *Handler) SaveSession(c *gin.Context) {
	var req model.SaveSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	uid, ok := UserIDFrom(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "invalid session id")
		return
	}

	res, err := h.Engine.SaveSession(c.Request.Context(), uid, id, req.EndSession)
	if err != nil {
		h.Logger.Errorw("save session", "session_id", id, "end", req.EndSession, "err", err)
		response.FromEngineError(c, err)
		return
	}
	response.OK(c, res)
}

// GetTranscript returns the full segment history for the report layer.
func (h *Handler) GetTranscript(c *gin.Context) {
	uid, ok := UserIDFrom(c)
	if !ok {
		response.Unauthorized(c, "")
		return
	}
	id, ok := sessionID(c)
	if !ok {
		response.BadRequest(c, "invalid session id")
		return
	}

	res, err := h.Engine.GetTranscript(c.Request.Context(), uid, id)
	if err != nil {
		response.FromEngineError(c, err)
		return
	}
	response.OK(c, res)
}
