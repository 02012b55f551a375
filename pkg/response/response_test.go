package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BoomMccloud/interviewer-pro-sub001/internal/interview"
)

func record(t *testing.T, fn func(c *gin.Context)) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var env Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, w.Body.String())
	}
	return w, env
}

func TestFromEngineError_StatusMapping(t *testing.T) {
	tests := []struct {
		kind          interview.Kind
		wantStatus    int
		wantRetryable bool
	}{
		{interview.KindNotFound, http.StatusNotFound, false},
		{interview.KindUnauthorized, http.StatusForbidden, false},
		{interview.KindValidation, http.StatusUnprocessableEntity, false},
		{interview.KindGenerationFailed, http.StatusBadGateway, true},
		{interview.KindSessionEnded, http.StatusConflict, false},
		{interview.KindConcurrentModification, http.StatusConflict, true},
		{interview.KindSchema, http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		err := &interview.Error{Kind: tt.kind, Message: "boom"}
		w, env := record(t, func(c *gin.Context) { FromEngineError(c, err) })

		if w.Code != tt.wantStatus {
			t.Errorf("%s: status = %d, want %d", tt.kind, w.Code, tt.wantStatus)
		}
		if env.Success {
			t.Errorf("%s: Success = true, want false", tt.kind)
		}
		if env.Error == nil || env.Error.Code != string(tt.kind) {
			t.Errorf("%s: error = %+v, want code %s", tt.kind, env.Error, tt.kind)
		}
		if env.Error != nil && env.Error.Retryable != tt.wantRetryable {
			t.Errorf("%s: Retryable = %v, want %v", tt.kind, env.Error.Retryable, tt.wantRetryable)
		}
	}
}

func TestFromEngineError_UnknownError(t *testing.T) {
	w, env := record(t, func(c *gin.Context) { FromEngineError(c, errors.New("driver exploded")) })

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	// internal details never leak to clients
	if env.Error == nil || env.Error.Message != "internal server error" {
		t.Errorf("error = %+v, want generic message", env.Error)
	}
}

func TestOK(t *testing.T) {
	w, env := record(t, func(c *gin.Context) { OK(c, gin.H{"x": 1}) })
	if w.Code != http.StatusOK || !env.Success {
		t.Errorf("OK: status = %d, success = %v", w.Code, env.Success)
	}
}
