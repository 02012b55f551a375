package interview

import (
	"fmt"
	"strings"

	"github.com/BoomMccloud/interviewer-pro-sub001/pkg/metrics"
)

// The model is prompted to answer in tagged sections. Generation is not
// guaranteed well-formed, so each extraction either finds its tag or, if
// the field is recoverable, falls back to a labeled placeholder. A field
// with no honest placeholder is a ParseError instead.
const (
	tagQuestion             = "QUESTION"
	tagKeyPoints            = "KEY_POINTS"
	tagAnalysis             = "ANALYSIS"
	tagFeedback             = "FEEDBACK"
	tagFollowUp             = "FOLLOW_UP"
	tagSuggestedAlternative = "SUGGESTED_ALTERNATIVE"
	tagNewTopic             = "NEW_TOPIC"
)

var allTags = []string{
	tagQuestion, tagKeyPoints, tagAnalysis, tagFeedback,
	tagFollowUp, tagSuggestedAlternative, tagNewTopic,
}

// Fallback values are deliberately labeled so the UI and tests can tell
// placeholder guidance from real model output.
var (
	FallbackKeyPoints = []string{
		"[default] Structure your answer around a concrete example",
		"[default] Explain the reasoning behind your decisions",
		"[default] Mention the outcome and what you learned",
	}
	FallbackFeedback = []string{
		"[default] Answer received, no detailed feedback available",
	}
	FallbackAnalysis = "[default] No analysis available for this response"
)

// ParseError means the raw text was unusable: empty, tag-free, or
// missing the one field that cannot be substituted.
type ParseError struct {
	Reason  string
	RawText string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse model output: %s", e.Reason)
}

// FirstQuestionResult is the parsed shape of an opening question.
type FirstQuestionResult struct {
	QuestionText string   `json:"question_text"`
	KeyPoints    []string `json:"key_points"`
	RawText      string   `json:"raw_text"`
}

// ConversationalResult is the parsed shape of a follow-up exchange.
type ConversationalResult struct {
	Analysis             string   `json:"analysis"`
	FeedbackPoints       []string `json:"feedback_points"`
	FollowUpQuestion     string   `json:"follow_up_question"`
	SuggestedAlternative string   `json:"suggested_alternative,omitempty"`
	RawText              string   `json:"raw_text"`
}

// TopicalQuestionResult is the parsed shape of a new-topic question.
type TopicalQuestionResult struct {
	QuestionText string   `json:"question_text"`
	KeyPoints    []string `json:"key_points"`
	RawText      string   `json:"raw_text"`
}

// BatchResult holds the independent question blocks of a pre-generated set.
type BatchResult struct {
	Questions []TopicalQuestionResult `json:"questions"`
}

// extractTag returns the text between <TAG> and </TAG>, trimmed. First
// occurrence wins. ok is false when the open marker is absent; a missing
// close marker yields everything after the open marker.
func extractTag(raw, tag string) (string, bool) {
	open := "<" + tag + ">"
	closing := "</" + tag + ">"

	start := strings.Index(raw, open)
	if start < 0 {
		return "", false
	}
	rest := raw[start+len(open):]
	if end := strings.Index(rest, closing); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest), true
}

// extractList splits a tag's body on newlines and bullet markers into
// trimmed, non-empty items.
func extractList(raw, tag string) ([]string, bool) {
	body, ok := extractTag(raw, tag)
	if !ok {
		return nil, false
	}
	var items []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items, len(items) > 0
}

func hasAnyTag(raw string) bool {
	for _, tag := range allTags {
		if strings.Contains(raw, "<"+tag+">") {
			return true
		}
	}
	return false
}

// checkUsable gates every parse: empty or entirely tag-free text cannot
// degrade to fallbacks and is a hard ParseError.
func checkUsable(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return &ParseError{Reason: "empty model output", RawText: raw}
	}
	if !hasAnyTag(raw) {
		return &ParseError{Reason: "no recognized tags in model output", RawText: raw}
	}
	return nil
}

// ParseFirstQuestion extracts the opening question. The question text is
// mandatory: there is no honest placeholder for a question that was
// never generated. Key points degrade to labeled fallbacks.
func ParseFirstQuestion(raw string) (*FirstQuestionResult, error) {
	if err := checkUsable(raw); err != nil {
		return nil, err
	}
	question, ok := extractTag(raw, tagQuestion)
	if !ok || question == "" {
		return nil, &ParseError{Reason: "missing QUESTION tag", RawText: raw}
	}

	keyPoints, ok := extractList(raw, tagKeyPoints)
	if !ok {
		keyPoints = FallbackKeyPoints
		metrics.RecordParserFallback("key_points")
	}

	return &FirstQuestionResult{QuestionText: question, KeyPoints: keyPoints, RawText: raw}, nil
}

// ParseFollowUp extracts a conversational exchange. The follow-up
// question is mandatory; analysis and feedback degrade to labeled
// fallbacks when absent.
func ParseFollowUp(raw string) (*ConversationalResult, error) {
	if err := checkUsable(raw); err != nil {
		return nil, err
	}
	followUp, ok := extractTag(raw, tagFollowUp)
	if !ok || followUp == "" {
		return nil, &ParseError{Reason: "missing FOLLOW_UP tag", RawText: raw}
	}

	analysis, ok := extractTag(raw, tagAnalysis)
	if !ok || analysis == "" {
		analysis = FallbackAnalysis
		metrics.RecordParserFallback("analysis")
	}
	feedback, ok := extractList(raw, tagFeedback)
	if !ok {
		feedback = FallbackFeedback
		metrics.RecordParserFallback("feedback")
	}
	alternative, _ := extractTag(raw, tagSuggestedAlternative)

	return &ConversationalResult{
		Analysis:             analysis,
		FeedbackPoints:       feedback,
		FollowUpQuestion:     followUp,
		SuggestedAlternative: alternative,
		RawText:              raw,
	}, nil
}

// ParseTopicalQuestion extracts a new-topic question. The model tags the
// question as either QUESTION or NEW_TOPIC; key points fall back to
// labeled defaults.
func ParseTopicalQuestion(raw string) (*TopicalQuestionResult, error) {
	if err := checkUsable(raw); err != nil {
		return nil, err
	}
	question, ok := extractTag(raw, tagQuestion)
	if !ok || question == "" {
		question, ok = extractTag(raw, tagNewTopic)
	}
	if !ok || question == "" {
		return nil, &ParseError{Reason: "missing QUESTION/NEW_TOPIC tag", RawText: raw}
	}

	keyPoints, ok := extractList(raw, tagKeyPoints)
	if !ok {
		keyPoints = FallbackKeyPoints
		metrics.RecordParserFallback("key_points")
	}

	return &TopicalQuestionResult{QuestionText: question, KeyPoints: keyPoints, RawText: raw}, nil
}

// ParseBatch splits raw text containing several QUESTION blocks into
// independent topical results, one per block. Each block runs from one
// <QUESTION> marker to just before the next, so per-block key points
// stay attached to their own question.
func ParseBatch(raw string) (*BatchResult, error) {
	if err := checkUsable(raw); err != nil {
		return nil, err
	}

	open := "<" + tagQuestion + ">"
	var starts []int
	for off := 0; ; {
		i := strings.Index(raw[off:], open)
		if i < 0 {
			break
		}
		starts = append(starts, off+i)
		off += i + len(open)
	}
	if len(starts) == 0 {
		return nil, &ParseError{Reason: "no QUESTION blocks in batch output", RawText: raw}
	}

	batch := &BatchResult{}
	for i, start := range starts {
		end := len(raw)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		q, err := ParseTopicalQuestion(raw[start:end])
		if err != nil {
			// a malformed block poisons the whole batch: the engine
			// must not number questions around a hole
			return nil, &ParseError{
				Reason:  fmt.Sprintf("batch block %d: %v", i+1, err),
				RawText: raw,
			}
		}
		batch.Questions = append(batch.Questions, *q)
	}
	return batch, nil
}
