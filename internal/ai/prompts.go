package ai

import (
	"fmt"
	"strings"

	"github.com/BoomMccloud/interviewer-pro-sub001/internal/interview"
	"github.com/BoomMccloud/interviewer-pro-sub001/internal/persona"
)

// The prompt builders demand the tagged output format the session
// engine's parser understands. Changing a tag here requires the matching
// change in internal/interview/parser.go.

func systemPrompt(p persona.Persona, req interview.GenerateRequest) string {
	var b strings.Builder
	b.WriteString(p.StylePrompt)
	b.WriteString("\n\nYou are conducting a mock interview for the following role:\n")
	b.WriteString(req.JobDescription)
	if req.Resume != "" {
		b.WriteString("\n\nCandidate background:\n")
		b.WriteString(req.Resume)
	}
	b.WriteString("\n\nAlways answer using the exact tagged format you are asked for. " +
		"Never add text outside the tags.")
	return b.String()
}

func firstQuestionPrompt() string {
	return `Ask your opening interview question for this role.

Respond in exactly this format:
<QUESTION>the opening question</QUESTION>
<KEY_POINTS>
- a hint about what a strong answer covers
- another hint
- another hint
</KEY_POINTS>`
}

func followUpPrompt(history []interview.ConversationTurn, userResponse string) string {
	var b strings.Builder
	b.WriteString("Here is the conversation on the current topic so far:\n\n")
	for _, turn := range history {
		speaker := "Interviewer"
		if turn.Role == interview.RoleUser {
			speaker = "Candidate"
		}
		fmt.Fprintf(&b, "%s: %s\n", speaker, turn.Content)
	}
	fmt.Fprintf(&b, "\nThe candidate just answered:\n%s\n", userResponse)
	b.WriteString(`
Assess the answer and ask one follow-up question on the same topic.

Respond in exactly this format:
<ANALYSIS>a short assessment of the answer</ANALYSIS>
<FEEDBACK>
- a specific strength or gap
- another specific strength or gap
</FEEDBACK>
<FOLLOW_UP>the follow-up question</FOLLOW_UP>
<SUGGESTED_ALTERNATIVE>optionally, a stronger way the candidate could have answered</SUGGESTED_ALTERNATIVE>`)
	return b.String()
}

func newTopicPrompt(coveredTopics []string) string {
	var b strings.Builder
	b.WriteString("Move the interview to a new topic. Topics already covered, do not repeat them:\n")
	for _, topic := range coveredTopics {
		fmt.Fprintf(&b, "- %s\n", topic)
	}
	b.WriteString(`
Respond in exactly this format:
<NEW_TOPIC>the new question</NEW_TOPIC>
<KEY_POINTS>
- a hint about what a strong answer covers
- another hint
- another hint
</KEY_POINTS>`)
	return b.String()
}

func batchPrompt(count int) string {
	return fmt.Sprintf(`Prepare the full set of %d interview questions for this role up front.
Question 1 is an opening question; later questions alternate between
technical and behavioral topics. Each question must stand alone.

Respond with exactly %d blocks, each in this format:
<QUESTION>the question</QUESTION>
<KEY_POINTS>
- a hint about what a strong answer covers
- another hint
- another hint
</KEY_POINTS>`, count, count)
}
