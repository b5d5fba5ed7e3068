package conversation

import "github.com/sulnaq/snti/backend/internal/model/assessment"

// ReplyKey selects outbound copy. Rendering and localization of the actual
// text is a presentation concern; the core only names what to say.
type ReplyKey string

const (
	KeyRegistrationRequired ReplyKey = "registration.required"
	KeyIntroWelcome         ReplyKey = "intro.welcome"
	KeyIntroReprompt        ReplyKey = "intro.reprompt"
	KeyQuestionNext         ReplyKey = "question.next"
	KeyQuestionInvalid      ReplyKey = "question.invalid"
	KeyResultSummary        ReplyKey = "result.summary"
	KeyFollowUpReply        ReplyKey = "followup.reply"
	KeyFollowUpFallback     ReplyKey = "followup.fallback"
	KeySafetyCrisis         ReplyKey = "safety.crisis"
)

// Request is one inbound conversational turn.
type Request struct {
	Message      string                   `json:"message"`
	Identifier   string                   `json:"identifier"`
	Registration *assessment.Registration `json:"registration,omitempty"`
}

// QuestionView carries the question to present, already resolved to the
// session's language.
type QuestionView struct {
	Number  int    `json:"number"`
	Total   int    `json:"total"`
	Text    string `json:"text"`
	OptionA string `json:"optionA,omitempty"`
	OptionB string `json:"optionB,omitempty"`
	YesNo   bool   `json:"yesNo"`
}

// Reply is the response descriptor returned to the transport layer.
type Reply struct {
	Key       ReplyKey                `json:"responseKey"`
	Text      string                  `json:"text,omitempty"`
	Question  *QuestionView           `json:"question,omitempty"`
	Result    *assessment.TypeProfile `json:"result,omitempty"`
	SessionID string                  `json:"sessionId"`
	UserName  string                  `json:"userName,omitempty"`
	State     assessment.State        `json:"state"`
	MBTIType  string                  `json:"mbtiType,omitempty"`
	Progress  string                  `json:"progress,omitempty"`
}
