package assessment

import (
	"time"

	"github.com/sulnaq/snti/backend/internal/question"
)

// State tracks where a participant is in the assessment protocol.
// Progression is forward-only; the crisis override is recorded in history
// and never replaces the state.
type State string

const (
	StateAwaitingRegistration State = "AWAITING_REGISTRATION"
	StateAssessmentStart      State = "ASSESSMENT_START"
	StateTestIntro            State = "TEST_INTRO"
	StateTestInProgress       State = "TEST_IN_PROGRESS"
	StateTestComplete         State = "TEST_COMPLETE"
)

// Variant selects the question bank. Chosen once at registration from the
// participant's age and immutable afterwards.
type Variant string

const (
	VariantClassic  Variant = "classic"
	VariantBalanced Variant = "balanced"
)

// Language selects which text of a question item is presented.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageUrdu    Language = "urdu"
)

// Registration is the payload collected by the intake form before the
// conversation proper starts.
type Registration struct {
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Age         int      `json:"age"`
	RollNumber  string   `json:"rollNumber"`
	Institution string   `json:"institution"`
	Email       string   `json:"email"`
	Language    Language `json:"language"`
}

// HistoryEntry is one turn of the conversation log. The log is append-only.
type HistoryEntry struct {
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is one participant's end-to-end assessment conversation, keyed by
// the caller-supplied identifier. It is mutated exclusively through the
// conversation service.
type Session struct {
	ID                  string          `json:"id"`
	Identifier          string          `json:"identifier"`
	State               State           `json:"state"`
	UserInfo            *Registration   `json:"userInfo,omitempty"`
	AssessmentVariant   Variant         `json:"assessmentVariant,omitempty"`
	Language            Language        `json:"language,omitempty"`
	QuestionBank        []question.Item `json:"questionBank,omitempty"`
	TotalQuestions      int             `json:"totalQuestions"`
	CurrentQuestion     int             `json:"currentQuestion"`
	Answers             []string        `json:"answers"`
	MBTIType            string          `json:"mbtiType,omitempty"`
	ConversationHistory []HistoryEntry  `json:"conversationHistory"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// UserName returns the registered display name, if any.
func (s *Session) UserName() string {
	if s.UserInfo == nil {
		return ""
	}
	return s.UserInfo.Name
}

// AppendHistory records a turn without mutating earlier entries.
func (s *Session) AppendHistory(sender, text string, at time.Time) {
	s.ConversationHistory = append(s.ConversationHistory, HistoryEntry{
		Sender:    sender,
		Text:      text,
		Timestamp: at,
	})
}

// Summary is the reduced read-only projection exposed to operational
// dashboards. No mutation path goes through it.
type Summary struct {
	ID           string    `json:"id"`
	Name         string    `json:"name,omitempty"`
	Identifier   string    `json:"identifier"`
	State        State     `json:"state"`
	MBTIType     string    `json:"mbtiType,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	MessageCount int       `json:"messageCount"`
}

// Summarize builds the operational projection for one session.
func (s *Session) Summarize() Summary {
	return Summary{
		ID:           s.ID,
		Name:         s.UserName(),
		Identifier:   s.Identifier,
		State:        s.State,
		MBTIType:     s.MBTIType,
		CreatedAt:    s.CreatedAt,
		MessageCount: len(s.ConversationHistory),
	}
}
