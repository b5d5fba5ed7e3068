// Package conversation drives the assessment protocol: registration, intro,
// question-by-question answering, scoring, and open-ended follow-up.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/sulnaq/snti/backend/internal/metrics"
	"github.com/sulnaq/snti/backend/internal/model/assessment"
	"github.com/sulnaq/snti/backend/internal/question"
	"github.com/sulnaq/snti/backend/internal/safety"
	"github.com/sulnaq/snti/backend/internal/scoring"
	"github.com/sulnaq/snti/backend/internal/store"
)

var (
	ErrIdentifierRequired = errors.New("identifier is required")
	ErrMessageRequired    = errors.New("message is required")
	// ErrUnknownState marks a corrupted session. It is fatal for the
	// request and never silently defaulted, so corruption stays visible.
	ErrUnknownState = errors.New("unknown session state")
)

// startAffirmations begin the test from the intro, matched by
// case-insensitive containment. "shuru" is the Urdu equivalent.
var startAffirmations = []string{"start", "yes", "ready", "shuru"}

var (
	yesTokens = map[string]bool{"YES": true, "Y": true, "HAAN": true}
	noTokens  = map[string]bool{"NO": true, "N": true, "NAHI": true}
)

// historyLimit caps how much transcript is forwarded to the follow-up
// generator.
const historyLimit = 5

// crisisResponse is the fixed safety text. It pre-empts everything else.
const crisisResponse = "I'm really glad you told me. You matter, and you don't have to carry this alone. " +
	"Please reach out right now to someone you trust or a local mental health helpline - " +
	"in Pakistan you can call Umang at 0311-7786264. I'm here to keep talking with you."

// followUpFallback is returned when the generation collaborator is
// unavailable or fails.
const followUpFallback = "Thank you for sharing that with me. I'm here to talk about your result " +
	"and anything else on your mind - could you tell me a little more?"

// Generator is the external AI collaborator used for open-ended follow-up
// once the assessment is complete.
type Generator interface {
	FollowUp(ctx context.Context, profile assessment.TypeProfile, userName string, history []assessment.HistoryEntry, message string) (string, error)
}

// Config carries the tunable knobs of the state machine.
type Config struct {
	ClassicQuestions  int
	BalancedQuestions int
}

// Service is the session state machine. All session mutation flows through
// HandleTurn, which serializes turns per identifier.
type Service struct {
	repo      store.Repository
	banks     question.Provider
	recorder  metrics.Recorder
	generator Generator
	cfg       Config

	rngMu sync.Mutex
	rng   *rand.Rand

	locks sync.Map // identifier -> *sync.Mutex
}

// NewService wires the state machine. generator may be nil, in which case
// follow-up turns degrade to the static fallback. The rand source feeds both
// bank selection and fallback id minting; inject a seeded one in tests.
func NewService(repo store.Repository, banks question.Provider, recorder metrics.Recorder, generator Generator, rng *rand.Rand, cfg Config) *Service {
	if cfg.ClassicQuestions <= 0 {
		cfg.ClassicQuestions = 20
	}
	if cfg.BalancedQuestions <= 0 {
		cfg.BalancedQuestions = 20
	}
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	return &Service{
		repo:      repo,
		banks:     banks,
		recorder:  recorder,
		generator: generator,
		rng:       rng,
		cfg:       cfg,
	}
}

// HandleTurn processes one inbound message and returns the response
// descriptor. The get-transition-upsert sequence is guarded by a
// per-identifier mutex so concurrent turns for one participant cannot
// interleave and corrupt the answer cursor.
func (s *Service) HandleTurn(ctx context.Context, req Request) (Reply, error) {
	if strings.TrimSpace(req.Identifier) == "" {
		return Reply{}, ErrIdentifierRequired
	}
	if strings.TrimSpace(req.Message) == "" {
		return Reply{}, ErrMessageRequired
	}

	lock := s.lockFor(req.Identifier)
	lock.Lock()
	defer lock.Unlock()

	session, err := s.repo.GetOrCreate(ctx, req.Identifier)
	if err != nil {
		return Reply{}, fmt.Errorf("load session: %w", err)
	}

	now := time.Now().UTC()

	// The crisis filter runs before all state logic, every turn. It only
	// touches the conversation history.
	if safety.IsCrisis(req.Message) {
		session.AppendHistory("user", req.Message, now)
		session.AppendHistory("system", safety.Sentinel, now)
		session.AppendHistory("assistant", crisisResponse, now)
		s.recorder.CrisisIntervention()
		if session, err = s.repo.Upsert(ctx, session); err != nil {
			return Reply{}, fmt.Errorf("store session: %w", err)
		}
		reply := s.describe(&session, Reply{Key: KeySafetyCrisis, Text: crisisResponse})
		return reply, nil
	}

	if req.Registration != nil && session.UserInfo == nil {
		s.register(&session, req.Registration)
	}

	session.AppendHistory("user", req.Message, now)

	reply, err := s.transition(ctx, &session, req.Message)
	if err != nil {
		return Reply{}, err
	}

	assistantText := reply.Text
	if assistantText == "" {
		assistantText = string(reply.Key)
	}
	session.AppendHistory("assistant", assistantText, time.Now().UTC())

	if session, err = s.repo.Upsert(ctx, session); err != nil {
		return Reply{}, fmt.Errorf("store session: %w", err)
	}

	return s.describe(&session, reply), nil
}

// register applies the intake payload: user info, variant by age, language,
// and the public session id. Runs at most once per session.
func (s *Service) register(session *assessment.Session, reg *assessment.Registration) {
	session.UserInfo = reg

	if reg.Age >= 10 && reg.Age <= 17 {
		session.AssessmentVariant = assessment.VariantBalanced
	} else {
		session.AssessmentVariant = assessment.VariantClassic
	}

	session.Language = assessment.LanguageEnglish
	if reg.Language == assessment.LanguageUrdu {
		session.Language = assessment.LanguageUrdu
	}

	session.ID = s.mintID(reg.Phone)
	session.State = assessment.StateAssessmentStart
	log.Printf("[conversation] registered %s variant=%s session=%s", reg.Name, session.AssessmentVariant, session.ID)
}

// transition runs the state-specific logic for one turn.
func (s *Service) transition(ctx context.Context, session *assessment.Session, message string) (Reply, error) {
	switch session.State {
	case assessment.StateAwaitingRegistration:
		return Reply{Key: KeyRegistrationRequired}, nil

	case assessment.StateAssessmentStart:
		s.assignBank(session)
		session.State = assessment.StateTestIntro
		return Reply{Key: KeyIntroWelcome}, nil

	case assessment.StateTestIntro:
		if !isStartAffirmation(message) {
			return Reply{Key: KeyIntroReprompt}, nil
		}
		session.State = assessment.StateTestInProgress
		session.CurrentQuestion = 0
		s.recorder.TestStarted()
		return Reply{Key: KeyQuestionNext, Question: s.questionView(session)}, nil

	case assessment.StateTestInProgress:
		return s.handleAnswer(session, message), nil

	case assessment.StateTestComplete:
		return s.handleFollowUp(ctx, session, message), nil

	default:
		return Reply{}, fmt.Errorf("%w: %q", ErrUnknownState, session.State)
	}
}

// assignBank selects the session's fixed question order. Called exactly once,
// on the automatic ASSESSMENT_START -> TEST_INTRO transition.
func (s *Service) assignBank(session *assessment.Session) {
	var bank []question.Item
	var count int
	if session.AssessmentVariant == assessment.VariantBalanced {
		bank, count = s.banks.Balanced(), s.cfg.BalancedQuestions
	} else {
		bank, count = s.banks.Classic(), s.cfg.ClassicQuestions
	}

	s.rngMu.Lock()
	session.QuestionBank = question.Select(bank, count, s.rng)
	s.rngMu.Unlock()

	session.TotalQuestions = len(session.QuestionBank)
}

// handleAnswer validates one answer. Invalid input never errors: it
// re-prompts the same question and leaves cursor and answers untouched.
func (s *Service) handleAnswer(session *assessment.Session, message string) Reply {
	answer, ok := normalizeAnswer(session.AssessmentVariant, message)
	if !ok {
		return Reply{Key: KeyQuestionInvalid, Question: s.questionView(session)}
	}

	session.Answers = append(session.Answers, answer)
	session.CurrentQuestion++

	if session.CurrentQuestion < session.TotalQuestions {
		return Reply{Key: KeyQuestionNext, Question: s.questionView(session)}
	}

	if session.AssessmentVariant == assessment.VariantBalanced {
		session.MBTIType = scoring.Balanced(session.Answers, session.QuestionBank)
	} else {
		session.MBTIType = scoring.Classic(session.Answers)
	}
	session.State = assessment.StateTestComplete
	s.recorder.TestCompleted(session.MBTIType)
	log.Printf("[conversation] session=%s completed type=%s", session.ID, session.MBTIType)

	reply := Reply{Key: KeyResultSummary}
	if profile, ok := assessment.ProfileFor(session.MBTIType); ok {
		reply.Result = &profile
	}
	return reply
}

// handleFollowUp forwards post-assessment chatter to the generation
// collaborator. Its failures are converted to a static fallback, never
// propagated.
func (s *Service) handleFollowUp(ctx context.Context, session *assessment.Session, message string) Reply {
	profile, ok := assessment.ProfileFor(session.MBTIType)
	if !ok || s.generator == nil {
		return Reply{Key: KeyFollowUpFallback, Text: followUpFallback}
	}

	history := session.ConversationHistory
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	text, err := s.generator.FollowUp(ctx, profile, session.UserName(), history, message)
	if err != nil {
		log.Printf("[conversation] follow-up generation failed for session=%s: %v", session.ID, err)
		return Reply{Key: KeyFollowUpFallback, Text: followUpFallback}
	}
	return Reply{Key: KeyFollowUpReply, Text: text}
}

// questionView resolves the question at the cursor into the session's
// language.
func (s *Service) questionView(session *assessment.Session) *QuestionView {
	if session.CurrentQuestion >= len(session.QuestionBank) {
		return nil
	}
	item := session.QuestionBank[session.CurrentQuestion]

	view := &QuestionView{
		Number: session.CurrentQuestion + 1,
		Total:  session.TotalQuestions,
		YesNo:  session.AssessmentVariant == assessment.VariantBalanced,
	}
	if session.Language == assessment.LanguageUrdu {
		view.Text = item.UrduText
		view.OptionA = item.UrduOptionA
		view.OptionB = item.UrduOptionB
	} else {
		view.Text = item.Text
		view.OptionA = item.OptionA
		view.OptionB = item.OptionB
	}
	return view
}

// describe stamps the session metadata onto a reply.
func (s *Service) describe(session *assessment.Session, reply Reply) Reply {
	reply.SessionID = session.ID
	reply.UserName = session.UserName()
	reply.State = session.State
	reply.MBTIType = session.MBTIType
	if session.State == assessment.StateTestInProgress {
		reply.Progress = fmt.Sprintf("%d/%d", session.CurrentQuestion, session.TotalQuestions)
	}
	return reply
}

// mintID builds the public session id from the registration phone number,
// e.g. SNTI-483920-1234.
func (s *Service) mintID(phone string) string {
	stamp := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(stamp) > 6 {
		stamp = stamp[len(stamp)-6:]
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if len(digits) >= 4 {
		return fmt.Sprintf("SNTI-%s-%s", stamp, digits[len(digits)-4:])
	}

	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return fmt.Sprintf("SNTI-%s-%04d", stamp, s.rng.Intn(10000))
}

func (s *Service) lockFor(identifier string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(identifier, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func isStartAffirmation(message string) bool {
	lowered := strings.ToLower(message)
	for _, token := range startAffirmations {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}

// normalizeAnswer maps raw input to the canonical stored token for the
// active variant, reporting false for anything unrecognized.
func normalizeAnswer(variant assessment.Variant, message string) (string, bool) {
	token := strings.ToUpper(strings.TrimSpace(message))

	if variant == assessment.VariantBalanced {
		switch {
		case yesTokens[token]:
			return scoring.AnswerYes, true
		case noTokens[token]:
			return scoring.AnswerNo, true
		default:
			return "", false
		}
	}

	if token == scoring.AnswerA || token == scoring.AnswerB {
		return token, true
	}
	return "", false
}
