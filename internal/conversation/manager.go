package conversation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripcomposer/internal/extract"
)

// 產生失敗時給使用者看的罐頭訊息
const apologyMessage = "Oops! I couldn't generate your itinerary. Try again later."

// generationTimeout bounds the single Gemini call so a hung boundary
// resolves to a failed session instead of pending forever.
const generationTimeout = 30 * time.Second

var (
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionClosed is returned when a session that already generated
	// (or failed) receives another answer.
	ErrSessionClosed = errors.New("session is no longer collecting answers")
	// ErrEmptyAnswer rejects blank input without advancing the script.
	ErrEmptyAnswer = errors.New("answer is empty")
)

// Generator is the text-generation boundary.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Importer receives the generated itinerary. *itinerary.Store satisfies it.
type Importer interface {
	Import(days [][]string)
}

// Manager runs interview sessions: it walks the question script, fires the
// single generation request once the script is done, and imports the
// extracted itinerary into the store.
type Manager struct {
	mu        sync.Mutex
	sessions  map[string]*session
	questions []string
	gen       Generator
	store     Importer
	log       *zap.Logger
}

// NewManager builds a Manager over the default question script. Tests may
// pass a shorter script.
func NewManager(gen Generator, store Importer, log *zap.Logger, questions ...string) *Manager {
	if len(questions) == 0 {
		questions = DefaultQuestions
	}
	return &Manager{
		sessions:  make(map[string]*session),
		questions: questions,
		gen:       gen,
		store:     store,
		log:       log,
	}
}

// Start opens a new session and immediately asks the first question.
func (m *Manager) Start() View {
	s := &session{
		id:    uuid.NewString(),
		state: StateAwaitingAnswer,
	}
	s.say("bot", m.questions[0])

	m.mu.Lock()
	m.sessions[s.id] = s
	m.mu.Unlock()

	m.log.Info("conversation session started", zap.String("session_id", s.id))
	return s.view()
}

// Get returns a copy of the session, if it exists.
func (m *Manager) Get(id string) (View, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return View{}, false
	}
	return s.view(), true
}

// Answer records one user answer. Mid-script it just asks the next
// question; the final answer triggers the generation request. Exactly one
// generation is ever issued per session.
func (m *Manager) Answer(ctx context.Context, id, text string) (View, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return View{}, ErrEmptyAnswer
	}

	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return View{}, ErrSessionNotFound
	}
	if s.state != StateAwaitingAnswer {
		v := s.view()
		m.mu.Unlock()
		return v, ErrSessionClosed
	}

	s.answers = append(s.answers, text)
	s.say("user", text)

	if s.questionIndex < len(m.questions)-1 {
		s.questionIndex++
		s.say("bot", m.questions[s.questionIndex])
		v := s.view()
		m.mu.Unlock()
		return v, nil
	}

	// Last answer: lock the state before releasing the mutex so no second
	// generation can be triggered for this session.
	s.state = StateGenerating
	prompt := BuildTripPrompt(m.questions, s.answers)
	m.mu.Unlock()

	genCtx, cancel := context.WithTimeout(ctx, generationTimeout)
	reply, err := m.gen.Generate(genCtx, prompt)
	cancel()

	m.mu.Lock()
	defer m.mu.Unlock()

	if err != nil {
		m.log.Warn("itinerary generation failed",
			zap.String("session_id", s.id), zap.Error(err))
		s.state = StateFailed
		s.say("bot", apologyMessage)
		return s.view(), nil
	}

	res, err := extract.Extract(reply)
	if err != nil {
		m.log.Warn("itinerary extraction failed",
			zap.String("session_id", s.id), zap.Error(err))
		s.state = StateFailed
		s.say("bot", apologyMessage)
		return s.view(), nil
	}

	s.state = StateComplete
	s.say("bot", res.HumanReadable)
	m.store.Import(res.Days)
	m.log.Info("itinerary imported from conversation",
		zap.String("session_id", s.id), zap.Int("days", len(res.Days)))
	return s.view(), nil
}
