package conversation

// State is the explicit phase of one interview session. Keeping it as an
// enum makes the forbidden transitions (a second generation, answering a
// finished session) unrepresentable.
type State int

const (
	StateIdle State = iota
	StateAwaitingAnswer
	StateGenerating
	StateComplete
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateGenerating:
		return "generating"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Message is one transcript entry. From is "bot" or "user".
type Message struct {
	From string `json:"from"`
	Text string `json:"text"`
}

type session struct {
	id            string
	state         State
	questionIndex int
	answers       []string
	transcript    []Message
}

func (s *session) say(from, text string) {
	s.transcript = append(s.transcript, Message{From: from, Text: text})
}

// View is an immutable copy of a session handed to callers.
type View struct {
	ID            string    `json:"id"`
	State         string    `json:"state"`
	QuestionIndex int       `json:"question_index"`
	Transcript    []Message `json:"transcript"`
}

func (s *session) view() View {
	return View{
		ID:            s.id,
		State:         s.state.String(),
		QuestionIndex: s.questionIndex,
		Transcript:    append([]Message(nil), s.transcript...),
	}
}
