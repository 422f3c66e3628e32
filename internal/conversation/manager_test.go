package conversation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	reply       string
	err         error
	calls       int
	got         string
	hadDeadline bool
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.got = prompt
	_, f.hadDeadline = ctx.Deadline()
	return f.reply, f.err
}

type fakeImporter struct {
	calls int
	days  [][]string
}

func (f *fakeImporter) Import(days [][]string) {
	f.calls++
	f.days = days
}

func newTestManager(gen *fakeGenerator, imp *fakeImporter) *Manager {
	return NewManager(gen, imp, zap.NewNop(),
		"What destination are you planning to visit?",
		"Do you prefer a packed schedule or relaxed pace?")
}

func TestStartAsksFirstQuestion(t *testing.T) {
	m := newTestManager(&fakeGenerator{}, &fakeImporter{})

	v := m.Start()
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "awaiting_answer", v.State)
	require.Len(t, v.Transcript, 1)
	assert.Equal(t, "bot", v.Transcript[0].From)
	assert.Equal(t, "What destination are you planning to visit?", v.Transcript[0].Text)
}

func TestFullScriptGeneratesAndImports(t *testing.T) {
	gen := &fakeGenerator{
		reply: "Enjoy Paris!\n```json\n{\"days\":[{\"day\":1,\"stops\":[\"Louvre\",\"Eiffel Tower\"]}]}\n```",
	}
	imp := &fakeImporter{}
	m := newTestManager(gen, imp)

	v := m.Start()

	v, err := m.Answer(context.Background(), v.ID, "Paris")
	require.NoError(t, err)
	assert.Equal(t, "awaiting_answer", v.State)
	assert.Equal(t, 1, v.QuestionIndex)
	assert.Equal(t, 0, gen.calls, "no generation mid-script")

	v, err = m.Answer(context.Background(), v.ID, "3 days, relaxed")
	require.NoError(t, err)
	assert.Equal(t, "complete", v.State)
	assert.Equal(t, 1, gen.calls)
	assert.Contains(t, gen.got, "Q: What destination are you planning to visit?\nA: Paris")
	assert.Contains(t, gen.got, "A: 3 days, relaxed")

	require.Equal(t, 1, imp.calls)
	assert.Equal(t, [][]string{{"Louvre", "Eiffel Tower"}}, imp.days)

	last := v.Transcript[len(v.Transcript)-1]
	assert.Equal(t, "bot", last.From)
	assert.Equal(t, "Enjoy Paris!", last.Text)
}

func TestGenerationCallIsTimeBounded(t *testing.T) {
	gen := &fakeGenerator{reply: "Done\n```json\n{\"days\":[]}\n```"}
	m := newTestManager(gen, &fakeImporter{})

	v := m.Start()
	m.Answer(context.Background(), v.ID, "Paris")
	m.Answer(context.Background(), v.ID, "relaxed")

	assert.True(t, gen.hadDeadline, "generation must run under a deadline even on a bare context")
}

func TestEmptyAnswerDoesNotAdvance(t *testing.T) {
	gen := &fakeGenerator{}
	m := newTestManager(gen, &fakeImporter{})
	v := m.Start()

	_, err := m.Answer(context.Background(), v.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyAnswer)

	v, ok := m.Get(v.ID)
	require.True(t, ok)
	assert.Equal(t, 0, v.QuestionIndex)
	assert.Len(t, v.Transcript, 1)
	assert.Equal(t, 0, gen.calls)
}

func TestGenerationFailureAppendsApology(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("network down")}
	imp := &fakeImporter{}
	m := newTestManager(gen, imp)

	v := m.Start()
	m.Answer(context.Background(), v.ID, "Paris")
	v, err := m.Answer(context.Background(), v.ID, "relaxed")
	require.NoError(t, err)

	assert.Equal(t, "failed", v.State)
	assert.Equal(t, 0, imp.calls, "failed session must not import")
	last := v.Transcript[len(v.Transcript)-1]
	assert.Equal(t, apologyMessage, last.Text)
}

func TestExtractionFailureAppendsApology(t *testing.T) {
	gen := &fakeGenerator{reply: "Here is your plan, but I forgot the JSON."}
	imp := &fakeImporter{}
	m := newTestManager(gen, imp)

	v := m.Start()
	m.Answer(context.Background(), v.ID, "Paris")
	v, _ = m.Answer(context.Background(), v.ID, "relaxed")

	assert.Equal(t, "failed", v.State)
	assert.Equal(t, 0, imp.calls)
	assert.Equal(t, apologyMessage, v.Transcript[len(v.Transcript)-1].Text)
}

func TestClosedSessionRejectsAnswers(t *testing.T) {
	gen := &fakeGenerator{reply: "Done\n```json\n{\"days\":[]}\n```"}
	m := newTestManager(gen, &fakeImporter{})

	v := m.Start()
	m.Answer(context.Background(), v.ID, "Paris")
	m.Answer(context.Background(), v.ID, "relaxed")

	_, err := m.Answer(context.Background(), v.ID, "one more thing")
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.Equal(t, 1, gen.calls, "a finished session never generates again")
}

func TestAnswerUnknownSession(t *testing.T) {
	m := newTestManager(&fakeGenerator{}, &fakeImporter{})
	_, err := m.Answer(context.Background(), "nope", "Paris")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
