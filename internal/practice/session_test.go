package practice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/physlab/internal/content"
)

func questions() []content.Question {
	return []content.Question{
		{Text: "one", Options: []string{"a", "b"}, Correct: 0},
		{Text: "two", Options: []string{"a", "b", "c"}, Correct: 2},
	}
}

func TestAnswerScoresCorrectOption(t *testing.T) {
	s := New(questions())

	correct, err := s.Answer(0)
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, 1, s.Score())

	sel, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, 0, sel)
}

func TestAnswerOnlyOnce(t *testing.T) {
	s := New(questions())

	correct, err := s.Answer(1)
	require.NoError(t, err)
	assert.False(t, correct)

	_, err = s.Answer(0)
	assert.True(t, errors.Is(err, ErrAnswered))
	assert.Equal(t, 0, s.Score())
}

func TestAnswerOutOfRange(t *testing.T) {
	s := New(questions())
	_, err := s.Answer(5)
	assert.True(t, errors.Is(err, ErrOption))
	assert.False(t, s.Answered())
}

func TestNextRequiresAnswer(t *testing.T) {
	s := New(questions())
	assert.True(t, errors.Is(s.Next(), ErrNotAnswered))
	assert.Equal(t, 0, s.Index())
}

func TestFullRun(t *testing.T) {
	s := New(questions())

	_, _ = s.Answer(0)
	require.NoError(t, s.Next())
	assert.Equal(t, 1, s.Index())
	assert.False(t, s.Answered())

	q, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "two", q.Text)

	_, _ = s.Answer(2)
	require.NoError(t, s.Next())
	assert.True(t, s.Finished())
	assert.Equal(t, 2, s.Score())

	_, ok = s.Current()
	assert.False(t, ok)
	assert.True(t, errors.Is(s.Next(), ErrFinished))
	_, err := s.Answer(0)
	assert.True(t, errors.Is(err, ErrFinished))
}

func TestRestart(t *testing.T) {
	s := New(questions())
	_, _ = s.Answer(0)
	_ = s.Next()
	_, _ = s.Answer(2)
	_ = s.Next()

	s.Restart()
	assert.False(t, s.Finished())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.Index())
	assert.False(t, s.Answered())
}

func TestEmptyQuizIsFinished(t *testing.T) {
	s := New(nil)
	assert.True(t, s.Finished())
	assert.Equal(t, 0, s.Len())
}

func TestSeedQuiz(t *testing.T) {
	lib := content.Default()
	s := New(lib.Questions.Values())
	for !s.Finished() {
		q, _ := s.Current()
		_, err := s.Answer(q.Correct)
		require.NoError(t, err)
		require.NoError(t, s.Next())
	}
	assert.Equal(t, 3, s.Score())
}
