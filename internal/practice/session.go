// Package practice runs a multiple choice quiz over a list of questions.
package practice

import (
	"errors"

	"github.com/san-kum/physlab/internal/content"
)

var (
	ErrAnswered    = errors.New("practice: question already answered")
	ErrNotAnswered = errors.New("practice: question not answered yet")
	ErrFinished    = errors.New("practice: quiz is finished")
	ErrOption      = errors.New("practice: option out of range")
)

// Session tracks progress through a quiz. Each question takes exactly
// one answer; a correct answer scores one point.
type Session struct {
	questions []content.Question
	index     int
	selected  int
	score     int
	finished  bool
}

func New(questions []content.Question) *Session {
	s := &Session{questions: questions}
	s.Restart()
	return s
}

func (s *Session) Len() int       { return len(s.questions) }
func (s *Session) Index() int     { return s.index }
func (s *Session) Score() int     { return s.score }
func (s *Session) Finished() bool { return s.finished }

// Current returns the question being asked. ok is false once finished.
func (s *Session) Current() (q content.Question, ok bool) {
	if s.finished {
		return content.Question{}, false
	}
	return s.questions[s.index], true
}

// Selected returns the option picked for the current question.
func (s *Session) Selected() (int, bool) {
	return s.selected, s.selected >= 0
}

func (s *Session) Answered() bool { return s.selected >= 0 }

// Answer records option for the current question and reports whether it
// was correct.
func (s *Session) Answer(option int) (bool, error) {
	q, ok := s.Current()
	if !ok {
		return false, ErrFinished
	}
	if s.Answered() {
		return false, ErrAnswered
	}
	if option < 0 || option >= len(q.Options) {
		return false, ErrOption
	}
	s.selected = option
	correct := option == q.Correct
	if correct {
		s.score++
	}
	return correct, nil
}

// Next moves to the following question, or finishes the quiz after the
// last one.
func (s *Session) Next() error {
	if s.finished {
		return ErrFinished
	}
	if !s.Answered() {
		return ErrNotAnswered
	}
	s.selected = -1
	if s.index+1 >= len(s.questions) {
		s.finished = true
		return nil
	}
	s.index++
	return nil
}

func (s *Session) Restart() {
	s.index = 0
	s.selected = -1
	s.score = 0
	s.finished = len(s.questions) == 0
}
