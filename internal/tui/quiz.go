package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/physlab/internal/content"
	"github.com/san-kum/physlab/internal/practice"
)

// QuizModel asks the practice questions one at a time.
type QuizModel struct {
	session *practice.Session
	cursor  int
}

func NewQuiz(questions []content.Question) QuizModel {
	return QuizModel{session: practice.New(questions)}
}

func (m QuizModel) Session() *practice.Session { return m.session }

func (m QuizModel) Init() tea.Cmd { return nil }

func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	s := m.session

	switch k := key.String(); k {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "r":
		if s.Finished() {
			s.Restart()
			m.cursor = 0
		}
	case "up", "k":
		if m.cursor > 0 && !s.Answered() {
			m.cursor--
		}
	case "down", "j":
		if q, ok := s.Current(); ok && !s.Answered() && m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case "enter", " ":
		if s.Answered() {
			_ = s.Next()
			m.cursor = 0
		} else {
			_, _ = s.Answer(m.cursor)
		}
	default:
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' && !s.Answered() {
			if _, err := s.Answer(int(k[0] - '1')); err == nil {
				m.cursor = int(k[0] - '1')
			}
		}
	}
	return m, nil
}

func (m QuizModel) View() string {
	var b strings.Builder
	b.WriteString(title("l u y ệ n   t ậ p"))

	s := m.session
	if s.Finished() {
		b.WriteString(fmt.Sprintf("      %s %s\n\n",
			white.Render("score"),
			cyan.Render(fmt.Sprintf("%d/%d", s.Score(), s.Len()))))
		b.WriteString(dim.Render("      r restart   q quit") + "\n")
		return b.String()
	}

	q, _ := s.Current()
	b.WriteString(dim.Render(fmt.Sprintf("      question %d/%d   score %d", s.Index()+1, s.Len(), s.Score())) + "\n\n")
	b.WriteString("      " + white.Render(q.Text) + "\n\n")

	sel, answered := s.Selected()
	for i, opt := range q.Options {
		label := fmt.Sprintf("%d. %s", i+1, opt)
		switch {
		case answered && i == q.Correct:
			b.WriteString("      " + green.Render("✓ "+label) + "\n")
		case answered && i == sel:
			b.WriteString("      " + red.Render("✗ "+label) + "\n")
		case answered:
			b.WriteString("        " + dimmer.Render(label) + "\n")
		case i == m.cursor:
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(label) + "\n")
		default:
			b.WriteString("        " + dim.Render(label) + "\n")
		}
	}

	b.WriteString("\n")
	if answered {
		if sel == q.Correct {
			b.WriteString("      " + green.Render("correct") + "\n")
		} else {
			b.WriteString("      " + yellow.Render("answer: "+q.Options[q.Correct]) + "\n")
		}
		next := "next"
		if s.Index() == s.Len()-1 {
			next = "finish"
		}
		b.WriteString(dim.Render("      enter "+next+"   q quit") + "\n")
	} else {
		b.WriteString(dim.Render("      ↑↓ select   enter answer   1-9 pick   q quit") + "\n")
	}
	return b.String()
}

func RunQuiz(questions []content.Question) error {
	p := tea.NewProgram(NewQuiz(questions), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
