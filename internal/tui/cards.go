package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/physlab/internal/content"
)

// CardsModel shows a flashcard deck, term side first.
type CardsModel struct {
	deck *content.Deck
}

func NewCards(cards []content.Flashcard) CardsModel {
	return CardsModel{deck: content.NewDeck(cards)}
}

func (m CardsModel) Deck() *content.Deck { return m.deck }

func (m CardsModel) Init() tea.Cmd { return nil }

func (m CardsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l", "n":
		m.deck.Next()
	case "left", "h", "p":
		m.deck.Prev()
	case " ", "enter", "f":
		m.deck.Flip()
	}
	return m, nil
}

func (m CardsModel) View() string {
	var b strings.Builder
	b.WriteString(title("t h ẻ   g h i   n h ớ"))

	c, ok := m.deck.Current()
	if !ok {
		b.WriteString(dim.Render("      no flashcards") + "\n")
		return b.String()
	}

	side, text := "term", cyan.Bold(true).Render(c.Term)
	if m.deck.Flipped() {
		side, text = "definition", white.Render(c.Definition)
	}
	b.WriteString(dim.Render(fmt.Sprintf("      %d/%d  %s", m.deck.Index()+1, m.deck.Len(), side)) + "\n")
	for _, line := range strings.Split(card.Render(text), "\n") {
		b.WriteString("    " + line + "\n")
	}
	b.WriteString("\n" + dim.Render("      ←→ move   space flip   q quit") + "\n")
	return b.String()
}

func RunCards(cards []content.Flashcard) error {
	p := tea.NewProgram(NewCards(cards), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
