package content

// Deck walks a list of flashcards one at a time. Moving wraps around
// at both ends and always shows the term side first.
type Deck struct {
	cards   []Flashcard
	index   int
	flipped bool
}

func NewDeck(cards []Flashcard) *Deck {
	return &Deck{cards: cards}
}

func (d *Deck) Len() int { return len(d.cards) }

func (d *Deck) Index() int { return d.index }

// Current returns the card on top. ok is false for an empty deck.
func (d *Deck) Current() (card Flashcard, ok bool) {
	if len(d.cards) == 0 {
		return Flashcard{}, false
	}
	return d.cards[d.index], true
}

func (d *Deck) Flipped() bool { return d.flipped }

func (d *Deck) Flip() {
	if len(d.cards) > 0 {
		d.flipped = !d.flipped
	}
}

func (d *Deck) Next() {
	d.move(1)
}

func (d *Deck) Prev() {
	d.move(-1)
}

func (d *Deck) move(delta int) {
	n := len(d.cards)
	if n == 0 {
		return
	}
	d.flipped = false
	d.index = ((d.index+delta)%n + n) % n
}
