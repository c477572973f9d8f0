package poker

import (
	rand "math/rand/v2"
)

// Deck represents a standard 52-card deck consumed from the front.
type Deck struct {
	cards [52]Card
	next  int
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck using the provided RNG. The RNG is
// required so that hands are replayable from a seed.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	i := 0
	for suit := range uint8(4) {
		for rank := range uint8(13) {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle reshuffles the full deck using Fisher-Yates and rewinds it.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if fewer than n remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := d.cards[d.next : d.next+n]
	d.next += n
	return cards
}

// DealOne deals a single card, or 0 if the deck is exhausted.
func (d *Deck) DealOne() Card {
	if d.next >= len(d.cards) {
		return 0
	}
	card := d.cards[d.next]
	d.next++
	return card
}

// CardsRemaining returns the number of cards left in the deck.
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}

// Undealt returns the cards still in the deck without consuming them.
func (d *Deck) Undealt() []Card {
	return d.cards[d.next:]
}

// Remaining returns every card of the 52 that is not in the inPlay set.
// The equity engine uses this as the pool of unseen cards; callers pass the
// union of the board and all dealt hole cards.
func Remaining(inPlay Hand) []Card {
	pool := make([]Card, 0, 52-inPlay.CountCards())
	for suit := range uint8(4) {
		for rank := range uint8(13) {
			c := NewCard(rank, suit)
			if !inPlay.HasCard(c) {
				pool = append(pool, c)
			}
		}
	}
	return pool
}
