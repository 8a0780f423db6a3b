package deck

import (
	"sort"

	"github.com/mattrk/trickhall/internal/dependencies/random"
	"github.com/mattrk/trickhall/internal/model"
)

// Service provides deck construction, shuffling and the discard policies
// that shrink the match universe between rounds
type Service struct {
	random random.Random
}

// New creates a new deck Service
func New(random random.Random) *Service {
	return &Service{
		random: random,
	}
}

// BuildStandardDeck returns the 52-card deck in deterministic enumeration
// order: suits in priority order, ranks ascending within each suit
func BuildStandardDeck() []model.Card {
	cards := make([]model.Card, 0, 52)
	for _, suit := range model.Suits {
		for _, rank := range model.Ranks {
			cards = append(cards, model.NewCard(suit, rank))
		}
	}
	return cards
}

// Shuffle returns a uniformly random permutation of cards as a new slice.
// The input is never mutated.
func (s *Service) Shuffle(cards []model.Card) []model.Card {
	perm := s.random.Perm(len(cards))
	shuffled := make([]model.Card, len(cards))
	for i, j := range perm {
		shuffled[i] = cards[j]
	}
	return shuffled
}

// DiscardLowest removes the k globally weakest cards from the universe:
// ascending rank, ties broken by ascending suit priority. Used only when
// trimming the full deck for round 1.
func (s *Service) DiscardLowest(universe []model.Card, k int) ([]model.Card, error) {
	if k < 0 || k > len(universe) {
		return nil, model.ErrInvalidDiscardCount
	}

	byWeakness := make([]model.Card, len(universe))
	copy(byWeakness, universe)
	sort.Slice(byWeakness, func(i, j int) bool {
		return byWeakness[i].WeakerThan(byWeakness[j])
	})

	discarded := make(map[string]bool, k)
	for _, c := range byWeakness[:k] {
		discarded[c.ID] = true
	}

	// Preserve the universe's original order for the survivors
	remaining := make([]model.Card, 0, len(universe)-k)
	for _, c := range universe {
		if !discarded[c.ID] {
			remaining = append(remaining, c)
		}
	}
	return remaining, nil
}

// DiscardRandom removes k cards chosen uniformly at random from the
// universe, with no rank or suit bias. Used for every round after the first.
func (s *Service) DiscardRandom(universe []model.Card, k int) ([]model.Card, error) {
	if k < 0 || k > len(universe) {
		return nil, model.ErrInvalidDiscardCount
	}

	perm := s.random.Perm(len(universe))
	discarded := make(map[int]bool, k)
	for _, idx := range perm[:k] {
		discarded[idx] = true
	}

	remaining := make([]model.Card, 0, len(universe)-k)
	for i, c := range universe {
		if !discarded[i] {
			remaining = append(remaining, c)
		}
	}
	return remaining, nil
}
