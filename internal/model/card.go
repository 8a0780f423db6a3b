package model

import "strconv"

// Suit is one of the four card suits
type Suit string

const (
	SuitClub    Suit = "club"
	SuitDiamond Suit = "diamond"
	SuitHeart   Suit = "heart"
	SuitSpade   Suit = "spade"
)

// Suits lists all suits in ascending priority order
var Suits = []Suit{SuitClub, SuitDiamond, SuitHeart, SuitSpade}

// Priority returns the suit's rank-tiebreak strength: clubs lowest,
// spades highest
func (s Suit) Priority() int {
	switch s {
	case SuitClub:
		return 0
	case SuitDiamond:
		return 1
	case SuitHeart:
		return 2
	case SuitSpade:
		return 3
	default:
		return -1
	}
}

// Valid reports whether the suit is one of the four known suits
func (s Suit) Valid() bool {
	return s.Priority() >= 0
}

// Symbol returns the single-letter suit code used in card IDs
func (s Suit) Symbol() string {
	switch s {
	case SuitClub:
		return "C"
	case SuitDiamond:
		return "D"
	case SuitHeart:
		return "H"
	case SuitSpade:
		return "S"
	default:
		return "?"
	}
}

// Rank is a card rank from two up to ace
type Rank int

const (
	RankTwo   Rank = 2
	RankThree Rank = 3
	RankFour  Rank = 4
	RankFive  Rank = 5
	RankSix   Rank = 6
	RankSeven Rank = 7
	RankEight Rank = 8
	RankNine  Rank = 9
	RankTen   Rank = 10
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
	RankAce   Rank = 14
)

// Ranks lists all ranks in ascending order
var Ranks = []Rank{
	RankTwo, RankThree, RankFour, RankFive, RankSix, RankSeven, RankEight,
	RankNine, RankTen, RankJack, RankQueen, RankKing, RankAce,
}

// Symbol returns the rank part of a card ID: 2-10 numeric, then J Q K A
func (r Rank) Symbol() string {
	switch r {
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAce:
		return "A"
	default:
		return strconv.Itoa(int(r))
	}
}

// Card is a single playing card. ID is the compact wire form, rank symbol
// followed by suit symbol ("AS", "10H", "2C").
type Card struct {
	ID   string `json:"id"`
	Suit Suit   `json:"suit"`
	Rank Rank   `json:"rank"`
}

// NewCard builds a card with its derived ID
func NewCard(suit Suit, rank Rank) Card {
	return Card{
		ID:   rank.Symbol() + suit.Symbol(),
		Suit: suit,
		Rank: rank,
	}
}

func (c Card) String() string {
	return c.ID
}

// WeakerThan imposes the strict total order used when trimming the deck:
// ascending rank, ties broken by suit priority
func (c Card) WeakerThan(other Card) bool {
	if c.Rank != other.Rank {
		return c.Rank < other.Rank
	}
	return c.Suit.Priority() < other.Suit.Priority()
}

// FindCard returns the index of the card with the given ID, or -1
func FindCard(cards []Card, id string) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// HasSuit reports whether any card of the given suit is present
func HasSuit(cards []Card, suit Suit) bool {
	for _, c := range cards {
		if c.Suit == suit {
			return true
		}
	}
	return false
}
