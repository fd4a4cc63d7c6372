package table

import (
	"unicode/utf8"
)

// UnknownCard is the sentinel the client sends for hole cards it cannot see.
const UnknownCard = "unknown"

var rankValues = map[string]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9,
	"10": 10, "J": 11, "Q": 12, "K": 13, "A": 14,
}

// Card is a parsed "<rank><suit>" token (e.g. "10h", "As").
// Rank is 2-14 (A=14), or 0 when the rank text is not recognised.
type Card struct {
	Token string
	Rank  int
	Suit  string
}

// ParseCard splits a token on its last character. It never fails: an empty
// token yields an empty suit and rank 0.
func ParseCard(token string) Card {
	if token == "" {
		return Card{}
	}
	_, size := utf8.DecodeLastRuneInString(token)
	rankText := token[:len(token)-size]
	return Card{
		Token: token,
		Rank:  rankValues[rankText],
		Suit:  token[len(token)-size:],
	}
}

// Valid reports whether the rank was recognised and a suit is present.
func (c Card) Valid() bool {
	return c.Rank != 0 && c.Suit != ""
}

func (c Card) String() string {
	return c.Token
}
