package domain

import (
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != 52 {
		t.Fatalf("expected 52 cards, got %d", len(deck))
	}

	seen := make(map[Card]bool, 52)
	for _, c := range deck {
		if seen[c] {
			t.Errorf("duplicate card %v", c)
		}
		seen[c] = true
	}
}

func TestCardString(t *testing.T) {
	tests := []struct {
		name     string
		card     Card
		expected string
	}{
		{name: "Ace of Hearts", card: Card{Suit: Hearts, Rank: Ace}, expected: "AH"},
		{name: "Ten of Spades", card: Card{Suit: Spades, Rank: Ten}, expected: "10S"},
		{name: "Queen of Diamonds", card: Card{Suit: Diamonds, Rank: Queen}, expected: "QD"},
		{name: "King of Clubs", card: Card{Suit: Clubs, Rank: King}, expected: "KC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSuitColor(t *testing.T) {
	tests := []struct {
		suit     Suit
		expected Color
	}{
		{Hearts, Red},
		{Diamonds, Red},
		{Clubs, Black},
		{Spades, Black},
	}

	for _, tt := range tests {
		if got := tt.suit.Color(); got != tt.expected {
			t.Errorf("suit %v: expected color %v, got %v", tt.suit, tt.expected, got)
		}
	}
}

func TestIsOppositeColor(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Card
		expected bool
	}{
		{name: "Hearts vs Spades", a: Card{Suit: Hearts}, b: Card{Suit: Spades}, expected: true},
		{name: "Diamonds vs Clubs", a: Card{Suit: Diamonds}, b: Card{Suit: Clubs}, expected: true},
		{name: "Hearts vs Diamonds", a: Card{Suit: Hearts}, b: Card{Suit: Diamonds}, expected: false},
		{name: "Spades vs Clubs", a: Card{Suit: Spades}, b: Card{Suit: Clubs}, expected: false},
		{name: "same suit", a: Card{Suit: Hearts}, b: Card{Suit: Hearts}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOppositeColor(tt.a, tt.b); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
