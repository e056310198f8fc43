// Package economy holds the currency/score ledger and the tower upgrade curve.
package economy

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNegativeAmount    = errors.New("negative amount")
)

// Ledger — баланс и очки забега. Оба значения никогда не бывают отрицательными.
type Ledger struct {
	balance int
	score   int
}

func NewLedger(balance int) *Ledger {
	if balance < 0 {
		balance = 0
	}
	return &Ledger{balance: balance}
}

func (l *Ledger) Balance() int { return l.balance }
func (l *Ledger) Score() int   { return l.score }

// CanAfford reports whether amount can be spent right now.
func (l *Ledger) CanAfford(amount int) bool {
	return amount >= 0 && l.balance >= amount
}

// Spend debits amount or fails without touching the balance.
func (l *Ledger) Spend(amount int) error {
	if amount < 0 {
		return fmt.Errorf("spend %d: %w", amount, ErrNegativeAmount)
	}
	if l.balance < amount {
		return fmt.Errorf("spend %d with balance %d: %w", amount, l.balance, ErrInsufficientFunds)
	}
	l.balance -= amount
	return nil
}

// Credit adds currency (kill rewards, sell refunds, floor bonuses).
func (l *Ledger) Credit(amount int) {
	if amount > 0 {
		l.balance += amount
	}
}

// AddScore adds points to the cumulative score.
func (l *Ledger) AddScore(points int) {
	if points > 0 {
		l.score += points
	}
}

// Reset starts a new run.
func (l *Ledger) Reset(balance int) {
	if balance < 0 {
		balance = 0
	}
	l.balance = balance
	l.score = 0
}
