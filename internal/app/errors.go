package app

import (
	"errors"

	"floor-defense/internal/economy"
)

// Rejected commands return one of these and leave the game untouched.
var (
	ErrInsufficientFunds = economy.ErrInsufficientFunds
	ErrMaxLevel          = economy.ErrMaxLevel
	ErrCellOccupied      = errors.New("cell is occupied")
	ErrCellOnPath        = errors.New("cell is on the enemy path")
	ErrOutOfBounds       = errors.New("cell is outside the grid")
	ErrUnknownTower      = errors.New("no such tower")
	ErrUnknownKind       = errors.New("unknown tower kind")
	ErrUnknownTrack      = errors.New("unknown upgrade track")
	ErrWaveInProgress    = errors.New("wave is still spawning")
	ErrFloorComplete     = errors.New("all waves of this floor have started")
	ErrGameOver          = errors.New("game is over")
)

// CommandResult is the outcome of a player command: the balance change on
// success, or the reason it was rejected.
type CommandResult struct {
	Delta int
	Err   error
}

func (r CommandResult) OK() bool { return r.Err == nil }

func rejected(err error) CommandResult {
	return CommandResult{Err: err}
}
