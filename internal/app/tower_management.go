// internal/app/tower_management.go
package app

import (
	"fmt"

	"floor-defense/internal/component"
	"floor-defense/internal/config"
	"floor-defense/internal/economy"
	"floor-defense/internal/event"
	"floor-defense/internal/system"
	"floor-defense/internal/types"
	"floor-defense/pkg/gridmap"

	"go.uber.org/zap"
)

// PlaceTower builds a tower of kind on cell.
func (g *Game) PlaceTower(cell gridmap.Cell, kind component.TowerKind) CommandResult {
	if g.phase == component.GameOverPhase {
		return rejected(ErrGameOver)
	}
	def, ok := g.Defs.Tower(kind)
	if !ok {
		return rejected(fmt.Errorf("%w: %q", ErrUnknownKind, kind))
	}
	if err := g.canPlaceTower(cell); err != nil {
		return rejected(err)
	}
	if err := g.Ledger.Spend(def.Cost); err != nil {
		return rejected(err)
	}

	tower := economy.NewTower(def, cell, g.grid.CellSize)
	id := g.ECS.AddTower(tower)

	g.logger.Debug("tower placed", zap.Uint64("tower", uint64(id)), zap.String("kind", string(kind)))
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{TowerID: id, Delta: -def.Cost},
	})
	return CommandResult{Delta: -def.Cost}
}

func (g *Game) canPlaceTower(cell gridmap.Cell) error {
	if !g.Map.InBounds(cell) {
		return ErrOutOfBounds
	}
	if g.Map.IsPath(cell) {
		return ErrCellOnPath
	}
	if _, taken := g.ECS.TowerAt(cell); taken {
		return ErrCellOccupied
	}
	return nil
}

// SellTower removes a tower and refunds its sell value.
func (g *Game) SellTower(id types.EntityID) CommandResult {
	if g.phase == component.GameOverPhase {
		return rejected(ErrGameOver)
	}
	tower, ok := g.ECS.Tower(id)
	if !ok {
		return rejected(ErrUnknownTower)
	}
	refund := tower.SellValue
	g.ECS.RemoveTower(id)
	g.Ledger.Credit(refund)

	g.logger.Debug("tower sold", zap.Uint64("tower", uint64(id)), zap.Int("refund", refund))
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerSold,
		Data: event.TowerData{TowerID: id, Delta: refund},
	})
	return CommandResult{Delta: refund}
}

// SellAt sells whatever tower stands on cell.
func (g *Game) SellAt(cell gridmap.Cell) CommandResult {
	tower, ok := g.ECS.TowerAt(cell)
	if !ok {
		return rejected(ErrUnknownTower)
	}
	return g.SellTower(tower.ID)
}

// UpgradeCost is the price of the next upgrade of id on track.
func (g *Game) UpgradeCost(id types.EntityID, track component.UpgradeTrack) (int, error) {
	tower, ok := g.ECS.Tower(id)
	if !ok {
		return 0, ErrUnknownTower
	}
	def, ok := g.Defs.Upgrades[track]
	if !ok {
		return 0, ErrUnknownTrack
	}
	return economy.UpgradeCost(tower.Cost, tower.Level, def), nil
}

// UpgradeTower buys one level on track.
func (g *Game) UpgradeTower(id types.EntityID, track component.UpgradeTrack) CommandResult {
	if g.phase == component.GameOverPhase {
		return rejected(ErrGameOver)
	}
	tower, ok := g.ECS.Tower(id)
	if !ok {
		return rejected(ErrUnknownTower)
	}
	def, ok := g.Defs.Upgrades[track]
	if !ok {
		return rejected(ErrUnknownTrack)
	}
	if err := economy.CanUpgrade(tower); err != nil {
		return rejected(err)
	}
	cost := economy.UpgradeCost(tower.Cost, tower.Level, def)
	if err := g.Ledger.Spend(cost); err != nil {
		return rejected(err)
	}
	economy.ApplyUpgrade(tower, track, def, cost)

	g.logger.Debug("tower upgraded",
		zap.Uint64("tower", uint64(id)),
		zap.Stringer("track", track),
		zap.Int("level", tower.Level),
		zap.Int("cost", cost),
	)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerUpgraded,
		Data: event.TowerData{TowerID: id, Delta: -cost},
	})
	return CommandResult{Delta: -cost}
}

// SelectAt marks the tower on cell as selected and clears any other
// selection. An empty cell just clears it.
func (g *Game) SelectAt(cell gridmap.Cell) (types.EntityID, bool) {
	var selected types.EntityID
	for _, t := range g.ECS.Towers {
		t.IsSelected = t.Cell == cell
		if t.IsSelected {
			selected = t.ID
		}
	}
	return selected, selected != 0
}

// Selected returns the selected tower, if any.
func (g *Game) Selected() (*component.Tower, bool) {
	for _, t := range g.ECS.Towers {
		if t.IsSelected {
			return t, true
		}
	}
	return nil, false
}

// StartWave queues the next wave of the current floor. Enemies of the
// previous wave may still be on the field, but its queue must be empty.
func (g *Game) StartWave() CommandResult {
	switch {
	case g.phase == component.GameOverPhase:
		return rejected(ErrGameOver)
	case g.WaveSystem.State() == system.WaveSpawning:
		return rejected(ErrWaveInProgress)
	case g.wave >= g.sim.WavesPerFloor:
		return rejected(ErrFloorComplete)
	}

	if err := g.WaveSystem.StartWave(g.wave+1, g.floor); err != nil {
		g.logger.Error("wave build failed", zap.Int("wave", g.wave+1), zap.Int("floor", g.floor), zap.Error(err))
		return rejected(err)
	}
	g.wave++
	g.phase = component.WavePhase
	return CommandResult{}
}

// TogglePause flips the pause flag and returns the new state.
func (g *Game) TogglePause() bool {
	g.isPaused = !g.isPaused
	return g.isPaused
}

// CycleSpeed steps through config.SpeedMultipliers and returns the new multiplier.
func (g *Game) CycleSpeed() float64 {
	g.speedIndex = (g.speedIndex + 1) % len(config.SpeedMultipliers)
	return g.SpeedMultiplier()
}
