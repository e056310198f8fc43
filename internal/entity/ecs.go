// internal/entity/ecs.go
package entity

import (
	"floor-defense/internal/component"
	"floor-defense/internal/types"
	"floor-defense/pkg/gridmap"
)

// ECS владеет всеми живыми сущностями одного забега.
// Срезы задают детерминированный порядок обхода, карты дают поиск по ID.
// Мёртвые сущности остаются в срезах до Cleanup в конце тика.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Enemies     []*component.Enemy
	Towers      []*component.Tower
	Projectiles []*component.Projectile
	Wave        *component.Wave
	Waypoints   []component.Position

	enemyIndex map[types.EntityID]*component.Enemy
	towerIndex map[types.EntityID]*component.Tower
	towerCells map[gridmap.Cell]types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		enemyIndex: make(map[types.EntityID]*component.Enemy),
		towerIndex: make(map[types.EntityID]*component.Tower),
		towerCells: make(map[gridmap.Cell]types.EntityID),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy registers e, assigning an ID when it has none.
func (ecs *ECS) AddEnemy(e *component.Enemy) types.EntityID {
	if e.ID == 0 {
		e.ID = ecs.NewEntity()
	}
	ecs.Enemies = append(ecs.Enemies, e)
	ecs.enemyIndex[e.ID] = e
	return e.ID
}

// AddTower registers t on its cell.
func (ecs *ECS) AddTower(t *component.Tower) types.EntityID {
	if t.ID == 0 {
		t.ID = ecs.NewEntity()
	}
	ecs.Towers = append(ecs.Towers, t)
	ecs.towerIndex[t.ID] = t
	ecs.towerCells[t.Cell] = t.ID
	return t.ID
}

// AddProjectile registers p.
func (ecs *ECS) AddProjectile(p *component.Projectile) types.EntityID {
	if p.ID == 0 {
		p.ID = ecs.NewEntity()
	}
	ecs.Projectiles = append(ecs.Projectiles, p)
	return p.ID
}

// Enemy returns a registered enemy, dead or alive.
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.enemyIndex[id]
	return e, ok
}

// LiveEnemy returns the enemy only while it is registered and not dead.
func (ecs *ECS) LiveEnemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.enemyIndex[id]
	if !ok || e.IsDead {
		return nil, false
	}
	return e, true
}

// LiveEnemyCount counts enemies that are not flagged dead.
func (ecs *ECS) LiveEnemyCount() int {
	n := 0
	for _, e := range ecs.Enemies {
		if !e.IsDead {
			n++
		}
	}
	return n
}

func (ecs *ECS) Tower(id types.EntityID) (*component.Tower, bool) {
	t, ok := ecs.towerIndex[id]
	return t, ok
}

// TowerAt returns the tower standing on cell.
func (ecs *ECS) TowerAt(cell gridmap.Cell) (*component.Tower, bool) {
	id, ok := ecs.towerCells[cell]
	if !ok {
		return nil, false
	}
	return ecs.Tower(id)
}

// RemoveTower deletes a tower immediately. Only called between ticks.
func (ecs *ECS) RemoveTower(id types.EntityID) bool {
	t, ok := ecs.towerIndex[id]
	if !ok {
		return false
	}
	delete(ecs.towerIndex, id)
	delete(ecs.towerCells, t.Cell)
	for i, other := range ecs.Towers {
		if other.ID == id {
			ecs.Towers = append(ecs.Towers[:i], ecs.Towers[i+1:]...)
			break
		}
	}
	return true
}

// Cleanup removes dead enemies and projectiles. It returns how many
// enemies were removed.
func (ecs *ECS) Cleanup() int {
	removed := 0
	alive := ecs.Enemies[:0]
	for _, e := range ecs.Enemies {
		if e.IsDead {
			delete(ecs.enemyIndex, e.ID)
			removed++
			continue
		}
		alive = append(alive, e)
	}
	clearTail(ecs.Enemies, len(alive))
	ecs.Enemies = alive

	liveProjectiles := ecs.Projectiles[:0]
	for _, p := range ecs.Projectiles {
		if !p.IsDead {
			liveProjectiles = append(liveProjectiles, p)
		}
	}
	clearTail(ecs.Projectiles, len(liveProjectiles))
	ecs.Projectiles = liveProjectiles
	return removed
}

// ClearUnits drops every enemy, projectile and the wave queue.
func (ecs *ECS) ClearUnits() {
	ecs.Enemies = nil
	ecs.Projectiles = nil
	ecs.Wave = nil
	ecs.enemyIndex = make(map[types.EntityID]*component.Enemy)
}

// ClearTowers drops every tower.
func (ecs *ECS) ClearTowers() {
	ecs.Towers = nil
	ecs.towerIndex = make(map[types.EntityID]*component.Tower)
	ecs.towerCells = make(map[gridmap.Cell]types.EntityID)
}

// clearTail nils out pointers past n so the GC can collect removed entities.
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
