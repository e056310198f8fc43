// Package scripting lets a Lua file shape wave composition.
package scripting

import (
	"errors"
	"fmt"
	"os"

	"floor-defense/internal/component"
	"floor-defense/internal/system"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

var ErrBadWave = errors.New("build_wave returned an unusable wave")

// WaveScript builds waves by calling build_wave(wave, floor) in a Lua VM.
// Whenever the script is missing the function, fails or returns garbage,
// the formula builder is used instead. Single-goroutine access only.
type WaveScript struct {
	vm           *lua.LState
	log          *zap.Logger
	fallback     *system.FormulaBuilder
	bossLifeCost int
}

// LoadWaveScript reads a Lua file and prepares the VM.
func LoadWaveScript(path string, fallback *system.FormulaBuilder, bossLifeCost int, log *zap.Logger) (*WaveScript, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wave script %s: %w", path, err)
	}
	ws, err := NewWaveScript(string(src), fallback, bossLifeCost, log)
	if err != nil {
		return nil, fmt.Errorf("load wave script %s: %w", path, err)
	}
	log.Info("wave script loaded", zap.String("file", path))
	return ws, nil
}

// NewWaveScript runs source in a fresh VM. The script sees base_stats(wave, floor),
// which returns the formula builder's {health, speed, reward} for that wave.
func NewWaveScript(source string, fallback *system.FormulaBuilder, bossLifeCost int, log *zap.Logger) (*WaveScript, error) {
	vm := lua.NewState()
	ws := &WaveScript{vm: vm, log: log, fallback: fallback, bossLifeCost: bossLifeCost}

	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	vm.SetGlobal("base_stats", vm.NewFunction(ws.luaBaseStats))
	if err := vm.DoString(source); err != nil {
		vm.Close()
		return nil, err
	}
	return ws, nil
}

func (ws *WaveScript) Close() {
	ws.vm.Close()
}

func (ws *WaveScript) luaBaseStats(L *lua.LState) int {
	wave := L.CheckInt(1)
	floor := L.CheckInt(2)
	base := ws.fallback.Base(wave, floor)
	t := L.NewTable()
	t.RawSetString("health", lua.LNumber(base.Health))
	t.RawSetString("speed", lua.LNumber(base.Speed))
	t.RawSetString("reward", lua.LNumber(base.Reward))
	L.Push(t)
	return 1
}

// BuildWave implements system.WaveBuilder.
func (ws *WaveScript) BuildWave(wave, floor int) ([]component.EnemySpec, error) {
	if wave < 1 || floor < 1 {
		return nil, fmt.Errorf("build wave %d on floor %d: %w", wave, floor, system.ErrInvalidWave)
	}
	queue, err := ws.callBuildWave(wave, floor)
	if err != nil {
		ws.log.Warn("wave script failed, using formulas",
			zap.Int("wave", wave), zap.Int("floor", floor), zap.Error(err))
		return ws.fallback.BuildWave(wave, floor)
	}
	return queue, nil
}

func (ws *WaveScript) callBuildWave(wave, floor int) ([]component.EnemySpec, error) {
	fn := ws.vm.GetGlobal("build_wave")
	if fn == lua.LNil {
		return nil, errors.New("lua function build_wave not found")
	}
	if err := ws.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(wave), lua.LNumber(floor)); err != nil {
		return nil, err
	}
	result := ws.vm.Get(-1)
	ws.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%w: got %s, want table", ErrBadWave, result.Type())
	}

	var queue []component.EnemySpec
	var groupErr error
	rt.ForEach(func(_, v lua.LValue) {
		if groupErr != nil {
			return
		}
		group, ok := v.(*lua.LTable)
		if !ok {
			groupErr = fmt.Errorf("%w: group is %s", ErrBadWave, v.Type())
			return
		}
		spec, count, err := ws.parseGroup(group)
		if err != nil {
			groupErr = err
			return
		}
		for i := 0; i < count; i++ {
			queue = append(queue, spec)
		}
	})
	if groupErr != nil {
		return nil, groupErr
	}
	if len(queue) == 0 {
		return nil, fmt.Errorf("%w: no enemies", ErrBadWave)
	}
	return queue, nil
}

// parseGroup reads {kind=, count=, health=, speed=, reward=, interval=, life_cost=}.
func (ws *WaveScript) parseGroup(t *lua.LTable) (component.EnemySpec, int, error) {
	kind := component.EnemyKind(lua.LVAsString(t.RawGetString("kind")))
	known := false
	for _, k := range component.EnemyKinds {
		known = known || k == kind
	}
	if !known {
		return component.EnemySpec{}, 0, fmt.Errorf("%w: unknown kind %q", ErrBadWave, kind)
	}

	count := 1
	if v := t.RawGetString("count"); v != lua.LNil {
		count = int(lua.LVAsNumber(v))
	}
	spec := component.EnemySpec{
		Kind:     kind,
		Health:   float64(lua.LVAsNumber(t.RawGetString("health"))),
		Speed:    float64(lua.LVAsNumber(t.RawGetString("speed"))),
		Reward:   int(lua.LVAsNumber(t.RawGetString("reward"))),
		Interval: float64(lua.LVAsNumber(t.RawGetString("interval"))),
		LifeCost: 1,
	}
	if kind == component.EnemyBoss {
		spec.LifeCost = ws.bossLifeCost
	}
	if v := t.RawGetString("life_cost"); v != lua.LNil {
		spec.LifeCost = int(lua.LVAsNumber(v))
	}

	switch {
	case count < 0:
		return spec, 0, fmt.Errorf("%w: %s count %d", ErrBadWave, kind, count)
	case spec.Health <= 0 || spec.Speed <= 0 || spec.Interval <= 0:
		return spec, 0, fmt.Errorf("%w: %s needs positive health, speed and interval", ErrBadWave, kind)
	case spec.Reward < 0 || spec.LifeCost < 1:
		return spec, 0, fmt.Errorf("%w: %s reward/life_cost out of range", ErrBadWave, kind)
	}
	return spec, count, nil
}
