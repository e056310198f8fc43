package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"floor-defense/internal/component"
	"floor-defense/internal/scripting"
	"floor-defense/internal/system"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestSetup_FormulasWithoutLeaderboard(t *testing.T) {
	path := writeConfig(t, `
[simulation]
seed = 7
starting_money = 300

[leaderboard]
backend = "none"
`)
	rt, err := Setup(context.Background(), path, Options{})
	defer rt.Close()
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if rt.Recorder != nil || rt.Cues != nil {
		t.Error("leaderboard or audio enabled unexpectedly")
	}
	if got := rt.Game.Ledger.Balance(); got != 300 {
		t.Errorf("Balance() = %d, want 300", got)
	}
	if _, ok := rt.Game.WaveSystem.Builder().(*system.FormulaBuilder); !ok {
		t.Errorf("wave builder = %T, want formulas", rt.Game.WaveSystem.Builder())
	}
	if rt.Game.Phase() != component.BuildPhase {
		t.Errorf("Phase() = %v, want build", rt.Game.Phase())
	}
}

func TestSetup_ScriptAndLocalLeaderboard(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	script := filepath.Join(dir, "waves.lua")
	if err := os.WriteFile(script, []byte(`
function build_wave(wave, floor)
  return {{ kind = "normal", count = 1, health = 10, speed = 50, reward = 1, interval = 1 }}
end`), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	path := writeConfig(t, `
[scripting]
wave_script = "`+filepath.ToSlash(script)+`"

[leaderboard]
backend = "local"
app_name = "floor_defense_bootstrap_test"
`)

	rt, err := Setup(context.Background(), path, Options{})
	defer rt.Close()
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if rt.Recorder == nil {
		t.Fatal("Recorder is nil with the local backend")
	}
	if _, ok := rt.Game.WaveSystem.Builder().(*scripting.WaveScript); !ok {
		t.Errorf("wave builder = %T, want the script", rt.Game.WaveSystem.Builder())
	}
	if res := rt.Game.StartWave(); !res.OK() {
		t.Fatalf("StartWave() error = %v", res.Err)
	}
	if got := rt.Game.ECS.Wave.Pending(); got != 1 {
		t.Errorf("Pending() = %d, want the single scripted enemy", got)
	}
}

func TestSetup_BadScriptFails(t *testing.T) {
	path := writeConfig(t, `
[scripting]
wave_script = "/definitely/missing.lua"

[leaderboard]
backend = "none"
`)
	rt, err := Setup(context.Background(), path, Options{})
	defer rt.Close()
	if err == nil {
		t.Fatal("Setup() accepted a missing wave script")
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv(ConfigEnv, "")
	if got := ConfigPath(); got != DefaultConfigPath {
		t.Errorf("ConfigPath() = %q, want default", got)
	}
	t.Setenv(ConfigEnv, "/tmp/x.toml")
	if got := ConfigPath(); got != "/tmp/x.toml" {
		t.Errorf("ConfigPath() = %q, want env override", got)
	}
}
