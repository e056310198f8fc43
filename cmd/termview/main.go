// Command termview runs the game in a terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"floor-defense/internal/app"
	"floor-defense/internal/bootstrap"
	"floor-defense/internal/component"
	"floor-defense/internal/leaderboard"
	"floor-defense/pkg/gridmap"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const frame = 16 * time.Millisecond

var upgradeRunes = map[rune]component.UpgradeTrack{
	'd': component.TrackDamage,
	'r': component.TrackRange,
	'f': component.TrackRate,
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	rt, err := bootstrap.Setup(ctx, bootstrap.ConfigPath(), bootstrap.Options{Audio: true, LogFile: "termview.log"})
	cancel()
	defer rt.Close()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	t := &terminal{
		screen: screen,
		rt:     rt,
		game:   rt.Game,
		view:   &view{kind: rt.Defs.TowerOrder[0]},
		log:    rt.Logger.Named("termview"),
	}
	return t.loop()
}

type terminal struct {
	screen tcell.Screen
	rt     *bootstrap.Runtime
	game   *app.Game
	view   *view
	log    *zap.Logger
}

func (t *terminal) loop() error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if quit := t.handle(ev); quit {
				return nil
			}
		case now := <-ticker.C:
			t.game.Update(now.Sub(last).Seconds())
			last = now
			if t.rt.Recorder != nil {
				t.view.leaders = leaderboard.Lines(t.rt.Recorder.Top())
			}
			snap := t.game.Snapshot()
			t.view.draw(t.screen, &snap)
		}
	}
}

// handle returns true when the user asked to quit.
func (t *terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			t.moveCursor(0, -1)
		case tcell.KeyDown:
			t.moveCursor(0, 1)
		case tcell.KeyLeft:
			t.moveCursor(-1, 0)
		case tcell.KeyRight:
			t.moveCursor(1, 0)
		case tcell.KeyEnter:
			t.buildOrSelect()
		case tcell.KeyTab:
			t.view.status = fmt.Sprintf("speed x%v", t.game.CycleSpeed())
		case tcell.KeyRune:
			return t.handleRune(ev.Rune())
		}
	}
	return false
}

func (t *terminal) handleRune(r rune) bool {
	if r >= '1' && r <= '9' {
		idx := int(r - '1')
		if idx < len(t.rt.Defs.TowerOrder) {
			t.view.kind = t.rt.Defs.TowerOrder[idx]
		}
		return false
	}
	if track, ok := upgradeRunes[r]; ok {
		if tower, ok := t.game.ECS.TowerAt(t.view.cursor); ok {
			t.report("upgrade", t.game.UpgradeTower(tower.ID, track))
		}
		return false
	}
	switch r {
	case 'q':
		return true
	case ' ':
		t.report("wave", t.game.StartWave())
	case 'b':
		t.buildOrSelect()
	case 's', 'x':
		t.report("sell", t.game.SellAt(t.view.cursor))
	case 'p':
		t.game.TogglePause()
	case 'n':
		if t.game.Phase() == component.GameOverPhase {
			t.game.Restart()
			t.view.status = "new run " + t.game.RunID
		}
	}
	return false
}

func (t *terminal) moveCursor(dc, dr int) {
	next := t.view.cursor.Add(gridmap.Cell{Col: dc, Row: dr})
	if t.game.Map.InBounds(next) {
		t.view.cursor = next
	}
}

func (t *terminal) buildOrSelect() {
	if _, ok := t.game.SelectAt(t.view.cursor); ok {
		return
	}
	t.report("build", t.game.PlaceTower(t.view.cursor, t.view.kind))
}

func (t *terminal) report(action string, res app.CommandResult) {
	if res.OK() {
		t.view.status = fmt.Sprintf("%s ok (%+d)", action, res.Delta)
		return
	}
	t.log.Debug("command rejected", zap.String("action", action), zap.Error(res.Err))
	msg := res.Err.Error()
	if errors.Is(res.Err, app.ErrInsufficientFunds) {
		msg = "not enough money"
	}
	t.view.status = action + ": " + msg
}
