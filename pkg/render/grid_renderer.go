package render

import (
	"image/color"
	"slices"
	"strconv"

	"floor-defense/internal/app"
	"floor-defense/internal/config"
	"floor-defense/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// GridRenderer draws a Snapshot onto the screen. The static map is
// pre-rendered once per path and reused every frame.
type GridRenderer struct {
	offsetX, offsetY float32
	mapColors        MapColors
	unitColors       UnitColors
	maxLevel         int
	face             text.Face

	mapImage *ebiten.Image
	mapPath  []gridmap.Cell
}

func NewGridRenderer(offsetX, offsetY float32, mapColors MapColors, unitColors UnitColors, maxLevel int) *GridRenderer {
	return &GridRenderer{
		offsetX:    offsetX,
		offsetY:    offsetY,
		mapColors:  mapColors,
		unitColors: unitColors,
		maxLevel:   maxLevel,
		face:       text.NewGoXFace(basicfont.Face7x13),
	}
}

// Face is the font used for labels, shared with the HUD.
func (r *GridRenderer) Face() text.Face { return r.face }

// ScreenToCell maps a cursor position to a grid cell.
func (r *GridRenderer) ScreenToCell(x, y int, snap *app.Snapshot) (gridmap.Cell, bool) {
	px := float64(float32(x) - r.offsetX)
	py := float64(float32(y) - r.offsetY)
	if px < 0 || py < 0 {
		return gridmap.Cell{}, false
	}
	cell := gridmap.PixelToCell(px, py, snap.CellSize)
	return cell, cell.Col < snap.Columns && cell.Row < snap.Rows
}

// Draw renders map, towers, enemies and projectiles.
func (r *GridRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	if r.mapImage == nil || !slices.Equal(r.mapPath, snap.Path) {
		r.renderMapImage(snap)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.offsetX), float64(r.offsetY))
	screen.DrawImage(r.mapImage, op)

	for _, t := range snap.Towers {
		r.drawTower(screen, t)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range snap.Projectiles {
		r.drawProjectile(screen, p)
	}
}

func (r *GridRenderer) renderMapImage(snap *app.Snapshot) {
	size := float32(snap.CellSize)
	w, h := int(size)*snap.Columns, int(size)*snap.Rows
	if r.mapImage != nil {
		r.mapImage.Deallocate()
	}
	img := ebiten.NewImage(w, h)
	img.Fill(r.mapColors.BackgroundColor)

	for i, c := range snap.Path {
		fill := r.mapColors.PathColor
		switch i {
		case 0:
			fill = Tint(fill, r.mapColors.EntryColor, 0.5)
		case len(snap.Path) - 1:
			fill = Tint(fill, r.mapColors.ExitColor, 0.5)
		}
		x, y := float32(c.Col)*size, float32(c.Row)*size
		vector.DrawFilledRect(img, x, y, size, size, fill, false)
		vector.StrokeRect(img, x, y, size, size, r.mapColors.StrokeWidth, r.mapColors.PathStrokeColor, false)
	}

	for col := 0; col <= snap.Columns; col++ {
		x := float32(col) * size
		vector.StrokeLine(img, x, 0, x, float32(h), 1, r.mapColors.GridLineColor, false)
	}
	for row := 0; row <= snap.Rows; row++ {
		y := float32(row) * size
		vector.StrokeLine(img, 0, y, float32(w), y, 1, r.mapColors.GridLineColor, false)
	}

	r.mapImage = img
	r.mapPath = append(r.mapPath[:0], snap.Path...)
}

func (r *GridRenderer) drawTower(screen *ebiten.Image, t app.TowerView) {
	x, y := r.offsetX+float32(t.X), r.offsetY+float32(t.Y)
	if t.Selected {
		vector.DrawFilledCircle(screen, x, y, float32(t.Range), r.unitColors.Range, true)
	}
	fill := LevelColor(t.Color, t.Level, r.maxLevel)
	vector.DrawFilledCircle(screen, x, y, config.TowerRadius, fill, true)
	vector.StrokeCircle(screen, x, y, config.TowerRadius, 2, r.unitColors.TowerStroke, true)
	if t.Level > 1 {
		r.DrawText(screen, strconv.Itoa(t.Level), float64(x)-3, float64(y)-6, DarkenColor(fill))
	}
}

func (r *GridRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	x, y := r.offsetX+float32(e.X), r.offsetY+float32(e.Y)
	fill := e.Color
	if e.Slowed {
		fill = Tint(fill, r.unitColors.SlowedTint, 0.6)
	}
	if e.Flashing {
		fill = Tint(fill, color.RGBA{255, 255, 255, 255}, 0.7)
	}
	radius := float32(e.Radius)
	vector.DrawFilledCircle(screen, x, y, radius, fill, true)

	// полоска здоровья над врагом
	barW := radius * 2
	barY := y - radius - 6
	vector.DrawFilledRect(screen, x-radius, barY, barW, 3, r.unitColors.HealthBarBack, false)
	vector.DrawFilledRect(screen, x-radius, barY, barW*float32(e.HealthFraction), 3, r.unitColors.HealthBarFront, false)
}

func (r *GridRenderer) drawProjectile(screen *ebiten.Image, p app.ProjectileView) {
	x, y := r.offsetX+float32(p.X), r.offsetY+float32(p.Y)
	clr := color.RGBA{255, 255, 255, 255}
	switch {
	case p.Slow:
		clr = r.unitColors.SlowedTint
	case p.Splash:
		clr = color.RGBA{255, 160, 60, 255}
	case p.Piercing:
		clr = color.RGBA{180, 120, 255, 255}
	}
	vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius, clr, true)
}

// DrawText draws s with its top-left corner at (x, y).
func (r *GridRenderer) DrawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, r.face, op)
}
