package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/diskbox/internal/body"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawBodies()
	if a.ShowVectors {
		a.drawVelocityVectors()
	}
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) drawBodies() {
	a.World.Each(func(id body.ID, b *body.Body) {
		center := a.toScreen(b.Pos)
		col := ColAccent
		if a.Dragging && id == a.Dragged {
			col = ColSelect
		}
		rl.DrawCircleV(center, float32(b.Radius), col)
		rl.DrawCircleLines(int32(center.X), int32(center.Y), float32(b.Radius), ColTextDim)
	})
}

// drawVelocityVectors draws each body's velocity scaled down to arrow
// length, skipping near-stationary bodies.
func (a *App) drawVelocityVectors() {
	a.World.Each(func(id body.ID, b *body.Body) {
		if b.Vel.Length() <= 0.1 {
			return
		}
		from := a.toScreen(b.Pos)
		to := a.toScreen(b.Pos.Add(b.Vel.Scale(0.1)))
		rl.DrawLineV(from, to, ColVector)
	})
}

func (a *App) DrawHUD() {
	cfg := a.World.Config()
	p := a.World.Momentum()
	ke := a.World.KineticEnergy()

	kind := "PARTIAL"
	if cfg.Restitution >= 0.95 {
		kind = "ELASTIC"
	} else if cfg.Restitution <= 0.05 {
		kind = "INELASTIC"
	}
	friction := "OFF"
	if cfg.FrictionEnabled {
		friction = "ON"
	}
	gravity := "OFF"
	if cfg.Gravity.LengthSq() > 0 {
		gravity = "ON"
	}

	rl.DrawText("diskbox", 30, 30, 24, ColSelect)

	rl.DrawText(fmt.Sprintf("momentum (%.1f, %.1f)", p.X, p.Y), 30, 70, 18, ColText)
	rl.DrawText(fmt.Sprintf("kinetic energy %.1f", ke), 30, 92, 18, ColText)
	rl.DrawText(fmt.Sprintf("disks %d  removed %d", a.World.Len(), a.Removed), 30, 114, 18, ColText)
	rl.DrawText(fmt.Sprintf("friction %s  gravity %s", friction, gravity), 30, 136, 18, ColText)
	rl.DrawText(fmt.Sprintf("restitution %.1f (%s)", cfg.Restitution, kind), 30, 158, 18, ColText)

	if a.Paused {
		rl.DrawText("PAUSED", int32(a.Cfg.WindowWidth)-130, 30, 18, ColSelect)
	}

	rl.DrawText(
		"[SPACE] SPAWN  [R] REMOVE  [DRAG] THROW  [F] FRICTION  [G] GRAVITY  [UP/DOWN] RESTITUTION  [V] VECTORS  [P] PAUSE",
		30, int32(a.Cfg.WindowHeight)-40, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, int32(a.Cfg.WindowHeight)-64, 14, ColTextDim)
}
