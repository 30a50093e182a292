package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/diskbox/internal/body"
	"github.com/san-kum/diskbox/internal/config"
	"github.com/san-kum/diskbox/internal/physics"
	"github.com/san-kum/diskbox/internal/vec"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColAccent  = rl.NewColor(180, 180, 180, 255) // Soft White
	ColSelect  = rl.NewColor(255, 255, 255, 255) // Bright White
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
	ColVector  = rl.NewColor(230, 230, 80, 255)  // Velocity arrows
)

// App is the interactive raylib sandbox. The physics world ticks at a
// fixed dt driven by an accumulator over the variable frame time; input
// (drag, spawn, config keys) runs once per frame.
type App struct {
	World *physics.World
	Cfg   *config.Config

	Dragged     body.ID
	Dragging    bool
	ShowVectors bool
	Paused      bool
	Removed     int

	accumulator float64
}

func initWindow(cfg *config.Config) {
	rl.InitWindow(int32(cfg.WindowWidth), int32(cfg.WindowHeight), "diskbox")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// NewApp builds the sandbox around a world configured from cfg.
func NewApp(cfg *config.Config) *App {
	w := physics.NewWorld(cfg.PhysicsConfig(), cfg.Bounds(), cfg.DiskRadius)

	a := &App{
		World:       w,
		Cfg:         cfg,
		Dragged:     body.None,
		ShowVectors: true,
	}
	w.OnRemove = func(id body.ID) { a.Removed++ }
	return a
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) {
	initWindow(cfg)
	defer rl.CloseWindow()
	app := NewApp(cfg)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// cursorWorld converts the mouse position into world coordinates
// (origin at window center, y up).
func (a *App) cursorWorld() vec.Vec2 {
	m := rl.GetMousePosition()
	return vec.New(
		float64(m.X)-float64(a.Cfg.WindowWidth)/2,
		float64(a.Cfg.WindowHeight)/2-float64(m.Y),
	)
}

// toScreen converts world coordinates back to screen pixels.
func (a *App) toScreen(p vec.Vec2) rl.Vector2 {
	return rl.NewVector2(
		float32(p.X+float64(a.Cfg.WindowWidth)/2),
		float32(float64(a.Cfg.WindowHeight)/2-p.Y),
	)
}

func (a *App) Update() {
	frame := float64(rl.GetFrameTime())

	a.handleKeys()
	a.handleMouse(frame)

	if a.Paused {
		return
	}

	// Fixed timestep with an accumulator; drag state written above is
	// consumed by the ticks below.
	a.accumulator += frame
	for a.accumulator >= a.Cfg.Dt {
		a.World.Step(a.Cfg.Dt)
		a.accumulator -= a.Cfg.Dt
	}
}

func (a *App) handleKeys() {
	cfg := a.World.Config()

	if rl.IsKeyPressed(rl.KeySpace) {
		a.World.Spawn(a.cursorWorld())
	}
	if rl.IsKeyPressed(rl.KeyR) {
		if id := a.World.PickBody(a.cursorWorld()); id != body.None {
			a.World.Despawn(id)
			if a.Dragging && id == a.Dragged {
				a.Dragging = false
				a.Dragged = body.None
			}
		}
	}
	if rl.IsKeyPressed(rl.KeyF) {
		cfg.FrictionEnabled = !cfg.FrictionEnabled
		a.World.SetConfig(cfg)
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		cfg.Restitution += 0.1
		a.World.SetConfig(cfg)
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		cfg.Restitution -= 0.1
		a.World.SetConfig(cfg)
	}
	if rl.IsKeyPressed(rl.KeyG) {
		if cfg.Gravity == vec.Zero {
			cfg.Gravity = vec.New(0, -980)
		} else {
			cfg.Gravity = vec.Zero
		}
		a.World.SetConfig(cfg)
	}
	if rl.IsKeyPressed(rl.KeyV) {
		a.ShowVectors = !a.ShowVectors
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.Paused = !a.Paused
	}
}

func (a *App) handleMouse(frame float64) {
	cursor := a.cursorWorld()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if id := a.World.PickBody(cursor); id != body.None {
			if a.World.BeginDrag(id, cursor) {
				a.Dragged = id
				a.Dragging = true
			}
		}
		return
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) && a.Dragging {
		a.World.UpdateDrag(a.Dragged, cursor, frame)
		return
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) && a.Dragging {
		a.World.EndDrag(a.Dragged)
		a.Dragged = body.None
		a.Dragging = false
	}
}
