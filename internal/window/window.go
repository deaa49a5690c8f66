// Package window animates the fractal in a native raylib window.
package window

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/sierpinski/internal/anim"
	"github.com/san-kum/sierpinski/internal/clock"
	"github.com/san-kum/sierpinski/internal/fractal"
	"github.com/san-kum/sierpinski/internal/geom"
	"github.com/san-kum/sierpinski/internal/logging"
	"github.com/san-kum/sierpinski/internal/render"
)

var (
	colBg   = rl.NewColor(10, 10, 10, 255)
	colText = rl.NewColor(140, 140, 140, 255)
)

// Options configures the window.
type Options struct {
	Width, Height int
	Session       fractal.Options
	TargetFPS     int
}

type app struct {
	batch   *render.Batch
	host    *anim.LoopHost
	session *fractal.Session
	target  rl.RenderTexture2D
	loaded  bool
}

func initWindow(o Options) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi)
	rl.InitWindow(int32(o.Width), int32(o.Height), "sierpinski")
	rl.SetTargetFPS(int32(o.TargetFPS))
	rl.SetExitKey(0)
}

// Run opens the window and blocks until it is closed.
func Run(o Options) error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("window: invalid size %dx%d", o.Width, o.Height)
	}
	if o.TargetFPS <= 0 {
		o.TargetFPS = 60
	}
	initWindow(o)
	defer rl.CloseWindow()

	scale := float64(rl.GetWindowScaleDPI().X)
	a := &app{
		batch: render.NewBatch(o.Width, o.Height, scale),
		host:  anim.NewLoopHost(),
	}
	a.session = fractal.NewSession(a.batch, a.host, clock.Real(), o.Session)
	a.session.Start()
	defer a.session.Close()
	defer a.unload()

	logging.Logger().Info("window opened", "width", o.Width, "height", o.Height, "scale", scale)
	for !rl.WindowShouldClose() {
		if !a.update() {
			break
		}
		a.draw()
	}
	return nil
}

func (a *app) update() bool {
	if rl.IsWindowResized() {
		a.restart()
	}
	switch {
	case rl.IsKeyPressed(rl.KeyQ), rl.IsKeyPressed(rl.KeyEscape):
		return false
	case rl.IsKeyPressed(rl.KeySpace):
		if a.session.State() == anim.Running {
			a.session.Pause()
		} else {
			a.session.Resume()
		}
	case rl.IsKeyPressed(rl.KeyR):
		a.restart()
	}
	a.host.Poll()
	a.flush()
	return true
}

func (a *app) restart() {
	if err := a.session.Restart(rl.GetScreenWidth(), rl.GetScreenHeight()); err != nil {
		logging.Logger().Warn("restart failed", "err", err)
	}
}

// flush draws queued polygons into the persistent render texture.
func (a *app) flush() {
	polys, resized, w, h := a.batch.Drain()
	if resized || !a.loaded {
		a.unload()
		a.target = rl.LoadRenderTexture(int32(w), int32(h))
		a.loaded = true
		rl.BeginTextureMode(a.target)
		rl.ClearBackground(rl.Blank)
		rl.EndTextureMode()
	}
	if len(polys) == 0 {
		return
	}
	rl.BeginTextureMode(a.target)
	for _, p := range polys {
		if len(p.Points) != 3 {
			continue
		}
		v0, v1, v2 := counterClockwise(p.Points[0], p.Points[1], p.Points[2])
		rl.DrawTriangle(v0, v1, v2, toColor(p.Style))
	}
	rl.EndTextureMode()
}

func (a *app) unload() {
	if a.loaded {
		rl.UnloadRenderTexture(a.target)
		a.loaded = false
	}
}

func (a *app) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	if a.loaded {
		tex := a.target.Texture
		// Render textures are stored bottom-up.
		src := rl.NewRectangle(0, 0, float32(tex.Width), -float32(tex.Height))
		dst := rl.NewRectangle(0, 0, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
		rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
	}

	state := a.session.State().String()
	if a.session.Done() {
		state = "done"
	}
	hud := fmt.Sprintf("gen %d  drawn %d  %s", a.session.Generation(), a.session.Drawn(), state)
	rl.DrawText(hud, 12, 12, 16, colText)

	rl.EndDrawing()
}

// counterClockwise orders the vertices the way raylib expects on screen,
// where y grows downwards.
func counterClockwise(p0, p1, p2 geom.Coordinate) (rl.Vector2, rl.Vector2, rl.Vector2) {
	if cross(p0, p1, p2) > 0 {
		p1, p2 = p2, p1
	}
	return vec(p0), vec(p1), vec(p2)
}

func cross(a, b, c geom.Coordinate) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func vec(p geom.Coordinate) rl.Vector2 { return rl.NewVector2(float32(p.X), float32(p.Y)) }

func toColor(s render.FillStyle) rl.Color {
	return rl.NewColor(s.Color.R, s.Color.G, s.Color.B, s.Color.A)
}
