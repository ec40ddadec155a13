// Command particles is an interactive viewer for linearfx effect
// presets.
//
// Usage:
//
//	go run ./cmd/particles [flags]
//
// Flags:
//
//	-config <path>   Preset file to load (default presets/effects.yaml)
//	-effect <name>   Start with a specific effect
//	-auto            Cycle through effects automatically every few seconds
//
// Controls:
//
//	Left/Right Arrow  - Previous/next effect
//	Space             - Restart the current effect
//	L                 - Toggle looping for the current effect
//	Mouse drag        - Orbit the camera
//	Q/Escape          - Quit
//
// The viewer remembers the last selected effect across runs.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/linearfx/pkg/config"
	"github.com/gonewx/linearfx/pkg/particles"
	"github.com/gonewx/linearfx/pkg/render"
)

const (
	screenWidth  = 1024
	screenHeight = 768

	autoCycleEvery = 4 * time.Second
	camSpeed       = 0.005
)

// Viewer state persisted through gdata.
const (
	stateObject   = "viewer"
	stateProperty = "last_effect"
)

var (
	configFlag = flag.String("config", "presets/effects.yaml", "preset file to load")
	effectFlag = flag.String("effect", "", "start with a specific effect name")
	autoFlag   = flag.Bool("auto", false, "cycle through effects automatically")
)

// ViewerGame implements ebiten.Game for the preset viewer.
type ViewerGame struct {
	cfg      *config.EffectsConfig
	renderer *render.Ebiten
	storage  *gdata.Manager

	names   []string
	systems map[string]particles.System
	current int
	looping bool

	lastFrame  time.Time
	frameDelta float32

	autoPlay   bool
	lastSwitch time.Time

	dragging bool
	lastX    int
	lastY    int

	status string
}

// NewViewerGame loads the preset file and builds every effect.
func NewViewerGame(path string) (*ViewerGame, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	cam := render.NewCamera(mgl32.Vec3{0, 1, 0}, 1.57, 0.2)
	renderer := render.New(cam, 500)

	g := &ViewerGame{
		cfg:        cfg,
		renderer:   renderer,
		names:      cfg.Names(),
		systems:    make(map[string]particles.System, len(cfg.Effects)),
		looping:    true,
		autoPlay:   *autoFlag,
		lastFrame:  time.Now(),
		lastSwitch: time.Now(),
	}

	deps := config.BuildDeps{
		Renderer: renderer,
		Delta:    func() float32 { return g.frameDelta },
	}
	for i := range cfg.Effects {
		e := &cfg.Effects[i]
		sys, err := e.Build(deps)
		if err != nil {
			return nil, fmt.Errorf("building effect %q: %w", e.Name, err)
		}
		g.systems[e.Name] = sys
	}

	storage, err := gdata.Open(gdata.Config{AppName: "linearfx-viewer"})
	if err != nil {
		// Not fatal: the viewer just forgets its state between runs.
		log.Printf("Warning: viewer state storage unavailable: %v", err)
	} else {
		g.storage = storage
	}

	g.selectStartEffect()
	g.startCurrent()
	return g, nil
}

// selectStartEffect resolves the initial effect: the -effect flag, the
// remembered one, or the first declared.
func (g *ViewerGame) selectStartEffect() {
	if *effectFlag != "" {
		if idx, ok := g.indexOf(*effectFlag); ok {
			g.current = idx
			return
		}
		log.Printf("Warning: effect %q not found in %s", *effectFlag, *configFlag)
	}
	if g.storage != nil && g.storage.ObjectPropExists(stateObject, stateProperty) {
		data, err := g.storage.LoadObjectProp(stateObject, stateProperty)
		if err == nil {
			if idx, ok := g.indexOf(string(data)); ok {
				g.current = idx
			}
		}
	}
}

func (g *ViewerGame) indexOf(name string) (int, bool) {
	for i, n := range g.names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

func (g *ViewerGame) currentSystem() particles.System {
	return g.systems[g.names[g.current]]
}

func (g *ViewerGame) startCurrent() {
	sys := g.currentSystem()
	var err error
	if g.looping {
		err = particles.StartLoop(sys)
	} else {
		err = particles.Start(sys)
	}
	if err != nil {
		// Report and continue; the effect simply stays inactive.
		g.status = fmt.Sprintf("%s: setup failed: %v", g.names[g.current], err)
		log.Printf("Effect %q setup failed: %v", g.names[g.current], err)
		return
	}
	g.status = g.names[g.current]
}

func (g *ViewerGame) switchEffect(step int) {
	particles.Stop(g.currentSystem())
	g.current = (g.current + step + len(g.names)) % len(g.names)
	g.startCurrent()
	g.lastSwitch = time.Now()
	g.saveState()
}

func (g *ViewerGame) saveState() {
	if g.storage == nil {
		return
	}
	name := g.names[g.current]
	if err := g.storage.SaveObjectProp(stateObject, stateProperty, []byte(name)); err != nil {
		log.Printf("Warning: failed to save viewer state: %v", err)
	}
}

// Update implements ebiten.Game.
func (g *ViewerGame) Update() error {
	now := time.Now()
	g.frameDelta = float32(now.Sub(g.lastFrame).Seconds())
	g.lastFrame = now

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.switchEffect(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.switchEffect(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.startCurrent()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.looping = !g.looping
		g.startCurrent()
	}

	g.updateCamera()

	if g.autoPlay && now.Sub(g.lastSwitch) > autoCycleEvery {
		g.switchEffect(1)
	}
	return nil
}

func (g *ViewerGame) updateCamera() {
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.renderer.Camera().Orbit(float32(x-g.lastX)*camSpeed, float32(g.lastY-y)*camSpeed)
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastX, g.lastY = x, y
}

// Draw implements ebiten.Game.
func (g *ViewerGame) Draw(screen *ebiten.Image) {
	g.renderer.Begin(screen)

	sys := g.currentSystem()
	if sys.IsActive() {
		if _, err := particles.Run(sys); err != nil && !errors.Is(err, particles.ErrNotReady) {
			g.status = fmt.Sprintf("%s: %v", g.names[g.current], err)
		}
	}

	mode := "once"
	if g.looping {
		mode = "loop"
	}
	msg := fmt.Sprintf("%s  [%d/%d, %s]\n<- -> switch  space restart  L loop  drag to look  Q quit",
		g.status, g.current+1, len(g.names), mode)
	ebitenutil.DebugPrint(screen, msg)
}

// Layout implements ebiten.Game.
func (g *ViewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	flag.Parse()

	game, err := NewViewerGame(*configFlag)
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("linearfx particles")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
