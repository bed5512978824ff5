// Package gui runs the lab in a desktop window.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/san-kum/physlab/internal/driver"
	"github.com/san-kum/physlab/internal/experiment"
	"github.com/san-kum/physlab/internal/kinematics"
	"github.com/san-kum/physlab/internal/render"
)

const (
	screenWidth = 400
	sceneHeight = 300
	hudHeight   = 96
	lineHeight  = 14
)

var (
	colBg      = color.RGBA{0xf7, 0xfa, 0xfc, 0xff}
	colHud     = color.RGBA{0x1a, 0x20, 0x2c, 0xff}
	colText    = color.RGBA{0xcb, 0xd5, 0xe0, 0xff}
	colTextDim = color.RGBA{0x71, 0x80, 0x96, 0xff}
	colSelect  = color.RGBA{0x9f, 0x7a, 0xea, 0xff}
)

type action int

const (
	actNone action = iota
	actQuit
	actPause
	actReset
	actNext
	actPrev
	actSliderUp
	actSliderDown
	actDecrease
	actIncrease
	actHelp
)

var bindings = []struct {
	key ebiten.Key
	act action
}{
	{ebiten.KeyQ, actQuit},
	{ebiten.KeyEscape, actQuit},
	{ebiten.KeySpace, actPause},
	{ebiten.KeyR, actReset},
	{ebiten.KeyTab, actNext},
	{ebiten.KeyBackspace, actPrev},
	{ebiten.KeyUp, actSliderUp},
	{ebiten.KeyDown, actSliderDown},
	{ebiten.KeyLeft, actDecrease},
	{ebiten.KeyRight, actIncrease},
	{ebiten.KeyH, actHelp},
}

var digits = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// App is an ebiten.Game. It schedules the driver's frames from Update
// and replays the recorded scene onto the window in Draw.
type App struct {
	registry *experiment.Registry
	names    []string
	current  int
	session  *experiment.Session
	handle   *driver.Handle
	frames   *frames
	face     text.Face

	incline  kinematics.InclineParams
	selected int
	showHelp bool

	// OnInclineChange is called after any incline slider moves.
	OnInclineChange func(kinematics.InclineParams)
}

func NewApp(scenario string, incline kinematics.InclineParams) (*App, error) {
	reg := experiment.NewRegistry()
	a := &App{
		registry: reg,
		names:    reg.List(),
		frames:   newFrames(),
		face:     text.NewGoXFace(basicfont.Face7x13),
		incline:  incline,
	}

	for i, n := range a.names {
		if n == scenario {
			return a, a.open(i)
		}
	}
	return nil, fmt.Errorf("%w: %s", experiment.ErrUnknownScenario, scenario)
}

func (a *App) Session() *experiment.Session { return a.session }

func (a *App) open(i int) error {
	if a.session != nil {
		a.handle.Stop()
		if a.session.Controls != nil {
			a.incline = a.session.Controls.Params()
		}
	}

	s, err := a.registry.Open(a.names[i], a.incline, nil)
	if err != nil {
		return err
	}
	if ctl := s.Controls; ctl != nil {
		notify := func(float64) {
			if a.OnInclineChange != nil {
				a.OnInclineChange(ctl.Params())
			}
		}
		ctl.Angle.OnChange(notify)
		ctl.Friction.OnChange(notify)
	}

	a.session = s
	a.current = i
	a.selected = 0
	a.handle = s.Runner.Start(a.frames)
	log.Debug("scenario opened", "scenario", a.names[i])
	return nil
}

func (a *App) Update() error {
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			if a.do(b.act) == actQuit {
				return ebiten.Termination
			}
		}
	}
	for i, k := range digits {
		if i < len(a.names) && inpututil.IsKeyJustPressed(k) {
			a.switchTo(i)
		}
	}
	a.frames.run(time.Now())
	return nil
}

// do applies one input action and returns it.
func (a *App) do(act action) action {
	runner := a.session.Runner
	switch act {
	case actQuit:
		a.handle.Stop()
	case actPause:
		if runner.Running() {
			a.handle.Stop()
		} else {
			a.handle = runner.Start(a.frames)
		}
	case actReset:
		runner.Reset()
	case actNext:
		a.switchTo((a.current + 1) % len(a.names))
	case actPrev:
		a.switchTo((a.current + len(a.names) - 1) % len(a.names))
	case actSliderUp:
		a.selectSlider(-1)
	case actSliderDown:
		a.selectSlider(1)
	case actDecrease:
		a.nudge(-1)
	case actIncrease:
		a.nudge(1)
	case actHelp:
		a.showHelp = !a.showHelp
	}
	return act
}

func (a *App) switchTo(i int) {
	if i == a.current {
		return
	}
	if err := a.open(i); err != nil {
		log.Warn("switch scenario", "scenario", a.names[i], "err", err)
	}
}

func (a *App) selectSlider(dir int) {
	if a.session.Controls == nil {
		return
	}
	n := len(a.session.Controls.Sliders())
	a.selected = (a.selected + dir + n) % n
}

func (a *App) nudge(n int) {
	if a.session.Controls == nil {
		return
	}
	a.session.Controls.Sliders()[a.selected].Nudge(n)
}

func (a *App) Draw(screen *ebiten.Image) {
	runner := a.session.Runner
	if f, ok := runner.Surface().(*render.Frame); ok {
		f.Replay(&canvas{dst: screen, bg: colBg})
	}

	y := float64(sceneHeight)
	fillRect(screen, 0, float32(y), screenWidth, hudHeight, colHud)

	status := "running"
	if !runner.Running() {
		status = "paused"
	}
	a.print(screen, fmt.Sprintf("%s  %s  tick %d", strings.ToUpper(runner.Name()), status, runner.Ticks()), 8, y+4, colText)
	y += lineHeight + 4

	for _, line := range a.session.Readout() {
		a.print(screen, line, 8, y, colTextDim)
		y += lineHeight
	}

	if ctl := a.session.Controls; ctl != nil {
		for i, s := range ctl.Sliders() {
			c := colTextDim
			if i == a.selected {
				c = colSelect
			}
			a.print(screen, s.String(), 220, float64(sceneHeight)+4+lineHeight*float64(i+1)+4, c)
		}
	}

	if a.showHelp {
		a.print(screen, "space pause  r reset  tab/1-3 scenario  up/down/left/right sliders  q quit", 8, float64(sceneHeight+hudHeight-lineHeight-2), colText)
	} else {
		a.print(screen, "h help", 8, float64(sceneHeight+hudHeight-lineHeight-2), colTextDim)
	}
}

func (a *App) print(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, a.face, op)
}

func (a *App) Layout(_, _ int) (int, int) {
	return screenWidth, sceneHeight + hudHeight
}

// Run opens the window and blocks until it is closed. Incline slider
// values are restored from and saved to prefs.
func Run(scenario string, prefs *Prefs) error {
	app, err := NewApp(scenario, prefs.Incline(kinematics.DefaultInclineParams()))
	if err != nil {
		return err
	}
	app.OnInclineChange = prefs.SaveIncline

	ebiten.SetWindowSize(screenWidth*2, (sceneHeight+hudHeight)*2)
	ebiten.SetWindowTitle("physlab")
	ebiten.SetTPS(driver.DefaultFPS)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
