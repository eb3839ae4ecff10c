package ui

import (
	"context"
	"log/slog"
	"time"

	"CurveBoard/internal/camera"
	"CurveBoard/internal/config"
	"CurveBoard/internal/frame"
	"CurveBoard/internal/spline"
	"CurveBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Editor wires the curve engine into a fyne window.
type Editor struct {
	app    fyne.App
	window fyne.Window
	board  *BoardWidget
	camera *camera.Camera
	engine *frame.Engine

	status  *widget.Label
	message *widget.Label
	legend  map[spline.Kind]*legendEntry

	cfg     config.Config
	log     *slog.Logger
	scratch frame.DrawList
}

func NewEditor(a fyne.App, cfg config.Config, log *slog.Logger) *Editor {
	if log == nil {
		log = slog.Default()
	}
	cam := camera.New()
	board := NewBoardWidget(cam, cfg.Keys.Remove)
	store := state.NewStore(cfg.PointStyle(), log)

	e := &Editor{
		app:     a,
		window:  a.NewWindow(cfg.Window.Title),
		board:   board,
		camera:  cam,
		engine:  frame.NewEngine(store, cam, board, log),
		status:  widget.NewLabel("Ready"),
		message: widget.NewLabel(""),
		legend:  make(map[spline.Kind]*legendEntry),
		cfg:     cfg,
		log:     log.With("component", "ui"),
	}
	e.engine.SetColors(cfg.CurveColors())
	for _, k := range spline.Kinds {
		e.engine.SetVisible(k, cfg.CurveVisible(k))
	}
	board.SetAppearance(cfg.Background(), cfg.Curves.LineWidth)

	toolbar := e.newToolbar()
	footer := container.NewHBox(e.status, layout.NewSpacer(), e.message)
	e.window.SetContent(container.NewBorder(toolbar, footer, nil, nil, board))
	e.window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	if dc, ok := e.window.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(board.KeyDown)
	} else {
		e.window.Canvas().SetOnTypedKey(board.KeyDown)
	}
	return e
}

// Run shows the window and drives frames until the window is closed or
// ctx is cancelled. A non-empty configPath is watched for live changes.
func (e *Editor) Run(ctx context.Context, configPath string) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	e.window.SetOnClosed(cancel)

	if configPath != "" {
		err := config.Watch(ctx, configPath, e.log, func(cfg config.Config) {
			fyne.Do(func() { e.ApplyConfig(cfg) })
		})
		if err != nil {
			e.log.Warn("config reload disabled", "err", err)
		}
	}

	go e.loop(ctx, e.cfg.Window.FPS)
	go func() {
		<-ctx.Done()
		fyne.Do(e.app.Quit)
	}()

	e.log.Info("editor started", "fps", e.cfg.Window.FPS)
	e.window.ShowAndRun()
}

func (e *Editor) loop(ctx context.Context, fps int) {
	t := time.NewTicker(time.Second / time.Duration(fps))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			// Waiting keeps ticks from piling up behind a slow frame.
			fyne.DoAndWait(e.tick)
		}
	}
}

// tick runs one engine frame. It must be called on the fyne goroutine.
func (e *Editor) tick() {
	e.scratch.Reset()
	e.engine.Tick(&e.scratch)
	e.board.ShowFrame(&e.scratch)

	if text := e.engine.Machine().Status(); text != e.status.Text {
		e.status.SetText(text)
	}
}

// ApplyConfig takes over a reloaded config. Window size and frame rate
// only apply at startup; existing points keep their style.
func (e *Editor) ApplyConfig(cfg config.Config) {
	e.cfg = cfg
	e.engine.Store().SetStyle(cfg.PointStyle())
	e.engine.SetColors(cfg.CurveColors())
	for kind, entry := range e.legend {
		entry.swatch.SetColor(cfg.CurveColors()[kind])
		entry.check.SetChecked(cfg.CurveVisible(kind))
	}
	e.board.SetRemoveKey(cfg.Keys.Remove)
	e.board.SetAppearance(cfg.Background(), cfg.Curves.LineWidth)
	e.setMessage("Config reloaded")
}

func (e *Editor) setMessage(text string) {
	e.message.SetText(text)
}
