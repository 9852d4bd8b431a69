// Package terminal plays the game on an ANSI terminal: a local tty or an SSH session.
package terminal

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/starfighter/internal/app"
	"github.com/tomz197/starfighter/internal/draw"
	"github.com/tomz197/starfighter/internal/input"
	"github.com/tomz197/starfighter/internal/loop"
	"github.com/tomz197/starfighter/internal/loop/config"
)

// Largest render area in cells; bigger terminals get a centered, framed arena.
const (
	maxTermWidth  = 160
	maxTermHeight = 60
)

// Options configures Run.
type Options struct {
	TermSizeFunc draw.TermSizeFunc  // Defaults to the size of os.Stdout
	Renderer     *lipgloss.Renderer // Defaults to a renderer writing to w
	Logger       *log.Logger
	Seed         int64
}

// client is one terminal's game loop.
type client struct {
	app          *app.App
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	writer       io.Writer
	stream       *input.Stream
	termSizeFunc draw.TermSizeFunc
	styles       styles
	prevScreen   loop.Screen
	running      bool
}

// Run plays until the player quits, the reader ends or ctx is cancelled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	c := newClient(r, w, opts)
	return c.run(ctx)
}

func newClient(r *bufio.Reader, w io.Writer, opts Options) *client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.NewRenderer(w)
	}

	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, config.ArenaWidth, config.ArenaHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	a := app.New(app.Options{Seed: opts.Seed, Logger: opts.Logger})
	c := &client{
		app:          a,
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		writer:       w,
		stream:       input.StartStream(r),
		termSizeFunc: termSizeFunc,
		styles:       newStyles(renderer),
		prevScreen:   -1,
		running:      true,
	}
	// Keys held on one screen must not leak into the next.
	a.Machine.OnChange(func(loop.Screen) { c.stream.Reset() })
	return c
}

func (c *client) run(ctx context.Context) error {
	draw.HideCursor(c.writer)
	defer draw.ShowCursor(c.writer)
	draw.ClearScreen(c.writer)

	c.app.Start()
	lastTime := time.Now()

	for c.running {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		select {
		case <-ctx.Done():
			c.running = false
			continue
		default:
		}

		c.processInput(frameStart)
		c.updateScreen()
		c.app.Frame(delta)

		if err := c.drawFrame(); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(c.writer)
	return nil
}

// processInput reads pending bytes and routes them: held keys while playing,
// key presses for menu navigation everywhere else.
func (c *client) processInput(now time.Time) {
	f := c.stream.Read(now)
	if c.stream.Closed() {
		c.running = false
	}
	for _, k := range f.Pressed {
		if k == input.KeyQuit {
			c.running = false
			return
		}
	}

	if c.app.Screen() == loop.ScreenPlaying {
		f.Apply(c.app.Input)
		return
	}
	for _, k := range f.Pressed {
		c.app.Key(k, true)
	}
}

// updateScreen follows terminal resizes, clearing leftovers when the area moves.
func (c *client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.ClearScreen(c.writer)
	}
	c.canvas.Resize(renderWidth, renderHeight)
	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize limits the render area and centers it in the terminal.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(termWidth, maxTermWidth)
	renderHeight = min(termHeight, maxTermHeight)
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
