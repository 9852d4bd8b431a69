package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/starfighter/internal/draw"
	"github.com/tomz197/starfighter/internal/loop"
	"github.com/tomz197/starfighter/internal/loop/config"
	"github.com/tomz197/starfighter/internal/ui"
)

const title = "S T A R F I G H T E R"

type styles struct {
	title   lipgloss.Style
	faded   lipgloss.Style
	label   lipgloss.Style
	focused lipgloss.Style
	score   lipgloss.Style
	hint    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		faded:   r.NewStyle().Faint(true).Foreground(lipgloss.Color("214")),
		label:   r.NewStyle().Foreground(lipgloss.Color("250")),
		focused: r.NewStyle().Bold(true).Foreground(lipgloss.Color("231")),
		score:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		hint:    r.NewStyle().Faint(true),
	}
}

// drawFrame rasterizes the scene and writes the text overlay on top.
func (c *client) drawFrame() error {
	if screen := c.app.Screen(); screen != c.prevScreen {
		c.chunkWriter.WriteString("\033[H\033[2J")
		c.prevScreen = screen
	}

	c.canvas.Clear()
	draw.DrawScene(c.canvas, c.app.Scene)
	c.canvas.Render(c.chunkWriter)
	c.canvas.RenderBorder(c.chunkWriter)
	c.drawText()

	return c.chunkWriter.Flush()
}

func (c *client) drawText() {
	if logo := c.app.Machine.Logo(); logo != nil && logo.Opacity > 0 {
		style := c.styles.title
		if logo.Opacity < 0.5 {
			style = c.styles.faded
		}
		c.writeCentered(logo.X, logo.Y, style.Render(title))
	}

	focused := c.app.Menu.Focused()
	for _, el := range c.app.Machine.Elements() {
		w, ok := el.(ui.Widget)
		if !ok {
			continue
		}
		style := c.styles.label
		if el == focused {
			style = c.styles.focused
		}
		box := w.Face()
		c.writeCentered(box.X+box.W/2, box.Y+box.H/2, style.Render(w.Caption()))
	}

	if c.app.Scene.Contains(c.app.Score) {
		col, row := c.canvas.LogicalToTerminal(config.ScoreTextX, config.ScoreTextY)
		c.chunkWriter.WriteAt(col, row, c.styles.score.Render(c.app.ScoreText()))
	}
	if c.app.Screen() == loop.ScreenMenu {
		hint := "arrows/wasd move  enter select  q quit"
		c.writeCentered(config.ArenaWidth/2, config.ArenaHeight-10, c.styles.hint.Render(hint))
	}
}

// writeCentered writes styled text centered on an arena point.
func (c *client) writeCentered(x, y float64, styled string) {
	col, row := c.canvas.LogicalToTerminal(x, y)
	col -= lipgloss.Width(styled) / 2
	if col < 1 {
		col = 1
	}
	c.chunkWriter.WriteAt(col, row, styled)
}
