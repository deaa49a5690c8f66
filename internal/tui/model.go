// Package tui animates the fractal on a braille canvas inside a Bubble Tea
// program.
//
// Key bindings:
//
//	space  pause or resume
//	r      restart
//	t      cycle status themes
//	q      quit
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sierpinski/internal/anim"
	"github.com/san-kum/sierpinski/internal/clock"
	"github.com/san-kum/sierpinski/internal/fractal"
	"github.com/san-kum/sierpinski/internal/geom"
	"github.com/san-kum/sierpinski/internal/logging"
	"github.com/san-kum/sierpinski/internal/render"
)

// statusRows is the height of the panel under the canvas.
const statusRows = 3

// Options configures the live view.
type Options struct {
	Session fractal.Options
	Refresh time.Duration
	Clock   clock.Clock
	Theme   string
}

// Model is the Bubble Tea model of the live view.
type Model struct {
	host    *frameHost
	canvas  *render.Braille
	session *fractal.Session
	opts    Options

	theme   int
	styles  styles
	sized   bool
	width   int
	height  int
	total   int
	history []int
	err     error
}

// New creates the model. The session starts on the first window size
// message.
func New(opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	m := &Model{
		host:   newFrameHost(opts.Refresh),
		canvas: render.NewBraille(0, 0, opts.Session.Foreground),
		opts:   opts,
	}
	for i, t := range Themes {
		if t.Name == GetTheme(opts.Theme).Name {
			m.theme = i
		}
	}
	m.styles = newStyles(Themes[m.theme])
	m.session = fractal.NewSession(m.canvas, m.host, opts.Clock, opts.Session)
	m.session.OnGeneration = func(_, frontier int) {
		m.history = append(m.history, frontier)
	}
	return m
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.restart()
		return m, m.host.cmd()
	case frameMsg:
		m.host.deliver(msg.id)
		return m, m.host.cmd()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.session.Close()
		return m, tea.Quit
	case " ":
		if m.session.State() == anim.Running {
			m.session.Pause()
		} else {
			m.session.Resume()
		}
	case "r":
		if m.sized {
			m.restart()
		}
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
		m.styles = newStyles(Themes[m.theme])
	}
	return m, m.host.cmd()
}

func (m *Model) restart() {
	w, h := m.canvasSize()
	m.history = m.history[:0]
	if err := m.session.Restart(w, h); err != nil {
		m.err = err
		logging.Logger().Warn("restart failed", "err", err)
		return
	}
	m.err = nil
	m.sized = true
	m.total = geom.Generations(m.session.Root(), m.canvas.PixelScale())
}

func (m *Model) canvasSize() (int, int) {
	return max(m.width, 0), max(m.height-statusRows, 0)
}

func (m *Model) View() string {
	if !m.sized {
		return "waiting for terminal size...\n"
	}
	return m.canvas.Styled() + m.status()
}

func (m *Model) status() string {
	s := m.styles
	gen := m.session.Generation()

	var state string
	switch {
	case m.session.Done():
		state = s.done.Render("done")
	case m.session.State() == anim.Running:
		state = s.running.Render("running")
	default:
		state = s.paused.Render("paused")
	}

	line := strings.Join([]string{
		s.title.Render("sierpinski"),
		state,
		s.label.Render("gen ") + s.value.Render(fmt.Sprintf("%d/%d", gen, m.total)),
		s.label.Render("frontier ") + s.value.Render(fmt.Sprint(len(m.session.Frontier()))),
		s.label.Render("drawn ") + s.value.Render(fmt.Sprint(m.session.Drawn())),
		progressBar(gen, m.total, 12),
		sparkline(m.history),
	}, "  ")
	hint := s.hint.Render("space pause · r restart · t theme · q quit")
	if m.err != nil {
		hint = s.paused.Render(m.err.Error())
	}
	return s.panel.Width(m.width).Render(line + "\n" + hint)
}

// Run starts the live view in the alternate screen and blocks until the
// user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
