// Package tui renders a live view of a running relaxation.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/jdf43/pele/internal/landscape"
	"github.com/jdf43/pele/internal/optim"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type stepMsg struct {
	iter    int
	energy  float64
	gradRMS float64
}

type doneMsg struct {
	result *optim.Result
	err    error
}

type model struct {
	name    string
	iter    int
	energy  float64
	gradRMS float64
	history []float64
	done    bool
	err     error
	result  *optim.Result
	cancel  context.CancelFunc
	width   int
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case stepMsg:
		m.iter = msg.iter
		m.energy = msg.energy
		m.gradRMS = msg.gradRMS
		m.history = append(m.history, msg.energy)
		if len(m.history) > 512 {
			m.history = m.history[len(m.history)-512:]
		}
	case doneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("relaxing "+m.name) + "\n\n")

	if len(m.history) > 1 {
		width := m.width - 12
		if width < 20 {
			width = 60
		}
		b.WriteString(asciigraph.Plot(m.history,
			asciigraph.Height(10),
			asciigraph.Width(width),
			asciigraph.Caption("energy"),
		))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%s %s   %s %s   %s %s\n",
		dim.Render("iter"), white.Render(fmt.Sprintf("%d", m.iter)),
		dim.Render("energy"), yellow.Render(fmt.Sprintf("%.8g", m.energy)),
		dim.Render("|grad|"), white.Render(fmt.Sprintf("%.3e", m.gradRMS)),
	))

	if m.done {
		if m.err != nil {
			b.WriteString(red.Render("stopped: "+m.err.Error()) + "\n")
		} else if m.result != nil && m.result.Converged {
			b.WriteString(green.Render("converged") + "\n")
		} else {
			b.WriteString(yellow.Render("iteration limit reached") + "\n")
		}
	} else {
		b.WriteString(dim.Render("q to cancel") + "\n")
	}

	return b.String()
}

// RunRelax minimizes pot from x0 while rendering live progress. It returns
// the minimizer result, which is partial if the user canceled.
func RunRelax(name string, pot landscape.Potential, x0 landscape.Coords, fire *optim.FIRE) (*optim.Result, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(model{name: name, cancel: cancel})

	prev := fire.OnStep
	fire.OnStep = func(iter int, energy, gradRMS float64) {
		if prev != nil {
			prev(iter, energy, gradRMS)
		}
		p.Send(stepMsg{iter: iter, energy: energy, gradRMS: gradRMS})
	}

	go func() {
		res, err := fire.Run(ctx, pot, x0)
		p.Send(doneMsg{result: res, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := final.(model)
	if m.err != nil && !errors.Is(m.err, context.Canceled) {
		return m.result, m.err
	}
	return m.result, nil
}
