package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/rdsim/internal/metrics"
	"github.com/san-kum/rdsim/internal/rd"
	"github.com/san-kum/rdsim/internal/stepper"
)

const (
	graphWidth  = 72
	graphHeight = 14
)

type TickMsg time.Time

// Live is a bubbletea model that advances the simulation a few steps per
// frame and renders both profiles.
type Live struct {
	st            *stepper.Stepper
	u, v          rd.Field
	u0, v0        rd.Field
	step          int
	stepsPerFrame int
	fps           int
	initialMass   float64
	running       bool
	err           error
}

func NewLive(st *stepper.Stepper, u0, v0 rd.Field, fps, stepsPerFrame int) Live {
	if fps <= 0 {
		fps = 30
	}
	if stepsPerFrame <= 0 {
		stepsPerFrame = 1
	}
	return Live{
		st:            st,
		u:             u0.Clone(),
		v:             v0.Clone(),
		u0:            u0.Clone(),
		v0:            v0.Clone(),
		stepsPerFrame: stepsPerFrame,
		fps:           fps,
		initialMass:   metrics.Mass(u0, v0, st.Grid().Dx),
		running:       true,
	}
}

func (m Live) Init() tea.Cmd {
	return m.tick()
}

func (m Live) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.u, m.v = m.u0.Clone(), m.v0.Clone()
			m.step = 0
			m.err = nil
			m.running = true
		}
		return m, nil
	case TickMsg:
		if m.running && m.err == nil {
			for i := 0; i < m.stepsPerFrame && m.step < m.st.Grid().Steps-1; i++ {
				u, v, err := m.st.Step(m.u, m.v)
				if err != nil {
					m.err = &rd.StepError{Step: m.step + 1, Scheme: m.st.Scheme(), Wrapped: err}
					break
				}
				m.u, m.v = u, v
				m.step++
			}
			if m.step >= m.st.Grid().Steps-1 {
				m.running = false
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Live) View() string {
	g := m.st.Grid()
	mass := metrics.Mass(m.u, m.v, g.Dx)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("rdsim · %s reaction scheme", m.st.Scheme())))
	b.WriteString("\n")
	b.WriteString(graphStyle.Render(Profiles(m.u, m.v, graphWidth, graphHeight)))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	row("step", fmt.Sprintf("%d / %d", m.step, g.Steps-1))
	row("time", fmt.Sprintf("%.2f", float64(m.step)*g.Dt))
	row("mass", fmt.Sprintf("%.12f", mass))
	row("drift", fmt.Sprintf("%.3e", mass-m.initialMass))

	if m.err != nil {
		b.WriteString(warnStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("space pause · r reset · q quit"))
	return b.String()
}
