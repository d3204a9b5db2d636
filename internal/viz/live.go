package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/beerslab/internal/concentration"
	"github.com/san-kum/beerslab/internal/geom"
)

const (
	canvasWidth     = 60
	canvasHeight    = 22
	historyCapacity = 300
	shakeOffset     = 15.0
)

// probeInSolution is where the meter probe is dropped by the probe key.
var probeInSolution = geom.V(350, 500)

type TickMsg time.Time

// Live is the bubbletea model of the interactive concentration screen. Keys
// hold devices on the way a user holds a slider or button.
type Live struct {
	model     *concentration.Model
	dt        float64
	frameRate int
	t         float64

	running  bool
	showHelp bool
	err      error

	solvent, drain, evaporate bool
	shaking                   bool
	shakePhase                int
	shakeOrigin               geom.Vec2

	canvas  *Canvas
	scene   *Scene
	theme   Theme
	styles  Styles
	history []float64
}

func NewLive(m *concentration.Model, dt float64, frameRate int) Live {
	if frameRate <= 0 {
		frameRate = 25
	}
	canvas := NewCanvas(canvasWidth, canvasHeight)
	return Live{
		model:     m,
		dt:        dt,
		frameRate: frameRate,
		running:   true,
		canvas:    canvas,
		scene:     NewScene(canvas),
		theme:     ThemeLab,
		styles:    NewStyles(ThemeLab),
		history:   make([]float64, 0, historyCapacity),
	}
}

func (l Live) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(l.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (l Live) Init() tea.Cmd { return l.tick() }

func (l Live) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return l.handleKey(msg.String())
	case TickMsg:
		if l.running {
			l.step()
		}
		return l, l.tick()
	}
	return l, nil
}

func (l Live) handleKey(key string) (tea.Model, tea.Cmd) {
	m := l.model
	switch key {
	case "q", "ctrl+c":
		return l, tea.Quit
	case " ":
		l.running = !l.running
	case "r":
		l.reset()
	case "w":
		l.solvent = !l.solvent
		if !l.solvent {
			m.SolventFaucet.Close()
		}
	case "d":
		l.drain = !l.drain
		if !l.drain {
			m.DrainFaucet.Close()
		}
	case "e":
		l.evaporate = !l.evaporate
		if !l.evaporate {
			m.Evaporator.EvaporationRate.Set(0)
		}
	case "p":
		m.Dropper.Dispensing.Set(!m.Dropper.Dispensing.Get())
	case "s":
		l.shaking = !l.shaking
		l.shakeOrigin = m.Shaker.Location.Get()
	case "n":
		l.nextSolute()
	case "f":
		if m.SoluteForm.Get() == concentration.Solid {
			m.SoluteForm.Set(concentration.StockSolution)
		} else {
			m.SoluteForm.Set(concentration.Solid)
		}
	case "m":
		if m.Meter.Value.Get() == nil {
			m.Meter.Probe.MoveTo(probeInSolution)
		} else {
			m.Meter.Probe.Reset()
		}
	case "u":
		if m.Meter.Units.Get() == concentration.Molar {
			m.Meter.Units.Set(concentration.Percent)
		} else {
			m.Meter.Units.Set(concentration.Molar)
		}
	case "t":
		l.theme = nextTheme(l.theme)
		l.styles = NewStyles(l.theme)
	case "?":
		l.showHelp = !l.showHelp
	}
	return l, nil
}

func (l *Live) nextSolute() {
	m := l.model
	current := m.Solute.Get()
	for i, s := range m.Solutes {
		if s == current {
			l.err = m.SelectSolute(m.Solutes[(i+1)%len(m.Solutes)])
			return
		}
	}
}

// step re-applies held inputs and advances the model one frame.
func (l *Live) step() {
	m := l.model
	if l.solvent {
		m.SolventFaucet.Open(1)
	}
	if l.drain {
		m.DrainFaucet.Open(1)
	}
	if l.evaporate {
		m.Evaporator.EvaporationRate.Set(m.Evaporator.MaxEvaporationRate)
	}
	if l.shaking {
		offset := shakeOffset
		if l.shakePhase%2 == 1 {
			offset = -offset
		}
		l.shakePhase++
		m.Shaker.Shake(l.shakeOrigin.Add(geom.V(offset, 0)))
	}

	if err := m.Step(l.dt); err != nil {
		l.err = err
		l.running = false
		return
	}
	l.t += l.dt
	l.history = append(l.history, m.Solution.Concentration.Get())
	if len(l.history) > historyCapacity {
		l.history = l.history[1:]
	}
}

func (l *Live) reset() {
	l.model.Reset()
	l.t = 0
	l.err = nil
	l.solvent, l.drain, l.evaporate, l.shaking = false, false, false, false
	l.history = l.history[:0]
}

func (l Live) View() string {
	l.scene.Draw(l.model)
	canvasView := lipgloss.NewStyle().Padding(1, 2).Render(l.canvas.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, l.styles.Panel.Render(l.panel()))
	if l.showHelp {
		return l.styles.Help.Render(helpText) + "\n" + mainView
	}
	return mainView
}

func (l Live) panel() string {
	m := l.model
	st := l.styles
	sol := m.Solution
	var s strings.Builder

	s.WriteString(st.Title.Render(strings.ToUpper(m.Solute.Get().Name)) + "\n")
	status := st.Running.Render("RUNNING")
	if !l.running {
		status = st.Paused.Render("PAUSED")
	}
	fmt.Fprintf(&s, "%s  t=%.1fs  %s\n\n", status, l.t, Swatch(sol.Color.Get(), 4))

	row := func(label, value string) {
		s.WriteString(st.Label.Render(label) + st.Value.Render(value) + "\n")
	}
	volRange := m.Options().VolumeRange
	amountRange := m.Options().SoluteAmountRange
	row("Volume", fmt.Sprintf("%s %.3f L", Gauge(volRange.Normalize(sol.Volume.Get()), 12), sol.Volume.Get()))
	row("Solute", fmt.Sprintf("%s %.3f mol", Gauge(amountRange.Normalize(sol.SoluteAmount.Get()), 12), sol.SoluteAmount.Get()))
	row("Concentration", fmt.Sprintf("%.3f mol/L", sol.Concentration.Get()))
	row("Percent", fmt.Sprintf("%.2f %%", sol.PercentConcentration.Get()))
	saturated := "no"
	if sol.Saturated.Get() {
		saturated = st.Active.Render(fmt.Sprintf("yes (%d particles)", m.Precipitate.Len()))
	}
	row("Saturated", saturated)
	row("Form", string(m.SoluteForm.Get()))
	row("Meter", l.meterReading())
	row("Faucets", fmt.Sprintf("in %.2f  out %.2f L/s", m.SolventFaucet.FlowRate.Get(), m.DrainFaucet.FlowRate.Get()))
	row("Dropper/evap", fmt.Sprintf("%.2f / %.2f L/s", m.Dropper.FlowRate.Get(), m.Evaporator.EvaporationRate.Get()))

	if len(l.history) > 1 {
		chart := asciigraph.Plot(l.history, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("concentration (mol/L)"))
		s.WriteString("\n" + st.Graph.Render(chart) + "\n")
	}
	if l.err != nil {
		s.WriteString("\n" + st.Paused.Render(l.err.Error()) + "\n")
	}
	s.WriteString(st.Help.Render("W:water D:drain E:evap P:drop S:shake\nN:solute F:form M:probe U:units\nSP:pause R:reset T:theme ?:help Q:quit"))
	return s.String()
}

func (l Live) meterReading() string {
	v := l.model.Meter.Value.Get()
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.3f %s", *v, l.model.Meter.Units.Get())
}

const helpText = `W  solvent faucet on/off     D  drain faucet on/off
E  evaporator on/off         P  dropper on/off
S  shake the shaker          N  next solute
F  solid / stock solution    M  probe in/out of the beaker
U  meter units               T  cycle themes
SP pause                     R  reset                 Q  quit`

// RunLive runs the live view until the user quits.
func RunLive(m *concentration.Model, dt float64, frameRate int) error {
	_, err := tea.NewProgram(NewLive(m, dt, frameRate), tea.WithAltScreen()).Run()
	return err
}
