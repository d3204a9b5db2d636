package concentration

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/beerslab/internal/geom"
	"github.com/san-kum/beerslab/internal/reactive"
	"github.com/san-kum/beerslab/internal/solute"
)

// SoluteForm is how solute is added: solid from the shaker or stock
// solution from the dropper.
type SoluteForm string

const (
	Solid         SoluteForm = "solid"
	StockSolution SoluteForm = "solution"
)

const (
	MaxEvaporationRate      = 0.25 // L/s
	MaxFaucetFlowRate       = 0.25 // L/s
	DropperFlowRate         = 0.05 // L/s
	ShakerMaxDispensingRate = 0.2  // mol/s
)

var (
	VolumeRange       = Range{Min: 0, Max: 1, Default: 0.5} // L
	SoluteAmountRange = Range{Min: 0, Max: 6, Default: 0}   // mol
)

// Options tune a Model. The zero value of any field means its default.
type Options struct {
	Solutes                 []*solute.Solute
	VolumeRange             Range
	SoluteAmountRange       Range
	FaucetMaxFlowRate       float64
	DropperFlowRate         float64
	MaxEvaporationRate      float64
	ShakerMaxDispensingRate float64
	MaxShakerParticles      int
	Rand                    Rand
}

func DefaultOptions() Options {
	return Options{
		Solutes:                 solute.Catalog(),
		VolumeRange:             VolumeRange,
		SoluteAmountRange:       SoluteAmountRange,
		FaucetMaxFlowRate:       MaxFaucetFlowRate,
		DropperFlowRate:         DropperFlowRate,
		MaxEvaporationRate:      MaxEvaporationRate,
		ShakerMaxDispensingRate: ShakerMaxDispensingRate,
		MaxShakerParticles:      DefaultMaxParticles,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Solutes == nil {
		o.Solutes = d.Solutes
	}
	if o.VolumeRange == (Range{}) {
		o.VolumeRange = d.VolumeRange
	}
	if o.SoluteAmountRange == (Range{}) {
		o.SoluteAmountRange = d.SoluteAmountRange
	}
	if o.FaucetMaxFlowRate == 0 {
		o.FaucetMaxFlowRate = d.FaucetMaxFlowRate
	}
	if o.DropperFlowRate == 0 {
		o.DropperFlowRate = d.DropperFlowRate
	}
	if o.MaxEvaporationRate == 0 {
		o.MaxEvaporationRate = d.MaxEvaporationRate
	}
	if o.ShakerMaxDispensingRate == 0 {
		o.ShakerMaxDispensingRate = d.ShakerMaxDispensingRate
	}
	if o.MaxShakerParticles == 0 {
		o.MaxShakerParticles = d.MaxShakerParticles
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

func (o Options) Validate() error {
	if len(o.Solutes) == 0 {
		return ErrNoSolutes
	}
	if !o.VolumeRange.Valid() || o.VolumeRange.Min < 0 || o.VolumeRange.Max <= 0 {
		return fmt.Errorf("%w: volume range %+v", ErrInvalidOptions, o.VolumeRange)
	}
	if !o.SoluteAmountRange.Valid() || o.SoluteAmountRange.Min < 0 {
		return fmt.Errorf("%w: solute amount range %+v", ErrInvalidOptions, o.SoluteAmountRange)
	}
	for name, rate := range map[string]float64{
		"faucet flow rate":        o.FaucetMaxFlowRate,
		"dropper flow rate":       o.DropperFlowRate,
		"evaporation rate":        o.MaxEvaporationRate,
		"shaker dispensing rate":  o.ShakerMaxDispensingRate,
		"shaker particle maximum": float64(o.MaxShakerParticles),
	} {
		if rate < 0 {
			return fmt.Errorf("%w: negative %s", ErrInvalidOptions, name)
		}
	}
	return nil
}

// Model is the concentration screen.
type Model struct {
	Solutes    []*solute.Solute
	Solute     *reactive.Value[*solute.Solute]
	SoluteForm *reactive.Value[SoluteForm]

	Solution        *Solution
	Beaker          Beaker
	Precipitate     *Precipitate
	Shaker          *Shaker
	ShakerParticles *ShakerParticles
	Dropper         *Dropper
	Evaporator      *Evaporator
	SolventFaucet   *Faucet
	DrainFaucet     *Faucet
	Meter           *ConcentrationMeter

	opts Options
}

func NewModel(opts Options) (*Model, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m := &Model{
		Solutes:    append([]*solute.Solute(nil), opts.Solutes...),
		Solute:     reactive.NewValue(opts.Solutes[0]),
		SoluteForm: reactive.NewValue(Solid),
		opts:       opts,
	}
	// Subscribed ahead of the solution's derived values, so a solute change
	// empties the beaker before the precipitate sees the new saturation.
	m.Solute.LazyLink(func(*solute.Solute) { m.Solution.SoluteAmount.Set(0) })

	m.Solution = NewSolution(m.Solute, opts.SoluteAmountRange, opts.VolumeRange)
	m.Beaker = NewBeaker(geom.V(350, 550), 600, 300, opts.VolumeRange.Max)
	m.Precipitate = NewPrecipitate(m.Solution, m.Beaker, opts.Rand)
	m.Shaker = NewShaker(geom.V(m.Beaker.Location.X, 170), geom.Bounds2{MinX: 250, MinY: 50, MaxX: 575, MaxY: 210},
		0.75*math.Pi, m.Solute, opts.ShakerMaxDispensingRate, m.SoluteForm.Get() == Solid)
	m.ShakerParticles = NewShakerParticles(m.Solution, m.Beaker, opts.Rand, opts.MaxShakerParticles)
	m.Dropper = NewDropper(geom.V(m.Beaker.Location.X, 225), geom.Bounds2{MinX: 260, MinY: 225, MaxX: 580, MaxY: 225},
		m.Solute, opts.DropperFlowRate, m.SoluteForm.Get() == StockSolution)
	m.Evaporator = NewEvaporator(opts.MaxEvaporationRate)
	m.SolventFaucet = NewFaucet(geom.V(155, 220), -400, 45, opts.FaucetMaxFlowRate)
	m.DrainFaucet = NewFaucet(geom.V(750, 630), m.Beaker.Right(), 45, opts.FaucetMaxFlowRate)
	m.Meter = NewConcentrationMeter(
		geom.V(785, 210), geom.Bounds2{MinX: 10, MinY: 150, MaxX: 835, MaxY: 680},
		geom.V(750, 370), geom.Bounds2{MinX: 30, MinY: 150, MaxX: 966, MaxY: 680},
		m.Solution, m.Beaker)

	m.Solution.Volume.Link(func(float64) { m.syncDevices() })
	m.Solution.SoluteAmount.Link(func(float64) { m.syncDevices() })
	m.SoluteForm.Link(func(form SoluteForm) {
		m.Shaker.Visible.Set(form == Solid)
		m.Dropper.Visible.Set(form == StockSolution)
	})
	return m, nil
}

// syncDevices enables or disables the devices that depend on how full the
// beaker is and how much solute it holds.
func (m *Model) syncDevices() {
	volume := m.Solution.Volume.Get()
	vr, ar := m.opts.VolumeRange, m.opts.SoluteAmountRange
	full := m.Solution.SoluteAmount.Get() >= ar.Max

	m.SolventFaucet.Enabled.Set(volume < vr.Max)
	m.DrainFaucet.Enabled.Set(volume > vr.Min)
	m.Evaporator.Enabled.Set(volume > vr.Min)
	m.Shaker.Empty.Set(full)
	m.Dropper.Empty.Set(full)
	m.Dropper.Enabled.Set(!full && volume < vr.Max)
}

// SetSolutes replaces the selectable solutes and selects the first one.
func (m *Model) SetSolutes(solutes []*solute.Solute) error {
	if len(solutes) == 0 {
		return ErrNoSolutes
	}
	m.Solutes = append([]*solute.Solute(nil), solutes...)
	m.Solute.Set(solutes[0])
	return nil
}

// SelectSolute selects s, which must be one of Solutes.
func (m *Model) SelectSolute(s *solute.Solute) error {
	for _, candidate := range m.Solutes {
		if candidate == s {
			m.Solute.Set(s)
			return nil
		}
	}
	return fmt.Errorf("%w: %s is not offered", solute.ErrUnknownSolute, s)
}

func (m *Model) Reset() {
	m.Solute.Set(m.Solutes[0])
	m.SoluteForm.Reset()
	m.Solution.Reset()
	m.Shaker.Reset()
	m.ShakerParticles.Reset()
	m.Dropper.Reset()
	m.Evaporator.Reset()
	m.SolventFaucet.Reset()
	m.DrainFaucet.Reset()
	m.Meter.Reset()

	m.syncDevices()
	m.Shaker.Visible.Set(m.SoluteForm.Get() == Solid)
	m.Dropper.Visible.Set(m.SoluteForm.Get() == StockSolution)
}

// Step advances the model by dt seconds.
func (m *Model) Step(dt float64) error {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidTimestep, dt)
	}

	m.AddSolvent(m.SolventFaucet.FlowRate.Get() * dt)
	m.drain(dt)
	m.addStockSolution(dt)
	m.RemoveSolvent(m.Evaporator.EvaporationRate.Get() * dt)

	m.AddSolute(m.ShakerParticles.Step(dt))
	m.ShakerParticles.Emit(dt, m.Shaker)
	m.Shaker.Step()
	return nil
}

// drain removes solution. Solute leaves at the concentration the solution
// had before the volume changed.
func (m *Model) drain(dt float64) {
	v := m.DrainFaucet.FlowRate.Get() * dt
	if v <= 0 {
		return
	}
	c := m.Solution.Concentration.Get()
	removed := m.RemoveSolvent(v)
	m.RemoveSolute(c * removed)
}

// addStockSolution adds volume and solute as one change, so the precipitate
// never sees the volume without the matching solute.
func (m *Model) addStockSolution(dt float64) {
	v := m.Dropper.FlowRate.Get() * dt
	if v <= 0 {
		return
	}
	p := m.Solution.PrecipitateAmount
	p.Suspend()
	added := m.AddSolvent(v)
	m.AddSolute(m.Dropper.StockConcentration() * added)
	p.Resume()
}

// AddSolvent adds up to dv liters and returns what fit in the beaker.
func (m *Model) AddSolvent(dv float64) float64 {
	if dv <= 0 {
		return 0
	}
	before := m.Solution.Volume.Get()
	m.Solution.Volume.Set(before + dv)
	return m.Solution.Volume.Get() - before
}

// RemoveSolvent removes up to dv liters and returns what was removed.
func (m *Model) RemoveSolvent(dv float64) float64 {
	if dv <= 0 {
		return 0
	}
	before := m.Solution.Volume.Get()
	m.Solution.Volume.Set(before - dv)
	return before - m.Solution.Volume.Get()
}

// AddSolute adds up to dn mol and returns what was added.
func (m *Model) AddSolute(dn float64) float64 {
	if dn <= 0 {
		return 0
	}
	before := m.Solution.SoluteAmount.Get()
	m.Solution.SoluteAmount.Set(before + dn)
	return m.Solution.SoluteAmount.Get() - before
}

// RemoveSolute removes up to dn mol and returns what was removed.
func (m *Model) RemoveSolute(dn float64) float64 {
	if dn <= 0 {
		return 0
	}
	before := m.Solution.SoluteAmount.Get()
	m.Solution.SoluteAmount.Set(before - dn)
	return before - m.Solution.SoluteAmount.Get()
}

// Options returns the options the model was built with.
func (m *Model) Options() Options { return m.opts }
