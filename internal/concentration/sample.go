package concentration

import "github.com/san-kum/beerslab/internal/reactive"

var sampleLabels = []string{
	"volume",
	"solute_amount",
	"concentration",
	"precipitate_amount",
	"percent_concentration",
	"saturated",
	"precipitate_particles",
	"shaker_particles",
	"solvent_flow_rate",
	"drain_flow_rate",
	"dropper_flow_rate",
	"evaporation_rate",
}

// Labels names the columns returned by Sample.
func (m *Model) Labels() []string {
	out := make([]string, len(sampleLabels))
	copy(out, sampleLabels)
	return out
}

// Sample returns the numeric state of the model in Labels order.
func (m *Model) Sample() []float64 {
	sat := 0.0
	if m.Solution.IsSaturated() {
		sat = 1
	}
	return []float64{
		m.Solution.Volume.Get(),
		m.Solution.SoluteAmount.Get(),
		m.Solution.Concentration.Get(),
		m.Solution.PrecipitateAmount.Get(),
		m.Solution.PercentConcentration.Get(),
		sat,
		float64(m.Precipitate.Len()),
		float64(m.ShakerParticles.Len()),
		m.SolventFaucet.FlowRate.Get(),
		m.DrainFaucet.FlowRate.Get(),
		m.Dropper.FlowRate.Get(),
		m.Evaporator.EvaporationRate.Get(),
	}
}

// Register exposes the model's values under dotted names.
func (m *Model) Register(r *reactive.Registry) {
	r.Register("solute", m.Solute)
	r.Register("soluteForm", m.SoluteForm)
	r.Register("solution.soluteAmount", m.Solution.SoluteAmount)
	r.Register("solution.volume", m.Solution.Volume)
	r.Register("solution.precipitateAmount", m.Solution.PrecipitateAmount)
	r.Register("solution.concentration", m.Solution.Concentration)
	r.Register("solution.saturated", m.Solution.Saturated)
	r.Register("solution.percentConcentration", m.Solution.PercentConcentration)
	r.Register("solution.color", m.Solution.Color)
	r.Register("shaker.location", m.Shaker.Location)
	r.Register("shaker.visible", m.Shaker.Visible)
	r.Register("shaker.empty", m.Shaker.Empty)
	r.Register("shaker.dispensingRate", m.Shaker.DispensingRate)
	r.Register("dropper.location", m.Dropper.Location)
	r.Register("dropper.visible", m.Dropper.Visible)
	r.Register("dropper.enabled", m.Dropper.Enabled)
	r.Register("dropper.empty", m.Dropper.Empty)
	r.Register("dropper.dispensing", m.Dropper.Dispensing)
	r.Register("dropper.flowRate", m.Dropper.FlowRate)
	r.Register("evaporator.enabled", m.Evaporator.Enabled)
	r.Register("evaporator.evaporationRate", m.Evaporator.EvaporationRate)
	r.Register("solventFaucet.enabled", m.SolventFaucet.Enabled)
	r.Register("solventFaucet.flowRate", m.SolventFaucet.FlowRate)
	r.Register("drainFaucet.enabled", m.DrainFaucet.Enabled)
	r.Register("drainFaucet.flowRate", m.DrainFaucet.FlowRate)
	r.Register("concentrationMeter.probe.location", m.Meter.Probe.Location)
	r.Register("concentrationMeter.units", m.Meter.Units)
	r.Register("concentrationMeter.value", m.Meter.Value)
}
