package concentration_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/beerslab/internal/concentration"
	"github.com/san-kum/beerslab/internal/geom"
	"github.com/san-kum/beerslab/internal/solute"
)

var _ = Describe("Model", func() {
	var m *concentration.Model

	BeforeEach(func() {
		opts := concentration.DefaultOptions()
		opts.Rand = newSeqRand()
		var err error
		m, err = concentration.NewModel(opts)
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts with half a liter of pure water", func() {
		Expect(m.Solute.Get()).To(Equal(solute.DrinkMix))
		Expect(m.Solution.Volume.Get()).To(Equal(0.5))
		Expect(m.Solution.SoluteAmount.Get()).To(BeZero())
		Expect(m.Solution.Concentration.Get()).To(BeZero())
		Expect(m.Solution.Color.Get()).To(Equal(solute.Water.Color))
		Expect(m.Shaker.Visible.Get()).To(BeTrue())
		Expect(m.Dropper.Visible.Get()).To(BeFalse())
	})

	Describe("Step", func() {
		It("rejects timesteps that are not positive", func() {
			for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
				Expect(m.Step(dt)).To(MatchError(concentration.ErrInvalidTimestep))
			}
		})

		It("adds stock solution from the dropper", func() {
			Expect(m.SelectSolute(solute.CobaltIINitrate)).To(Succeed())
			m.SoluteForm.Set(concentration.StockSolution)
			m.Dropper.Dispensing.Set(true)
			Expect(m.Dropper.FlowRate.Get()).To(Equal(0.05))

			Expect(m.Step(10)).To(Succeed())

			Expect(m.Solution.Volume.Get()).To(BeNumerically("~", 1.0, 1e-12))
			Expect(m.Solution.SoluteAmount.Get()).To(BeNumerically("~", 2.5, 1e-12))
			Expect(m.Dropper.Enabled.Get()).To(BeFalse())
			Expect(m.Dropper.FlowRate.Get()).To(BeZero())
		})

		It("adds stock solution gradually over many frames", func() {
			Expect(m.SelectSolute(solute.CobaltIINitrate)).To(Succeed())
			m.SoluteForm.Set(concentration.StockSolution)
			m.Dropper.Dispensing.Set(true)

			for i := 0; i < 100; i++ {
				Expect(m.Step(0.1)).To(Succeed())
			}
			Expect(m.Solution.Volume.Get()).To(BeNumerically("~", 1.0, 1e-9))
			Expect(m.Solution.SoluteAmount.Get()).To(BeNumerically("~", 2.5, 1e-9))
		})

		It("does not flicker saturation while the dropper fills a barely saturated beaker", func() {
			m.SoluteForm.Set(concentration.StockSolution)
			m.Solution.SoluteAmount.Set(0.5*5.5 + 1e-4)
			Expect(m.Solution.Volume.Get()).To(Equal(0.5))
			Expect(m.Solution.IsSaturated()).To(BeTrue())
			Expect(m.Precipitate.Len()).To(Equal(1))

			flips, changes := 0, 0
			m.Solution.Saturated.LazyLink(func(bool) { flips++ })
			m.Precipitate.OnChange(func(concentration.Change[*concentration.Particle]) { changes++ })
			m.Dropper.Dispensing.Set(true)
			Expect(m.Step(0.1)).To(Succeed())

			Expect(m.Solution.Volume.Get()).To(BeNumerically("~", 0.505, 1e-12))
			Expect(flips).To(BeZero())
			Expect(changes).To(BeZero())
			Expect(m.Solution.IsSaturated()).To(BeTrue())
		})

		It("drains solute at the concentration before draining", func() {
			m.Solution.Volume.Set(1)
			m.Solution.SoluteAmount.Set(2)
			Expect(m.Solution.Concentration.Get()).To(Equal(2.0))

			m.DrainFaucet.FlowRate.Set(0.25)
			Expect(m.Step(2)).To(Succeed())

			Expect(m.Solution.Volume.Get()).To(BeNumerically("~", 0.5, 1e-12))
			Expect(m.Solution.SoluteAmount.Get()).To(BeNumerically("~", 1.0, 1e-12))
			Expect(m.Solution.Concentration.Get()).To(BeNumerically("~", 2.0, 1e-12))
		})

		It("does not restore solute when solvent refills what was drained", func() {
			m.Solution.Volume.Set(0.8)
			m.Solution.SoluteAmount.Set(1.6)

			m.DrainFaucet.FlowRate.Set(0.2)
			Expect(m.Step(1)).To(Succeed())
			m.DrainFaucet.Close()
			m.SolventFaucet.FlowRate.Set(0.2)
			Expect(m.Step(1)).To(Succeed())

			Expect(m.Solution.Volume.Get()).To(BeNumerically("~", 0.8, 1e-12))
			Expect(m.Solution.SoluteAmount.Get()).To(BeNumerically("~", 1.2, 1e-12))
		})

		It("evaporates solvent only", func() {
			m.Solution.SoluteAmount.Set(1)
			m.Evaporator.EvaporationRate.Set(0.1)
			Expect(m.Step(1)).To(Succeed())

			Expect(m.Solution.Volume.Get()).To(BeNumerically("~", 0.4, 1e-12))
			Expect(m.Solution.SoluteAmount.Get()).To(Equal(1.0))
		})

		It("dissolves shaken solute when it reaches the solution", func() {
			m.Shaker.Shake(geom.V(360, 170))
			Expect(m.Shaker.DispensingRate.Get()).To(Equal(0.2))

			Expect(m.Step(0.1)).To(Succeed())
			Expect(m.ShakerParticles.Len()).To(Equal(4))
			Expect(m.Step(0.1)).To(Succeed())
			Expect(m.Shaker.DispensingRate.Get()).To(BeZero())

			for i := 0; i < 50; i++ {
				Expect(m.Step(0.1)).To(Succeed())
			}
			Expect(m.ShakerParticles.Len()).To(BeZero())
			Expect(m.Solution.SoluteAmount.Get()).To(BeNumerically("~", 8.0/200, 1e-12))
		})
	})

	Describe("saturation", func() {
		It("precipitates what exceeds the saturated concentration", func() {
			m.Solution.Volume.Set(1)
			m.Solution.SoluteAmount.Set(6)

			Expect(m.Solution.PrecipitateAmount.Get()).To(BeNumerically("~", 0.5, 1e-12))
			Expect(m.Solution.Concentration.Get()).To(Equal(5.5))
			Expect(m.Solution.IsSaturated()).To(BeTrue())
			Expect(m.Precipitate.Len()).To(Equal(100))
			Expect(m.Shaker.Empty.Get()).To(BeTrue())
			Expect(m.Dropper.Empty.Get()).To(BeTrue())
		})

		It("keeps the particle count equal to the precipitate", func() {
			amounts := []float64{6, 5.8, 5.501, 0, 3, 6, 5.6}
			volumes := []float64{1, 0.9, 1, 0.2, 0.5, 0, 1}
			for i := range amounts {
				m.Solution.Volume.Set(volumes[i])
				m.Solution.SoluteAmount.Set(amounts[i])

				Expect(m.Precipitate.Len()).To(Equal(m.Solution.NumberOfPrecipitateParticles()))
				if m.Solution.PrecipitateAmount.Get() > 0 {
					Expect(m.Precipitate.Len()).To(BeNumerically(">=", 1))
				}
			}
		})

		It("shrinks the precipitate at the tail with one notification", func() {
			m.Solution.Volume.Set(1)
			m.Solution.SoluteAmount.Set(6)
			before := m.Precipitate.Particles()

			var changes []concentration.Change[*concentration.Particle]
			m.Precipitate.OnChange(func(c concentration.Change[*concentration.Particle]) {
				changes = append(changes, c)
			})
			m.Solution.SoluteAmount.Set(5.8)

			after := m.Precipitate.Particles()
			Expect(after).To(HaveLen(60))
			Expect(after).To(Equal(before[:60]))
			Expect(changes).To(HaveLen(1))
			Expect(changes[0].Removed).To(Equal(before[60:]))
			Expect(changes[0].Added).To(BeEmpty())
		})

		It("keeps precipitate particles inside the beaker", func() {
			m.Solution.Volume.Set(1)
			m.Solution.SoluteAmount.Set(6)
			for _, p := range m.Precipitate.Particles() {
				Expect(p.Location.X).To(BeNumerically(">", m.Beaker.Left()))
				Expect(p.Location.X).To(BeNumerically("<", m.Beaker.Right()))
				Expect(p.Location.Y).To(BeNumerically("<", m.Beaker.Bottom()))
				Expect(p.Orientation).To(BeNumerically(">=", 0))
				Expect(p.Orientation).To(BeNumerically("<", 2*math.Pi))
			}
		})

		It("clears solute and precipitate when the solute changes", func() {
			m.Solution.Volume.Set(1)
			m.Solution.SoluteAmount.Set(6)

			Expect(m.SelectSolute(solute.CopperSulfate)).To(Succeed())

			Expect(m.Solution.SoluteAmount.Get()).To(BeZero())
			Expect(m.Precipitate.Len()).To(BeZero())
			Expect(m.Shaker.Empty.Get()).To(BeFalse())
		})

		It("removes the old precipitate in a single change when the solute changes", func() {
			m.Solution.Volume.Set(1)
			m.Solution.SoluteAmount.Set(6)
			Expect(m.Precipitate.Len()).To(Equal(100))

			var changes []concentration.Change[*concentration.Particle]
			m.Precipitate.OnChange(func(c concentration.Change[*concentration.Particle]) { changes = append(changes, c) })
			Expect(m.SelectSolute(solute.PotassiumDichromate)).To(Succeed())

			Expect(changes).To(HaveLen(1))
			Expect(changes[0].Removed).To(HaveLen(100))
			Expect(changes[0].Added).To(BeEmpty())
			Expect(m.Precipitate.Len()).To(BeZero())
		})
	})

	Describe("devices", func() {
		It("disables the solvent faucet when the beaker is full", func() {
			m.SolventFaucet.Open(1)
			Expect(m.Step(2)).To(Succeed())

			Expect(m.Solution.Volume.Get()).To(Equal(1.0))
			Expect(m.SolventFaucet.Enabled.Get()).To(BeFalse())
			Expect(m.SolventFaucet.FlowRate.Get()).To(BeZero())
			m.SolventFaucet.Open(1)
			Expect(m.SolventFaucet.FlowRate.Get()).To(BeZero())
		})

		It("disables the drain and evaporator when the beaker is empty", func() {
			m.DrainFaucet.Open(1)
			Expect(m.Step(4)).To(Succeed())

			Expect(m.Solution.Volume.Get()).To(BeZero())
			Expect(m.DrainFaucet.Enabled.Get()).To(BeFalse())
			Expect(m.Evaporator.Enabled.Get()).To(BeFalse())
		})

		It("swaps shaker and dropper with the solute form", func() {
			m.SoluteForm.Set(concentration.StockSolution)
			Expect(m.Shaker.Visible.Get()).To(BeFalse())
			Expect(m.Dropper.Visible.Get()).To(BeTrue())

			m.Shaker.Shake(geom.V(300, 100))
			Expect(m.Shaker.DispensingRate.Get()).To(BeZero())
		})

		It("clamps flow rates to their maximum", func() {
			m.SolventFaucet.FlowRate.Set(10)
			Expect(m.SolventFaucet.FlowRate.Get()).To(Equal(concentration.MaxFaucetFlowRate))
			m.Evaporator.EvaporationRate.Set(-1)
			Expect(m.Evaporator.EvaporationRate.Get()).To(BeZero())
		})

		It("caps the number of shaker particles", func() {
			for i := 0; i < 100; i++ {
				m.Shaker.Shake(geom.V(300+float64(i%2)*10, 100))
				Expect(m.Step(1)).To(Succeed())
				Expect(m.ShakerParticles.Len()).To(BeNumerically("<=", concentration.DefaultMaxParticles))
			}
		})
	})

	Describe("meter", func() {
		It("reads nothing outside the solution", func() {
			Expect(m.Meter.Value.Get()).To(BeNil())
		})

		It("reads the concentration inside the solution", func() {
			m.Solution.SoluteAmount.Set(1)
			m.Meter.Probe.MoveTo(geom.V(350, 500))

			Expect(m.Meter.Value.Get()).NotTo(BeNil())
			Expect(*m.Meter.Value.Get()).To(Equal(2.0))

			m.Meter.Units.Set(concentration.Percent)
			Expect(*m.Meter.Value.Get()).To(Equal(m.Solution.PercentConcentration.Get()))

			m.Solution.Volume.Set(0.1)
			Expect(m.Meter.Value.Get()).To(BeNil())
		})
	})

	Describe("Reset", func() {
		It("is idempotent", func() {
			m.Solution.Volume.Set(0.9)
			m.Solution.SoluteAmount.Set(5.9)
			m.SoluteForm.Set(concentration.StockSolution)
			m.DrainFaucet.Open(0.5)
			Expect(m.SelectSolute(solute.NickelIIChloride)).To(Succeed())

			m.Reset()
			once := m.Sample()
			form := m.SoluteForm.Get()
			m.Reset()

			Expect(m.Sample()).To(Equal(once))
			Expect(m.SoluteForm.Get()).To(Equal(form))
			Expect(m.Solute.Get()).To(Equal(solute.DrinkMix))
			Expect(m.Solution.Volume.Get()).To(Equal(0.5))
			Expect(m.Shaker.Visible.Get()).To(BeTrue())
			Expect(m.Dropper.Visible.Get()).To(BeFalse())
		})
	})

	Describe("SetSolutes", func() {
		It("selects the first solute", func() {
			Expect(m.SetSolutes([]*solute.Solute{solute.PotassiumChromate, solute.CopperSulfate})).To(Succeed())
			Expect(m.Solute.Get()).To(Equal(solute.PotassiumChromate))
			Expect(m.SelectSolute(solute.DrinkMix)).To(MatchError(solute.ErrUnknownSolute))
		})

		It("rejects an empty list", func() {
			Expect(m.SetSolutes(nil)).To(MatchError(concentration.ErrNoSolutes))
		})
	})

	It("samples in label order", func() {
		m.Solution.SoluteAmount.Set(1)
		labels := m.Labels()
		sample := m.Sample()
		Expect(sample).To(HaveLen(len(labels)))
		Expect(labels[2]).To(Equal("concentration"))
		Expect(sample[2]).To(Equal(2.0))
	})
})
