package beerslaw_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/beerslab/internal/beerslaw"
	"github.com/san-kum/beerslab/internal/geom"
	"github.com/san-kum/beerslab/internal/solute"
)

var _ = Describe("Model", func() {
	var m *beerslaw.Model

	BeforeEach(func() {
		m = beerslaw.NewModel()
	})

	It("tunes the light to the peak of the selected solution", func() {
		Expect(m.Light.Wavelength.Get()).To(Equal(508.0))

		Expect(m.SelectSolution("KMnO4")).To(Succeed())
		Expect(m.Light.Wavelength.Get()).To(Equal(float64(solute.PotassiumPermanganate.PeakWavelength())))
	})

	It("refuses solutes without a spectrum", func() {
		Expect(m.SelectSolution("sodium chloride")).To(MatchError(solute.ErrUnknownSolute))
		Expect(m.SelectSolution("lemonade")).To(MatchError(solute.ErrUnknownSolute))
	})

	It("clamps the wavelength to the visible range", func() {
		m.Light.Wavelength.Set(900)
		Expect(m.Light.Wavelength.Get()).To(Equal(780.0))
	})

	Describe("absorbance", func() {
		It("follows the law across the cuvette", func() {
			sol := m.Solution.Get()
			eps := solute.DrinkMix.Absorptivity.MustAt(508)
			Expect(m.Absorbance.MolarAbsorptivity.Get()).To(Equal(eps))
			Expect(m.Absorbance.Value.Get()).To(BeNumerically("~", eps*0.1*1.0, 1e-12))

			sol.Concentration.Set(0.2)
			m.Cuvette.Width.Set(2)
			Expect(m.Absorbance.Value.Get()).To(BeNumerically("~", eps*0.2*2.0, 1e-12))
		})

		It("rebinds to the newly selected solution", func() {
			old := m.Solution.Get()
			Expect(m.SelectSolution("copper_sulfate")).To(Succeed())
			sol := m.Solution.Get()

			sol.Concentration.Set(0.05)
			Expect(m.Absorbance.Concentration.Get()).To(Equal(0.05))

			old.Concentration.Set(0.3)
			Expect(m.Absorbance.Concentration.Get()).To(Equal(0.05))
		})

		It("clamps the cuvette width", func() {
			m.Cuvette.Width.Set(5)
			Expect(m.Cuvette.Width.Get()).To(Equal(2.0))
			m.Cuvette.Width.Set(0)
			Expect(m.Cuvette.Width.Get()).To(Equal(0.5))
		})
	})

	Describe("detector", func() {
		It("reads nothing while the light is off", func() {
			Expect(m.Detector.ProbeInBeam()).To(BeFalse())
			Expect(m.Detector.Value.Get()).To(BeNil())
		})

		It("reads percent transmittance in the beam", func() {
			m.Light.On.Set(true)
			Expect(m.Detector.ProbeInBeam()).To(BeTrue())

			a := m.Absorbance.Value.Get()
			Expect(m.Detector.Value.Get()).NotTo(BeNil())
			Expect(*m.Detector.Value.Get()).To(BeNumerically("~", 100*math.Pow(10, -a), 1e-9))

			m.Detector.Mode.Set(beerslaw.AbsorbanceMode)
			Expect(*m.Detector.Value.Get()).To(BeNumerically("~", a, 1e-12))
		})

		It("uses the path length up to the probe", func() {
			m.Light.On.Set(true)
			m.Detector.Mode.Set(beerslaw.AbsorbanceMode)
			m.Detector.Probe.MoveTo(geom.V(3.55, 2.2))

			Expect(*m.Detector.Value.Get()).To(BeNumerically("~", m.Absorbance.At(0.25), 1e-12))

			m.Detector.Probe.MoveTo(geom.V(2, 2.2))
			Expect(*m.Detector.Value.Get()).To(BeZero())
		})

		It("reads nothing outside the beam", func() {
			m.Light.On.Set(true)
			m.Detector.Probe.MoveTo(geom.V(4.3, 3))
			Expect(m.Detector.Value.Get()).To(BeNil())

			m.Detector.Probe.MoveTo(geom.V(1, 2.2))
			Expect(m.Detector.Value.Get()).To(BeNil())
		})

		It("updates when the concentration changes", func() {
			m.Light.On.Set(true)
			m.Detector.Mode.Set(beerslaw.AbsorbanceMode)
			before := *m.Detector.Value.Get()

			m.Solution.Get().Concentration.Set(0.2)
			Expect(*m.Detector.Value.Get()).To(BeNumerically("~", 2*before, 1e-9))
		})
	})

	It("resets everything", func() {
		Expect(m.SelectSolution("nickel_ii_chloride")).To(Succeed())
		m.Solution.Get().Concentration.Set(0.3)
		m.Light.On.Set(true)
		m.Cuvette.Width.Set(1.7)
		m.Detector.Mode.Set(beerslaw.AbsorbanceMode)

		m.Reset()

		Expect(m.Solution.Get().Solute).To(Equal(solute.DrinkMix))
		Expect(m.Light.On.Get()).To(BeFalse())
		Expect(m.Light.Wavelength.Get()).To(Equal(508.0))
		Expect(m.Cuvette.Width.Get()).To(Equal(1.0))
		Expect(m.Detector.Mode.Get()).To(Equal(beerslaw.TransmittanceMode))
		for _, s := range m.Solutions {
			Expect(s.Concentration.Get()).To(Equal(s.ConcentrationRange.Default))
		}
	})
})
