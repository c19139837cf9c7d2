package device_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/qsim/internal/accel"
	"github.com/san-kum/qsim/internal/device"
	"github.com/san-kum/qsim/internal/quantum"
)

var _ = Describe("Device contract", func() {
	var dev *device.Device

	hadamard := func(wire int) error {
		return dev.NamedOperation("Hadamard", nil, []int{wire}, false, nil, nil)
	}

	Describe("with the software path only", func() {
		BeforeEach(func() {
			dev = device.New(device.Config{})
		})

		It("starts with an empty register and an unavailable bridge", func() {
			Expect(dev.GetNumQubits()).To(BeZero())
			Expect(dev.BridgeState()).To(Equal(accel.Unavailable))
			Expect(dev.StateVector()).To(HaveLen(1))
		})

		It("sizes the state vector to the allocation", func() {
			handles := dev.AllocateQubits(3)
			Expect(handles).To(HaveLen(3))
			Expect(dev.StateVector()).To(HaveLen(8))
			Expect(dev.StateVector()[0]).To(Equal(complex(1.0, 0.0)))
		})

		It("spreads a fresh qubit into an even superposition", func() {
			dev.AllocateQubit()
			Expect(hadamard(0)).To(Succeed())

			v := dev.StateVector()
			Expect(real(v[0])).To(BeNumerically("~", 0.70710678, 1e-8))
			Expect(real(v[1])).To(BeNumerically("~", 0.70710678, 1e-8))
		})

		It("returns to the basis state after a double application", func() {
			dev.AllocateQubits(2)
			Expect(hadamard(1)).To(Succeed())
			Expect(hadamard(1)).To(Succeed())

			v := dev.StateVector()
			Expect(real(v[0])).To(BeNumerically("~", 1.0, 1e-9))
			for i := 1; i < len(v); i++ {
				Expect(real(v[i])).To(BeNumerically("~", 0.0, 1e-9))
			}
		})

		It("rejects gates outside the capability set without mutating state", func() {
			dev.AllocateQubits(2)
			before := dev.StateVector()

			err := dev.NamedOperation("CNOT", nil, []int{0, 1}, false, nil, nil)
			Expect(err).To(MatchError(quantum.ErrUnsupportedOperation))
			Expect(dev.StateVector()).To(Equal(before))
		})

		It("rejects controlled and inverse variants of the supported gate", func() {
			dev.AllocateQubits(2)

			err := dev.NamedOperation("Hadamard", nil, []int{0}, true, nil, nil)
			Expect(err).To(MatchError(quantum.ErrUnsupportedOperation))

			err = dev.NamedOperation("Hadamard", nil, []int{0}, false, []int{1}, []bool{true})
			Expect(err).To(MatchError(quantum.ErrUnsupportedOperation))
		})

		It("fails a state read into a wrong-sized buffer", func() {
			dev.AllocateQubits(2)
			err := dev.State(make(quantum.Vector, 3))
			Expect(err).To(MatchError(quantum.ErrSizeMismatch))
		})
	})

	Describe("with an accelerator session", func() {
		It("runs the gate on hardware while the bridge holds", func() {
			dev = device.New(device.Config{
				Session: accel.NewEmulator(accel.EmulatorConfig{Seed: 1}),
			})
			dev.AllocateQubits(2)
			Expect(dev.BridgeState()).To(Equal(accel.Available))

			Expect(hadamard(0)).To(Succeed())
			Expect(hadamard(1)).To(Succeed())
			Expect(dev.BridgeState()).To(Equal(accel.Available))

			for _, a := range dev.StateVector() {
				Expect(real(a)).To(BeNumerically("~", 0.5, 1e-6))
			}
		})

		It("falls back to software on failure and degrades permanently", func() {
			em := accel.NewEmulator(accel.EmulatorConfig{Seed: 1, FailAt: 1})
			dev = device.New(device.Config{Session: em})
			dev.AllocateQubit()

			Expect(hadamard(0)).To(Succeed())
			Expect(dev.BridgeState()).To(Equal(accel.Degraded))

			v := dev.StateVector()
			Expect(real(v[0])).To(BeNumerically("~", 1/math.Sqrt2, 1e-9))

			Expect(hadamard(0)).To(Succeed())
			Expect(em.Runs()).To(Equal(1))
		})
	})
})
