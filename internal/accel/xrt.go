//go:build xrt

package accel

/*
#cgo CFLAGS: -I/opt/xilinx/xrt/include
#cgo LDFLAGS: -L/opt/xilinx/xrt/lib -L${SRCDIR} -lxrt_coreutil -lhadamard_host -lstdc++
#include <stdlib.h>

extern int xrt_device_count();
extern int hadamard_host_xrt(const char* xclbin, const float* in, float* out, int target, int num_qubits);
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/san-kum/qsim/internal/quantum"
)

// XRTSession drives the AI Engine Hadamard kernel through the XRT
// host shim. Amplitudes cross the boundary as interleaved float32
// re/im pairs, which is the in-memory layout of []complex64.
type XRTSession struct {
	bitstream string
	available bool
}

func NewXRTSession(cfg Config) (*XRTSession, error) {
	if int(C.xrt_device_count()) == 0 {
		return nil, fmt.Errorf("%w: no xrt devices present", quantum.ErrConfigurationUnavailable)
	}
	bitstream := cfg.Bitstream
	if bitstream == "" {
		bitstream = DefaultBitstream
	}
	return &XRTSession{bitstream: bitstream, available: true}, nil
}

func (x *XRTSession) Name() string {
	return "xrt (" + x.bitstream + ")"
}

func (x *XRTSession) Available() bool { return x.available }
func (x *XRTSession) Close() error    { return nil }

func (x *XRTSession) Run(kind quantum.GateKind, wire, qubits int, in []complex64) ([]complex64, error) {
	if kind != quantum.KindHadamard {
		return nil, fmt.Errorf("%w: %s not in accelerator image", quantum.ErrUnsupportedOperation, kind)
	}
	if len(in) != quantum.Dim(qubits) {
		return nil, fmt.Errorf("input length %d, expected %d", len(in), quantum.Dim(qubits))
	}

	out := make([]complex64, len(in))
	path := C.CString(x.bitstream)
	defer C.free(unsafe.Pointer(path))

	rc := C.hadamard_host_xrt(
		path,
		(*C.float)(unsafe.Pointer(&in[0])),
		(*C.float)(unsafe.Pointer(&out[0])),
		C.int(wire),
		C.int(qubits),
	)

	switch rc {
	case 0:
		return out, nil
	case -1:
		return nil, fmt.Errorf("shim rejected state of length %d", len(in))
	default:
		return nil, fmt.Errorf("shim returned %d", int(rc))
	}
}
