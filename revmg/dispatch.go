package revmg

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/cpu"

	"reversi-engine/config"
)

// Kernel names an implementation profile for the core primitives.
type Kernel string

const (
	// KernelGather uses the bit-gather flip and the bit-scan last-flip
	// counter, the profile that maps to pext/pdep and lzcnt hardware.
	KernelGather Kernel = "gather"
	// KernelPortable uses the multiply-reduction flip and the count-flip
	// table, fast on any 64-bit CPU.
	KernelPortable Kernel = "portable"
)

// The bound primitives. Set once by bindKernels during package init and
// never reassigned, so calls are safe from any goroutine.
var (
	activeKernel Kernel
	flipFn       func(Square, uint64, uint64) uint64
	lastFlipFn   func(Square, uint64) int
)

// ActiveKernel reports which kernel profile was bound at init.
func ActiveKernel() Kernel { return activeKernel }

// bindKernels picks the kernel profile for the executing CPU, or honours the
// configured override. Runs once from package init; the binding is
// process-wide and immutable afterwards.
func bindKernels() {
	k := Kernel(config.FromEnv().Kernel)
	if k != KernelGather && k != KernelPortable {
		if cpu.X86.HasBMI2 {
			k = KernelGather
		} else {
			k = KernelPortable
		}
	}
	switch k {
	case KernelGather:
		flipFn = flipGather
		lastFlipFn = lastFlipScan
	default:
		k = KernelPortable
		flipFn = flipPortable
		lastFlipFn = lastFlipTable
	}
	activeKernel = k
	log.Debug().Str("kernel", string(k)).Bool("bmi2", cpu.X86.HasBMI2).Msg("bound board kernels")
}
