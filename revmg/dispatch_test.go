package revmg

import "testing"

func TestKernelBinding(t *testing.T) {
	if flipFn == nil || lastFlipFn == nil {
		t.Fatal("kernels not bound at init")
	}
	k := ActiveKernel()
	if k != KernelGather && k != KernelPortable {
		t.Fatalf("unexpected kernel %q", k)
	}
}

func TestKernelOverride(t *testing.T) {
	// registered before Setenv so it reruns after the env is restored
	t.Cleanup(bindKernels)

	t.Setenv("REVERSI_KERNEL", "portable")
	bindKernels()
	if ActiveKernel() != KernelPortable {
		t.Fatalf("override to portable ignored, got %q", ActiveKernel())
	}

	t.Setenv("REVERSI_KERNEL", "gather")
	bindKernels()
	if ActiveKernel() != KernelGather {
		t.Fatalf("override to gather ignored, got %q", ActiveKernel())
	}
}

func TestBoundKernelsMatchVariants(t *testing.T) {
	for i := 0; i < 500; i++ {
		p, o := randomPosition()
		for sq := Square(0); sq < 64; sq++ {
			if got, g, pt := Flip(sq, p, o), flipGather(sq, p, o), flipPortable(sq, p, o); got != g || got != pt {
				t.Fatalf("bound flip diverges at %s: bound=%#x gather=%#x portable=%#x", sq, got, g, pt)
			}
		}
	}
}
