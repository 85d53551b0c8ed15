package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

func main() {
	// Run all kernel benchmarks in bench/ with benchmem.
	// Usage: go run ./cmd/bench
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	// Also run perft throughput (macro benchmark) with one-line outputs
	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	run("go", "run", "./cmd/perft", "-depth", "5", "-label", "Initial")
	run("go", "run", "./cmd/perft", "-depth", "6", "-label", "Initial")
	run("go", "run", "./cmd/perft", "-depth", "7", "-label", "Initial")
	run("go", "run", "./cmd/perft", "-depth", "8", "-label", "Initial")

	// Compare the portable kernel profile on the same workload
	fmt.Println("\nPortable kernel:")
	os.Setenv("REVERSI_KERNEL", "portable")
	_ = run("go", "run", "./cmd/perft", "-depth", "7", "-label", "Initial")
	os.Exit(0)
}
