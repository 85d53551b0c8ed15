package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"reversi-engine/config"
	"reversi-engine/revmg"
)

func main() {
	boardStr := flag.String("board", "", "Position string (64 discs a1..h8 plus side char; defaults to the start position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	cfg := config.FromEnv()
	zerolog.SetGlobalLevel(cfg.ZerologLevel())
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board := revmg.NewBoard()
	if *boardStr != "" {
		var err error
		board, err = revmg.ParseBoard(*boardStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ParseBoard error: %v\n", err)
			os.Exit(2)
		}
	}

	log.Debug().Str("kernel", string(revmg.ActiveKernel())).Int("depth", *depth).Msg("running perft")

	// Optional divide output
	if *divide {
		div := revmg.PerftDivide(board, *depth)
		type kv struct {
			sq revmg.Square
			n  uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for sq, n := range div {
			arr = append(arr, kv{sq, n})
			sum += n
		}
		slices.SortFunc(arr, func(a, b kv) int { return int(a.sq - b.sq) })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.sq, x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += revmg.Perft(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}
