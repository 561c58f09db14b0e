// Command perft drives the move generator over a position to a fixed
// depth and reports node counts, for regression-testing and benchmarking
// internal/movegen against the published perft figures.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/frankkopp/chesscore/internal/config"
	"github.com/frankkopp/chesscore/internal/fen"
	"github.com/frankkopp/chesscore/internal/logging"
	"github.com/frankkopp/chesscore/internal/movegen"
	"github.com/frankkopp/chesscore/internal/position"
	"github.com/frankkopp/chesscore/internal/util"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	fenStr := flag.String("fen", fen.StartPosition, "FEN of the position to run perft from")
	depth := flag.Int("depth", 5, "maximum perft depth")
	divide := flag.Bool("divide", false, "print the per-move node count at the top level instead of the per-depth summary")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the run to ./cpu.pprof")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	log := logging.GetLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	pos, err := fen.Parse(*fenStr)
	if err != nil {
		if perr, ok := err.(*fen.ParseError); ok {
			fmt.Fprintln(os.Stderr, perr.Highlight(*fenStr))
		}
		fmt.Fprintln(os.Stderr, "perft:", err)
		os.Exit(1)
	}

	if *divide {
		runDivide(pos, *depth)
		return
	}

	log.Infof("perft depth=%d fen=%s", *depth, *fenStr)
	for d := 1; d <= *depth; d++ {
		var pf movegen.Perft
		elapsed := pf.Run(pos, d)
		nps := uint64(0)
		if elapsed > 0 {
			nps = pf.Nodes * uint64(1e9) / uint64(elapsed.Nanoseconds())
		}
		fmt.Printf("depth %2d  nodes %12s  captures %10s  ep %6s  castles %8s  promotions %8s  checks %10s  time %12s  nps %12s\n",
			d,
			util.FormatCount(int64(pf.Nodes)),
			util.FormatCount(int64(pf.Captures)),
			util.FormatCount(int64(pf.EnPassants)),
			util.FormatCount(int64(pf.Castles)),
			util.FormatCount(int64(pf.Promotions)),
			util.FormatCount(int64(pf.Checks)),
			elapsed,
			util.FormatCount(int64(nps)),
		)
	}
}

// runDivide prints the node count contributed by each root move, the
// classic perft "divide" used to bisect a move generator bug against a
// reference engine's per-move breakdown.
func runDivide(pos position.Position, depth int) {
	if depth < 1 {
		depth = 1
	}
	var total uint64
	for _, mv := range movegen.Generate(pos) {
		next, _ := pos.Apply(mv)
		var pf movegen.Perft
		if depth > 1 {
			pf.Run(next, depth-1)
		} else {
			pf.Nodes = 1
		}
		total += pf.Nodes
		fmt.Printf("%s: %s\n", mv.UCI(), util.FormatCount(int64(pf.Nodes)))
	}
	fmt.Printf("\ntotal: %s\n", util.FormatCount(int64(total)))
}
