// Command nrpa-search runs a Nested Rollout Policy Adaptation search over one
// of the bundled reference environments and prints the best move sequence
// found.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"k8s.io/klog/v2"

	"github.com/nrpa-go/nrpa/internal/nrpa"
	"github.com/nrpa-go/nrpa/internal/nrpa/boards/linewalk"
	"github.com/nrpa-go/nrpa/internal/nrpa/boards/nim"
	"github.com/nrpa-go/nrpa/internal/parameters"
	"github.com/nrpa-go/nrpa/internal/profilers"
	"github.com/nrpa-go/nrpa/internal/ui/spinning"
)

var (
	flagBoard  = flag.String("board", "linewalk", "Reference environment to search: \"linewalk\" or \"nim\".")
	flagN      = flag.Int("n", 20, "Size parameter for the chosen board (line length for linewalk; for nim, the heaps are n, n-1 and n-2).")
	flagConfig = flag.String("config", "", "Comma-separated key=value search configuration, e.g. "+
		"\"num_level=2,num_iter=100,num_thread=0,parallel_level=1\". Unset keys take their default.")
	flagSeed     = flag.Uint64("seed", 0, "Random seed; 0 picks one from the current time.")
	flagStatsOut = flag.String("stats_out", "", "If set together with stats=true in -config, write the top-level iteration series here.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	globalCtx, globalCancel := context.WithCancel(context.Background())
	spinning.SafeInterrupt(globalCancel, 5*time.Second)
	defer globalCancel()

	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	params := parameters.Params{}
	if *flagConfig != "" {
		params = parameters.NewFromConfigString(*flagConfig)
	}
	cfg, err := nrpa.ParseConfig(params)
	must.M(err)
	must.M(cfg.Validate())

	spinner := spinning.New(globalCtx)
	var score float64
	var moves []int
	searchStart := time.Now()

	switch *flagBoard {
	case "linewalk":
		driver := must.M1(nrpa.NewDriver(linewalk.New(*flagN), cfg))
		if *flagSeed != 0 {
			driver.SetSeed(*flagSeed)
		}
		rollout, _, s := driver.Search(globalCtx)
		score = s
		moves = rolloutMoves(rollout)
		writeStatsIfRequested(driver, cfg)
	case "nim":
		heaps := []int{*flagN, *flagN - 1, *flagN - 2}
		driver := must.M1(nrpa.NewDriver(nim.New(heaps), cfg))
		if *flagSeed != 0 {
			driver.SetSeed(*flagSeed)
		}
		rollout, _, s := driver.Search(globalCtx)
		score = s
		moves = rolloutMoves(rollout)
		writeStatsIfRequested(driver, cfg)
	default:
		must.M(errors.Errorf("unknown -board=%q, want \"linewalk\" or \"nim\"", *flagBoard))
	}

	spinner.Done()
	elapsed := time.Since(searchStart)
	printReport(score, moves, elapsed)
}

func rolloutMoves(r nrpa.Rollout) []int {
	moves := make([]int, r.Length())
	for i := range moves {
		moves[i] = r.Move(i)
	}
	return moves
}

// writeStatsIfRequested is generic over the board's move type only through
// Driver[M]'s Stats() accessor, so it is instantiated separately for each
// board in main rather than taking an nrpa.Driver[any].
func writeStatsIfRequested[M any](driver *nrpa.Driver[M], cfg nrpa.Config) {
	if !cfg.Stats || *flagStatsOut == "" {
		return
	}
	if err := nrpa.WriteDat(*flagStatsOut, driver.Stats().IterSamples()); err != nil {
		klog.Errorf("failed writing stats to %q: %v", *flagStatsOut, err)
	}
}

func printReport(score float64, moves []int, elapsed time.Duration) {
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10")).
		Render(fmt.Sprintf("best score: %g", score))
	printCentered(header)
	fmt.Printf("moves (%d): %v\n", len(moves), moves)
	fmt.Printf("search took %s\n", elapsed)
}

func printCentered(block string) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		fmt.Println(block)
		return
	}
	for _, line := range strings.Split(block, "\n") {
		fmt.Println(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(line))
	}
}
