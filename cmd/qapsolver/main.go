// Command qapsolver runs the hybrid GWO + Tabu Search QAP optimizer on a
// plain-text instance file.
//
// Flags follow GNU style (pflag); every flag can also be supplied through
// the environment with the QAPSOLVER_ prefix (dashes become underscores,
// e.g. QAPSOLVER_PACK_SIZE=50), with explicit flags taking precedence.
//
// Exit codes: 0 on success or --help, 1 on configuration or load failure.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Prajwal-k-tech/siliconspire/gwo"
	"github.com/Prajwal-k-tech/siliconspire/qap"
)

const defaultInstance = "silicon_spire.txt"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the testable entry point: parse + validate configuration, load the
// instance, solve, report. Returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("qapsolver", pflag.ContinueOnError)
	fs.SetOutput(io.Discard) // messages are rendered below, not by pflag
	fs.SortFlags = false

	fs.String("input-file", defaultInstance, "path to the QAP instance file")
	fs.Int("pack-size", 30, "number of wolves (minimum 3)")
	fs.Int("max-iterations", 100, "GWO iteration budget")
	fs.Int("ts-iterations", 50, "Tabu Search iterations per refinement (0 disables)")
	fs.Int("tabu-tenure", 10, "tabu list capacity")
	fs.Int("ts-every", 1, "apply Tabu Search every K-th iteration")
	fs.Float64("jitter", 0, "uniform position-noise amplitude")
	fs.Int64("seed", 0, "random seed (0 selects the fixed default stream)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printUsage(stdout, fs)
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printUsage(stderr, fs)
		return 1
	}

	// Flag > environment > default resolution via viper.
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	v.SetEnvPrefix("QAPSOLVER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	inputFile := v.GetString("input-file")

	opts := gwo.DefaultOptions()
	opts.PackSize = v.GetInt("pack-size")
	opts.MaxIterations = v.GetInt("max-iterations")
	opts.TSIterations = v.GetInt("ts-iterations")
	opts.TabuTenure = v.GetInt("tabu-tenure")
	opts.TSEvery = v.GetInt("ts-every")
	opts.Jitter = v.GetFloat64("jitter")
	opts.Seed = v.GetInt64("seed")

	if err := opts.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printUsage(stderr, fs)
		return 1
	}

	fmt.Fprintf(stdout, "Loading QAP instance from: %s\n", inputFile)
	p, err := qap.Load(inputFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "Problem size: %dx%d\n", p.N(), p.N())

	fmt.Fprintf(stdout, "\nStarting Grey Wolf Optimizer + Tabu Search hybrid algorithm...\n")
	fmt.Fprintf(stdout, "Pack size: %d, Max iterations: %d\n", opts.PackSize, opts.MaxIterations)
	fmt.Fprintf(stdout, "Tabu Search iterations: %d, Tabu tenure: %d\n", opts.TSIterations, opts.TabuTenure)

	opts.Progress = func(iteration int, best int64) {
		if iteration == 0 {
			fmt.Fprintf(stdout, "Initial best cost: %d\n\n", best)
			return
		}
		fmt.Fprintf(stdout, "Iteration %d: Best cost = %d\n", iteration, best)
	}

	res, err := gwo.Solve(p, opts)
	if err != nil {
		// Unreachable after Validate, but never swallow an error.
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	writeReport(stdout, res)

	return 0
}

// printUsage renders the flag surface. Destination differs by context:
// stdout for --help, stderr for failures.
func printUsage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "QAP Solver - Grey Wolf Optimizer with Tabu Search\n")
	fmt.Fprintf(w, "Usage: qapsolver [options]\n\nOptions:\n")
	fmt.Fprint(w, fs.FlagUsages())
}
