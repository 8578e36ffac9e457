// Command matreduce multiplies two matrices read from a text file and
// writes the product to another, reporting the run on stdout.
//
// The input file holds two blank-line-separated blocks of whitespace-
// separated numbers (operands A and B); the output file gets the product,
// one row per line. All computation happens in the mapreduce engine; this
// command is the surrounding glue: flags, files, and a styled report.
//
// Usage:
//
//	matreduce -in input.txt -out output.txt
//	matreduce -in pair.txt -workers 8 -strict
//	matreduce -in pair.txt -seq -quiet
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/katalvlaran/matreduce/mapreduce"
	"github.com/katalvlaran/matreduce/matio"
	"github.com/katalvlaran/matreduce/matrix"
)

const (
	defaultIn  = "input.txt"
	defaultOut = "output.txt"

	// previewRows caps how many result rows the report prints.
	previewRows = 8

	bytesPerGiB = 1 << 30
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6EC4F4"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6EF4A1"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F45E6E"))
)

func main() {
	var (
		inPath  = flag.String("in", defaultIn, "input file: two blank-line-separated matrix blocks")
		outPath = flag.String("out", defaultOut, "output file for the product matrix")
		workers = flag.Int("workers", mapreduce.DefaultWorkers, "worker count (0 = number of CPUs)")
		strict  = flag.Bool("strict", false, "fail on unpaired contraction indexes instead of skipping")
		seq     = flag.Bool("seq", false, "force the sequential pipeline")
		quiet   = flag.Bool("quiet", false, "suppress the report; errors still print")
	)
	flag.Parse()

	if err := run(*inPath, *outPath, *workers, *strict, *seq, *quiet); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("matreduce: "+err.Error()))
		os.Exit(1)
	}
}

func run(inPath, outPath string, workers int, strict, seq, quiet bool) error {
	runID := uuid.NewString()

	a, b, err := matio.ReadPairFile(inPath)
	if err != nil {
		return err
	}

	opts := []mapreduce.Option{mapreduce.WithWorkers(workers)}
	if seq {
		opts = append(opts, mapreduce.WithSequential())
	}
	if strict {
		opts = append(opts, mapreduce.WithStrictJoin())
	}

	start := time.Now()
	c, err := mapreduce.Multiply(a, b, opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err = matio.WriteFile(outPath, c); err != nil {
		return err
	}

	if !quiet {
		report(runID, inPath, outPath, a, b, c, workers, seq, elapsed)
	}

	return nil
}

// report prints the styled run summary: identity, host, shapes, timing and
// a preview of the product.
func report(runID, inPath, outPath string, a, b, c *matrix.Dense, workers int, seq bool, elapsed time.Duration) {
	fmt.Println(headerStyle.Render("matreduce run " + runID))
	fmt.Println(infoStyle.Render(hostLine()))
	fmt.Println(infoStyle.Render(fmt.Sprintf("A %dx%d · B %dx%d → C %dx%d",
		a.Rows(), a.Cols(), b.Rows(), b.Cols(), c.Rows(), c.Cols())))
	fmt.Println(infoStyle.Render(fmt.Sprintf("workers=%s sequential=%t elapsed=%s",
		workersLabel(workers), seq, elapsed.Round(time.Microsecond))))
	fmt.Println(successStyle.Render("result written to " + outPath + " (input: " + inPath + ")"))

	preview(c)
}

// hostLine summarizes the machine the run happened on. Probe failures fall
// back to runtime counts: the report is glue, never a reason to fail.
func hostLine() string {
	cores, err := cpu.Counts(true)
	if err != nil {
		cores = runtime.NumCPU()
	}

	var totalGiB float64
	if vm, err := mem.VirtualMemory(); err == nil {
		totalGiB = float64(vm.Total) / bytesPerGiB
	}

	return fmt.Sprintf("host: %d logical cores, %.1f GiB RAM", cores, totalGiB)
}

// workersLabel renders the worker flag the way the engine resolves it.
func workersLabel(workers int) string {
	if workers == mapreduce.DefaultWorkers {
		return fmt.Sprintf("auto(%d)", runtime.NumCPU())
	}

	return fmt.Sprintf("%d", workers)
}

// preview prints up to previewRows rows of the product.
func preview(c *matrix.Dense) {
	rows := c.ToRows()
	shown := len(rows)
	if shown > previewRows {
		shown = previewRows
	}
	for i := 0; i < shown; i++ {
		fmt.Println(rows[i])
	}
	if shown < len(rows) {
		fmt.Println(infoStyle.Render(fmt.Sprintf("… %d more rows", len(rows)-shown)))
	}
}
