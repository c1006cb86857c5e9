// Package report prints the summary of a trimming run and optional cut position plots.
package report

import (
	"fmt"
	"github.com/dasnellings/bcTrim/trim"
	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"github.com/vertgenlab/gonomics/numbers"
	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"io"
)

// Info names the files involved in a run.
type Info struct {
	R1        string
	R2        string
	Whitelist string
	Output    string
}

// Header writes the input file names. It is printed before trimming starts.
func Header(w io.Writer, info Info) {
	fmt.Fprintln(w, "Infiles:", info.R1, info.R2)
	fmt.Fprintln(w, "Whitelistfile:", info.Whitelist)
}

// Summary writes the run statistics. Percentages are relative to total reads,
// or total bases for trimmed bases, and are 0 when the count is 0.
func Summary(w io.Writer, info Info, s trim.Stats) {
	highlight := color.New(color.FgHiGreen)
	fmt.Fprintln(w, "BCtrimmedfile:", info.Output)
	fmt.Fprintln(w, "R2_Stats:")
	fmt.Fprintln(w, "Total_reads:", s.Reads)
	highlight.Fprintf(w, "BCtrimmed(0_mismatch): %d (%.2f%%)\n", s.ZeroMismatch, percent(s.ZeroMismatch, s.Reads))
	highlight.Fprintf(w, "BCtrimmed(1_mismatch): %d (%.2f%%)\n", s.OneMismatch, percent(s.OneMismatch, s.Reads))
	fmt.Fprintln(w, "Total_bases:", s.Bases)
	highlight.Fprintf(w, "Total_bases_trimmed: %d (%.2f%%)\n", s.TrimmedBases, percent(s.TrimmedBases, s.Bases))
	fmt.Fprintln(w, "Empty_reads_replaced:", s.Sentinels)
	mean, std := RemovedMeanStdDev(s)
	fmt.Fprintf(w, "Bases_trimmed_per_trimmed_read: %.2f (sd %.2f)\n", mean, std)
	fmt.Fprintln(w)
}

// RemovedMeanStdDev returns the mean and standard deviation of the number of bases removed
// from each trimmed read. Both are 0 if no reads were trimmed, and the standard deviation
// is 0 if only one read was trimmed.
func RemovedMeanStdDev(s trim.Stats) (mean, std float64) {
	if len(s.Removed) == 0 {
		return 0, 0
	}
	keys := maps.Keys(s.Removed)
	x := make([]float64, len(keys))
	weights := make([]float64, len(keys))
	var total float64
	for i, k := range keys {
		x[i] = float64(k)
		weights[i] = float64(s.Removed[k])
		total += weights[i]
	}
	if total < 2 {
		return x[0], 0
	}
	return stat.MeanStdDev(x, weights)
}

// CutCounts returns the number of trimmed reads at each cut position from 0 to the
// largest observed cut.
func CutCounts(s trim.Stats) []float64 {
	var max int
	for k := range s.Cuts {
		max = numbers.Max(max, k)
	}
	ans := make([]float64, max+1)
	for k, v := range s.Cuts {
		ans[k] = float64(v)
	}
	return ans
}

// Graph draws the cut position counts as a terminal line graph.
func Graph(w io.Writer, s trim.Stats) {
	if len(s.Cuts) == 0 {
		fmt.Fprintln(w, "No reads trimmed.")
		return
	}
	fmt.Fprintln(w, asciigraph.Plot(CutCounts(s), asciigraph.Height(10), asciigraph.Precision(0), asciigraph.Caption("trimmed reads by cut position")))
}

// Plot saves a bar chart of cut position counts. The image format is chosen from
// the extension of filename (e.g. .png, .pdf, .svg).
func Plot(filename string, s trim.Stats) error {
	counts := CutCounts(s)
	bars, err := plotter.NewBarChart(plotter.Values(counts), vg.Points(2))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)

	p := plot.New()
	p.Add(bars)
	p.Title.Text = "Read 2 barcode read-through"
	p.X.Label.Text = "Cut position (bases kept)"
	p.Y.Label.Text = "Reads"
	return p.Save(20*vg.Centimeter, 12*vg.Centimeter, filename)
}

func percent(n, total int) float64 {
	if n == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
