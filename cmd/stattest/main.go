// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Stattest runs quick hypothesis tests on experimental samples and
// plots them.
//
// Usage:
//
//	stattest normality [flags] file
//	stattest compare [flags] file1 file2
//
// Each input file holds one sample: numbers separated by white space
// or commas, with # starting a comment that runs to the end of the
// line. With -col, the input is instead read as CSV with a header row
// and the sample is the named column. The file name - means standard
// input.
//
// The normality command runs a Shapiro-Wilk test on the sample and
// prints the sample size, the W statistic and the p-value. A small
// p-value is evidence that the sample was not drawn from a normal
// distribution. With -o, it also writes a histogram of the sample.
//
// The compare command runs a t-test of the hypothesis that the two
// samples have equal means. It prints the count, mean, minimum,
// median and maximum of each sample followed by the t statistic, its
// degrees of freedom, the p-value and a significance marker: *** for
// p < 0.001, ** for p < 0.01 and * for p < 0.05. The -test flag
// selects the independent-samples Student's t-test ("students", the
// default) or the paired t-test ("within-subjects"), which requires
// samples of equal length. With -o, it also writes a boxplot of both
// samples, joined by a bracket carrying the marker when the difference
// is significant.
//
// The format of the -o image is chosen from its extension: .png, .svg
// or .pdf. The -width and -height flags give its size in centimeters.
//
// Example
//
// Suppose we measured reaction times before and after a treatment,
// one subject per line, in before.txt and after.txt. Then
//
//	stattest compare -test within-subjects -names before,after -y "time (ms)" -o rt.png before.txt after.txt
//
// prints a summary of each sample and the paired t-test result, and
// saves the boxplot to rt.png.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"golang.org/x/stattest/explore"
	"golang.org/x/stattest/internal/texttab"
	"golang.org/x/stattest/samplefmt"
	"golang.org/x/stattest/sigplot"
	"golang.org/x/stattest/sigtest"
)

var exit = os.Exit // replaced during testing

// errUsage reports a command line that could not be parsed. The usage
// message has already been printed.
var errUsage = errors.New("usage error")

func usage(w io.Writer) {
	fmt.Fprint(w, `usage: stattest normality [flags] file
       stattest compare [flags] file1 file2
Run "stattest <command> -h" for the flags of a command.
`)
}

func main() {
	log.SetPrefix("stattest: ")
	log.SetFlags(0)
	if err := stattest(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			exit(2)
		}
		log.Print(err)
		exit(1)
	}
}

// stattest runs the command line args, writing the report to w and
// diagnostics to wErr.
func stattest(w, wErr io.Writer, args []string) error {
	if len(args) == 0 {
		usage(wErr)
		return errUsage
	}
	switch args[0] {
	case "normality":
		return normality(w, wErr, args[1:])
	case "compare":
		return compare(w, wErr, args[1:])
	case "help", "-h", "-help", "--help":
		usage(wErr)
		return errUsage
	}
	fmt.Fprintf(wErr, "stattest: unknown command %q\n", args[0])
	usage(wErr)
	return errUsage
}

// commonFlags are the input and output flags shared by all commands.
type commonFlags struct {
	col           string
	out           string
	width, height float64
}

func newFlagSet(wErr io.Writer, name, argsUsage string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(wErr)
	fs.Usage = func() {
		fmt.Fprintf(wErr, "usage: stattest %s [flags] %s\n", name, argsUsage)
		fs.PrintDefaults()
	}
	var c commonFlags
	fs.StringVar(&c.col, "col", "", "read CSV input and take the sample from `column`")
	fs.StringVar(&c.out, "o", "", "write the plot to `file` (.png, .svg or .pdf)")
	fs.Float64Var(&c.width, "width", 16, "plot width in `cm`")
	fs.Float64Var(&c.height, "height", 12, "plot height in `cm`")
	return fs, &c
}

// parse parses args with fs and checks that exactly nArgs positional
// arguments remain.
func parse(fs *flag.FlagSet, c *commonFlags, args []string, nArgs int) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != nArgs {
		fs.Usage()
		return errUsage
	}
	if c.width <= 0 || c.height <= 0 {
		fmt.Fprintf(fs.Output(), "plot size must be positive, got %gx%g\n", c.width, c.height)
		fs.Usage()
		return errUsage
	}
	stdin := 0
	for _, name := range fs.Args() {
		if name == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		fmt.Fprintf(fs.Output(), "standard input can only be read once\n")
		fs.Usage()
		return errUsage
	}
	return nil
}

// readSample reads the sample in the named file, or standard input if
// name is "-".
func (c *commonFlags) readSample(name string) ([]float64, error) {
	var r io.Reader
	fileName := name
	if name == "-" {
		r, fileName = os.Stdin, "<stdin>"
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if c.col != "" {
		return samplefmt.ReadCSV(r, fileName, c.col)
	}
	return samplefmt.ReadAll(r, fileName)
}

// save writes p to the -o file, if any.
func (c *commonFlags) save(p *plot.Plot) error {
	if c.out == "" {
		return nil
	}
	return sigplot.Save(p, vg.Length(c.width)*vg.Centimeter, vg.Length(c.height)*vg.Centimeter, c.out)
}

func normality(w, wErr io.Writer, args []string) error {
	fs, c := newFlagSet(wErr, "normality", "file")
	xLabel := fs.String("x", "", "x-axis `label` of the histogram")
	bins := fs.Int("bins", 0, "number of histogram `bins` (0 picks one from the sample size)")
	if err := parse(fs, c, args, 1); err != nil {
		return err
	}

	sample, err := c.readSample(fs.Arg(0))
	if err != nil {
		return err
	}
	p, res, err := explore.CheckNormality(sample, *xLabel, sigplot.Bins(*bins))
	if err != nil {
		return fmt.Errorf("%s: %w", fs.Arg(0), err)
	}

	var tab texttab.Table
	tab.Row().Cell("n").Cell("W").Cell("p")
	tab.Row().Cellf("%d", res.N).Cellf("%.4f", res.W).Cellf("%.3g", res.P)
	if err := tab.Format(w); err != nil {
		return err
	}
	return c.save(p)
}

func compare(w, wErr io.Writer, args []string) error {
	fs, c := newFlagSet(wErr, "compare", "file1 file2")
	testName := fs.String("test", "students", "t-test to run: students or within-subjects")
	namesFlag := fs.String("names", "", "comma-separated `names` of the two samples (default the file names)")
	yLabel := fs.String("y", "", "y-axis `label` of the boxplot")
	if err := parse(fs, c, args, 2); err != nil {
		return err
	}

	test, err := sigtest.ParseTestType(*testName)
	if err != nil {
		return err
	}
	var names [2]string
	if *namesFlag != "" {
		parts := strings.Split(*namesFlag, ",")
		if len(parts) != 2 {
			fmt.Fprintf(wErr, "-names must have exactly two names, got %q\n", *namesFlag)
			fs.Usage()
			return errUsage
		}
		copy(names[:], parts)
	} else {
		for i, name := range fs.Args() {
			names[i] = filepath.Base(name)
		}
		if names[0] == names[1] {
			copy(names[:], fs.Args())
		}
	}

	var samples [2][]float64
	for i, name := range fs.Args() {
		if samples[i], err = c.readSample(name); err != nil {
			return err
		}
	}
	p, res, err := explore.CompareMeans(samples, test, names, *yLabel)
	if err != nil {
		return err
	}

	if err := writeSummary(w, res); err != nil {
		return err
	}
	fmt.Fprintln(w)
	var tab texttab.Table
	tab.Row().Cell("test").Cell("t").Cell("df").Cell("p")
	tab.Row().Cell(res.Test.String()).Cellf("%.3f", res.T).Cellf("%g", res.DoF).Cellf("%.3g", res.P)
	if stars := res.Significance.String(); stars != "" {
		tab.Cell(stars)
	}
	if err := tab.Format(w); err != nil {
		return err
	}
	return c.save(p)
}

// writeSummary prints one row of descriptive statistics per sample.
func writeSummary(w io.Writer, res explore.MeanComparison) error {
	sum := sigtest.Summarize(res.Table)
	labels := sum.MustColumn(sigtest.LabelCol).([]string)
	counts := sum.MustColumn(sigtest.CountCol).([]int)
	cols := []string{sigtest.MeanCol, sigtest.MinCol, sigtest.MedianCol, sigtest.MaxCol}

	var tab texttab.Table
	tab.Row().Cell("sample").Cell("n").Cell("mean").Cell("min").Cell("median").Cell("max")
	for i, label := range labels {
		tab.Row().Cell(label).Cellf("%d", counts[i])
		for _, col := range cols {
			tab.Cellf("%.4g", sum.MustColumn(col).([]float64)[i])
		}
	}
	return tab.Format(w)
}
