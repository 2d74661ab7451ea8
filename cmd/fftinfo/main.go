// Command fftinfo reports what the native pocketfft engine offers for a
// set of target transform lengths.
//
// Usage:
//
//	fftinfo [flags] [target-length ...]
//
// Without arguments it prints fast lengths for a default set of targets.
//
// Examples:
//
//	fftinfo 42 1000 4096
//	fftinfo -probe 64
//	fftinfo -lib
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-pocketfft/array"
	"github.com/cwbudde/algo-pocketfft/fft"
	"github.com/cwbudde/algo-pocketfft/pocketfft"
)

var defaultTargets = []int{42, 100, 512, 1000, 4096, 10007, 65536}

func main() {
	libOnly := flag.Bool("lib", false, "print engine path and availability, then exit")
	probe := flag.Int("probe", 0, "transform a sine probe of the given length and print its magnitude spectrum")
	norm := flag.String("norm", "backward", "normalization mode for the probe transform (backward, ortho, forward)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fftinfo [flags] [target-length ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints fast transform lengths recommended by the pocketfft engine.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fftinfo 42 1000 4096\n")
		fmt.Fprintf(os.Stderr, "  fftinfo -probe 64\n")
		fmt.Fprintf(os.Stderr, "  fftinfo -lib\n")
	}
	flag.Parse()

	if !pocketfft.Available() {
		fmt.Fprintf(os.Stderr, "error: pocketfft bridge library not found (set POCKETFFT_LIBRARY or POCKETFFT_PATH)\n")
		os.Exit(1)
	}

	fmt.Printf("engine: %s\n", pocketfft.LibraryPath())

	if *libOnly {
		return
	}

	if *probe > 0 {
		if err := printProbe(*probe, *norm); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		return
	}

	targets := defaultTargets
	if args := flag.Args(); len(args) > 0 {
		targets = nil
		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 1 {
				fmt.Fprintf(os.Stderr, "warning: skipping invalid target %q\n", arg)
				continue
			}

			targets = append(targets, n)
		}
	}
	if len(targets) == 0 {
		fmt.Fprintf(os.Stderr, "error: no valid target lengths\n")
		os.Exit(1)
	}

	printFastLengths(targets)
}

func printFastLengths(targets []int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Target\tFast (complex)\tFast (real)\n")

	for _, target := range targets {
		cplxLen, err := fft.NextFastLen(target, false)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		realLen, err := fft.NextFastLen(target, true)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(tw, "%d\t%d\t%d\n", target, cplxLen, realLen)
	}

	tw.Flush()
}

// printProbe transforms a single-cycle sine and prints the magnitude per
// bin; with an exact engine the energy lands in bin 1 alone.
func printProbe(n int, normToken string) error {
	norm, err := fft.ParseNorm(normToken)
	if err != nil {
		return err
	}

	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / float64(n))
	}

	x, err := array.FromFloat64(signal)
	if err != nil {
		return err
	}

	spectrum, err := fft.RFFT(x, fft.WithNorm(norm))
	if err != nil {
		return err
	}

	bins := spectrum.Complex128s()
	re := make([]float64, len(bins))
	im := make([]float64, len(bins))

	for i, b := range bins {
		re[i] = real(b)
		im[i] = imag(b)
	}

	mag := make([]float64, len(bins))
	vecmath.Magnitude(mag, re, im)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Bin\tMagnitude\n")

	for i, m := range mag {
		fmt.Fprintf(tw, "%d\t%.6f\n", i, m)
	}

	return tw.Flush()
}
