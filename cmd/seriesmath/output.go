package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"github.com/samber/lo"

	"github.com/alexshd/seriesmath"
)

// number is a report float whose JSON form writes NaN and ±Inf as the
// strings "NaN", "+Inf" and "-Inf". YAML encodes the underlying float.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(f)
}

func (n *number) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("decode number %q: %w", s, err)
		}
		*n = number(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = number(f)
	return nil
}

func numbers(values []float64) []number {
	return lo.Map(values, func(v float64, _ int) number { return number(v) })
}

type evalReport struct {
	Function  string   `json:"function" yaml:"function"`
	Args      []number `json:"args" yaml:"args"`
	Precision int      `json:"precision" yaml:"precision"`
	Value     number   `json:"value" yaml:"value"`
	Reference number   `json:"reference" yaml:"reference"`
	AbsError  number   `json:"abs_error" yaml:"abs_error"`
}

type sweepRow struct {
	Precision  int    `json:"precision" yaml:"precision"`
	Value      number `json:"value" yaml:"value"`
	AbsError   number `json:"abs_error" yaml:"abs_error"`
	RelError   number `json:"rel_error" yaml:"rel_error"`
	DurationNS int64  `json:"duration_ns" yaml:"duration_ns"`
}

type rateReport struct {
	Slope     number `json:"slope" yaml:"slope"`
	Intercept number `json:"intercept" yaml:"intercept"`
	RSquared  number `json:"r_squared" yaml:"r_squared"`
	Points    int    `json:"points" yaml:"points"`
}

type sweepReport struct {
	Function  string      `json:"function" yaml:"function"`
	Args      []number    `json:"args" yaml:"args"`
	Reference number      `json:"reference" yaml:"reference"`
	Levels    []sweepRow  `json:"levels" yaml:"levels"`
	Rate      *rateReport `json:"rate,omitempty" yaml:"rate,omitempty"`
}

func newSweepReport(name string, args []float64, reference float64, results []seriesmath.Result) sweepReport {
	return sweepReport{
		Function:  name,
		Args:      numbers(args),
		Reference: number(reference),
		Levels: lo.Map(results, func(r seriesmath.Result, _ int) sweepRow {
			return sweepRow{
				Precision:  r.Precision,
				Value:      number(r.Value),
				AbsError:   number(r.AbsError),
				RelError:   number(r.RelError),
				DurationNS: r.Duration.Nanoseconds(),
			}
		}),
	}
}

// write encodes v as json or yaml. Text output is handled by the caller.
func write(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func writeEvalText(w io.Writer, r evalReport) error {
	_, err := fmt.Fprintf(w, "%s%v  p=%d\n  series:    %.17g\n  reference: %.17g\n  abs error: %.3e\n",
		r.Function, r.Args, r.Precision, r.Value, r.Reference, r.AbsError)
	return err
}

func writeSweepText(w io.Writer, r sweepReport) error {
	fmt.Fprintf(w, "%s%v  reference=%.17g\n\n", r.Function, r.Args, r.Reference)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PRECISION\tVALUE\tABS ERROR\tREL ERROR\tTIME")
	for _, row := range r.Levels {
		fmt.Fprintf(tw, "%d\t%.17g\t%.3e\t%.3e\t%dns\n",
			row.Precision, row.Value, row.AbsError, row.RelError, row.DurationNS)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if r.Rate != nil {
		fmt.Fprintf(w, "\nlog10(error) ≈ %.4f·p + %.4f  (R²=%.4f, %d points)\n",
			r.Rate.Slope, r.Rate.Intercept, r.Rate.RSquared, r.Rate.Points)
	}
	return nil
}
