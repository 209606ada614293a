// Package plotjson emits plot variables in the fixed JSON layout older
// plotting consumers expect: tab indentation, quoted six-decimal values
// and a bare-number stdValues block. The layout is byte-stable; encoding
// through a JSON library would reorder and re-escape it.
package plotjson

import (
	"fmt"
	"io"
	"math"

	"distio/domain/plot"
	"distio/ports"
)

// Writer emits plot variables to one output stream.
type Writer struct {
	out          io.Writer
	floatFitter  ports.Fitter[float32]
	doubleFitter ports.Fitter[float64]
}

// NewWriter creates a plot writer. The fitters supply the second moment
// for the stdValues block at each precision.
func NewWriter(out io.Writer, floatFitter ports.Fitter[float32], doubleFitter ports.Fitter[float64]) *Writer {
	return &Writer{out: out, floatFitter: floatFitter, doubleFitter: doubleFitter}
}

// WritePlots emits all variables under one description.
func (w *Writer) WritePlots(variables []plot.Variable, description string) error {
	p := &printer{out: w.out}

	p.printf("{\n")
	p.printf("\t\"description\": \"%s\",\n", description)
	p.printf("\t\"plots\": [\n")

	for i, v := range variables {
		p.printf("\t\t{\n")
		// variableID duplicates the symbol for older consumers.
		p.printf("\t\t\t\"variableID\": \"%s\",\n", v.Symbol)
		p.printf("\t\t\t\"variableSymbol\": \"%s\",\n", v.Symbol)
		p.printf("\t\t\t\"variableDescription\": \"%s\",\n", v.Description)

		p.printf("\t\t\t\"values\": [\n")
		w.writeValues(p, v.Values)
		p.printf("\t\t\t],\n")

		p.printf("\t\t\t\"stdValues\": [\n")
		w.writeStdValues(p, v.Values)
		p.printf("\t\t\t]\n")

		p.printf("\t\t}")
		if i < len(variables)-1 {
			p.printf(",")
		}
		p.printf("\n")
	}

	p.printf("\t]\n")
	p.printf("}\n")

	return p.err
}

// writeValues emits the quoted values block. Distribution values print
// their representative without padding; particle values print with a
// sign-slot space.
func (w *Writer) writeValues(p *printer, values plot.Values) {
	switch vals := values.(type) {
	case plot.DoubleValues:
		for j, v := range vals {
			p.printf("\t\t\t\t\"%s\"", formatFixed(v.Representative(), false))
			p.separator(j, len(vals))
		}
	case plot.FloatValues:
		for j, v := range vals {
			p.printf("\t\t\t\t\"%s\"", formatFixed(float64(v.Representative()), false))
			p.separator(j, len(vals))
		}
	case plot.DoubleParticles:
		for j, v := range vals {
			p.printf("\t\t\t\t\"%s\"", formatFixed(v, true))
			p.separator(j, len(vals))
		}
	case plot.FloatParticles:
		for j, v := range vals {
			p.printf("\t\t\t\t\"%s\"", formatFixed(float64(v), true))
			p.separator(j, len(vals))
		}
	default:
		p.fail(fmt.Errorf("unsupported values type %T", values))
	}
}

// writeStdValues emits the bare-number spread block: the second moment
// for distribution values, zero for particles.
func (w *Writer) writeStdValues(p *printer, values plot.Values) {
	switch vals := values.(type) {
	case plot.DoubleValues:
		for j, v := range vals {
			p.printf("\t\t\t\t%s", formatFixed(w.doubleFitter.NthMoment(v, 2), true))
			p.separator(j, len(vals))
		}
	case plot.FloatValues:
		for j, v := range vals {
			p.printf("\t\t\t\t%s", formatFixed(w.floatFitter.NthMoment(v, 2), true))
			p.separator(j, len(vals))
		}
	case plot.DoubleParticles:
		for j := range vals {
			p.printf("\t\t\t\t%s", formatFixed(0, true))
			p.separator(j, len(vals))
		}
	case plot.FloatParticles:
		for j := range vals {
			p.printf("\t\t\t\t%s", formatFixed(0, true))
			p.separator(j, len(vals))
		}
	default:
		p.fail(fmt.Errorf("unsupported values type %T", values))
	}
}

// formatFixed renders v in fixed notation with six decimals. Special
// values come out lowercase, and spacePad reserves a sign slot the way
// the space flag does.
func formatFixed(v float64, spacePad bool) string {
	switch {
	case math.IsNaN(v):
		if spacePad {
			return " nan"
		}
		return "nan"
	case math.IsInf(v, 1):
		if spacePad {
			return " inf"
		}
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	if spacePad {
		return fmt.Sprintf("% f", v)
	}
	return fmt.Sprintf("%f", v)
}

// printer tracks the first write failure so the layout code stays free
// of error plumbing.
type printer struct {
	out io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.out, format, args...)
}

// separator closes item j of n: a comma continuation between items, a
// bare newline after the last.
func (p *printer) separator(j, n int) {
	if j < n-1 {
		p.printf(", \n")
	} else {
		p.printf("\n")
	}
}

func (p *printer) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}
