package dataset

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/manningwu07/regression/params"
)

const describeHeader = "The data was generated using the following code."

type term struct {
	coef float64
	sym  string // "" for a constant
}

// Formula renders the generating code from params.Config, the same terms
// Build evaluates, so the text cannot drift from the computation.
func Formula() string {
	cfg := params.Config
	noise := fmt.Sprintf("randn(%d)", cfg.Rows)

	var b strings.Builder
	fmt.Fprintf(&b, "Z = randn(%d, %d)\n", cfg.Rows, cfg.Cols)
	b.WriteString("X = Z\n")
	for _, t := range cfg.Transforms {
		terms := []term{{t.Scale, zCol(t.Col)}, {t.Offset, ""}}
		if t.HasRef {
			terms = append(terms, term{t.RefCoef, zCol(t.Ref)})
		}
		fmt.Fprintf(&b, "X[:,%d] = %s\n", t.Col, joinTerms(terms))
	}

	terms := make([]term, 0, len(cfg.Target)+1)
	for _, t := range cfg.Target {
		terms = append(terms, term{t.Coef, fmt.Sprintf("X[:,%d]", t.Col)})
	}
	terms = append(terms, term{cfg.NoiseScale, noise})
	fmt.Fprintf(&b, "y = %s", joinTerms(terms))
	return b.String()
}

// Describe writes a short explanation followed by Formula, indented.
func Describe(w io.Writer) error {
	var b strings.Builder
	b.WriteString(describeHeader)
	b.WriteByte('\n')
	for _, line := range strings.Split(Formula(), "\n") {
		b.WriteString("    ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func zCol(j int) string { return fmt.Sprintf("Z[:,%d]", j) }

// joinTerms prints a signed sum, dropping zero terms and unit coefficients.
func joinTerms(terms []term) string {
	var b strings.Builder
	for _, t := range terms {
		if t.coef == 0 {
			continue
		}
		switch {
		case b.Len() == 0 && t.coef < 0:
			b.WriteString("-")
		case b.Len() > 0 && t.coef < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		mag := math.Abs(t.coef)
		switch {
		case t.sym == "":
			b.WriteString(formatNum(mag))
		case mag == 1:
			b.WriteString(t.sym)
		default:
			b.WriteString(formatNum(mag))
			b.WriteByte('*')
			b.WriteString(t.sym)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
