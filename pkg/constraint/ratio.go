package constraint

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/anchorgraph/pkg/errors"
)

// DimensionRatio returns the width/height ratio, or 0 when none is set.
func (w *Widget) DimensionRatio() float32 { return w.dimensionRatio }

// DimensionRatioSide returns the axis the ratio constrains: [Horizontal],
// [Vertical], or [Unknown] to let the solver decide.
func (w *Widget) DimensionRatioSide() int { return w.dimensionRatioSide }

// SetDimensionRatio sets the ratio and the side it constrains.
func (w *Widget) SetDimensionRatio(ratio float32, side int) {
	w.dimensionRatio = ratio
	w.dimensionRatioSide = side
}

// SetDimensionRatioString parses s with [ParseDimensionRatio] and applies it.
// An empty string clears the ratio. On error the widget is not modified.
func (w *Widget) SetDimensionRatioString(s string) error {
	if strings.TrimSpace(s) == "" {
		w.SetDimensionRatio(0, Unknown)
		return nil
	}
	ratio, side, err := ParseDimensionRatio(s)
	if err != nil {
		return err
	}
	w.SetDimensionRatio(ratio, side)
	return nil
}

// ParseDimensionRatio parses a ratio written as "16:9" or "1.5", optionally
// prefixed by the constrained side: "W,16:9" or "H,3:4". For the H side a
// fraction is read as height:width, so "H,3:4" yields 4/3. Ratios must be
// strictly positive.
func ParseDimensionRatio(s string) (ratio float32, side int, err error) {
	side = Unknown
	body := strings.TrimSpace(s)
	if i := strings.IndexByte(body, ','); i > 0 && i < len(body)-1 {
		switch strings.ToUpper(strings.TrimSpace(body[:i])) {
		case "W":
			side = int(Horizontal)
		case "H":
			side = int(Vertical)
		default:
			return 0, Unknown, errors.New(errors.ErrCodeInvalidRatio, "invalid ratio side %q in %q", body[:i], s)
		}
		body = body[i+1:]
	}

	var value float64
	if num, den, ok := strings.Cut(body, ":"); ok {
		n, nerr := parseRatioTerm(num)
		d, derr := parseRatioTerm(den)
		if nerr != nil || derr != nil || n <= 0 || d <= 0 {
			return 0, Unknown, errors.New(errors.ErrCodeInvalidRatio, "invalid ratio %q", s)
		}
		if side == int(Vertical) {
			value = math.Abs(d / n)
		} else {
			value = math.Abs(n / d)
		}
	} else {
		v, perr := parseRatioTerm(body)
		if perr != nil || v <= 0 {
			return 0, Unknown, errors.New(errors.ErrCodeInvalidRatio, "invalid ratio %q", s)
		}
		value = v
	}
	return float32(value), side, nil
}

func parseRatioTerm(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, strconv.ErrRange
	}
	return v, nil
}
