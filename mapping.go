package knobs

import (
	"math"
	"strconv"
	"strings"
)

// defaultPrecision is used when a format carries no explicit precision.
const defaultPrecision = 3

// RatioFromValue maps v inside [vMin, vMax] to t in [0, 1]. Values outside
// the range clamp. An empty range (vMin == vMax) maps to 0. When log is set the
// mapping is logarithmic; eps is the magnitude treated as zero and must be
// positive.
func RatioFromValue(v, vMin, vMax float64, log bool, eps float64) float64 {
	if vMin == vMax {
		return 0
	}
	flipped := vMax < vMin
	lo, hi := vMin, vMax
	if flipped {
		lo, hi = hi, lo
	}
	v = clamp(v, lo, hi)

	var t float64
	if !log {
		t = (v - lo) / (hi - lo)
	} else {
		t = logRatio(v, lo, hi, eps)
	}
	if flipped {
		return 1 - t
	}
	return t
}

// logRatio is the logarithmic half of RatioFromValue for lo < hi.
func logRatio(v, lo, hi, eps float64) float64 {
	loF, hiF := fudgeBounds(lo, hi, eps)

	switch {
	case v <= loF:
		return 0
	case v >= hiF:
		return 1
	case lo*hi < 0:
		// Range crosses zero: zero sits at its linear position, each side is
		// its own log scale and values within eps of zero snap to it.
		zero := -lo / (hi - lo)
		switch {
		case math.Abs(v) < eps:
			return zero
		case v < 0:
			return (1 - math.Log(-v/eps)/math.Log(-loF/eps)) * zero
		default:
			return zero + math.Log(v/eps)/math.Log(hiF/eps)*(1-zero)
		}
	case lo < 0 || hi < 0:
		return 1 - math.Log(-v/-hiF)/math.Log(-loF/-hiF)
	default:
		return math.Log(v/loF) / math.Log(hiF/loF)
	}
}

// ValueFromRatio is the inverse of RatioFromValue.
func ValueFromRatio(t, vMin, vMax float64, log bool, eps float64) float64 {
	if t <= 0 || vMin == vMax {
		return vMin
	}
	if t >= 1 {
		return vMax
	}
	flipped := vMax < vMin
	lo, hi := vMin, vMax
	if flipped {
		lo, hi = hi, lo
		t = 1 - t
	}
	if !log {
		return lo + (hi-lo)*t
	}

	loF, hiF := fudgeBounds(lo, hi, eps)
	switch {
	case lo*hi < 0:
		zero := -lo / (hi - lo)
		switch {
		case t == zero:
			return 0
		case t < zero:
			return -(eps * math.Pow(-loF/eps, 1-t/zero))
		default:
			return eps * math.Pow(hiF/eps, (t-zero)/(1-zero))
		}
	case lo < 0 || hi < 0:
		return -(-hiF * math.Pow(-loF/-hiF, 1-t))
	default:
		return loF * math.Pow(hiF/loF, t)
	}
}

// fudgeBounds pushes bounds that sit within eps of zero out to ±eps so the
// logarithm stays finite.
func fudgeBounds(lo, hi, eps float64) (float64, float64) {
	loF, hiF := lo, hi
	if math.Abs(lo) < eps {
		if lo < 0 {
			loF = -eps
		} else {
			loF = eps
		}
	}
	if math.Abs(hi) < eps {
		if hi < 0 {
			hiF = -eps
		} else {
			hiF = eps
		}
	}
	// An all-negative range ending at zero keeps its upper bound negative.
	if hi == 0 && lo < 0 {
		hiF = -eps
	}
	return loF, hiF
}

// AngleForRatio maps t in [0, 1] onto [angleMin, angleMax].
func AngleForRatio(t, angleMin, angleMax float64) float64 {
	return angleMin + (angleMax-angleMin)*t
}

// FormatPrecision returns the precision of the first floating point verb in a
// printf format ("%.2f" → 2). Formats without one report defaultPrecision;
// integer verbs report 0.
func FormatPrecision(format string) int {
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i < len(format) && format[i] == '%' {
			continue
		}
		// Skip flags and width.
		for i < len(format) && strings.IndexByte("+-# 0123456789", format[i]) >= 0 {
			i++
		}
		prec := -1
		if i < len(format) && format[i] == '.' {
			i++
			start := i
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
			prec = 0
			if i > start {
				prec, _ = strconv.Atoi(format[start:i])
			}
		}
		if i >= len(format) {
			break
		}
		switch format[i] {
		case 'd', 'i', 'x', 'X', 'o', 'b', 'c':
			return 0
		}
		if prec >= 0 {
			return prec
		}
		return defaultPrecision
	}
	return defaultPrecision
}

// LogEpsilon returns the magnitude treated as zero for a logarithmic knob
// displayed with the given format: one unit of the last printed decimal, so
// integer formats give 1.
func LogEpsilon(format string) float64 {
	p := max(FormatPrecision(format), 0)
	return math.Pow(10, -float64(p))
}

// RoundToPrecision rounds v to the given number of decimals.
func RoundToPrecision(v float64, precision int) float64 {
	if precision < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
