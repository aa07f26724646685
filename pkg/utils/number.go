package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount reads a monitored value. The stores hold a mix of plain numeric
// strings ("1234.56") and Indonesian locale strings ("1.234,56"); both parse
// to the same number. Anything unparseable is zero.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0
	}

	if strings.Contains(s, ",") {
		// id-ID: dots are thousand separators, comma is the decimal mark.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if isDotGrouped(cleaned) {
		// "3.500.000" without a decimal comma is still id-ID grouping.
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}

// isDotGrouped reports whether s is digits grouped in threes by dots, like
// "1.500" or "3.500.000", ignoring a leading sign.
func isDotGrouped(s string) bool {
	s = strings.TrimPrefix(strings.TrimSpace(s), "-")
	groups := strings.Split(s, ".")
	if len(groups) < 2 {
		return false
	}
	for i, g := range groups {
		if i == 0 {
			if len(g) == 0 || len(g) > 3 {
				return false
			}
		} else if len(g) != 3 {
			return false
		}
		for _, r := range g {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

// FormatAmount renders a number the way the admin form shows it: id-ID
// thousand separators, at most two decimals.
func FormatAmount(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}

	neg := f < 0
	if neg {
		f = -f
	}

	rounded := math.Round(f*100) / 100
	intPart := int64(rounded)
	frac := math.Round((rounded - float64(intPart)) * 100)

	digits := strconv.FormatInt(intPart, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := b.String()
	if frac > 0 {
		if int64(frac)%10 == 0 {
			out += "," + strconv.FormatInt(int64(frac)/10, 10)
		} else {
			out += "," + pad2(int64(frac))
		}
	}
	if neg {
		out = "-" + out
	}
	return out
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

// RoundWithTwoDecimalPlace keeps derived totals stable for JSON responses.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
