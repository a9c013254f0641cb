package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numericToken = regexp.MustCompile(`-?\d+\.?\d*`)

// ParseCoordinate turns free-form coordinate text (decimal or DMS) into
// signed decimal degrees.
//
// Parsing is lenient on purpose: it never fails. Empty text, text without
// digits, or tokens that do not parse all yield 0. Unit glyphs, spaces and
// hemisphere letters are ignored; only a leading minus sign or a negative
// degrees token makes the result negative.
func ParseCoordinate(text string) float64 {
	tokens := numericToken.FindAllString(text, -1)
	if len(tokens) == 0 {
		return 0
	}

	values := make([]float64, 0, 3)
	for _, tok := range tokens {
		if len(values) == 3 {
			break
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return 0
		}
		values = append(values, v)
	}

	if len(values) == 1 {
		return values[0]
	}

	deg, minutes := values[0], values[1]
	sec := 0.0
	if len(values) == 3 {
		sec = values[2]
	}

	// "-0° 30'" parses degrees as zero, so the text prefix carries the sign.
	sign := 1.0
	if deg < 0 || strings.HasPrefix(strings.TrimSpace(text), "-") {
		sign = -1
	}

	return sign * (math.Abs(deg) + math.Abs(minutes)/60 + math.Abs(sec)/3600)
}

// FormatDMS renders decimal degrees as `D° M' S.SSSS" H`.
// NaN stands for an absent value and renders as "".
func FormatDMS(deg float64, isLat bool) string {
	if math.IsNaN(deg) {
		return ""
	}

	hemisphere := "E"
	if isLat {
		hemisphere = "N"
	}
	if deg < 0 {
		hemisphere = "W"
		if isLat {
			hemisphere = "S"
		}
		deg = -deg
	}

	d := int64(deg)
	minFloat := (deg - float64(d)) * 60
	m := int64(minFloat)
	s := (minFloat - float64(m)) * 60

	// Seconds that would print as 60.0000 carry into minutes, and minutes into degrees.
	if s >= 59.9999 {
		s = 0
		m++
	}
	if m >= 60 {
		m = 0
		d++
	}

	return fmt.Sprintf("%d° %d' %.4f\" %s", d, m, s, hemisphere)
}
