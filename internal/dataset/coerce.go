package dataset

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	firstIntRe    = regexp.MustCompile(`\d+`)
	priceWithUnit = regexp.MustCompile(`^([\d.]+)\s*(cr|crore|crores|l|lac|lacs|lakh|lakhs)$`)
)

// nullCells are spreadsheet placeholders treated as empty
var nullCells = map[string]bool{
	"nan": true, "none": true, "null": true, "n/a": true, "na": true, "-": true,
	"unknown": true, "not mentioned": true,
}

func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func cleanCell(v string) string {
	v = strings.TrimSpace(v)
	if nullCells[strings.ToLower(v)] {
		return ""
	}
	return v
}

// parsePrice accepts plain numbers ("8000000", "80,00,000", "₹ 8000000")
// and unit suffixed values ("80 Lakh", "1.2 Cr"). Zero counts as missing.
func parsePrice(v string) (float64, bool) {
	v = strings.ToLower(stripCurrency(v))
	if v == "" {
		return 0, false
	}
	var price float64
	if m := priceWithUnit.FindStringSubmatch(v); m != nil {
		amount, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		price = amount * 100_000
		if strings.HasPrefix(m[2], "c") {
			price = amount * 10_000_000
		}
	} else {
		var err error
		if price, err = strconv.ParseFloat(v, 64); err != nil {
			return 0, false
		}
	}
	if price <= 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, false
	}
	return price, true
}

func parseFloat(v string) float64 {
	f, err := strconv.ParseFloat(stripCurrency(v), 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// parseBHK reads the first integer of values like "2", "2BHK", "3 BHK" or "2.0"
func parseBHK(v string) int {
	m := firstIntRe.FindString(v)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

func parseCount(v string) int {
	return int(parseFloat(v))
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "t", "yes", "y", "1", "available":
		return true
	}
	if n := parseFloat(v); n > 0 {
		return true
	}
	return false
}

func stripCurrency(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(v, "₹")
	lower := strings.ToLower(v)
	for _, p := range []string{"rs.", "rs", "inr"} {
		if strings.HasPrefix(lower, p) {
			v = v[len(p):]
			break
		}
	}
	v = strings.ReplaceAll(v, ",", "")
	return strings.TrimSpace(v)
}
