package utils

import (
	"sort"
	"strings"
	"unicode"
)

// cityAliases lists, per canonical city, the names and neighbourhoods a
// query may use to refer to it
var cityAliases = map[string][]string{
	"pune":      {"pune", "pimpri", "chinchwad", "wakad", "hinjewadi", "mamurdi"},
	"mumbai":    {"mumbai", "bombay", "andheri", "bandra", "chembur", "thane", "navi mumbai"},
	"bangalore": {"bangalore", "bengaluru", "whitefield", "electronic city"},
	"delhi":     {"delhi", "new delhi", "gurgaon", "noida", "dwarka"},
	"hyderabad": {"hyderabad", "secunderabad", "gachibowli", "hitech city"},
	"chennai":   {"chennai", "madras", "tambaram"},
	"kolkata":   {"kolkata", "calcutta", "salt lake"},
}

var aliasToCity = func() map[string]string {
	m := make(map[string]string)
	for city, aliases := range cityAliases {
		for _, alias := range aliases {
			m[alias] = city
		}
	}
	return m
}()

// CanonicalCity maps a city name or alias to its canonical lowercase name.
// Unknown names are returned lowercased and trimmed.
func CanonicalCity(name string) string {
	key := strings.Join(strings.Fields(strings.ToLower(name)), " ")
	if city, ok := aliasToCity[key]; ok {
		return city
	}
	return key
}

// CityAliases returns every alias with its canonical city, sorted by alias
func CityAliases() [][2]string {
	out := make([][2]string, 0, len(aliasToCity))
	for alias, city := range aliasToCity {
		out = append(out, [2]string{alias, city})
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

// SameCity reports whether two city names refer to the same canonical city
func SameCity(a, b string) bool {
	return CanonicalCity(a) == CanonicalCity(b)
}

// aliasesByLength lists the aliases longest first so that "navi mumbai"
// is tried before "mumbai"
var aliasesByLength = func() []string {
	out := make([]string, 0, len(aliasToCity))
	for alias := range aliasToCity {
		out = append(out, alias)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}()

// CityFromAddress derives the canonical city of a free-form address. A known
// city or alias anywhere in the address wins; otherwise the last comma
// separated part, without a trailing PIN code, is taken as the city.
// Empty addresses yield "".
func CityFromAddress(address string) string {
	var parts []string
	for _, p := range strings.Split(address, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return ""
	}

	words := strings.FieldsFunc(strings.ToLower(address), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	padded := " " + strings.Join(words, " ") + " "
	for _, alias := range aliasesByLength {
		if strings.Contains(padded, " "+alias+" ") {
			return aliasToCity[alias]
		}
	}
	last := strings.TrimRightFunc(parts[len(parts)-1], func(r rune) bool {
		return unicode.IsDigit(r) || unicode.IsSpace(r) || r == '-'
	})
	return CanonicalCity(last)
}
