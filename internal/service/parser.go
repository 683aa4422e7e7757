package service

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"propsearch/internal/model"
	"propsearch/internal/utils"
)

var (
	bhkPattern = regexp.MustCompile(`\b(\d+)\s*-?\s*bhk`)

	// budgetPattern only matches amounts introduced by an upper-bound cue
	budgetPattern = regexp.MustCompile(
		`\b(?:under|below|within|upto|up\s+to|less\s+than|not\s+more\s+than|maximum|max|budget(?:\s+of)?)` +
			`\s*(?:of\s+)?(?:₹|rs\.?|inr)?\s*` +
			`(\d+(?:,\d+)*(?:\.\d+)?)\s*` +
			`(crores?|cr|lakhs?|lacs?|lac|l|million|mn)\b`)

	// placePattern runs on the raw query: only a capitalised word names a place
	placePattern = regexp.MustCompile(`(?i:\b(?:in|at|near))\s+([A-Z][A-Za-z]*)\b`)
)

// unitMultipliers converts budget units to rupees
var unitMultipliers = map[string]float64{
	"cr": 10_000_000, "crore": 10_000_000, "crores": 10_000_000,
	"lakh": 100_000, "lakhs": 100_000, "lac": 100_000, "lacs": 100_000, "l": 100_000,
	"million": 1_000_000, "mn": 1_000_000,
}

// keywordRule maps a pattern to a canonical value. Rules of one field are
// evaluated in order and the first match wins.
type keywordRule[T any] struct {
	pattern *regexp.Regexp
	value   T
}

var statusRules = []keywordRule[model.Status]{
	{regexp.MustCompile(`\b(?:ready|immediate)\b`), model.StatusReadyToMove},
	{regexp.MustCompile(`\bunder[\s-]+construction\b|\bupcoming\b|\bongoing\b|\bnew\s+launch\b`), model.StatusUnderConstruction},
}

var propertyTypeRules = []keywordRule[model.PropertyType]{
	{regexp.MustCompile(`\b(?:flats?|apartments?)\b`), model.PropertyTypeApartment},
	{regexp.MustCompile(`\bvillas?\b`), model.PropertyTypeVilla},
	{regexp.MustCompile(`\b(?:plots?|land)\b`), model.PropertyTypePlot},
}

var furnishingRules = []keywordRule[model.Furnishing]{
	{regexp.MustCompile(`\bsemi[\s-]?furnished\b`), model.FurnishingSemiFurnished},
	{regexp.MustCompile(`\bun[\s-]?furnished\b`), model.FurnishingUnfurnished},
	{regexp.MustCompile(`\bfurnished\b`), model.FurnishingFurnished},
}

// placeStopwords are words after "in"/"at"/"near" that do not name a place
var placeStopwords = map[string]bool{
	"a": true, "an": true, "the": true, "my": true, "any": true, "good": true, "best": true,
	"budget": true, "under": true, "below": true, "within": true, "range": true, "area": true,
	"city": true, "locality": true, "ready": true, "immediate": true, "upcoming": true,
	"construction": true, "furnished": true, "semi": true, "unfurnished": true, "cr": true,
	"crore": true, "crores": true, "lakh": true, "lakhs": true, "lac": true, "lacs": true,
	"flat": true, "flats": true, "apartment": true, "apartments": true, "villa": true,
	"villas": true, "plot": true, "plots": true, "land": true, "bhk": true, "rs": true,
	"inr": true, "total": true, "less": true, "and": true, "or": true, "with": true,
	"me": true, "metro": true, "station": true, "school": true, "schools": true, "park": true,
	"office": true, "airport": true, "highway": true, "hospital": true, "market": true,
}

type locationKind int

const (
	locationCity locationKind = iota
	locationLocality
)

// locationEntry is one phrase of the location vocabulary
type locationEntry struct {
	phrase  string
	pattern *regexp.Regexp
	kind    locationKind
	city    string // canonical city, empty for a locality spread over several cities
}

// LocationSource supplies the place names present in the dataset
type LocationSource interface {
	Cities() []string
	Localities() []string
	CityOfLocality(locality string) (string, bool)
}

// QueryParser extracts structured criteria from free-text queries using
// fixed keyword tables and the place names of the loaded dataset
type QueryParser struct {
	locations []locationEntry
}

// NewQueryParser creates a parser whose location vocabulary is the built-in
// city alias table plus the cities and localities of src. src may be nil.
func NewQueryParser(src LocationSource) *QueryParser {
	// later sources override earlier ones for the same phrase:
	// alias < dataset locality < dataset city
	byPhrase := make(map[string]locationEntry)
	for _, pair := range utils.CityAliases() {
		byPhrase[pair[0]] = locationEntry{phrase: pair[0], kind: locationCity, city: pair[1]}
	}
	if src != nil {
		for _, loc := range src.Localities() {
			city, _ := src.CityOfLocality(loc)
			if city != "" {
				city = utils.CanonicalCity(city)
			}
			byPhrase[loc] = locationEntry{phrase: loc, kind: locationLocality, city: city}
		}
		for _, city := range src.Cities() {
			byPhrase[city] = locationEntry{phrase: city, kind: locationCity, city: utils.CanonicalCity(city)}
		}
	}

	p := &QueryParser{locations: make([]locationEntry, 0, len(byPhrase))}
	for phrase, entry := range byPhrase {
		words := strings.Fields(phrase)
		if len(words) == 0 {
			continue
		}
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		entry.pattern = regexp.MustCompile(`\b` + strings.Join(words, `\s+`) + `\b`)
		p.locations = append(p.locations, entry)
	}
	sort.Slice(p.locations, func(i, j int) bool { return p.locations[i].phrase < p.locations[j].phrase })
	return p
}

// Parse extracts criteria from query. It never fails: fragments that do not
// match any pattern are ignored and leave their criterion absent.
func (p *QueryParser) Parse(query string) *model.QueryCriteria {
	raw := strings.TrimSpace(query)
	q := strings.ToLower(raw)
	criteria := &model.QueryCriteria{}
	if q == "" {
		return criteria
	}

	if m := bhkPattern.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			criteria.BHK = &n
		}
	}

	if budget, ok := parseBudget(q); ok {
		criteria.MaxPrice = &budget
	}

	p.parseLocation(raw, q, criteria)

	if v, ok := firstMatch(q, statusRules); ok {
		criteria.Status = &v
	}
	if v, ok := firstMatch(q, propertyTypeRules); ok {
		criteria.PropertyType = &v
	}
	if v, ok := firstMatch(q, furnishingRules); ok {
		criteria.Furnishing = &v
	}

	return criteria
}

// parseBudget returns the upper price bound in rupees
func parseBudget(q string) (float64, bool) {
	m := budgetPattern.FindStringSubmatch(q)
	if m == nil {
		return 0, false
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, false
	}
	multiplier, ok := unitMultipliers[m[2]]
	if !ok {
		return 0, false
	}
	return math.Round(amount * multiplier), true
}

// parseLocation picks the vocabulary phrase occurring earliest in q, the
// longest one when several start at the same offset. Without a vocabulary
// hit a capitalised "in <Place>" in the raw query still constrains the city
// so that an unknown place matches nothing instead of everything; lowercase
// words after "in" are ordinary English and are ignored.
func (p *QueryParser) parseLocation(raw, q string, criteria *model.QueryCriteria) {
	best := -1
	bestPos := len(q) + 1
	for i, entry := range p.locations {
		loc := entry.pattern.FindStringIndex(q)
		if loc == nil {
			continue
		}
		if loc[0] < bestPos || (loc[0] == bestPos && len(entry.phrase) > len(p.locations[best].phrase)) {
			best = i
			bestPos = loc[0]
		}
	}

	if best >= 0 {
		entry := p.locations[best]
		switch entry.kind {
		case locationLocality:
			locality := entry.phrase
			criteria.Locality = &locality
			if entry.city != "" {
				city := entry.city
				criteria.City = &city
			}
		default:
			city := entry.city
			criteria.City = &city
		}
		return
	}

	for _, m := range placePattern.FindAllStringSubmatch(raw, -1) {
		word := strings.ToLower(m[1])
		if placeStopwords[word] {
			continue
		}
		city := word
		criteria.City = &city
		return
	}
}

func firstMatch[T any](q string, rules []keywordRule[T]) (T, bool) {
	for _, rule := range rules {
		if rule.pattern.MatchString(q) {
			return rule.value, true
		}
	}
	var zero T
	return zero, false
}
