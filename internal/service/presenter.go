package service

import (
	"fmt"
	"sort"
	"strings"

	"propsearch/internal/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	lakh  = 100_000
	crore = 10_000_000

	notMentioned   = "Not mentioned"
	maxHighlights  = 3
	noMatchSummary = "No properties found matching your criteria."
)

// highlightAmenity is an amenity that can be named in the summary
type highlightAmenity struct {
	label string
	has   func(model.Amenities) bool
}

// highlightOrder breaks ties between equally common amenities
var highlightOrder = []highlightAmenity{
	{"Lift", func(a model.Amenities) bool { return a.Lift }},
	{"Parking", func(a model.Amenities) bool { return a.Parking }},
	{"Security", func(a model.Amenities) bool { return a.Security }},
	{"Balconies", func(a model.Amenities) bool { return a.Balconies > 0 }},
}

// Presenter turns ranked results into cards and a summary paragraph
type Presenter struct{}

// NewPresenter creates a new presenter
func NewPresenter() *Presenter {
	return &Presenter{}
}

// FormatPrice renders rupee amounts in Crore/Lakh notation
func FormatPrice(price float64) string {
	switch {
	case price <= 0:
		return "Price on request"
	case price >= crore:
		return fmt.Sprintf("₹%.2f Cr", price/crore)
	case price >= lakh:
		return fmt.Sprintf("₹%.2f Lakh", price/lakh)
	}
	return message.NewPrinter(language.English).Sprintf("₹%d", int64(price+0.5))
}

// Cards renders every result, numbering them from 1
func (p *Presenter) Cards(results []model.SearchResult) []model.Card {
	title := cases.Title(language.English)
	cards := make([]model.Card, 0, len(results))
	for i, res := range results {
		cards = append(cards, p.card(i+1, res, title))
	}
	return cards
}

func (p *Presenter) card(rank int, res model.SearchResult, title cases.Caser) model.Card {
	rec := res.Record

	name := strings.TrimSpace(rec.ProjectName)
	if name == "" {
		name = "Untitled Project"
	}

	city, locality := notMentioned, notMentioned
	if c := strings.TrimSpace(rec.City); c != "" {
		city = title.String(c)
	}
	if l := strings.TrimSpace(rec.Locality); l != "" {
		locality = l
	}
	location := city + ", " + locality
	if city == notMentioned && locality == notMentioned {
		location = "Location details coming soon"
	}

	bhk := "N/A"
	if rec.BHK > 0 {
		bhk = fmt.Sprintf("%dBHK", rec.BHK)
	}

	area := "N/A"
	if rec.CarpetArea > 0 {
		area = fmt.Sprintf("%g sq.ft", rec.CarpetArea)
	}

	status := rec.Status.Label()
	if status == "" {
		status = notMentioned
	}
	furnishing := rec.Furnishing.Label()
	if furnishing == "" {
		furnishing = notMentioned
	}

	link := "/project/" + rec.DisplaySlug()
	if rec.DisplaySlug() == "" {
		link = ""
	}

	return model.Card{
		Rank:           rank,
		Title:          name,
		Location:       location,
		BHK:            bhk,
		Price:          FormatPrice(rec.Price),
		CarpetArea:     area,
		Status:         status,
		Furnishing:     furnishing,
		Amenities:      AmenityLabels(rec.Amenities),
		Link:           link,
		MatchedReasons: res.MatchedReasons,
	}
}

// AmenityLabels lists the amenities of a record in display form
func AmenityLabels(a model.Amenities) []string {
	labels := []string{}
	if a.Lift {
		labels = append(labels, "Lift")
	}
	if a.Balconies > 0 {
		labels = append(labels, plural(a.Balconies, "Balcony", "Balconies"))
	}
	if a.Bathrooms > 0 {
		labels = append(labels, plural(a.Bathrooms, "Bathroom", "Bathrooms"))
	}
	if a.Security {
		labels = append(labels, "Security")
	}
	if a.Parking {
		labels = append(labels, "Parking")
	}
	return labels
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// Summary describes the results in one paragraph. total is the number of
// matches before any result limit.
func (p *Presenter) Summary(results []model.SearchResult, total int, c *model.QueryCriteria) string {
	if len(results) == 0 {
		return noMatchSummary + " " + suggestion(c)
	}
	if c == nil {
		c = &model.QueryCriteria{}
	}
	title := cases.Title(language.English)

	var b strings.Builder
	noun := "properties"
	if total == 1 {
		noun = "property"
	}
	bhk := ""
	if c.BHK != nil {
		bhk = fmt.Sprintf("%dBHK ", *c.BHK)
	}
	where := "various cities"
	switch {
	case c.Locality != nil && c.City != nil:
		where = title.String(*c.Locality) + ", " + title.String(*c.City)
	case c.Locality != nil:
		where = title.String(*c.Locality)
	case c.City != nil:
		where = title.String(*c.City)
	}
	fmt.Fprintf(&b, "Found %d %s%s in %s", total, bhk, noun, where)
	if c.MaxPrice != nil {
		fmt.Fprintf(&b, " under %s", FormatPrice(*c.MaxPrice))
	}
	b.WriteString(".")
	if len(results) < total {
		fmt.Fprintf(&b, " Showing the top %d.", len(results))
	}

	minPrice, maxPrice := results[0].Record.Price, results[0].Record.Price
	for _, res := range results[1:] {
		if res.Record.Price < minPrice {
			minPrice = res.Record.Price
		}
		if res.Record.Price > maxPrice {
			maxPrice = res.Record.Price
		}
	}
	if minPrice == maxPrice {
		fmt.Fprintf(&b, " Priced at %s.", FormatPrice(minPrice))
	} else {
		fmt.Fprintf(&b, " Prices range from %s to %s.", FormatPrice(minPrice), FormatPrice(maxPrice))
	}

	if hl := Highlights(results); len(hl) > 0 {
		fmt.Fprintf(&b, " Highlights: %s.", strings.Join(hl, ", "))
	}
	return b.String()
}

// Highlights names up to three standout features of the results: amenities
// carried by the most results first, then the most frequent localities.
func Highlights(results []model.SearchResult) []string {
	type counted struct {
		label string
		count int
	}

	amenities := make([]counted, 0, len(highlightOrder))
	for _, h := range highlightOrder {
		n := 0
		for _, res := range results {
			if h.has(res.Record.Amenities) {
				n++
			}
		}
		if n > 0 {
			amenities = append(amenities, counted{h.label, n})
		}
	}
	sort.SliceStable(amenities, func(i, j int) bool { return amenities[i].count > amenities[j].count })

	localityIndex := make(map[string]int)
	var localities []counted
	for _, res := range results {
		loc := strings.TrimSpace(res.Record.Locality)
		if loc == "" {
			continue
		}
		key := strings.ToLower(loc)
		if i, ok := localityIndex[key]; ok {
			localities[i].count++
			continue
		}
		localityIndex[key] = len(localities)
		localities = append(localities, counted{loc, 1})
	}
	sort.SliceStable(localities, func(i, j int) bool { return localities[i].count > localities[j].count })

	out := make([]string, 0, maxHighlights)
	for _, group := range [][]counted{amenities, localities} {
		for _, c := range group {
			if len(out) == maxHighlights {
				return out
			}
			out = append(out, c.label)
		}
	}
	return out
}

// suggestion tells the user which criteria to relax after a zero-match search
func suggestion(c *model.QueryCriteria) string {
	if c.IsEmpty() {
		return "Try broadening your search criteria."
	}
	var hints []string
	if c.Status != nil {
		hints = append(hints, "removing the '"+strings.ToLower(c.Status.Label())+"' filter")
	}
	if c.MaxPrice != nil {
		hints = append(hints, "increasing your budget")
	}
	if c.City != nil || c.Locality != nil {
		hints = append(hints, "searching a different location")
	}
	if c.BHK != nil {
		hints = append(hints, "changing the BHK count")
	}
	if c.PropertyType != nil {
		hints = append(hints, "including other property types")
	}
	if c.Furnishing != nil {
		hints = append(hints, "relaxing the furnishing preference")
	}
	return "Try " + strings.Join(hints, ", and ") + " for better results."
}
