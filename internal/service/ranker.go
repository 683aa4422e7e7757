package service

import (
	"sort"
	"strings"

	"propsearch/internal/model"
	"propsearch/internal/utils"
)

// Match reason constants
const (
	ReasonBHKMatch          = "BHK match"
	ReasonLocationMatch     = "Location match"
	ReasonPriceMatch        = "Within budget"
	ReasonReadyToMove       = "Ready to move"
	ReasonPropertyTypeMatch = "Property type match"
	ReasonFurnishingMatch   = "Furnishing match"
	ReasonGeneralMatch      = "General match"
)

// Ranker filters records against criteria and orders the survivors:
// ready-to-move before under-construction before unknown status, then by
// ascending price, then by dataset order.
type Ranker struct {
	dedupeProjects bool
}

// NewRanker creates a new ranker. With dedupeProjects only the best ranked
// row of each project slug is kept.
func NewRanker(dedupeProjects bool) *Ranker {
	return &Ranker{
		dedupeProjects: dedupeProjects,
	}
}

// RankResults filters and orders records. records is not modified.
func (r *Ranker) RankResults(records []model.PropertyRecord, criteria *model.QueryCriteria) []model.SearchResult {
	results := make([]model.SearchResult, 0)
	for _, rec := range records {
		if !Matches(rec, criteria) {
			continue
		}
		results = append(results, model.SearchResult{
			Record:         rec,
			MatchedReasons: r.generateMatchedReasons(rec, criteria),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].Record, results[j].Record
		if sa, sb := statusRank(a.Status), statusRank(b.Status); sa != sb {
			return sa < sb
		}
		if a.Price != b.Price {
			return a.Price < b.Price
		}
		return a.Row < b.Row
	})

	if r.dedupeProjects {
		results = dedupeBySlug(results)
	}
	return results
}

// Matches reports whether rec satisfies every present criterion
func Matches(rec model.PropertyRecord, c *model.QueryCriteria) bool {
	if c == nil {
		return true
	}
	if c.BHK != nil && rec.BHK != *c.BHK {
		return false
	}
	if c.MaxPrice != nil && (rec.Price <= 0 || rec.Price > *c.MaxPrice) {
		return false
	}
	if c.City != nil && (rec.City == "" || !utils.SameCity(rec.City, *c.City)) {
		return false
	}
	if c.Locality != nil && !strings.EqualFold(strings.TrimSpace(rec.Locality), *c.Locality) {
		return false
	}
	if c.Status != nil && rec.Status != *c.Status {
		return false
	}
	if c.PropertyType != nil && rec.PropertyType != *c.PropertyType {
		return false
	}
	if c.Furnishing != nil && rec.Furnishing != *c.Furnishing {
		return false
	}
	return true
}

func statusRank(s model.Status) int {
	switch s {
	case model.StatusReadyToMove:
		return 0
	case model.StatusUnderConstruction:
		return 1
	}
	return 2
}

// dedupeBySlug keeps the first result of every slug. Rows without a slug in
// the dataset are never merged.
func dedupeBySlug(results []model.SearchResult) []model.SearchResult {
	seen := make(map[string]bool)
	out := results[:0]
	for _, res := range results {
		slug := strings.ToLower(res.Record.Slug)
		if slug != "" {
			if seen[slug] {
				continue
			}
			seen[slug] = true
		}
		out = append(out, res)
	}
	return out
}

// generateMatchedReasons generates human-readable reasons for why this record matched
func (r *Ranker) generateMatchedReasons(rec model.PropertyRecord, c *model.QueryCriteria) []string {
	reasons := []string{}

	if c != nil {
		if c.BHK != nil {
			reasons = append(reasons, ReasonBHKMatch)
		}
		if c.City != nil || c.Locality != nil {
			reasons = append(reasons, ReasonLocationMatch)
		}
		if c.MaxPrice != nil {
			reasons = append(reasons, ReasonPriceMatch)
		}
		if c.PropertyType != nil {
			reasons = append(reasons, ReasonPropertyTypeMatch)
		}
		if c.Furnishing != nil {
			reasons = append(reasons, ReasonFurnishingMatch)
		}
	}

	if rec.Status == model.StatusReadyToMove {
		reasons = append(reasons, ReasonReadyToMove)
	}

	if len(reasons) == 0 {
		reasons = append(reasons, ReasonGeneralMatch)
	}

	return reasons
}
