package service

import (
	"testing"

	"propsearch/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRanker_ReadyBeforeCheaperUnderConstruction(t *testing.T) {
	catalog := testCatalog()
	criteria := NewQueryParser(catalog).Parse("2BHK in Pune under 1 Cr")

	results := NewRanker(true).RankResults(catalog.Records(), criteria)

	assert.Equal(t, []string{"Skyline Residency", "Palm Grove", "Orchid Park"}, titles(results))
	assert.Equal(t, 8_000_000.0, results[0].Record.Price)
	assert.Equal(t,
		[]string{ReasonBHKMatch, ReasonLocationMatch, ReasonPriceMatch, ReasonReadyToMove},
		results[0].MatchedReasons)
}

func TestRanker_BudgetIsAnUpperBound(t *testing.T) {
	catalog := testCatalog()
	parser := NewQueryParser(catalog)
	ranker := NewRanker(false)

	for _, q := range []string{"under 1 Cr", "under 60 Lakh", "flats in pune below 55 lakh"} {
		criteria := parser.Parse(q)
		require.NotNil(t, criteria.MaxPrice, q)
		results := ranker.RankResults(catalog.Records(), criteria)
		assert.NotEmpty(t, results, q)
		for _, r := range results {
			assert.LessOrEqual(t, r.Record.Price, *criteria.MaxPrice, q)
		}
	}
}

func TestRanker_ReadyPuneTwoBHKFirst(t *testing.T) {
	catalog := testCatalog()
	results := NewRanker(true).RankResults(catalog.Records(), NewQueryParser(catalog).Parse("2BHK in Pune"))

	require.GreaterOrEqual(t, len(results), 2)
	assert.Equal(t, "Skyline Residency", results[0].Record.ProjectName)
	assert.Equal(t, "Palm Grove", results[1].Record.ProjectName)
}

func TestRanker_WithoutDedupe(t *testing.T) {
	catalog := testCatalog()
	criteria := &model.QueryCriteria{BHK: intPtr(2), City: stringPtr("pune")}

	results := NewRanker(false).RankResults(catalog.Records(), criteria)

	assert.Equal(t,
		[]string{"Skyline Residency", "Skyline Residency", "Palm Grove", "Orchid Park"},
		titles(results))
	assert.Less(t, results[0].Record.Price, results[1].Record.Price)
}

func TestRanker_OrderingInvariant(t *testing.T) {
	catalog := testCatalog()
	results := NewRanker(false).RankResults(catalog.Records(), nil)
	require.Len(t, results, catalog.Len())

	for i := 1; i < len(results); i++ {
		prev, cur := results[i-1].Record, results[i].Record
		sp, sc := statusRank(prev.Status), statusRank(cur.Status)
		require.LessOrEqual(t, sp, sc, "status order at %d", i)
		if sp == sc {
			require.LessOrEqual(t, prev.Price, cur.Price, "price order at %d", i)
			if prev.Price == cur.Price {
				require.Less(t, prev.Row, cur.Row)
			}
		}
	}
}

func TestRanker_Idempotent(t *testing.T) {
	catalog := testCatalog()
	criteria := &model.QueryCriteria{City: stringPtr("pune")}
	ranker := NewRanker(true)

	first := ranker.RankResults(catalog.Records(), criteria)
	records := make([]model.PropertyRecord, len(first))
	for i, r := range first {
		records[i] = r.Record
	}
	second := ranker.RankResults(records, criteria)

	assert.Equal(t, titles(first), titles(second))
}

func TestRanker_DoesNotModifyInput(t *testing.T) {
	catalog := testCatalog()
	before := append([]model.PropertyRecord(nil), catalog.Records()...)

	NewRanker(true).RankResults(catalog.Records(), &model.QueryCriteria{BHK: intPtr(2)})

	assert.Equal(t, before, catalog.Records())
}

func TestRanker_NoMatches(t *testing.T) {
	catalog := testCatalog()
	criteria := NewQueryParser(catalog).Parse("5BHK flat in Timbuktu")

	results := NewRanker(true).RankResults(catalog.Records(), criteria)

	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestMatches(t *testing.T) {
	rec := listing("Sea Breeze", "sea-breeze", "Mumbai", "Chembur", 3, 14_500_000, model.StatusReadyToMove)
	rec.Furnishing = model.FurnishingFurnished

	tests := []struct {
		name     string
		criteria *model.QueryCriteria
		want     bool
	}{
		{"nil criteria", nil, true},
		{"empty criteria", &model.QueryCriteria{}, true},
		{"bhk", &model.QueryCriteria{BHK: intPtr(3)}, true},
		{"wrong bhk", &model.QueryCriteria{BHK: intPtr(2)}, false},
		{"budget at price", &model.QueryCriteria{MaxPrice: floatPtr(14_500_000)}, true},
		{"budget below price", &model.QueryCriteria{MaxPrice: floatPtr(14_499_999)}, false},
		{"city alias", &model.QueryCriteria{City: stringPtr("bombay")}, true},
		{"other city", &model.QueryCriteria{City: stringPtr("pune")}, false},
		{"locality case insensitive", &model.QueryCriteria{Locality: stringPtr("chembur")}, true},
		{"status", &model.QueryCriteria{Status: ptrTo(model.StatusUnderConstruction)}, false},
		{"property type", &model.QueryCriteria{PropertyType: ptrTo(model.PropertyTypeApartment)}, true},
		{"furnishing", &model.QueryCriteria{Furnishing: ptrTo(model.FurnishingUnfurnished)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(rec, tt.criteria))
		})
	}

	rec.City = ""
	assert.False(t, Matches(rec, &model.QueryCriteria{City: stringPtr("mumbai")}))
}

func TestMatches_UnpricedRecordFailsBudget(t *testing.T) {
	rec := listing("Orchid Park", "orchid-park", "Pune", "Baner", 2, 0, model.StatusReadyToMove)

	assert.False(t, Matches(rec, &model.QueryCriteria{MaxPrice: floatPtr(10_000_000)}))
	assert.True(t, Matches(rec, &model.QueryCriteria{BHK: intPtr(2)}))
}

func TestRanker_GeneralMatchReason(t *testing.T) {
	rec := listing("Orchid Park", "orchid-park", "Pune", "Baner", 2, 5_000_000, model.StatusUnknown)

	results := NewRanker(true).RankResults([]model.PropertyRecord{rec}, &model.QueryCriteria{})

	require.Len(t, results, 1)
	assert.Equal(t, []string{ReasonGeneralMatch}, results[0].MatchedReasons)
}
