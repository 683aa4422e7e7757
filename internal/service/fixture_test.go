package service

import (
	"propsearch/internal/dataset"
	"propsearch/internal/model"
)

func listing(name, slug, city, locality string, bhk int, price float64, status model.Status) model.PropertyRecord {
	return model.PropertyRecord{
		ProjectName:  name,
		Slug:         slug,
		City:         city,
		Locality:     locality,
		BHK:          bhk,
		Price:        price,
		Status:       status,
		PropertyType: model.PropertyTypeApartment,
	}
}

// testCatalog is a small Pune-heavy listing table shared by the service tests
func testCatalog() *dataset.Dataset {
	skyline := listing("Skyline Residency", "skyline-residency", "Pune", "Wakad", 2, 8_000_000, model.StatusReadyToMove)
	skyline.CarpetArea = 950
	skyline.Furnishing = model.FurnishingSemiFurnished
	skyline.Amenities = model.Amenities{Lift: true, Balconies: 2, Bathrooms: 2, Security: true, Parking: true}

	palm := listing("Palm Grove", "palm-grove", "Pune", "Hinjewadi", 2, 6_000_000, model.StatusUnderConstruction)
	palm.Furnishing = model.FurnishingUnfurnished
	palm.Amenities = model.Amenities{Lift: true, Balconies: 1, Bathrooms: 2, Security: true}

	orchid := listing("Orchid Park", "orchid-park", "Pune", "Baner", 2, 5_000_000, model.StatusUnknown)
	orchid.Amenities = model.Amenities{Parking: true}

	skylineTower := listing("Skyline Residency", "skyline-residency", "Pune", "Wakad", 2, 8_500_000, model.StatusReadyToMove)
	skylineTower.Amenities = model.Amenities{Lift: true}

	mamurdi := listing("Mamurdi Meadows", "mamurdi-meadows", "Pune", "Mamurdi", 1, 3_200_000, model.StatusUnderConstruction)

	seaBreeze := listing("Sea Breeze", "sea-breeze", "Mumbai", "Chembur", 3, 14_500_000, model.StatusReadyToMove)
	seaBreeze.Furnishing = model.FurnishingFurnished

	whitefield := listing("Whitefield Woods", "whitefield-woods", "Bangalore", "Whitefield", 3, 12_500_000, model.StatusUnderConstruction)
	whitefield.Furnishing = model.FurnishingSemiFurnished

	nest := listing("Electronic City Nest", "electronic-city-nest", "Bangalore", "Electronic City", 2, 5_800_000, model.StatusReadyToMove)
	nest.Furnishing = model.FurnishingUnfurnished

	villa := listing("Riverfront Villas", "riverfront-villas", "Pune", "Kharadi", 4, 32_000_000, model.StatusUnderConstruction)
	villa.PropertyType = model.PropertyTypeVilla

	return dataset.New([]model.PropertyRecord{
		skyline, palm, orchid, skylineTower, mamurdi, seaBreeze, whitefield, nest, villa,
	})
}

func titles(results []model.SearchResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Record.ProjectName
	}
	return out
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string  { return &v }
func ptrTo[T any](v T) *T         { return &v }
