package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"READY_TO_MOVE", StatusReadyToMove},
		{"Ready to move", StatusReadyToMove},
		{"Completed", StatusReadyToMove},
		{"UNDER_CONSTRUCTION", StatusUnderConstruction},
		{"under-construction", StatusUnderConstruction},
		{"Ongoing", StatusUnderConstruction},
		{"", StatusUnknown},
		{"sold out", StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStatus(tt.input))
		})
	}
}

func TestParsePropertyType(t *testing.T) {
	assert.Equal(t, PropertyTypeApartment, ParsePropertyType("Apartment"))
	assert.Equal(t, PropertyTypeApartment, ParsePropertyType("flat"))
	assert.Equal(t, PropertyTypeVilla, ParsePropertyType("VILLA"))
	assert.Equal(t, PropertyTypePlot, ParsePropertyType("Plot"))
	assert.Equal(t, PropertyTypePlot, ParsePropertyType("land"))
	assert.Equal(t, PropertyTypeUnknown, ParsePropertyType("office"))
}

func TestParseFurnishing(t *testing.T) {
	assert.Equal(t, FurnishingFurnished, ParseFurnishing("FURNISHED"))
	assert.Equal(t, FurnishingFurnished, ParseFurnishing("Fully Furnished"))
	assert.Equal(t, FurnishingFurnished, ParseFurnishing("Fully-Furnished"))
	assert.Equal(t, FurnishingFurnished, ParseFurnishing("FULLY_FURNISHED"))
	assert.Equal(t, FurnishingSemiFurnished, ParseFurnishing("SEMI-FURNISHED"))
	assert.Equal(t, FurnishingSemiFurnished, ParseFurnishing("semi_furnished"))
	assert.Equal(t, FurnishingUnfurnished, ParseFurnishing("UNFURNISHED"))
	assert.Equal(t, FurnishingUnknown, ParseFurnishing(""))
}

func TestQueryCriteria_IsEmpty(t *testing.T) {
	var nilCriteria *QueryCriteria
	assert.True(t, nilCriteria.IsEmpty())
	assert.True(t, (&QueryCriteria{}).IsEmpty())

	bhk := 2
	assert.False(t, (&QueryCriteria{BHK: &bhk}).IsEmpty())
}

func TestDisplaySlug(t *testing.T) {
	assert.Equal(t, "skyline-towers", PropertyRecord{Slug: "skyline-towers", ProjectName: "Other"}.DisplaySlug())
	assert.Equal(t, "green-acres-phase-2", PropertyRecord{ProjectName: "  Green Acres -- Phase 2 "}.DisplaySlug())
	assert.Equal(t, "", PropertyRecord{}.DisplaySlug())
}
