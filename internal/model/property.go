package model

import (
	"strings"
	"unicode"
)

// Status is the construction status of a property
type Status string

const (
	StatusUnknown           Status = ""
	StatusReadyToMove       Status = "ready-to-move"
	StatusUnderConstruction Status = "under-construction"
)

// PropertyType is the kind of property being listed
type PropertyType string

const (
	PropertyTypeUnknown   PropertyType = ""
	PropertyTypeApartment PropertyType = "apartment"
	PropertyTypeVilla     PropertyType = "villa"
	PropertyTypePlot      PropertyType = "plot"
)

// Furnishing is the furnishing level of a property
type Furnishing string

const (
	FurnishingUnknown       Furnishing = ""
	FurnishingFurnished     Furnishing = "furnished"
	FurnishingSemiFurnished Furnishing = "semi-furnished"
	FurnishingUnfurnished   Furnishing = "unfurnished"
)

// Amenities holds the amenity columns of a listing
type Amenities struct {
	Lift      bool `json:"lift"`
	Balconies int  `json:"balconies"`
	Bathrooms int  `json:"bathrooms"`
	Security  bool `json:"security"`
	Parking   bool `json:"parking"`
}

// PropertyRecord represents a single listing row of the dataset.
// Records are immutable once loaded.
type PropertyRecord struct {
	Row          int          `json:"row"`
	ProjectName  string       `json:"project_name"`
	Slug         string       `json:"slug,omitempty"`
	City         string       `json:"city,omitempty"`
	Locality     string       `json:"locality,omitempty"`
	BHK          int          `json:"bhk,omitempty"`
	Price        float64      `json:"price"`
	CarpetArea   float64      `json:"carpet_area,omitempty"`
	Status       Status       `json:"status,omitempty"`
	PropertyType PropertyType `json:"property_type,omitempty"`
	Furnishing   Furnishing   `json:"furnishing,omitempty"`
	Amenities    Amenities    `json:"amenities"`
}

// ParseStatus maps free-form dataset or request values to a Status
func ParseStatus(value string) Status {
	v := normalizeEnum(value)
	switch {
	case v == "":
		return StatusUnknown
	case strings.Contains(v, "under construction"), strings.Contains(v, "ongoing"),
		strings.Contains(v, "upcoming"), strings.Contains(v, "new launch"):
		return StatusUnderConstruction
	case strings.Contains(v, "ready"), strings.Contains(v, "completed"),
		strings.Contains(v, "immediate"):
		return StatusReadyToMove
	}
	return StatusUnknown
}

// ParsePropertyType maps free-form dataset or request values to a PropertyType
func ParsePropertyType(value string) PropertyType {
	v := normalizeEnum(value)
	switch {
	case v == "":
		return PropertyTypeUnknown
	case strings.Contains(v, "apartment"), strings.Contains(v, "flat"):
		return PropertyTypeApartment
	case strings.Contains(v, "villa"):
		return PropertyTypeVilla
	case strings.Contains(v, "plot"), v == "land":
		return PropertyTypePlot
	}
	return PropertyTypeUnknown
}

// ParseFurnishing maps free-form dataset or request values to a Furnishing
func ParseFurnishing(value string) Furnishing {
	v := strings.ReplaceAll(normalizeEnum(value), " ", "")
	switch {
	case v == "":
		return FurnishingUnknown
	case strings.HasPrefix(v, "semi"):
		return FurnishingSemiFurnished
	case strings.HasPrefix(v, "un"), strings.HasPrefix(v, "non"):
		return FurnishingUnfurnished
	case v == "furnished", v == "fullyfurnished":
		return FurnishingFurnished
	}
	return FurnishingUnknown
}

// Label returns a human readable status
func (s Status) Label() string {
	switch s {
	case StatusReadyToMove:
		return "Ready to move"
	case StatusUnderConstruction:
		return "Under construction"
	}
	return ""
}

// Label returns a human readable furnishing level
func (f Furnishing) Label() string {
	switch f {
	case FurnishingFurnished:
		return "Furnished"
	case FurnishingSemiFurnished:
		return "Semi-furnished"
	case FurnishingUnfurnished:
		return "Unfurnished"
	}
	return ""
}

// normalizeEnum lowercases and turns "_" and "-" into spaces so that
// READY_TO_MOVE, ready-to-move and "Ready to move" compare equal
func normalizeEnum(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	v = strings.NewReplacer("_", " ", "-", " ").Replace(v)
	return strings.Join(strings.Fields(v), " ")
}

// DisplaySlug returns the slug used in project links, derived from the
// project name when the dataset has none
func (r PropertyRecord) DisplaySlug() string {
	if r.Slug != "" {
		return r.Slug
	}
	return Slugify(r.ProjectName)
}

// Slugify lowercases name and joins its alphanumeric runs with "-"
func Slugify(name string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}
