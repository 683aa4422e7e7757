// Package dataset loads the read-only table of property listings.
//
// The table is loaded once at startup from a CSV or XLSX file and is never
// mutated afterwards, so a *Dataset can be shared by any number of readers.
package dataset

import (
	"errors"
	"sort"
	"strings"

	"propsearch/internal/model"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither .csv nor .xlsx
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	// ErrMissingColumns is returned when the header lacks a required column
	ErrMissingColumns = errors.New("dataset is missing required columns")
	// ErrNoRecords is returned when no row could be turned into a record
	ErrNoRecords = errors.New("dataset contains no usable records")
)

// Dataset is the in-memory listing table
type Dataset struct {
	records    []model.PropertyRecord
	cities     []string
	localities map[string][]string // lowercase locality -> cities it appears in
	skipped    int
}

// New builds a dataset from already parsed records. Row indexes are
// reassigned to the slice order.
func New(records []model.PropertyRecord) *Dataset {
	d := &Dataset{
		records:    make([]model.PropertyRecord, len(records)),
		localities: make(map[string][]string),
	}
	copy(d.records, records)

	seenCity := make(map[string]bool)
	for i := range d.records {
		d.records[i].Row = i
		r := d.records[i]

		city := strings.ToLower(r.City)
		if city != "" && !seenCity[city] {
			seenCity[city] = true
			d.cities = append(d.cities, city)
		}
		if loc := strings.ToLower(r.Locality); loc != "" && !contains(d.localities[loc], city) {
			d.localities[loc] = append(d.localities[loc], city)
		}
	}
	sort.Strings(d.cities)
	return d
}

// Records returns the listing rows in dataset order. Callers must not modify
// the returned slice.
func (d *Dataset) Records() []model.PropertyRecord {
	return d.records
}

// Len returns the number of records
func (d *Dataset) Len() int {
	return len(d.records)
}

// Skipped returns the number of input rows dropped during load
func (d *Dataset) Skipped() int {
	return d.skipped
}

// Cities returns the distinct lowercase city names, sorted
func (d *Dataset) Cities() []string {
	return append([]string(nil), d.cities...)
}

// Localities returns the distinct lowercase locality names, sorted
func (d *Dataset) Localities() []string {
	out := make([]string, 0, len(d.localities))
	for loc := range d.localities {
		out = append(out, loc)
	}
	sort.Strings(out)
	return out
}

// CityOfLocality returns the city a locality belongs to when it is unambiguous
func (d *Dataset) CityOfLocality(locality string) (string, bool) {
	cities := d.localities[strings.ToLower(locality)]
	if len(cities) != 1 || cities[0] == "" {
		return "", false
	}
	return cities[0], true
}

// FindBySlug returns the first record with the given slug
func (d *Dataset) FindBySlug(slug string) (model.PropertyRecord, bool) {
	if slug == "" {
		return model.PropertyRecord{}, false
	}
	for _, r := range d.records {
		if strings.EqualFold(r.DisplaySlug(), slug) {
			return r, true
		}
	}
	return model.PropertyRecord{}, false
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
