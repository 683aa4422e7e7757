package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"propsearch/internal/model"
	"propsearch/internal/utils"

	"github.com/xuri/excelize/v2"
)

// column identifies a record attribute in the header
type column int

const (
	colProjectName column = iota
	colSlug
	colCity
	colLocality
	colBHK
	colPrice
	colCarpetArea
	colStatus
	colPropertyType
	colFurnishing
	colLift
	colBalcony
	colBathrooms
	colSecurity
	colParking
	colFullAddress
)

// headerAliases maps normalized header names to columns. The camelCase names
// match the NoBrokerage export; the snake_case ones the documented layout.
var headerAliases = map[string]column{
	"projectname":       colProjectName,
	"project":           colProjectName,
	"name":              colProjectName,
	"title":             colProjectName,
	"slug":              colSlug,
	"city":              colCity,
	"locality":          colLocality,
	"landmark":          colLocality,
	"bhk":               colBHK,
	"custombhk":         colBHK,
	"bedrooms":          colBHK,
	"type":              colBHK,
	"price":             colPrice,
	"carpetarea":        colCarpetArea,
	"areasqft":          colCarpetArea,
	"status":            colStatus,
	"possession":        colStatus,
	"propertytype":      colPropertyType,
	"propertycategory":  colPropertyType,
	"furnishing":        colFurnishing,
	"furnishedtype":     colFurnishing,
	"lift":              colLift,
	"balcony":           colBalcony,
	"balconies":         colBalcony,
	"bathroom":          colBathrooms,
	"bathrooms":         colBathrooms,
	"security":          colSecurity,
	"parking":           colParking,
	"coveredparking":    colParking,
	"reservedparking":   colParking,
	"securityavailable": colSecurity,
	"fulladdress":       colFullAddress,
	"address":           colFullAddress,
}

var requiredColumns = []column{colProjectName, colPrice}

// Load reads the dataset at path. CSV and XLSX files are supported; sheet
// selects the XLSX worksheet and defaults to the first one. A directory is
// read as a split project export (see loadProjectTables).
func Load(path, sheet string) (*Dataset, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		rows, err := loadProjectTables(path)
		if err != nil {
			return nil, err
		}
		return fromRows(rows)
	}

	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSVFile(path)
	case ".xlsx":
		rows, err = readXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}
	return fromRows(rows)
}

// ReadCSV parses a CSV stream into a dataset
func ReadCSV(r io.Reader) (*Dataset, error) {
	rows, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return fromRows(rows)
}

func readCSVFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()
	return readCSV(f)
}

// readCSV returns all well-formed rows; rows the csv package rejects are
// replaced by nil so that they are counted as skipped.
func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			rows = append(rows, nil)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readXLSX(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", ErrNoRecords)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// fromRows maps the header, coerces every data row and drops the rows
// without a usable price.
func fromRows(rows [][]string) (*Dataset, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrNoRecords)
	}

	index := mapHeader(rows[0])
	var missing []string
	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			missing = append(missing, columnName(c))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	records := make([]model.PropertyRecord, 0, len(rows)-1)
	skipped := 0
	for _, row := range rows[1:] {
		if isBlank(row) {
			if row == nil {
				skipped++
			}
			continue
		}
		rec, ok := toRecord(row, index)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %d rows skipped", ErrNoRecords, skipped)
	}

	d := New(records)
	d.skipped = skipped
	return d, nil
}

func mapHeader(header []string) map[column]int {
	index := make(map[column]int)
	for i, h := range header {
		key := normalizeHeader(h)
		if c, ok := headerAliases[key]; ok {
			if _, seen := index[c]; !seen {
				index[c] = i
			}
		}
	}
	return index
}

func toRecord(row []string, index map[column]int) (model.PropertyRecord, bool) {
	cell := func(c column) string {
		i, ok := index[c]
		if !ok || i >= len(row) {
			return ""
		}
		return cleanCell(row[i])
	}

	price, ok := parsePrice(cell(colPrice))
	if !ok {
		return model.PropertyRecord{}, false
	}

	city := cell(colCity)
	if city == "" {
		city = utils.CityFromAddress(cell(colFullAddress))
	}

	return model.PropertyRecord{
		ProjectName:  cell(colProjectName),
		Slug:         cell(colSlug),
		City:         city,
		Locality:     cell(colLocality),
		BHK:          parseBHK(cell(colBHK)),
		Price:        price,
		CarpetArea:   parseFloat(cell(colCarpetArea)),
		Status:       model.ParseStatus(cell(colStatus)),
		PropertyType: model.ParsePropertyType(cell(colPropertyType)),
		Furnishing:   model.ParseFurnishing(cell(colFurnishing)),
		Amenities: model.Amenities{
			Lift:      parseBool(cell(colLift)),
			Balconies: parseCount(cell(colBalcony)),
			Bathrooms: parseCount(cell(colBathrooms)),
			Security:  parseBool(cell(colSecurity)),
			Parking:   parseBool(cell(colParking)),
		},
	}, true
}

func columnName(c column) string {
	switch c {
	case colProjectName:
		return "project_name"
	case colPrice:
		return "price"
	}
	return fmt.Sprintf("column(%d)", c)
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
