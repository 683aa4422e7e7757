package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Files of a split project export. Only the project table is required.
const (
	projectFile       = "project.csv"
	addressFile       = "ProjectAddress.csv"
	configurationFile = "ProjectConfiguration.csv"
	variantFile       = "ProjectConfigurationVariant.csv"
)

// table is a header plus its data rows
type table struct {
	header []string
	rows   [][]string
}

// loadProjectTables left-joins the split export in dir into one table:
// addresses and configurations by project id, variants by configuration id.
// Every variant becomes a row; projects without a configuration keep a
// single row that is later dropped for lacking a price.
func loadProjectTables(dir string) ([][]string, error) {
	merged, err := readTable(filepath.Join(dir, projectFile))
	if err != nil {
		return nil, err
	}
	if merged == nil {
		return nil, fmt.Errorf("%w: %s not found in %s", ErrNoRecords, projectFile, dir)
	}

	joins := []struct {
		file     string
		leftKey  []string
		rightKey string
		suffix   string
	}{
		{addressFile, []string{"id"}, "projectid", "_address"},
		{configurationFile, []string{"id"}, "projectid", "_config"},
		// the configuration id is "id_config" once the project id took "id"
		{variantFile, []string{"id_config", "id"}, "configurationid", "_variant"},
	}
	for _, j := range joins {
		right, err := readTable(filepath.Join(dir, j.file))
		if err != nil {
			return nil, err
		}
		if right == nil {
			continue
		}
		merged = leftJoin(merged, right, j.leftKey, j.rightKey, j.suffix)
	}
	return append([][]string{merged.header}, merged.rows...), nil
}

// readTable returns nil without an error when the file does not exist
func readTable(path string) (*table, error) {
	rows, err := readCSVFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrNoRecords, filepath.Base(path))
	}
	return &table{header: rows[0], rows: rows[1:]}, nil
}

// leftJoin keeps every left row, repeated once per matching right row. Right
// columns whose name is already taken get suffix appended. The first of
// leftKeys present in the left header is used.
func leftJoin(left, right *table, leftKeys []string, rightKey, suffix string) *table {
	li := -1
	for _, k := range leftKeys {
		if li = headerIndex(left.header, k); li >= 0 {
			break
		}
	}
	ri := headerIndex(right.header, rightKey)
	if li < 0 || ri < 0 {
		// nothing to join on, keep the left table as is
		return left
	}

	taken := make(map[string]bool, len(left.header))
	for _, h := range left.header {
		taken[h] = true
	}
	header := append([]string(nil), left.header...)
	for _, h := range right.header {
		if taken[h] {
			h += suffix
		}
		header = append(header, h)
	}

	byKey := make(map[string][][]string)
	for _, row := range right.rows {
		if ri >= len(row) {
			continue
		}
		key := strings.TrimSpace(row[ri])
		byKey[key] = append(byKey[key], row)
	}

	out := &table{header: header}
	for _, row := range left.rows {
		if row == nil {
			// unparseable line, counted as skipped later
			out.rows = append(out.rows, nil)
			continue
		}
		base := pad(row, len(left.header))
		var key string
		if li < len(row) {
			key = strings.TrimSpace(row[li])
		}
		matches := byKey[key]
		if key == "" || len(matches) == 0 {
			out.rows = append(out.rows, append(base, make([]string, len(right.header))...))
			continue
		}
		for _, m := range matches {
			joined := append(append([]string(nil), base...), pad(m, len(right.header))...)
			out.rows = append(out.rows, joined)
		}
	}
	return out
}

func headerIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// pad copies row, extended with empty cells to width
func pad(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}
