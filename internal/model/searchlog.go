package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SearchLog is one executed search as recorded by the search log
type SearchLog struct {
	SearchID       string
	Query          string
	Criteria       *QueryCriteria
	ResultCount    int
	Slugs          []string
	ResponseTimeMs int
}

// Value implements driver.Valuer interface
func (c *QueryCriteria) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner interface
func (c *QueryCriteria) Scan(value interface{}) error {
	if value == nil {
		*c = QueryCriteria{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("cannot scan %T into QueryCriteria", value)
	}
}
