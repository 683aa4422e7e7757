package model

// QueryCriteria represents the structured filters extracted from a query.
// A nil field means the attribute is unconstrained.
type QueryCriteria struct {
	BHK          *int          `json:"bhk,omitempty"`
	MaxPrice     *float64      `json:"max_price,omitempty"`
	City         *string       `json:"city,omitempty"`
	Locality     *string       `json:"locality,omitempty"`
	Status       *Status       `json:"status,omitempty"`
	PropertyType *PropertyType `json:"property_type,omitempty"`
	Furnishing   *Furnishing   `json:"furnishing,omitempty"`
}

// IsEmpty reports whether no criterion is present
func (c *QueryCriteria) IsEmpty() bool {
	return c == nil || (c.BHK == nil && c.MaxPrice == nil && c.City == nil &&
		c.Locality == nil && c.Status == nil && c.PropertyType == nil && c.Furnishing == nil)
}
