package model

// SearchRequest represents a search query request
type SearchRequest struct {
	Query   string         `json:"query" binding:"required"`
	Options *SearchOptions `json:"options,omitempty"`
}

// SearchOptions represents search options
type SearchOptions struct {
	Limit int `json:"limit"`
}

// Card is a display-ready rendering of one result
type Card struct {
	Rank           int      `json:"rank"`
	Title          string   `json:"title"`
	Location       string   `json:"location"`
	BHK            string   `json:"bhk"`
	Price          string   `json:"price"`
	CarpetArea     string   `json:"carpet_area"`
	Status         string   `json:"status"`
	Furnishing     string   `json:"furnishing"`
	Amenities      []string `json:"amenities"`
	Link           string   `json:"link"`
	MatchedReasons []string `json:"matched_reasons,omitempty"`
}

// SearchResult pairs a ranked record with the reasons it matched
type SearchResult struct {
	Record         PropertyRecord `json:"record"`
	MatchedReasons []string       `json:"matched_reasons"`
}

// SearchResponse represents a search result response
type SearchResponse struct {
	SearchID string         `json:"search_id"`
	Query    string         `json:"query"`
	Criteria *QueryCriteria `json:"criteria"`
	Cards    []Card         `json:"cards"`
	Summary  string         `json:"summary"`
	Total    int            `json:"total"`
	Took     int64          `json:"took_ms"` // Response time in milliseconds
}

// ParseRequest asks for the criteria of a query without running a search
type ParseRequest struct {
	Query string `json:"query" binding:"required"`
}

// ParseResponse represents the criteria extracted from a query without searching
type ParseResponse struct {
	Query    string         `json:"query"`
	Criteria *QueryCriteria `json:"criteria"`
}

// FeedbackRequest represents user feedback/action
type FeedbackRequest struct {
	SearchID string `json:"search_id" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
	Action   string `json:"action" binding:"required"` // click, contact, view_details
}

// FeedbackResponse represents feedback response
type FeedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
