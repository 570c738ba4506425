package models

// SearchCriteria describes a free-text directory search request.
type SearchCriteria struct {
	// Term is matched case-insensitively against journal titles and
	// publishers. Required.
	Term string `json:"term"`

	// Specialty optionally narrows the search to journals carrying the
	// exact specialty tag.
	Specialty string `json:"specialty,omitempty"`

	// Limit caps the number of returned records. Zero means no cap.
	Limit uint64 `json:"limit,omitempty"`
}

// CatalogCriteria describes a search request against the external NLM
// catalog.
type CatalogCriteria struct {
	// Term is the raw catalog query string. Required.
	Term string `json:"term"`

	// Limit caps the number of returned entries. Zero applies the
	// adapter's default page size.
	Limit int `json:"limit,omitempty"`
}

// RefreshRequest is the optional body of the database update operation.
// When Terms is empty the configured default term set is used.
type RefreshRequest struct {
	Terms []string `json:"terms,omitempty"`
}
