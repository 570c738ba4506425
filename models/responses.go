package models

// JournalsResponse is the envelope for endpoints returning a sequence
// of journal records. Length is provided for convenience so callers
// can validate the response without iterating the slice.
type JournalsResponse struct {
	Journals []Journal `json:"journals"`
	Length   int       `json:"length"`
}

// SpecialtiesResponse is the envelope for the specialty enumeration
// endpoint.
type SpecialtiesResponse struct {
	Specialties []string `json:"specialties"`
	Length      int      `json:"length"`
}

// SummariesResponse is the envelope for the specialty filter endpoint.
type SummariesResponse struct {
	Summaries []SpecialtySummary `json:"summaries"`
	Length    int                `json:"length"`
}

// CatalogResponse is the envelope for external catalog search results.
type CatalogResponse struct {
	Entries []CatalogEntry `json:"entries"`
	Length  int            `json:"length"`
}

// ErrorResponse is the structured error body written for every failed
// request, including unmatched routes and disallowed methods.
type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}
