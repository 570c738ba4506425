package models

// CatalogEntry is a single record returned by the external NLM catalog
// search. The schema is owned by the catalog; only the fields the
// directory cares about are mapped.
type CatalogEntry struct {
	// NLMID is the NLM catalog unique identifier of the record.
	NLMID string `json:"nlm_id"`

	// Title is the catalog title of the record.
	Title string `json:"title"`

	// ISSN is the print ISSN reported by the catalog, if any.
	ISSN string `json:"issn,omitempty"`

	// EISSN is the electronic ISSN reported by the catalog, if any.
	EISSN string `json:"eissn,omitempty"`

	// Publisher is the publication authority string from the catalog.
	Publisher string `json:"publisher,omitempty"`

	// Country is the place of publication.
	Country string `json:"country,omitempty"`

	// Language is the primary resource language.
	Language string `json:"language,omitempty"`

	// BroadHeadings are the catalog's broad subject headings for the
	// record. They feed the specialty mapping rules during refresh.
	BroadHeadings []string `json:"broad_headings,omitempty"`
}
