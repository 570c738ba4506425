package models

import "time"

// Journal represents a single medical-journal directory entry.
// It mirrors one row of the "journals" table plus its specialty tags
// from "journal_specialties".
type Journal struct {
	// JournalID is the internal unique identifier of the journal.
	// It is not exposed via JSON and is used only at the persistence layer.
	JournalID int64 `json:"-"`

	// Title is the full journal title as published in the catalog.
	Title string `json:"title"`

	// ISSN is the print International Standard Serial Number in
	// normalized "NNNN-NNNC" form. Unique across the directory.
	ISSN string `json:"issn"`

	// EISSN is the electronic ISSN, when the journal has one.
	EISSN string `json:"eissn,omitempty"`

	// Publisher is the publishing organisation.
	Publisher string `json:"publisher,omitempty"`

	// Country is the country of publication.
	Country string `json:"country,omitempty"`

	// Language is the primary publication language.
	Language string `json:"language,omitempty"`

	// NLMID is the NLM catalog identifier this entry was imported from.
	// Empty for journals added by other means.
	NLMID string `json:"nlm_id,omitempty"`

	// Specialties holds the medical specialty tags assigned to the
	// journal. Assignments are recomputed by the map-specialty operation.
	Specialties []string `json:"specialties"`

	// CreatedAt is the timestamp when the entry was first imported.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last refresh that touched the entry.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Journal model.
func (j Journal) TableName() string {
	return "journals"
}

// SpecialtySummary is the response unit of the filter-by-specialty
// operation. Unlike the plain specialty lookup, the filter matches
// specialty tags by substring and groups the result per matched tag.
type SpecialtySummary struct {
	// Specialty is the matched specialty tag.
	Specialty string `json:"specialty"`

	// JournalCount is the number of journals carrying the tag.
	JournalCount int `json:"journal_count"`

	// Journals are the directory entries carrying the tag.
	Journals []Journal `json:"journals"`
}
