package entity

import "time"

// Document is implemented by every record stored in a CRUD collection.
type Document interface {
	DocumentID() string
	SetDocumentID(id string)
	Touch(now time.Time, created bool)
	Normalize()
}

// Validator is optionally implemented by documents with required fields.
type Validator interface {
	Validate() error
}

// Meta carries the identifier and server timestamps shared by all documents
type Meta struct {
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (m *Meta) DocumentID() string { return m.ID }

func (m *Meta) SetDocumentID(id string) { m.ID = id }

// Touch stamps updatedAt, and createdAt when the document is new
func (m *Meta) Touch(now time.Time, created bool) {
	if created {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

func defaultString(v *string, def string) {
	if *v == "" {
		*v = def
	}
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
