// Package domain holds the applicant entities, DTOs and ports
package domain

// Applicant is the local verification record
//
// lifecycle: persisted locally first with a generated UUID, the provider id is
// attached once external registration succeeds, the verification status is
// refreshed on every poll
type Applicant struct {
	UUID               string
	FirstName          string
	LastName           string
	DOB                string // YYYY-MM-DD
	Nationality        string // ISO 3166-1 alpha-3
	Email              string
	Phone              string
	ProviderID         string // assigned by the provider, set at most once
	VerificationStatus string // opaque provider status, stored verbatim
	DocumentImageID    string // last document reference returned by the provider
}

// Document is the transient id-document payload sent to the provider
// it is never persisted locally, only its returned reference is
type Document struct {
	DocType     string
	DocSubType  string
	Content     []byte
	ContentType string
	ProviderID  string
}
