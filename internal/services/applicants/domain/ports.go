package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	CreateApplicant(ctx context.Context, in CreateApplicantInput) (CreateApplicantResult, error)
	AddDocument(ctx context.Context, in AddDocumentInput) (AddDocumentResult, error)
	RefreshStatus(ctx context.Context, providerID string) (StatusResult, error)
}

// ProviderPort is the outbound verification provider surface
// implementations sign every request themselves and never retry
type ProviderPort interface {
	CreateApplicant(ctx context.Context, a Applicant) (string, error)
	AddDocument(ctx context.Context, d Document) (string, error)
	GetVerificationStatus(ctx context.Context, providerID string) (string, error)
}

// Repo is the applicant persistence contract
//
// GetOrCreate keys on the natural identity (first name, last name, dob,
// nationality, email, phone) and reuses an existing row rather than failing.
// SetProviderID attaches the provider id at most once, a second attempt with a
// different id reports a conflict. SetStatus and SetDocumentRef address rows
// by provider id and report not found when no row carries it
type Repo interface {
	GetOrCreate(ctx context.Context, a Applicant) (Applicant, error)
	GetByProviderID(ctx context.Context, providerID string) (Applicant, error)
	SetProviderID(ctx context.Context, uuid, providerID string) error
	SetStatus(ctx context.Context, providerID, status string) error
	SetDocumentRef(ctx context.Context, providerID, imageID string) error
}
