// Package service implements the applicant verification workflow
package service

import (
	"context"

	"github.com/google/uuid"

	"kycbridge/internal/modkit/repokit"
	perr "kycbridge/internal/platform/errors"
	"kycbridge/internal/platform/logger"
	"kycbridge/internal/services/applicants/domain"
	"kycbridge/internal/services/applicants/repo"
)

// Service is the inbound surface for the applicants module
type Service interface {
	domain.ServicePort
}

// Svc drives applicants through local registration, provider linking,
// document upload and status refresh
type Svc struct {
	db       repokit.TxRunner
	binder   repokit.Binder[domain.Repo]
	repo     domain.Repo
	provider domain.ProviderPort
	log      *logger.Logger
}

// package seam so tests can pin generated ids
var newUUID = uuid.NewString

// New constructs the service, the store and provider are required
func New(db repokit.TxRunner, provider domain.ProviderPort) *Svc {
	if db == nil {
		panic("applicants service requires a tx runner")
	}
	if provider == nil {
		panic("applicants service requires a provider")
	}
	b := repo.NewPG()
	return &Svc{
		db:       db,
		binder:   b,
		repo:     b.Bind(db),
		provider: provider,
		log:      logger.Named("applicants"),
	}
}

// CreateApplicant persists the applicant locally, then registers it with the
// provider and links the returned id.
//
// The local write commits before the outbound call and is never rolled back,
// a provider failure leaves a registered row that a retry of the same payload
// reuses. A row that already carries a provider id is returned as-is with no
// second provider call
func (s *Svc) CreateApplicant(ctx context.Context, in domain.CreateApplicantInput) (domain.CreateApplicantResult, error) {
	cand := domain.Applicant{
		UUID:        newUUID(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DOB:         in.DOB,
		Nationality: in.Nationality,
		Email:       in.Email,
		Phone:       in.Phone,
	}

	var saved domain.Applicant
	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		var txErr error
		saved, txErr = s.binder.Bind(q).GetOrCreate(ctx, cand)
		return txErr
	})
	if err != nil {
		return domain.CreateApplicantResult{}, err
	}

	if saved.ProviderID != "" {
		return domain.CreateApplicantResult{UUID: saved.UUID, ProviderID: saved.ProviderID}, nil
	}

	providerID, err := s.provider.CreateApplicant(ctx, saved)
	if err != nil {
		s.log.Warn().Err(err).Str("uuid", saved.UUID).Msg("provider registration failed, local row kept")
		return domain.CreateApplicantResult{}, err
	}
	if err := s.repo.SetProviderID(ctx, saved.UUID, providerID); err != nil {
		return domain.CreateApplicantResult{}, err
	}
	return domain.CreateApplicantResult{UUID: saved.UUID, ProviderID: providerID}, nil
}

// AddDocument uploads an id document for an already linked applicant.
// The provider id must be known before anything leaves the process, the
// precondition and lookup both fail without an outbound call
func (s *Svc) AddDocument(ctx context.Context, in domain.AddDocumentInput) (domain.AddDocumentResult, error) {
	if in.ProviderID == "" {
		return domain.AddDocumentResult{}, perr.Preconditionf("applicant is not linked to the provider yet")
	}
	if len(in.Content) == 0 {
		return domain.AddDocumentResult{}, perr.InvalidArgf("document file is empty")
	}

	if _, err := s.repo.GetByProviderID(ctx, in.ProviderID); err != nil {
		return domain.AddDocumentResult{}, err
	}

	imageID, err := s.provider.AddDocument(ctx, domain.Document{
		DocType:     in.DocType,
		DocSubType:  in.DocSubType,
		Content:     in.Content,
		ContentType: in.ContentType,
		ProviderID:  in.ProviderID,
	})
	if err != nil {
		return domain.AddDocumentResult{}, err
	}

	if err := s.repo.SetDocumentRef(ctx, in.ProviderID, imageID); err != nil {
		return domain.AddDocumentResult{}, err
	}
	return domain.AddDocumentResult{ImageID: imageID}, nil
}

// RefreshStatus polls the provider and stores whatever it reports.
// Last write wins, no transition rules are enforced locally
func (s *Svc) RefreshStatus(ctx context.Context, providerID string) (domain.StatusResult, error) {
	if providerID == "" {
		return domain.StatusResult{}, perr.Preconditionf("applicant is not linked to the provider yet")
	}
	if _, err := s.repo.GetByProviderID(ctx, providerID); err != nil {
		return domain.StatusResult{}, err
	}

	status, err := s.provider.GetVerificationStatus(ctx, providerID)
	if err != nil {
		return domain.StatusResult{}, err
	}

	if err := s.repo.SetStatus(ctx, providerID, status); err != nil {
		return domain.StatusResult{}, err
	}
	return domain.StatusResult{Status: status}, nil
}
