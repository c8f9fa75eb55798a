package module

import (
	"context"

	"kycbridge/internal/services/applicants/domain"
	asvc "kycbridge/internal/services/applicants/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptServicePort exposes service methods as module ports for cross-module usage
type adaptServicePort struct{ svc asvc.Service }

func (a adaptServicePort) CreateApplicant(
	ctx context.Context, in domain.CreateApplicantInput,
) (domain.CreateApplicantResult, error) {
	return a.svc.CreateApplicant(ctx, in)
}

func (a adaptServicePort) AddDocument(
	ctx context.Context, in domain.AddDocumentInput,
) (domain.AddDocumentResult, error) {
	return a.svc.AddDocument(ctx, in)
}

func (a adaptServicePort) RefreshStatus(ctx context.Context, providerID string) (domain.StatusResult, error) {
	return a.svc.RefreshStatus(ctx, providerID)
}
