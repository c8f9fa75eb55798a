// Package repo provides Postgres bindings for domain.Repo
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"kycbridge/internal/modkit/repokit"
	perr "kycbridge/internal/platform/errors"
	"kycbridge/internal/services/applicants/domain"
)

type (
	// PG is a Postgres binder for domain.Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

// Compile-time assertion: queries implements domain.Repo
var _ domain.Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

const applicantColumns = `
	uuid::text,
	first_name,
	last_name,
	dob::text,
	nationality,
	email,
	phone,
	COALESCE(applicant_id, ''),
	COALESCE(verification_status, ''),
	COALESCE(document_image_id, '')`

// GetOrCreate inserts the applicant unless a row with the same natural
// identity already exists, then returns whichever row holds that identity.
// Race-safe: the insert is ON CONFLICT DO NOTHING so concurrent writers
// converge on the same row
func (r *queries) GetOrCreate(ctx context.Context, a domain.Applicant) (domain.Applicant, error) {
	_, err := r.q.Exec(ctx, `
		INSERT INTO applicants (uuid, first_name, last_name, dob, nationality, email, phone)
		VALUES ($1::uuid, $2, $3, $4::date, $5, $6, $7)
		ON CONFLICT (first_name, last_name, dob, nationality, email, phone) DO NOTHING`,
		a.UUID, a.FirstName, a.LastName, a.DOB, a.Nationality, a.Email, a.Phone,
	)
	if err != nil {
		return domain.Applicant{}, perr.FromPostgresWithField(err, "insert applicant")
	}

	row := r.q.QueryRow(ctx, `
		SELECT `+applicantColumns+`
		FROM applicants
		WHERE first_name = $1 AND last_name = $2 AND dob = $3::date
			AND nationality = $4 AND email = $5 AND phone = $6`,
		a.FirstName, a.LastName, a.DOB, a.Nationality, a.Email, a.Phone,
	)
	return scanApplicant(row)
}

// GetByProviderID implements domain.Repo
func (r *queries) GetByProviderID(ctx context.Context, providerID string) (domain.Applicant, error) {
	row := r.q.QueryRow(ctx, `
		SELECT `+applicantColumns+`
		FROM applicants
		WHERE applicant_id = $1`,
		providerID,
	)
	out, err := scanApplicant(row)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Applicant{}, perr.NotFoundf("no applicant with provider id %q", providerID)
		}
		return domain.Applicant{}, err
	}
	return out, nil
}

// SetProviderID attaches the provider id to a freshly registered row.
// The guard on applicant_id IS NULL makes re-links a conflict instead of an
// silent overwrite, re-linking the same id is a no-op success
func (r *queries) SetProviderID(ctx context.Context, uuid, providerID string) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE applicants
		SET applicant_id = $2, updated_at = now()
		WHERE uuid = $1::uuid AND applicant_id IS NULL`,
		uuid, providerID,
	)
	if err != nil {
		return perr.FromPostgresWithField(err, "set provider id")
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var current stdsql.NullString
	row := r.q.QueryRow(ctx, `SELECT applicant_id FROM applicants WHERE uuid = $1::uuid`, uuid)
	if err := row.Scan(&current); err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return perr.NotFoundf("no applicant %q", uuid)
		}
		return perr.FromPostgres(err, "read applicant after failed link")
	}
	if current.Valid && current.String == providerID {
		return nil
	}
	return perr.Conflictf("applicant %q already linked to provider id %q", uuid, current.String)
}

// SetStatus implements domain.Repo, last write wins
func (r *queries) SetStatus(ctx context.Context, providerID, status string) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE applicants
		SET verification_status = $2, updated_at = now()
		WHERE applicant_id = $1`,
		providerID, status,
	)
	if err != nil {
		return perr.FromPostgresWithField(err, "set verification status")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("no applicant with provider id %q", providerID)
	}
	return nil
}

// SetDocumentRef implements domain.Repo, later uploads replace the reference
func (r *queries) SetDocumentRef(ctx context.Context, providerID, imageID string) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE applicants
		SET document_image_id = $2, updated_at = now()
		WHERE applicant_id = $1`,
		providerID, imageID,
	)
	if err != nil {
		return perr.FromPostgresWithField(err, "set document reference")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("no applicant with provider id %q", providerID)
	}
	return nil
}

func scanApplicant(row repokit.Row) (domain.Applicant, error) {
	var a domain.Applicant
	err := row.Scan(
		&a.UUID, &a.FirstName, &a.LastName, &a.DOB, &a.Nationality,
		&a.Email, &a.Phone, &a.ProviderID, &a.VerificationStatus, &a.DocumentImageID,
	)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return domain.Applicant{}, perr.ErrNotFound
		}
		return domain.Applicant{}, perr.FromPostgres(err, "scan applicant")
	}
	return a, nil
}
