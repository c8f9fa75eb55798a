// Package http provides http transport for applicants
package http

import (
	"io"
	stdhttp "net/http"

	"kycbridge/internal/modkit/httpkit"
	perr "kycbridge/internal/platform/errors"
	"kycbridge/internal/services/applicants/domain"
	svc "kycbridge/internal/services/applicants/service"
)

// cap on uploaded document size
const maxUploadBytes = 10 << 20

// Register mounts the router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Post(r, "/", h.create)
	httpkit.Post(r, "/documents", h.uploadDocument)
	httpkit.Get(r, "/{applicant_id}/status", h.status)
}

type handlers struct{ svc svc.Service }

func (h *handlers) create(r *stdhttp.Request) (any, error) {
	in, err := httpkit.ParseJSON[domain.CreateApplicantInput](r)
	if err != nil {
		return nil, err
	}
	out, err := h.svc.CreateApplicant(r.Context(), in)
	if err != nil {
		return nil, err
	}
	return httpkit.Created(out), nil
}

// uploadDocument accepts a multipart form with a document_file part and
// doc_type, doc_subtype and applicant_id fields
func (h *handlers) uploadDocument(r *stdhttp.Request) (any, error) {
	in, err := parseDocumentForm(r)
	if err != nil {
		return nil, err
	}
	return h.svc.AddDocument(r.Context(), in)
}

func (h *handlers) status(r *stdhttp.Request) (any, error) {
	return h.svc.RefreshStatus(r.Context(), httpkit.Param(r, "applicant_id"))
}

func parseDocumentForm(r *stdhttp.Request) (domain.AddDocumentInput, error) {
	var zero domain.AddDocumentInput

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return zero, perr.InvalidArgf("invalid multipart form: %v", err)
	}

	f, fh, err := r.FormFile("document_file")
	if err != nil {
		return zero, perr.InvalidArgf("document_file part is required")
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return zero, perr.InvalidArgf("read document_file: %v", err)
	}

	in := domain.AddDocumentInput{
		DocType:     r.FormValue("doc_type"),
		DocSubType:  r.FormValue("doc_subtype"),
		ProviderID:  r.FormValue("applicant_id"),
		Content:     content,
		ContentType: fh.Header.Get("Content-Type"),
	}
	if err := httpkit.Validate(in); err != nil {
		return zero, err
	}
	return in, nil
}
