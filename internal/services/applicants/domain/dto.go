package domain

// Transport DTOs for the applicants endpoints
// validation mirrors what the provider will accept so bad input fails here

// CreateApplicantInput is the payload for applicant registration
type CreateApplicantInput struct {
	FirstName   string `json:"first_name" validate:"required,max=100" example:"Ada"`
	LastName    string `json:"last_name" validate:"required,max=100" example:"Lovelace"`
	DOB         string `json:"dob" validate:"required,datetime=2006-01-02" example:"1815-12-10"`
	Nationality string `json:"nationality" validate:"required,len=3,alpha" example:"GBR"`
	Email       string `json:"email" validate:"required,email,max=254" example:"ada@example.com"`
	Phone       string `json:"phone" validate:"required,max=20" example:"+441234567890"`
}

// CreateApplicantResult reports the local and provider ids after registration
type CreateApplicantResult struct {
	UUID       string `json:"uuid"`
	ProviderID string `json:"applicant_id"`
}

// AddDocumentInput is filled from the multipart upload form
// Content comes from the document_file part, the rest from form fields
type AddDocumentInput struct {
	DocType     string `json:"doc_type" validate:"required,max=64" example:"ID_CARD"`
	DocSubType  string `json:"doc_subtype" validate:"required,max=64" example:"FRONT_SIDE"`
	ProviderID  string `json:"applicant_id" validate:"max=100"` // absence is a workflow precondition, not a validation error
	Content     []byte `json:"-" validate:"required"`
	ContentType string `json:"-"`
}

// AddDocumentResult carries the provider document reference
type AddDocumentResult struct {
	ImageID string `json:"image_id"`
}

// StatusResult carries the current provider verification status
type StatusResult struct {
	Status string `json:"verification_status" example:"GREEN"`
}
