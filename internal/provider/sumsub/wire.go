package sumsub

// Wire shapes for the provider API
// field casing follows the provider's JSON, not ours

type fixedInfo struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	CountryOfBirth string `json:"countryOfBirth"`
	StateOfBirth   string `json:"stateOfBirth"`
	Country        string `json:"country"`
	Nationality    string `json:"nationality"`
	Gender         string `json:"gender"`
	Dob            string `json:"dob"`
}

type createApplicantReq struct {
	FixedInfo      fixedInfo `json:"fixedInfo"`
	ExternalUserID string    `json:"externalUserId"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Lang           string    `json:"lang"`
	Type           string    `json:"type"`
}
