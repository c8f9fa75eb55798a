package sumsub

import (
	"bytes"
	"context"
	"encoding/json"
	stderrs "errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	perr "kycbridge/internal/platform/errors"
	"kycbridge/internal/platform/logger"
	"kycbridge/internal/services/applicants/domain"
)

// Fixed payload values the provider account is configured for
// these mirror the onboarding profile, not user input
const (
	defaultLevel          = "basic-kyc-level"
	applicantType         = "individual"
	applicantLang         = "en"
	defaultCountryOfBirth = "NGN"
	defaultStateOfBirth   = "Lagos"
	defaultGender         = "M"
	documentCountry       = "NGA"

	headerReturnDocWarnings = "X-Return-Doc-Warnings"
	headerImageID           = "X-Image-Id"

	// DefaultTimeout is the uniform ceiling applied to every outbound call
	DefaultTimeout = 40 * time.Second

	// cap on response bodies we read back for decoding or error reporting
	maxResponseBytes = 1 << 20
)

// Config carries the explicit provider settings, nothing is read from globals
type Config struct {
	BaseURL string
	Token   string
	Secret  string
	Level   string        // verification level, defaults to basic-kyc-level
	Timeout time.Duration // defaults to DefaultTimeout
}

// Client calls the provider over HTTP with per-request signed headers
// it implements domain.ProviderPort and performs no retries
type Client struct {
	base   *url.URL
	level  string
	signer *Signer
	http   *http.Client
	log    *logger.Logger
}

// New builds a Client, the base URL must be absolute
func New(cfg Config) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || !u.IsAbs() {
		return nil, perr.InvalidArgf("sumsub base url %q is not absolute", cfg.BaseURL)
	}
	level := cfg.Level
	if level == "" {
		level = defaultLevel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		base:   u,
		level:  level,
		signer: NewSigner(cfg.Token, cfg.Secret),
		http:   &http.Client{Timeout: timeout},
		log:    logger.Named("sumsub"),
	}, nil
}

var _ domain.ProviderPort = (*Client)(nil)

// CreateApplicant registers the applicant upstream and returns the provider id
func (c *Client) CreateApplicant(ctx context.Context, a domain.Applicant) (string, error) {
	endpoint := "/resources/applicants?levelName=" + url.QueryEscape(c.level)

	payload := createApplicantReq{
		FixedInfo: fixedInfo{
			FirstName:      a.FirstName,
			LastName:       a.LastName,
			CountryOfBirth: defaultCountryOfBirth,
			StateOfBirth:   defaultStateOfBirth,
			Country:        a.Nationality,
			Nationality:    a.Nationality,
			Gender:         defaultGender,
			Dob:            a.DOB,
		},
		ExternalUserID: a.UUID,
		Email:          a.Email,
		Phone:          a.Phone,
		Lang:           applicantLang,
		Type:           applicantType,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "encode applicant payload")
	}

	raw, _, err := c.do(ctx, http.MethodPost, endpoint, body, "application/json", nil)
	if err != nil {
		return "", err
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", perr.Upstreamf("sumsub create applicant: undecodable response: %v", err)
	}
	if out.ID == "" {
		return "", perr.Upstreamf("sumsub create applicant: response carried no id")
	}
	return out.ID, nil
}

// AddDocument uploads the id document as multipart and returns the image
// reference the provider reports in its response header
func (c *Client) AddDocument(ctx context.Context, d domain.Document) (string, error) {
	endpoint := "/resources/applicants/" + url.PathEscape(d.ProviderID) + "/info/idDoc"

	meta, err := json.Marshal(map[string]string{
		"idDocSubType": d.DocSubType,
		"idDocType":    d.DocType,
		"country":      documentCountry,
	})
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "encode document metadata")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := createFilePart(w, "content", "document_file", d.ContentType)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "build multipart body")
	}
	if _, err := fw.Write(d.Content); err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "build multipart body")
	}
	if err := w.WriteField("metadata", string(meta)); err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "build multipart body")
	}
	if err := w.Close(); err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "build multipart body")
	}

	extra := http.Header{headerReturnDocWarnings: []string{"true"}}
	_, hdr, err := c.do(ctx, http.MethodPost, endpoint, buf.Bytes(), w.FormDataContentType(), extra)
	if err != nil {
		return "", err
	}
	return hdr.Get(headerImageID), nil
}

// GetVerificationStatus fetches the current review status for a provider id
func (c *Client) GetVerificationStatus(ctx context.Context, providerID string) (string, error) {
	endpoint := "/resources/applicants/" + url.PathEscape(providerID) + "/status"

	raw, _, err := c.do(ctx, http.MethodGet, endpoint, nil, "", nil)
	if err != nil {
		return "", err
	}

	var out struct {
		ReviewStatus string `json:"reviewStatus"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", perr.Upstreamf("sumsub status: undecodable response: %v", err)
	}
	return out.ReviewStatus, nil
}

// do signs and sends one request, returning the response body and headers
// signing happens here, at send time, so the timestamp is always fresh and
// the signature always covers the exact bytes on the wire
func (c *Client) do(
	ctx context.Context, method, pathWithQuery string, body []byte, contentType string, extra http.Header,
) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+pathWithQuery, bytes.NewReader(body))
	if err != nil {
		return nil, nil, perr.Wrap(err, perr.ErrorCodeUnknown, "build provider request")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, vv := range extra {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}

	h := c.signer.Sign(method, pathWithQuery, body)
	req.Header.Set(HeaderAppToken, h.Token)
	req.Header.Set(HeaderTs, h.Ts)
	req.Header.Set(HeaderSig, h.Sig)

	res, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, nil, perr.UpstreamTimeoutf("sumsub %s %s: timed out", method, pathWithQuery)
		}
		return nil, nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "sumsub %s %s", method, pathWithQuery)
	}
	defer func() {
		if cerr := res.Body.Close(); cerr != nil {
			c.log.Warn().Err(cerr).Msg("close provider response body")
		}
	}()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return nil, nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "sumsub %s %s: read response", method, pathWithQuery)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, nil, perr.Upstreamf(
			"sumsub %s %s: status %d: %s", method, pathWithQuery, res.StatusCode, trim(raw),
		)
	}
	return raw, res.Header, nil
}

// createFilePart mirrors multipart.Writer.CreateFormFile but keeps the
// caller-supplied content type instead of forcing octet-stream
func createFilePart(w *multipart.Writer, field, filename, contentType string) (io.Writer, error) {
	if contentType == "" {
		return w.CreateFormFile(field, filename)
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	return w.CreatePart(h)
}

func isTimeout(err error) bool {
	if stderrs.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ue *url.Error
	if stderrs.As(err, &ue) && ue.Timeout() {
		return true
	}
	return false
}

func trim(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	const max = 512
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
