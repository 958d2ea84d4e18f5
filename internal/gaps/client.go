package gaps

import (
	"context"
	"errors"
	"fmt"
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the consultation endpoint serving both the login
	// form and the AJAX grade refresh.
	DefaultBaseURL = "https://gaps.heig-vd.ch/consultation/controlescontinus/consultation.php"

	userAgent = "gaps-notify/1.0 (github.com/pmoret/gaps-notify)"
	timeout   = 30 * time.Second
)

// ErrAuthenticationFailed means the portal rejected the credentials. Callers
// must not retry with the same credentials.
var ErrAuthenticationFailed = errors.New("authentication failed, check your credentials")

// defaultRefreshForm is the form-field set understood by the portal's AJAX
// refresh mechanism. The portal loads the page shell with a plain GET and
// then POSTs this to fill in the grades; only the second request matters.
// The field values have drifted across portal versions, so the set is a
// swappable constant rather than something hard-wired into FetchReport.
var defaultRefreshForm = map[string]string{
	"rs":     "replaceHtmlPart",
	"rsargs": `["result",null]`,
}

// Client is an authenticated session against the grade portal.
type Client struct {
	http        *resty.Client
	username    string
	password    string
	refreshForm map[string]string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different portal endpoint. Used by
// tests and by deployments behind a proxy.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// WithRefreshForm swaps the AJAX refresh form-field set.
func WithRefreshForm(form map[string]string) Option {
	return func(c *Client) {
		c.refreshForm = form
	}
}

// NewClient builds a cookie-bearing portal client. No request is made until
// FetchReport.
func NewClient(username, password string, opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cookie jar: %w", err)
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(DefaultBaseURL)
	httpClient.SetCookieJar(jar)
	httpClient.SetHeader("User-Agent", userAgent)
	httpClient.SetTimeout(timeout)

	c := &Client{
		http:        httpClient,
		username:    username,
		password:    password,
		refreshForm: defaultRefreshForm,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchReport logs in and returns the raw grade report payload as text. The
// session cookie obtained by the login POST authorizes the refresh POST that
// follows. The context bounds both requests; parsing happens elsewhere.
func (c *Client) FetchReport(ctx context.Context) (string, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"login":    c.username,
			"password": c.password,
			"submit":   "Entrer",
		}).
		Post("")
	if err != nil {
		return "", fmt.Errorf("sending login request: %w", err)
	}
	if !res.IsSuccess() {
		return "", fmt.Errorf("%w (status %d)", ErrAuthenticationFailed, res.StatusCode())
	}

	res, err = c.http.R().
		SetContext(ctx).
		SetFormData(c.refreshForm).
		Post("")
	if err != nil {
		return "", fmt.Errorf("sending grade request: %w", err)
	}
	if !res.IsSuccess() {
		return "", fmt.Errorf("grade request returned status %d", res.StatusCode())
	}

	return string(res.Body()), nil
}
