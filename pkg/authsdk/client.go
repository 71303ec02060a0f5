package authsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Header names for the two distinct bearer channels. Client tokens and
// user/consent tokens must never share a header, so a guard reading one can
// not be satisfied by the other.
const (
	HeaderClientAuthorization = "Client-Authorization"
	HeaderAuthorization       = "Authorization"
)

// Client talks to an authd server. The zero value is not usable; construct
// with NewClient.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an SDK client for the server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// ClientToken performs client-credential issuance.
func (c *Client) ClientToken(ctx context.Context, clientID, clientSecret string) (TokenResponse, error) {
	form := url.Values{
		"client_id":     {clientID},
		"client_secret": {clientSecret},
	}

	var out TokenResponse
	err := c.postForm(ctx, "/v1/auth/client", "", form, &out)
	return out, err
}

// AccountHolderToken exchanges an account holder's credentials for a user
// token, authenticated as the application holding clientToken.
func (c *Client) AccountHolderToken(ctx context.Context, clientToken, username, password string) (TokenResponse, error) {
	form := url.Values{
		"username": {username},
		"password": {password},
	}

	var out TokenResponse
	err := c.postForm(ctx, "/v1/auth/account-holder", clientToken, form, &out)
	return out, err
}

// Consent exchanges a user token for a delegated consent token.
func (c *Client) Consent(ctx context.Context, clientToken, userToken string) (ConsentResponse, error) {
	form := url.Values{
		"user_token": {userToken},
	}

	var out ConsentResponse
	err := c.postForm(ctx, "/v1/consent", clientToken, form, &out)
	return out, err
}

// Balance fetches the account balance protected resource.
func (c *Client) Balance(ctx context.Context, clientToken, consentToken string) (BalanceResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/account/balance", nil)
	if err != nil {
		return BalanceResponse{}, err
	}
	req.Header.Set(HeaderClientAuthorization, "Bearer "+clientToken)
	req.Header.Set(HeaderAuthorization, "Bearer "+consentToken)

	var out BalanceResponse
	err = c.do(req, &out)
	return out, err
}

func (c *Client) postForm(ctx context.Context, path, clientToken string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+path,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if clientToken != "" {
		req.Header.Set(HeaderClientAuthorization, "Bearer "+clientToken)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
			return fmt.Errorf("authsdk: unexpected status %d", resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("authsdk: decode response: %w", err)
	}
	return nil
}
