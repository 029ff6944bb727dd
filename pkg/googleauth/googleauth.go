package googleauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// Client implements IGoogleAuth on top of golang.org/x/oauth2 and the
// Google userinfo API.
type Client struct {
	oauthConfig *oauth2.Config

	// userinfoEndpoint overrides the Google userinfo API base URL in tests.
	userinfoEndpoint string
}

var _ IGoogleAuth = (*Client)(nil)

func newClient(cfg Config) *Client {
	return &Client{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				goauth2.UserinfoEmailScope,
				goauth2.UserinfoProfileScope,
			},
			Endpoint: google.Endpoint,
		},
	}
}

// SetEndpoints overrides the OAuth and userinfo endpoints. Test seam only.
func (c *Client) SetEndpoints(authURL, tokenURL, userinfoURL string) *Client {
	c.oauthConfig.Endpoint = oauth2.Endpoint{AuthURL: authURL, TokenURL: tokenURL}
	c.userinfoEndpoint = userinfoURL
	return c
}

// AuthCodeURL returns the Google consent page URL for the given state nonce.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades an authorization code for the verified user identity.
// The code exchange and the userinfo lookup are both single attempts.
func (c *Client) Exchange(ctx context.Context, code string) (*UserInfo, error) {
	token, err := c.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("googleauth: code exchange failed: %w", err)
	}

	opts := []option.ClientOption{
		option.WithTokenSource(c.oauthConfig.TokenSource(ctx, token)),
	}
	if c.userinfoEndpoint != "" {
		opts = append(opts, option.WithEndpoint(c.userinfoEndpoint))
	}

	svc, err := goauth2.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("googleauth: failed to create oauth2 service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("googleauth: userinfo lookup failed: %w", err)
	}
	if info.Id == "" {
		return nil, fmt.Errorf("googleauth: userinfo response missing subject id")
	}

	return &UserInfo{
		ID:      info.Id,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}
