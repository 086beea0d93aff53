package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

// ProviderClient talks to one configured OAuth2 identity provider.
type ProviderClient struct {
	config *ProviderConfig
}

// UserProfile represents the identity returned by a provider's userinfo
// endpoint, plus the portal user resolved by email when one exists.
type UserProfile struct {
	Subject   string  `json:"subject"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	AvatarURL string  `json:"avatarUrl"`
	UserID    *string `json:"userId,omitempty"` // ID of portal user with matching email
}

// userInfoResponse is the standard OIDC userinfo shape
type userInfoResponse struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// NewProviderClient creates a client for a configured provider
func NewProviderClient(config *ProviderConfig) *ProviderClient {
	return &ProviderClient{config: config}
}

// GetOAuth2Config returns the OAuth2 configuration for this provider
func (c *ProviderClient) GetOAuth2Config(redirectURL string) *oauth2.Config {
	scopes := c.config.Scopes
	if len(scopes) == 0 {
		scopes = []string{"openid", "email", "profile"}
	}

	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.config.AuthURL,
			TokenURL: c.config.TokenURL,
		},
	}
}

// GetUserProfile fetches the authenticated identity from the provider's
// userinfo endpoint.
func (c *ProviderClient) GetUserProfile(ctx context.Context, accessToken string) (*UserProfile, error) {
	if c.config.UserInfoURL == "" {
		return nil, fmt.Errorf("provider has no user_info_url configured")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	client := oauth2.NewClient(ctx, ts)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.UserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build userinfo request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("invalid access token")
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("userinfo request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var info userInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}

	if info.Email == "" {
		return nil, fmt.Errorf("provider returned no email for subject %s", info.Subject)
	}

	return &UserProfile{
		Subject:   info.Subject,
		Email:     info.Email,
		Name:      info.Name,
		AvatarURL: info.Picture,
	}, nil
}

// ValidateConfig validates the provider client configuration
func (c *ProviderClient) ValidateConfig() error {
	if c.config.ClientID == "" {
		return fmt.Errorf("client ID is required")
	}
	if c.config.ClientSecret == "" {
		return fmt.Errorf("client secret is required")
	}
	return nil
}
