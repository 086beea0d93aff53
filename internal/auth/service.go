package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"property-portal-backend/internal/database/models"
	apperrors "property-portal-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	Subject   string    `json:"subject"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	UserID    *string   `json:"user_id,omitempty"` // portal user with matching email
	Provider  string    `json:"provider"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// UserRepository defines the portal user lookup needed by the auth service
type UserRepository interface {
	GetByEmail(email string) (*models.User, error)
}

// AuthService provides authentication functionality
type AuthService struct {
	config        *AuthConfig
	providers     map[string]*ProviderClient
	refreshTokens map[string]*RefreshTokenData // in-memory store for refresh tokens
	tokenMutex    sync.RWMutex
	users         UserRepository
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Email    string `json:"email" example:"dana.reyes@example.com"`
	Name     string `json:"name" example:"Dana Reyes"`
	UserID   string `json:"user_id,omitempty" example:"7a0f4bd2-3f62-4f0e-9b35-2c64a4a7e9d1"`
	Provider string `json:"provider" example:"portal"`
	jwt.RegisteredClaims
}

// AuthStartResponse represents the response for auth start endpoint
type AuthStartResponse struct {
	URL string `json:"url"`
}

// AuthHandlerResponse represents the response for auth handler endpoint
type AuthHandlerResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType"`
	ExpiresIn    int64       `json:"expiresIn"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	Profile      UserProfile `json:"profile"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users UserRepository) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	providers := make(map[string]*ProviderClient)
	for providerName, providerConfig := range config.Providers {
		providers[providerName] = NewProviderClient(&providerConfig)
	}

	return &AuthService{
		config:        config,
		providers:     providers,
		refreshTokens: make(map[string]*RefreshTokenData),
		users:         users,
	}, nil
}

// lookupUserIDByEmail resolves a portal user by email. Returns nil when the
// identity has no portal user yet; callers treat that as an unlinked login.
func (s *AuthService) lookupUserIDByEmail(email string) *string {
	if s.users == nil || email == "" {
		return nil
	}

	user, err := s.users.GetByEmail(email)
	if err != nil || user == nil {
		return nil
	}

	id := user.ID.String()
	return &id
}

// LookupUserIDByEmail is a public wrapper for lookupUserIDByEmail
func (s *AuthService) LookupUserIDByEmail(email string) *string {
	return s.lookupUserIDByEmail(email)
}

// GetAuthURL generates an OAuth2 authorization URL
func (s *AuthService) GetAuthURL(provider, state string) (string, error) {
	_, err := s.config.GetProvider(provider)
	if err != nil {
		return "", err
	}

	client, exists := s.providers[provider]
	if !exists {
		return "", fmt.Errorf("client not found for provider %s", provider)
	}

	callbackURL := fmt.Sprintf("%s/api/auth/%s/handler/frame", s.config.RedirectURL, provider)

	oauth2Config := client.GetOAuth2Config(callbackURL)
	return oauth2Config.AuthCodeURL(state), nil
}

// HandleCallback processes an OAuth2 callback and returns user information
func (s *AuthService) HandleCallback(ctx context.Context, provider, code, state string) (*AuthHandlerResponse, error) {
	_, err := s.config.GetProvider(provider)
	if err != nil {
		return nil, err
	}

	client, exists := s.providers[provider]
	if !exists {
		return nil, fmt.Errorf("client not found for provider %s", provider)
	}

	callbackURL := fmt.Sprintf("%s/api/auth/%s/handler/frame", s.config.RedirectURL, provider)

	oauth2Config := client.GetOAuth2Config(callbackURL)

	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	profile, err := client.GetUserProfile(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	profile.UserID = s.lookupUserIDByEmail(profile.Email)

	jwtToken, err := s.GenerateJWT(profile, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &RefreshTokenData{
		Subject:   profile.Subject,
		Email:     profile.Email,
		Name:      profile.Name,
		UserID:    profile.UserID,
		Provider:  provider,
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
		CreatedAt: time.Now(),
	}
	s.tokenMutex.Unlock()

	return &AuthHandlerResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    3600,
		RefreshToken: refreshToken,
		Profile:      *profile,
	}, nil
}

// RefreshToken generates a new JWT token from a refresh token
func (s *AuthService) RefreshToken(refreshToken string) (*AuthHandlerResponse, error) {
	s.tokenMutex.RLock()
	tokenData, exists := s.refreshTokens[refreshToken]
	s.tokenMutex.RUnlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if time.Now().After(tokenData.ExpiresAt) {
		s.tokenMutex.Lock()
		delete(s.refreshTokens, refreshToken)
		s.tokenMutex.Unlock()
		return nil, apperrors.ErrRefreshTokenExpired
	}

	// Re-resolve the portal user on every refresh so a user created after the
	// original login gets linked without forcing re-authentication.
	profile := &UserProfile{
		Subject: tokenData.Subject,
		Email:   tokenData.Email,
		Name:    tokenData.Name,
		UserID:  s.lookupUserIDByEmail(tokenData.Email),
	}

	jwtToken, err := s.GenerateJWT(profile, tokenData.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new JWT: %w", err)
	}

	newRefreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate new refresh token: %w", err)
	}

	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.refreshTokens[newRefreshToken] = &RefreshTokenData{
		Subject:   tokenData.Subject,
		Email:     tokenData.Email,
		Name:      tokenData.Name,
		UserID:    profile.UserID,
		Provider:  tokenData.Provider,
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
		CreatedAt: time.Now(),
	}
	s.tokenMutex.Unlock()

	return &AuthHandlerResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    3600,
		RefreshToken: newRefreshToken,
		Profile:      *profile,
	}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(userProfile *UserProfile, provider string) (string, error) {
	now := time.Now()

	userID := ""
	if userProfile.UserID != nil {
		userID = *userProfile.UserID
	}

	claims := &AuthClaims{
		Email:    userProfile.Email,
		Name:     userProfile.Name,
		UserID:   userID,
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "property-portal-backend",
			Subject:   userProfile.Subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return s.generateRandomString(32)
}

// generateRefreshToken generates a random refresh token
func (s *AuthService) generateRefreshToken() (string, error) {
	return s.generateRandomString(64)
}

// generateRandomString generates a random base64 encoded string
func (s *AuthService) generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

// Logout handles user logout (stateless JWT tokens don't require server-side logout)
func (s *AuthService) Logout() error {
	return nil
}
