package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProviderConfig() ProviderConfig {
	return ProviderConfig{
		ClientID:     "test-client-id",
		ClientSecret: "test-client-secret",
		AuthURL:      "https://id.example.com/oauth/authorize",
		TokenURL:     "https://id.example.com/oauth/token",
		UserInfoURL:  "https://id.example.com/oauth/userinfo",
		Scopes:       []string{"openid", "email", "profile"},
	}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config structure", func(t *testing.T) {
		config := &AuthConfig{
			JWTSecret:   "test-signing-key",
			RedirectURL: "http://localhost:3000",
			Providers: map[string]ProviderConfig{
				"portal": testProviderConfig(),
			},
		}

		err := config.ValidateConfig()
		assert.NoError(t, err)
		assert.NotEmpty(t, config.JWTSecret)
		assert.NotEmpty(t, config.RedirectURL)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := &AuthConfig{
			RedirectURL: "http://localhost:3000",
			Providers: map[string]ProviderConfig{
				"portal": testProviderConfig(),
			},
		}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("missing redirect url", func(t *testing.T) {
		config := &AuthConfig{
			JWTSecret: "test-secret",
			Providers: map[string]ProviderConfig{
				"portal": testProviderConfig(),
			},
		}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "redirect URL is required")
	})

	t.Run("missing client credentials", func(t *testing.T) {
		config := &AuthConfig{
			JWTSecret:   "test-secret",
			RedirectURL: "http://localhost:3000",
			Providers: map[string]ProviderConfig{
				"portal": {
					AuthURL:  "https://id.example.com/oauth/authorize",
					TokenURL: "https://id.example.com/oauth/token",
				},
			},
		}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "client_id is required")
	})

	t.Run("missing endpoints", func(t *testing.T) {
		config := &AuthConfig{
			JWTSecret:   "test-secret",
			RedirectURL: "http://localhost:3000",
			Providers: map[string]ProviderConfig{
				"portal": {
					ClientID:     "test-client-id",
					ClientSecret: "test-client-secret",
				},
			},
		}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "auth_url and token_url are required")
	})
}

func TestProviderClientConfig(t *testing.T) {
	config := testProviderConfig()
	client := NewProviderClient(&config)
	assert.NotNil(t, client)

	oauthConfig := client.GetOAuth2Config("http://localhost:8080/callback")
	assert.Equal(t, "test-client-id", oauthConfig.ClientID)
	assert.Equal(t, "test-client-secret", oauthConfig.ClientSecret)
	assert.Equal(t, "http://localhost:8080/callback", oauthConfig.RedirectURL)
	assert.Equal(t, "https://id.example.com/oauth/authorize", oauthConfig.Endpoint.AuthURL)
	assert.Contains(t, oauthConfig.Scopes, "email")
}

func TestProviderClientUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"sub":     "abc-123",
			"email":   "dana.reyes@example.com",
			"name":    "Dana Reyes",
			"picture": "https://id.example.com/avatars/abc-123",
		})
	}))
	defer srv.Close()

	config := testProviderConfig()
	config.UserInfoURL = srv.URL
	client := NewProviderClient(&config)

	t.Run("valid token", func(t *testing.T) {
		profile, err := client.GetUserProfile(t.Context(), "good-token")
		require.NoError(t, err)
		assert.Equal(t, "abc-123", profile.Subject)
		assert.Equal(t, "dana.reyes@example.com", profile.Email)
		assert.Equal(t, "Dana Reyes", profile.Name)
	})

	t.Run("invalid token", func(t *testing.T) {
		_, err := client.GetUserProfile(t.Context(), "bad-token")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid access token")
	})
}

func TestJWTOperations(t *testing.T) {
	config := &AuthConfig{
		JWTSecret:   "test-signing-key-for-jwt-operations",
		RedirectURL: "http://localhost:3000",
		Providers: map[string]ProviderConfig{
			"portal": testProviderConfig(),
		},
	}

	service, err := NewAuthService(config, nil)
	require.NoError(t, err)

	userID := uuid.New().String()
	userProfile := &UserProfile{
		Subject: "abc-123",
		Email:   "dana.reyes@example.com",
		Name:    "Dana Reyes",
		UserID:  &userID,
	}

	token, err := service.GenerateJWT(userProfile, "portal")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	validatedClaims, err := service.ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, validatedClaims.UserID)
	assert.Equal(t, userProfile.Email, validatedClaims.Email)
	assert.Equal(t, userProfile.Name, validatedClaims.Name)
	assert.Equal(t, "portal", validatedClaims.Provider)
	assert.Equal(t, "abc-123", validatedClaims.Subject)

	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)
}

func TestJWTWithoutLinkedUser(t *testing.T) {
	config := &AuthConfig{
		JWTSecret:   "test-signing-key-unlinked",
		RedirectURL: "http://localhost:3000",
		Providers: map[string]ProviderConfig{
			"portal": testProviderConfig(),
		},
	}

	service, err := NewAuthService(config, nil)
	require.NoError(t, err)

	userProfile := &UserProfile{
		Subject: "abc-456",
		Email:   "nobody@example.com",
	}

	token, err := service.GenerateJWT(userProfile, "portal")
	require.NoError(t, err)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Empty(t, claims.UserID)

	// RequireAuth rejects tokens with no portal user
	gin.SetMode(gin.TestMode)
	middleware := NewAuthMiddleware(service)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/organizations", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	middleware.RequireAuth()(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthSetsActor(t *testing.T) {
	config := &AuthConfig{
		JWTSecret:   "test-signing-key-actor",
		RedirectURL: "http://localhost:3000",
		Providers: map[string]ProviderConfig{
			"portal": testProviderConfig(),
		},
	}

	service, err := NewAuthService(config, nil)
	require.NoError(t, err)

	userID := uuid.New()
	idStr := userID.String()
	token, err := service.GenerateJWT(&UserProfile{
		Subject: "abc-123",
		Email:   "dana.reyes@example.com",
		UserID:  &idStr,
	}, "portal")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	middleware := NewAuthMiddleware(service)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/organizations", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)

	middleware.RequireAuth()(c)

	assert.Equal(t, http.StatusOK, w.Code)
	actor, ok := GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, userID, actor)
	email, ok := GetUserEmail(c)
	assert.True(t, ok)
	assert.Equal(t, "dana.reyes@example.com", email)
}

func TestAuthHandlers(t *testing.T) {
	config := &AuthConfig{
		Providers: map[string]ProviderConfig{
			"portal": testProviderConfig(),
		},
		JWTSecret:   "test-signing-key",
		RedirectURL: "http://localhost:3000",
	}

	service, err := NewAuthService(config, nil)
	require.NoError(t, err)

	handler := NewAuthHandler(service)

	gin.SetMode(gin.TestMode)

	t.Run("Start endpoint", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/api/auth/portal/start", nil)
		c.Params = gin.Params{{Key: "provider", Value: "portal"}}

		handler.Start(c)

		assert.Equal(t, http.StatusFound, w.Code)
		location := w.Header().Get("Location")
		assert.Contains(t, location, "id.example.com")
		assert.Contains(t, location, "oauth/authorize")
	})

	t.Run("Start with unknown provider", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/api/auth/nope/start", nil)
		c.Params = gin.Params{{Key: "provider", Value: "nope"}}

		handler.Start(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Logout endpoint", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("POST", "/api/auth/portal/logout", nil)
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "provider", Value: "portal"}}

		handler.Logout(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "Logged out successfully", response["message"])
	})

	t.Run("Refresh with unknown token", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/api/auth/portal/refresh?refresh_token=bogus", nil)
		c.Params = gin.Params{{Key: "provider", Value: "portal"}}

		handler.Refresh(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestConfigValidation(t *testing.T) {
	t.Run("empty providers map", func(t *testing.T) {
		config := &AuthConfig{
			JWTSecret:   "test-secret",
			RedirectURL: "http://localhost:3000",
			Providers:   map[string]ProviderConfig{},
		}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least one provider")
	})

	t.Run("template strings are valid", func(t *testing.T) {
		provider := testProviderConfig()
		provider.ClientID = "${PORTAL_CLIENT_ID}"
		provider.ClientSecret = "${PORTAL_CLIENT_SECRET}"
		config := &AuthConfig{
			JWTSecret:   "test-secret",
			RedirectURL: "http://localhost:3000",
			Providers: map[string]ProviderConfig{
				"portal": provider,
			},
		}

		// Template strings are non-empty during validation; LoadAuthConfig
		// expands them from the environment.
		err := config.ValidateConfig()
		assert.NoError(t, err)
	})
}

func TestGetProvider(t *testing.T) {
	config := &AuthConfig{
		JWTSecret:   "test-secret",
		RedirectURL: "http://localhost:3000",
		Providers: map[string]ProviderConfig{
			"portal": testProviderConfig(),
		},
	}

	t.Run("existing provider", func(t *testing.T) {
		provider, err := config.GetProvider("portal")
		assert.NoError(t, err)
		assert.NotNil(t, provider)
		assert.Equal(t, "test-client-id", provider.ClientID)
	})

	t.Run("non-existing provider", func(t *testing.T) {
		_, err := config.GetProvider("nonexistent")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "provider 'nonexistent' not found")
	})
}
