package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret   string                    `yaml:"jwt_secret" json:"jwt_secret"`
	RedirectURL string                    `yaml:"redirect_url" json:"redirect_url"`
	Providers   map[string]ProviderConfig `yaml:"providers" json:"providers"`
}

// ProviderConfig holds the OAuth2 endpoints and credentials for one identity
// provider. AuthURL/TokenURL/UserInfoURL follow the usual OIDC layout.
type ProviderConfig struct {
	ClientID     string   `yaml:"client_id" json:"client_id"`
	ClientSecret string   `yaml:"client_secret" json:"client_secret"`
	AuthURL      string   `yaml:"auth_url" json:"auth_url"`
	TokenURL     string   `yaml:"token_url" json:"token_url"`
	UserInfoURL  string   `yaml:"user_info_url" json:"user_info_url"`
	Scopes       []string `yaml:"scopes" json:"scopes"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Environment variables win for sensitive values
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}

	if authRedirectURL := os.Getenv("AUTH_REDIRECT_URL"); authRedirectURL != "" {
		config.RedirectURL = authRedirectURL
	} else if config.RedirectURL == "" {
		config.RedirectURL = v.GetString("redirect_url")
	}

	config = expandProviderSecrets(config)

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// GetProvider returns the configuration for a specific provider
func (c *AuthConfig) GetProvider(provider string) (*ProviderConfig, error) {
	providerConfig, exists := c.Providers[provider]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found", provider)
	}

	return &providerConfig, nil
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.RedirectURL == "" {
		return fmt.Errorf("redirect URL is required")
	}

	if len(c.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}

	for providerName, provider := range c.Providers {
		if provider.ClientID == "" {
			return fmt.Errorf("client_id is required for provider '%s'", providerName)
		}
		if provider.ClientSecret == "" {
			return fmt.Errorf("client_secret is required for provider '%s'", providerName)
		}
		if provider.AuthURL == "" || provider.TokenURL == "" {
			return fmt.Errorf("auth_url and token_url are required for provider '%s'", providerName)
		}
	}

	return nil
}

// setAuthDefaults sets default values for auth configuration
func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("redirect_url", "http://localhost:3000")
	// No default JWT secret - must be provided via environment variable

	v.SetDefault("providers", map[string]interface{}{
		"portal": map[string]interface{}{
			"client_id":     "",
			"client_secret": "",
			"auth_url":      "https://id.example.com/oauth/authorize",
			"token_url":     "https://id.example.com/oauth/token",
			"user_info_url": "https://id.example.com/oauth/userinfo",
			"scopes":        []string{"openid", "email", "profile"},
		},
	})
}

// expandProviderSecrets resolves ${VAR} placeholders in provider credentials
// from the environment, so YAML files never have to carry real secrets.
func expandProviderSecrets(config AuthConfig) AuthConfig {
	expand := func(value string) string {
		if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
			envVar := value[2 : len(value)-1]
			if envValue := os.Getenv(envVar); envValue != "" {
				return envValue
			}
		}
		return value
	}

	for providerName, provider := range config.Providers {
		provider.ClientID = expand(provider.ClientID)
		provider.ClientSecret = expand(provider.ClientSecret)
		config.Providers[providerName] = provider
	}

	return config
}
