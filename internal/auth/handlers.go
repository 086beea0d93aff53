package auth

import (
	"encoding/json"
	"errors"
	"html"
	"net/http"
	"strings"

	apperrors "property-portal-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// formatResponseAsJSON converts the response to JSON string for embedding in HTML
func formatResponseAsJSON(response interface{}) string {
	jsonBytes, err := json.Marshal(response)
	if err != nil {
		return "{}"
	}
	return string(jsonBytes)
}

// escapeJSString safely escapes a Go string for embedding inside JS string literals.
func escapeJSString(s string) string {
	e := html.EscapeString(s)
	e = strings.ReplaceAll(e, "\n", `\n`)
	e = strings.ReplaceAll(e, "\r", ``)
	return e
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) knownProvider(provider string) bool {
	_, err := h.service.config.GetProvider(provider)
	return err == nil
}

// Start handles GET /api/auth/{provider}/start
// @Summary Start OAuth authentication
// @Description Initiate OAuth authentication flow with the specified provider
// @Tags authentication
// @Accept json
// @Produce json
// @Param provider path string true "OAuth provider name"
// @Success 302 {string} string "Redirect to OAuth provider authorization URL"
// @Failure 400 {object} map[string]interface{} "Invalid provider or request parameters"
// @Failure 500 {object} map[string]interface{} "Failed to generate authorization URL"
// @Router /api/auth/{provider}/start [get]
func (h *AuthHandler) Start(c *gin.Context) {
	provider := c.Param("provider")

	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provider is required"})
		return
	}
	if !h.knownProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}

	state, err := h.service.GenerateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate state parameter"})
		return
	}

	authURL, err := h.service.GetAuthURL(provider, state)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate authorization URL", "details": err.Error()})
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// HandlerFrame handles GET /api/auth/{provider}/handler/frame
// Posts { type: 'authorization_response', response: {...} } to the opener and closes.
// @Summary Handle OAuth callback
// @Description Handle OAuth callback from provider and return authentication result in HTML frame
// @Tags authentication
// @Accept json
// @Produce text/html
// @Param provider path string true "OAuth provider name"
// @Param code query string true "OAuth authorization code from provider"
// @Param state query string true "OAuth state parameter for security"
// @Param error query string false "OAuth error parameter from provider"
// @Param error_description query string false "OAuth error description from provider"
// @Success 200 {string} string "HTML page that posts authentication result to opener window"
// @Failure 400 {object} map[string]interface{} "Invalid request parameters"
// @Router /api/auth/{provider}/handler/frame [get]
func (h *AuthHandler) HandlerFrame(c *gin.Context) {
	provider := c.Param("provider")
	code := c.Query("code")
	state := c.Query("state")
	errorParam := c.Query("error")

	if errorParam != "" {
		errorDescription := c.Query("error_description")
		h.writeFrameError(c, "OAuthError", errorParam+": "+errorDescription)
		return
	}

	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provider is required"})
		return
	}
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code is required"})
		return
	}
	if state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State parameter is required"})
		return
	}

	serviceResp, err := h.service.HandleCallback(c.Request.Context(), provider, code, state)
	if err != nil {
		h.writeFrameError(c, "Error", err.Error())
		return
	}

	// Session cookies so the refresh endpoint can recover the session
	c.SetCookie("auth_token", serviceResp.AccessToken, 3600, "/", "", false, true)
	c.SetCookie("refresh_token", serviceResp.RefreshToken, 30*24*3600, "/", "", false, true)

	raw := formatResponseAsJSON(serviceResp)

	successHTML := `<!doctype html><html><body><script>
(function(){
  var src = ` + raw + ` || {};
  var resp = {
    accessToken: src.accessToken || "",
    tokenType: src.tokenType || "bearer",
    expiresInSeconds: Number(src.expiresIn) || 0,
    profile: src.profile || {}
  };
  var message = { type: "authorization_response", response: resp };
  try { if (window.opener) window.opener.postMessage(message, "*"); } finally { window.close(); }
})();
</script></body></html>`

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, successHTML)
}

func (h *AuthHandler) writeFrameError(c *gin.Context, name, message string) {
	errorHTML := `<!doctype html><html><body><script>
(function(){
  var msg = { type: "authorization_response", error: { name: "` + escapeJSString(name) + `", message: "` + escapeJSString(message) + `" } };
  try { if (window.opener) window.opener.postMessage(msg, "*"); } finally { window.close(); }
})();
</script></body></html>`
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, errorHTML)
}

// Refresh handles GET /api/auth/{provider}/refresh?refresh_token=...
// Falls back to the session cookies when no refresh_token is supplied.
// @Summary Refresh authentication token
// @Description Refresh or validate authentication token using refresh token, Authorization header, or session cookies
// @Tags authentication
// @Accept json
// @Produce json
// @Param provider path string true "OAuth provider name"
// @Param refresh_token query string false "Refresh token to use for getting new access token"
// @Param Authorization header string false "Bearer token for validation"
// @Success 200 {object} AuthHandlerResponse "Successfully refreshed token"
// @Failure 400 {object} map[string]interface{} "Invalid provider"
// @Failure 401 {object} map[string]interface{} "Authentication required or token invalid"
// @Failure 500 {object} map[string]interface{} "Token refresh failed"
// @Router /api/auth/{provider}/refresh [get]
func (h *AuthHandler) Refresh(c *gin.Context) {
	provider := c.Param("provider")
	refreshToken := c.Query("refresh_token")

	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provider is required"})
		return
	}
	if !h.knownProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}

	if strings.TrimSpace(refreshToken) == "" {
		// Fall back to a still-valid bearer token before the cookies
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString != authHeader {
				if resp, ok := h.reissueFromJWT(tokenString); ok {
					c.JSON(http.StatusOK, resp)
					return
				}
			}
		}

		if authTokenCookie, err := c.Cookie("auth_token"); err == nil && authTokenCookie != "" {
			if resp, ok := h.reissueFromJWT(authTokenCookie); ok {
				c.JSON(http.StatusOK, resp)
				return
			}
		}

		if refreshTokenCookie, err := c.Cookie("refresh_token"); err == nil && refreshTokenCookie != "" {
			if refreshed, err := h.service.RefreshToken(refreshTokenCookie); err == nil {
				c.JSON(http.StatusOK, refreshed)
				return
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Authentication required",
			"details": "No valid session found. Please authenticate first.",
		})
		return
	}

	refreshed, err := h.service.RefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRefreshToken) || errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token refresh failed", "details": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, refreshed)
}

// reissueFromJWT mints a fresh JWT for a session whose current token is still
// valid, re-resolving the portal user link on the way.
func (h *AuthHandler) reissueFromJWT(tokenString string) (*AuthHandlerResponse, bool) {
	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		return nil, false
	}

	profile := &UserProfile{
		Subject: claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		UserID:  h.service.LookupUserIDByEmail(claims.Email),
	}

	newJWT, err := h.service.GenerateJWT(profile, claims.Provider)
	if err != nil {
		return nil, false
	}

	return &AuthHandlerResponse{
		AccessToken: newJWT,
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		Profile:     *profile,
	}, true
}

// Logout handles POST /api/auth/{provider}/logout
// @Summary Logout user
// @Description Logout user and invalidate authentication session
// @Tags authentication
// @Accept json
// @Produce json
// @Param provider path string true "OAuth provider name"
// @Success 200 {object} AuthLogoutResponse "Successfully logged out"
// @Failure 400 {object} map[string]interface{} "Invalid provider"
// @Failure 500 {object} map[string]interface{} "Logout failed"
// @Router /api/auth/{provider}/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	provider := c.Param("provider")

	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provider is required"})
		return
	}
	if !h.knownProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider"})
		return
	}

	if err := h.service.Logout(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed", "details": err.Error()})
		return
	}

	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// ValidateToken validates JWT tokens and returns their claims
// @Summary Validate JWT token
// @Description Validate JWT token and return token claims
// @Tags authentication
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token to validate"
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "claims": claims})
}
