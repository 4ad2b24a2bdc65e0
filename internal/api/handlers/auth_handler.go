package handlers

import (
	"errors"
	"net/url"
	"time"

	"financas/internal/dto"
	"financas/internal/service"
	"financas/pkg/auth"
	"financas/pkg/config"
	"financas/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	jwtManager  *auth.JWTManager
	frontendURL string
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, jwtManager *auth.JWTManager, cfg *config.ServerConfig, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtManager:  jwtManager,
		frontendURL: cfg.FrontendURL,
		logger:      logger,
	}
}

// LoginGoogle sends the browser to Google's consent screen.
func (h *AuthHandler) LoginGoogle(c *fiber.Ctx) error {
	authURL, err := h.authService.LoginURL()
	if err != nil {
		h.logger.Error("OAuth login not available", zap.Error(err))
		return h.loginError(c, "config_error", "GOOGLE_CLIENT_ID_missing")
	}
	return c.Redirect(authURL, fiber.StatusFound)
}

// CallbackGoogle finishes the OAuth flow. Every failure path redirects back
// to the frontend login page with an error code instead of rendering JSON.
func (h *AuthHandler) CallbackGoogle(c *fiber.Ctx) error {
	if oauthErr := c.Query("error"); oauthErr != "" {
		h.logger.Warn("Google returned an OAuth error", zap.String("error", oauthErr))
		return h.loginError(c, "google_error", oauthErr)
	}

	code := c.Query("code")
	if code == "" {
		return h.loginError(c, "no_code", "")
	}

	session, err := h.authService.HandleCallback(c.Context(), code)
	if err != nil {
		h.logger.Error("OAuth callback failed", zap.Error(err))
		switch {
		case errors.Is(err, service.ErrNotConfigured):
			return h.loginError(c, "config_error", "")
		case errors.Is(err, service.ErrInvalidIDToken):
			return h.loginError(c, "invalid_token", "")
		default:
			return h.loginError(c, "callback_error", "")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Expires:  time.Now().Add(h.jwtManager.GetTokenDuration()),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return c.Redirect(h.frontendURL+"/dashboard", fiber.StatusFound)
}

// Dashboard reports the authenticated session back to the frontend.
func (h *AuthHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(dto.DashboardResponse{
		LoggedIn:    true,
		UserID:      middleware.UserID(c),
		Email:       c.Locals("email").(string),
		DisplayName: c.Locals("displayName").(string),
	})
}

// Logout expires the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) loginError(c *fiber.Ctx, code, details string) error {
	target := h.frontendURL + "/login?error=" + url.QueryEscape(code)
	if details != "" {
		target += "&details=" + url.QueryEscape(details)
	}
	return c.Redirect(target, fiber.StatusFound)
}
