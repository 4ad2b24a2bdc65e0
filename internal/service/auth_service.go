package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"financas/internal/models"
	"financas/internal/repository"
	"financas/pkg/auth"
	"financas/pkg/config"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var ErrInvalidIDToken = errors.New("id token missing required claims")

type AuthService struct {
	userRepo   *repository.UserRepository
	jwtManager *auth.JWTManager
	oauth      *oauth2.Config
	logger     *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, jwtManager *auth.JWTManager, cfg *config.GoogleConfig, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		logger: logger,
	}
}

// LoginURL builds the Google consent-screen redirect for a fresh login.
func (s *AuthService) LoginURL() (string, error) {
	if s.oauth.ClientID == "" {
		return "", ErrNotConfigured
	}
	state := uuid.New().String()
	return s.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	), nil
}

type Session struct {
	Token string
	User  *models.User
}

// HandleCallback exchanges the authorization code, reads the user identity
// from the ID token and returns a signed session for the synced user.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (*Session, error) {
	if s.oauth.ClientID == "" || s.oauth.ClientSecret == "" {
		return nil, ErrNotConfigured
	}

	tok, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	idToken, ok := tok.Extra("id_token").(string)
	if !ok || idToken == "" {
		return nil, fmt.Errorf("%w: no id_token in response", ErrInvalidIDToken)
	}

	claims, err := auth.UnverifiedIDTokenClaims(idToken)
	if err != nil {
		return nil, fmt.Errorf("decoding id token: %w", err)
	}

	externalID, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if externalID == "" || email == "" {
		return nil, ErrInvalidIDToken
	}
	displayName, _ := claims["name"].(string)
	if displayName == "" {
		displayName = strings.SplitN(email, "@", 2)[0]
	}

	user, err := s.syncUser(ctx, externalID, email, displayName)
	if err != nil {
		return nil, err
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email, user.DisplayName)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email),
	)

	return &Session{Token: token, User: user}, nil
}

// syncUser creates the user on first login and refreshes the profile fields
// afterwards. A concurrent first login can race on the insert; the loser
// re-queries and adopts the winner's row.
func (s *AuthService) syncUser(ctx context.Context, externalID, email, displayName string) (*models.User, error) {
	existing, err := s.userRepo.GetByExternalID(ctx, externalID, "google")
	if err == nil {
		if err := s.userRepo.UpdateProfile(ctx, existing.ID, email, displayName); err != nil {
			return nil, err
		}
		existing.Email = email
		existing.DisplayName = displayName
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user := &models.User{
		ExternalID:  externalID,
		Provider:    "google",
		Email:       email,
		DisplayName: displayName,
	}
	err = s.userRepo.Create(ctx, user)
	if err == nil {
		return user, nil
	}
	if repository.IsDuplicateKey(err) {
		s.logger.Warn("User insert lost a race, re-reading", zap.String("external_id", externalID))
		existing, err := s.userRepo.GetByExternalID(ctx, externalID, "google")
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.UpdateProfile(ctx, existing.ID, email, displayName); err != nil {
			return nil, err
		}
		existing.Email = email
		existing.DisplayName = displayName
		return existing, nil
	}
	return nil, err
}
