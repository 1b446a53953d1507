package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	"github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/backoffice_governance/internal/core/ports/services"
	"github.com/SscSPs/backoffice_governance/internal/utils"
	"github.com/google/uuid"
)

// APITokenPrefix starts every API token. The full format is gov_<tokenID>.<secret>;
// only a bcrypt hash of the secret is stored.
const APITokenPrefix = "gov_"

// apiTokenService implements the APITokenSvc interface
type apiTokenService struct {
	BaseService
	tokenRepo repositories.APITokenRepository
	now       func() time.Time
}

// NewAPITokenService creates a new instance of apiTokenService
func NewAPITokenService(tokenRepo repositories.APITokenRepository) portssvc.APITokenSvc {
	return &apiTokenService{
		tokenRepo: tokenRepo,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.APITokenSvc = (*apiTokenService)(nil)

// CreateToken generates a new API token for the user
func (s *apiTokenService) CreateToken(ctx context.Context, tenantID, userID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error) {
	if tenantID == "" || userID == "" {
		return "", nil, fmt.Errorf("%w: tenant ID and user ID are required", apperrors.ErrValidation)
	}
	if name == "" {
		return "", nil, fmt.Errorf("%w: token name is required", apperrors.ErrValidation)
	}

	secret, err := utils.GenerateSecureToken(32) // 32 bytes = 256 bits
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash, err := utils.HashSecret(secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash token: %w", err)
	}

	now := s.now()
	var expiresAt *time.Time
	if expiresIn != nil {
		expiry := now.Add(*expiresIn)
		expiresAt = &expiry
	}

	apiToken := &domain.APIToken{
		ID:        uuid.NewString(),
		UserID:    userID,
		TenantID:  tenantID,
		Name:      name,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.tokenRepo.Create(ctx, apiToken); err != nil {
		s.LogError(ctx, err, "Failed to save API token", slog.String("user_id", userID))
		return "", nil, fmt.Errorf("failed to save token: %w", err)
	}

	s.LogInfo(ctx, "API token created", slog.String("token_id", apiToken.ID))
	return APITokenPrefix + apiToken.ID + "." + secret, apiToken, nil
}

// ListTokens returns all API tokens for a user
func (s *apiTokenService) ListTokens(ctx context.Context, tenantID, userID string) ([]domain.APIToken, error) {
	if tenantID == "" || userID == "" {
		return nil, fmt.Errorf("%w: tenant ID and user ID are required", apperrors.ErrValidation)
	}

	tokens, err := s.tokenRepo.FindActiveByTenant(ctx, tenantID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	return tokens, nil
}

// RevokeToken revokes a specific API token for a user
func (s *apiTokenService) RevokeToken(ctx context.Context, tenantID, userID, tokenID string) error {
	if userID == "" || tokenID == "" {
		return fmt.Errorf("%w: user ID and token ID are required", apperrors.ErrValidation)
	}

	token, err := s.tokenRepo.FindByID(ctx, tokenID)
	if err != nil {
		return fmt.Errorf("failed to find token: %w", err)
	}
	// Tokens of other users are reported as missing rather than forbidden.
	if token.UserID != userID || token.TenantID != tenantID {
		return fmt.Errorf("%w: token %s", apperrors.ErrNotFound, tokenID)
	}

	if err := s.tokenRepo.Revoke(ctx, tokenID); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	s.LogInfo(ctx, "API token revoked", slog.String("token_id", tokenID))
	return nil
}

// ValidateToken checks if a token is valid and returns it
func (s *apiTokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.APIToken, error) {
	tokenID, secret, ok := parseAPIToken(tokenString)
	if !ok {
		return nil, fmt.Errorf("%w: malformed API token", apperrors.ErrUnauthorized)
	}

	token, err := s.tokenRepo.FindByID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown API token", apperrors.ErrUnauthorized)
		}
		return nil, err
	}
	if !utils.CheckSecretHash(secret, token.TokenHash) {
		return nil, fmt.Errorf("%w: invalid API token", apperrors.ErrUnauthorized)
	}

	now := s.now()
	if token.IsExpired(now) {
		// Auto-revoke expired tokens
		if err := s.tokenRepo.Revoke(ctx, token.ID); err != nil {
			s.LogError(ctx, err, "Failed to revoke expired API token", slog.String("token_id", token.ID))
		}
		return nil, fmt.Errorf("%w: API token has expired", apperrors.ErrUnauthorized)
	}

	if err := s.tokenRepo.Touch(ctx, token.ID, now); err != nil {
		s.LogError(ctx, err, "Failed to update API token last use", slog.String("token_id", token.ID))
	} else {
		token.LastUsedAt = &now
	}
	return token, nil
}

func parseAPIToken(raw string) (tokenID, secret string, ok bool) {
	rest, found := strings.CutPrefix(raw, APITokenPrefix)
	if !found {
		return "", "", false
	}
	tokenID, secret, found = strings.Cut(rest, ".")
	if !found || tokenID == "" || secret == "" {
		return "", "", false
	}
	return tokenID, secret, true
}
