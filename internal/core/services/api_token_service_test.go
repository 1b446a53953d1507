package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_governance/internal/apperrors"
	"github.com/SscSPs/backoffice_governance/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_governance/internal/core/ports/services"
	"github.com/SscSPs/backoffice_governance/internal/core/services"
	"github.com/SscSPs/backoffice_governance/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type APITokenServiceTestSuite struct {
	suite.Suite
	repo    *MockAPITokenRepository
	service portssvc.APITokenSvc
	ctx     context.Context
}

func (suite *APITokenServiceTestSuite) SetupTest() {
	suite.repo = new(MockAPITokenRepository)
	suite.service = services.NewAPITokenService(suite.repo)
	suite.ctx = context.Background()
}

func TestAPITokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(APITokenServiceTestSuite))
}

// storedToken returns a raw token string and the row the repository would hold for it.
func (suite *APITokenServiceTestSuite) storedToken(id string, expiresAt *time.Time) (string, *domain.APIToken) {
	secret := "s3cr3t-value"
	hash, err := utils.HashSecret(secret)
	suite.Require().NoError(err)
	return services.APITokenPrefix + id + "." + secret, &domain.APIToken{
		ID:        id,
		UserID:    "svc-ar",
		TenantID:  testTenant,
		Name:      "ar-module",
		TokenHash: hash,
		ExpiresAt: expiresAt,
	}
}

func (suite *APITokenServiceTestSuite) TestCreateToken_Success() {
	suite.repo.On("Create", mock.Anything, mock.MatchedBy(func(tok *domain.APIToken) bool {
		return tok.UserID == "svc-ar" && tok.TenantID == testTenant && tok.TokenHash != "" && tok.ExpiresAt != nil
	})).Return(nil).Once()
	ttl := 24 * time.Hour

	raw, tok, err := suite.service.CreateToken(suite.ctx, testTenant, "svc-ar", "ar-module", &ttl)

	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(raw, services.APITokenPrefix+tok.ID+"."))
	secret := strings.TrimPrefix(raw, services.APITokenPrefix+tok.ID+".")
	suite.True(utils.CheckSecretHash(secret, tok.TokenHash))
	suite.NotContains(tok.TokenHash, secret)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *APITokenServiceTestSuite) TestCreateToken_RequiresName() {
	_, _, err := suite.service.CreateToken(suite.ctx, testTenant, "svc-ar", "", nil)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *APITokenServiceTestSuite) TestValidateToken_Success() {
	raw, stored := suite.storedToken("tok-1", nil)
	suite.repo.On("FindByID", mock.Anything, "tok-1").Return(stored, nil)
	suite.repo.On("Touch", mock.Anything, "tok-1", mock.AnythingOfType("time.Time")).Return(nil)

	tok, err := suite.service.ValidateToken(suite.ctx, raw)

	suite.Require().NoError(err)
	suite.Equal("svc-ar", tok.UserID)
	suite.NotNil(tok.LastUsedAt)
}

func (suite *APITokenServiceTestSuite) TestValidateToken_Rejections() {
	raw, stored := suite.storedToken("tok-1", nil)
	past := time.Now().Add(-time.Hour)
	expiredRaw, expired := suite.storedToken("tok-2", &past)

	suite.repo.On("FindByID", mock.Anything, "tok-1").Return(stored, nil)
	suite.repo.On("FindByID", mock.Anything, "tok-2").Return(expired, nil)
	suite.repo.On("FindByID", mock.Anything, "tok-404").Return(nil, fmt.Errorf("%w: api token", apperrors.ErrNotFound))
	suite.repo.On("Revoke", mock.Anything, "tok-2").Return(nil).Once()

	cases := map[string]string{
		"missing prefix": "tok-1.s3cr3t-value",
		"missing secret": services.APITokenPrefix + "tok-1",
		"wrong secret":   services.APITokenPrefix + "tok-1.guess",
		"unknown id":     services.APITokenPrefix + "tok-404.s3cr3t-value",
		"expired":        expiredRaw,
	}
	for name, token := range cases {
		suite.Run(name, func() {
			_, err := suite.service.ValidateToken(suite.ctx, token)
			suite.ErrorIs(err, apperrors.ErrUnauthorized)
		})
	}
	suite.NotEqual(raw, expiredRaw)
	suite.repo.AssertCalled(suite.T(), "Revoke", mock.Anything, "tok-2")
}

func (suite *APITokenServiceTestSuite) TestValidateToken_RepositoryFailure() {
	suite.repo.On("FindByID", mock.Anything, "tok-1").Return(nil, errors.New("connection reset"))

	_, err := suite.service.ValidateToken(suite.ctx, services.APITokenPrefix+"tok-1.secret")
	suite.Error(err)
	suite.NotErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *APITokenServiceTestSuite) TestRevokeToken_ForeignTokenIsNotFound() {
	_, stored := suite.storedToken("tok-1", nil)
	suite.repo.On("FindByID", mock.Anything, "tok-1").Return(stored, nil)

	err := suite.service.RevokeToken(suite.ctx, testTenant, "someone-else", "tok-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.repo.AssertNotCalled(suite.T(), "Revoke", mock.Anything, mock.Anything)
}

func (suite *APITokenServiceTestSuite) TestRevokeToken_Success() {
	_, stored := suite.storedToken("tok-1", nil)
	suite.repo.On("FindByID", mock.Anything, "tok-1").Return(stored, nil)
	suite.repo.On("Revoke", mock.Anything, "tok-1").Return(nil).Once()

	suite.NoError(suite.service.RevokeToken(suite.ctx, testTenant, "svc-ar", "tok-1"))
	suite.repo.AssertExpectations(suite.T())
}

func (suite *APITokenServiceTestSuite) TestListTokens() {
	suite.repo.On("FindActiveByTenant", mock.Anything, testTenant, "svc-ar").Return([]domain.APIToken{{ID: "tok-1"}}, nil)

	tokens, err := suite.service.ListTokens(suite.ctx, testTenant, "svc-ar")
	suite.Require().NoError(err)
	suite.Len(tokens, 1)
}
