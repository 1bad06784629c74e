package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/suitopia/internal/domain/errors"
	"github.com/polkiloo/suitopia/internal/pkg/auth"
	"github.com/polkiloo/suitopia/internal/test"
)

func TestAdminLogin(t *testing.T) {
	uc := NewAdminUseCase(test.HasherStub{}, test.StrategyStub{}, "hash:open-sesame")
	require.True(t, uc.Enabled())

	token, err := uc.Login("open-sesame")
	require.NoError(t, err)
	assert.Equal(t, "token:admin", token)
	assert.NoError(t, uc.Authorize(token))

	_, err = uc.Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, domainErrors.ErrUnauthorized)

	_, err = uc.Login("  ")
	assert.ErrorIs(t, err, domainErrors.ErrValidation)
}

func TestAdminLoginDisabled(t *testing.T) {
	uc := NewAdminUseCase(test.HasherStub{}, test.StrategyStub{}, "")
	assert.False(t, uc.Enabled())

	_, err := uc.Login("anything")
	assert.ErrorIs(t, err, auth.ErrDisabled)
}

func TestAdminLoginMalformedHash(t *testing.T) {
	hasher := test.HasherStub{CompareFn: func(string, string) error { return auth.ErrMalformedHash }}
	uc := NewAdminUseCase(hasher, test.StrategyStub{}, "plain")

	_, err := uc.Login("anything")
	assert.ErrorIs(t, err, auth.ErrMalformedHash)
	assert.NotErrorIs(t, err, domainErrors.ErrUnauthorized)
}

func TestAdminLoginTokenFailure(t *testing.T) {
	issueErr := errors.New("sign failed")
	uc := NewAdminUseCase(test.HasherStub{}, test.StrategyStub{
		IssueFn: func(string) (string, error) { return "", issueErr },
	}, "hash:pw")

	_, err := uc.Login("pw")
	assert.ErrorIs(t, err, issueErr)
}

func TestAdminAuthorize(t *testing.T) {
	uc := NewAdminUseCase(test.HasherStub{}, test.StrategyStub{}, "hash:pw")

	assert.ErrorIs(t, uc.Authorize("garbage"), domainErrors.ErrUnauthorized)
	assert.ErrorIs(t, uc.Authorize("token:customer"), domainErrors.ErrUnauthorized)
	assert.NoError(t, uc.Authorize("token:admin"))
}
