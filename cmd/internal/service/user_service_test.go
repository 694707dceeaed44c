package service

import (
	"testing"

	"oficinapro/cmd/internal/domain/entity"
	"oficinapro/cmd/internal/utils/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (*DefaultUserService, *fakeUserRepo) {
	repo := &fakeUserRepo{}
	return NewUserService(repo, newTestValidator()), repo
}

func TestRegister(t *testing.T) {
	svc, repo := newUserFixture()

	resp, apierr := svc.Register(&RegisterRequest{
		Username:     "joao",
		Email:        "joao@oficina.test",
		Password:     "Mec4nica!Forte",
		WorkshopName: "Oficina do Joao",
	})
	require.Nil(t, apierr)

	assert.Equal(t, "joao", resp.Username)
	assert.Equal(t, "Oficina do Joao", resp.WorkshopName)

	require.Len(t, repo.users, 1)
	stored := repo.users[0]
	assert.NotEmpty(t, stored.SubUUID)
	assert.NotEqual(t, "Mec4nica!Forte", stored.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newUserFixture()

	req := &RegisterRequest{Username: "joao", Email: "joao@oficina.test", Password: "Mec4nica!Forte"}
	_, apierr := svc.Register(req)
	require.Nil(t, apierr)

	_, apierr = svc.Register(req)
	require.NotNil(t, apierr)
	assert.Equal(t, apierror.UserAlreadyExistsError, apierr)
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	svc, _ := newUserFixture()

	passwords := []string{
		"Valid4s!pw",      // control: satisfies every rule
		"alllowercase1!",  // no upper
		"ALLUPPERCASE1!",  // no lower
		"NoDigitsHere!",   // no digit
		"NoSpecials123A",  // no special
		"has spaces 1!Aa", // whitespace
	}

	// First entry is a valid control password.
	_, apierr := svc.Register(&RegisterRequest{Username: "ok", Email: "ok@oficina.test", Password: passwords[0]})
	assert.Nil(t, apierr)

	for _, pw := range passwords[1:] {
		_, apierr := svc.Register(&RegisterRequest{Username: "joao", Email: "x@oficina.test", Password: pw})
		require.NotNil(t, apierr, "password %q", pw)
		assert.Equal(t, 400, apierr.Code(), "password %q", pw)
	}
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc, _ := newUserFixture()

	_, apierr := svc.Register(&RegisterRequest{Username: "joao", Email: "joao@oficina.test", Password: "Mec4nica!Forte"})
	require.Nil(t, apierr)

	resp, apierr := svc.Login(&UserLoginRequest{Email: "joao@oficina.test", Password: "Mec4nica!Forte"})
	require.Nil(t, apierr)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc, _ := newUserFixture()

	_, apierr := svc.Register(&RegisterRequest{Username: "joao", Email: "joao@oficina.test", Password: "Mec4nica!Forte"})
	require.Nil(t, apierr)

	_, apierr = svc.Login(&UserLoginRequest{Email: "joao@oficina.test", Password: "Errad4!Senha"})
	require.NotNil(t, apierr)
	assert.Equal(t, apierror.CredentialsMismatchError, apierr)
}

func TestLogin_UnknownEmailSameErrorAsWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc, _ := newUserFixture()

	_, apierr := svc.Login(&UserLoginRequest{Email: "ghost@oficina.test", Password: "Mec4nica!Forte"})
	require.NotNil(t, apierr)
	assert.Equal(t, apierror.CredentialsMismatchError, apierr)
}

func TestGetMe(t *testing.T) {
	svc, repo := newUserFixture()
	repo.users = append(repo.users, &entity.User{ID: 1, SubUUID: testSub, Username: "joao", Email: "joao@oficina.test"})
	repo.nextID = 1

	resp, apierr := svc.GetMe(testSub)
	require.Nil(t, apierr)
	assert.Equal(t, "joao", resp.Username)

	_, apierr = svc.GetMe("unknown-sub")
	require.NotNil(t, apierr)
	assert.Equal(t, apierror.InvalidAuthTokenError, apierr)
}
