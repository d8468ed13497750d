package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GenKoKo/culture-quest/internal/auth/models"
	"github.com/GenKoKo/culture-quest/internal/auth/repository"
	"github.com/GenKoKo/culture-quest/internal/common/errors"
	"github.com/GenKoKo/culture-quest/internal/common/middleware"
)

const testSecret = "test-secret"

var authNow = time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

// recordingMailer captures outgoing mail instead of sending it.
type recordingMailer struct {
	codes    []string
	verified []string
}

func (m *recordingMailer) SendVerificationCode(email, code string) error {
	m.codes = append(m.codes, code)
	return nil
}

func (m *recordingMailer) SendVerified(email string) error {
	m.verified = append(m.verified, email)
	return nil
}

func newTestAuthService(t *testing.T) (*AuthService, *recordingMailer) {
	t.Helper()
	mail := &recordingMailer{}
	service := NewAuthService(repository.NewMemoryUserStore(), mail, testSecret,
		WithClock(func() time.Time { return authNow }),
		WithCodeGenerator(func() string { return "123456" }),
	)
	return service, mail
}

func TestRegister_CreatesUnverifiedAccount(t *testing.T) {
	service, mail := newTestAuthService(t)

	user, err := service.Register(models.RegisterRequest{
		Email:    "  Ana@Example.COM ",
		Password: "hunter22",
	})

	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "ana", user.DisplayName)
	assert.False(t, user.EmailVerified)
	assert.Equal(t, "123456", user.VerificationCode)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.Equal(t, authNow, user.CreatedAt)

	require.Len(t, mail.codes, 1)
	assert.Equal(t, "123456", mail.codes[0])
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Register(models.RegisterRequest{Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = service.Register(models.RegisterRequest{Email: "ANA@example.com", Password: "other"})
	assert.True(t, errors.IsCode(err, errors.CodeConflict))
}

func TestVerifyEmail(t *testing.T) {
	service, mail := newTestAuthService(t)
	_, err := service.Register(models.RegisterRequest{Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)

	err = service.VerifyEmail(models.VerifyEmailRequest{Email: "ana@example.com", Code: "123456"})

	require.NoError(t, err)
	require.Len(t, mail.verified, 1)
	assert.Equal(t, "ana@example.com", mail.verified[0])

	// A second attempt is rejected: the account is already verified.
	err = service.VerifyEmail(models.VerifyEmailRequest{Email: "ana@example.com", Code: "123456"})
	assert.True(t, errors.IsCode(err, errors.CodeBadRequest))
}

func TestVerifyEmail_WrongCode(t *testing.T) {
	service, _ := newTestAuthService(t)
	_, err := service.Register(models.RegisterRequest{Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)

	err = service.VerifyEmail(models.VerifyEmailRequest{Email: "ana@example.com", Code: "000000"})

	assert.True(t, errors.IsCode(err, errors.CodeBadRequest))
}

func TestLogin_IssuesParsableToken(t *testing.T) {
	service, _ := newTestAuthService(t)
	user, err := service.Register(models.RegisterRequest{Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)
	require.NoError(t, service.VerifyEmail(models.VerifyEmailRequest{Email: "ana@example.com", Code: "123456"}))

	response, err := service.Login(models.LoginRequest{Email: "ana@example.com", Password: "hunter22"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, response.User.ID)

	claims := &middleware.AuthClaims{}
	parsed, err := jwt.ParseWithClaims(response.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithTimeFunc(func() time.Time { return authNow }))
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, authNow.Add(24*time.Hour), claims.ExpiresAt.Time)
}

func TestLogin_WrongPassword(t *testing.T) {
	service, _ := newTestAuthService(t)
	_, err := service.Register(models.RegisterRequest{Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)

	_, err = service.Login(models.LoginRequest{Email: "ana@example.com", Password: "nope"})

	assert.True(t, errors.IsCode(err, errors.CodeUnauthorized))
}

func TestLogin_UnknownEmail(t *testing.T) {
	service, _ := newTestAuthService(t)

	_, err := service.Login(models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})

	assert.True(t, errors.IsCode(err, errors.CodeUnauthorized))
}

func TestLogin_UnverifiedResendsCode(t *testing.T) {
	service, mail := newTestAuthService(t)
	_, err := service.Register(models.RegisterRequest{Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)
	require.Len(t, mail.codes, 1)

	_, err = service.Login(models.LoginRequest{Email: "ana@example.com", Password: "hunter22"})

	assert.True(t, errors.IsCode(err, errors.CodeForbidden))
	assert.Len(t, mail.codes, 2)
}

func TestUpdateProfile(t *testing.T) {
	service, _ := newTestAuthService(t)
	user, err := service.Register(models.RegisterRequest{Email: "ana@example.com", Password: "hunter22"})
	require.NoError(t, err)

	updated, err := service.UpdateProfile(user.ID, models.UpdateProfileRequest{DisplayName: "Ana Lima"})

	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", updated.DisplayName)

	fetched, err := service.CurrentUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Lima", fetched.DisplayName)
}
