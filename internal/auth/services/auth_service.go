package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/GenKoKo/culture-quest/internal/auth/mailer"
	"github.com/GenKoKo/culture-quest/internal/auth/models"
	"github.com/GenKoKo/culture-quest/internal/auth/repository"
	"github.com/GenKoKo/culture-quest/internal/common/errors"
	"github.com/GenKoKo/culture-quest/internal/common/middleware"
)

const tokenLifetime = 24 * time.Hour

// AuthService handles registration, email verification and login.
type AuthService struct {
	users  repository.UserStore
	mail   mailer.Sender
	secret string
	now    func() time.Time
	code   func() string
}

// AuthOption configures an AuthService.
type AuthOption func(*AuthService)

// WithClock replaces the wall clock, for deterministic tests.
func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

// WithCodeGenerator replaces the verification-code generator, for
// deterministic tests.
func WithCodeGenerator(code func() string) AuthOption {
	return func(s *AuthService) { s.code = code }
}

func NewAuthService(users repository.UserStore, mail mailer.Sender, secret string, opts ...AuthOption) *AuthService {
	service := &AuthService{
		users:  users,
		mail:   mail,
		secret: secret,
		now:    time.Now,
		code:   randomCode,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// randomCode produces a 6-digit verification code.
func randomCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// Register creates an unverified account and mails its verification code.
func (s *AuthService) Register(req models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, errors.Conflict("email already in use")
	} else if !errors.IsCode(err, errors.CodeNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("failed to hash password", err.Error())
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = strings.SplitN(email, "@", 2)[0]
	}

	now := s.now()
	user := &models.User{
		Email:            email,
		PasswordHash:     string(hash),
		DisplayName:      displayName,
		VerificationCode: s.code(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	_ = s.mail.SendVerificationCode(user.Email, user.VerificationCode)
	return user, nil
}

// VerifyEmail marks an account verified when the submitted code matches.
func (s *AuthService) VerifyEmail(req models.VerifyEmailRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return err
	}

	if user.EmailVerified {
		return errors.BadRequest("email already verified")
	}
	if user.VerificationCode != req.Code {
		return errors.BadRequest("invalid verification code")
	}

	user.EmailVerified = true
	user.VerificationCode = ""
	user.UpdatedAt = s.now()
	if err := s.users.Update(user); err != nil {
		return err
	}

	_ = s.mail.SendVerified(user.Email)
	return nil
}

// Login checks credentials and issues a signed token. An unverified account is
// rejected and its verification code is re-sent.
func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.IsCode(err, errors.CodeNotFound) {
			return nil, errors.Unauthorized("invalid credentials")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, errors.Unauthorized("invalid credentials")
	}

	if !user.EmailVerified {
		_ = s.mail.SendVerificationCode(user.Email, user.VerificationCode)
		return nil, errors.Forbidden("email not verified, a new verification code has been sent")
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: token, User: *user}, nil
}

// CurrentUser returns the account behind an authenticated request.
func (s *AuthService) CurrentUser(userID uint) (*models.User, error) {
	return s.users.GetByID(userID)
}

// UpdateProfile changes the display name.
func (s *AuthService) UpdateProfile(userID uint, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}

	user.DisplayName = req.DisplayName
	user.UpdatedAt = s.now()
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := s.now()
	claims := middleware.AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Internal("failed to sign token", err.Error())
	}
	return signed, nil
}
