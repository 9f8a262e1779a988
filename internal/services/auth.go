package services

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mytenu/zaktwi/internal/logger"
	"github.com/mytenu/zaktwi/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("wrong login details")
	ErrMissingFields      = errors.New("name, username and password are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 4 characters")
)

// UserReader defines read operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.User) error
}

// JWTGenerator defines an interface for generating session tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, username string, isAdmin bool) (string, error)
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name               string
	Username           string
	Password           string
	RepeatPassword     string
	PaymentPhone       string
	PaymentNetwork     string
	PaymentAccountName string
	CallContact        string
	Email              string
}

// AuthService handles registration and login. A configured admin credential
// pair bypasses the users worksheet entirely.
type AuthService struct {
	reader        UserReader
	writer        UserWriter
	jwt           JWTGenerator
	adminUsername string
	adminPassword string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTGenerator, adminUsername, adminPassword string) *AuthService {
	return &AuthService{
		reader:        reader,
		writer:        writer,
		jwt:           jwt,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Register validates the form and appends a new user row. All validation
// happens before any remote call; a validation failure writes nothing.
func (svc *AuthService) Register(ctx context.Context, in RegisterInput) error {
	name := strings.TrimSpace(in.Name)
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)

	if name == "" || username == "" || password == "" {
		return ErrMissingFields
	}
	if password != strings.TrimSpace(in.RepeatPassword) {
		return ErrPasswordMismatch
	}
	if len(password) < 4 {
		return ErrPasswordTooShort
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	user := models.User{
		Name:               name,
		PaymentPhone:       strings.TrimSpace(in.PaymentPhone),
		CallContact:        strings.TrimSpace(in.CallContact),
		Username:           username,
		PasswordHash:       string(hashedPassword),
		Email:              strings.TrimSpace(in.Email),
		PaymentAccountName: strings.TrimSpace(in.PaymentAccountName),
		PaymentNetwork:     strings.TrimSpace(in.PaymentNetwork),
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a session token. The admin
// credential is checked first and never consults the users worksheet.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	password = strings.TrimSpace(password)

	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	if username == svc.adminUsername && password == svc.adminPassword {
		token, err := svc.jwt.Generate(ctx, svc.adminUsername, true)
		if err != nil {
			logger.Log.Errorw("failed to generate admin JWT", "err", err)
			return "", err
		}
		return token, nil
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Username, false)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
