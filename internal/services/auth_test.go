package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mytenu/zaktwi/internal/models"
)

func TestAuthServiceRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("success hashes the password before saving", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)

		reader.EXPECT().GetByUsername(ctx, "abena").Return(nil, nil)
		writer.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u models.User) error {
				assert.Equal(t, "Abena Mensah", u.Name)
				assert.Equal(t, "abena", u.Username)
				assert.NotEqual(t, "pass1234", u.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pass1234")))
				return nil
			})

		svc := NewAuthService(reader, writer, nil, "admin", "1345")

		err := svc.Register(ctx, RegisterInput{
			Name:           "Abena Mensah",
			Username:       "abena",
			Password:       "pass1234",
			RepeatPassword: "pass1234",
		})
		assert.NoError(t, err)
	})

	t.Run("trims whitespace from form fields", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)

		reader.EXPECT().GetByUsername(ctx, "abena").Return(nil, nil)
		writer.EXPECT().
			Save(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, u models.User) error {
				assert.Equal(t, "abena", u.Username)
				assert.Equal(t, "0241234567", u.PaymentPhone)
				return nil
			})

		svc := NewAuthService(reader, writer, nil, "admin", "1345")

		err := svc.Register(ctx, RegisterInput{
			Name:           "  Abena Mensah  ",
			Username:       "  abena  ",
			Password:       "pass1234",
			RepeatPassword: "pass1234",
			PaymentPhone:   " 0241234567 ",
		})
		assert.NoError(t, err)
	})

	t.Run("duplicate username", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)

		reader.EXPECT().
			GetByUsername(ctx, "abena").
			Return(&models.User{Username: "abena"}, nil)

		svc := NewAuthService(reader, writer, nil, "admin", "1345")

		err := svc.Register(ctx, RegisterInput{
			Name:           "Abena Mensah",
			Username:       "abena",
			Password:       "pass1234",
			RepeatPassword: "pass1234",
		})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("validation failures write nothing", func(t *testing.T) {
		tests := []struct {
			name string
			in   RegisterInput
			want error
		}{
			{
				name: "missing username",
				in:   RegisterInput{Name: "Abena", Password: "pass", RepeatPassword: "pass"},
				want: ErrMissingFields,
			},
			{
				name: "missing name",
				in:   RegisterInput{Username: "abena", Password: "pass", RepeatPassword: "pass"},
				want: ErrMissingFields,
			},
			{
				name: "password mismatch",
				in:   RegisterInput{Name: "Abena", Username: "abena", Password: "pass", RepeatPassword: "other"},
				want: ErrPasswordMismatch,
			},
			{
				name: "password too short",
				in:   RegisterInput{Name: "Abena", Username: "abena", Password: "abc", RepeatPassword: "abc"},
				want: ErrPasswordTooShort,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				// no expectations: a validation failure must not touch storage
				reader := NewMockUserReader(ctrl)
				writer := NewMockUserWriter(ctrl)

				svc := NewAuthService(reader, writer, nil, "admin", "1345")

				err := svc.Register(ctx, tt.in)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestAuthServiceLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("pass1234"), bcrypt.DefaultCost)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		jwtGen := NewMockJWTGenerator(ctrl)

		reader.EXPECT().
			GetByUsername(ctx, "abena").
			Return(&models.User{Username: "abena", PasswordHash: string(hash)}, nil)
		jwtGen.EXPECT().
			Generate(ctx, "abena", false).
			Return("JWT_TOKEN", nil)

		svc := NewAuthService(reader, nil, jwtGen, "admin", "1345")

		token, err := svc.Login(ctx, "abena", "pass1234")
		assert.NoError(t, err)
		assert.Equal(t, "JWT_TOKEN", token)
	})

	t.Run("username is case-insensitive", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		jwtGen := NewMockJWTGenerator(ctrl)

		reader.EXPECT().
			GetByUsername(ctx, "abena").
			Return(&models.User{Username: "abena", PasswordHash: string(hash)}, nil)
		jwtGen.EXPECT().
			Generate(ctx, "abena", false).
			Return("JWT_TOKEN", nil)

		svc := NewAuthService(reader, nil, jwtGen, "admin", "1345")

		token, err := svc.Login(ctx, "  ABENA  ", "pass1234")
		assert.NoError(t, err)
		assert.Equal(t, "JWT_TOKEN", token)
	})

	t.Run("admin credentials bypass the worksheet", func(t *testing.T) {
		// no reader expectations: admin login must not hit storage
		reader := NewMockUserReader(ctrl)
		jwtGen := NewMockJWTGenerator(ctrl)

		jwtGen.EXPECT().
			Generate(ctx, "admin", true).
			Return("ADMIN_TOKEN", nil)

		svc := NewAuthService(reader, nil, jwtGen, "admin", "1345")

		token, err := svc.Login(ctx, "admin", "1345")
		assert.NoError(t, err)
		assert.Equal(t, "ADMIN_TOKEN", token)
	})

	t.Run("admin username with wrong password falls through", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		jwtGen := NewMockJWTGenerator(ctrl)

		reader.EXPECT().GetByUsername(ctx, "admin").Return(nil, nil)

		svc := NewAuthService(reader, nil, jwtGen, "admin", "1345")

		_, err := svc.Login(ctx, "admin", "wrong")
		assert.ErrorIs(t, err, ErrUserDoesNotExist)
	})

	t.Run("wrong password", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)

		reader.EXPECT().
			GetByUsername(ctx, "abena").
			Return(&models.User{Username: "abena", PasswordHash: string(hash)}, nil)

		svc := NewAuthService(reader, nil, nil, "admin", "1345")

		_, err := svc.Login(ctx, "abena", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)

		reader.EXPECT().GetByUsername(ctx, "ghost").Return(nil, nil)

		svc := NewAuthService(reader, nil, nil, "admin", "1345")

		_, err := svc.Login(ctx, "ghost", "pass1234")
		assert.ErrorIs(t, err, ErrUserDoesNotExist)
	})

	t.Run("blank credentials", func(t *testing.T) {
		svc := NewAuthService(nil, nil, nil, "admin", "1345")

		_, err := svc.Login(ctx, "  ", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
