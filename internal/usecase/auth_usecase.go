package usecase

import (
	"context"
	"errors"
	"strings"

	"career-platform-backend/internal/domain"
	"career-platform-backend/pkg/apperror"
	"career-platform-backend/pkg/auth"
	"career-platform-backend/pkg/email"
	"career-platform-backend/pkg/logger"
	"career-platform-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
	mailer   *email.EmailService
	validate *validator.Validate
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager, mailer *email.EmailService, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		mailer:   mailer,
		validate: validate,
	}
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(strings.Join(validation.FormatValidationErrors(err), "; "))
	}

	// Pre-checks give precise messages; the unique constraints cover races.
	if _, err := u.userRepo.GetByUsername(ctx, input.Username); err == nil {
		return nil, apperror.Conflict("Username is already taken")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if _, err := u.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperror.Conflict("Email already registered")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if u.mailer != nil && u.mailer.IsConfigured() {
		// Signup must not fail on a mail hiccup.
		if err := u.mailer.SendWelcomeEmail(user.Email, email.WelcomeEmailData{Username: user.Username}); err != nil {
			logger.Log.Warn("welcome email not sent", "email", user.Email, "error", err.Error())
		}
	}

	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, *domain.AuthToken, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, apperror.Unauthorized("Invalid email or password")
	}

	token, expiresAt, err := u.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, nil, err
	}

	return user, &domain.AuthToken{Token: token, ExpiresAt: expiresAt}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, err
	}
	return user, nil
}
