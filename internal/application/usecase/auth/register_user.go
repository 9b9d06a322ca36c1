// Package auth contains the authentication use cases: registration,
// login, token refresh and logout.
package auth

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/application/adapter"
	"github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/entity"
	domainerror "github.com/20251029-hanhwa-swcamp-22th/be22-4st-team3-project/internal/domain/error"
)

// MinPasswordLength is the minimum allowed password length.
const MinPasswordLength = 8

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Email    string
	Nickname string
	Password string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	UserID   uuid.UUID
	Email    string
	Nickname string
}

// RegisterUserUseCase handles user registration logic. Registration also
// seeds the fixed default category set so a new user can record
// transactions immediately.
type RegisterUserUseCase struct {
	uow             adapter.UnitOfWork
	passwordService adapter.PasswordService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(uow adapter.UnitOfWork, passwordService adapter.PasswordService) *RegisterUserUseCase {
	return &RegisterUserUseCase{uow: uow, passwordService: passwordService}
}

// Execute performs the user registration. The user row and the seeded
// categories commit as one atomic unit of work.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidRegistration,
			"invalid email address",
			domainerror.ErrInvalidRegistration,
		)
	}

	nickname := strings.TrimSpace(input.Nickname)
	if nickname == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidRegistration,
			"nickname must not be empty",
			domainerror.ErrInvalidRegistration,
		)
	}

	if len(input.Password) < MinPasswordLength {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidRegistration,
			fmt.Sprintf("password must be at least %d characters", MinPasswordLength),
			domainerror.ErrInvalidRegistration,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var output *RegisterUserOutput

	err = uc.uow.Do(ctx, func(ctx context.Context, stores adapter.Stores) error {
		exists, err := stores.Users.ExistsByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if exists {
			return domainerror.NewAuthError(
				domainerror.ErrCodeEmailExists,
				"email already registered",
				domainerror.ErrEmailAlreadyExists,
			)
		}

		user := entity.NewUser(email, nickname, passwordHash)
		if err := stores.Users.Create(ctx, user); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		for _, seed := range entity.DefaultCategories {
			category := entity.NewCategory(user.ID, seed.Name, seed.Type)
			if err := stores.Categories.Create(ctx, category); err != nil {
				return fmt.Errorf("failed to seed default category: %w", err)
			}
		}

		output = &RegisterUserOutput{
			UserID:   user.ID,
			Email:    user.Email,
			Nickname: user.Nickname,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}
