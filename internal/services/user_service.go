package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/joshua-takyi/tixgate/internal/helpers"
	"github.com/joshua-takyi/tixgate/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo models.UserRepo
}

func NewUserService(userRepo models.UserRepo) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUser registers a new unverified account with a hashed password and a
// one-time verification token.
func (us *UserService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := models.Validate.Struct(user); err != nil {
		return nil, validationError("invalid user data provided: %v", err)
	}

	ok := helpers.IsPasswordStrong(user.Password)
	if !ok {
		return nil, validationError("password is not strong enough")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}
	user.Password = string(hash)
	user.IsVerified = false
	user.VerificationToken = helpers.NewVerificationToken()
	if user.Role == "" {
		user.Role = models.RoleUser
	}

	created, err := us.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// AuthenticateUser checks credentials and returns the user with a signed JWT.
func (us *UserService) AuthenticateUser(ctx context.Context, email, password string) (*models.User, string, error) {
	if err := models.Validate.Var(email, "required,email"); err != nil {
		return nil, "", validationError("invalid email format: %v", err)
	}
	if err := models.Validate.Var(password, "required,min=8"); err != nil {
		return nil, "", validationError("invalid password format: %v", err)
	}

	user, err := us.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", models.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, "", models.ErrNotVerified
	}

	token, err := helpers.GenerateToken(user.ID.String(), user.Email, user.Username, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %v", err)
	}

	return user.Sanitize(), token, nil
}

// VerifyUser consumes the verification token sent at registration.
func (us *UserService) VerifyUser(ctx context.Context, email, token string) error {
	user, err := us.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return nil
	}
	if token == "" || user.VerificationToken != token {
		return validationError("invalid verification token")
	}
	return us.userRepo.MarkVerified(ctx, user.ID)
}

func (us *UserService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if id == uuid.Nil {
		return nil, validationError("invalid user ID")
	}
	user, err := us.userRepo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitize(), nil
}

func (us *UserService) UpdateUser(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.User, error) {
	if id == uuid.Nil {
		return nil, validationError("invalid user ID")
	}

	// Only profile fields are writable through this path. Keys arrive as
	// JSON tags and are translated to their column names.
	columns := map[string]string{
		"username":     "username",
		"fullname":     "full_name",
		"full_name":    "full_name",
		"phone_number": "phone_number",
	}
	updates := make(map[string]interface{})
	for key, value := range fields {
		if column, ok := columns[key]; ok {
			updates[column] = value
		}
	}
	if len(updates) == 0 {
		return nil, validationError("no updatable fields provided")
	}

	user, err := us.userRepo.UpdateUser(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	return user.Sanitize(), nil
}

func (us *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return validationError("invalid user ID")
	}
	return us.userRepo.DeleteUser(ctx, id)
}

// SetRole is the admin role-management operation.
func (us *UserService) SetRole(ctx context.Context, id uuid.UUID, role string) (*models.User, error) {
	if err := models.Validate.Var(role, "required,oneof=user host admin"); err != nil {
		return nil, validationError("unsupported role: %s", role)
	}
	user, err := us.userRepo.UpdateUser(ctx, id, map[string]interface{}{"role": role})
	if err != nil {
		return nil, err
	}
	return user.Sanitize(), nil
}
