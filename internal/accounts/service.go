package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/koodakziba/koodakziba-backend/pkg/config"
	pkgerrors "github.com/koodakziba/koodakziba-backend/pkg/errors"
	"github.com/koodakziba/koodakziba-backend/pkg/jcal"
	"github.com/koodakziba/koodakziba-backend/pkg/security"
)

type userRepository interface {
	List(ctx context.Context) []User
	FindByID(ctx context.Context, id int) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user User) (*User, error)
	Update(ctx context.Context, user User) (*User, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// Service exposes account operations.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*UserDTO, error)
	Authenticate(ctx context.Context, email, password string) (*UserDTO, error)
	ListCustomers(ctx context.Context) ([]*UserDTO, error)
	UpdateUser(ctx context.Context, id int, input UpdateUserInput) (*UserDTO, error)
	DeleteUser(ctx context.Context, id int) error
	CountCustomers(ctx context.Context) (int, error)
}

type service struct {
	repo        userRepository
	passwordCfg config.PasswordConfig
	now         func() time.Time
}

// NewService builds an account service over the user repository.
func NewService(repo userRepository, passwordCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("user repository required")
	}
	return &service{repo: repo, passwordCfg: passwordCfg, now: time.Now}, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*UserDTO, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username is required")
	}
	if !strings.Contains(email, "@") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid email")
	}
	if input.Password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password is required")
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	created, err := s.repo.Create(ctx, User{
		Username:  username,
		Email:     email,
		Password:  hash,
		Phone:     input.Phone,
		CreatedAt: jcal.Timestamp(s.now()),
	})
	if err != nil {
		return nil, mapConflict(err, "create user")
	}
	return FromUser(created), nil
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*UserDTO, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup user")
	}

	ok, err := security.VerifyPassword(password, user.Password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
	}
	return FromUser(user), nil
}

func (s *service) ListCustomers(ctx context.Context) ([]*UserDTO, error) {
	users := s.repo.List(ctx)
	out := make([]*UserDTO, 0, len(users))
	for i := range users {
		if users[i].IsAdmin {
			continue
		}
		out = append(out, FromUser(&users[i]))
	}
	return out, nil
}

func (s *service) UpdateUser(ctx context.Context, id int, input UpdateUserInput) (*UserDTO, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "username is required")
	}
	if !strings.Contains(email, "@") {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid email")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}

	record := *existing
	record.Username = username
	record.Email = email
	record.Phone = input.Phone
	if input.Password != nil && *input.Password != "" {
		hash, err := security.HashPassword(*input.Password, s.passwordCfg)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
		}
		record.Password = hash
	}

	updated, err := s.repo.Update(ctx, record)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
		}
		return nil, mapConflict(err, "update user")
	}
	return FromUser(updated), nil
}

func (s *service) DeleteUser(ctx context.Context, id int) error {
	found, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrAdminProtected) {
			return pkgerrors.New(pkgerrors.CodeForbidden, "admin account cannot be deleted")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete user")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
	}
	return nil
}

func (s *service) CountCustomers(ctx context.Context) (int, error) {
	count := 0
	for _, u := range s.repo.List(ctx) {
		if !u.IsAdmin {
			count++
		}
	}
	return count, nil
}

func mapConflict(err error, action string) error {
	switch {
	case errors.Is(err, ErrDuplicateUsername):
		return pkgerrors.New(pkgerrors.CodeConflict, "username already taken")
	case errors.Is(err, ErrDuplicateEmail):
		return pkgerrors.New(pkgerrors.CodeConflict, "email already taken")
	default:
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, action)
	}
}
