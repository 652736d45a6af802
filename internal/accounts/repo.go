package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/koodakziba/koodakziba-backend/pkg/store"
)

var (
	// ErrNotFound reports a lookup for an unknown user id or email.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateUsername reports a create or update that would reuse a
	// taken username.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrDuplicateEmail reports a create or update that would reuse a
	// taken email.
	ErrDuplicateEmail = errors.New("email already taken")
	// ErrAdminProtected reports an attempt to delete an admin record.
	ErrAdminProtected = errors.New("admin account cannot be deleted")
)

// Repository handles account persistence over the JSON collection.
// Username and email comparisons are exact string matches.
type Repository struct {
	coll *store.Collection[User]
}

// NewRepository binds a user collection to account operations.
func NewRepository(coll *store.Collection[User]) (*Repository, error) {
	if coll == nil {
		return nil, fmt.Errorf("user collection required")
	}
	return &Repository{coll: coll}, nil
}

// List returns all users in stored order.
func (r *Repository) List(ctx context.Context) []User {
	return r.coll.Load(ctx)
}

// FindByID loads a single user.
func (r *Repository) FindByID(ctx context.Context, id int) (*User, error) {
	for _, u := range r.coll.Load(ctx) {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// FindByEmail loads the user with the exact email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range r.coll.Load(ctx) {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends the user with the next id after checking username and
// email uniqueness. On conflict the collection is left untouched and no id
// is consumed.
func (r *Repository) Create(ctx context.Context, user User) (*User, error) {
	users := r.coll.Load(ctx)

	for _, u := range users {
		if u.Username == user.Username {
			return nil, ErrDuplicateUsername
		}
		if u.Email == user.Email {
			return nil, ErrDuplicateEmail
		}
	}

	maxID := 0
	for _, u := range users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	user.ID = maxID + 1

	users = append(users, user)
	if err := r.coll.Save(ctx, users); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update replaces the stored record with the same id, enforcing username
// and email uniqueness against the other records.
func (r *Repository) Update(ctx context.Context, user User) (*User, error) {
	users := r.coll.Load(ctx)

	idx := -1
	for i, u := range users {
		if u.ID == user.ID {
			idx = i
			continue
		}
		if u.Username == user.Username {
			return nil, ErrDuplicateUsername
		}
		if u.Email == user.Email {
			return nil, ErrDuplicateEmail
		}
	}
	if idx < 0 {
		return nil, ErrNotFound
	}

	users[idx] = user
	if err := r.coll.Save(ctx, users); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a non-admin user and reports whether it existed. Admin
// records are refused.
func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	users := r.coll.Load(ctx)

	idx := -1
	for i, u := range users {
		if u.ID == id {
			if u.IsAdmin {
				return false, ErrAdminProtected
			}
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, nil
	}

	users = append(users[:idx], users[idx+1:]...)
	if err := r.coll.Save(ctx, users); err != nil {
		return false, err
	}
	return true, nil
}
