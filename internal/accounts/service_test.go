package accounts

import (
	"context"
	"testing"
	"time"

	"github.com/koodakziba/koodakziba-backend/pkg/config"
	pkgerrors "github.com/koodakziba/koodakziba-backend/pkg/errors"
	"github.com/koodakziba/koodakziba-backend/pkg/security"
)

type stubUserRepo struct {
	users   []User
	created *User
	updated *User
}

func (s *stubUserRepo) List(ctx context.Context) []User {
	return s.users
}

func (s *stubUserRepo) FindByID(ctx context.Context, id int) (*User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *stubUserRepo) Create(ctx context.Context, user User) (*User, error) {
	for _, u := range s.users {
		if u.Username == user.Username {
			return nil, ErrDuplicateUsername
		}
		if u.Email == user.Email {
			return nil, ErrDuplicateEmail
		}
	}
	user.ID = len(s.users) + 1
	s.users = append(s.users, user)
	s.created = &user
	return &user, nil
}

func (s *stubUserRepo) Update(ctx context.Context, user User) (*User, error) {
	for i, u := range s.users {
		if u.ID == user.ID {
			s.users[i] = user
			s.updated = &user
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *stubUserRepo) Delete(ctx context.Context, id int) (bool, error) {
	for i, u := range s.users {
		if u.ID == id {
			if u.IsAdmin {
				return false, ErrAdminProtected
			}
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func fastPasswordCfg() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func testAccountService(repo *stubUserRepo) *service {
	return &service{
		repo:        repo,
		passwordCfg: fastPasswordCfg(),
		now:         func() time.Time { return time.Date(2025, 1, 4, 10, 30, 0, 0, time.UTC) },
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := &stubUserRepo{}
	svc := testAccountService(repo)

	got, err := svc.Register(context.Background(), RegisterInput{
		Username: "sara",
		Email:    "sara@x.ir",
		Password: "secret-pass",
		Phone:    "09121112233",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if got.IsAdmin {
		t.Fatal("registered user must not be admin")
	}
	if repo.created.Password == "secret-pass" || repo.created.Password == "" {
		t.Fatal("password stored without hashing")
	}

	ok, err := security.VerifyPassword("secret-pass", repo.created.Password)
	if err != nil || !ok {
		t.Fatalf("stored hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := testAccountService(&stubUserRepo{})
	ctx := context.Background()

	cases := []struct {
		name  string
		input RegisterInput
	}{
		{"empty username", RegisterInput{Email: "a@x.ir", Password: "p"}},
		{"bad email", RegisterInput{Username: "a", Email: "not-an-email", Password: "p"}},
		{"empty password", RegisterInput{Username: "a", Email: "a@x.ir"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.input)
			if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected VALIDATION_ERROR, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	repo := &stubUserRepo{users: []User{{ID: 1, Username: "a", Email: "dup@x.ir"}}}
	svc := testAccountService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "b",
		Email:    "dup@x.ir",
		Password: "p",
	})
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected CONFLICT, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	hash, err := security.HashPassword("right-pass", fastPasswordCfg())
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &stubUserRepo{users: []User{{ID: 1, Username: "sara", Email: "sara@x.ir", Password: hash}}}
	svc := testAccountService(repo)

	got, err := svc.Authenticate(ctx, "sara@x.ir", "right-pass")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.ID != 1 {
		t.Fatalf("wrong user returned: %+v", got)
	}

	_, err = svc.Authenticate(ctx, "sara@x.ir", "wrong-pass")
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("wrong password: expected UNAUTHORIZED, got %v", err)
	}

	_, err = svc.Authenticate(ctx, "nobody@x.ir", "right-pass")
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unknown email: expected UNAUTHORIZED, got %v", err)
	}
}

func TestListCustomersExcludesAdmins(t *testing.T) {
	repo := &stubUserRepo{users: []User{
		{ID: 1, Username: "admin", IsAdmin: true},
		{ID: 2, Username: "sara"},
		{ID: 3, Username: "nima"},
	}}
	svc := testAccountService(repo)

	got, err := svc.ListCustomers(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("unexpected customers: %+v", got)
	}
}

func TestUpdateUserKeepsHashWithoutPassword(t *testing.T) {
	repo := &stubUserRepo{users: []User{{ID: 1, Username: "sara", Email: "sara@x.ir", Password: "old-hash"}}}
	svc := testAccountService(repo)

	_, err := svc.UpdateUser(context.Background(), 1, UpdateUserInput{
		Username: "sara",
		Email:    "sara@x.ir",
		Phone:    "09120000000",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.updated.Password != "old-hash" {
		t.Fatalf("hash changed without a new password: %q", repo.updated.Password)
	}
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	repo := &stubUserRepo{users: []User{{ID: 1, Username: "sara", Email: "sara@x.ir", Password: "old-hash"}}}
	svc := testAccountService(repo)

	newPass := "new-pass"
	_, err := svc.UpdateUser(context.Background(), 1, UpdateUserInput{
		Username: "sara",
		Email:    "sara@x.ir",
		Password: &newPass,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	ok, err := security.VerifyPassword("new-pass", repo.updated.Password)
	if err != nil || !ok {
		t.Fatalf("new hash does not verify: ok=%v err=%v", ok, err)
	}
}

func TestDeleteUserAdminRefused(t *testing.T) {
	repo := &stubUserRepo{users: []User{{ID: 1, Username: "admin", IsAdmin: true}}}
	svc := testAccountService(repo)

	err := svc.DeleteUser(context.Background(), 1)
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeForbidden {
		t.Fatalf("expected FORBIDDEN, got %v", err)
	}
}

func TestDeleteUserMissing(t *testing.T) {
	svc := testAccountService(&stubUserRepo{})

	err := svc.DeleteUser(context.Background(), 5)
	if coded := pkgerrors.As(err); coded == nil || coded.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestCountCustomers(t *testing.T) {
	repo := &stubUserRepo{users: []User{
		{ID: 1, IsAdmin: true},
		{ID: 2},
		{ID: 3},
	}}
	svc := testAccountService(repo)

	count, err := svc.CountCustomers(context.Background())
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 customers, got %d", count)
	}
}
