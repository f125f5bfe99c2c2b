package services

import (
	"errors"
	"testing"

	"github.com/reddot-health/reddot/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepository struct {
	users  map[string]models.User
	nextID uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]models.User), nextID: 1}
}

func (repo *fakeUserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	_, ok := repo.users[email]
	return ok, nil
}

func (repo *fakeUserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	user, ok := repo.users[email]
	if !ok {
		return models.User{}, errors.New("record not found")
	}
	return user, nil
}

func (repo *fakeUserRepository) FindByID(userID uint) (models.User, error) {
	for _, user := range repo.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, errors.New("record not found")
}

func (repo *fakeUserRepository) Create(user *models.User) error {
	user.ID = repo.nextID
	repo.nextID++
	repo.users[user.Email] = *user
	return nil
}

func (repo *fakeUserRepository) Save(user *models.User) error {
	repo.users[user.Email] = *user
	return nil
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{raw: "User@Example.com", want: "user@example.com"},
		{raw: "  padded@example.com  ", want: "padded@example.com"},
		{raw: "plain@example.com", want: "plain@example.com"},
	}
	for _, testCase := range cases {
		if got := NormalizeEmail(testCase.raw); got != testCase.want {
			t.Fatalf("NormalizeEmail(%q) = %q, want %q", testCase.raw, got, testCase.want)
		}
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	service := NewAuthService(newFakeUserRepository())

	user, err := service.Register("New@Example.com", "StrongPass1", " Ada ", " Lovelace ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "new@example.com" {
		t.Fatalf("expected a normalized email, got %q", user.Email)
	}
	if user.FirstName != "Ada" || user.LastName != "Lovelace" {
		t.Fatalf("expected trimmed names, got %q %q", user.FirstName, user.LastName)
	}
	if user.PasswordHash == "StrongPass1" || user.PasswordHash == "" {
		t.Fatal("expected the password to be hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("StrongPass1")) != nil {
		t.Fatal("expected the hash to verify against the original password")
	}

	if _, err := service.Register("new@example.com", "StrongPass1", "", ""); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if _, err := service.Register("short@example.com", "short", "", ""); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
	if _, err := service.Register("no-at-sign", "StrongPass1", "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	service := NewAuthService(newFakeUserRepository())
	if _, err := service.Register("login@example.com", "StrongPass1", "", ""); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := service.Authenticate(" Login@Example.com ", "StrongPass1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "login@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := service.Authenticate("login@example.com", "WrongPass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for a wrong password, got %v", err)
	}
	if _, err := service.Authenticate("unknown@example.com", "StrongPass1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for an unknown email, got %v", err)
	}
}
