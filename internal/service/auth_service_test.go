package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"expense-tracker-be/internal/entities"
	"expense-tracker-be/internal/models"
	"expense-tracker-be/internal/repository"
	"expense-tracker-be/internal/token"
)

type fakeUserRepo struct {
	byEmail map[string]*entities.User
	byPhone map[string]*entities.User
	created []*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*entities.User),
		byPhone: make(map[string]*entities.User),
	}
}

func (f *fakeUserRepo) add(user *entities.User) {
	f.byEmail[user.Email] = user
	f.byPhone[user.Phone] = user
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	created := *user
	created.ID = "user-new"
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = append(f.created, &created)
	f.add(&created)
	result := created
	return &result, nil
}

func (f *fakeUserRepo) FindByEmailOrPhone(ctx context.Context, email, phone string) (*entities.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	if user, ok := f.byPhone[phone]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByKey(ctx context.Context, key string) (*entities.User, error) {
	if user, ok := f.byEmail[key]; ok {
		copied := *user
		return &copied, nil
	}
	if user, ok := f.byPhone[key]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return nil, repository.ErrNotFound
}

func testTokens() *token.Service {
	return token.NewService("test-secret", time.Hour, false)
}

func signupRequest() *models.SignupRequest {
	return &models.SignupRequest{
		Name:            "Asha",
		Email:           "asha@example.com",
		Phone:           "+919876543210",
		Password:        "Secret1",
		ConfirmPassword: "Secret1",
	}
}

func TestSignup_Success(t *testing.T) {
	repo := newFakeUserRepo()
	tokens := testTokens()
	svc := NewAuthService(repo, tokens)

	user, tok, err := svc.Signup(context.Background(), signupRequest())
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if user.PasswordHash != "" {
		t.Error("Signup() returned user with password hash set")
	}
	if len(repo.created) != 1 {
		t.Fatalf("created %d users, want 1", len(repo.created))
	}
	if repo.created[0].PasswordHash == "Secret1" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.created[0].PasswordHash), []byte("Secret1")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}

	// The issued token must be accepted by the token service
	userID, err := tokens.Parse(tok)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if userID != user.ID {
		t.Errorf("token userID = %q, want %q", userID, user.ID)
	}
}

func TestSignup_DuplicateEmailOrPhone(t *testing.T) {
	repo := newFakeUserRepo()
	repo.add(&entities.User{ID: "user-1", Email: "asha@example.com", Phone: "+911111111111"})
	svc := NewAuthService(repo, testTokens())

	_, _, err := svc.Signup(context.Background(), signupRequest())
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("Signup() error = %v, want ErrUserExists", err)
	}
	if len(repo.created) != 0 {
		t.Errorf("created %d users, want 0", len(repo.created))
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("Secret1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt error = %v", err)
	}
	repo := newFakeUserRepo()
	repo.add(&entities.User{
		ID:           "user-1",
		Email:        "asha@example.com",
		Phone:        "+919876543210",
		PasswordHash: string(hash),
	})
	svc := NewAuthService(repo, testTokens())

	tests := []struct {
		name    string
		key     string
		pass    string
		wantErr error
	}{
		{"by email", "asha@example.com", "Secret1", nil},
		{"by phone", "+919876543210", "Secret1", nil},
		{"wrong password", "asha@example.com", "Wrong1x", ErrInvalidCredentials},
		{"unknown key", "nobody@example.com", "Secret1", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tok, err := svc.Login(context.Background(), &models.LoginRequest{Key: tt.key, Password: tt.pass})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if tok == "" {
				t.Error("Login() returned empty token")
			}
			if user.PasswordHash != "" {
				t.Error("Login() returned user with password hash set")
			}
		})
	}
}
