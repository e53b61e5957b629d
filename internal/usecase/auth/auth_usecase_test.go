package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/google/uuid"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.UserProfile
	byID    map[string]*domain.UserProfile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*domain.UserProfile),
		byID:    make(map[string]*domain.UserProfile),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, profile *domain.UserProfile) error {
	if _, exists := f.byEmail[profile.Email]; exists {
		return domain.ErrEmailAlreadyUsed
	}
	profile.ID = uuid.NewString()
	f.byEmail[profile.Email] = profile
	f.byID[profile.ID] = profile
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return p, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	p, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return p, nil
}

func (f *fakeUserRepo) GetByIDs(ctx context.Context, ids []string) ([]*domain.UserProfile, error) {
	return nil, nil
}

func (f *fakeUserRepo) SetProfileCompleted(ctx context.Context, userID string, completed bool) error {
	if p, ok := f.byID[userID]; ok {
		p.ProfileCompleted = completed
	}
	return nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int, error) { return len(f.byID), nil }

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (f *fakeSessionRepo) Save(ctx context.Context, session *domain.Session) error {
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionRepo) Get(ctx context.Context, id string) (*domain.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

type fakeProfileCache struct {
	profiles map[string]*domain.UserProfile
}

func newFakeProfileCache() *fakeProfileCache {
	return &fakeProfileCache{profiles: make(map[string]*domain.UserProfile)}
}

func (f *fakeProfileCache) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakeProfileCache) Replace(ctx context.Context, profile *domain.UserProfile, ttl time.Duration) error {
	f.profiles[profile.ID] = profile
	return nil
}

func (f *fakeProfileCache) Invalidate(ctx context.Context, userID string) error {
	delete(f.profiles, userID)
	return nil
}

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestAuth() (*AuthUseCase, *fakeUserRepo, *fakeSessionRepo, *fakeProfileCache) {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	cache := newFakeProfileCache()
	uc := NewAuthUseCase(users, sessions, cache, testSecret, time.Hour)
	return uc, users, sessions, cache
}

func signUpRequest(email string) *SignUpRequest {
	return &SignUpRequest{
		Email:     email,
		Password:  "secret123",
		FirstName: "Alice",
		LastName:  "Martin",
		Role:      "candidate_graduate",
	}
}

func TestSignUp(t *testing.T) {
	uc, _, sessions, cache := newTestAuth()

	resp, err := uc.SignUp(context.Background(), signUpRequest("alice@example.com"))
	if err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if resp.Token == "" {
		t.Error("no token issued")
	}
	if resp.Profile.ProfileCompleted {
		t.Error("new account must start with profile_completed=false")
	}
	if resp.Profile.PasswordHash == "secret123" {
		t.Error("password stored in clear")
	}
	if len(sessions.sessions) != 1 {
		t.Errorf("got %d sessions, want 1", len(sessions.sessions))
	}
	if _, ok := cache.profiles[resp.Profile.ID]; !ok {
		t.Error("profile not cached after signup")
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	uc, _, _, _ := newTestAuth()

	if _, err := uc.SignUp(context.Background(), signUpRequest("alice@example.com")); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	_, err := uc.SignUp(context.Background(), signUpRequest("alice@example.com"))
	if !errors.Is(err, domain.ErrEmailAlreadyUsed) {
		t.Fatalf("err = %v, want ErrEmailAlreadyUsed", err)
	}
}

func TestSignUpCompanyFieldsOnlyForRecruiters(t *testing.T) {
	uc, users, _, _ := newTestAuth()

	company := "Cabinet Audit & Co"
	req := signUpRequest("grad@example.com")
	req.CompanyName = &company
	if _, err := uc.SignUp(context.Background(), req); err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	if users.byEmail["grad@example.com"].CompanyName != nil {
		t.Error("company name persisted for a candidate account")
	}

	req = signUpRequest("rec@example.com")
	req.Role = "recruiter"
	req.CompanyName = &company
	if _, err := uc.SignUp(context.Background(), req); err != nil {
		t.Fatalf("SignUp returned error: %v", err)
	}
	got := users.byEmail["rec@example.com"].CompanyName
	if got == nil || *got != company {
		t.Error("company name dropped for a recruiter account")
	}
}

func TestLogin(t *testing.T) {
	uc, _, _, _ := newTestAuth()

	if _, err := uc.SignUp(context.Background(), signUpRequest("alice@example.com")); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	resp, err := uc.Login(context.Background(), &LoginRequest{Email: "alice@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.Token == "" {
		t.Error("no token issued")
	}

	_, err = uc.Login(context.Background(), &LoginRequest{Email: "alice@example.com", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}

	// An unknown account reads the same as a bad password.
	_, err = uc.Login(context.Background(), &LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateToken(t *testing.T) {
	uc, _, _, _ := newTestAuth()

	resp, err := uc.SignUp(context.Background(), signUpRequest("alice@example.com"))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	session, err := uc.ValidateToken(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}
	if session.UserID != resp.Profile.ID {
		t.Errorf("session user = %s, want %s", session.UserID, resp.Profile.ID)
	}
	if session.Role != domain.RoleCandidateGraduate {
		t.Errorf("session role = %s", session.Role)
	}

	if _, err := uc.ValidateToken(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("garbage token: err = %v, want ErrSessionNotFound", err)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	uc, _, _, _ := newTestAuth()

	resp, err := uc.SignUp(context.Background(), signUpRequest("alice@example.com"))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	session, err := uc.ValidateToken(context.Background(), resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken returned error: %v", err)
	}

	if err := uc.Logout(context.Background(), session.ID); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}

	// The signed token is still cryptographically valid but its session is
	// gone, so it no longer authenticates.
	if _, err := uc.ValidateToken(context.Background(), resp.Token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("after logout: err = %v, want ErrSessionNotFound", err)
	}
}

func TestRefreshProfileReplacesCache(t *testing.T) {
	uc, users, _, cache := newTestAuth()

	resp, err := uc.SignUp(context.Background(), signUpRequest("alice@example.com"))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	userID := resp.Profile.ID

	if err := users.SetProfileCompleted(context.Background(), userID, true); err != nil {
		t.Fatalf("SetProfileCompleted failed: %v", err)
	}

	refreshed, err := uc.RefreshProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("RefreshProfile returned error: %v", err)
	}
	if !refreshed.ProfileCompleted {
		t.Error("refreshed profile missing the new state")
	}
	if !cache.profiles[userID].ProfileCompleted {
		t.Error("cache not replaced with the new state")
	}
}

func TestCurrentProfileFallsBackToDatabase(t *testing.T) {
	uc, _, _, cache := newTestAuth()

	resp, err := uc.SignUp(context.Background(), signUpRequest("alice@example.com"))
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	userID := resp.Profile.ID

	if err := cache.Invalidate(context.Background(), userID); err != nil {
		t.Fatalf("Invalidate failed: %v", err)
	}

	profile, err := uc.CurrentProfile(context.Background(), userID)
	if err != nil {
		t.Fatalf("CurrentProfile returned error: %v", err)
	}
	if profile.ID != userID {
		t.Errorf("profile id = %s, want %s", profile.ID, userID)
	}
	if _, ok := cache.profiles[userID]; !ok {
		t.Error("cache not repopulated after miss")
	}
}
