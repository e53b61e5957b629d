package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/auditrecrut/backend/internal/domain"
	"github.com/auditrecrut/backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// profileCacheTTL bounds staleness of the denormalized profile copy;
// RefreshProfile replaces it earlier after a mutation.
const profileCacheTTL = time.Hour

type AuthUseCase struct {
	userRepo     repository.UserProfileRepository
	sessionRepo  repository.SessionRepository
	profileCache repository.ProfileCache
	jwtSecret    string
	accessExpiry time.Duration
}

func NewAuthUseCase(
	userRepo repository.UserProfileRepository,
	sessionRepo repository.SessionRepository,
	profileCache repository.ProfileCache,
	jwtSecret string,
	accessExpiry time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		profileCache: profileCache,
		jwtSecret:    jwtSecret,
		accessExpiry: accessExpiry,
	}
}

// SignUpRequest carries the signup form. Company fields are only persisted
// for recruiters.
type SignUpRequest struct {
	Email              string  `json:"email" binding:"required,email"`
	Password           string  `json:"password" binding:"required,min=6"`
	FirstName          string  `json:"first_name" binding:"required,max=100"`
	LastName           string  `json:"last_name" binding:"required,max=100"`
	Phone              *string `json:"phone" binding:"omitempty,max=30"`
	Role               string  `json:"role" binding:"required,userrole"`
	CompanyName        *string `json:"company_name" binding:"omitempty,max=200"`
	CompanyDescription *string `json:"company_description" binding:"omitempty,max=2000"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by both signup and login.
type AuthResponse struct {
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expires_at"`
	Profile   *domain.UserProfile `json:"profile"`
}

// SignUp creates the account with profile_completed=false. The role is fixed
// here and never updated afterwards.
func (uc *AuthUseCase) SignUp(ctx context.Context, req *SignUpRequest) (*AuthResponse, error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := &domain.UserProfile{
		Role:             role,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		ProfileCompleted: false,
		PasswordHash:     string(hash),
	}
	if role == domain.RoleRecruiter {
		profile.CompanyName = req.CompanyName
		profile.CompanyDescription = req.CompanyDescription
	}

	if err := uc.userRepo.Create(ctx, profile); err != nil {
		return nil, err
	}

	return uc.startSession(ctx, profile)
}

// Login verifies credentials and opens a session.
func (uc *AuthUseCase) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	profile, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return uc.startSession(ctx, profile)
}

func (uc *AuthUseCase) startSession(ctx context.Context, profile *domain.UserProfile) (*AuthResponse, error) {
	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    profile.ID,
		Role:      profile.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.accessExpiry),
	}

	claims := jwt.RegisteredClaims{
		ID:        session.ID,
		Subject:   profile.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if err := uc.profileCache.Replace(ctx, profile, profileCacheTTL); err != nil {
		return nil, fmt.Errorf("failed to cache profile: %w", err)
	}

	return &AuthResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Profile:   profile,
	}, nil
}

// ValidateToken parses the token and resolves its server-side session.
func (uc *AuthUseCase) ValidateToken(ctx context.Context, tokenString string) (*domain.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrSessionNotFound
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.ID == "" {
		return nil, domain.ErrSessionNotFound
	}

	return uc.sessionRepo.Get(ctx, claims.ID)
}

// Logout deletes the session, invalidating its token before expiry.
func (uc *AuthUseCase) Logout(ctx context.Context, sessionID string) error {
	return uc.sessionRepo.Delete(ctx, sessionID)
}

// CurrentProfile returns the cached denormalized profile, falling back to
// Postgres on a cache miss.
func (uc *AuthUseCase) CurrentProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := uc.profileCache.Get(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}
	return uc.RefreshProfile(ctx, userID)
}

// RefreshProfile re-reads the profile and replaces the cached copy
// atomically.
func (uc *AuthUseCase) RefreshProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := uc.profileCache.Replace(ctx, profile, profileCacheTTL); err != nil {
		return nil, fmt.Errorf("failed to cache profile: %w", err)
	}
	return profile, nil
}
