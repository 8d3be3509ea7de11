package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bitewrap/internal/domain"
	"bitewrap/internal/repository"
)

type jwtService interface {
	GenerateToken(userID int64) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	users              *repository.UserRepository
	refreshTokens      *repository.RefreshTokenRepository
	jwt                jwtService
	refreshTokenPepper string
	refreshTTL         time.Duration
}

type SessionResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

func NewService(
	users *repository.UserRepository,
	refreshTokens *repository.RefreshTokenRepository,
	jwt jwtService,
	refreshTokenPepper string,
	refreshTTL time.Duration,
) *Service {
	return &Service{
		users:              users,
		refreshTokens:      refreshTokens,
		jwt:                jwt,
		refreshTokenPepper: refreshTokenPepper,
		refreshTTL:         refreshTTL,
	}
}

// Signup creates the account and signs the user straight in, mirroring
// the mobile client's auto-signed-in contract.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*SessionResult, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Name:         req.Name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return s.issueSession(ctx, user)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*SessionResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueSession(ctx, user)
}

// Refresh rotates the opaque refresh token. Presenting an already
// rotated or revoked token is treated as theft: the entire family is
// revoked.
func (s *Service) Refresh(ctx context.Context, refreshRaw string) (*SessionResult, error) {
	hash := hashTokenWithPepper(refreshRaw, s.refreshTokenPepper)

	current, err := s.refreshTokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	now := time.Now()
	if !current.ExpiresAt.After(now) {
		return nil, ErrInvalidRefreshToken
	}
	if current.UsedAt != nil || current.RevokedAt != nil {
		if err := s.refreshTokens.RevokeFamily(ctx, current.FamilyID); err != nil {
			return nil, err
		}
		return nil, ErrRefreshTokenReused
	}

	user, err := s.users.GetByID(ctx, current.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	newRaw, newHash, err := generateOpaqueRefreshToken(s.refreshTokenPepper)
	if err != nil {
		return nil, err
	}
	next := &domain.RefreshToken{
		TokenHash: newHash,
		JTI:       uuid.NewString(),
		ExpiresAt: now.Add(s.refreshTTL),
	}
	if err := s.refreshTokens.Rotate(ctx, hash, next); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &SessionResult{User: user, AccessToken: accessToken, RefreshToken: newRaw}, nil
}

// Logout revokes the refresh token family. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, refreshRaw string) error {
	hash := hashTokenWithPepper(refreshRaw, s.refreshTokenPepper)
	token, err := s.refreshTokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.refreshTokens.RevokeFamily(ctx, token.FamilyID)
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) issueSession(ctx context.Context, user *domain.User) (*SessionResult, error) {
	accessToken, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	refreshRaw, refreshHash, err := generateOpaqueRefreshToken(s.refreshTokenPepper)
	if err != nil {
		return nil, err
	}
	if err := s.refreshTokens.Create(ctx, &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: refreshHash,
		JTI:       uuid.NewString(),
		FamilyID:  uuid.NewString(),
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &SessionResult{User: user, AccessToken: accessToken, RefreshToken: refreshRaw}, nil
}

func generateOpaqueRefreshToken(pepper string) (raw string, hash string, err error) {
	buf := make([]byte, 32)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	hash = hashTokenWithPepper(raw, pepper)
	return raw, hash, nil
}

func hashTokenWithPepper(raw, pepper string) string {
	sum := sha256.Sum256([]byte(raw + pepper))
	return hex.EncodeToString(sum[:])
}
