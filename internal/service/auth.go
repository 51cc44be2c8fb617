package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ryank-holgate/ChronoChef/internal/models"
	"github.com/ryank-holgate/ChronoChef/internal/types"
)

// sessionTTL matches the original one-week session lifetime
const sessionTTL = 7 * 24 * time.Hour

// AuthService resolves identities. Handlers and the persistence layer only
// see the resolved user id, never the mechanism.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	sessions  SessionStore
}

// NewAuthService creates a new AuthService instance
func NewAuthService(db *gorm.DB, jwtSecret string, sessions SessionStore) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
		sessions:  sessions,
	}
}

// Register creates a user and signs them in. Email and username collisions
// fail with ErrDuplicateKey.
func (s *AuthService) Register(ctx context.Context, email, username, password string) (*models.User, string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hashed),
	}

	created, err := s.CreateUser(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(ctx, created.ID)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// Login verifies credentials and returns the user with a fresh token
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", types.ErrAuthenticationRequired
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", types.ErrAuthenticationRequired
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Logout revokes the session; tokens referencing it stop validating
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// ValidateToken parses the JWT and checks that its session is still live
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, types.ErrAuthenticationRequired
	}

	userID, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil || userID != claims.UserID {
		return nil, types.ErrAuthenticationRequired
	}

	return claims, nil
}

// GetUser retrieves a user by id
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (s *AuthService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by username
func (s *AuthService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a user, enforcing email and username uniqueness
func (s *AuthService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", user.Email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("email already registered: %w", types.ErrDuplicateKey)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Where("username = ?", user.Username).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("username already taken: %w", types.ErrDuplicateKey)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpsertUser inserts or merges on id conflict. Used by provider-delegated
// login flows where the identity provider assigns the id.
func (s *AuthService) UpsertUser(ctx context.Context, user *models.User) (*models.User, error) {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "username", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(user).Error
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, user.ID)
}

// UpdateProfile changes the mutable display fields
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName string) (*models.User, error) {
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"first_name": firstName,
			"last_name":  lastName,
		}).Error
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, userID)
}

// SetProfileImage records the stored picture URL on the user
func (s *AuthService) SetProfileImage(ctx context.Context, userID uuid.UUID, url string) (*models.User, error) {
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("profile_image_url", url).Error
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, userID)
}

func (s *AuthService) issueToken(ctx context.Context, userID uuid.UUID) (string, error) {
	sessionID := uuid.New().String()
	if err := s.sessions.Create(ctx, sessionID, userID, sessionTTL); err != nil {
		return "", err
	}

	now := time.Now()
	claims := &types.TokenClaims{
		UserID:    userID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
