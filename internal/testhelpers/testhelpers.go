package testhelpers

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ryank-holgate/ChronoChef/internal/database"
	"github.com/ryank-holgate/ChronoChef/internal/types"
)

// OpenTestDB returns a migrated in-memory database scoped to one test
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	return db
}

// MemorySessionStore is an in-process SessionStore for tests
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
}

type memorySession struct {
	userID    uuid.UUID
	expiresAt time.Time
}

// NewMemorySessionStore creates an empty in-memory session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]memorySession)}
}

func (s *MemorySessionStore) Create(ctx context.Context, sessionID string, userID uuid.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = memorySession{userID: userID, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok || time.Now().After(sess.expiresAt) {
		return uuid.Nil, fmt.Errorf("session not found")
	}
	return sess.userID, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// StubGenerator returns a canned generation result or error
type StubGenerator struct {
	Response *types.RecipeResponse
	Err      error
	Requests []*types.GenerationRequest
}

func (g *StubGenerator) GenerateRecipes(ctx context.Context, req *types.GenerationRequest) (*types.RecipeResponse, error) {
	g.Requests = append(g.Requests, req)
	if g.Err != nil {
		return nil, g.Err
	}
	return g.Response, nil
}

// StubImageService records uploads and returns a deterministic URL
type StubImageService struct {
	Uploads int
	Err     error
}

func (s *StubImageService) UploadProfilePicture(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	s.Uploads++
	return fmt.Sprintf("https://images.test/%s/%d", userID, s.Uploads), nil
}

// SampleRecipeResponse builds a minimal valid generation result
func SampleRecipeResponse() *types.RecipeResponse {
	return &types.RecipeResponse{
		Recipes: []types.Recipe{
			{
				Name:         "Test Skillet",
				Description:  "A quick one-pan meal.",
				CookTime:     "25 minutes",
				Ingredients:  []string{"1 onion", "2 eggs", "1 cup rice"},
				Instructions: []string{"Cook the rice.", "Fry the onion.", "Add the eggs."},
			},
		},
	}
}
