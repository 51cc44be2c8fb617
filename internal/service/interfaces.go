package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/ryank-holgate/ChronoChef/internal/models"
	"github.com/ryank-holgate/ChronoChef/internal/types"
)

// IRecipeGenerator turns a validated generation request into 1-3 recipes
type IRecipeGenerator interface {
	GenerateRecipes(ctx context.Context, req *types.GenerationRequest) (*types.RecipeResponse, error)
}

// IRecipeService defines owner-scoped persistence for saved recipes
type IRecipeService interface {
	SaveRecipe(ctx context.Context, userID uuid.UUID, in *types.SavedRecipeInsert) (*models.SavedRecipe, error)
	AddUserRecipe(ctx context.Context, userID uuid.UUID, form *types.UserRecipeForm) (*models.SavedRecipe, error)
	GetSavedRecipes(ctx context.Context, userID uuid.UUID) ([]models.SavedRecipe, error)
	GetSavedRecipesByCategory(ctx context.Context, userID uuid.UUID, category string) ([]models.SavedRecipe, error)
	DeleteSavedRecipe(ctx context.Context, id uint, userID uuid.UUID) error
}

// IAuthService defines identity operations: credentials, tokens, lookups
type IAuthService interface {
	Register(ctx context.Context, email, username, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Logout(ctx context.Context, sessionID string) error
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	UpsertUser(ctx context.Context, user *models.User) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, firstName, lastName string) (*models.User, error)
	SetProfileImage(ctx context.Context, userID uuid.UUID, url string) (*models.User, error)
}

// IImageService stores uploaded profile pictures
type IImageService interface {
	UploadProfilePicture(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (string, error)
}
