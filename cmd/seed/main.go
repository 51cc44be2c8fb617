package main

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ryank-holgate/ChronoChef/config"
	"github.com/ryank-holgate/ChronoChef/internal/database"
	"github.com/ryank-holgate/ChronoChef/internal/logger"
	"github.com/ryank-holgate/ChronoChef/internal/models"
	"github.com/ryank-holgate/ChronoChef/internal/service"
	"github.com/ryank-holgate/ChronoChef/internal/types"
)

const (
	demoEmail    = "demo@chronochef.dev"
	demoUsername = "demo"
	demoPassword = "demo-password"
)

var demoRecipes = []types.SavedRecipeInsert{
	{
		RecipeName:        "Weeknight Garlic Noodles",
		RecipeDescription: "Fast pantry noodles with a savory garlic butter sauce.",
		CookTime:          "20 minutes",
		Ingredients:       []string{"8 oz dried noodles", "4 cloves garlic, minced", "2 tbsp butter", "2 tbsp soy sauce", "1 tsp brown sugar", "2 green onions, sliced"},
		Instructions:      []string{"Cook noodles according to package directions and drain.", "Melt butter and soften garlic over medium heat.", "Stir in soy sauce and brown sugar.", "Toss noodles in the sauce and top with green onions."},
		Category:          "main-entrees",
	},
	{
		RecipeName:        "Citrus Fennel Salad",
		RecipeDescription: "Bright shaved fennel with orange segments and olive oil.",
		CookTime:          "15 minutes",
		Ingredients:       []string{"1 fennel bulb, shaved thin", "2 oranges, segmented", "2 tbsp olive oil", "1 tbsp lemon juice", "Salt and pepper"},
		Instructions:      []string{"Toss fennel with lemon juice and a pinch of salt.", "Fold in orange segments.", "Drizzle with olive oil and season to taste."},
		Category:          "soups-salads",
	},
	{
		RecipeName:        "Maple Roasted Carrots",
		RecipeDescription: "Caramelized carrots glazed with maple and thyme.",
		CookTime:          "35 minutes",
		Ingredients:       []string{"1 lb carrots, halved", "2 tbsp maple syrup", "1 tbsp olive oil", "1 tsp fresh thyme", "Salt"},
		Instructions:      []string{"Heat oven to 425F.", "Toss carrots with oil, maple syrup, thyme, and salt.", "Roast 25 to 30 minutes, turning once, until tender and browned."},
		Category:          "side-dishes",
	},
}

func main() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("failed to connect to Redis", zap.Error(err))
	}

	ctx := context.Background()
	sessions := service.NewRedisSessionStore(redisClient)
	authService := service.NewAuthService(db, cfg.JWTSecret, sessions)
	recipeService := service.NewRecipeService(db)

	user, err := authService.GetUserByEmail(ctx, demoEmail)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, _, err = authService.Register(ctx, demoEmail, demoUsername, demoPassword)
	}
	if err != nil {
		logger.Fatal("failed to ensure demo user", zap.Error(err))
	}

	existing, err := recipeService.GetSavedRecipes(ctx, user.ID)
	if err != nil {
		logger.Fatal("failed to list demo recipes", zap.Error(err))
	}
	if len(existing) > 0 {
		logger.Info("demo data already present", zap.Int("recipes", len(existing)))
		return
	}

	var seeded []models.SavedRecipe
	for i := range demoRecipes {
		rec, err := recipeService.SaveRecipe(ctx, user.ID, &demoRecipes[i])
		if err != nil {
			logger.Fatal("failed to seed recipe", zap.String("name", demoRecipes[i].RecipeName), zap.Error(err))
		}
		seeded = append(seeded, *rec)
	}

	logger.Info("seeded demo data",
		zap.String("user", user.Email),
		zap.Int("recipes", len(seeded)))
}
