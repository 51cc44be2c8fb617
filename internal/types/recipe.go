package types

// GenerationRequest carries the three user preferences sent to the generation
// proxy. It is transient and never persisted.
type GenerationRequest struct {
	CookingTime string `json:"cookingTime" validate:"required"`
	Ingredients string `json:"ingredients" validate:"required,min=3"`
	Mood        string `json:"mood" validate:"required"`
}

// Recipe is a single generated recipe as returned by the model
type Recipe struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	CookTime     string   `json:"cookTime" validate:"required"`
	Ingredients  []string `json:"ingredients" validate:"required,min=1,dive,required"`
	Instructions []string `json:"instructions" validate:"required,min=1,dive,required"`
}

// RecipeResponse wraps the 1-3 recipes of a generation result
type RecipeResponse struct {
	Recipes []Recipe `json:"recipes" validate:"required,min=1,max=3,dive"`
}

// SavedRecipeInsert is the payload for saving a generated recipe. The owning
// user id is attached from the authenticated context, never from the client.
type SavedRecipeInsert struct {
	RecipeName        string   `json:"recipeName" validate:"required"`
	RecipeDescription string   `json:"recipeDescription" validate:"required"`
	CookTime          string   `json:"cookTime" validate:"required"`
	Ingredients       []string `json:"ingredients" validate:"required,dive,required"`
	Instructions      []string `json:"instructions" validate:"required,dive,required"`
	Category          string   `json:"category" validate:"omitempty,category"`
}

// UserRecipeForm is the free-text add-recipe payload. Either RecipeContent
// carries the whole recipe, or the three separate blocks are used.
type UserRecipeForm struct {
	RecipeName       string `json:"recipeName" validate:"required"`
	RecipeContent    string `json:"recipeContent"`
	Description      string `json:"description"`
	IngredientsText  string `json:"ingredientsText"`
	InstructionsText string `json:"instructionsText"`
	CookTime         string `json:"cookTime"`
	Category         string `json:"category"`
}
