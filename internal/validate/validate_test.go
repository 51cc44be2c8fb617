package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryank-holgate/ChronoChef/internal/types"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	verr, ok := types.AsValidationError(err)
	require.True(t, ok, "expected a validation error, got %v", err)
	names := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		names[i] = f.Field
	}
	return names
}

func TestGenerationRequestValid(t *testing.T) {
	req := &types.GenerationRequest{
		CookingTime: "30 minutes",
		Ingredients: "chicken, rice, peppers",
		Mood:        "comfort food",
	}
	assert.NoError(t, GenerationRequest(req))
}

func TestGenerationRequestMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		req    types.GenerationRequest
		fields []string
	}{
		{
			name:   "missing cooking time",
			req:    types.GenerationRequest{Ingredients: "eggs and flour", Mood: "cozy"},
			fields: []string{"cookingTime"},
		},
		{
			name:   "short ingredients",
			req:    types.GenerationRequest{CookingTime: "1 hour", Ingredients: "ab", Mood: "cozy"},
			fields: []string{"ingredients"},
		},
		{
			name:   "missing mood",
			req:    types.GenerationRequest{CookingTime: "1 hour", Ingredients: "eggs and flour"},
			fields: []string{"mood"},
		},
		{
			name:   "everything missing",
			req:    types.GenerationRequest{},
			fields: []string{"cookingTime", "ingredients", "mood"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GenerationRequest(&tt.req)
			require.Error(t, err)
			assert.ElementsMatch(t, tt.fields, fieldNames(t, err))
		})
	}
}

func TestGenerationRequestMessages(t *testing.T) {
	err := GenerationRequest(&types.GenerationRequest{CookingTime: "1 hour", Ingredients: "eggs and flour"})
	verr, ok := types.AsValidationError(err)
	require.True(t, ok)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "Mood is required", verr.Fields[0].Reason)
}

func validRecipe() types.Recipe {
	return types.Recipe{
		Name:         "Garlic Butter Chicken",
		Description:  "Pan-seared chicken in a garlic butter sauce.",
		CookTime:     "25 minutes",
		Ingredients:  []string{"2 chicken breasts", "3 tbsp butter"},
		Instructions: []string{"Season the chicken.", "Sear until golden."},
	}
}

func TestRecipeResponseValid(t *testing.T) {
	resp := &types.RecipeResponse{Recipes: []types.Recipe{validRecipe(), validRecipe(), validRecipe()}}
	assert.NoError(t, RecipeResponse(resp))
}

func TestRecipeResponseEmpty(t *testing.T) {
	err := RecipeResponse(&types.RecipeResponse{})
	require.Error(t, err)
	assert.Contains(t, fieldNames(t, err), "recipes")
}

func TestRecipeResponseTooMany(t *testing.T) {
	resp := &types.RecipeResponse{
		Recipes: []types.Recipe{validRecipe(), validRecipe(), validRecipe(), validRecipe()},
	}
	err := RecipeResponse(resp)
	require.Error(t, err)
	assert.Contains(t, fieldNames(t, err), "recipes")
}

func TestRecipeResponseIncompleteRecipe(t *testing.T) {
	broken := validRecipe()
	broken.Instructions = nil
	resp := &types.RecipeResponse{Recipes: []types.Recipe{broken}}

	err := RecipeResponse(resp)
	require.Error(t, err)
	assert.Contains(t, fieldNames(t, err), "recipes[0].instructions")
}

func TestSavedRecipeInsertValid(t *testing.T) {
	in := &types.SavedRecipeInsert{
		RecipeName:        "Lentil Soup",
		RecipeDescription: "Hearty red lentil soup.",
		CookTime:          "40 minutes",
		Ingredients:       []string{"1 cup red lentils"},
		Instructions:      []string{"Simmer until soft."},
		Category:          "soups-salads",
	}
	assert.NoError(t, SavedRecipeInsert(in))
}

func TestSavedRecipeInsertEmptyCategoryAllowed(t *testing.T) {
	in := &types.SavedRecipeInsert{
		RecipeName:        "Lentil Soup",
		RecipeDescription: "Hearty red lentil soup.",
		CookTime:          "40 minutes",
		Ingredients:       []string{"1 cup red lentils"},
		Instructions:      []string{"Simmer until soft."},
	}
	assert.NoError(t, SavedRecipeInsert(in))
}

func TestSavedRecipeInsertInvalidCategory(t *testing.T) {
	in := &types.SavedRecipeInsert{
		RecipeName:        "Lentil Soup",
		RecipeDescription: "Hearty red lentil soup.",
		CookTime:          "40 minutes",
		Ingredients:       []string{"1 cup red lentils"},
		Instructions:      []string{"Simmer until soft."},
		Category:          "midnight-snacks",
	}
	err := SavedRecipeInsert(in)
	require.Error(t, err)
	assert.Contains(t, fieldNames(t, err), "category")
}

func TestSavedRecipeInsertMissingFields(t *testing.T) {
	err := SavedRecipeInsert(&types.SavedRecipeInsert{})
	require.Error(t, err)
	names := fieldNames(t, err)
	assert.Contains(t, names, "recipeName")
	assert.Contains(t, names, "recipeDescription")
	assert.Contains(t, names, "cookTime")
	assert.Contains(t, names, "ingredients")
	assert.Contains(t, names, "instructions")
}

func TestUserRecipeFormContentVariant(t *testing.T) {
	form := &types.UserRecipeForm{
		RecipeName:    "Grandma's Stew",
		RecipeContent: "A rich stew.\nIngredients:\nbeef\ncarrots\nInstructions:\nBrown the beef.\nSimmer for two hours.",
	}
	assert.NoError(t, UserRecipeForm(form))
}

func TestUserRecipeFormShortContent(t *testing.T) {
	form := &types.UserRecipeForm{RecipeName: "Stew", RecipeContent: "too short"}
	err := UserRecipeForm(form)
	require.Error(t, err)
	assert.Contains(t, fieldNames(t, err), "recipeContent")
}

func TestUserRecipeFormBlockVariant(t *testing.T) {
	form := &types.UserRecipeForm{
		RecipeName:       "Grandma's Stew",
		Description:      "A rich beef stew.",
		IngredientsText:  "beef\ncarrots\nonions",
		InstructionsText: "Brown the beef.\nSimmer for two hours.",
	}
	assert.NoError(t, UserRecipeForm(form))
}

func TestUserRecipeFormBlockMinimums(t *testing.T) {
	form := &types.UserRecipeForm{
		RecipeName:       "Stew",
		Description:      "short",
		IngredientsText:  "beef",
		InstructionsText: "simmer",
	}
	err := UserRecipeForm(form)
	require.Error(t, err)
	names := fieldNames(t, err)
	assert.ElementsMatch(t, []string{"description", "ingredientsText", "instructionsText"}, names)
}

func TestUserRecipeFormMissingName(t *testing.T) {
	form := &types.UserRecipeForm{
		RecipeContent: "A rich stew.\nIngredients:\nbeef\nInstructions:\nSimmer for two hours until tender.",
	}
	err := UserRecipeForm(form)
	require.Error(t, err)
	assert.Contains(t, fieldNames(t, err), "recipeName")
}
