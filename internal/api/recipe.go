package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ryank-holgate/ChronoChef/internal/middleware"
	"github.com/ryank-holgate/ChronoChef/internal/models"
	"github.com/ryank-holgate/ChronoChef/internal/service"
	"github.com/ryank-holgate/ChronoChef/internal/types"
	"github.com/ryank-holgate/ChronoChef/internal/validate"
)

// RecipeHandler binds the recipe endpoints to the generation proxy and the
// persistence layer.
type RecipeHandler struct {
	generator service.IRecipeGenerator
	recipes   service.IRecipeService
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(generator service.IRecipeGenerator, recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{
		generator: generator,
		recipes:   recipes,
	}
}

// RegisterRoutes registers the recipe routes. Generation is open; everything
// touching saved rows requires an authenticated identity.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator) {
	recipes := router.Group("/recipes")
	recipes.POST("/generate", h.Generate)

	protected := recipes.Group("", middleware.AuthMiddleware(validator))
	{
		protected.POST("/save", h.Save)
		protected.POST("/add", h.Add)
		protected.GET("/saved", h.ListSaved)
		protected.DELETE("/saved/:id", h.DeleteSaved)
	}
}

// Generate handles POST /api/recipes/generate
func (h *RecipeHandler) Generate(c *gin.Context) {
	var req types.GenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}

	if err := validate.GenerationRequest(&req); err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.generator.GenerateRecipes(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Save handles POST /api/recipes/save
func (h *RecipeHandler) Save(c *gin.Context) {
	var in types.SavedRecipeInsert
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}

	if err := validate.SavedRecipeInsert(&in); err != nil {
		respondError(c, err)
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Message: "Authentication required"})
		return
	}

	rec, err := h.recipes.SaveRecipe(c.Request.Context(), userID, &in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// Add handles POST /api/recipes/add
func (h *RecipeHandler) Add(c *gin.Context) {
	var form types.UserRecipeForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}

	if err := validate.UserRecipeForm(&form); err != nil {
		respondError(c, err)
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Message: "Authentication required"})
		return
	}

	rec, err := h.recipes.AddUserRecipe(c.Request.Context(), userID, &form)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// ListSaved handles GET /api/recipes/saved with an optional category filter
func (h *RecipeHandler) ListSaved(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Message: "Authentication required"})
		return
	}

	recipes, err := h.recipes.GetSavedRecipesByCategory(c.Request.Context(), userID, c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	if recipes == nil {
		recipes = []models.SavedRecipe{}
	}
	c.JSON(http.StatusOK, recipes)
}

// DeleteSaved handles DELETE /api/recipes/saved/:id. Deleting a row that does
// not exist or is not owned by the caller is a silent no-op.
func (h *RecipeHandler) DeleteSaved(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		verr := &types.ValidationError{}
		verr.Add("id", "must be a numeric recipe id")
		respondError(c, verr)
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse{Message: "Authentication required"})
		return
	}

	if err := h.recipes.DeleteSavedRecipe(c.Request.Context(), uint(id), userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted"})
}
