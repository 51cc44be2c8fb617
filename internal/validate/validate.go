// Package validate enforces the shape of all data crossing process
// boundaries. Validation is pure; failures carry field-level reasons.
package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ryank-holgate/ChronoChef/internal/models"
	"github.com/ryank-holgate/ChronoChef/internal/types"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// report json field names instead of Go field names
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	if err := val.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.ValidCategory(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return val
}

// generationReasons mirrors the messages shown on the generation form
var generationReasons = map[string]string{
	"cookingTime": "Cooking time is required",
	"ingredients": "Please provide more details about your ingredients",
	"mood":        "Mood is required",
}

// GenerationRequest validates the three fields of a generation request
func GenerationRequest(req *types.GenerationRequest) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	verr := &types.ValidationError{}
	for _, fe := range toFieldErrors(err) {
		if reason, ok := generationReasons[fe.Field]; ok {
			fe.Reason = reason
		}
		verr.Fields = append(verr.Fields, fe)
	}
	return verr
}

// RecipeResponse validates a parsed generation result: a recipes array of
// length 1-3 whose elements are internally complete.
func RecipeResponse(resp *types.RecipeResponse) error {
	err := v.Struct(resp)
	if err == nil {
		return nil
	}
	return &types.ValidationError{Fields: toFieldErrors(err)}
}

// SavedRecipeInsert validates the save payload. The owning user id is not
// part of the payload; handlers attach it from the authenticated context.
func SavedRecipeInsert(in *types.SavedRecipeInsert) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	return &types.ValidationError{Fields: toFieldErrors(err)}
}

// UserRecipeForm validates the free-text add-recipe form. Either the whole
// recipe arrives as RecipeContent, or as separate text blocks with minimum
// lengths. Category is normalized later, never rejected.
func UserRecipeForm(form *types.UserRecipeForm) error {
	verr := &types.ValidationError{}

	if strings.TrimSpace(form.RecipeName) == "" {
		verr.Add("recipeName", "Recipe name is required")
	}

	if content := strings.TrimSpace(form.RecipeContent); content != "" {
		if len(content) < 40 {
			verr.Add("recipeContent", "Please paste the full recipe, including ingredients and instructions")
		}
	} else {
		if len(strings.TrimSpace(form.Description)) < 10 {
			verr.Add("description", "Description must be at least 10 characters")
		}
		if len(strings.TrimSpace(form.IngredientsText)) < 10 {
			verr.Add("ingredientsText", "Please provide at least 10 characters of ingredients")
		}
		if len(strings.TrimSpace(form.InstructionsText)) < 20 {
			verr.Add("instructionsText", "Please provide at least 20 characters of instructions")
		}
	}

	if verr.HasErrors() {
		return verr
	}
	return nil
}

func toFieldErrors(err error) []types.FieldError {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []types.FieldError{{Field: "body", Reason: "is not a valid request payload"}}
	}

	out := make([]types.FieldError, 0, len(ves))
	for _, fe := range ves {
		out = append(out, types.FieldError{Field: fieldPath(fe), Reason: reasonFor(fe)})
	}
	return out
}

// fieldPath strips the root struct segment from the namespace, leaving paths
// like "recipes[0].name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " items"
		}
		return "must be at least " + fe.Param() + " characters"
	case "max":
		if fe.Kind() == reflect.Slice {
			return "must contain at most " + fe.Param() + " items"
		}
		return "must be at most " + fe.Param() + " characters"
	case "category":
		return "must be a valid recipe category"
	}
	return "is invalid"
}
