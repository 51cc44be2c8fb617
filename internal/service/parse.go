package service

import (
	"regexp"
	"strings"

	"github.com/ryank-holgate/ChronoChef/internal/types"
)

var (
	ingredientsHeader  = regexp.MustCompile(`(?i)^ingredients:?\s*$`)
	instructionsHeader = regexp.MustCompile(`(?i)^(instructions|directions|steps):?\s*$`)
)

// SplitLines splits a text block into trimmed, non-blank lines, preserving
// order. Each non-blank line becomes one element.
func SplitLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// ParsedRecipe holds the sections extracted from a pasted recipe blob
type ParsedRecipe struct {
	Description  string
	Ingredients  []string
	Instructions []string
}

// ParseRecipeContent sections a pasted recipe on its "Ingredients" and
// "Instructions" (or "Directions"/"Steps") header lines. Text before the
// first header becomes the description. Both sections must be present.
func ParseRecipeContent(content string) (*ParsedRecipe, error) {
	var (
		descriptionLines []string
		ingredients      []string
		instructions     []string
		sawIngredients   bool
		sawInstructions  bool
	)

	section := "description"
	for _, line := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case ingredientsHeader.MatchString(line):
			section = "ingredients"
			sawIngredients = true
			continue
		case instructionsHeader.MatchString(line):
			section = "instructions"
			sawInstructions = true
			continue
		}
		if line == "" {
			continue
		}
		switch section {
		case "ingredients":
			ingredients = append(ingredients, line)
		case "instructions":
			instructions = append(instructions, line)
		default:
			descriptionLines = append(descriptionLines, line)
		}
	}

	if !sawIngredients || !sawInstructions || len(ingredients) == 0 || len(instructions) == 0 {
		verr := &types.ValidationError{}
		verr.Add("recipeContent", "Recipe must include an ingredients section and an instructions section")
		return nil, verr
	}

	return &ParsedRecipe{
		Description:  strings.Join(descriptionLines, " "),
		Ingredients:  ingredients,
		Instructions: instructions,
	}, nil
}
