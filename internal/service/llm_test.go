package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryank-holgate/ChronoChef/config"
	"github.com/ryank-holgate/ChronoChef/internal/types"
)

func geminiServiceFor(serverURL string) *GeminiService {
	cfg := &config.Config{
		GeminiAPIKey: "test-key",
		GeminiAPIURL: serverURL,
		GeminiModel:  "gemini-test",
	}
	return NewGeminiService(cfg, &http.Client{})
}

func geminiBody(t *testing.T, inner string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": inner}},
			}},
		},
	})
	require.NoError(t, err)
	return body
}

func TestGeminiService_GenerateRecipes(t *testing.T) {
	request := &types.GenerationRequest{
		CookingTime: "30 minutes",
		Ingredients: "chicken, rice, lemon",
		Mood:        "comfort food",
	}

	t.Run("should return validated recipes on success", func(t *testing.T) {
		inner := `{"recipes":[{"name":"Lemon Chicken Rice","description":"Bright and hearty.","cookTime":"30 minutes","ingredients":["chicken","rice","lemon"],"instructions":["Cook rice.","Sear chicken.","Combine."]}]}`

		var gotPath, gotKey string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.Header.Get("x-goog-api-key")

			var req map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Contains(t, req, "systemInstruction")
			assert.Contains(t, req, "generationConfig")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(geminiBody(t, inner))
		}))
		defer server.Close()

		resp, err := geminiServiceFor(server.URL).GenerateRecipes(context.Background(), request)

		require.NoError(t, err)
		require.Len(t, resp.Recipes, 1)
		assert.Equal(t, "Lemon Chicken Rice", resp.Recipes[0].Name)
		assert.Equal(t, "/models/gemini-test:generateContent", gotPath)
		assert.Equal(t, "test-key", gotKey)
	})

	t.Run("should fail without an API key", func(t *testing.T) {
		svc := NewGeminiService(&config.Config{GeminiAPIURL: "http://unused"}, &http.Client{})

		resp, err := svc.GenerateRecipes(context.Background(), request)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, types.ErrServiceUnavailable)
	})

	t.Run("should report upstream failure on non-200", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		}))
		defer server.Close()

		resp, err := geminiServiceFor(server.URL).GenerateRecipes(context.Background(), request)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, types.ErrUpstream)
	})

	t.Run("should report format error on non-JSON recipe content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(geminiBody(t, "Here is a recipe: just wing it"))
		}))
		defer server.Close()

		resp, err := geminiServiceFor(server.URL).GenerateRecipes(context.Background(), request)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, types.ErrUpstreamFormat)
	})

	t.Run("should report format error on empty candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		}))
		defer server.Close()

		resp, err := geminiServiceFor(server.URL).GenerateRecipes(context.Background(), request)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, types.ErrUpstreamFormat)
	})

	t.Run("should reject structurally incomplete recipes", func(t *testing.T) {
		inner := `{"recipes":[{"name":"Nameless","description":"","cookTime":"10 minutes","ingredients":[],"instructions":["Stir."]}]}`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(geminiBody(t, inner))
		}))
		defer server.Close()

		resp, err := geminiServiceFor(server.URL).GenerateRecipes(context.Background(), request)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, types.ErrUpstreamFormat)
	})

	t.Run("should report upstream failure when the server is unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		resp, err := geminiServiceFor(server.URL).GenerateRecipes(context.Background(), request)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, types.ErrUpstream)
	})
}
