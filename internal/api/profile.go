package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ryank-holgate/ChronoChef/internal/middleware"
	"github.com/ryank-holgate/ChronoChef/internal/service"
	"github.com/ryank-holgate/ChronoChef/internal/types"
)

const maxPictureBytes = 5 << 20

// ProfileHandler exposes the caller's profile fields and picture upload
type ProfileHandler struct {
	auth   service.IAuthService
	images service.IImageService
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(auth service.IAuthService, images service.IImageService) *ProfileHandler {
	return &ProfileHandler{auth: auth, images: images}
}

// RegisterRoutes registers the profile routes; all of them require auth
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator) {
	profile := router.Group("/profile", middleware.AuthMiddleware(validator))
	{
		profile.GET("", h.Get)
		profile.PUT("", h.Update)
		profile.POST("/picture", h.UploadPicture)
	}
}

// Get handles GET /api/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		respondError(c, types.ErrAuthenticationRequired)
		return
	}

	user, err := h.auth.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, types.ErrAuthenticationRequired)
		return
	}

	c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	FirstName string `json:"first_name" binding:"max=50"`
	LastName  string `json:"last_name" binding:"max=50"`
}

// Update handles PUT /api/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		respondError(c, types.ErrAuthenticationRequired)
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), userID, req.FirstName, req.LastName)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadPicture handles POST /api/profile/picture as a multipart upload
func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		respondError(c, types.ErrAuthenticationRequired)
		return
	}

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		verr := &types.ValidationError{}
		verr.Add("picture", "is required")
		respondError(c, verr)
		return
	}
	if fileHeader.Size > maxPictureBytes {
		verr := &types.ValidationError{}
		verr.Add("picture", "must be smaller than 5MB")
		respondError(c, verr)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		verr := &types.ValidationError{}
		verr.Add("picture", "must be a JPEG or PNG image")
		respondError(c, verr)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		respondError(c, err)
		return
	}

	url, err := h.images.UploadProfilePicture(c.Request.Context(), userID, data, contentType)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.auth.SetProfileImage(c.Request.Context(), userID, url)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
