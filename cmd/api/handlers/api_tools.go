package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/cmd/api/dto"
	"portfolio/cmd/api/services"
	"portfolio/cmd/api/trace"
	"portfolio/forms"
	"portfolio/internal/logger"
)

// @Summary Link preview
// @Description Fetches a URL and extracts title, description and top image
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.PreviewRequestDTO true "URL"
// @Success 200 {object} parser.Preview
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 502 {object} dto.ErrorResponseDTO
// @Router /admin/previews [post]
func AdminPreviewHandler(svc *services.PreviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PreviewRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		preview, err := svc.Fetch(c.Request.Context(), req.URL)
		if err != nil {
			if errors.Is(err, services.ErrInvalidURL) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
				return
			}
			logger.WarnWithFields("link preview failed", trace.Fields(c.Request.Context(), logger.Fields{
				"url":   req.URL,
				"error": err.Error(),
			}))
			c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "preview_unavailable"})
			return
		}
		c.JSON(http.StatusOK, preview)
	}
}

// @Summary Suggest an excerpt
// @Description Asks the LLM for a one-sentence excerpt of the post content
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.ExcerptRequestDTO true "Post content"
// @Success 200 {object} dto.ExcerptResponseDTO
// @Failure 422 {object} dto.ErrorResponseDTO
// @Failure 429 {object} dto.ErrorResponseDTO
// @Failure 503 {object} dto.ErrorResponseDTO
// @Router /admin/excerpts [post]
func AdminExcerptHandler(svc *services.ExcerptService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ExcerptRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		excerpt, err := svc.Suggest(c.Request.Context(), req.Content)
		if err != nil {
			var ve *forms.ValidationError
			switch {
			case errors.As(err, &ve):
				c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponseDTO{Error: ve.Message})
			case errors.Is(err, services.ErrExcerptDisabled):
				c.JSON(http.StatusServiceUnavailable, dto.ErrorResponseDTO{Error: err.Error()})
			case errors.Is(err, services.ErrQuotaExhausted):
				c.JSON(http.StatusTooManyRequests, dto.ErrorResponseDTO{Error: err.Error()})
			default:
				logger.ErrorWithFields("excerpt suggestion failed", trace.Fields(c.Request.Context(), logger.Fields{
					"error": err.Error(),
				}))
				c.JSON(http.StatusBadGateway, dto.ErrorResponseDTO{Error: "excerpt_unavailable"})
			}
			return
		}
		c.JSON(http.StatusOK, dto.ExcerptResponseDTO{Excerpt: excerpt})
	}
}
