package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/trek-backend-go/internal/ml"
	"github.com/jengzang/trek-backend-go/internal/models"
	"github.com/jengzang/trek-backend-go/internal/recommender"
	"github.com/jengzang/trek-backend-go/internal/service"
	"github.com/jengzang/trek-backend-go/pkg/response"
)

// RecommendHandler handles HTTP requests for trek recommendations
type RecommendHandler struct {
	recommendService *service.RecommendService
}

// NewRecommendHandler creates a new recommend handler
func NewRecommendHandler(recommendService *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{
		recommendService: recommendService,
	}
}

// Recommend handles POST /api/v1/recommend
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var query models.TrekQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	rec, err := h.recommendService.Recommend(c.Request.Context(), &query)
	if err != nil {
		var validationErr *service.ValidationError
		var encodingErr *ml.EncodingError
		var notFoundErr *recommender.NotFoundError

		switch {
		case errors.As(err, &validationErr):
			response.BadRequest(c, validationErr.Message)
		case errors.As(err, &encodingErr):
			response.UnprocessableEntity(c, encodingErr.Error())
		case errors.As(err, &notFoundErr):
			response.NotFound(c, notFoundErr.Error()+". Try different inputs.")
		default:
			response.InternalError(c, err.Error())
		}
		return
	}

	response.Success(c, rec)
}

// Weather handles GET /api/v1/weather
func (h *RecommendHandler) Weather(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		response.BadRequest(c, "Missing location parameter")
		return
	}

	coords, weather, err := h.recommendService.WeatherForLocation(c.Request.Context(), location)
	if err != nil {
		response.Error(c, 502, "Weather lookup unavailable: "+err.Error())
		return
	}
	if coords == nil {
		response.NotFound(c, "Location not found: "+location)
		return
	}

	response.Success(c, gin.H{
		"location":        location,
		"coordinates":     coords,
		"current_weather": weather,
	})
}
