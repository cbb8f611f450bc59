package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/trek-backend-go/internal/dataset"
	"github.com/jengzang/trek-backend-go/internal/service"
	"github.com/jengzang/trek-backend-go/pkg/response"
)

// MetaHandler serves the dataset metadata the form front-end needs
type MetaHandler struct {
	data             *dataset.Dataset
	recommendService *service.RecommendService
}

// NewMetaHandler creates a new meta handler
func NewMetaHandler(data *dataset.Dataset, recommendService *service.RecommendService) *MetaHandler {
	return &MetaHandler{
		data:             data,
		recommendService: recommendService,
	}
}

// Meta handles GET /api/v1/meta
func (h *MetaHandler) Meta(c *gin.Context) {
	response.Success(c, gin.H{
		"states":          h.data.States(),
		"difficulties":    h.data.Difficulties(),
		"length_range":    h.data.LengthRange(),
		"windspeed_range": h.data.WindspeedRange(),
		"tag_options":     dataset.TagOptions,
		"combinations":    h.data.Combos(),
	})
}

// GetTrail handles GET /api/v1/trails/:name
func (h *MetaHandler) GetTrail(c *gin.Context) {
	name := c.Param("name")

	trail := h.data.LookupTrail(name)
	if trail == nil {
		response.NotFound(c, "Trail not found: "+name)
		return
	}

	response.Success(c, trail)
}

// Nearby handles GET /api/v1/trails/nearby
func (h *MetaHandler) Nearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lat parameter")
		return
	}

	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		response.BadRequest(c, "Invalid lon parameter")
		return
	}

	radiusKm := service.NearbyRadiusKm
	if raw := c.Query("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm <= 0 {
			response.BadRequest(c, "Invalid radius_km parameter")
			return
		}
	}

	trails := h.recommendService.NearbyTrails(lat, lon, radiusKm, "")
	response.Success(c, trails)
}
