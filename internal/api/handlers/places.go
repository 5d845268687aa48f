package handlers

import (
	"net/http"

	"vedic-chart/internal/api/models"
	"vedic-chart/internal/data"

	"github.com/gin-gonic/gin"
)

// PlacesHandler serves the birth-place presets
type PlacesHandler struct {
	list *data.PlaceList
}

// NewPlacesHandler creates a places handler; a nil list serves an empty set.
func NewPlacesHandler(list *data.PlaceList) *PlacesHandler {
	return &PlacesHandler{list: list}
}

// ListPlaces handles GET /api/v1/places
func (h *PlacesHandler) ListPlaces(c *gin.Context) {
	places := []models.PlaceInfo{}
	updatedAt := ""
	if h.list != nil {
		updatedAt = h.list.UpdatedAt
		for _, p := range h.list.Places {
			places = append(places, models.PlaceInfo{
				ID:        p.ID,
				Name:      p.Name,
				Latitude:  p.Latitude,
				Longitude: p.Longitude,
				TimeZone:  p.TimeZone,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"places":     places,
		"updated_at": updatedAt,
		"count":      len(places),
	})
}
