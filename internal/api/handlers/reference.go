package handlers

import (
	"net/http"

	"vedic-chart/internal/analysis"
	"vedic-chart/internal/api/models"
	"vedic-chart/internal/dasha"
	"vedic-chart/internal/model"
	"vedic-chart/internal/nakshatra"

	"github.com/gin-gonic/gin"
)

// GetReference handles GET /api/v1/reference
func GetReference(c *gin.Context) {
	resp := models.ReferenceResponse{
		Nakshatras: make([]models.NakshatraInfo, 0, nakshatra.Count),
		Signs:      make([]models.SignInfo, 0, 12),
		Dasha:      make([]models.DashaLordInfo, 0, len(dasha.Order)),
		CycleYears: dasha.CycleYears,
	}
	for i, name := range nakshatra.Names {
		resp.Nakshatras = append(resp.Nakshatras, models.NakshatraInfo{
			Index:    i,
			Name:     name,
			Lord:     string(nakshatra.Lords[i]),
			StartDeg: float64(i) * nakshatra.Span,
		})
	}
	for s := 1; s <= 12; s++ {
		resp.Signs = append(resp.Signs, models.SignInfo{
			Number:   s,
			Name:     model.SignName(s),
			Lord:     string(model.SignLord(s)),
			Element:  analysis.ElementOf(s),
			Modality: analysis.ModalityOf(s),
		})
	}
	for _, b := range dasha.Order {
		resp.Dasha = append(resp.Dasha, models.DashaLordInfo{Planet: string(b), Years: dasha.Weights[b]})
	}
	c.JSON(http.StatusOK, resp)
}
