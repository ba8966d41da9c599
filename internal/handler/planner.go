package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tabiplan/internal/model"
	"tabiplan/internal/planner"
	"tabiplan/internal/refdata"
)

// PlannerHandler exposes the stateless engine endpoints: recommendations,
// planning warnings and rail-pass economics. Nothing here touches storage.
type PlannerHandler struct {
	recommender *planner.Recommender
}

// NewPlannerHandler creates a new planner handler
func NewPlannerHandler(recommender *planner.Recommender) *PlannerHandler {
	return &PlannerHandler{recommender: recommender}
}

// RecommendRegions handles POST /api/v1/recommendations/regions
func (h *PlannerHandler) RecommendRegions(c *gin.Context) {
	var req model.RegionRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	vibes := normalizeVibes(req.Vibes)
	c.JSON(http.StatusOK, model.RegionRecommendationResponse{
		Scores:       h.recommender.ScoreRegions(vibes, req.EntryPoint),
		AutoSelected: h.recommender.AutoSelectRegions(vibes, req.EntryPoint, req.Duration),
	})
}

// RecommendCities handles POST /api/v1/recommendations/cities
func (h *PlannerHandler) RecommendCities(c *gin.Context) {
	var req model.RegionRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.CityRecommendationResponse{
		Cities: h.recommender.AutoSelectCities(normalizeVibes(req.Vibes), req.EntryPoint),
	})
}

// Warnings handles POST /api/v1/warnings
func (h *PlannerHandler) Warnings(c *gin.Context) {
	var data model.TripBuilderData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	data.Normalize()
	warnings := planner.DetectPlanningWarnings(&data)
	c.JSON(http.StatusOK, model.WarningsResponse{
		Warnings: warnings,
		Summary:  planner.SummarizeWarnings(warnings),
	})
}

// RailPass handles POST /api/v1/railpass
func (h *PlannerHandler) RailPass(c *gin.Context) {
	var req model.RailPassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, planner.CalculateRailPassValue(req.Duration, req.Cities))
}

// Regions handles GET /api/v1/catalog/regions
func (h *PlannerHandler) Regions(c *gin.Context) {
	c.JSON(http.StatusOK, refdata.Regions())
}

// Cities handles GET /api/v1/catalog/cities, optionally filtered by region
func (h *PlannerHandler) Cities(c *gin.Context) {
	if regionID := c.Query("region"); regionID != "" {
		c.JSON(http.StatusOK, refdata.CitiesByRegion(regionID))
		return
	}
	c.JSON(http.StatusOK, refdata.Cities())
}

// normalizeVibes runs request vibes through the canonical mapping so ad-hoc
// callers get the same treatment as the builder boundary
func normalizeVibes(vibes []string) []string {
	data := model.TripBuilderData{Vibes: vibes}
	data.Normalize()
	return data.Vibes
}
