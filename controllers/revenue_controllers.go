package controllers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/Norne9/pravda-server/models"
	"github.com/Norne9/pravda-server/store"
	"github.com/Norne9/pravda-server/utils"
)

type RevenueController struct {
	Store store.Store
}

func NewRevenueController(s store.Store) *RevenueController {
	return &RevenueController{Store: s}
}

// GetRevenue -> the month's per-day revenue entries
func (rc *RevenueController) GetRevenue(c *gin.Context) {
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}
	rc.respondRevenue(c, year, month)
}

// SetRevenue -> upsert one day's entry, then return the fresh month
func (rc *RevenueController) SetRevenue(c *gin.Context) {
	var req struct {
		Year           int     `json:"year" binding:"required"`
		Month          int     `json:"month" binding:"required,min=1,max=12"`
		Day            int     `json:"day" binding:"required,min=1"`
		WithPercent    float64 `json:"with_percent"`
		WithoutPercent float64 `json:"without_percent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Day > utils.DaysInMonth(req.Year, req.Month) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("day out of range"))
		return
	}

	entry := models.RevenueEntry{
		Day:            req.Day,
		Month:          req.Month,
		Year:           req.Year,
		WithPercent:    req.WithPercent,
		WithoutPercent: req.WithoutPercent,
	}
	if err := rc.Store.SetRevenue(entry); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	rc.respondRevenue(c, req.Year, req.Month)
}

func (rc *RevenueController) respondRevenue(c *gin.Context, year, month int) {
	entries, err := rc.Store.GetRevenue(year, month)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Day < entries[j].Day })

	utils.RespondJSON(c, http.StatusOK, "Revenue", gin.H{
		"year":    year,
		"month":   month,
		"revenue": entries,
	})
}
