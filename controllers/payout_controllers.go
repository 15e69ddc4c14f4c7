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

type PayoutController struct {
	Store store.Store
}

func NewPayoutController(s store.Store) *PayoutController {
	return &PayoutController{Store: s}
}

// GetPayouts -> the month's payout records
func (pc *PayoutController) GetPayouts(c *gin.Context) {
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}
	pc.respondPayouts(c, year, month)
}

// SetPayout -> upsert an advance for one worker on one day; the last
// written amount per (day, user) wins
func (pc *PayoutController) SetPayout(c *gin.Context) {
	var req struct {
		Year   int     `json:"year" binding:"required"`
		Month  int     `json:"month" binding:"required,min=1,max=12"`
		Day    int     `json:"day" binding:"required,min=1"`
		UserID uint    `json:"user_id" binding:"required"`
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Day > utils.DaysInMonth(req.Year, req.Month) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("day out of range"))
		return
	}

	record := models.PayoutRecord{
		Day:    req.Day,
		Month:  req.Month,
		Year:   req.Year,
		UserID: req.UserID,
		Amount: req.Amount,
	}
	if err := pc.Store.AddPayout(record); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	pc.respondPayouts(c, req.Year, req.Month)
}

func (pc *PayoutController) respondPayouts(c *gin.Context, year, month int) {
	records, err := pc.Store.GetPayouts(year, month)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Day != records[j].Day {
			return records[i].Day < records[j].Day
		}
		return records[i].UserID < records[j].UserID
	})

	utils.RespondJSON(c, http.StatusOK, "Payouts", gin.H{
		"year":    year,
		"month":   month,
		"payouts": records,
	})
}
