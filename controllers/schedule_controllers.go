package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norne9/pravda-server/middlewares"
	"github.com/Norne9/pravda-server/models"
	"github.com/Norne9/pravda-server/store"
	"github.com/Norne9/pravda-server/utils"
)

type ScheduleController struct {
	Store store.Store
}

func NewScheduleController(s store.Store) *ScheduleController {
	return &ScheduleController{Store: s}
}

// GetSchedule -> per-user presence vectors for a month
func (sc *ScheduleController) GetSchedule(c *gin.Context) {
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}
	sc.respondSchedule(c, year, month)
}

// SetWorkday -> toggle the caller's own day, then return the fresh month
func (sc *ScheduleController) SetWorkday(c *gin.Context) {
	var req struct {
		Year      int  `json:"year" binding:"required"`
		Month     int  `json:"month" binding:"required,min=1,max=12"`
		Day       int  `json:"day" binding:"required,min=1"`
		IsWorking bool `json:"is_working"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Day > utils.DaysInMonth(req.Year, req.Month) {
		utils.RespondError(c, http.StatusBadRequest, errors.New("day out of range"))
		return
	}

	user, _ := middlewares.CurrentUser(c)
	entry := models.ScheduleEntry{
		Day:    req.Day,
		Month:  req.Month,
		Year:   req.Year,
		UserID: user.ID,
	}
	if err := sc.Store.SetSchedule(entry, req.IsWorking); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	sc.respondSchedule(c, req.Year, req.Month)
}

// respondSchedule renders the month as userId -> []bool with one slot
// per day. Index 0 is unused so that index d means day d; only users
// with at least one entry that month appear.
func (sc *ScheduleController) respondSchedule(c *gin.Context, year, month int) {
	entries, err := sc.Store.GetSchedule(year, month)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	days := utils.DaysInMonth(year, month)
	schedule := make(map[uint][]bool)
	for _, entry := range entries {
		if entry.Day < 1 || entry.Day > days {
			continue
		}
		if schedule[entry.UserID] == nil {
			schedule[entry.UserID] = make([]bool, days+1)
		}
		schedule[entry.UserID][entry.Day] = true
	}

	utils.RespondJSON(c, http.StatusOK, "Schedule", gin.H{
		"year":     year,
		"month":    month,
		"schedule": schedule,
	})
}
