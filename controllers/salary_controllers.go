package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norne9/pravda-server/services"
	"github.com/Norne9/pravda-server/utils"
)

type SalaryController struct {
	Salary *services.SalaryService
}

func NewSalaryController(salary *services.SalaryService) *SalaryController {
	return &SalaryController{Salary: salary}
}

// GetSalaryCalculation -> one owed/paid statement per worker for a month
func (sc *SalaryController) GetSalaryCalculation(c *gin.Context) {
	year, month, ok := parsePeriod(c)
	if !ok {
		return
	}

	statements, err := sc.Salary.GetSalaries(year, month)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Salary calculation", gin.H{
		"year":     year,
		"month":    month,
		"salaries": statements,
	})
}
