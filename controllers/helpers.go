package controllers

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Norne9/pravda-server/models"
	"github.com/Norne9/pravda-server/store"
	"github.com/Norne9/pravda-server/utils"
)

// parsePeriod reads the :year/:month path params. On bad input it writes
// the 400 response itself and reports false.
func parsePeriod(c *gin.Context) (year, month int, ok bool) {
	year, errYear := strconv.Atoi(c.Param("year"))
	month, errMonth := strconv.Atoi(c.Param("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid year or month"))
		return 0, 0, false
	}
	return year, month, true
}

// listUsers loads the roster in a stable order for admin responses.
func listUsers(s store.Store) ([]models.User, error) {
	users, err := s.GetUsers(nil)
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}
