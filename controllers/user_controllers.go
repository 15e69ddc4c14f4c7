package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norne9/pravda-server/middlewares"
	"github.com/Norne9/pravda-server/models"
	"github.com/Norne9/pravda-server/services"
	"github.com/Norne9/pravda-server/store"
	"github.com/Norne9/pravda-server/utils"
)

type UserController struct {
	Store store.Store
	Auth  *services.AuthService
}

func NewUserController(s store.Store, auth *services.AuthService) *UserController {
	return &UserController{Store: s, Auth: auth}
}

// GetUserInfo -> the authenticated user's own profile
func (uc *UserController) GetUserInfo(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	utils.RespondJSON(c, http.StatusOK, "Profile data retrieved successfully", user)
}

// ChangePassword -> self-service, requires the old password
func (uc *UserController) ChangePassword(c *gin.Context) {
	var req struct {
		OldPassword string `json:"old_password" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, _ := middlewares.CurrentUser(c)
	if err := uc.Auth.ChangePassword(user, req.OldPassword, req.NewPassword); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Password changed", nil)
}

// GetUserNames -> display names for a set of user ids
func (uc *UserController) GetUserNames(c *gin.Context) {
	var req struct {
		IDs []uint `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	users, err := uc.Store.GetUsers(req.IDs)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	names := make(map[uint]string, len(users))
	for _, user := range users {
		names[user.ID] = user.Name
	}
	utils.RespondJSON(c, http.StatusOK, "User names", names)
}

// GetUsers -> full roster, admin only
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := listUsers(uc.Store)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All users", users)
}

// AddUser -> create an account with the default password, admin only
func (uc *UserController) AddUser(c *gin.Context) {
	var req struct {
		Login    string  `json:"login" binding:"required"`
		Name     string  `json:"name" binding:"required"`
		IsAdmin  bool    `json:"is_admin"`
		IsWorker bool    `json:"is_worker"`
		Pay      float64 `json:"pay"`
		Percent  float64 `json:"percent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user := models.User{
		Login:    req.Login,
		Name:     req.Name,
		IsAdmin:  req.IsAdmin,
		IsWorker: req.IsWorker,
		Pay:      req.Pay,
		Percent:  req.Percent,
	}
	if err := uc.Auth.AddUser(&user); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (admin=%t worker=%t)", user.Login, user.IsAdmin, user.IsWorker)

	users, err := listUsers(uc.Store)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "User created", users)
}

// ResetPassword -> back to the default password, kills the session
func (uc *UserController) ResetPassword(c *gin.Context) {
	var req struct {
		ID uint `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := uc.Auth.ResetPassword(req.ID); err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Password reset", nil)
}

// UpdateUser -> profile fields only; login and credentials stay put
func (uc *UserController) UpdateUser(c *gin.Context) {
	var req struct {
		ID       uint    `json:"id" binding:"required"`
		Name     string  `json:"name" binding:"required"`
		IsAdmin  bool    `json:"is_admin"`
		IsWorker bool    `json:"is_worker"`
		Pay      float64 `json:"pay"`
		Percent  float64 `json:"percent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := uc.Store.GetUserByID(req.ID)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	user.Name = req.Name
	user.IsAdmin = req.IsAdmin
	user.IsWorker = req.IsWorker
	user.Pay = req.Pay
	user.Percent = req.Percent
	if err := uc.Store.UpdateUser(user); err != nil {
		utils.RespondAppError(c, err)
		return
	}

	users, err := listUsers(uc.Store)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "User updated", users)
}
