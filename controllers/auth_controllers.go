package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Norne9/pravda-server/services"
	"github.com/Norne9/pravda-server/utils"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// Login -> verify credentials, rotate and return the bearer token
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Login    string `json:"login" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := ac.Auth.Login(req.Login, req.Password)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("Login successful for %s (id=%d)", user.Login, user.ID)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":   user.Token,
		"user_id": user.ID,
	})
}
