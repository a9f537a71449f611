package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spothotel-backend/middleware"
	"spothotel-backend/services"
	"spothotel-backend/utils"
)

type AuthController struct {
	Users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{Users: users}
}

type signupPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

type updateProfilePayload struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type changePasswordPayload struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

const sessionCookieMaxAge = 24 * 60 * 60

func sendToken(c *gin.Context, code int, user interface{}, userID uint, role string) {
	token, err := utils.CreateToken(userID, role)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	c.SetCookie("token", token, sessionCookieMaxAge, "/", "", false, true)
	c.JSON(code, gin.H{"success": true, "user": user, "token": token})
}

func (ctrl *AuthController) Signup(c *gin.Context) {
	var payload signupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "name, email and password are required")
		return
	}

	user, err := ctrl.Users.Register(c.Request.Context(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	sendToken(c, http.StatusCreated, user, user.ID, user.Role)
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email is required")
		return
	}
	if payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "please enter password")
		return
	}

	user, err := ctrl.Users.Authenticate(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	sendToken(c, http.StatusOK, user, user.ID, user.Role)
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	utils.JSONMessage(c, http.StatusOK, "logged out")
}

func (ctrl *AuthController) Me(c *gin.Context) {
	user, err := ctrl.Users.GetByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	var payload updateProfilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "name and email are required")
		return
	}

	user, err := ctrl.Users.UpdateProfile(c.Request.Context(), middleware.UserID(c), payload.Name, payload.Email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	var payload changePasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "please enter old and new password")
		return
	}

	uid := middleware.UserID(c)
	if err := ctrl.Users.ChangePassword(c.Request.Context(), uid, payload.OldPassword, payload.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}

	user, err := ctrl.Users.GetByID(c.Request.Context(), uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	sendToken(c, http.StatusOK, user, user.ID, user.Role)
}

func (ctrl *AuthController) DeleteAccount(c *gin.Context) {
	if err := ctrl.Users.Delete(c.Request.Context(), middleware.UserID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.SetCookie("token", "", -1, "/", "", false, true)
	utils.JSONMessage(c, http.StatusOK, "user deleted successfully")
}
