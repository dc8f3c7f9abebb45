package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/Autum7899/My-Portfolio/internal/usecase/auth"
	"github.com/Autum7899/My-Portfolio/pkg/apperror"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

type AuthHandler struct {
	loginUseCase *authUC.LoginUseCase
	logger       logger.Logger
}

func NewAuthHandler(loginUseCase *authUC.LoginUseCase, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		loginUseCase: loginUseCase,
		logger:       log,
	}
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// Login answers in the shape the admin client expects: {success, token} on
// success, {success, error} with 401 on a bad password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Password is required"})
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{Password: req.Password})
	if err != nil {
		if errors.Is(err, apperror.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid password"})
			return
		}
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": output.Token})
}
