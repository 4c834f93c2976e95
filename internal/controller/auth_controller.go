package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jsliwa/fishcards/internal/dto"
	"github.com/jsliwa/fishcards/internal/middleware"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// Logout godoc
// @Summary Log out the current session
// @Description Clears the access-token cookie. Session issuance and refresh remain with the identity provider.
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.LogoutResponseDTO
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, dto.LogoutResponseDTO{
		Success: true,
		Message: "Logged out successfully.",
	})
}
