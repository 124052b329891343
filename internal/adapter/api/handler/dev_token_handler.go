package handler

import (
	"github.com/labstack/echo/v4"

	"hirelink/internal/usecase"
	"hirelink/pkg/errors"
	"hirelink/pkg/response"
)

// DevTokenHandler mints bearer tokens for local development, where no
// client-side sign-in flow is available.
type DevTokenHandler struct {
	userUseCase *usecase.UserUseCase
}

var devTokenHandler *DevTokenHandler

func NewDevTokenHandler(userUseCase *usecase.UserUseCase) *DevTokenHandler {
	return &DevTokenHandler{
		userUseCase: userUseCase,
	}
}

func SetupDevTokenHandler(userUseCase *usecase.UserUseCase) {
	devTokenHandler = NewDevTokenHandler(userUseCase)
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

func (h *DevTokenHandler) GenerateToken(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	token, err := h.userUseCase.GenerateDevToken(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"token": token,
	})
}
