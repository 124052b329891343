package handler

import (
	"github.com/labstack/echo/v4"

	"hirelink/internal/usecase"
	"hirelink/pkg/errors"
	"hirelink/pkg/response"
	"hirelink/pkg/utils"
)

// AdminHandler exposes the moderation surface: listing users and removing
// listings that violate the rules, regardless of owner.
type AdminHandler struct {
	userUseCase    *usecase.UserUseCase
	serviceUseCase *usecase.ServiceUseCase
	jobPostUseCase *usecase.JobPostUseCase
}

var adminHandler *AdminHandler

func NewAdminHandler(
	userUseCase *usecase.UserUseCase,
	serviceUseCase *usecase.ServiceUseCase,
	jobPostUseCase *usecase.JobPostUseCase,
) *AdminHandler {
	return &AdminHandler{
		userUseCase:    userUseCase,
		serviceUseCase: serviceUseCase,
		jobPostUseCase: jobPostUseCase,
	}
}

func SetupAdminHandler(
	userUseCase *usecase.UserUseCase,
	serviceUseCase *usecase.ServiceUseCase,
	jobPostUseCase *usecase.JobPostUseCase,
) {
	adminHandler = NewAdminHandler(userUseCase, serviceUseCase, jobPostUseCase)
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	users, total, err := h.userUseCase.ListUsers(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) RemoveService(c echo.Context) error {
	serviceID := c.Param("id")
	if serviceID == "" {
		return response.Error(c, errors.BadRequest("Service ID is required", nil))
	}

	if err := h.serviceUseCase.AdminDeleteService(c.Request().Context(), serviceID); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Service removed")
}

func (h *AdminHandler) RemoveJobPost(c echo.Context) error {
	postID := c.Param("id")
	if postID == "" {
		return response.Error(c, errors.BadRequest("Job post ID is required", nil))
	}

	if err := h.jobPostUseCase.AdminDeleteJobPost(c.Request().Context(), postID); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Job post removed")
}
