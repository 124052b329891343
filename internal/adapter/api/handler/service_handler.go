package handler

import (
	"github.com/labstack/echo/v4"

	"hirelink/internal/usecase"
	"hirelink/pkg/errors"
	"hirelink/pkg/response"
	"hirelink/pkg/utils"
)

type ServiceHandler struct {
	serviceUseCase *usecase.ServiceUseCase
}

func NewServiceHandler(serviceUseCase *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{
		serviceUseCase: serviceUseCase,
	}
}

func (h *ServiceHandler) CreateService(c echo.Context) error {
	var req usecase.CreateServiceInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	service, err := h.serviceUseCase.CreateService(c.Request().Context(), userID, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, service)
}

func (h *ServiceHandler) GetService(c echo.Context) error {
	serviceID := c.Param("id")
	if serviceID == "" {
		return response.Error(c, errors.BadRequest("Service ID is required", nil))
	}

	service, err := h.serviceUseCase.GetService(c.Request().Context(), serviceID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, service)
}

func (h *ServiceHandler) ListServices(c echo.Context) error {
	category := c.QueryParam("category")
	pagination := utils.GetPaginationParams(c)

	services, total, err := h.serviceUseCase.ListServices(c.Request().Context(), category, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, services, total, pagination.Page, pagination.PageSize)
}

func (h *ServiceHandler) ListMyServices(c echo.Context) error {
	userID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	services, total, err := h.serviceUseCase.ListMyServices(c.Request().Context(), userID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, services, total, pagination.Page, pagination.PageSize)
}

// ListProviderServices is the public view of one provider's listings, shown
// on their profile page.
func (h *ServiceHandler) ListProviderServices(c echo.Context) error {
	providerID := c.Param("id")
	if providerID == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	pagination := utils.GetPaginationParams(c)

	services, total, err := h.serviceUseCase.ListMyServices(c.Request().Context(), providerID, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, services, total, pagination.Page, pagination.PageSize)
}

func (h *ServiceHandler) UpdateService(c echo.Context) error {
	serviceID := c.Param("id")
	if serviceID == "" {
		return response.Error(c, errors.BadRequest("Service ID is required", nil))
	}

	var req usecase.UpdateServiceInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := c.Get("uid").(string)

	service, err := h.serviceUseCase.UpdateService(c.Request().Context(), serviceID, userID, req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, service)
}

func (h *ServiceHandler) DeleteService(c echo.Context) error {
	serviceID := c.Param("id")
	if serviceID == "" {
		return response.Error(c, errors.BadRequest("Service ID is required", nil))
	}

	userID := c.Get("uid").(string)

	if err := h.serviceUseCase.DeleteService(c.Request().Context(), serviceID, userID); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Service deleted")
}
