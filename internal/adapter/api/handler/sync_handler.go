package handler

import (
	"github.com/labstack/echo/v4"

	"hirelink/internal/usecase"
	"hirelink/pkg/errors"
	"hirelink/pkg/response"
)

// SyncHandler is the gateway clients call after writing listings, plus the
// search proxy. It exists so the index credentials never ship to browsers.
type SyncHandler struct {
	syncUseCase *usecase.SyncUseCase
}

func NewSyncHandler(syncUseCase *usecase.SyncUseCase) *SyncHandler {
	return &SyncHandler{
		syncUseCase: syncUseCase,
	}
}

// CreateOrUpdate accepts the full listing record as the request body; the
// record's objectID and providerId drive validation and ownership.
func (h *SyncHandler) CreateOrUpdate(c echo.Context) error {
	var record map[string]interface{}
	if err := c.Bind(&record); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	userID := c.Get("uid").(string)

	message, err := h.syncUseCase.CreateOrUpdate(c.Request().Context(), userID, record)
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, message)
}

type deleteSyncRequest struct {
	ObjectID string `json:"objectID" validate:"required"`
}

func (h *SyncHandler) Delete(c echo.Context) error {
	var req deleteSyncRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	userID := c.Get("uid").(string)

	message, err := h.syncUseCase.Delete(c.Request().Context(), userID, req.ObjectID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, message)
}

type updateProviderRequest struct {
	Name      string `json:"name" validate:"required"`
	AvatarURL string `json:"profilePicUrl" validate:"required"`
}

func (h *SyncHandler) UpdateProvider(c echo.Context) error {
	var req updateProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	userID := c.Get("uid").(string)

	count, err := h.syncUseCase.UpdateProvider(c.Request().Context(), userID, req.Name, req.AvatarURL)
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, usecase.ProviderFanOutMessage(count))
}

func (h *SyncHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	category := c.QueryParam("category")

	results, err := h.syncUseCase.Search(c.Request().Context(), query, category)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"hits":  results,
		"count": len(results),
	})
}
