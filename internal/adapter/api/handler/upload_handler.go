package handler

import (
	"github.com/labstack/echo/v4"

	"hirelink/internal/infrastructure/cloudinary"
	"hirelink/pkg/errors"
	"hirelink/pkg/response"
)

// UploadHandler signs direct-to-CDN image uploads.
type UploadHandler struct {
	signer *cloudinary.Signer
}

var uploadHandler *UploadHandler

func NewUploadHandler(signer *cloudinary.Signer) *UploadHandler {
	return &UploadHandler{
		signer: signer,
	}
}

func SetupUploadHandler(signer *cloudinary.Signer) {
	uploadHandler = NewUploadHandler(signer)
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}

type signUploadRequest struct {
	Params map[string]string `json:"params_to_sign"`
}

func (h *UploadHandler) SignUpload(c echo.Context) error {
	var req signUploadRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	signature, timestamp := h.signer.Sign(req.Params)

	return response.Success(c, map[string]interface{}{
		"signature": signature,
		"timestamp": timestamp,
	})
}
