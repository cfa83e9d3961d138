package handlers

import (
	"errors"
	"net/http"

	response "atelie/internal/adapter/http/dto/response"
	"atelie/internal/adapter/http/middleware"
	"atelie/internal/usecase"

	"github.com/gin-gonic/gin"
)

const imageFileField = "file"

type ImageHandler struct {
	usecase usecase.IImageUseCase
}

func NewImageHandler(uc usecase.IImageUseCase) *ImageHandler {
	return &ImageHandler{usecase: uc}
}

// Upload godoc
// @Summary  Upload a catalog image
// @Tags     admin-images
// @Accept   mpfd
// @Produce  json
// @Param    folder  query     string  true  "produtos | servicos"
// @Param    file    formData  file    true  "Image"
// @Success  201     {object}  response.ImageResponse
// @Failure  400     {object}  pkg.HTTPError
// @Failure  413     {object}  pkg.HTTPError
// @Security BearerAuth
// @Router   /admin/images [post]
func (h *ImageHandler) Upload(c *gin.Context) {
	limitBody(c)

	fh, err := c.FormFile(imageFileField)
	if isBodyTooLarge(err) {
		renderError(c, errUploadTooLarge)
		return
	}
	if err != nil {
		renderError(c, errMissingFile)
		return
	}
	data, err := readUpload(fh)
	if errors.Is(err, errTooLarge) {
		renderError(c, errUploadTooLarge)
		return
	}
	if err != nil {
		renderError(c, errInvalidPayload)
		return
	}

	obj, err := h.usecase.Upload(c.Request.Context(), middleware.Actor(c), usecase.ImageUpload{
		Folder:   c.Query("folder"),
		Filename: fh.Filename,
		Data:     data,
	})
	if err != nil {
		renderError(c, mapImageError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromStoredObject(obj))
}
