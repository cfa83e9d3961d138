package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "atelie/internal/adapter/http/dto/request"
	response "atelie/internal/adapter/http/dto/response"
	"atelie/internal/usecase"

	"github.com/gin-gonic/gin"
)

const quotePhotoField = "photo"

// QuoteHandler receives storefront quote requests.
type QuoteHandler struct {
	usecase usecase.IQuoteIntakeUseCase
}

func NewQuoteHandler(uc usecase.IQuoteIntakeUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Submit godoc
// @Summary      Submit a quote request
// @Description  Accepts JSON, or multipart/form-data with an optional "photo" file.
// @Tags         quotes
// @Accept       json,mpfd
// @Produce      json
// @Param        payload  body      request.QuoteRequest  true  "Quote request"
// @Success      201      {object}  response.QuoteReceiptResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      413      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) Submit(c *gin.Context) {
	limitBody(c)

	var payload request.QuoteRequest
	if err := c.ShouldBind(&payload); err != nil {
		if isBodyTooLarge(err) {
			renderError(c, errUploadTooLarge)
			return
		}
		renderError(c, errInvalidPayload)
		return
	}

	var photo *usecase.QuotePhoto
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile(quotePhotoField)
		switch {
		case errors.Is(err, http.ErrMissingFile):
		case isBodyTooLarge(err):
			renderError(c, errUploadTooLarge)
			return
		case err != nil:
			renderError(c, errInvalidPayload)
			return
		default:
			data, err := readUpload(fh)
			if errors.Is(err, errTooLarge) {
				renderError(c, errUploadTooLarge)
				return
			}
			if err != nil {
				renderError(c, errInvalidPayload)
				return
			}
			photo = &usecase.QuotePhoto{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Data:        data,
			}
		}
	}

	receipt, err := h.usecase.Submit(c.Request.Context(), payload.ToUseCase(photo))
	if err != nil {
		renderError(c, mapQuoteError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromQuoteReceipt(receipt))
}
