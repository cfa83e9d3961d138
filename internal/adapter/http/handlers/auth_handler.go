package handlers

import (
	"net/http"

	request "atelie/internal/adapter/http/dto/request"
	response "atelie/internal/adapter/http/dto/response"
	"atelie/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary  Log in with e-mail and password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload  body      request.LoginRequest  true  "Credentials"
// @Success  200      {object}  response.SessionResponse
// @Failure  401      {object}  pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	session, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		renderError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

// Signup godoc
// @Summary  Create a client account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload  body      request.SignupRequest  true  "Account"
// @Success  201      {object}  response.SessionResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  409      {object}  pkg.HTTPError
// @Router   /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var payload request.SignupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		renderError(c, errInvalidPayload)
		return
	}
	session, err := h.usecase.Signup(c.Request.Context(), payload.ToInput())
	if err != nil {
		renderError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(session))
}
