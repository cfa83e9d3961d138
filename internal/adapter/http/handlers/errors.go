package handlers

import (
	"errors"
	"net/http"

	"atelie/internal/domain/entities"
	"atelie/internal/usecase"
	"atelie/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Dados inválidos", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Ocorreu um erro interno. Tente novamente.", http.StatusInternalServerError)
)

// mapCommonError maps the errors shared by every use case. ok is false
// when err is not one of them.
func mapCommonError(err error) (*pkg.AppError, bool) {
	var verr *pkg.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_ERROR", "Verifique os campos destacados", err, http.StatusBadRequest).WithFields(verr.Fields), true
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Faça login para continuar", http.StatusUnauthorized), true
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Você não tem permissão para esta operação", http.StatusForbidden), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
}

func mapOrderError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Identificador inválido", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_STATUS", "Status de pedido inválido", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidRequestType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST_TYPE", "Tipo de solicitação inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Pedido não encontrado", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

func mapQuoteError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	return internalError(err)
}

func mapClientError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidClientID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Identificador inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Cliente não encontrado", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

func mapCatalogError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidServiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Identificador inválido", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProductSort):
		return pkg.NewDomainErrorSimple("INVALID_SORT", "Ordenação inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Produto não encontrado", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Serviço não encontrado", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

func mapImageError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidImageFolder):
		return pkg.NewDomainErrorSimple("INVALID_IMAGE_FOLDER", "Pasta de imagem inválida", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidImage):
		return pkg.NewDomainErrorSimple("INVALID_IMAGE", "O arquivo enviado não é uma imagem", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStorageUnavailable):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Armazenamento de arquivos indisponível", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "E-mail ou senha inválidos", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return pkg.NewDomainErrorSimple("EMAIL_ALREADY_REGISTERED", "Este e-mail já está cadastrado", http.StatusConflict)
	}
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	return internalError(err)
}

func renderError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil && appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
