package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive integer path parameter. A malformed id is
// answered directly so handlers only ever see valid ones.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid "+name, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return 0, false
	}
	return id, true
}

// mapCoreError translates the shared error taxonomy: validation failures
// and calculator rejections become 400, illegal transitions 409, and
// persistence failures 502. Entity-specific sentinels are mapped by the
// per-handler mappers that call this first.
func mapCoreError(err error) (*pkg.AppError, bool) {
	var validationErr *entities.ValidationError
	if errors.As(err, &validationErr) {
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", validationErr.Error(), http.StatusBadRequest), true
	}
	if errors.Is(err, entities.ErrInvalidItem) || errors.Is(err, entities.ErrInvalidDiscount) {
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest), true
	}

	var transitionErr *entities.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", transitionErr.Error(), http.StatusConflict), true
	}

	var remoteErr *usecase.RemoteError
	if errors.As(err, &remoteErr) {
		return pkg.NewDomainError("REMOTE_ERROR", "Persistence operation failed", remoteErr, http.StatusBadGateway), true
	}

	return nil, false
}
