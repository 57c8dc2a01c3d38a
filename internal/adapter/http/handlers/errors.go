package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"mecanica_projects/internal/adapter/http/middleware"
	"mecanica_projects/internal/domain/entities"
	"mecanica_projects/internal/usecase"
	"mecanica_projects/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errNoActor        = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing caller identity", http.StatusUnauthorized)
)

// mapLifecycleError translates use case errors into the HTTP envelope. Validation and
// invalid-operation errors carry their reason to the client.
func mapLifecycleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnauthorizedAccess):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrServiceDuplicated):
		return pkg.NewDomainErrorSimple("SERVICE_ALREADY_EXISTS", "A service already exists for this appointment", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidOperation):
		return pkg.NewDomainError("INVALID_OPERATION", reason(err, usecase.ErrInvalidOperation), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", reason(err, usecase.ErrValidation), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "The resource was modified concurrently, retry the request", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// reason strips the error kind prefix added by the use case layer.
func reason(err, kind error) string {
	msg := err.Error()
	if i := strings.Index(msg, kind.Error()+": "); i >= 0 {
		return msg[i+len(kind.Error())+2:]
	}
	return msg
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// actorOrAbort reads the caller set by middleware.Identity.
func actorOrAbort(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		log.Printf("[http][handler] missing actor path=%s", c.FullPath())
		writeError(c, errNoActor)
		return entities.Actor{}, false
	}
	return actor, true
}
