package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mecanica_projects/internal/adapter/http/middleware"
	"mecanica_projects/internal/usecase"

	"github.com/gin-gonic/gin"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Identity())
	return r
}

func asCustomer(req *http.Request, id string) *http.Request {
	req.Header.Set(middleware.HeaderUserSubject, id)
	req.Header.Set(middleware.HeaderUserRoles, "CUSTOMER")
	return req
}

func asStaff(req *http.Request, id, roles string) *http.Request {
	req.Header.Set(middleware.HeaderUserSubject, id)
	req.Header.Set(middleware.HeaderUserRoles, roles)
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMapLifecycleError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{name: "project not found", err: usecase.ErrProjectNotFound, status: http.StatusNotFound, code: "PROJECT_NOT_FOUND"},
		{name: "service not found", err: usecase.ErrServiceNotFound, status: http.StatusNotFound, code: "SERVICE_NOT_FOUND"},
		{name: "forbidden", err: usecase.ErrUnauthorizedAccess, status: http.StatusForbidden, code: "FORBIDDEN"},
		{
			name:    "invalid operation keeps reason",
			err:     fmt.Errorf("%w: can only accept QUOTED projects. Current status: APPROVED", usecase.ErrInvalidOperation),
			status:  http.StatusBadRequest,
			code:    "INVALID_OPERATION",
			message: "can only accept QUOTED projects. Current status: APPROVED",
		},
		{name: "validation", err: usecase.ErrInvalidProgress, status: http.StatusBadRequest, code: "INVALID_REQUEST", message: "progress must be between 0 and 100"},
		{name: "duplicated service", err: usecase.ErrServiceDuplicated, status: http.StatusConflict, code: "SERVICE_ALREADY_EXISTS"},
		{name: "conflict", err: fmt.Errorf("%w: project p-1", usecase.ErrConflict), status: http.StatusConflict, code: "CONFLICT"},
		{name: "unknown", err: errors.New("dynamodb down"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapLifecycleError(tc.err)
			if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, appErr.HTTPStatus, appErr.Code)
			}
			if tc.message != "" && appErr.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, appErr.Message)
			}
		})
	}
}

func TestMapInvoicePaymentError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{err: usecase.ErrInvalidMPPayload, status: http.StatusBadRequest},
		{err: usecase.ErrPaymentGatewayUnauthorized, status: http.StatusUnauthorized},
		{err: usecase.ErrPaymentGatewayInvalidUsers, status: http.StatusBadRequest},
		{err: usecase.ErrPaymentGatewayNotConfigured, status: http.StatusServiceUnavailable},
		{err: usecase.ErrInvoiceNotFound, status: http.StatusNotFound},
	}

	for _, tc := range cases {
		if got := mapInvoicePaymentError(tc.err).HTTPStatus; got != tc.status {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, got)
		}
	}
}
