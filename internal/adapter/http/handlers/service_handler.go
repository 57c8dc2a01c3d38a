package handlers

import (
	"log"
	"net/http"
	"strings"

	request "mecanica_projects/internal/adapter/http/dto/request"
	response "mecanica_projects/internal/adapter/http/dto/response"
	"mecanica_projects/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	multipartPhotosField = "files"
	uploadedPhotoCaption = "Service progress photo"
)

// ServiceHandler handles HTTP requests for appointment-derived services.

type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// CreateService godoc
// @Summary  Create a service from an appointment (employee/admin)
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    body body request.CreateServiceRequest true "Service"
// @Success  201 {object} response.ServiceResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.CreateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[service][handler] invalid payload actor_id=%s err=%v", actor.ID, err)
		writeError(c, errInvalidPayload)
		return
	}

	svc, err := h.usecase.CreateService(c.Request.Context(), actor, payload.ToCommand())
	if err != nil {
		writeError(c, mapLifecycleError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromService(svc))
}

// ListServices godoc
// @Summary  List services (all for staff, own for customers)
// @Tags     services
// @Produce  json
// @Param    status query string false "Status filter"
// @Success  200 {array} response.ServiceResponse
// @Router   /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	services, err := h.usecase.ListServices(c.Request.Context(), actor, c.Query("status"))
	if err != nil {
		writeError(c, mapLifecycleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

// GetService godoc
// @Summary  Get a service
// @Tags     services
// @Produce  json
// @Param    service_id path string true "Service ID"
// @Success  200 {object} response.ServiceResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /services/{service_id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	svc, err := h.usecase.GetService(c.Request.Context(), actor, c.Param("service_id"))
	if err != nil {
		writeError(c, mapLifecycleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(svc))
}

// UpdateService godoc
// @Summary  Partially update a service (employee/admin)
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    service_id path string true "Service ID"
// @Param    body body request.UpdateServiceRequest true "Fields to change"
// @Success  200 {object} response.ServiceResponse
// @Router   /services/{service_id} [patch]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.UpdateServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	cmd, err := payload.ToCommand()
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	serviceID := c.Param("service_id")
	svc, err := h.usecase.UpdateService(c.Request.Context(), actor, serviceID, cmd)
	if err != nil {
		log.Printf("[service][handler] update failed service_id=%s err=%v", serviceID, err)
		writeError(c, mapLifecycleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(svc))
}

// CompleteService godoc
// @Summary  Complete a service and issue its invoice (employee/admin)
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    service_id path string true "Service ID"
// @Param    body body request.CompletionRequest true "Completion"
// @Success  201 {object} response.InvoiceResponse
// @Router   /services/{service_id}/complete [post]
func (h *ServiceHandler) CompleteService(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.CompletionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	serviceID := c.Param("service_id")
	inv, err := h.usecase.CompleteService(c.Request.Context(), actor, serviceID, payload.ToCommand())
	if err != nil {
		log.Printf("[service][handler] complete failed service_id=%s err=%v", serviceID, err)
		writeError(c, mapLifecycleError(err))
		return
	}
	log.Printf("[service][handler] complete success service_id=%s invoice_number=%s", serviceID, inv.InvoiceNumber)
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// AddNote godoc
// @Summary  Add a work note (employee/admin)
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    service_id path string true "Service ID"
// @Param    body body request.NoteRequest true "Note"
// @Success  201 {object} response.NoteResponse
// @Router   /services/{service_id}/notes [post]
func (h *ServiceHandler) AddNote(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.NoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	note, err := h.usecase.AddNote(c.Request.Context(), actor, c.Param("service_id"), payload.ToCommand())
	if err != nil {
		writeError(c, mapLifecycleError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromNote(note))
}

// ListNotes godoc
// @Summary  List the notes visible to the caller
// @Tags     services
// @Produce  json
// @Param    service_id path string true "Service ID"
// @Success  200 {array} response.NoteResponse
// @Router   /services/{service_id}/notes [get]
func (h *ServiceHandler) ListNotes(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	notes, err := h.usecase.ListNotes(c.Request.Context(), actor, c.Param("service_id"))
	if err != nil {
		writeError(c, mapLifecycleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromNotes(notes))
}

// UploadPhotos godoc
// @Summary  Record progress photos (employee/admin)
// @Description Accepts either a JSON list of already stored photos or a multipart form with "files".
// @Tags     services
// @Accept   json,mpfd
// @Produce  json
// @Param    service_id path string true "Service ID"
// @Success  201 {array} response.PhotoResponse
// @Router   /services/{service_id}/photos [post]
func (h *ServiceHandler) UploadPhotos(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	serviceID := c.Param("service_id")

	uploads, ok := photoUploads(c, serviceID)
	if !ok {
		writeError(c, errInvalidPayload)
		return
	}
	photos, err := h.usecase.UploadPhotos(c.Request.Context(), actor, serviceID, uploads)
	if err != nil {
		writeError(c, mapLifecycleError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPhotos(photos))
}

// ListPhotos godoc
// @Summary  List progress photos
// @Tags     services
// @Produce  json
// @Param    service_id path string true "Service ID"
// @Success  200 {array} response.PhotoResponse
// @Router   /services/{service_id}/photos [get]
func (h *ServiceHandler) ListPhotos(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	photos, err := h.usecase.ListPhotos(c.Request.Context(), actor, c.Param("service_id"))
	if err != nil {
		writeError(c, mapLifecycleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPhotos(photos))
}

// GetServiceInvoice godoc
// @Summary  Get the latest invoice of a service
// @Tags     services
// @Produce  json
// @Param    service_id path string true "Service ID"
// @Success  200 {object} response.InvoiceResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /services/{service_id}/invoice [get]
func (h *ServiceHandler) GetServiceInvoice(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	inv, err := h.usecase.GetServiceInvoice(c.Request.Context(), actor, c.Param("service_id"))
	if err != nil {
		writeError(c, mapLifecycleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// photoUploads only records multipart file names; the bytes belong to the file store.
func photoUploads(c *gin.Context, serviceID string) ([]usecase.PhotoUpload, bool) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, err := c.MultipartForm()
		if err != nil {
			log.Printf("[service][handler] invalid multipart form service_id=%s err=%v", serviceID, err)
			return nil, false
		}
		files := form.File[multipartPhotosField]
		uploads := make([]usecase.PhotoUpload, 0, len(files))
		for _, fh := range files {
			uploads = append(uploads, usecase.PhotoUpload{
				FileName:    fh.Filename,
				PhotoURL:    request.UploadedPhotoURL(serviceID, fh.Filename),
				Description: uploadedPhotoCaption,
			})
		}
		return uploads, true
	}

	var payload request.PhotosRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		return nil, false
	}
	return payload.ToUploads(), true
}
