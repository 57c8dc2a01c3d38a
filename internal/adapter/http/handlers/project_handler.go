package handlers

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"

	request "mecanica_projects/internal/adapter/http/dto/request"
	response "mecanica_projects/internal/adapter/http/dto/response"
	"mecanica_projects/internal/domain/entities"
	"mecanica_projects/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for custom modification projects.

type ProjectHandler struct {
	usecase usecase.IProjectUseCase
}

func NewProjectHandler(uc usecase.IProjectUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

// RequestProject godoc
// @Summary  Request a new modification project (customer only)
// @Tags     projects
// @Accept   json
// @Produce  json
// @Param    body body request.ProjectRequest true "Project request"
// @Success  201 {object} response.ProjectResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  403 {object} pkg.HTTPError
// @Router   /projects [post]
func (h *ProjectHandler) RequestProject(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var payload request.ProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[project][handler] invalid payload actor_id=%s err=%v", actor.ID, err)
		writeError(c, errInvalidPayload)
		return
	}

	project, err := h.usecase.RequestProject(c.Request.Context(), actor, payload.ToCommand())
	if err != nil {
		writeError(c, mapLifecycleError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromProject(project))
}

// ListProjects godoc
// @Summary  List projects (all for staff, own for customers)
// @Tags     projects
// @Produce  json
// @Success  200 {array} response.ProjectResponse
// @Router   /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	projects, err := h.usecase.ListProjects(c.Request.Context(), actor)
	if err != nil {
		writeError(c, mapLifecycleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProjects(projects))
}

// GetProject godoc
// @Summary  Get a project
// @Tags     projects
// @Produce  json
// @Param    project_id path string true "Project ID"
// @Success  200 {object} response.ProjectResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	h.withProject(c, h.usecase.GetProject)
}

// GetQuote godoc
// @Summary  Get the quote of a project
// @Tags     projects
// @Produce  json
// @Param    project_id path string true "Project ID"
// @Success  200 {object} response.QuoteResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /projects/{project_id}/quote [get]
func (h *ProjectHandler) GetQuote(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	quote, err := h.usecase.GetQuote(c.Request.Context(), actor, c.Param("project_id"))
	if err != nil {
		writeError(c, mapLifecycleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// SubmitQuote godoc
// @Summary  Submit a quote for a REQUESTED project (employee/admin)
// @Tags     projects
// @Accept   json
// @Produce  json
// @Param    project_id path string true "Project ID"
// @Param    body body request.QuoteRequest true "Quote"
// @Success  200 {object} response.ProjectResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /projects/{project_id}/quote [put]
func (h *ProjectHandler) SubmitQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.withProject(c, func(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error) {
		return h.usecase.SubmitQuote(ctx, actor, projectID, payload.ToCommand())
	})
}

// AcceptQuote godoc
// @Summary  Accept the quote of an owned project (customer)
// @Tags     projects
// @Produce  json
// @Param    project_id path string true "Project ID"
// @Success  200 {object} response.ProjectResponse
// @Router   /projects/{project_id}/accept [post]
func (h *ProjectHandler) AcceptQuote(c *gin.Context) {
	h.withProject(c, h.usecase.AcceptQuote)
}

// RejectQuote godoc
// @Summary  Reject the quote of an owned project (customer)
// @Tags     projects
// @Accept   json
// @Produce  json
// @Param    project_id path string true "Project ID"
// @Param    body body request.RejectionRequest false "Reason"
// @Success  200 {object} response.ProjectResponse
// @Router   /projects/{project_id}/reject [post]
func (h *ProjectHandler) RejectQuote(c *gin.Context) {
	payload, ok := bindRejection(c)
	if !ok {
		return
	}
	h.withProject(c, func(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error) {
		return h.usecase.RejectQuote(ctx, actor, projectID, payload.Reason)
	})
}

// ApproveProject godoc
// @Summary  Approve a project request (admin)
// @Tags     projects
// @Produce  json
// @Param    project_id path string true "Project ID"
// @Success  200 {object} response.ProjectResponse
// @Router   /projects/{project_id}/approve [post]
func (h *ProjectHandler) ApproveProject(c *gin.Context) {
	h.withProject(c, h.usecase.ApproveProject)
}

// RejectProject godoc
// @Summary  Reject a project request (admin)
// @Tags     projects
// @Produce  json
// @Param    project_id path string true "Project ID"
// @Param    reason query string false "Reason"
// @Success  200 {object} response.ProjectResponse
// @Router   /projects/{project_id}/admin/reject [post]
func (h *ProjectHandler) RejectProject(c *gin.Context) {
	payload, ok := bindRejection(c)
	if !ok {
		return
	}
	if q := c.Query("reason"); q != "" {
		payload.Reason = q
	}
	h.withProject(c, func(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error) {
		return h.usecase.RejectProject(ctx, actor, projectID, payload.Reason)
	})
}

// UpdateProgress godoc
// @Summary  Update project progress (employee/admin)
// @Tags     projects
// @Accept   json
// @Produce  json
// @Param    project_id path string true "Project ID"
// @Param    body body request.ProgressRequest true "Progress"
// @Success  200 {object} response.ProjectResponse
// @Router   /projects/{project_id}/progress [put]
func (h *ProjectHandler) UpdateProgress(c *gin.Context) {
	var payload request.ProgressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	h.withProject(c, func(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error) {
		return h.usecase.UpdateProgress(ctx, actor, projectID, *payload.Progress)
	})
}

func (h *ProjectHandler) withProject(
	c *gin.Context,
	op func(ctx context.Context, actor entities.Actor, projectID string) (entities.Project, error),
) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	projectID := c.Param("project_id")

	project, err := op(c.Request.Context(), actor, projectID)
	if err != nil {
		log.Printf("[project][handler] %s failed project_id=%s actor_id=%s err=%v", c.Request.Method, projectID, actor.ID, err)
		writeError(c, mapLifecycleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProject(project))
}

// bindRejection accepts an empty body.
func bindRejection(c *gin.Context) (request.RejectionRequest, bool) {
	var payload request.RejectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeError(c, errInvalidPayload)
		return payload, false
	}
	return payload, true
}
