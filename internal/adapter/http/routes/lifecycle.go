package routes

import (
	"net/http"

	"mecanica_projects/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing     = "/ping"
	PathProjects = "/projects"
	PathServices = "/services"
	PathInvoices = "/invoices"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", h.RequestProject)
		projects.GET("", h.ListProjects)
		projects.GET("/:project_id", h.GetProject)
		projects.GET("/:project_id/quote", h.GetQuote)
		projects.PUT("/:project_id/quote", h.SubmitQuote)
		projects.POST("/:project_id/accept", h.AcceptQuote)
		projects.POST("/:project_id/reject", h.RejectQuote)
		projects.PUT("/:project_id/progress", h.UpdateProgress)
		projects.POST("/:project_id/approve", h.ApproveProject)
		projects.POST("/:project_id/admin/reject", h.RejectProject)
	}
}

func addServiceRoutes(rg *gin.RouterGroup, h *handlers.ServiceHandler) {
	services := rg.Group(PathServices)
	{
		services.POST("", h.CreateService)
		services.GET("", h.ListServices)
		services.GET("/:service_id", h.GetService)
		services.PATCH("/:service_id", h.UpdateService)
		services.POST("/:service_id/complete", h.CompleteService)
		services.POST("/:service_id/notes", h.AddNote)
		services.GET("/:service_id/notes", h.ListNotes)
		services.POST("/:service_id/photos", h.UploadPhotos)
		services.GET("/:service_id/photos", h.ListPhotos)
		services.GET("/:service_id/invoice", h.GetServiceInvoice)
	}
}

func addInvoiceRoutes(rg *gin.RouterGroup, h *handlers.InvoiceHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/:invoice_id", h.GetInvoice)
		invoices.POST("/:invoice_id/pay", h.PayInvoice)
	}
}
