package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"mecanica_projects/internal/adapter/http/handlers/mocks"
	"mecanica_projects/internal/domain/entities"
	"mecanica_projects/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func serviceRoutes(h *ServiceHandler) *gin.Engine {
	r := newTestRouter()
	r.POST("/v1/services", h.CreateService)
	r.GET("/v1/services", h.ListServices)
	r.GET("/v1/services/:service_id", h.GetService)
	r.PATCH("/v1/services/:service_id", h.UpdateService)
	r.POST("/v1/services/:service_id/complete", h.CompleteService)
	r.POST("/v1/services/:service_id/notes", h.AddNote)
	r.GET("/v1/services/:service_id/notes", h.ListNotes)
	r.POST("/v1/services/:service_id/photos", h.UploadPhotos)
	r.GET("/v1/services/:service_id/photos", h.ListPhotos)
	r.GET("/v1/services/:service_id/invoice", h.GetServiceInvoice)
	return r
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestServiceHandler_CreateService(t *testing.T) {
	t.Run("duplicated appointment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := serviceRoutes(NewServiceHandler(uc))

		uc.EXPECT().CreateService(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.StandardService{}, usecase.ErrServiceDuplicated)

		req := asStaff(jsonRequest(http.MethodPost, "/v1/services", `{"appointment_id":"APT-1","customer_id":"cust-1","estimated_hours":4}`), "emp-1", "EMPLOYEE")
		w := serve(r, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := serviceRoutes(NewServiceHandler(uc))

		uc.EXPECT().CreateService(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.StandardService{}, usecase.ErrUnauthorizedAccess)

		w := serve(r, asCustomer(jsonRequest(http.MethodPost, "/v1/services", `{"appointment_id":"APT-1","customer_id":"cust-1","estimated_hours":4}`), "cust-1"))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestServiceHandler_UpdateService(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := serviceRoutes(NewServiceHandler(uc))

		w := serve(r, asStaff(jsonRequest(http.MethodPatch, "/v1/services/svc-1", `{"status":"DONE"}`), "emp-1", "EMPLOYEE"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("partial update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := serviceRoutes(NewServiceHandler(uc))

		uc.EXPECT().UpdateService(gomock.Any(), gomock.Any(), "svc-1", gomock.Any()).DoAndReturn(
			func(_ any, _ entities.Actor, _ string, cmd usecase.UpdateServiceCommand) (entities.StandardService, error) {
				if cmd.Status != nil || cmd.Progress == nil || *cmd.Progress != 60 || cmd.Note != "waiting parts" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.StandardService{ID: "svc-1", Status: entities.ServiceStatusInProgress, Progress: 60}, nil
			})

		w := serve(r, asStaff(jsonRequest(http.MethodPatch, "/v1/services/svc-1", `{"progress":60,"notes":"waiting parts"}`), "emp-1", "EMPLOYEE"))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestServiceHandler_CompleteService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceUseCase(ctrl)
	r := serviceRoutes(NewServiceHandler(uc))

	uc.EXPECT().CompleteService(gomock.Any(), gomock.Any(), "svc-1", gomock.Any()).DoAndReturn(
		func(_ any, _ entities.Actor, _ string, cmd usecase.CompleteServiceCommand) (entities.Invoice, error) {
			if !cmd.ActualCost.Equal(decimal.RequireFromString("100")) || len(cmd.AdditionalCharges) != 1 {
				t.Fatalf("unexpected command: %+v", cmd)
			}
			return entities.Invoice{
				ID:            "inv-1",
				InvoiceNumber: "INV-20260301100000",
				Subtotal:      decimal.RequireFromString("150"),
				TaxAmount:     decimal.RequireFromString("22.5"),
				TotalAmount:   decimal.RequireFromString("172.5"),
				Status:        entities.InvoiceStatusPending,
			}, nil
		})

	body := `{"final_notes":"Replaced pads","actual_cost":100,"additional_charges":[{"description":"Brake fluid","quantity":1,"unit_price":"50"}]}`
	w := serve(r, asStaff(jsonRequest(http.MethodPost, "/v1/services/svc-1/complete", body), "emp-1", "EMPLOYEE"))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var res map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res["total_amount"] != "172.50" || res["status"] != "PENDING" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestServiceHandler_Notes(t *testing.T) {
	t.Run("add internal note", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := serviceRoutes(NewServiceHandler(uc))

		uc.EXPECT().AddNote(gomock.Any(), gomock.Any(), "svc-1", usecase.NewNoteCommand{Note: "check rotor", CustomerVisible: false}).
			Return(entities.ServiceNote{ID: "n-1", Note: "check rotor"}, nil)

		w := serve(r, asStaff(jsonRequest(http.MethodPost, "/v1/services/svc-1/notes", `{"note":"check rotor","is_internal":true}`), "emp-1", "EMPLOYEE"))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("list hidden service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := serviceRoutes(NewServiceHandler(uc))

		uc.EXPECT().ListNotes(gomock.Any(), gomock.Any(), "svc-1").Return(nil, usecase.ErrServiceNotFound)

		w := serve(r, asCustomer(httptest.NewRequest(http.MethodGet, "/v1/services/svc-1/notes", nil), "cust-2"))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestServiceHandler_UploadPhotos(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := serviceRoutes(NewServiceHandler(uc))

		uc.EXPECT().UploadPhotos(gomock.Any(), gomock.Any(), "svc-1", []usecase.PhotoUpload{{FileName: "a.jpg", PhotoURL: "s3://bucket/a.jpg"}}).
			Return([]entities.ServicePhoto{{ID: "ph-1", PhotoURL: "s3://bucket/a.jpg"}}, nil)

		w := serve(r, asStaff(jsonRequest(http.MethodPost, "/v1/services/svc-1/photos", `{"photos":[{"file_name":"a.jpg","photo_url":"s3://bucket/a.jpg"}]}`), "emp-1", "EMPLOYEE"))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("multipart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := serviceRoutes(NewServiceHandler(uc))

		want := []usecase.PhotoUpload{{FileName: "front.jpg", PhotoURL: "/uploads/service-photos/svc-1/front.jpg", Description: "Service progress photo"}}
		uc.EXPECT().UploadPhotos(gomock.Any(), gomock.Any(), "svc-1", want).Return([]entities.ServicePhoto{{ID: "ph-1"}}, nil)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, _ := mw.CreateFormFile("files", "front.jpg")
		_, _ = fw.Write([]byte("jpeg-bytes"))
		_ = mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/v1/services/svc-1/photos", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := serve(r, asStaff(req, "emp-1", "EMPLOYEE"))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		r := serviceRoutes(NewServiceHandler(uc))

		w := serve(r, asStaff(jsonRequest(http.MethodPost, "/v1/services/svc-1/photos", `{"photos":[]}`), "emp-1", "EMPLOYEE"))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestServiceHandler_Reads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIServiceUseCase(ctrl)
	r := serviceRoutes(NewServiceHandler(uc))

	uc.EXPECT().ListServices(gomock.Any(), gomock.Any(), "IN_PROGRESS").Return([]entities.StandardService{{ID: "svc-1"}}, nil)
	uc.EXPECT().GetServiceInvoice(gomock.Any(), gomock.Any(), "svc-2").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)
	uc.EXPECT().ListPhotos(gomock.Any(), gomock.Any(), "svc-1").Return(nil, nil)

	if w := serve(r, asCustomer(httptest.NewRequest(http.MethodGet, "/v1/services?status=IN_PROGRESS", nil), "cust-1")); w.Code != http.StatusOK {
		t.Fatalf("expected 200 for list, got %d", w.Code)
	}
	if w := serve(r, asCustomer(httptest.NewRequest(http.MethodGet, "/v1/services/svc-2/invoice", nil), "cust-1")); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for invoice, got %d", w.Code)
	}
	w := serve(r, asCustomer(httptest.NewRequest(http.MethodGet, "/v1/services/svc-1/photos", nil), "cust-1"))
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected empty list, got %d %s", w.Code, w.Body.String())
	}
}
