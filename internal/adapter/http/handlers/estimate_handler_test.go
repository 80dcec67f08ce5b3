package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hauling_pros/internal/adapter/http/handlers/mocks"
	"hauling_pros/internal/domain/entities"
	"hauling_pros/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sentEstimate() entities.Estimate {
	amount := 275.0
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return entities.Estimate{
		ID:                "est-1",
		CustomerID:        "cus-1",
		Name:              "Jane Doe",
		Email:             "jane@example.com",
		Phone:             "919-555-0100",
		Address:           "1 Main St",
		ServiceType:       entities.ServiceTypeJunkRemoval,
		PreferredDate:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		PreferredTime:     "MORNING",
		PaymentMethod:     entities.PaymentMethodCash,
		Status:            entities.EstimateStatusEstimateSent,
		EstimatedAmount:   &amount,
		ConfirmationToken: "tok-1",
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestEstimateHandler_ListEstimates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/estimates", h.ListEstimates)

		uc.EXPECT().List(gomock.Any(), "ESTIMATED").Return([]entities.Estimate{sentEstimate()}, nil)

		w := serve(r, http.MethodGet, "/v1/admin/estimates?status=ESTIMATED", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "est-1" || body[0]["preferredDate"] != "2025-03-10" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/estimates", h.ListEstimates)

		uc.EXPECT().List(gomock.Any(), "NOPE").Return(nil, usecase.ErrInvalidStatusFilter)

		w := serve(r, http.MethodGet, "/v1/admin/estimates?status=NOPE", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty list is an array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/estimates", h.ListEstimates)

		uc.EXPECT().List(gomock.Any(), "").Return(nil, nil)

		w := serve(r, http.MethodGet, "/v1/admin/estimates", "")
		if strings.TrimSpace(w.Body.String()) != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_GetEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/estimates/:id", h.GetEstimate)

		uc.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Estimate{}, usecase.ErrEstimateNotFound)

		w := serve(r, http.MethodGet, "/v1/admin/estimates/missing", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "ESTIMATE_NOT_FOUND" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("success includes contact fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/estimates/:id", h.GetEstimate)

		uc.EXPECT().GetByID(gomock.Any(), "est-1").Return(sentEstimate(), nil)

		w := serve(r, http.MethodGet, "/v1/admin/estimates/est-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["email"] != "jane@example.com" || body["confirmationToken"] != "tok-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestEstimateHandler_GetByToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIEstimateUseCase(ctrl)
	h := NewEstimateHandler(uc)

	r := gin.New()
	r.GET("/v1/estimates/token/:token", h.GetByToken)

	uc.EXPECT().GetByToken(gomock.Any(), "tok-1").Return(sentEstimate(), nil)

	w := serve(r, http.MethodGet, "/v1/estimates/token/tok-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["id"] != "est-1" || body["estimatedAmount"] != 275.0 {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
	for _, key := range []string{"email", "phone", "confirmationToken", "customerId"} {
		if _, ok := body[key]; ok {
			t.Fatalf("public view leaked %s: %s", key, w.Body.String())
		}
	}
}

func TestEstimateHandler_SetAmount(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		body     string
		setup    func(uc *mocks.MockIEstimateUseCase)
		wantCode int
	}{
		{
			name:     "missing amount",
			body:     `{}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "invalid json",
			body:     `{`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "negative amount",
			body: `{"estimatedAmount":-1}`,
			setup: func(uc *mocks.MockIEstimateUseCase) {
				uc.EXPECT().SetAmount(gomock.Any(), "est-1", -1.0).Return(entities.Estimate{}, usecase.ErrInvalidEstimateVal)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "confirmed estimate",
			body: `{"estimatedAmount":300}`,
			setup: func(uc *mocks.MockIEstimateUseCase) {
				uc.EXPECT().SetAmount(gomock.Any(), "est-1", 300.0).Return(entities.Estimate{}, usecase.ErrInvalidTransition)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "success",
			body: `{"estimatedAmount":300}`,
			setup: func(uc *mocks.MockIEstimateUseCase) {
				e := sentEstimate()
				amount := 300.0
				e.EstimatedAmount = &amount
				e.Status = entities.EstimateStatusEstimated
				uc.EXPECT().SetAmount(gomock.Any(), "est-1", 300.0).Return(e, nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIEstimateUseCase(ctrl)
			if tc.setup != nil {
				tc.setup(uc)
			}
			h := NewEstimateHandler(uc)

			r := gin.New()
			r.PUT("/v1/admin/estimates/:id", h.SetAmount)

			w := serve(r, http.MethodPut, "/v1/admin/estimates/est-1", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d (%s)", tc.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestEstimateHandler_SendEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/estimates/:id/send", h.SendEstimate)

		uc.EXPECT().SendEstimate(gomock.Any(), "est-1").Return(sentEstimate(), nil)

		w := serve(r, http.MethodPost, "/v1/admin/estimates/est-1/send", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["status"] != "ESTIMATE_SENT" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("delivery failure is a bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/estimates/:id/send", h.SendEstimate)

		uc.EXPECT().SendEstimate(gomock.Any(), "est-1").
			Return(sentEstimate(), fmt.Errorf("%w: smtp down", usecase.ErrEstimateDeliveryFailed))

		w := serve(r, http.MethodPost, "/v1/admin/estimates/est-1/send", "")
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "ESTIMATE_DELIVERY_FAILED" {
			t.Fatalf("unexpected error body: %s", w.Body.String())
		}
	})

	t.Run("missing amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/estimates/:id/send", h.SendEstimate)

		uc.EXPECT().SendEstimate(gomock.Any(), "est-1").Return(entities.Estimate{}, usecase.ErrEstimateAmountMissing)

		w := serve(r, http.MethodPost, "/v1/admin/estimates/est-1/send", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_ConfirmAppointment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body keeps current schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/token/:token/confirm", h.ConfirmAppointment)

		confirmed := sentEstimate()
		confirmed.Status = entities.EstimateStatusConfirmed
		uc.EXPECT().ConfirmAppointment(gomock.Any(), "tok-1", entities.AppointmentChange{}).Return(confirmed, nil)

		w := serve(r, http.MethodPost, "/v1/estimates/token/tok-1/confirm", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		estimate, _ := body["estimate"].(map[string]any)
		if body["success"] != true || estimate["status"] != "CONFIRMED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("revised schedule is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/token/:token/confirm", h.ConfirmAppointment)

		want := entities.AppointmentChange{
			PreferredDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
			PreferredTime: "AFTERNOON",
			PaymentMethod: entities.PaymentMethodCreditCard,
		}
		uc.EXPECT().ConfirmAppointment(gomock.Any(), "tok-1", want).Return(sentEstimate(), nil)

		w := serve(r, http.MethodPost, "/v1/estimates/token/tok-1/confirm",
			`{"preferredDate":"2025-03-12","preferredTime":"AFTERNOON","paymentMethod":"credit_card"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/token/:token/confirm", h.ConfirmAppointment)

		w := serve(r, http.MethodPost, "/v1/estimates/token/tok-1/confirm", `{"preferredDate":"next week"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("payment link failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/token/:token/confirm", h.ConfirmAppointment)

		uc.EXPECT().ConfirmAppointment(gomock.Any(), "tok-1", gomock.Any()).Return(entities.Estimate{}, usecase.ErrPaymentLinkFailed)

		w := serve(r, http.MethodPost, "/v1/estimates/token/tok-1/confirm", `{"paymentMethod":"DEBIT_CARD"}`)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("already confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates/token/:token/confirm", h.ConfirmAppointment)

		uc.EXPECT().ConfirmAppointment(gomock.Any(), "tok-1", gomock.Any()).Return(entities.Estimate{}, usecase.ErrInvalidTransition)

		w := serve(r, http.MethodPost, "/v1/estimates/token/tok-1/confirm", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func multipartImages(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for name, data := range files {
		fw, err := mw.CreateFormFile(imagesFormField, name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		_, _ = fw.Write(data)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func TestEstimateHandler_UploadImages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

	t.Run("files become data urls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/estimates/:id/images", h.UploadImages)

		uc.EXPECT().AddImages(gomock.Any(), "est-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, images []string) (entities.Estimate, error) {
				if len(images) != 1 || !strings.HasPrefix(images[0], "data:image/png;base64,") {
					t.Fatalf("unexpected images: %v", images)
				}
				e := sentEstimate()
				e.Images = images
				return e, nil
			})

		body, contentType := multipartImages(t, map[string][]byte{"couch.png": png})
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/estimates/est-1/images", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
	})

	t.Run("no files", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/estimates/:id/images", h.UploadImages)

		uc.EXPECT().AddImages(gomock.Any(), "est-1", []string{}).Return(entities.Estimate{}, usecase.ErrNoImages)

		body, contentType := multipartImages(t, nil)
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/estimates/est-1/images", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("file over the image budget never reaches storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/estimates/:id/images", h.UploadImages)

		big := append(append([]byte{}, png...), make([]byte, maxImageBytes)...)
		body, contentType := multipartImages(t, map[string][]byte{"big.png": big})
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/estimates/est-1/images", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if resp := decodeBody(t, w); resp["code"] != "INVALID_REQUEST" {
			t.Fatalf("expected INVALID_REQUEST, got %v", resp)
		}
	})

	t.Run("combined size rejected by the usecase is a bad request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/estimates/:id/images", h.UploadImages)

		uc.EXPECT().AddImages(gomock.Any(), "est-1", gomock.Any()).
			Return(entities.Estimate{}, fmt.Errorf("%w: too large", usecase.ErrInvalidImages))

		body, contentType := multipartImages(t, map[string][]byte{"couch.png": png})
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/estimates/est-1/images", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not multipart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/estimates/:id/images", h.UploadImages)

		w := serve(r, http.MethodPost, "/v1/admin/estimates/est-1/images", `{"images":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestEstimateHandler_DeleteEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.DELETE("/v1/admin/estimates/:id", h.DeleteEstimate)

		uc.EXPECT().Delete(gomock.Any(), "est-1").Return(nil)

		w := serve(r, http.MethodDelete, "/v1/admin/estimates/est-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["success"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIEstimateUseCase(ctrl)
		h := NewEstimateHandler(uc)

		r := gin.New()
		r.DELETE("/v1/admin/estimates/:id", h.DeleteEstimate)

		uc.EXPECT().Delete(gomock.Any(), "est-1").Return(usecase.ErrEstimateNotFound)

		w := serve(r, http.MethodDelete, "/v1/admin/estimates/est-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
