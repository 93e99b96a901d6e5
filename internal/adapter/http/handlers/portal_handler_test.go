package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldops_billing/internal/adapter/http/handlers/mocks"
	"fieldops_billing/internal/domain/entities"
	"fieldops_billing/pkg/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPortalHandler_ApproveEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token renders the uniform invalid-link response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPortalUseCase(ctrl)
		h := NewPortalHandler(uc, "https://pay.example.com")

		r := gin.New()
		r.POST("/v1/portal/estimates/approve", h.ApproveEstimate)

		req := httptest.NewRequest(http.MethodPost, "/v1/portal/estimates/approve", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if resp["code"] != "INVALID_LINK" || resp["message"] != "This link is no longer valid" {
			t.Fatalf("unexpected response %v", resp)
		}
	})

	t.Run("invalid token renders the identical response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPortalUseCase(ctrl)
		h := NewPortalHandler(uc, "https://pay.example.com")

		r := gin.New()
		r.POST("/v1/portal/estimates/approve", h.ApproveEstimate)

		uc.EXPECT().
			DecideEstimate(gomock.Any(), "deadbeef", true, gomock.Any()).
			Return(entities.Estimate{}, apperror.InvalidAccessToken())

		req := httptest.NewRequest(http.MethodPost, "/v1/portal/estimates/approve?token=deadbeef", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if resp["code"] != "INVALID_LINK" || resp["message"] != "This link is no longer valid" {
			t.Fatalf("unexpected response %v", resp)
		}
	})

	t.Run("valid token approves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPortalUseCase(ctrl)
		h := NewPortalHandler(uc, "https://pay.example.com")

		r := gin.New()
		r.POST("/v1/portal/estimates/approve", h.ApproveEstimate)

		uc.EXPECT().
			DecideEstimate(gomock.Any(), "cafef00d", true, gomock.Any()).
			Return(entities.Estimate{ID: "est-1", Status: entities.EstimateStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/portal/estimates/approve?token=cafef00d", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPortalHandler_CreatePortalLink(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("mints a URL carrying the raw token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPortalUseCase(ctrl)
		h := NewPortalHandler(uc, "https://pay.example.com/")

		r := gin.New()
		r.POST("/v1/portal-links", h.CreatePortalLink)

		expiresAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
		uc.EXPECT().
			Issue(gomock.Any(), "co-1", entities.DocumentTypeEstimate, "est-1", entities.TokenPurposeEstimateAct).
			Return("rawtoken", expiresAt, nil)

		body := `{"document_type":"estimate","document_id":"est-1","purpose":"estimate_act"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/portal-links", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Company-ID", "co-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		url, _ := resp["url"].(string)
		if url != "https://pay.example.com/portal/estimates?token=rawtoken" {
			t.Fatalf("url = %q", url)
		}
	})
}
