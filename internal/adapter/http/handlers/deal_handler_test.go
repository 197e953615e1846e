package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coldchain_pricing/internal/adapter/http/handlers/mocks"
	"coldchain_pricing/internal/adapter/http/middleware"
	"coldchain_pricing/internal/domain/entities"
	"coldchain_pricing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDealRouter(uc usecase.IDealUseCase) *gin.Engine {
	r := gin.New()
	h := NewDealHandler(uc)
	v1 := r.Group("/v1", middleware.AuthContext())
	v1.POST("/deals/:id/accept", h.AcceptDeal)
	v1.POST("/deals/:id/reject", h.RejectDeal)
	return r
}

func TestDealHandler_AcceptDeal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newDealRouter(mocks.NewMockIDealUseCase(ctrl))

		req := httptest.NewRequest(http.MethodPost, "/v1/deals/deal-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("accepted deal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDealUseCase(ctrl)
		r := newDealRouter(uc)

		uc.EXPECT().Accept(gomock.Any(), "deal-1", "user-1", "org-1").
			Return(entities.Deal{ID: "deal-1", Status: entities.DealStatusAccepted, ProductID: "prod-1"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/v1/deals/deal-1/accept", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Status    string `json:"status"`
			ProductID string `json:"product_id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if resp.Status != "accepted" || resp.ProductID != "prod-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("error mapping", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want int
			code string
		}{
			{"already processed", usecase.ErrDealAlreadyProcessed, http.StatusConflict, "DEAL_ALREADY_PROCESSED"},
			{"duplicate deal", usecase.ErrDuplicateDeal, http.StatusConflict, "DUPLICATE_DEAL"},
			{"not owned", usecase.ErrDealNotOwned, http.StatusForbidden, "FORBIDDEN"},
			{"warehouse org mismatch", usecase.ErrWarehouseNotAuthorized, http.StatusForbidden, "FORBIDDEN"},
			{"not found", usecase.ErrDealNotFound, http.StatusNotFound, "DEAL_NOT_FOUND"},
			{"invalid fields", usecase.ErrInvalidDealFields, http.StatusBadRequest, "INVALID_DEAL_FIELDS"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIDealUseCase(ctrl)
				r := newDealRouter(uc)

				uc.EXPECT().Accept(gomock.Any(), "deal-1", "user-1", "org-1").
					Return(entities.Deal{}, tc.err)

				w := httptest.NewRecorder()
				r.ServeHTTP(w, authedRequest(http.MethodPost, "/v1/deals/deal-1/accept", nil))

				if w.Code != tc.want {
					t.Fatalf("expected %d, got %d", tc.want, w.Code)
				}
				var resp struct {
					Code string `json:"code"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("unmarshal body: %v", err)
				}
				if resp.Code != tc.code {
					t.Fatalf("expected code %s, got %s", tc.code, resp.Code)
				}
			})
		}
	})
}

func TestDealHandler_RejectDeal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rejected deal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDealUseCase(ctrl)
		r := newDealRouter(uc)

		uc.EXPECT().Reject(gomock.Any(), "deal-1", "user-1").
			Return(entities.Deal{ID: "deal-1", Status: entities.DealStatusRejected}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/v1/deals/deal-1/reject", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("already processed maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDealUseCase(ctrl)
		r := newDealRouter(uc)

		uc.EXPECT().Reject(gomock.Any(), "deal-1", "user-1").
			Return(entities.Deal{}, usecase.ErrDealAlreadyProcessed)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPost, "/v1/deals/deal-1/reject", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
