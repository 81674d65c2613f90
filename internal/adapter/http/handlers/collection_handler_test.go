package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/umeshgehlot/SolanaMarket/internal/adapter/http/handlers/mocks"
	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase"
)

func TestCollectionHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing wallet header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollectionUseCase(ctrl)
		h := NewCollectionHandler(uc)

		r := gin.New()
		r.POST("/v1/collections", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/collections", bytes.NewBufferString(`{"name":"Degen Apes"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollectionUseCase(ctrl)
		h := NewCollectionHandler(uc)

		r := gin.New()
		r.POST("/v1/collections", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/collections", bytes.NewBufferString(`{"description":"no name"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderWalletAddress, "wallet-creator")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollectionUseCase(ctrl)
		h := NewCollectionHandler(uc)

		r := gin.New()
		r.POST("/v1/collections", h.Create)

		now := time.Now().UTC()
		uc.EXPECT().
			Create(gomock.Any(), "wallet-creator", "Degen Apes", "1000 apes", "ipfs://cover").
			Return(entities.Collection{ID: "col-1", Name: "Degen Apes", Description: "1000 apes", Image: "ipfs://cover", CreatorID: "user-1", CreatedAt: now, UpdatedAt: now}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/collections", bytes.NewBufferString(`{"name":"Degen Apes","description":"1000 apes","image":"ipfs://cover"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderWalletAddress, "wallet-creator")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "col-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCollectionHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollectionUseCase(ctrl)
		h := NewCollectionHandler(uc)

		r := gin.New()
		r.GET("/v1/collections/:id", h.Get)

		uc.EXPECT().Get(gomock.Any(), "missing").Return(entities.Collection{}, usecase.ErrCollectionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/collections/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "COLLECTION_NOT_FOUND" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCollectionHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns collections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICollectionUseCase(ctrl)
		h := NewCollectionHandler(uc)

		r := gin.New()
		r.GET("/v1/collections", h.List)

		now := time.Now().UTC()
		uc.EXPECT().List(gomock.Any()).Return([]entities.Collection{
			{ID: "col-1", Name: "Degen Apes", CreatorID: "user-1", CreatedAt: now, UpdatedAt: now},
			{ID: "col-2", Name: "Pixel Cats", CreatorID: "user-2", CreatedAt: now, UpdatedAt: now},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/collections", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var list []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &list)
		if len(list) != 2 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
