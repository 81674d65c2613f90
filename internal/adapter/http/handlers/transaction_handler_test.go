package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/umeshgehlot/SolanaMarket/internal/adapter/http/handlers/mocks"
	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase"
)

func TestTransactionHandler_ListForNFT(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid nft id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := gin.New()
		r.GET("/v1/nfts/:id/transactions", h.ListForNFT)

		uc.EXPECT().ListByNFT(gomock.Any(), "%20").Return(nil, usecase.ErrInvalidNFTID)

		req := httptest.NewRequest(http.MethodGet, "/v1/nfts/%2520/transactions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("returns provenance newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransactionUseCase(ctrl)
		h := NewTransactionHandler(uc)

		r := gin.New()
		r.GET("/v1/nfts/:id/transactions", h.ListForNFT)

		now := time.Now().UTC()
		price := decimal.NewFromInt(10)
		uc.EXPECT().ListByNFT(gomock.Any(), "nft-1").Return([]entities.Transaction{
			{ID: "tx-2", Type: entities.TransactionTypeSale, NFTID: "nft-1", FromID: "user-1", ToID: "user-2", Price: &price, Signature: "sig-2", Timestamp: now},
			{ID: "tx-1", Type: entities.TransactionTypeMint, NFTID: "nft-1", ToID: "user-1", Signature: "sig-1", Timestamp: now.Add(-time.Hour)},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/nfts/nft-1/transactions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var list []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &list)
		if len(list) != 2 || list[0]["type"] != "SALE" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
