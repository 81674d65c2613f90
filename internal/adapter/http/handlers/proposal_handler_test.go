package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/umeshgehlot/SolanaMarket/internal/adapter/http/handlers/mocks"
	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase"
)

func TestProposalHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing wallet header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/v1/nfts/:id/offers", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/nfts/nft-1/offers", bytes.NewBufferString(`{"price":"5","expiration_days":7}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "MISSING_WALLET" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/v1/nfts/:id/offers", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/nfts/nft-1/offers", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderWalletAddress, "wallet-buyer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid price mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/v1/nfts/:id/offers", h.Create)

		uc.EXPECT().
			Create(gomock.Any(), entities.ProposalKindOffer, "nft-1", "wallet-buyer", gomock.Any(), 7).
			Return(entities.Proposal{}, usecase.ErrInvalidPrice)

		req := httptest.NewRequest(http.MethodPost, "/v1/nfts/nft-1/offers", bytes.NewBufferString(`{"price":"-1","expiration_days":7}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderWalletAddress, "wallet-buyer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("nft not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/v1/nfts/:id/offers", h.Create)

		uc.EXPECT().
			Create(gomock.Any(), entities.ProposalKindOffer, "missing", "wallet-buyer", gomock.Any(), 7).
			Return(entities.Proposal{}, usecase.ErrNFTNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/nfts/missing/offers", bytes.NewBufferString(`{"price":"5","expiration_days":7}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderWalletAddress, "wallet-buyer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "NFT_NOT_FOUND" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("settlement failure maps to 502", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.POST("/v1/nfts/:id/bids", h.Create)

		uc.EXPECT().
			Create(gomock.Any(), entities.ProposalKindBid, "nft-1", "wallet-buyer", gomock.Any(), 7).
			Return(entities.Proposal{}, usecase.ErrSettlementFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/nfts/nft-1/bids", bytes.NewBufferString(`{"price":"5","expiration_days":7}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderWalletAddress, "wallet-buyer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "SETTLEMENT_FAILED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/v1/nfts/:id/offers", h.Create)

		now := time.Now().UTC()
		uc.EXPECT().
			Create(gomock.Any(), entities.ProposalKindOffer, "nft-1", "wallet-buyer", decimal.NewFromInt(5), 7).
			Return(entities.Proposal{
				ID:         "prop-1",
				Kind:       entities.ProposalKindOffer,
				NFTID:      "nft-1",
				ProposerID: "user-1",
				Price:      decimal.NewFromInt(5),
				Status:     entities.ProposalStatusActive,
				ExpiresAt:  now.AddDate(0, 0, 7),
				CreatedAt:  now,
				UpdatedAt:  now,
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/nfts/nft-1/offers", bytes.NewBufferString(`{"price":"5","expiration_days":7}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderWalletAddress, "wallet-buyer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "prop-1" || body["status"] != "ACTIVE" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_Accept(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not active carries observed status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/v1/offers/:id/accept", h.Accept)

		uc.EXPECT().
			Accept(gomock.Any(), entities.ProposalKindOffer, "prop-1", "wallet-owner").
			Return(entities.Transaction{}, &usecase.ProposalStateError{Status: entities.ProposalStatusCancelled})

		req := httptest.NewRequest(http.MethodPost, "/v1/offers/prop-1/accept", nil)
		req.Header.Set(HeaderWalletAddress, "wallet-owner")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "OFFER_NOT_ACTIVE" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if msg, _ := body["message"].(string); !strings.Contains(msg, "CANCELLED") {
			t.Fatalf("expected observed status in message, got %q", body["message"])
		}
	})

	t.Run("expired maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.POST("/v1/bids/:id/accept", h.Accept)

		uc.EXPECT().
			Accept(gomock.Any(), entities.ProposalKindBid, "prop-1", "wallet-owner").
			Return(entities.Transaction{}, usecase.ErrProposalExpired)

		req := httptest.NewRequest(http.MethodPost, "/v1/bids/prop-1/accept", nil)
		req.Header.Set(HeaderWalletAddress, "wallet-owner")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "BID_EXPIRED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("non owner maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/v1/offers/:id/accept", h.Accept)

		uc.EXPECT().
			Accept(gomock.Any(), entities.ProposalKindOffer, "prop-1", "wallet-other").
			Return(entities.Transaction{}, usecase.ErrNotNFTOwner)

		req := httptest.NewRequest(http.MethodPost, "/v1/offers/prop-1/accept", nil)
		req.Header.Set(HeaderWalletAddress, "wallet-other")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "NOT_NFT_OWNER" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success returns settlement transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/v1/offers/:id/accept", h.Accept)

		price := decimal.NewFromInt(5)
		uc.EXPECT().
			Accept(gomock.Any(), entities.ProposalKindOffer, "prop-1", "wallet-owner").
			Return(entities.Transaction{
				ID:        "tx-1",
				Type:      entities.TransactionTypeAcceptOffer,
				NFTID:     "nft-1",
				FromID:    "user-owner",
				ToID:      "user-buyer",
				Price:     &price,
				Signature: "sig-1",
				Timestamp: time.Now().UTC(),
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/offers/prop-1/accept", nil)
		req.Header.Set(HeaderWalletAddress, "wallet-owner")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["type"] != "ACCEPT_OFFER" || body["signature"] != "sig-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_Cancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not proposer maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.POST("/v1/bids/:id/cancel", h.Cancel)

		uc.EXPECT().
			Cancel(gomock.Any(), entities.ProposalKindBid, "prop-1", "wallet-other").
			Return(entities.Transaction{}, usecase.ErrNotProposer)

		req := httptest.NewRequest(http.MethodPost, "/v1/bids/prop-1/cancel", nil)
		req.Header.Set(HeaderWalletAddress, "wallet-other")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "NOT_PROPOSER" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.POST("/v1/offers/:id/cancel", h.Cancel)

		uc.EXPECT().
			Cancel(gomock.Any(), entities.ProposalKindOffer, "missing", "wallet-buyer").
			Return(entities.Transaction{}, usecase.ErrProposalNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/offers/missing/cancel", nil)
		req.Header.Set(HeaderWalletAddress, "wallet-buyer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "OFFER_NOT_FOUND" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.POST("/v1/bids/:id/cancel", h.Cancel)

		uc.EXPECT().
			Cancel(gomock.Any(), entities.ProposalKindBid, "prop-1", "wallet-buyer").
			Return(entities.Transaction{
				ID:        "tx-1",
				Type:      entities.TransactionTypeCancelBid,
				NFTID:     "nft-1",
				FromID:    "user-buyer",
				Signature: "sig-1",
				Timestamp: time.Now().UTC(),
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/bids/prop-1/cancel", nil)
		req.Header.Set(HeaderWalletAddress, "wallet-buyer")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["type"] != "CANCEL_BID" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_ListForNFT(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status filter is uppercased", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.GET("/v1/nfts/:id/offers", h.ListForNFT)

		uc.EXPECT().
			ListForNFT(gomock.Any(), entities.ProposalKindOffer, "nft-1", entities.ProposalStatusExpired).
			Return([]entities.Proposal{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/nfts/nft-1/offers?status=expired", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.GET("/v1/nfts/:id/bids", h.ListForNFT)

		uc.EXPECT().
			ListForNFT(gomock.Any(), entities.ProposalKindBid, "nft-1", entities.ProposalStatus("BOGUS")).
			Return(nil, usecase.ErrInvalidStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/nfts/nft-1/bids?status=bogus", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("returns proposals best price first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.GET("/v1/nfts/:id/offers", h.ListForNFT)

		now := time.Now().UTC()
		uc.EXPECT().
			ListForNFT(gomock.Any(), entities.ProposalKindOffer, "nft-1", entities.ProposalStatus("")).
			Return([]entities.Proposal{
				{ID: "prop-rich", Kind: entities.ProposalKindOffer, NFTID: "nft-1", Price: decimal.NewFromInt(9), Status: entities.ProposalStatusActive, ExpiresAt: now.AddDate(0, 0, 7), CreatedAt: now, UpdatedAt: now},
				{ID: "prop-cheap", Kind: entities.ProposalKindOffer, NFTID: "nft-1", Price: decimal.NewFromInt(2), Status: entities.ProposalStatusActive, ExpiresAt: now.AddDate(0, 0, 7), CreatedAt: now, UpdatedAt: now},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/nfts/nft-1/offers", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var list []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &list)
		if len(list) != 2 || list[0]["id"] != "prop-rich" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestProposalHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewBidHandler(uc)

		r := gin.New()
		r.GET("/v1/bids/:id", h.Get)

		uc.EXPECT().
			Get(gomock.Any(), entities.ProposalKindBid, "missing").
			Return(entities.Proposal{}, usecase.ErrProposalNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/bids/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "BID_NOT_FOUND" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("internal error is not leaked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProposalUseCase(ctrl)
		h := NewOfferHandler(uc)

		r := gin.New()
		r.GET("/v1/offers/:id", h.Get)

		uc.EXPECT().
			Get(gomock.Any(), entities.ProposalKindOffer, "prop-1").
			Return(entities.Proposal{}, errors.New("dynamodb: connection reset"))

		req := httptest.NewRequest(http.MethodGet, "/v1/offers/prop-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if msg, _ := body["message"].(string); strings.Contains(msg, "dynamodb") {
			t.Fatalf("internal detail leaked: %s", w.Body.String())
		}
	})
}
