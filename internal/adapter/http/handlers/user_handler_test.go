package handlers

import (
	"bytes"
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

func TestUserHandler_Connect(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing wallet header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockIUserUseCase(ctrl)
		txs := mocks.NewMockITransactionUseCase(ctrl)
		h := NewUserHandler(users, txs)

		r := gin.New()
		r.POST("/v1/users/connect", h.Connect)

		req := httptest.NewRequest(http.MethodPost, "/v1/users/connect", nil)
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

	t.Run("returns the wallet's user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockIUserUseCase(ctrl)
		txs := mocks.NewMockITransactionUseCase(ctrl)
		h := NewUserHandler(users, txs)

		r := gin.New()
		r.POST("/v1/users/connect", h.Connect)

		now := time.Now().UTC()
		users.EXPECT().
			GetOrCreateByWallet(gomock.Any(), "wallet-1").
			Return(entities.User{ID: "user-1", WalletAddress: "wallet-1", CreatedAt: now, UpdatedAt: now}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/users/connect", nil)
		req.Header.Set(HeaderWalletAddress, "wallet-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "user-1" || body["wallet_address"] != "wallet-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestUserHandler_GetByWallet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockIUserUseCase(ctrl)
		txs := mocks.NewMockITransactionUseCase(ctrl)
		h := NewUserHandler(users, txs)

		r := gin.New()
		r.GET("/v1/users/:wallet", h.GetByWallet)

		users.EXPECT().
			GetByWallet(gomock.Any(), "wallet-ghost").
			Return(entities.User{}, usecase.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/users/wallet-ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "USER_NOT_FOUND" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("wallet mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockIUserUseCase(ctrl)
		txs := mocks.NewMockITransactionUseCase(ctrl)
		h := NewUserHandler(users, txs)

		r := gin.New()
		r.PUT("/v1/users/:wallet", h.UpdateProfile)

		req := httptest.NewRequest(http.MethodPut, "/v1/users/wallet-1", bytes.NewBufferString(`{"username":"degen"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderWalletAddress, "wallet-2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "NOT_PROFILE_OWNER" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockIUserUseCase(ctrl)
		txs := mocks.NewMockITransactionUseCase(ctrl)
		h := NewUserHandler(users, txs)

		r := gin.New()
		r.PUT("/v1/users/:wallet", h.UpdateProfile)

		req := httptest.NewRequest(http.MethodPut, "/v1/users/wallet-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderWalletAddress, "wallet-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success forwards only present fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockIUserUseCase(ctrl)
		txs := mocks.NewMockITransactionUseCase(ctrl)
		h := NewUserHandler(users, txs)

		r := gin.New()
		r.PUT("/v1/users/:wallet", h.UpdateProfile)

		username := "degen"
		bio := "collector"
		now := time.Now().UTC()
		users.EXPECT().
			UpdateProfile(gomock.Any(), "wallet-1", usecase.ProfileUpdate{Username: &username, Bio: &bio}).
			Return(entities.User{ID: "user-1", WalletAddress: "wallet-1", Username: "degen", Bio: "collector", CreatedAt: now, UpdatedAt: now}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/users/wallet-1", bytes.NewBufferString(`{"username":"degen","bio":"collector"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderWalletAddress, "wallet-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["username"] != "degen" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestUserHandler_ListTransactions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockIUserUseCase(ctrl)
		txs := mocks.NewMockITransactionUseCase(ctrl)
		h := NewUserHandler(users, txs)

		r := gin.New()
		r.GET("/v1/users/:wallet/transactions", h.ListTransactions)

		users.EXPECT().
			GetByWallet(gomock.Any(), "wallet-ghost").
			Return(entities.User{}, usecase.ErrUserNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/users/wallet-ghost/transactions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns trade history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockIUserUseCase(ctrl)
		txs := mocks.NewMockITransactionUseCase(ctrl)
		h := NewUserHandler(users, txs)

		r := gin.New()
		r.GET("/v1/users/:wallet/transactions", h.ListTransactions)

		now := time.Now().UTC()
		price := decimal.NewFromInt(5)
		users.EXPECT().
			GetByWallet(gomock.Any(), "wallet-1").
			Return(entities.User{ID: "user-1", WalletAddress: "wallet-1", CreatedAt: now, UpdatedAt: now}, nil)
		txs.EXPECT().
			ListByUser(gomock.Any(), "user-1").
			Return([]entities.Transaction{
				{ID: "tx-2", Type: entities.TransactionTypeSale, NFTID: "nft-1", FromID: "user-1", ToID: "user-2", Price: &price, Signature: "sig-2", Timestamp: now},
				{ID: "tx-1", Type: entities.TransactionTypeMint, NFTID: "nft-1", ToID: "user-1", Signature: "sig-1", Timestamp: now.Add(-time.Hour)},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/users/wallet-1/transactions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var list []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &list)
		if len(list) != 2 || list[0]["id"] != "tx-2" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
