package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/umeshgehlot/SolanaMarket/internal/adapter/http/dto/request"
	response "github.com/umeshgehlot/SolanaMarket/internal/adapter/http/dto/response"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase"
	"github.com/umeshgehlot/SolanaMarket/pkg"
)

// UserHandler handles wallet-identity profiles and per-user trade history.

type UserHandler struct {
	users usecase.IUserUseCase
	txs   usecase.ITransactionUseCase
}

func NewUserHandler(users usecase.IUserUseCase, txs usecase.ITransactionUseCase) *UserHandler {
	return &UserHandler{users: users, txs: txs}
}

// Connect resolves the calling wallet to a user, creating the record on
// first contact. Frontends call this once after the wallet is connected.
func (h *UserHandler) Connect(c *gin.Context) {
	wallet, walletErr := walletFromRequest(c)
	if walletErr != nil {
		c.JSON(walletErr.HTTPStatus, walletErr.ToHTTPError())
		return
	}

	u, err := h.users.GetOrCreateByWallet(c.Request.Context(), wallet)
	if err != nil {
		log.Printf("[user][handler] connect failed wallet=%s err=%v", wallet, err)
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(u))
}

func (h *UserHandler) GetByWallet(c *gin.Context) {
	u, err := h.users.GetByWallet(c.Request.Context(), c.Param("wallet"))
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(u))
}

// UpdateProfile changes the profile of the wallet in the path. The acting
// wallet header must match: wallets edit only their own profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	wallet := c.Param("wallet")
	acting, walletErr := walletFromRequest(c)
	if walletErr != nil {
		c.JSON(walletErr.HTTPStatus, walletErr.ToHTTPError())
		return
	}
	if acting != wallet {
		appErr := pkg.NewDomainErrorSimple("NOT_PROFILE_OWNER", "Wallets can only edit their own profile", http.StatusForbidden)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[user][handler] update profile start wallet=%s", wallet)
	u, err := h.users.UpdateProfile(c.Request.Context(), wallet, usecase.ProfileUpdate{
		Username: payload.Username,
		Avatar:   payload.Avatar,
		Bio:      payload.Bio,
		Website:  payload.Website,
		Twitter:  payload.Twitter,
		Discord:  payload.Discord,
	})
	if err != nil {
		log.Printf("[user][handler] update profile failed wallet=%s err=%v", wallet, err)
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(u))
}

// ListTransactions returns the trade history for the wallet's user,
// newest first.
func (h *UserHandler) ListTransactions(c *gin.Context) {
	u, err := h.users.GetByWallet(c.Request.Context(), c.Param("wallet"))
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	list, err := h.txs.ListByUser(c.Request.Context(), u.ID)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(list))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWallet),
		errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
