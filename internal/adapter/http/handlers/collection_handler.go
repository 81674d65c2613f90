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

type CollectionHandler struct {
	usecase usecase.ICollectionUseCase
}

func NewCollectionHandler(uc usecase.ICollectionUseCase) *CollectionHandler {
	return &CollectionHandler{usecase: uc}
}

func (h *CollectionHandler) List(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCollectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCollections(list))
}

func (h *CollectionHandler) Get(c *gin.Context) {
	col, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCollectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCollection(col))
}

func (h *CollectionHandler) Create(c *gin.Context) {
	wallet, walletErr := walletFromRequest(c)
	if walletErr != nil {
		c.JSON(walletErr.HTTPStatus, walletErr.ToHTTPError())
		return
	}

	var payload request.CreateCollectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[collection][handler] create start name=%q wallet=%s", payload.Name, wallet)
	col, err := h.usecase.Create(c.Request.Context(), wallet, payload.Name, payload.Description, payload.Image)
	if err != nil {
		log.Printf("[collection][handler] create failed wallet=%s err=%v", wallet, err)
		appErr := mapCollectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCollection(col))
}

func mapCollectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCollectionID),
		errors.Is(err, usecase.ErrInvalidCollectionName),
		errors.Is(err, usecase.ErrInvalidWallet):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCollectionNotFound):
		return pkg.NewDomainErrorSimple("COLLECTION_NOT_FOUND", "Collection not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
