package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kaikari-xpress/internal/domain"
	"kaikari-xpress/internal/storage"
)

type addressRequest struct {
	Type        string  `json:"type" binding:"required,oneof=home work other"`
	FullAddress string  `json:"fullAddress" binding:"required"`
	City        string  `json:"city" binding:"required"`
	State       string  `json:"state" binding:"required"`
	Pincode     string  `json:"pincode" binding:"required,len=6,numeric"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsDefault   bool    `json:"isDefault"`
}

func listAddressesHandler(store appStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"addresses": store.Addresses(c.Request.Context())})
	}
}

func addAddressHandler(store appStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid address: type, fullAddress, city, state and a 6-digit pincode are required")
			return
		}
		added, err := store.AddAddress(c.Request.Context(), domain.Address{
			Type:        req.Type,
			FullAddress: req.FullAddress,
			City:        req.City,
			State:       req.State,
			Pincode:     req.Pincode,
			Latitude:    req.Latitude,
			Longitude:   req.Longitude,
			IsDefault:   req.IsDefault,
		})
		if err != nil {
			respondError(c, http.StatusInternalServerError, "failed to persist address")
			return
		}
		c.JSON(http.StatusCreated, added)
	}
}

func updateAddressHandler(store appStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch storage.AddressPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			respondError(c, http.StatusBadRequest, "invalid address patch")
			return
		}
		if patch.Pincode != nil && len(*patch.Pincode) != 6 {
			respondError(c, http.StatusBadRequest, "pincode must be 6 digits")
			return
		}
		if err := store.UpdateAddress(c.Request.Context(), c.Param("id"), patch); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to persist address")
			return
		}
		c.JSON(http.StatusOK, gin.H{"addresses": store.Addresses(c.Request.Context())})
	}
}

func deleteAddressHandler(store appStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.DeleteAddress(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to persist address book")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func defaultAddressHandler(store appStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		address := store.DefaultAddress(c.Request.Context())
		if address == nil {
			respondError(c, http.StatusNotFound, "no default address")
			return
		}
		c.JSON(http.StatusOK, address)
	}
}

func setDefaultAddressHandler(store appStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if err := store.SetDefaultAddress(ctx, c.Param("id")); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to persist address book")
			return
		}
		c.JSON(http.StatusOK, gin.H{"addresses": store.Addresses(ctx)})
	}
}
