package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func listCategoriesHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": svc.Categories()})
	}
}

func listProductsHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context(), c.Query("category"))
		if err != nil {
			respondServiceErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
	}
}

func getProductHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, "product id must be numeric")
			return
		}
		product, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondServiceErr(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
