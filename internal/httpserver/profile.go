package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kaikari-xpress/internal/domain"
)

// getProfileHandler creates the default profile on first read, the same
// way the profile screen always had something to render.
func getProfileHandler(store appStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		profile := store.Profile(ctx)
		if profile == nil {
			created := domain.UserProfile{
				ID:        "user_1",
				Name:      "Jaswanth",
				Email:     "jaswanth@email.com",
				Phone:     "+91 8883254695",
				CreatedAt: time.Now().UTC(),
			}
			if err := store.SaveProfile(ctx, created); err != nil {
				respondError(c, http.StatusInternalServerError, "failed to persist profile")
				return
			}
			profile = &created
		}
		c.JSON(http.StatusOK, profile)
	}
}

type profileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
}

func updateProfileHandler(store appStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req profileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "name, email and phone are required")
			return
		}

		ctx := c.Request.Context()
		profile := store.Profile(ctx)
		if profile == nil {
			profile = &domain.UserProfile{ID: "user_1", CreatedAt: time.Now().UTC()}
		}
		profile.Name = req.Name
		profile.Email = req.Email
		profile.Phone = req.Phone

		if err := store.SaveProfile(ctx, *profile); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to persist profile")
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func clearAppDataHandler(store appStorage) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.ClearAllData(c.Request.Context()); err != nil {
			respondError(c, http.StatusInternalServerError, "failed to clear data")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
