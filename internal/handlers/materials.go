package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juraijvu/furn-newyear/internal/models"
	"github.com/juraijvu/furn-newyear/internal/prompts"
)

// MaterialsHandler lists the enumerated material and part options the picker
// UI offers.
func MaterialsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, models.MaterialsResponse{
		Materials:      prompts.Materials(),
		FurnitureParts: prompts.FurnitureParts(),
	})
}
