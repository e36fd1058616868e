package v1

import (
	"net/http"

	"marketing-site-backend/internal/delivery/http/response"
	"marketing-site-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(public *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	public.GET("/health", handler.Health)
}

// Health godoc
// @Summary      Health check
// @Description  Reports service liveness and whether outgoing email is configured.
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	var status map[string]string
	if h.healthUC != nil {
		status = h.healthUC.Check(c.Request.Context())
	}
	response.Success(c, http.StatusOK, "System operational", status)
}
