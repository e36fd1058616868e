package v1

import (
	"net/http"

	"marketing-site-backend/internal/delivery/http/response"
	"marketing-site-backend/internal/domain"
	"marketing-site-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type FooterHandler struct {
	footerUC domain.FooterUsecase
}

func NewFooterHandler(public *gin.RouterGroup, footerUC domain.FooterUsecase) {
	handler := &FooterHandler{footerUC: footerUC}

	footer := public.Group("/footer")
	{
		footer.GET("", handler.GetFooter)
		footer.GET("/:variant", handler.GetFooter)
	}
}

// GetFooter godoc
// @Summary      Get footer configuration
// @Description  Returns the footer columns and social links for a named variant (default when omitted).
// @Tags         footer
// @Produce      json
// @Param        variant  path      string  false  "Footer variant (default, minimal)"
// @Success      200      {object}  response.Response{data=domain.FooterConfig}
// @Failure      404      {object}  response.Response
// @Router       /footer/{variant} [get]
func (h *FooterHandler) GetFooter(c *gin.Context) {
	variant, err := domain.ParseFooterVariant(c.Param("variant"))
	if err != nil {
		_ = c.Error(apperror.NotFound("Unknown footer variant"))
		return
	}

	footer, err := h.footerUC.Footer(variant)
	if err != nil {
		_ = c.Error(apperror.NotFound("Unknown footer variant"))
		return
	}

	// Presets only change on deploy
	c.Header("Cache-Control", "public, max-age=300")
	response.Success(c, http.StatusOK, "Footer configuration", footer)
}
