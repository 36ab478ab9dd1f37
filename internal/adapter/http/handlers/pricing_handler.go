package handlers

import (
	"net/http"

	request "crane_fmv/internal/adapter/http/dto/request"
	response "crane_fmv/internal/adapter/http/dto/response"
	"crane_fmv/internal/domain/entities"
	"crane_fmv/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	usecase    usecase.IPricingUseCase
	adminToken string
}

func NewPricingHandler(uc usecase.IPricingUseCase, adminToken string) *PricingHandler {
	return &PricingHandler{usecase: uc, adminToken: adminToken}
}

// GetPricing godoc
// @Summary  Current price per report tier
// @Tags     pricing
// @Produce  json
// @Success  200  {object}  response.PricingResponse
// @Router   /pricing [get]
func (h *PricingHandler) GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPrices(h.usecase.Prices(c.Request.Context())))
}

// UpdatePrice godoc
// @Summary  Change the price of a tier for reports created from now on
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Param    type           path    string                      true  "Report tier"
// @Param    X-Admin-Token  header  string                      true  "Administrator token"
// @Param    body           body    request.UpdatePriceRequest  true  "New price"
// @Success  200  {object}  response.PricingResponse
// @Failure  403  {object}  pkg.HTTPError
// @Failure  422  {object}  pkg.HTTPError
// @Router   /pricing/{type} [put]
func (h *PricingHandler) UpdatePrice(c *gin.Context) {
	var payload request.UpdatePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	reportType, ok := entities.ParseReportType(c.Param("type"))
	if !ok {
		reportType = entities.ReportType(c.Param("type"))
	}

	prices, err := h.usecase.UpdatePrice(c.Request.Context(), actorFromRequest(c, h.adminToken), reportType, payload.Price)
	if err != nil {
		abortWithError(c, mapReportError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPrices(prices))
}
