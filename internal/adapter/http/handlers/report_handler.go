package handlers

import (
	"context"
	"net/http"
	"time"

	request "crane_fmv/internal/adapter/http/dto/request"
	response "crane_fmv/internal/adapter/http/dto/response"
	"crane_fmv/internal/domain/entities"
	"crane_fmv/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const DefaultCallTimeout = 15 * time.Second

// ReportHandler exposes the report lifecycle over HTTP.
type ReportHandler struct {
	usecase     usecase.IReportUseCase
	adminToken  string
	callTimeout time.Duration
	log         *zap.Logger
}

// NewReportHandler builds the handler. callTimeout bounds the operations that
// reach the payment gate or the artifact store.
func NewReportHandler(uc usecase.IReportUseCase, adminToken string, callTimeout time.Duration) *ReportHandler {
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	return &ReportHandler{
		usecase:     uc,
		adminToken:  adminToken,
		callTimeout: callTimeout,
		log:         zap.L().Named("http.report"),
	}
}

// CreateReport godoc
// @Summary      Create a draft valuation report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        X-Account-ID  header  string                        true  "Owning account"
// @Param        body          body    request.CreateReportRequest   true  "Report tier and assets"
// @Success      201  {object}  response.ReportResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	actor := actorFromRequest(c, h.adminToken)
	if actor.AccountID == "" {
		abortWithError(c, errMissingAccount)
		return
	}

	var payload request.CreateReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("create invalid payload", zap.Error(err))
		abortWithError(c, errInvalidPayload)
		return
	}

	report, err := h.usecase.Create(c.Request.Context(), payload.ResolveType(), payload.ResolveAssets(), actor.AccountID)
	if err != nil {
		h.fail(c, "create", "", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromReport(report))
}

// GetReport godoc
// @Summary  Get a report
// @Tags     reports
// @Produce  json
// @Param    id   path      string  true  "Report ID"
// @Success  200  {object}  response.ReportResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	id := c.Param("id")
	report, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReport(report))
}

// UpdateAssets godoc
// @Summary  Replace the assets of a draft report
// @Tags     reports
// @Accept   json
// @Produce  json
// @Param    id            path    string                       true  "Report ID"
// @Param    X-Account-ID  header  string                       true  "Owning account"
// @Param    body          body    request.UpdateAssetsRequest  true  "Assets"
// @Success  200  {object}  response.ReportResponse
// @Failure  403  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Failure  422  {object}  pkg.HTTPError
// @Router   /reports/{id}/assets [put]
func (h *ReportHandler) UpdateAssets(c *gin.Context) {
	id := c.Param("id")
	var payload request.UpdateAssetsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	report, err := h.usecase.UpdateAssets(c.Request.Context(), id, actorFromRequest(c, h.adminToken), payload.ResolveAssets())
	if err != nil {
		h.fail(c, "update_assets", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReport(report))
}

// RequestPayment godoc
// @Summary  Validate the assets and move the report to payment_pending
// @Tags     reports
// @Produce  json
// @Param    id   path      string  true  "Report ID"
// @Success  200  {object}  response.ReportResponse
// @Failure  409  {object}  pkg.HTTPError
// @Failure  422  {object}  pkg.HTTPError
// @Router   /reports/{id}/payment-intent [post]
func (h *ReportHandler) RequestPayment(c *gin.Context) {
	h.simpleTransition(c, "request_payment", h.usecase.RequestPayment, false)
}

// ConfirmPayment godoc
// @Summary      Confirm payment with a provider receipt and value the assets
// @Description  The receipt is a Mercado Pago payment id whose external_reference is the report id.
// @Tags     reports
// @Accept   json
// @Produce  json
// @Param    id    path  string                         true  "Report ID"
// @Param    body  body  request.ConfirmPaymentRequest  true  "Receipt"
// @Success  200  {object}  response.ReportResponse
// @Failure  402  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Failure  502  {object}  pkg.HTTPError
// @Failure  503  {object}  pkg.HTTPError
// @Router   /reports/{id}/payment [post]
func (h *ReportHandler) ConfirmPayment(c *gin.Context) {
	id := c.Param("id")
	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidPayload)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.callTimeout)
	defer cancel()

	report, err := h.usecase.ConfirmPayment(ctx, id, payload.Receipt)
	if err != nil {
		h.fail(c, "confirm_payment", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReport(report))
}

// Revalue godoc
// @Summary  Re-run the valuation of a paid report
// @Tags     reports
// @Produce  json
// @Param    id   path      string  true  "Report ID"
// @Success  200  {object}  response.ReportResponse
// @Failure  409  {object}  pkg.HTTPError
// @Failure  503  {object}  pkg.HTTPError
// @Router   /reports/{id}/revalue [post]
func (h *ReportHandler) Revalue(c *gin.Context) {
	h.simpleTransition(c, "revalue", h.usecase.Revalue, true)
}

// Generate godoc
// @Summary  Render the report document
// @Tags     reports
// @Produce  json
// @Param    id   path      string  true  "Report ID"
// @Success  200  {object}  response.ReportResponse
// @Failure  409  {object}  pkg.HTTPError
// @Failure  502  {object}  pkg.HTTPError
// @Router   /reports/{id}/generate [post]
func (h *ReportHandler) Generate(c *gin.Context) {
	h.simpleTransition(c, "generate", h.usecase.Generate, true)
}

// Deliver godoc
// @Summary  Mark a generated report as delivered
// @Tags     reports
// @Produce  json
// @Param    id   path      string  true  "Report ID"
// @Success  200  {object}  response.ReportResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /reports/{id}/deliver [post]
func (h *ReportHandler) Deliver(c *gin.Context) {
	h.simpleTransition(c, "deliver", h.usecase.Deliver, false)
}

// GetArtifactURL godoc
// @Summary  Get a short-lived download link for the report document
// @Tags     reports
// @Produce  json
// @Param    id   path      string  true  "Report ID"
// @Success  200  {object}  response.ArtifactURLResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /reports/{id}/artifact [get]
func (h *ReportHandler) GetArtifactURL(c *gin.Context) {
	id := c.Param("id")
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.callTimeout)
	defer cancel()

	url, err := h.usecase.ArtifactURL(ctx, id)
	if err != nil {
		h.fail(c, "artifact_url", id, err)
		return
	}
	c.JSON(http.StatusOK, response.ArtifactURLResponse{ReportID: id, URL: url})
}

// DeleteReport godoc
// @Summary  Delete a report
// @Tags     reports
// @Produce  json
// @Param    id             path    string  true   "Report ID"
// @Param    X-Account-ID   header  string  false  "Owning account"
// @Param    X-Admin-Token  header  string  false  "Administrator token"
// @Success  200  {object}  response.ReportResponse
// @Failure  403  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /reports/{id} [delete]
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	id := c.Param("id")
	report, err := h.usecase.Delete(c.Request.Context(), id, actorFromRequest(c, h.adminToken))
	if err != nil {
		h.fail(c, "delete", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReport(report))
}

// ListValuations godoc
// @Summary  List every valuation ever produced for a report
// @Tags     reports
// @Produce  json
// @Param    id   path      string  true  "Report ID"
// @Success  200  {array}   response.ValuationResponse
// @Router   /reports/{id}/valuations [get]
func (h *ReportHandler) ListValuations(c *gin.Context) {
	id := c.Param("id")
	results, err := h.usecase.ListValuations(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "list_valuations", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromValuations(results))
}

// ListPayments godoc
// @Summary  List payment gate outcomes for a report
// @Tags     reports
// @Produce  json
// @Param    id   path      string  true  "Report ID"
// @Success  200  {array}   response.PaymentRecordResponse
// @Router   /reports/{id}/payments [get]
func (h *ReportHandler) ListPayments(c *gin.Context) {
	id := c.Param("id")
	records, err := h.usecase.ListPayments(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "list_payments", id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecords(records))
}

func (h *ReportHandler) simpleTransition(
	c *gin.Context,
	operation string,
	op func(ctx context.Context, id string) (entities.Report, error),
	external bool,
) {
	id := c.Param("id")
	ctx := c.Request.Context()
	if external {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.callTimeout)
		defer cancel()
	}

	report, err := op(ctx, id)
	if err != nil {
		h.fail(c, operation, id, err)
		return
	}
	c.JSON(http.StatusOK, response.FromReport(report))
}

func (h *ReportHandler) fail(c *gin.Context, operation, id string, err error) {
	appErr := mapReportError(err)
	fields := []zap.Field{zap.String("operation", operation), zap.String("report_id", id), zap.String("code", appErr.Code), zap.Error(err)}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("request failed", fields...)
	} else {
		h.log.Info("request rejected", fields...)
	}
	abortWithError(c, appErr)
}
