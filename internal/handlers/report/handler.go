package report

import (
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/report/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/dashboard", handler.GetDashboard)
	router.Get("/reports", handler.GetAnalytics)
}

// GetDashboard returns the front-desk headline figures.
// @Summary Dashboard
// @Description Guest count, total revenue, available rooms and the five most recent bookings.
// @Tags Report
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse] "Dashboard"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	res, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAnalytics returns the management analytics report.
// @Summary Analytics report
// @Description Occupancy, shift overlaps, packages, VIP guests, top services, unused room types and per-booking service summaries.
// @Tags Report
// @Produce json
// @Success 200 {object} response.Data[dto.AnalyticsResponse] "Analytics report"
// @Failure 500 {object} response.Error
// @Router /v1/reports [get]
// @Security BearerAuth
func (handler *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAnalytics")
	defer scope.End()

	res, err := handler.service.Analytics(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get analytics report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
