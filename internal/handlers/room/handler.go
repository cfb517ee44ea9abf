package room

import (
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/service"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/grid", handler.GetGrid)
	})
}

// GetGrid returns every room with its type, price, status and booking history.
// @Summary Room status grid
// @Description All rooms with their current status and historical booking count, plus per-status totals.
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.GridResponse] "Room grid"
// @Failure 500 {object} response.Error
// @Router /v1/rooms/grid [get]
// @Security BearerAuth
func (handler *Handler) GetGrid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGrid")
	defer scope.End()

	grid, err := handler.service.Grid(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room grid")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room grid retrieved successfully")

	response.WithJSON(w, http.StatusOK, grid)
}
