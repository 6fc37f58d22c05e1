// Package http provides the operations HTTP surface: a liveness probe and a
// small read-only dashboard API. All lifecycle transitions happen through the
// scheduled jobs and the acceptance stream, never through HTTP.
package http

import (
	"net/http"
	"time"

	"fieldops/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server hosts the ops endpoints.
type Server struct {
	getUpcomingBookingsHandler queries.GetUpcomingBookingsQueryHandler
}

// NewServer creates an ops server backed by the given query handlers.
func NewServer(getUpcomingBookingsHandler queries.GetUpcomingBookingsQueryHandler) *Server {
	return &Server{
		getUpcomingBookingsHandler: getUpcomingBookingsHandler,
	}
}

// Register attaches the ops routes to the echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/bookings/upcoming", s.GetUpcomingBookings)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type upcomingBookingResponse struct {
	ID           string    `json:"id"`
	TechnicianID *string   `json:"technicianId,omitempty"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	ScheduledAt  time.Time `json:"scheduledAt"`
	Status       string    `json:"status"`
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetUpcomingBookings handles GET /bookings/upcoming - lists active bookings
// due within the next day.
func (s *Server) GetUpcomingBookings(ctx echo.Context) error {
	query := queries.NewGetUpcomingBookingsQuery()

	bookings, err := s.getUpcomingBookingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve upcoming bookings",
		})
	}

	response := make([]upcomingBookingResponse, len(bookings))
	for i, b := range bookings {
		row := upcomingBookingResponse{
			ID:          b.ID.String(),
			Latitude:    b.Location.Latitude(),
			Longitude:   b.Location.Longitude(),
			ScheduledAt: b.ScheduledAt,
			Status:      b.Status.String(),
		}
		if b.TechnicianID != nil {
			technicianID := b.TechnicianID.String()
			row.TechnicianID = &technicianID
		}
		response[i] = row
	}

	return ctx.JSON(http.StatusOK, response)
}
