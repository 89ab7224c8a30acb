package handler

import (
	"log/slog"
	"net/http"

	"bpaml/internal/delivery/api/response"
	"bpaml/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AthleteHandlerParams holds dependencies for AthleteHandler, injected by Fx.
type AthleteHandlerParams struct {
	fx.In

	AthleteUC usecase.AthleteUsecase
	Logger    *slog.Logger
}

// AthleteHandler serves the athlete index and detail pages.
type AthleteHandler struct {
	athleteUC usecase.AthleteUsecase
	logger    *slog.Logger
}

// NewAthleteHandler is the constructor for AthleteHandler
func NewAthleteHandler(params AthleteHandlerParams) *AthleteHandler {
	return &AthleteHandler{
		athleteUC: params.AthleteUC,
		logger:    params.Logger,
	}
}

// AthletePathRequest identifies an athlete by Strava account id
type AthletePathRequest struct {
	StravaID int64 `param:"stravaId" validate:"required,gt=0"`
}

// ListAthletes returns every linked athlete
func (h *AthleteHandler) ListAthletes(c echo.Context) error {
	athletes, err := h.athleteUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAthleteResponses(athletes))
}

// GetAthlete returns one athlete
func (h *AthleteHandler) GetAthlete(c echo.Context) error {
	var req AthletePathRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid athlete id")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	athlete, err := h.athleteUC.Get(c.Request().Context(), req.StravaID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAthleteResponse(athlete))
}
