package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bpaml/internal/delivery/api/response"
	"bpaml/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const geoJSONContentType = "application/geo+json"

// ActivityHandlerParams holds dependencies for ActivityHandler, injected by Fx.
type ActivityHandlerParams struct {
	fx.In

	ActivityUC usecase.ActivityUsecase
	Logger     *slog.Logger
}

// ActivityHandler serves the activity sync endpoints of one athlete.
type ActivityHandler struct {
	activityUC usecase.ActivityUsecase
	logger     *slog.Logger
}

// NewActivityHandler is the constructor for ActivityHandler
func NewActivityHandler(params ActivityHandlerParams) *ActivityHandler {
	return &ActivityHandler{
		activityUC: params.ActivityUC,
		logger:     params.Logger,
	}
}

// ActivityPathRequest identifies one activity of an athlete by its Strava id
type ActivityPathRequest struct {
	StravaID   int64 `param:"stravaId" validate:"required,gt=0"`
	ActivityID int64 `param:"activityId" validate:"required,gt=0"`
}

// UnsavedActivitiesRequest selects the window of remote activities, in epoch seconds.
// Both bounds are optional together; without them the default import window applies.
type UnsavedActivitiesRequest struct {
	StravaID int64 `param:"stravaId" validate:"required,gt=0"`
	After    int64 `query:"after" validate:"gte=0,required_with=Before"`
	Before   int64 `query:"before" validate:"gte=0,required_with=After"`
}

func (r *UnsavedActivitiesRequest) window() usecase.Window {
	if r.After == 0 && r.Before == 0 {
		return usecase.Window{}
	}

	return usecase.Window{
		Start: time.Unix(r.After, 0).UTC(),
		End:   time.Unix(r.Before, 0).UTC(),
	}
}

// ListActivities returns the stored activities ordered by start time
func (h *ActivityHandler) ListActivities(c echo.Context) error {
	var req AthletePathRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid athlete id")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	activities, err := h.activityUC.ListLocal(c.Request().Context(), req.StravaID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toActivityResponses(activities))
}

// ListUnsaved returns the remote activities that have not been saved yet
func (h *ActivityHandler) ListUnsaved(c echo.Context) error {
	var req UnsavedActivitiesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid activity window")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.activityUC.ListUnsaved(c.Request().Context(), req.StravaID, req.window())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUnsavedResponse(result))
}

// SaveActivity imports one remote activity
func (h *ActivityHandler) SaveActivity(c echo.Context) error {
	req, err := h.bindActivity(c)
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}

	activity, err := h.activityUC.Save(c.Request().Context(), req.StravaID, req.ActivityID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toActivityResponse(activity))
}

// DeleteActivity removes a stored activity by its Strava id
func (h *ActivityHandler) DeleteActivity(c echo.Context) error {
	req, err := h.bindActivity(c)
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}

	if err := h.activityUC.Delete(c.Request().Context(), req.StravaID, req.ActivityID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetRoute returns the stored route as a GeoJSON feature
func (h *ActivityHandler) GetRoute(c echo.Context) error {
	req, err := h.bindActivity(c)
	if err != nil {
		return err
	}
	if req == nil {
		return nil
	}

	feature, err := h.activityUC.Route(c.Request().Context(), req.StravaID, req.ActivityID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, err := feature.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "failed to encode route")
	}

	return c.Blob(http.StatusOK, geoJSONContentType, body)
}

// bindActivity returns a nil request once a 400 response has been written.
func (h *ActivityHandler) bindActivity(c echo.Context) (*ActivityPathRequest, error) {
	var req ActivityPathRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "Invalid activity id")
	}
	if err := c.Validate(&req); err != nil {
		return nil, response.ValidationError(c, err)
	}

	return &req, nil
}
