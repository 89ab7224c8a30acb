package handler

import (
	"log/slog"
	"net/http"

	"bpaml/internal/delivery/api/response"
	deliverycontext "bpaml/internal/delivery/context"
	"bpaml/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OAuthHandlerParams holds dependencies for OAuthHandler, injected by Fx.
type OAuthHandlerParams struct {
	fx.In

	LinkUC usecase.LinkUsecase
	Logger *slog.Logger
}

// OAuthHandler drives the Strava authorization-code flow.
type OAuthHandler struct {
	linkUC usecase.LinkUsecase
	logger *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler
func NewOAuthHandler(params OAuthHandlerParams) *OAuthHandler {
	return &OAuthHandler{
		linkUC: params.LinkUC,
		logger: params.Logger,
	}
}

// StravaCallbackRequest holds the query Strava appends to the redirect URL
type StravaCallbackRequest struct {
	State string `query:"state" validate:"required"`
	Code  string `query:"code"`
	Scope string `query:"scope"`
	// Set instead of code when the athlete declined, e.g. access_denied
	Error string `query:"error"`
}

// StravaConnect redirects the athlete to the Strava consent page
func (h *OAuthHandler) StravaConnect(c echo.Context) error {
	authURL, err := h.linkUC.AuthorizeURL(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Redirect(http.StatusFound, authURL)
}

// StravaCallback completes linking and returns a session token
func (h *OAuthHandler) StravaCallback(c echo.Context) error {
	var req StravaCallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid callback parameters")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	code := req.Code
	if req.Error != "" {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Info("Strava authorization declined", slog.String("reason", req.Error))
		// The state is still consumed and the empty code is rejected
		code = ""
	}

	result, err := h.linkUC.Complete(c.Request().Context(), req.State, code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"athlete":       toAthleteResponse(result.Athlete),
		"session_token": result.SessionToken,
		"expires_at":    result.ExpiresAt,
	})
}
