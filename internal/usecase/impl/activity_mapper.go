package impl

import (
	"strings"
	"time"
	// Activities may name any zone; the host may lack a zoneinfo database.
	_ "time/tzdata"

	"bpaml/internal/domain/entity"
	domainerrors "bpaml/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// stravaTimeLayout is the format of start_date and start_date_local.
const stravaTimeLayout = "2006-01-02T15:04:05Z"

// MapActivity converts a remote activity into the stored representation.
func MapActivity(athleteID uuid.UUID, remote *entity.RemoteActivity) (*entity.Activity, error) {
	zoneName, err := zoneFromLabel(remote.Timezone)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrMalformedPayload, "unknown timezone %q", zoneName)
	}

	start, err := time.Parse(stravaTimeLayout, remote.StartDate)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrMalformedPayload, "invalid start_date %q", remote.StartDate)
	}

	wall, err := time.Parse(stravaTimeLayout, remote.StartDateLocal)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrMalformedPayload, "invalid start_date_local %q", remote.StartDateLocal)
	}

	remoteID := remote.ID
	utcStart := start.UTC()

	return &entity.Activity{
		ID:               uuid.New(),
		AthleteID:        athleteID,
		StravaActivityID: &remoteID,
		Date:             time.Date(utcStart.Year(), utcStart.Month(), utcStart.Day(), 0, 0, 0, 0, time.UTC),
		StartTime:        start.In(loc),
		// The provider's wall clock is kept as sent, not recomputed from the zone.
		StartTimeLocal: time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), 0, time.UTC),
		Timezone:       zoneName,
		Title:          remote.Name,
		Distance:       remote.Distance,
		Duration:       time.Duration(remote.ElapsedTime) * time.Second,
		Polyline:       remote.Map.SummaryPolyline,
	}, nil
}

// zoneFromLabel extracts the IANA name from labels like "(GMT+10:00) Australia/Brisbane".
func zoneFromLabel(label string) (string, error) {
	_, rest, ok := strings.Cut(label, " ")
	name, _, _ := strings.Cut(rest, " ")
	if !ok || name == "" {
		return "", errors.Wrapf(domainerrors.ErrMalformedPayload, "invalid timezone %q", label)
	}

	return name, nil
}
