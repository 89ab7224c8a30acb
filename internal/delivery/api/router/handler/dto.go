package handler

import (
	"time"
	_ "time/tzdata"

	"bpaml/internal/domain/entity"
	"bpaml/internal/usecase"
	"bpaml/internal/util"
)

const (
	dateLayout      = "2006-01-02"
	localTimeLayout = "2006-01-02T15:04:05"
)

// AthleteResponse is the public view of a linked athlete.
type AthleteResponse struct {
	StravaID   int64   `json:"strava_id"`
	Name       string  `json:"name"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	ProfileURL string  `json:"profile_url,omitempty"`
	City       string  `json:"city,omitempty"`
	Country    string  `json:"country,omitempty"`
	ParkrunID  *string `json:"parkrun_id,omitempty"`
}

// ActivityResponse is a stored activity.
type ActivityResponse struct {
	ID               string  `json:"id"`
	StravaActivityID *int64  `json:"strava_activity_id,omitempty"`
	Date             string  `json:"date"`
	StartTime        string  `json:"start_time"`
	StartTimeLocal   string  `json:"start_time_local"`
	Timezone         string  `json:"timezone"`
	Title            string  `json:"title"`
	Location         string  `json:"location,omitempty"`
	Description      string  `json:"description,omitempty"`
	Distance         float64 `json:"distance"`
	DurationSeconds  int64   `json:"duration_seconds"`
	Duration         string  `json:"duration"`
	ParkrunDuration  string  `json:"parkrun_duration,omitempty"`
	HasRoute         bool    `json:"has_route"`
}

// RemoteActivityResponse is a Strava activity that has not been saved yet.
type RemoteActivityResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	SportType      string  `json:"sport_type"`
	Distance       float64 `json:"distance"`
	ElapsedTime    int     `json:"elapsed_time"`
	MovingTime     int     `json:"moving_time"`
	Duration       string  `json:"duration"`
	StartDate      string  `json:"start_date"`
	StartDateLocal string  `json:"start_date_local"`
	Timezone       string  `json:"timezone"`
}

// UnsavedActivitiesResponse lists unsaved remote activities of the requested window.
type UnsavedActivitiesResponse struct {
	Activities []RemoteActivityResponse `json:"activities"`
	// Set when Strava returned a full page, so older activities in the window may be missing
	PossiblyTruncated bool `json:"possibly_truncated"`
}

func toAthleteResponse(athlete *entity.Athlete) AthleteResponse {
	return AthleteResponse{
		StravaID:   athlete.StravaID,
		Name:       athlete.FullName(),
		FirstName:  athlete.FirstName,
		LastName:   athlete.LastName,
		ProfileURL: athlete.ProfileURL,
		City:       athlete.City,
		Country:    athlete.Country,
		ParkrunID:  athlete.ParkrunID,
	}
}

func toAthleteResponses(athletes []*entity.Athlete) []AthleteResponse {
	out := make([]AthleteResponse, 0, len(athletes))
	for _, athlete := range athletes {
		out = append(out, toAthleteResponse(athlete))
	}

	return out
}

func toActivityResponse(activity *entity.Activity) ActivityResponse {
	startTime := activity.StartTime
	if loc, err := time.LoadLocation(activity.Timezone); err == nil {
		startTime = startTime.In(loc)
	}

	resp := ActivityResponse{
		ID:               activity.ID.String(),
		StravaActivityID: activity.StravaActivityID,
		Date:             activity.Date.Format(dateLayout),
		StartTime:        startTime.Format(time.RFC3339),
		StartTimeLocal:   activity.StartTimeLocal.Format(localTimeLayout),
		Timezone:         activity.Timezone,
		Title:            activity.Title,
		Location:         activity.Location,
		Description:      activity.Description,
		Distance:         activity.Distance,
		DurationSeconds:  int64(activity.Duration / time.Second),
		Duration:         util.FormatClock(activity.Duration),
		HasRoute:         activity.Polyline != "",
	}
	if activity.ParkrunDuration != nil {
		resp.ParkrunDuration = util.FormatClock(*activity.ParkrunDuration)
	}

	return resp
}

func toActivityResponses(activities []*entity.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		out = append(out, toActivityResponse(activity))
	}

	return out
}

func toUnsavedResponse(result *usecase.FetchResult) UnsavedActivitiesResponse {
	out := make([]RemoteActivityResponse, 0, len(result.Activities))
	for _, remote := range result.Activities {
		out = append(out, RemoteActivityResponse{
			ID:             remote.ID,
			Name:           remote.Name,
			SportType:      remote.SportType,
			Distance:       remote.Distance,
			ElapsedTime:    remote.ElapsedTime,
			MovingTime:     remote.MovingTime,
			Duration:       util.FormatClock(time.Duration(remote.ElapsedTime) * time.Second),
			StartDate:      remote.StartDate,
			StartDateLocal: remote.StartDateLocal,
			Timezone:       remote.Timezone,
		})
	}

	return UnsavedActivitiesResponse{Activities: out, PossiblyTruncated: result.PossiblyTruncated}
}
