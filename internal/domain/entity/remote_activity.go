package entity

// RemoteActivity is one activity as returned by the Strava API.
// Timestamps stay as raw strings; the activity mapper owns their parsing.
type RemoteActivity struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Distance       float64   `json:"distance"`     // metres
	MovingTime     int       `json:"moving_time"`  // seconds
	ElapsedTime    int       `json:"elapsed_time"` // seconds
	Type           string    `json:"type"`
	SportType      string    `json:"sport_type"`
	StartDate      string    `json:"start_date"`       // e.g. 2024-02-01T20:00:00Z
	StartDateLocal string    `json:"start_date_local"` // wall clock, formatted like start_date
	Timezone       string    `json:"timezone"`         // e.g. "(GMT+10:00) Australia/Brisbane"
	Map            RemoteMap `json:"map"`
}

// RemoteMap carries the encoded route of a remote activity.
type RemoteMap struct {
	ID              string `json:"id"`
	SummaryPolyline string `json:"summary_polyline"`
	Polyline        string `json:"polyline,omitempty"`
}
