// Package constants defines values shared across layers.
package constants

// Event publisher providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// ProviderStrava is the provider name stored on credentials.
const ProviderStrava = "strava"

// ReferenceTimezone anchors the default activity window.
const ReferenceTimezone = "Australia/Brisbane"

// Activity listing limits of the Strava API. Only the first page is requested.
const (
	ActivitiesFirstPage = 1
	ActivitiesPerPage   = 200
)

// Event types published after local activity changes
const (
	EventActivityImported = "activity.imported"
	EventActivityDeleted  = "activity.deleted"
)
