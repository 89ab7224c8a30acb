package pubsub

import (
	"encoding/json"
	"strconv"
	"time"

	"bpaml/internal/domain/service"

	"github.com/pkg/errors"
)

// publishTimeout bounds a single publish, including the wait for the broker's ack.
const publishTimeout = 10 * time.Second

// encodeEvent returns the message payload and attributes of an activity event.
func encodeEvent(event *service.ActivityEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "encode %s event", event.Type)
	}

	attributes := map[string]string{
		"type":              event.Type,
		"athlete_strava_id": strconv.FormatInt(event.AthleteStravaID, 10),
		"activity_id":       strconv.FormatInt(event.ActivityID, 10),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return data, attributes, nil
}

// orderingKey keeps the events of one athlete in publish order.
func orderingKey(event *service.ActivityEvent) string {
	return "athlete-" + strconv.FormatInt(event.AthleteStravaID, 10)
}
