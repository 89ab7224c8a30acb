// Package strava implements the Strava OAuth token exchange and activity API client.
package strava

import (
	"net/http"
	"strings"
	"time"
)

// Endpoint labels used for request metrics.
const (
	endpointToken          = "token"
	endpointListActivities = "list_activities"
	endpointGetActivity    = "get_activity"
	endpointOther          = "other"
)

// RequestObserver records the outcome of one outbound request. Status 0 means no response.
type RequestObserver interface {
	ObserveRequest(endpoint string, status int, elapsed time.Duration)
}

// instrumentedTransport reports every round trip to the observer.
type instrumentedTransport struct {
	base     http.RoundTripper
	observer RequestObserver
}

func (t *instrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	t.observer.ObserveRequest(endpointLabel(req.URL.Path), status, time.Since(start))

	return resp, err
}

func endpointLabel(path string) string {
	switch {
	case strings.HasSuffix(path, "/oauth/token"):
		return endpointToken
	case strings.HasSuffix(path, "/athlete/activities"):
		return endpointListActivities
	case strings.Contains(path, "/activities/"):
		return endpointGetActivity
	default:
		return endpointOther
	}
}

// NewHTTPClient returns the client shared by the token exchanger and the API client.
// It sets no overall timeout; every call carries its own context deadline.
func NewHTTPClient(observer RequestObserver) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 10

	var rt http.RoundTripper = transport
	if observer != nil {
		rt = &instrumentedTransport{base: transport, observer: observer}
	}

	return &http.Client{Transport: rt}
}
