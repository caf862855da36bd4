package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// MockHTTPServer replies to every request with the next canned response; the last
// response repeats once they run out.
type MockHTTPServer struct {
	*httptest.Server
	t *testing.T

	mu         sync.Mutex
	responses  []string
	StatusCode int
	// Request URIs (path and query) in the order they were received
	Requests []string
}

// MockHTTP starts a server. response may be a string, a []string of successive responses,
// or any value that is marshalled to JSON. Call the returned func to shut it down.
func MockHTTP(t *testing.T, response interface{}, status int) (*MockHTTPServer, func()) {
	mock := &MockHTTPServer{
		t:          t,
		StatusCode: status,
	}
	switch r := response.(type) {
	case string:
		mock.responses = []string{r}
	case []string:
		mock.responses = r
	default:
		bz, err := json.Marshal(response)
		if err != nil {
			t.Fatalf("could not marshal mock response: %v", err)
		}
		mock.responses = []string{string(bz)}
	}
	mock.Server = httptest.NewServer(http.HandlerFunc(mock.serve))
	return mock, mock.Close
}

func (mock *MockHTTPServer) serve(w http.ResponseWriter, r *http.Request) {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	index := len(mock.Requests)
	if index >= len(mock.responses) {
		index = len(mock.responses) - 1
	}
	mock.Requests = append(mock.Requests, r.URL.RequestURI())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(mock.StatusCode)
	if index >= 0 {
		_, _ = w.Write([]byte(mock.responses[index]))
	}
}

// RequestCount is the number of requests served so far.
func (mock *MockHTTPServer) RequestCount() int {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	return len(mock.Requests)
}

// Request returns the URI of the i-th request.
func (mock *MockHTTPServer) Request(i int) string {
	mock.mu.Lock()
	defer mock.mu.Unlock()
	if i >= len(mock.Requests) {
		mock.t.Fatalf("only %d requests were made, wanted request %d", len(mock.Requests), i)
	}
	return mock.Requests[i]
}
