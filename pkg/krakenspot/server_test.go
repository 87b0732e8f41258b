package krakenspot

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/readysetliqd/kraken-sdk-go/pkg/logger"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method   string
	Endpoint string
	Private  bool
	Query    url.Values
	Body     string
	Header   http.Header
}

// Form decodes the recorded private body.
func (r recordedRequest) Form() url.Values {
	v, _ := url.ParseQuery(r.Body)
	return v
}

// fakeKraken answers /0/public/<endpoint> and /0/private/<endpoint> with
// canned bodies and rejects private requests whose API-Sign does not verify
// against testAPISecret.
type fakeKraken struct {
	*httptest.Server

	mu        sync.Mutex
	requests  []recordedRequest
	responses map[string]string
}

func newFakeKraken(t *testing.T, responses map[string]string) *fakeKraken {
	t.Helper()
	fk := &fakeKraken{responses: responses}
	fk.Server = httptest.NewServer(http.HandlerFunc(fk.handle))
	t.Cleanup(fk.Close)
	return fk
}

func (fk *fakeKraken) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	rec := recordedRequest{
		Method: r.Method,
		Query:  r.URL.Query(),
		Body:   string(body),
		Header: r.Header.Clone(),
	}
	switch {
	case strings.HasPrefix(r.URL.Path, "/0/public/"):
		rec.Endpoint = strings.TrimPrefix(r.URL.Path, "/0/public/")
	case strings.HasPrefix(r.URL.Path, "/0/private/"):
		rec.Endpoint = strings.TrimPrefix(r.URL.Path, "/0/private/")
		rec.Private = true
	}
	fk.mu.Lock()
	fk.requests = append(fk.requests, rec)
	resp, ok := fk.responses[rec.Endpoint]
	fk.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if rec.Private && !validSignature(rec) {
		_, _ = io.WriteString(w, `{"error":["EAPI:Invalid signature"]}`)
		return
	}
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":["EGeneral:Unknown method"]}`)
		return
	}
	_, _ = io.WriteString(w, resp)
}

func validSignature(rec recordedRequest) bool {
	if rec.Header.Get("API-Key") != testAPIKey || !strings.HasPrefix(rec.Body, "nonce=") {
		return false
	}
	nonce, _, _ := strings.Cut(strings.TrimPrefix(rec.Body, "nonce="), "&")
	n, err := strconv.ParseUint(nonce, 10, 64)
	if err != nil {
		return false
	}
	want, err := SignBase64(testAPISecret, rec.Endpoint, n, rec.Body)
	return err == nil && want == rec.Header.Get("API-Sign")
}

func (fk *fakeKraken) Requests() []recordedRequest {
	fk.mu.Lock()
	defer fk.mu.Unlock()
	out := make([]recordedRequest, len(fk.requests))
	copy(out, fk.requests)
	return out
}

// Last returns the most recent request and fails the test if there is none.
func (fk *fakeKraken) Last(t *testing.T) recordedRequest {
	t.Helper()
	reqs := fk.Requests()
	require.NotEmpty(t, reqs, "no request reached the server")
	return reqs[len(reqs)-1]
}

// client returns an authenticated client pointed at the fake server.
func (fk *fakeKraken) client(t *testing.T, options ...ClientOption) *KrakenClient {
	t.Helper()
	opts := append([]ClientOption{
		WithBaseURL(fk.URL + "/0"),
		WithHTTPClient(fk.Server.Client()),
		WithLogger(logger.Discard()),
	}, options...)
	kc, err := NewKrakenClient(testAPIKey, testAPISecret, opts...)
	require.NoError(t, err)
	return kc
}

func (fk *fakeKraken) publicClient(t *testing.T) *KrakenClient {
	t.Helper()
	kc, err := NewPublicClient(
		WithBaseURL(fk.URL+"/0"),
		WithHTTPClient(fk.Server.Client()),
		WithLogger(logger.Discard()),
	)
	require.NoError(t, err)
	return kc
}

func okBody(result string) string {
	return `{"error":[],"result":` + result + `}`
}
