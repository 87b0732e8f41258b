package krakenspot

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/readysetliqd/kraken-sdk-go/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicRequest(t *testing.T) {
	fk := newFakeKraken(t, map[string]string{
		EndpointTicker: okBody(`{"XXBTZUSD":{"o":"30502.8"}}`),
	})
	kc := fk.publicClient(t)

	query := NewPayload()
	query.Add("pair", "XBTUSD")
	raw, err := kc.QueryPublicRaw(context.Background(), EndpointTicker, query)
	require.NoError(t, err)
	assert.JSONEq(t, okBody(`{"XXBTZUSD":{"o":"30502.8"}}`), raw)

	req := fk.Last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.False(t, req.Private)
	assert.Equal(t, "XBTUSD", req.Query.Get("pair"))
	assert.Empty(t, req.Header.Get("API-Sign"))
	assert.Empty(t, req.Header.Get("API-Key"))
	assert.Equal(t, defaultUserAgent, req.Header.Get("User-Agent"))
}

func TestPrivateRequest(t *testing.T) {
	fk := newFakeKraken(t, map[string]string{
		EndpointBalance: okBody(`{"ZUSD":"171288.6158","XXBT":"0.0011"}`),
	})
	kc := fk.client(t, WithUserAgent("test-agent"))

	payload := NewPayload()
	payload.Add("asset", "ZUSD")
	result, err := kc.QueryPrivateJSON(context.Background(), EndpointBalance, payload)
	require.NoError(t, err)
	balances, ok := result.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "171288.6158", balances["ZUSD"])

	req := fk.Last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.True(t, req.Private)
	assert.Equal(t, testAPIKey, req.Header.Get("API-Key"))
	assert.Equal(t, contentTypeForm, req.Header.Get("Content-Type"))
	assert.Equal(t, "test-agent", req.Header.Get("User-Agent"))
	assert.True(t, strings.HasPrefix(req.Body, "nonce="))
	assert.True(t, strings.HasSuffix(req.Body, "&asset=ZUSD"))
	assert.True(t, validSignature(req))

	// caller's payload is never given a nonce
	assert.Equal(t, "asset=ZUSD", payload.Encode())
}

func TestPrivateRequest_NilPayload(t *testing.T) {
	fk := newFakeKraken(t, map[string]string{
		EndpointBalance: okBody(`{}`),
	})
	kc := fk.client(t)
	_, err := kc.QueryPrivateRaw(context.Background(), EndpointBalance, nil)
	require.NoError(t, err)

	req := fk.Last(t)
	_, err = strconv.ParseUint(strings.TrimPrefix(req.Body, "nonce="), 10, 64)
	assert.NoError(t, err)
}

func TestPrivateRequest_NoCredentials(t *testing.T) {
	fk := newFakeKraken(t, nil)
	kc := fk.publicClient(t)
	assert.False(t, kc.HasCredentials())

	_, err := kc.QueryPrivateRaw(context.Background(), EndpointBalance, nil)
	assert.ErrorIs(t, err, ErrNoCredentials)
	_, err = kc.GetAccountBalances(context.Background())
	assert.ErrorIs(t, err, ErrNoCredentials)
	assert.Empty(t, fk.Requests())
}

func TestRequest_APIError(t *testing.T) {
	fk := newFakeKraken(t, map[string]string{
		EndpointAddOrder: `{"error":["EOrder:Insufficient funds"]}`,
		EndpointBalance:  `{"error":["EAPI:Invalid nonce"]}`,
	})
	kc := fk.client(t, WithDefaultErrorMessage("order rejected"))

	_, err := kc.QueryPrivateRaw(context.Background(), EndpointAddOrder, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, EndpointAddOrder, apiErr.Endpoint)
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
	assert.Equal(t, []string{"EOrder:Insufficient funds"}, apiErr.Errors)
	assert.True(t, strings.HasPrefix(err.Error(), "order rejected"))

	_, err = kc.QueryPrivateRaw(context.Background(), EndpointBalance, nil)
	assert.ErrorIs(t, err, ErrInvalidNonce)

	_, err = kc.QueryPublicRaw(context.Background(), "NoSuchEndpoint", nil)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestRequest_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	}))
	defer srv.Close()
	kc, err := NewPublicClient(WithBaseURL(srv.URL+"/0"), WithLogger(logger.Discard()))
	require.NoError(t, err)

	_, err = kc.GetServerTime(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedJSONInput)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "<html>bad gateway</html>", apiErr.Raw)
}

func TestRequest_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	kc, err := NewPublicClient(
		WithBaseURL(srv.URL+"/0"),
		WithTimeout(50*time.Millisecond),
		WithLogger(logger.Discard()),
	)
	require.NoError(t, err)

	start := time.Now()
	_, err = kc.QueryPublicRaw(context.Background(), EndpointTime, nil)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), time.Second)

	// caller deadline behaves the same way
	kc, err = NewPublicClient(WithBaseURL(srv.URL+"/0"), WithLogger(logger.Discard()))
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = kc.QueryPublicRaw(ctx, EndpointTime, nil)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestRequest_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	kc, err := NewPublicClient(WithBaseURL(url+"/0"), WithLogger(logger.Discard()))
	require.NoError(t, err)
	_, err = kc.QueryPublicRaw(context.Background(), EndpointTime, nil)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestPrivateRequest_ConcurrentNonces(t *testing.T) {
	fk := newFakeKraken(t, map[string]string{
		EndpointBalance: okBody(`{}`),
	})
	kc := fk.client(t)

	const calls = 100
	var wg sync.WaitGroup
	errs := make(chan error, calls)
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := kc.QueryPrivateRaw(context.Background(), EndpointBalance, nil)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nonces := make(map[string]struct{}, calls)
	for _, req := range fk.Requests() {
		assert.True(t, validSignature(req))
		nonces[req.Form().Get("nonce")] = struct{}{}
	}
	assert.Len(t, nonces, calls)
}

func TestQueryGeneric(t *testing.T) {
	fk := newFakeKraken(t, map[string]string{
		EndpointSystemStatus: okBody(`{"status":"online","timestamp":"2023-07-06T18:52:00Z"}`),
		EndpointTime:         okBody(`{"unixtime":1688669448,"rfc1123":"Thu, 06 Jul 23 18:50:48 +0000"}`),
		EndpointTradeBalance: okBody(`{"eb":"1101.3425","tb":"392.2264"}`),
	})
	kc := fk.client(t)

	status, err := QueryPublic[SystemStatus](context.Background(), kc, EndpointSystemStatus, nil)
	require.NoError(t, err)
	assert.Equal(t, "online", status.Status)

	generic, err := kc.QueryPublicJSON(context.Background(), EndpointTime, nil)
	require.NoError(t, err)
	assert.Equal(t, json.Number("1688669448"), generic.(map[string]interface{})["unixtime"])

	tb, err := QueryPrivate[TradeBalance](context.Background(), kc, EndpointTradeBalance, nil)
	require.NoError(t, err)
	assert.Equal(t, "392.2264", tb.TradeBalance)

	_, err = QueryPublic[[]string](context.Background(), kc, EndpointSystemStatus, nil)
	assert.ErrorIs(t, err, ErrUnexpectedJSONInput)
}
