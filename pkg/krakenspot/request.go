package krakenspot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/readysetliqd/kraken-sdk-go/pkg/logger"
)

// doPublic sends an unsigned GET to <base>/public/<endpoint>. 'query' may be
// nil. Public calls do not count against the private call counter.
func (kc *KrakenClient) doPublic(ctx context.Context, endpoint string, query *Payload) (*APIResponse, error) {
	ctx, cancel := kc.withTimeout(ctx)
	defer cancel()

	reqURL := kc.baseURL + publicPrefix + endpoint
	if encoded := query.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error calling http.NewRequest() | %w", err)
	}
	req.Header.Set("User-Agent", kc.userAgent)
	return kc.dispatch(req, endpoint)
}

// doPrivate signs 'payload' and POSTs it to <base>/private/<endpoint>. A
// fresh nonce is placed at the front of a copy of the payload, so the
// caller's payload is never modified and a payload can be reused across
// calls. Signing failures return before anything is sent.
func (kc *KrakenClient) doPrivate(ctx context.Context, endpoint string, payload *Payload) (*APIResponse, error) {
	if kc.credentials.empty() {
		return nil, ErrNoCredentials
	}
	ctx, cancel := kc.withTimeout(ctx)
	defer cancel()

	if err := kc.limiter.wait(ctx, endpoint); err != nil {
		return nil, kc.transportError(ctx, endpoint, err)
	}

	nonce := kc.nonce.Next()
	body := payload.withNonce(nonce).Encode()
	signature, err := kc.credentials.sign(endpoint, nonce, body)
	if err != nil {
		return nil, fmt.Errorf("error signing request | %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, kc.baseURL+privatePrefix+endpoint, strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error calling http.NewRequest() | %w", err)
	}
	req.Header.Set("API-Key", kc.credentials.APIKey())
	req.Header.Set("API-Sign", signature)
	req.Header.Set("Content-Type", contentTypeForm)
	req.Header.Set("User-Agent", kc.userAgent)
	return kc.dispatch(req, endpoint)
}

// dispatch sends 'req', reads the whole body and classifies it.
func (kc *KrakenClient) dispatch(req *http.Request, endpoint string) (*APIResponse, error) {
	ctx := req.Context()
	start := time.Now()
	res, err := kc.client.Do(req)
	if err != nil {
		return nil, kc.transportError(ctx, endpoint, err)
	}
	defer res.Body.Close()

	msg, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, kc.transportError(ctx, endpoint, err)
	}
	logger.LogRequestEntry(kc.log, req.Method, endpoint, res.StatusCode, time.Since(start))

	resp, err := Classify(res.StatusCode, msg)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			apiErr.Endpoint = endpoint
			apiErr.Message = kc.defaultErrorMessage
			kc.log.WithFields(logger.Fields{
				"endpoint": endpoint,
				"status":   res.StatusCode,
				"errors":   apiErr.Errors,
			}).Warn("kraken api returned error")
		}
		return nil, err
	}
	return resp, nil
}

func (kc *KrakenClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if kc.timeout > 0 {
		return context.WithTimeout(ctx, kc.timeout)
	}
	return context.WithCancel(ctx)
}

// transportError wraps a failure that happened before a response was read.
// Deadline expiry maps to ErrTimeout; everything else maps to ErrTransport.
func (kc *KrakenClient) transportError(ctx context.Context, endpoint string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		err = fmt.Errorf("%w | endpoint: %s | %w", ErrTimeout, endpoint, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		err = fmt.Errorf("%w | endpoint: %s | %w", ErrTimeout, endpoint, err)
	case strings.Contains(err.Error(), "no such host") && strings.Contains(err.Error(), "lookup"):
		err = fmt.Errorf("%w | %w | endpoint: %s | %w", ErrTransport, errNoInternetConnection, endpoint, err)
	default:
		err = fmt.Errorf("%w | endpoint: %s | %w", ErrTransport, endpoint, err)
	}
	kc.log.WithError(err).WithFields(logger.Fields{"endpoint": endpoint}).Error("request failed")
	return err
}
