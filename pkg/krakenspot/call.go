package krakenspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// The three call shapes below cover any endpoint, including ones without a
// typed wrapper in this package. Raw returns the whole response body, JSON
// returns the decoded "result" member, and the generic QueryPublic and
// QueryPrivate functions decode "result" into a caller supplied type. All of
// them return an *APIError when Kraken reports a failure.

// QueryPublicRaw calls public 'endpoint' and returns the response body
// unmodified.
func (kc *KrakenClient) QueryPublicRaw(ctx context.Context, endpoint string, query *Payload) (string, error) {
	resp, err := kc.doPublic(ctx, endpoint, query)
	if err != nil {
		return "", err
	}
	return resp.Raw, nil
}

// QueryPublicJSON calls public 'endpoint' and returns "result" decoded into
// generic JSON values. Numbers decode as json.Number.
func (kc *KrakenClient) QueryPublicJSON(ctx context.Context, endpoint string, query *Payload) (interface{}, error) {
	resp, err := kc.doPublic(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}
	return decodeGeneric(resp.Result)
}

// QueryPrivateRaw signs and calls private 'endpoint' and returns the response
// body unmodified.
func (kc *KrakenClient) QueryPrivateRaw(ctx context.Context, endpoint string, payload *Payload) (string, error) {
	resp, err := kc.doPrivate(ctx, endpoint, payload)
	if err != nil {
		return "", err
	}
	return resp.Raw, nil
}

// QueryPrivateJSON signs and calls private 'endpoint' and returns "result"
// decoded into generic JSON values.
func (kc *KrakenClient) QueryPrivateJSON(ctx context.Context, endpoint string, payload *Payload) (interface{}, error) {
	resp, err := kc.doPrivate(ctx, endpoint, payload)
	if err != nil {
		return nil, err
	}
	return decodeGeneric(resp.Result)
}

// QueryPublic calls public 'endpoint' and decodes "result" into a T.
//
// # Example Usage:
//
//	status, err := krakenspot.QueryPublic[krakenspot.SystemStatus](ctx, kc, krakenspot.EndpointSystemStatus, nil)
func QueryPublic[T any](ctx context.Context, kc *KrakenClient, endpoint string, query *Payload) (*T, error) {
	resp, err := kc.doPublic(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}
	var target T
	if err := resp.Decode(&target); err != nil {
		return nil, err
	}
	return &target, nil
}

// QueryPrivate signs and calls private 'endpoint' and decodes "result" into a T.
func QueryPrivate[T any](ctx context.Context, kc *KrakenClient, endpoint string, payload *Payload) (*T, error) {
	resp, err := kc.doPrivate(ctx, endpoint, payload)
	if err != nil {
		return nil, err
	}
	var target T
	if err := resp.Decode(&target); err != nil {
		return nil, err
	}
	return &target, nil
}

func decodeGeneric(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("error unmarshalling result | %w", err)
	}
	return v, nil
}
