package krakenspot

import (
	"encoding/json"
	"fmt"
)

// APIResponse is one classified round trip. Result holds the raw "result"
// member; Errors holds Kraken's error array, which is normally empty on
// success.
type APIResponse struct {
	Raw        string
	Result     json.RawMessage
	Errors     []string
	StatusCode int
}

// Decode unmarshals Result into 'target'.
func (r *APIResponse) Decode(target interface{}) error {
	if err := json.Unmarshal(r.Result, target); err != nil {
		return fmt.Errorf("%w; error unmarshalling result | %w", ErrUnexpectedJSONInput, err)
	}
	return nil
}

// Classify inspects a response body for the {"error": [...], "result": ...}
// envelope. A body with a "result" member is a success even when "error" is
// also present; a body without one is returned as an *APIError carrying the
// error array. Non-JSON bodies produce an *APIError wrapping
// ErrUnexpectedJSONInput.
func Classify(statusCode int, raw []byte) (*APIResponse, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, &APIError{
			StatusCode: statusCode,
			Raw:        string(raw),
			Err:        fmt.Errorf("%w | %w", ErrUnexpectedJSONInput, err),
		}
	}

	errs, err := parseErrorList(envelope["error"])
	if err != nil {
		return nil, &APIError{
			StatusCode: statusCode,
			Raw:        string(raw),
			Err:        err,
		}
	}

	result, ok := envelope["result"]
	if !ok {
		return nil, &APIError{
			StatusCode: statusCode,
			Errors:     errs,
			Raw:        string(raw),
		}
	}
	return &APIResponse{
		Raw:        string(raw),
		Result:     result,
		Errors:     errs,
		StatusCode: statusCode,
	}, nil
}

// parseErrorList accepts ["a", "b"] as well as batched [["a"], ["b", "c"]]
// forms and flattens nested arrays one level, preserving order. A missing or
// null member yields an empty list.
func parseErrorList(data json.RawMessage) ([]string, error) {
	errs := []string{}
	if len(data) == 0 || string(data) == "null" {
		return errs, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w; \"error\" is not an array | %w", ErrUnexpectedJSONInput, err)
	}
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			errs = append(errs, s)
			continue
		}
		var nested []json.RawMessage
		if err := json.Unmarshal(item, &nested); err != nil {
			errs = append(errs, string(item))
			continue
		}
		for _, n := range nested {
			if err := json.Unmarshal(n, &s); err == nil {
				errs = append(errs, s)
			} else {
				errs = append(errs, string(n))
			}
		}
	}
	return errs, nil
}
