package krakenspot

import (
	"encoding/base64"
	"fmt"
)

// Credentials is an API key with its decoded secret. The zero value holds no
// credentials. Credentials never change after construction, so one value is
// safe to read from many goroutines.
type Credentials struct {
	apiKey    string
	apiSecret []byte
}

// NewCredentials decodes the base64 'apiSecret' issued by Kraken alongside
// 'apiKey'. Returns ErrInvalidSecret if the secret does not decode.
func NewCredentials(apiKey, apiSecret string) (Credentials, error) {
	decodedSecret, err := base64.StdEncoding.DecodeString(apiSecret)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w | %w", ErrInvalidSecret, err)
	}
	if apiKey == "" || len(decodedSecret) == 0 {
		return Credentials{}, fmt.Errorf("%w; api key and secret cannot be empty", ErrInvalidArg)
	}
	return Credentials{apiKey: apiKey, apiSecret: decodedSecret}, nil
}

func (c Credentials) APIKey() string {
	return c.apiKey
}

func (c Credentials) empty() bool {
	return c.apiKey == "" || len(c.apiSecret) == 0
}

// sign returns the base64 API-Sign header for one request.
func (c Credentials) sign(endpoint string, nonce uint64, encodedPayload string) (string, error) {
	if c.empty() {
		return "", ErrNoCredentials
	}
	return base64.StdEncoding.EncodeToString(Sign(c.apiSecret, endpoint, nonce, encodedPayload)), nil
}
