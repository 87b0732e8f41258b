package krakenspot

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"strconv"
)

// Sign computes Kraken's API-Sign value before base64 encoding:
//
//	HMAC-SHA512(secret, "/0/private/" + endpoint + SHA256(nonce + encodedPayload))
//
// where nonce is written in decimal directly in front of the encoded payload.
func Sign(secret []byte, endpoint string, nonce uint64, encodedPayload string) []byte {
	sha := sha256.New()
	sha.Write([]byte(strconv.FormatUint(nonce, 10) + encodedPayload))
	shasum := sha.Sum(nil)

	mac := hmac.New(sha512.New, secret)
	mac.Write(append([]byte(signaturePathPrefix+endpoint), shasum...))
	return mac.Sum(nil)
}

// SignBase64 decodes 'secretBase64' and returns the base64 encoded signature
// sent in the API-Sign header. Returns ErrInvalidSecret if the secret does not
// decode.
func SignBase64(secretBase64, endpoint string, nonce uint64, encodedPayload string) (string, error) {
	secret, err := base64.StdEncoding.DecodeString(secretBase64)
	if err != nil {
		return "", fmt.Errorf("%w | %w", ErrInvalidSecret, err)
	}
	return base64.StdEncoding.EncodeToString(Sign(secret, endpoint, nonce, encodedPayload)), nil
}
