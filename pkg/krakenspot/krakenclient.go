// Package krakenspot is a client for the Kraken Spot Exchange REST API. It
// wraps the public market data endpoints and the private account, trading,
// funding, staking and subaccount endpoints, signs private requests, and
// classifies every response against Kraken's {"error", "result"} envelope.
//
// The krakenclient.go file specifically contains the declaration of the
// client, its constructors and its functional options. Each KrakenClient owns
// exactly one set of credentials and one nonce generator; nothing is shared
// between clients through package state.
package krakenspot

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/readysetliqd/kraken-sdk-go/pkg/config"
	"github.com/readysetliqd/kraken-sdk-go/pkg/logger"
)

var sharedClient = &http.Client{
	// Overall request deadlines come from the per-call context; these bound
	// the individual phases of a connection.
	Transport: &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second, // Time spent establishing a TCP connection
			KeepAlive: 5 * time.Second, // Keep-alive period for an active network connection
		}).DialContext,
		TLSHandshakeTimeout:   5 * time.Second,  // Time spent performing the TLS handshake
		ResponseHeaderTimeout: 10 * time.Second, // Time spent reading the headers of the response
		ExpectContinueTimeout: 1 * time.Second,  // Time spent waiting for the server to respond to the "100-continue" request
	},
}

type KrakenClient struct {
	credentials         Credentials
	client              *http.Client
	baseURL             string
	wsURL               string
	userAgent           string
	defaultErrorMessage string
	timeout             time.Duration
	nonce               NonceGenerator
	limiter             *restLimiter
	logger              *logger.Log
	log                 *logger.Entry
}

// ClientOption configures a KrakenClient at construction.
type ClientOption func(kc *KrakenClient) error

// Creates new authenticated client KrakenClient for Kraken API with keys passed
// to args 'apiKey' and 'apiSecret'. The secret is the base64 string shown by
// Kraken when the key was created; an invalid secret returns ErrInvalidSecret
// and no client. Accepts any number of ClientOption args.
//
// # Example Usage:
//
//	kc, err := krakenspot.NewKrakenClient(apiKey, apiSecret,
//		krakenspot.WithTimeout(10*time.Second),
//		krakenspot.WithRateLimit(2),
//	)
func NewKrakenClient(apiKey, apiSecret string, options ...ClientOption) (*KrakenClient, error) {
	creds, err := NewCredentials(apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return newClient(creds, options)
}

// NewPublicClient creates a client without credentials. Public market data
// methods work normally; private methods return ErrNoCredentials without
// touching the network.
func NewPublicClient(options ...ClientOption) (*KrakenClient, error) {
	return newClient(Credentials{}, options)
}

// NewKrakenClientFromConfig builds a client from a loaded config.Config. A
// config without credentials yields a public client.
func NewKrakenClientFromConfig(cfg *config.Config) (*KrakenClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w; nil config", ErrInvalidArg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var options []ClientOption
	if cfg.Timeout > 0 {
		options = append(options, WithTimeout(cfg.RequestTimeout()))
	}
	if cfg.DefaultErrorMessage != "" {
		options = append(options, WithDefaultErrorMessage(cfg.DefaultErrorMessage))
	}
	if cfg.BaseURL != "" {
		options = append(options, WithBaseURL(cfg.BaseURL))
	}
	if cfg.UserAgent != "" {
		options = append(options, WithUserAgent(cfg.UserAgent))
	}
	if cfg.RateLimit {
		options = append(options, WithRateLimit(cfg.VerificationTier))
	}
	if cfg.LogFile != "" {
		l, err := logger.NewRotating(cfg.LogLevel, cfg.LogFile, 0, 3, 28)
		if err != nil {
			return nil, err
		}
		options = append(options, WithLogger(l))
	} else if cfg.LogLevel != "" {
		options = append(options, WithLogger(logger.New(cfg.LogLevel, nil)))
	}

	if !cfg.HasCredentials() {
		return NewPublicClient(options...)
	}
	return NewKrakenClient(cfg.APIKey, cfg.APISecret, options...)
}

func newClient(creds Credentials, options []ClientOption) (*KrakenClient, error) {
	kc := &KrakenClient{
		credentials:         creds,
		client:              sharedClient,
		baseURL:             baseURL,
		wsURL:               wsPrivateURL,
		userAgent:           defaultUserAgent,
		defaultErrorMessage: defaultErrorMessage,
		nonce:               NewNonceGenerator(),
	}
	kc.setLogger(logger.New("warn", nil))
	for _, option := range options {
		if err := option(kc); err != nil {
			return nil, err
		}
	}
	return kc, nil
}

// APIKey returns the public half of the client's credentials, or "" for a
// public client.
func (kc *KrakenClient) APIKey() string {
	return kc.credentials.APIKey()
}

// HasCredentials reports whether private endpoints can be called.
func (kc *KrakenClient) HasCredentials() bool {
	return !kc.credentials.empty()
}

// SetErrorLogger replaces the client's logger with a JSON logger writing to
// 'output' at warn level and returns it.
//
// # Example Usage:
//
//	file, err := os.OpenFile("log.txt", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//	logger := kc.SetErrorLogger(file)
func (kc *KrakenClient) SetErrorLogger(output io.Writer) *logger.Log {
	l := logger.New("warn", output)
	kc.setLogger(l)
	return l
}

func (kc *KrakenClient) setLogger(l *logger.Log) {
	kc.logger = l
	kc.log = l.WithComponent("krakenspot")
}

// #region Client options

// WithHTTPClient replaces the shared *http.Client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(kc *KrakenClient) error {
		if client == nil {
			return fmt.Errorf("%w; nil http client", ErrInvalidArg)
		}
		kc.client = client
		return nil
	}
}

// WithTimeout bounds every request, from dispatch through reading the body.
// An expired call fails with ErrTimeout. Zero disables the client-side bound.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(kc *KrakenClient) error {
		if timeout < 0 {
			return fmt.Errorf("%w; timeout cannot be negative", ErrInvalidArg)
		}
		kc.timeout = timeout
		return nil
	}
}

// WithBaseURL points the client at another API root, e.g. a test server.
// The root must include the version segment ("https://api.kraken.com/0").
func WithBaseURL(url string) ClientOption {
	return func(kc *KrakenClient) error {
		if url == "" {
			return fmt.Errorf("%w; empty base url", ErrInvalidArg)
		}
		kc.baseURL = strings.TrimSuffix(url, "/")
		return nil
	}
}

// WithWebSocketURL overrides the authenticated websocket endpoint used by
// ConnectPrivateFeed.
func WithWebSocketURL(url string) ClientOption {
	return func(kc *KrakenClient) error {
		if url == "" {
			return fmt.Errorf("%w; empty websocket url", ErrInvalidArg)
		}
		kc.wsURL = url
		return nil
	}
}

func WithUserAgent(userAgent string) ClientOption {
	return func(kc *KrakenClient) error {
		kc.userAgent = userAgent
		return nil
	}
}

// WithDefaultErrorMessage sets the message that prefixes every *APIError.
func WithDefaultErrorMessage(msg string) ClientOption {
	return func(kc *KrakenClient) error {
		kc.defaultErrorMessage = msg
		return nil
	}
}

func WithLogger(l *logger.Log) ClientOption {
	return func(kc *KrakenClient) error {
		if l == nil {
			return fmt.Errorf("%w; nil logger", ErrInvalidArg)
		}
		kc.setLogger(l)
		return nil
	}
}

// WithNonceGenerator replaces the default millisecond nonce source. The
// generator must stay strictly increasing for the key, including across
// clients that share the key.
func WithNonceGenerator(nonce NonceGenerator) ClientOption {
	return func(kc *KrakenClient) error {
		if nonce == nil {
			return fmt.Errorf("%w; nil nonce generator", ErrInvalidArg)
		}
		kc.nonce = nonce
		return nil
	}
}

// WithRateLimit makes the client wait before calls that would exceed
// Kraken's REST call counter for the account's verification tier. Only
// private endpoints count against it.
//
// Verification Tiers:
//
// 1. Starter
//
// 2. Intermediate
//
// 3. Pro
//
// # Enum:
//
// 'verificationTier': [1..3]
func WithRateLimit(verificationTier uint8) ClientOption {
	return func(kc *KrakenClient) error {
		rl, err := newRESTLimiter(verificationTier)
		if err != nil {
			return err
		}
		kc.limiter = rl
		return nil
	}
}

// #endregion
