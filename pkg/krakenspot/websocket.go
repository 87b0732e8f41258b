// The websocket.go file handles the authenticated websocket feed. The REST
// "GetWebSocketsToken" endpoint issues the token; ConnectPrivateFeed dials
// Kraken's authenticated websocket server, subscribes to the requested
// private channels with that token and delivers every non-heartbeat frame on
// a channel.
package krakenspot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/readysetliqd/kraken-sdk-go/pkg/logger"
)

// Private channel names
const (
	ChannelOwnTrades  = "ownTrades"
	ChannelOpenOrders = "openOrders"
)

const (
	// Kraken sends a heartbeat about once a second when no other traffic is
	// flowing; a silent connection past this delay is treated as dead.
	feedReadTimeout  = 10 * time.Second
	feedWriteTimeout = 5 * time.Second
	feedBufferSize   = 256
)

var heartbeat = []byte(`{"event":"heartbeat"}`)

var privateChannelNames = map[string]bool{
	ChannelOwnTrades:  true,
	ChannelOpenOrders: true,
}

// ErrFeedClosed is returned by PrivateFeed methods after Close.
var ErrFeedClosed = errors.New("private feed closed")

// #region WebSocket token

// Calls Kraken API private Websocket "GetWebSocketsToken" endpoint. The token
// must be used within 15 minutes of creation; once a connection has
// subscribed with it the token does not expire while the connection stays
// open.
//
// # Required Permissions:
//
// WebSockets interface - On;
func (kc *KrakenClient) GetWebSocketsToken(ctx context.Context) (*WebSocketsToken, error) {
	token, err := QueryPrivate[WebSocketsToken](ctx, kc, EndpointGetWebSocketsToken, nil)
	if err != nil {
		return nil, fmt.Errorf("error calling GetWebSocketsToken() | %w", err)
	}
	return token, nil
}

// #endregion

// #region Private feed

// FeedMessage is one frame from the authenticated websocket. Channel data
// frames ("ownTrades", "openOrders") have Channel, Sequence and Data set.
// Event frames ("systemStatus", "subscriptionStatus", "pong") have Event set
// and Data holds the whole object.
type FeedMessage struct {
	Channel  string
	Event    string
	Sequence int
	Data     json.RawMessage
}

// OwnTrades decodes an "ownTrades" frame.
func (m FeedMessage) OwnTrades() ([]map[string]WSOwnTrade, error) {
	if m.Channel != ChannelOwnTrades {
		return nil, fmt.Errorf("%w; frame is %q, not ownTrades", ErrInvalidArg, m.Channel)
	}
	var trades []map[string]WSOwnTrade
	if err := json.Unmarshal(m.Data, &trades); err != nil {
		return nil, fmt.Errorf("%w | %w", ErrUnexpectedJSONInput, err)
	}
	return trades, nil
}

// OpenOrders decodes an "openOrders" frame. Updates after the first snapshot
// only carry the fields that changed.
func (m FeedMessage) OpenOrders() ([]map[string]WSOpenOrder, error) {
	if m.Channel != ChannelOpenOrders {
		return nil, fmt.Errorf("%w; frame is %q, not openOrders", ErrInvalidArg, m.Channel)
	}
	var orders []map[string]WSOpenOrder
	if err := json.Unmarshal(m.Data, &orders); err != nil {
		return nil, fmt.Errorf("%w | %w", ErrUnexpectedJSONInput, err)
	}
	return orders, nil
}

// SubscriptionStatus decodes a "subscriptionStatus" event frame.
func (m FeedMessage) SubscriptionStatus() (*WSSubscriptionStatus, error) {
	if m.Event != "subscriptionStatus" {
		return nil, fmt.Errorf("%w; frame is %q, not subscriptionStatus", ErrInvalidArg, m.Event)
	}
	var status WSSubscriptionStatus
	if err := json.Unmarshal(m.Data, &status); err != nil {
		return nil, fmt.Errorf("%w | %w", ErrUnexpectedJSONInput, err)
	}
	return &status, nil
}

type WSOwnTrade struct {
	OrderTxID     string `json:"ordertxid"`
	PositionTxID  string `json:"postxid"`
	Pair          string `json:"pair"`
	Time          string `json:"time"`
	Direction     string `json:"type"`
	OrderType     string `json:"ordertype"`
	AvgPrice      string `json:"price"`
	QuoteCost     string `json:"cost"`
	QuoteFee      string `json:"fee"`
	Volume        string `json:"vol"`
	InitialMargin string `json:"margin"`
	UserRef       int32  `json:"userref"`
	ClientOrderID string `json:"cl_ord_id"`
}

type WSOpenOrder struct {
	RefID          string           `json:"refid"`
	UserRef        int              `json:"userref"`
	ClientOrderID  string           `json:"cl_ord_id"`
	Status         string           `json:"status"`
	OpenTime       string           `json:"opentm"`
	StartTime      string           `json:"starttm"`
	ExpireTime     string           `json:"expiretm"`
	Description    OrderDescription `json:"descr"`
	LastUpdateTime string           `json:"lastupdated"`
	Volume         string           `json:"vol"`
	VolumeExecuted string           `json:"vol_exec"`
	QuoteCost      string           `json:"cost"`
	QuoteFee       string           `json:"fee"`
	AvgPrice       string           `json:"avg_price"`
	StopPrice      string           `json:"stopprice"`
	LimitPrice     string           `json:"limitprice"`
	Misc           string           `json:"misc"`
	OrderFlags     string           `json:"oflags"`
	TimeInForce    string           `json:"timeinforce"`
	CancelReason   string           `json:"cancel_reason"`
}

type WSSubscriptionStatus struct {
	ChannelName  string                 `json:"channelName"`
	Event        string                 `json:"event"`
	Status       string                 `json:"status"`
	Subscription map[string]interface{} `json:"subscription"`
	ErrorMessage string                 `json:"errorMessage,omitempty"`
	ReqID        int                    `json:"reqid,omitempty"`
}

// PrivateFeed is a live authenticated websocket connection. Read frames from
// Messages() until it is closed, then check Err() for the reason.
type PrivateFeed struct {
	conn     *websocket.Conn
	messages chan FeedMessage
	log      *logger.Entry

	writeMu   sync.Mutex
	closeOnce sync.Once
	done      chan struct{}

	errMu sync.Mutex
	err   error
}

type wsSubscribe struct {
	Event        string             `json:"event"`
	Subscription wsSubscriptionBody `json:"subscription"`
}

type wsSubscriptionBody struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

// ConnectPrivateFeed requests a websocket token, dials Kraken's authenticated
// websocket server and subscribes to 'channels'. Subscribes to both
// "ownTrades" and "openOrders" when no channel is passed. 'ctx' bounds the
// token request, the dial and the subscription writes; the connection itself
// lives until Close() or until the server drops it.
//
// # Enum:
//
// 'channels': "ownTrades", "openOrders"
//
// # Example Usage:
//
//	feed, err := kc.ConnectPrivateFeed(ctx, krakenspot.ChannelOwnTrades)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer feed.Close()
//	for msg := range feed.Messages() {
//		if msg.Channel == krakenspot.ChannelOwnTrades {
//			trades, _ := msg.OwnTrades()
//			log.Println(trades)
//		}
//	}
//	log.Println(feed.Err())
func (kc *KrakenClient) ConnectPrivateFeed(ctx context.Context, channels ...string) (*PrivateFeed, error) {
	if len(channels) == 0 {
		channels = []string{ChannelOwnTrades, ChannelOpenOrders}
	}
	for _, ch := range channels {
		if !privateChannelNames[ch] {
			return nil, fmt.Errorf("%w; unknown private channel %q", ErrInvalidArg, ch)
		}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	token, err := kc.GetWebSocketsToken(ctx)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set("User-Agent", kc.userAgent)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, kc.wsURL, header)
	if err != nil {
		return nil, fmt.Errorf("%w | error dialing kraken | %w", ErrTransport, err)
	}
	feed := &PrivateFeed{
		conn:     conn,
		messages: make(chan FeedMessage, feedBufferSize),
		log:      kc.log.WithFields(logger.Fields{"feed": "private"}),
		done:     make(chan struct{}),
	}
	for _, ch := range channels {
		sub := wsSubscribe{
			Event:        "subscribe",
			Subscription: wsSubscriptionBody{Name: ch, Token: token.Token},
		}
		if err := feed.writeJSON(ctx, sub); err != nil {
			conn.Close()
			return nil, fmt.Errorf("error subscribing to %s | %w", ch, err)
		}
	}
	conn.SetReadDeadline(time.Now().Add(feedReadTimeout))
	go feed.readLoop()
	return feed, nil
}

// Messages returns the channel frames are delivered on. It is closed when the
// feed stops.
func (f *PrivateFeed) Messages() <-chan FeedMessage {
	return f.messages
}

// Err returns the error that stopped the feed, or nil if it was closed by
// Close() or is still running.
func (f *PrivateFeed) Err() error {
	f.errMu.Lock()
	defer f.errMu.Unlock()
	return f.err
}

// Ping sends a ping event; the server answers with a "pong" event frame.
func (f *PrivateFeed) Ping(ctx context.Context) error {
	return f.writeJSON(ctx, map[string]string{"event": "ping"})
}

// Close sends a close frame and tears down the connection. Safe to call more
// than once, and after the server has dropped the feed.
func (f *PrivateFeed) Close() error {
	var err error
	f.closeOnce.Do(func() {
		close(f.done)
		f.writeMu.Lock()
		f.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(feedWriteTimeout))
		f.writeMu.Unlock()
		// the read loop closes the connection itself when the server drops it
		if err = f.conn.Close(); errors.Is(err, net.ErrClosed) {
			err = nil
		}
	})
	return err
}

func (f *PrivateFeed) writeJSON(ctx context.Context, v interface{}) error {
	select {
	case <-f.done:
		return ErrFeedClosed
	default:
	}
	deadline := time.Now().Add(feedWriteTimeout)
	if ctx != nil {
		if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
			deadline = d
		}
	}
	f.writeMu.Lock()
	defer f.writeMu.Unlock()
	f.conn.SetWriteDeadline(deadline)
	if err := f.conn.WriteJSON(v); err != nil {
		return fmt.Errorf("%w | %w", ErrTransport, err)
	}
	return nil
}

func (f *PrivateFeed) readLoop() {
	defer close(f.messages)
	for {
		_, msg, err := f.conn.ReadMessage()
		if err != nil {
			select {
			case <-f.done:
				return
			default:
			}
			f.fail(err)
			return
		}
		// any frame proves the connection is alive
		f.conn.SetReadDeadline(time.Now().Add(feedReadTimeout))
		if bytes.Equal(bytes.TrimSpace(msg), heartbeat) {
			continue
		}
		feedMsg, err := parseFeedMessage(msg)
		if err != nil {
			f.log.WithError(err).Warn("dropping unparseable websocket frame")
			continue
		}
		if feedMsg.Event == "heartbeat" {
			continue
		}
		if feedMsg.Event == "subscriptionStatus" {
			if status, err := feedMsg.SubscriptionStatus(); err == nil && status.Status == "error" {
				f.log.WithFields(logger.Fields{"channel": status.ChannelName, "error": status.ErrorMessage}).Warn("subscription rejected")
			}
		}
		select {
		case f.messages <- feedMsg:
		case <-f.done:
			return
		}
	}
}

func (f *PrivateFeed) fail(err error) {
	if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		err = fmt.Errorf("%w | server closed connection", ErrFeedClosed)
	} else {
		err = fmt.Errorf("%w | %w", ErrTransport, err)
	}
	f.errMu.Lock()
	f.err = err
	f.errMu.Unlock()
	f.log.WithError(err).Error("private feed stopped")
	f.conn.Close()
}

// parseFeedMessage splits a raw frame into a FeedMessage. Channel frames are
// arrays of [data, channelName, {"sequence": n}]; everything else is an
// event object.
func parseFeedMessage(msg []byte) (FeedMessage, error) {
	msg = bytes.TrimSpace(msg)
	if len(msg) == 0 {
		return FeedMessage{}, fmt.Errorf("%w; empty frame", ErrUnexpectedJSONInput)
	}
	switch msg[0] {
	case '[':
		var parts []json.RawMessage
		if err := json.Unmarshal(msg, &parts); err != nil {
			return FeedMessage{}, fmt.Errorf("%w | %w", ErrUnexpectedJSONInput, err)
		}
		if len(parts) < 2 {
			return FeedMessage{}, fmt.Errorf("%w; channel frame with %d elements", ErrUnexpectedJSONInput, len(parts))
		}
		out := FeedMessage{Data: parts[0]}
		if err := json.Unmarshal(parts[1], &out.Channel); err != nil {
			return FeedMessage{}, fmt.Errorf("%w; channel name | %w", ErrUnexpectedJSONInput, err)
		}
		if len(parts) > 2 {
			var seq struct {
				Sequence int `json:"sequence"`
			}
			if err := json.Unmarshal(parts[2], &seq); err == nil {
				out.Sequence = seq.Sequence
			}
		}
		return out, nil
	case '{':
		var head struct {
			Event string `json:"event"`
		}
		if err := json.Unmarshal(msg, &head); err != nil {
			return FeedMessage{}, fmt.Errorf("%w | %w", ErrUnexpectedJSONInput, err)
		}
		return FeedMessage{Event: head.Event, Data: json.RawMessage(msg)}, nil
	default:
		return FeedMessage{}, fmt.Errorf("%w; unknown frame type", ErrUnexpectedJSONInput)
	}
}

// #endregion
