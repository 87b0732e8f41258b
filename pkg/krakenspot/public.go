package krakenspot

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// #region Public Market Data endpoints

// Calls Kraken API public market data "Time" endpoint. Gets the server's time.
func (kc *KrakenClient) GetServerTime(ctx context.Context) (*ServerTime, error) {
	serverTime, err := QueryPublic[ServerTime](ctx, kc, EndpointTime, nil)
	if err != nil {
		return nil, fmt.Errorf("error calling GetServerTime() | %w", err)
	}
	return serverTime, nil
}

// Calls Kraken API public market data "SystemStatus" endpoint. Gets the current
// system status or trading mode
func (kc *KrakenClient) GetSystemStatus(ctx context.Context) (*SystemStatus, error) {
	status, err := QueryPublic[SystemStatus](ctx, kc, EndpointSystemStatus, nil)
	if err != nil {
		return nil, fmt.Errorf("error calling GetSystemStatus() | %w", err)
	}
	return status, nil
}

// Calls Kraken API public market data "SystemStatus" endpoint and returns true
// if system is online. Returns false and the current status otherwise.
//
// # Example Usage:
//
//	online, status, err := kc.SystemIsOnline(ctx)
//	if err != nil {
//		log.Println(err)
//	}
//	if !online {
//		log.Println("kraken is", status)
//	}
func (kc *KrakenClient) SystemIsOnline(ctx context.Context) (bool, string, error) {
	systemStatus, err := kc.GetSystemStatus(ctx)
	if err != nil {
		return false, "", err
	}
	return systemStatus.Status == "online", systemStatus.Status, nil
}

// Calls Kraken API public market data "Assets" endpoint. Gets information about
// all assets that are available for deposit, withdrawal, trading and staking.
// The map is keyed by Kraken's asset name, e.g. "XXBT".
func (kc *KrakenClient) GetAllAssetInfo(ctx context.Context) (map[string]AssetInfo, error) {
	resp, err := kc.doPublic(ctx, EndpointAssets, nil)
	if err != nil {
		return nil, fmt.Errorf("error calling GetAllAssetInfo() | %w", err)
	}
	assets := make(map[string]AssetInfo, assetsMapSize)
	if err := resp.Decode(&assets); err != nil {
		return nil, err
	}
	for ticker, info := range assets {
		info.Ticker = ticker
		assets[ticker] = info
	}
	return assets, nil
}

// Calls Kraken API public market data "Assets" endpoint. Returns a slice of
// strings of all assets' names, sorted.
func (kc *KrakenClient) ListAssets(ctx context.Context) ([]string, error) {
	assets, err := kc.GetAllAssetInfo(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(assets))
	for name := range assets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Calls Kraken API public market data "Assets" endpoint. Gets information about
// specific asset passed to arg 'asset'. Kraken accepts the asset's altname as
// well, so "BTC" and "XXBT" both work.
func (kc *KrakenClient) GetAssetInfo(ctx context.Context, asset string) (*AssetInfo, error) {
	if asset == "" {
		return nil, fmt.Errorf("%w; empty asset", ErrInvalidArg)
	}
	query := NewPayload()
	query.Add("asset", asset)
	resp, err := kc.doPublic(ctx, EndpointAssets, query)
	if err != nil {
		return nil, fmt.Errorf("error calling GetAssetInfo() | %w", err)
	}
	assets := make(map[string]AssetInfo, 1)
	if err := resp.Decode(&assets); err != nil {
		return nil, err
	}
	for ticker, info := range assets {
		info.Ticker = ticker
		return &info, nil
	}
	return nil, fmt.Errorf("%w; asset %s not found in response", ErrUnexpectedJSONInput, asset)
}

// Calls Kraken API public market data "AssetPairs" endpoint. Gets information
// about tradeable asset pairs. Passing no 'pair' returns every pair.
//
// # Example Usage:
//
//	pairs, err := kc.GetTradeablePairsInfo(ctx, "XXBTZUSD", "XETHZUSD")
func (kc *KrakenClient) GetTradeablePairsInfo(ctx context.Context, pair ...string) (map[string]AssetPairInfo, error) {
	var query *Payload
	capacity := pairsMapSize
	if len(pair) > 0 {
		query = NewPayload()
		query.Add("pair", strings.Join(pair, ","))
		capacity = len(pair)
	}
	resp, err := kc.doPublic(ctx, EndpointAssetPairs, query)
	if err != nil {
		return nil, fmt.Errorf("error calling GetTradeablePairsInfo() | %w", err)
	}
	pairs := make(map[string]AssetPairInfo, capacity)
	if err := resp.Decode(&pairs); err != nil {
		return nil, err
	}
	for ticker, info := range pairs {
		info.Ticker = ticker
		pairs[ticker] = info
	}
	return pairs, nil
}

// Calls Kraken API public market data "AssetPairs" endpoint. Returns a sorted
// slice of all tradeable pair names.
func (kc *KrakenClient) ListTradeablePairs(ctx context.Context) ([]string, error) {
	pairs, err := kc.GetTradeablePairsInfo(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(pairs))
	for name := range pairs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Calls Kraken API public market data "Ticker" endpoint. Gets ticker info for
// one or more pairs passed to arg 'pair'.
//
// Note: Today's prices start at midnight UTC
func (kc *KrakenClient) GetTickerInfo(ctx context.Context, pair ...string) (map[string]TickerInfo, error) {
	if len(pair) == 0 {
		return nil, fmt.Errorf("%w; at least one pair required, use GetAllTickerInfo() for all pairs", ErrInvalidArg)
	}
	query := NewPayload()
	query.Add("pair", strings.Join(pair, ","))
	return kc.getTickers(ctx, query, len(pair))
}

// Calls Kraken API public market data "Ticker" endpoint. Gets ticker info for
// all tradeable pairs.
//
// Note: Today's prices start at midnight UTC
func (kc *KrakenClient) GetAllTickerInfo(ctx context.Context) (map[string]TickerInfo, error) {
	return kc.getTickers(ctx, nil, tickersMapSize)
}

func (kc *KrakenClient) getTickers(ctx context.Context, query *Payload, capacity int) (map[string]TickerInfo, error) {
	resp, err := kc.doPublic(ctx, EndpointTicker, query)
	if err != nil {
		return nil, fmt.Errorf("error calling Ticker endpoint | %w", err)
	}
	tickers := make(map[string]TickerInfo, capacity)
	if err := resp.Decode(&tickers); err != nil {
		return nil, err
	}
	for ticker, info := range tickers {
		info.Ticker = ticker
		tickers[ticker] = info
	}
	return tickers, nil
}

// Calls Kraken API public market data "Ticker" and "AssetPairs" endpoints.
// Returns a slice of tickers sorted descending by their last 24 hour volume
// normalized to USD. Pairs that cannot be priced in USD are left out. Passing
// a value to 'num' returns at most 'num' entries.
func (kc *KrakenClient) ListTopVolumeLast24Hours(ctx context.Context, num ...uint16) ([]TickerVolume, error) {
	if len(num) > 1 {
		return nil, fmt.Errorf("%w; expected 0 or 1 'num' args", ErrTooManyArgs)
	}
	tickers, err := kc.GetAllTickerInfo(ctx)
	if err != nil {
		return nil, err
	}
	allPairs, err := kc.GetTradeablePairsInfo(ctx)
	if err != nil {
		return nil, err
	}
	topVolumeTickers := rankUSDVolume(tickers, allPairs)
	if len(num) > 0 && int(num[0]) < len(topVolumeTickers) {
		topVolumeTickers = topVolumeTickers[:num[0]]
	}
	return topVolumeTickers, nil
}

var usdEquivalents = map[string]bool{
	"DAI":   true,
	"PYUSD": true,
	"USDC":  true,
	"USDT":  true,
	"ZUSD":  true,
}

// rankUSDVolume converts every pair's 24 hour base volume into USD, using the
// pair's own VWAP when it is quoted in a USD equivalent, or the VWAP of the
// base asset's USD pair otherwise.
func rankUSDVolume(tickers map[string]TickerInfo, pairs map[string]AssetPairInfo) []TickerVolume {
	ranked := make([]TickerVolume, 0, len(tickers))
	for ticker, info := range tickers {
		pair, ok := pairs[ticker]
		if !ok {
			continue
		}
		volume, err := strconv.ParseFloat(info.Volume.Last24Hours, 64)
		if err != nil {
			continue
		}
		switch {
		case usdEquivalents[pair.Quote]:
			vwap, err := strconv.ParseFloat(info.VWAP.Last24Hours, 64)
			if err != nil {
				continue
			}
			ranked = append(ranked, TickerVolume{Ticker: ticker, Volume: volume * vwap})
		case pair.Base == "ZUSD":
			ranked = append(ranked, TickerVolume{Ticker: ticker, Volume: volume})
		default:
			for _, usdPair := range []string{pair.Base + "ZUSD", pair.Base + "USD"} {
				ref, ok := tickers[usdPair]
				if !ok {
					continue
				}
				vwap, err := strconv.ParseFloat(ref.VWAP.Last24Hours, 64)
				if err != nil {
					break
				}
				ranked = append(ranked, TickerVolume{Ticker: ticker, Volume: volume * vwap})
				break
			}
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Volume > ranked[j].Volume
	})
	return ranked
}

// Calls Kraken API public market data "OHLC" endpoint. Gets OHLC data for
// specified pair of the required interval (in minutes).
//
// Accepts optional arg 'since' as a start time in Unix. The still-open frame
// is always returned in OHLCResp.Current regardless of 'since'.
//
// # Enum:
//
// 'interval': 1, 5, 15, 30, 60, 240, 1440, 10080, 21600
func (kc *KrakenClient) GetOHLC(ctx context.Context, pair string, interval uint16, since ...uint64) (*OHLCResp, error) {
	if len(since) > 1 {
		return nil, fmt.Errorf("%w; expected 0 or 1 'since' args", ErrTooManyArgs)
	}
	if !validOHLCInterval[interval] {
		return nil, fmt.Errorf("%w; invalid interval %d, check enum", ErrInvalidArg, interval)
	}
	query := NewPayload()
	query.Add("pair", pair)
	query.AddInt("interval", int64(interval))
	if len(since) > 0 {
		query.Add("since", strconv.FormatUint(since[0], 10))
	}
	ohlc, err := QueryPublic[OHLCResp](ctx, kc, EndpointOHLC, query)
	if err != nil {
		return nil, fmt.Errorf("error calling GetOHLC() | %w", err)
	}
	return ohlc, nil
}

var validOHLCInterval = map[uint16]bool{
	1:     true,
	5:     true,
	15:    true,
	30:    true,
	60:    true,
	240:   true,
	1440:  true,
	10080: true,
	21600: true,
}

// Calls Kraken API public market data "Depth" endpoint. Gets arrays of bids and
// asks for arg 'pair'. Optional arg 'count' limits the number of levels on each
// side. Kraken defaults to 100.
//
// # Enum:
//
// 'count': [1..500]
func (kc *KrakenClient) GetOrderBook(ctx context.Context, pair string, count ...uint16) (*OrderBook, error) {
	if len(count) > 1 {
		return nil, fmt.Errorf("%w; expected 0 or 1 'count' args", ErrTooManyArgs)
	}
	query := NewPayload()
	query.Add("pair", pair)
	if len(count) > 0 {
		if count[0] < 1 || count[0] > 500 {
			return nil, fmt.Errorf("%w; invalid number passed to 'count', check enum", ErrInvalidArg)
		}
		query.AddInt("count", int64(count[0]))
	}
	books, err := QueryPublic[map[string]OrderBook](ctx, kc, EndpointDepth, query)
	if err != nil {
		return nil, fmt.Errorf("error calling GetOrderBook() | %w", err)
	}
	for ticker, book := range *books {
		book.Ticker = ticker
		return &book, nil
	}
	return nil, fmt.Errorf("%w; no book in response", ErrUnexpectedJSONInput)
}

// Calls Kraken API public market data "Trades" endpoint. Gets the most recent
// trades for arg 'pair'. Optional arg 'count' limits the number returned.
//
// # Enum:
//
// 'count': [1..1000]
func (kc *KrakenClient) GetTrades(ctx context.Context, pair string, count ...uint16) (*TradesResp, error) {
	if len(count) > 1 {
		return nil, fmt.Errorf("%w; expected 0 or 1 'count' args", ErrTooManyArgs)
	}
	return kc.getTrades(ctx, pair, 0, count)
}

// Calls Kraken API public market data "Trades" endpoint. Gets trades after
// unix timestamp 'since' for arg 'pair'. Use TradesResp.Last as the next
// 'since' to page forward.
func (kc *KrakenClient) GetTradesSince(ctx context.Context, pair string, since uint64, count ...uint16) (*TradesResp, error) {
	if len(count) > 1 {
		return nil, fmt.Errorf("%w; expected 0 or 1 'count' args", ErrTooManyArgs)
	}
	return kc.getTrades(ctx, pair, since, count)
}

func (kc *KrakenClient) getTrades(ctx context.Context, pair string, since uint64, count []uint16) (*TradesResp, error) {
	query := NewPayload()
	query.Add("pair", pair)
	if since > 0 {
		query.Add("since", strconv.FormatUint(since, 10))
	}
	if len(count) > 0 {
		if count[0] < 1 || count[0] > 1000 {
			return nil, fmt.Errorf("%w; invalid number passed to 'count', check enum", ErrInvalidArg)
		}
		query.AddInt("count", int64(count[0]))
	}
	trades, err := QueryPublic[TradesResp](ctx, kc, EndpointTrades, query)
	if err != nil {
		return nil, fmt.Errorf("error calling GetTrades() | %w", err)
	}
	return trades, nil
}

// Calls Kraken API public market data "Spread" endpoint. Gets the last ~200
// top-of-book spreads for arg 'pair'. Accepts optional arg 'since' as a start
// time in Unix.
func (kc *KrakenClient) GetSpread(ctx context.Context, pair string, since ...uint64) (*SpreadResp, error) {
	if len(since) > 1 {
		return nil, fmt.Errorf("%w; expected 0 or 1 'since' args", ErrTooManyArgs)
	}
	query := NewPayload()
	query.Add("pair", pair)
	if len(since) > 0 {
		query.Add("since", strconv.FormatUint(since[0], 10))
	}
	spread, err := QueryPublic[SpreadResp](ctx, kc, EndpointSpread, query)
	if err != nil {
		return nil, fmt.Errorf("error calling GetSpread() | %w", err)
	}
	return spread, nil
}

// #endregion
