package krakenspot

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// #region Authenticated Account Data endpoints

// Calls Kraken API private Account Data "Balance" endpoint. Returns map of all
// "cash" (including coins) balances, net of pending withdrawals as strings
//
// # Required Permissions:
//
// Funding Permissions - Query;
func (kc *KrakenClient) GetAccountBalances(ctx context.Context) (map[string]string, error) {
	balances, err := QueryPrivate[map[string]string](ctx, kc, EndpointBalance, nil)
	if err != nil {
		return nil, fmt.Errorf("error calling GetAccountBalances() | %w", err)
	}
	return *balances, nil
}

// Calls Kraken API private Account Data "Balance" endpoint. Returns total USD
// balance "ZUSD". An account without a ZUSD entry has a zero balance.
//
// # Required Permissions:
//
// Funding Permissions - Query;
func (kc *KrakenClient) TotalUSDBalance(ctx context.Context) (decimal.Decimal, error) {
	balances, err := kc.GetAccountBalances(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	usd, ok := balances["ZUSD"]
	if !ok {
		return decimal.Zero, nil
	}
	usdBal, err := decimal.NewFromString(usd)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w; ZUSD balance %q | %w", ErrUnexpectedJSONInput, usd, err)
	}
	return usdBal, nil
}

// Calls Kraken API private Account Data "BalanceEx" endpoint. Returns map of all
// extended account balances, including credits and held amounts.
//
// # Required Permissions:
//
// Funding Permissions - Query;
func (kc *KrakenClient) GetExtendedBalances(ctx context.Context) (map[string]ExtendedBalance, error) {
	balances, err := QueryPrivate[map[string]ExtendedBalance](ctx, kc, EndpointBalanceEx, nil)
	if err != nil {
		return nil, fmt.Errorf("error calling GetExtendedBalances() | %w", err)
	}
	return *balances, nil
}

// Available returns the balance available for trading, calculated as:
// available balance = balance + credit - credit_used - hold_trade. Empty
// fields count as zero.
func (b ExtendedBalance) Available() (decimal.Decimal, error) {
	total := decimal.Zero
	for i, field := range []string{b.Balance, b.Credit, b.CreditUsed, b.HoldTrade} {
		if field == "" {
			continue
		}
		d, err := decimal.NewFromString(field)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w; balance field %q | %w", ErrUnexpectedJSONInput, field, err)
		}
		if i < 2 {
			total = total.Add(d)
		} else {
			total = total.Sub(d)
		}
	}
	return total, nil
}

// Calls Kraken API private Account Data "BalanceEx" endpoint and public
// "Assets" endpoint. Returns map of all available account balances rounded
// to each asset's decimals. Balance available for trading is calculated as:
// available balance = balance + credit - credit_used - hold_trade
//
// # Required Permissions:
//
// Funding Permissions - Query;
func (kc *KrakenClient) GetAvailableBalances(ctx context.Context) (map[string]decimal.Decimal, error) {
	balances, err := kc.GetExtendedBalances(ctx)
	if err != nil {
		return nil, err
	}
	assets, err := kc.GetAllAssetInfo(ctx)
	if err != nil {
		return nil, err
	}
	availableBalances := make(map[string]decimal.Decimal, len(balances))
	for coin, balance := range balances {
		available, err := balance.Available()
		if err != nil {
			return nil, err
		}
		if asset, ok := assets[coin]; ok {
			available = available.Round(int32(asset.Decimals))
		}
		availableBalances[coin] = available
	}
	return availableBalances, nil
}

// Calls Kraken API private Account Data "BalanceEx" endpoint. Returns available
// USD (ZUSD) account balance rounded to 4 decimals.
//
// # Required Permissions:
//
// Funding Permissions - Query;
func (kc *KrakenClient) AvailableUSDBalance(ctx context.Context) (decimal.Decimal, error) {
	balances, err := kc.GetExtendedBalances(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	available, err := balances["ZUSD"].Available()
	if err != nil {
		return decimal.Zero, err
	}
	return available.Round(usdDecimals), nil
}

// Calls Kraken API private Account Data "TradeBalance" endpoint. Returns a summary
// of collateral balances, margin position valuations, equity and margin level
// denominated in arg 'asset'. Passing no arg to 'asset' defaults to USD (ZUSD)
// denomination.
//
// # Required Permissions:
//
// Funding Permissions - Query;
//
// Order and Trades - Query open orders & trades
func (kc *KrakenClient) GetTradeBalance(ctx context.Context, asset ...string) (*TradeBalance, error) {
	if len(asset) > 1 {
		return nil, fmt.Errorf("%w; expected 0 or 1 'asset' args", ErrTooManyArgs)
	}
	payload := NewPayload()
	if len(asset) > 0 {
		payload.Add("asset", asset[0])
	}
	balance, err := QueryPrivate[TradeBalance](ctx, kc, EndpointTradeBalance, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling GetTradeBalance() | %w", err)
	}
	return balance, nil
}

// Calls Kraken API private Account Data "OpenOrders" endpoint. Retrieves
// information for all currently open orders. Accepts functional options args
// 'options'.
//
// # Required Permissions:
//
// Order and Trades - Query open orders & trades;
//
// # Functional Options:
//
//	func OOWithTrades(trades bool) GetOpenOrdersOption
//	func OOWithUserRef(userRef int) GetOpenOrdersOption
//	func OOWithClientOrderID(clOrdID string) GetOpenOrdersOption
//
// # Example Usage:
//
//	orders, err := kc.GetOpenOrders(ctx, krakenspot.OOWithTrades(true), krakenspot.OOWithUserRef(123))
func (kc *KrakenClient) GetOpenOrders(ctx context.Context, options ...GetOpenOrdersOption) (*OpenOrdersResp, error) {
	payload := NewPayload()
	for _, option := range options {
		option(payload)
	}
	openOrders, err := QueryPrivate[OpenOrdersResp](ctx, kc, EndpointOpenOrders, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling GetOpenOrders() | %w", err)
	}
	return openOrders, nil
}

// Calls Kraken API private Account Data "ClosedOrders" endpoint. Retrieves
// information for most recent closed orders, 50 at a time. Use COWithOffset()
// to page through older results.
//
// # Required Permissions:
//
// Order and Trades - Query closed orders & trades;
//
// # Functional Options:
//
//	func COWithTrades(trades bool) GetClosedOrdersOption
//	func COWithUserRef(userRef int) GetClosedOrdersOption
//	func COWithStart(start int) GetClosedOrdersOption
//	func COWithEnd(end int) GetClosedOrdersOption
//	func COWithOffset(offset int) GetClosedOrdersOption
//	func COWithCloseTime(closeTime string) GetClosedOrdersOption
//	func COWithConsolidateTaker(consolidateTaker bool) GetClosedOrdersOption
func (kc *KrakenClient) GetClosedOrders(ctx context.Context, options ...GetClosedOrdersOption) (*ClosedOrdersResp, error) {
	payload := NewPayload()
	for _, option := range options {
		option(payload)
	}
	closedOrders, err := QueryPrivate[ClosedOrdersResp](ctx, kc, EndpointClosedOrders, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling GetClosedOrders() | %w", err)
	}
	return closedOrders, nil
}

// Calls Kraken API private Account Data "QueryOrders" endpoint. Retrieves
// information about the orders with transaction ids passed to 'txID'. Up to 50
// ids may be passed.
//
// # Required Permissions:
//
// Order and Trades - Query open orders & trades;
//
// Order and Trades - Query closed orders & trades;
func (kc *KrakenClient) GetOrdersInfo(ctx context.Context, txIDs []string, options ...GetOrdersInfoOption) (map[string]Order, error) {
	if len(txIDs) == 0 || len(txIDs) > 50 {
		return nil, fmt.Errorf("%w; between 1 and 50 txids required", ErrInvalidArg)
	}
	payload := NewPayload()
	payload.Add("txid", strings.Join(txIDs, ","))
	for _, option := range options {
		option(payload)
	}
	orders, err := QueryPrivate[map[string]Order](ctx, kc, EndpointQueryOrders, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling GetOrdersInfo() | %w", err)
	}
	return *orders, nil
}

// Calls Kraken API private Account Data "TradesHistory" endpoint. Retrieves
// information about trades/fills, 50 at a time, most recent first.
//
// # Required Permissions:
//
// Order and Trades - Query closed orders & trades;
//
// # Functional Options:
//
//	func THWithType(tradeType string) GetTradesHistoryOption
//	func THWithTrades(trades bool) GetTradesHistoryOption
//	func THWithStart(start int) GetTradesHistoryOption
//	func THWithEnd(end int) GetTradesHistoryOption
//	func THWithOffset(offset int) GetTradesHistoryOption
//	func THWithConsolidateTaker(consolidateTaker bool) GetTradesHistoryOption
func (kc *KrakenClient) GetTradesHistory(ctx context.Context, options ...GetTradesHistoryOption) (*TradesHistoryResp, error) {
	payload := NewPayload()
	for _, option := range options {
		option(payload)
	}
	history, err := QueryPrivate[TradesHistoryResp](ctx, kc, EndpointTradesHistory, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling GetTradesHistory() | %w", err)
	}
	return history, nil
}

// Calls Kraken API private Account Data "QueryTrades" endpoint. Retrieves
// information about specific trades/fills with transaction ids passed to
// 'txIDs'. Up to 20 ids may be passed.
//
// # Required Permissions:
//
// Order and Trades - Query closed orders & trades;
func (kc *KrakenClient) GetTradeInfo(ctx context.Context, txIDs []string, options ...GetTradeInfoOption) (map[string]TradeInfo, error) {
	if len(txIDs) == 0 || len(txIDs) > 20 {
		return nil, fmt.Errorf("%w; between 1 and 20 txids required", ErrInvalidArg)
	}
	payload := NewPayload()
	payload.Add("txid", strings.Join(txIDs, ","))
	for _, option := range options {
		option(payload)
	}
	trades, err := QueryPrivate[map[string]TradeInfo](ctx, kc, EndpointQueryTrades, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling GetTradeInfo() | %w", err)
	}
	return *trades, nil
}

// Calls Kraken API private Account Data "OpenPositions" endpoint. Gets
// information about open margin positions.
//
// # Required Permissions:
//
// Order and Trades - Query open orders & trades;
//
// # Functional Options:
//
//	func OPWithTxID(txID string) GetOpenPositionsOption
//	func OPWithDoCalcs(doCalcs bool) GetOpenPositionsOption
func (kc *KrakenClient) GetOpenPositions(ctx context.Context, options ...GetOpenPositionsOption) (map[string]OpenPosition, error) {
	payload := NewPayload()
	for _, option := range options {
		option(payload)
	}
	positions, err := QueryPrivate[map[string]OpenPosition](ctx, kc, EndpointOpenPositions, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling GetOpenPositions() | %w", err)
	}
	return *positions, nil
}

// Calls Kraken API private Account Data "Ledgers" endpoint. Retrieves
// information about ledger entries, 50 at a time, most recent first.
//
// # Required Permissions:
//
// Data - Query ledger entries;
//
// # Functional Options:
//
//	func LIWithAsset(asset string) GetLedgersInfoOption
//	func LIWithAclass(aclass string) GetLedgersInfoOption
//	func LIWithType(ledgerType string) GetLedgersInfoOption
//	func LIWithStart(start int) GetLedgersInfoOption
//	func LIWithEnd(end int) GetLedgersInfoOption
//	func LIWithOffset(offset int) GetLedgersInfoOption
//	func LIWithoutCount(withoutCount bool) GetLedgersInfoOption
func (kc *KrakenClient) GetLedgersInfo(ctx context.Context, options ...GetLedgersInfoOption) (*LedgersInfoResp, error) {
	payload := NewPayload()
	for _, option := range options {
		option(payload)
	}
	ledgers, err := QueryPrivate[LedgersInfoResp](ctx, kc, EndpointLedgers, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling GetLedgersInfo() | %w", err)
	}
	return ledgers, nil
}

// Calls Kraken API private Account Data "QueryLedgers" endpoint. Retrieves
// information about specific ledger entries with ids passed to 'ledgerIDs'.
// Up to 20 ids may be passed.
//
// # Required Permissions:
//
// Data - Query ledger entries;
func (kc *KrakenClient) GetLedger(ctx context.Context, ledgerIDs []string, options ...GetLedgerOption) (map[string]Ledger, error) {
	if len(ledgerIDs) == 0 || len(ledgerIDs) > 20 {
		return nil, fmt.Errorf("%w; between 1 and 20 ledger ids required", ErrInvalidArg)
	}
	payload := NewPayload()
	payload.Add("id", strings.Join(ledgerIDs, ","))
	for _, option := range options {
		option(payload)
	}
	ledgers, err := QueryPrivate[map[string]Ledger](ctx, kc, EndpointQueryLedgers, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling GetLedger() | %w", err)
	}
	return *ledgers, nil
}

// Calls Kraken API private Account Data "TradeVolume" endpoint. Returns 30 day
// USD trading volume and resulting fee schedule for any asset pair(s) provided.
//
// # Required Permissions:
//
// Funds permissions - Query;
//
// # Functional Options:
//
//	func TVWithPair(pair string) GetTradeVolumeOption
func (kc *KrakenClient) GetTradeVolume(ctx context.Context, options ...GetTradeVolumeOption) (*TradeVolume, error) {
	payload := NewPayload()
	for _, option := range options {
		option(payload)
	}
	volume, err := QueryPrivate[TradeVolume](ctx, kc, EndpointTradeVolume, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling GetTradeVolume() | %w", err)
	}
	return volume, nil
}

// #endregion
