package krakenspot

import "time"

const (
	baseURL       = "https://api.kraken.com/0"
	publicPrefix  = "/public/"
	privatePrefix = "/private/"

	// Path prefix covered by the signature; it is independent of the base URL
	// so signatures stay valid against test servers and proxies.
	signaturePathPrefix = "/0/private/"

	wsPrivateURL = "wss://ws-auth.kraken.com"

	defaultUserAgent    = "kraken-sdk-go/1.0"
	defaultErrorMessage = "kraken api request failed"
	contentTypeForm     = "application/x-www-form-urlencoded; charset=utf-8"
)

// Public market data endpoints
const (
	EndpointTime         = "Time"
	EndpointSystemStatus = "SystemStatus"
	EndpointAssets       = "Assets"
	EndpointAssetPairs   = "AssetPairs"
	EndpointTicker       = "Ticker"
	EndpointOHLC         = "OHLC"
	EndpointDepth        = "Depth"
	EndpointTrades       = "Trades"
	EndpointSpread       = "Spread"
)

// Private endpoints
const (
	EndpointBalance              = "Balance"
	EndpointBalanceEx            = "BalanceEx"
	EndpointTradeBalance         = "TradeBalance"
	EndpointOpenOrders           = "OpenOrders"
	EndpointClosedOrders         = "ClosedOrders"
	EndpointQueryOrders          = "QueryOrders"
	EndpointTradesHistory        = "TradesHistory"
	EndpointQueryTrades          = "QueryTrades"
	EndpointOpenPositions        = "OpenPositions"
	EndpointLedgers              = "Ledgers"
	EndpointQueryLedgers         = "QueryLedgers"
	EndpointTradeVolume          = "TradeVolume"
	EndpointAddOrder             = "AddOrder"
	EndpointAddOrderBatch        = "AddOrderBatch"
	EndpointEditOrder            = "EditOrder"
	EndpointCancelOrder          = "CancelOrder"
	EndpointCancelAll            = "CancelAll"
	EndpointCancelAllOrdersAfter = "CancelAllOrdersAfter"
	EndpointCancelOrderBatch     = "CancelOrderBatch"
	EndpointDepositMethods       = "DepositMethods"
	EndpointDepositAddresses     = "DepositAddresses"
	EndpointDepositStatus        = "DepositStatus"
	EndpointWithdrawInfo         = "WithdrawInfo"
	EndpointWithdraw             = "Withdraw"
	EndpointWithdrawStatus       = "WithdrawStatus"
	EndpointWithdrawCancel       = "WithdrawCancel"
	EndpointWalletTransfer       = "WalletTransfer"
	EndpointStake                = "Stake"
	EndpointUnstake              = "Unstake"
	EndpointStakingAssets        = "Staking/Assets"
	EndpointStakingPending       = "Staking/Pending"
	EndpointStakingTransactions  = "Staking/Transactions"
	EndpointGetWebSocketsToken   = "GetWebSocketsToken"
	EndpointCreateSubaccount     = "CreateSubaccount"
	EndpointAccountTransfer      = "AccountTransfer"
)

const (
	pairsMapSize   = 745 // As of 12/29/2023 there were 677 tradeable pairs. 10% added for buffer
	assetsMapSize  = 321 // As of 12/29/2023 there were 292 listed assets. 10% added for buffer
	tickersMapSize = 813 // As of 12/29/2023 there were 739 listed tickers. 10% added for buffer
)

const (
	tier1DecayRate = 3 * time.Second // per 1 counter decay
	tier2DecayRate = 2 * time.Second // per 1 counter decay
	tier3DecayRate = 1 * time.Second // per 1 counter decay
)

var decayRateMap = map[uint8]time.Duration{
	1: tier1DecayRate,
	2: tier2DecayRate,
	3: tier3DecayRate,
}

var maxCounterMap = map[uint8]int{
	1: 15,
	2: 20,
	3: 20,
}

// Ledger-style endpoints cost 2 counter points, AddOrder and CancelOrder cost
// none; everything else costs 1.
var endpointCostMap = map[string]int{
	EndpointLedgers:       2,
	EndpointQueryLedgers:  2,
	EndpointTradesHistory: 2,
	EndpointAddOrder:      0,
	EndpointAddOrderBatch: 0,
	EndpointEditOrder:     0,
	EndpointCancelOrder:   0,
	EndpointCancelAll:     0,
}

// Formatting for number of decimals for USD (ZUSD) asset on Kraken
const usdDecimals int32 = 4
