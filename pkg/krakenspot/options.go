package krakenspot

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// #region Account data options

// GetOpenOrders() option
type GetOpenOrdersOption func(payload *Payload)

// Whether or not to include trades related to position in output. Defaults
// to false if not called
func OOWithTrades(trades bool) GetOpenOrdersOption {
	return func(payload *Payload) {
		payload.AddBool("trades", trades)
	}
}

// Restrict results to given user reference id. Defaults to no restrictions
// if not called
func OOWithUserRef(userRef int) GetOpenOrdersOption {
	return func(payload *Payload) {
		payload.Set("userref", strconv.Itoa(userRef))
	}
}

// Restrict results to the order with the given client order id
func OOWithClientOrderID(clOrdID string) GetOpenOrdersOption {
	return func(payload *Payload) {
		payload.Set("cl_ord_id", clOrdID)
	}
}

// GetClosedOrders() option
type GetClosedOrdersOption func(payload *Payload)

// Whether or not to include trades related to position in output. Defaults
// to false if not called
func COWithTrades(trades bool) GetClosedOrdersOption {
	return func(payload *Payload) {
		payload.AddBool("trades", trades)
	}
}

// Restrict results to given user reference id. Defaults to no restrictions
// if not called
func COWithUserRef(userRef int) GetClosedOrdersOption {
	return func(payload *Payload) {
		payload.Set("userref", strconv.Itoa(userRef))
	}
}

// Starting unix timestamp or order tx ID of results (exclusive). If an order's
// tx ID is given for start or end time, the order's opening time (opentm) is used
func COWithStart(start int) GetClosedOrdersOption {
	return func(payload *Payload) {
		payload.Set("start", strconv.Itoa(start))
	}
}

// Ending unix timestamp or order tx ID of results (inclusive). If an order's
// tx ID is given for start or end time, the order's opening time (opentm) is used
func COWithEnd(end int) GetClosedOrdersOption {
	return func(payload *Payload) {
		payload.Set("end", strconv.Itoa(end))
	}
}

// Result offset for pagination
func COWithOffset(offset int) GetClosedOrdersOption {
	return func(payload *Payload) {
		payload.Set("ofs", strconv.Itoa(offset))
	}
}

// Which time to use to search and filter results for COWithStart() and
// COWithEnd(). Defaults to "both" if not called or invalid arg 'closeTime'
// passed
//
// # Enum:
//
// 'closeTime': "open", "close", "both"
func COWithCloseTime(closeTime string) GetClosedOrdersOption {
	return func(payload *Payload) {
		if validCloseTime[closeTime] {
			payload.Set("closetime", closeTime)
		}
	}
}

// Whether or not to consolidate trades by individual taker trades. Defaults
// to true if not called
func COWithConsolidateTaker(consolidateTaker bool) GetClosedOrdersOption {
	return func(payload *Payload) {
		payload.Set("consolidate_taker", strconv.FormatBool(consolidateTaker))
	}
}

// GetOrdersInfo() option
type GetOrdersInfoOption func(payload *Payload)

// Whether or not to include trades related to position in output. Defaults
// to false if not called
func OIWithTrades(trades bool) GetOrdersInfoOption {
	return func(payload *Payload) {
		payload.AddBool("trades", trades)
	}
}

// Restrict results to given user reference id. Defaults to no restrictions
// if not called
func OIWithUserRef(userRef int) GetOrdersInfoOption {
	return func(payload *Payload) {
		payload.Set("userref", strconv.Itoa(userRef))
	}
}

// Whether or not to consolidate trades by individual taker trades. Defaults
// to true if not called
func OIWithConsolidateTaker(consolidateTaker bool) GetOrdersInfoOption {
	return func(payload *Payload) {
		payload.Set("consolidate_taker", strconv.FormatBool(consolidateTaker))
	}
}

// GetTradesHistory() option
type GetTradesHistoryOption func(payload *Payload)

// Type of trade. Defaults to "all" if not called or invalid 'tradeType' passed.
//
// # Enum:
//
// 'tradeType': "all", "any position", "closed position", "closing position",
// "no position"
func THWithType(tradeType string) GetTradesHistoryOption {
	return func(payload *Payload) {
		if validTradeType[tradeType] {
			payload.Set("type", tradeType)
		}
	}
}

// Whether or not to include trades related to position in output. Defaults
// to false if not called
func THWithTrades(trades bool) GetTradesHistoryOption {
	return func(payload *Payload) {
		payload.AddBool("trades", trades)
	}
}

// Starting unix timestamp or trade tx ID of results (exclusive)
func THWithStart(start int) GetTradesHistoryOption {
	return func(payload *Payload) {
		payload.Set("start", strconv.Itoa(start))
	}
}

// Ending unix timestamp or trade tx ID of results (inclusive)
func THWithEnd(end int) GetTradesHistoryOption {
	return func(payload *Payload) {
		payload.Set("end", strconv.Itoa(end))
	}
}

// Result offset for pagination
func THWithOffset(offset int) GetTradesHistoryOption {
	return func(payload *Payload) {
		payload.Set("ofs", strconv.Itoa(offset))
	}
}

// Whether or not to consolidate trades by individual taker trades. Defaults
// to true if not called
func THWithConsolidateTaker(consolidateTaker bool) GetTradesHistoryOption {
	return func(payload *Payload) {
		payload.Set("consolidate_taker", strconv.FormatBool(consolidateTaker))
	}
}

// GetTradeInfo() option
type GetTradeInfoOption func(payload *Payload)

// Whether or not to include trades related to position in output. Defaults
// to false if not called
func TIWithTrades(trades bool) GetTradeInfoOption {
	return func(payload *Payload) {
		payload.AddBool("trades", trades)
	}
}

// GetOpenPositions() option
type GetOpenPositionsOption func(payload *Payload)

// Comma delimited list of txids to limit output to
func OPWithTxID(txID string) GetOpenPositionsOption {
	return func(payload *Payload) {
		payload.Set("txid", txID)
	}
}

// Whether to include P&L calculations. Defaults to false if not called
func OPWithDoCalcs(doCalcs bool) GetOpenPositionsOption {
	return func(payload *Payload) {
		payload.AddBool("docalcs", doCalcs)
	}
}

// GetLedgersInfo() option
type GetLedgersInfoOption func(payload *Payload)

// Filter output by asset or comma delimited list of assets. Defaults to "all"
// if not called
func LIWithAsset(asset string) GetLedgersInfoOption {
	return func(payload *Payload) {
		payload.Set("asset", asset)
	}
}

// Filter output by asset class. Defaults to "currency" if not called
func LIWithAclass(aclass string) GetLedgersInfoOption {
	return func(payload *Payload) {
		payload.Set("aclass", aclass)
	}
}

// Type of ledger to retrieve. Defaults to "all" if not called or invalid
// 'ledgerType' passed.
//
// # Enum:
//
// 'ledgerType': "all", "trade", "deposit", "withdrawal", "transfer",
// "margin", "adjustment", "rollover", "credit", "settled", "staking",
// "dividend", "sale", "nft_rebate"
func LIWithType(ledgerType string) GetLedgersInfoOption {
	return func(payload *Payload) {
		if validLedgerType[ledgerType] {
			payload.Set("type", ledgerType)
		}
	}
}

// Starting unix timestamp or ledger ID of results (exclusive)
func LIWithStart(start int) GetLedgersInfoOption {
	return func(payload *Payload) {
		payload.Set("start", strconv.Itoa(start))
	}
}

// Ending unix timestamp or ledger ID of results (inclusive)
func LIWithEnd(end int) GetLedgersInfoOption {
	return func(payload *Payload) {
		payload.Set("end", strconv.Itoa(end))
	}
}

// Result offset for pagination
func LIWithOffset(offset int) GetLedgersInfoOption {
	return func(payload *Payload) {
		payload.Set("ofs", strconv.Itoa(offset))
	}
}

// If true, does not retrieve count of ledger entries. Request can be
// noticeably faster for users with many ledger entries as this avoids an
// extra database query. Defaults to false if not called
func LIWithoutCount(withoutCount bool) GetLedgersInfoOption {
	return func(payload *Payload) {
		payload.AddBool("without_count", withoutCount)
	}
}

// GetLedger() option
type GetLedgerOption func(payload *Payload)

// Whether or not to include trades related to position in output. Defaults
// to false if not called
func GLWithTrades(trades bool) GetLedgerOption {
	return func(payload *Payload) {
		payload.AddBool("trades", trades)
	}
}

// GetTradeVolume() option
type GetTradeVolumeOption func(payload *Payload)

// Comma delimited list of asset pairs to get fee info on. Defaults to no
// fee info if not called
func TVWithPair(pair string) GetTradeVolumeOption {
	return func(payload *Payload) {
		payload.Set("pair", pair)
	}
}

// #endregion

// #region Trading options

// Order type passed to AddOrder(). Exactly one must be passed.
type OrderType func(payload *Payload)

// Instantly market orders in at best current prices
func Market() OrderType {
	return func(payload *Payload) {
		payload.Set("ordertype", "market")
	}
}

// Order type of "limit" where arg 'price' is the level at which the limit
// order will be placed
func Limit(price string) OrderType {
	return func(payload *Payload) {
		payload.Set("ordertype", "limit")
		payload.Set("price", price)
	}
}

// Order type of "stop-loss" where arg 'price' is the stop loss trigger price.
// Supports '+' and '-' prefixes and '%' suffix for prices relative to last
// traded price
func StopLoss(price string) OrderType {
	return func(payload *Payload) {
		payload.Set("ordertype", "stop-loss")
		payload.Set("price", price)
	}
}

// Order type of "take-profit" where arg 'price' is the take profit trigger
// price
func TakeProfit(price string) OrderType {
	return func(payload *Payload) {
		payload.Set("ordertype", "take-profit")
		payload.Set("price", price)
	}
}

// Order type of "stop-loss-limit" where arg 'price' is the stop loss trigger
// price and arg 'price2' is the limit order that will be placed
func StopLossLimit(price, price2 string) OrderType {
	return func(payload *Payload) {
		payload.Set("ordertype", "stop-loss-limit")
		payload.Set("price", price)
		payload.Set("price2", price2)
	}
}

// Order type of "take-profit-limit" where arg 'price' is the take profit
// trigger price and arg 'price2' is the limit order that will be placed
func TakeProfitLimit(price, price2 string) OrderType {
	return func(payload *Payload) {
		payload.Set("ordertype", "take-profit-limit")
		payload.Set("price", price)
		payload.Set("price2", price2)
	}
}

// Order type of "trailing-stop" where arg 'price' is the relative stop
// trigger price. Must be prefixed with '+' and may be suffixed with '%'
func TrailingStop(price string) OrderType {
	return func(payload *Payload) {
		payload.Set("ordertype", "trailing-stop")
		payload.Set("price", price)
	}
}

// Order type of "trailing-stop-limit" where arg 'price' is the relative stop
// trigger price and arg 'price2' is the limit offset that will be placed
func TrailingStopLimit(price, price2 string) OrderType {
	return func(payload *Payload) {
		payload.Set("ordertype", "trailing-stop-limit")
		payload.Set("price", price)
		payload.Set("price2", price2)
	}
}

// Order type of "settle-position". Settles any open margin position of same
// 'direction' and 'pair' by amount 'volume' at arg 'leverage'
func SettlePosition(leverage string) OrderType {
	return func(payload *Payload) {
		payload.Set("ordertype", "settle-position")
		payload.Set("leverage", leverage)
	}
}

// AddOrder() option
type AddOrderOption func(payload *Payload)

// User reference id 'userref' is an optional user-specified integer id that
// can be associated with any number of orders. Kraken does not enforce
// uniqueness, so it can group orders by pair, side or strategy
func UserRef(userRef string) AddOrderOption {
	return func(payload *Payload) {
		payload.Set("userref", userRef)
	}
}

// Client order id, unique among the account's open orders. Mutually
// exclusive with UserRef(). See NewClientOrderID() for a generator
func ClientOrderID(clOrdID string) AddOrderOption {
	return func(payload *Payload) {
		payload.Set("cl_ord_id", clOrdID)
	}
}

// NewClientOrderID returns a random UUID suitable for ClientOrderID() and
// CancelOrderByClientID().
func NewClientOrderID() string {
	return uuid.NewString()
}

// Used to create an iceberg order, this is the visible order quantity in
// terms of the base asset. Can only be used with the Limit() order type
func DisplayVolume(displayVol string) AddOrderOption {
	return func(payload *Payload) {
		payload.Set("displayvol", displayVol)
	}
}

// Price signal used to trigger stop and take-profit orders. Overrides the
// default "last" with "index"
func IndexTrigger() AddOrderOption {
	return func(payload *Payload) {
		payload.Set("trigger", "index")
	}
}

// Amount of leverage desired. Defaults to no leverage if not called
func Leverage(leverage string) AddOrderOption {
	return func(payload *Payload) {
		payload.Set("leverage", leverage)
	}
}

// Order will only reduce a currently open position, not increase it or open
// a new position
func ReduceOnly() AddOrderOption {
	return func(payload *Payload) {
		payload.Set("reduce_only", "true")
	}
}

// Sets self trade behavior to "cancel-oldest". Default "cancel-newest".
//
// CAUTION: Mutually exclusive with STPCancelBoth()
func STPCancelOldest() AddOrderOption {
	return func(payload *Payload) {
		payload.Set("stptype", "cancel-oldest")
	}
}

// Sets self trade behavior to "cancel-both". Default "cancel-newest".
//
// CAUTION: Mutually exclusive with STPCancelOldest()
func STPCancelBoth() AddOrderOption {
	return func(payload *Payload) {
		payload.Set("stptype", "cancel-both")
	}
}

// Post-only order (available when ordertype = limit)
func PostOnly() AddOrderOption {
	return func(payload *Payload) {
		addOrderFlag(payload, "post")
	}
}

// Prefer fee in base currency (default if selling)
//
// CAUTION: Mutually exclusive with FCIQ().
func FCIB() AddOrderOption {
	return func(payload *Payload) {
		addOrderFlag(payload, "fcib")
	}
}

// Prefer fee in quote currency (default if buying)
//
// CAUTION: Mutually exclusive with FCIB().
func FCIQ() AddOrderOption {
	return func(payload *Payload) {
		addOrderFlag(payload, "fciq")
	}
}

// Disables market price protection for market orders
func NOMPP() AddOrderOption {
	return func(payload *Payload) {
		addOrderFlag(payload, "nompp")
	}
}

// Order volume expressed in quote currency. Supported only for market orders
func VIQC() AddOrderOption {
	return func(payload *Payload) {
		addOrderFlag(payload, "viqc")
	}
}

// Time-in-force "IOC" (Immediate Or Cancel). Defaults to "GTC" if not called.
//
// CAUTION: Mutually exclusive with GoodTilDate().
func ImmediateOrCancel() AddOrderOption {
	return func(payload *Payload) {
		payload.Set("timeinforce", "IOC")
	}
}

// Time-in-force "GTD" (Good Til Date). The order expires at 'expireTime',
// either an absolute unix timestamp or "+<n>" seconds from now.
//
// CAUTION: Mutually exclusive with ImmediateOrCancel().
func GoodTilDate(expireTime string) AddOrderOption {
	return func(payload *Payload) {
		payload.Set("timeinforce", "GTD")
		payload.Set("expiretm", expireTime)
	}
}

// Conditional close of "limit" order type where arg 'price' is the level at
// which the limit order will be placed.
//
// CAUTION: Mutually exclusive with all conditional close orders with format
// Close<orderType>()
func CloseLimit(price string) AddOrderOption {
	return func(payload *Payload) {
		setClose(payload, "limit", price, "")
	}
}

// Conditional close of "stop-loss" order type where arg 'price' is the stop
// loss trigger price.
//
// CAUTION: Mutually exclusive with all conditional close orders with format
// Close<orderType>()
func CloseStopLoss(price string) AddOrderOption {
	return func(payload *Payload) {
		setClose(payload, "stop-loss", price, "")
	}
}

// Conditional close of "take-profit" order type where arg 'price' is the take
// profit trigger price.
//
// CAUTION: Mutually exclusive with all conditional close orders with format
// Close<orderType>()
func CloseTakeProfit(price string) AddOrderOption {
	return func(payload *Payload) {
		setClose(payload, "take-profit", price, "")
	}
}

// Conditional close of "stop-loss-limit" order type where arg 'price' is the
// stop loss trigger price and arg 'price2' is the limit order that will be
// placed.
//
// CAUTION: Mutually exclusive with all conditional close orders with format
// Close<orderType>()
func CloseStopLossLimit(price, price2 string) AddOrderOption {
	return func(payload *Payload) {
		setClose(payload, "stop-loss-limit", price, price2)
	}
}

// Conditional close of "take-profit-limit" order type where arg 'price' is the
// take profit trigger price and arg 'price2' is the limit order that will be
// placed.
//
// CAUTION: Mutually exclusive with all conditional close orders with format
// Close<orderType>()
func CloseTakeProfitLimit(price, price2 string) AddOrderOption {
	return func(payload *Payload) {
		setClose(payload, "take-profit-limit", price, price2)
	}
}

// Conditional close of "trailing-stop" order type where arg 'price' is the
// relative stop trigger price.
//
// CAUTION: Mutually exclusive with all conditional close orders with format
// Close<orderType>()
func CloseTrailingStop(price string) AddOrderOption {
	return func(payload *Payload) {
		setClose(payload, "trailing-stop", price, "")
	}
}

// Conditional close of "trailing-stop-limit" order type where arg 'price' is
// the relative stop trigger price and arg 'price2' is the limit offset.
//
// CAUTION: Mutually exclusive with all conditional close orders with format
// Close<orderType>()
func CloseTrailingStopLimit(price, price2 string) AddOrderOption {
	return func(payload *Payload) {
		setClose(payload, "trailing-stop-limit", price, price2)
	}
}

// Pass RFC3339 timestamp (e.g. 2021-04-01T00:18:45Z) after which the matching
// engine should reject the new order request to arg 'deadline'. In presence
// of latency or order queueing: min now() + 2 seconds, max now() + 60 seconds
func AddWithDeadline(deadline string) AddOrderOption {
	return func(payload *Payload) {
		payload.Set("deadline", deadline)
	}
}

// Validates inputs only. Do not submit order. Defaults to "false" if not called.
func ValidateAddOrder() AddOrderOption {
	return func(payload *Payload) {
		payload.Set("validate", "true")
	}
}

func addOrderFlag(payload *Payload, flag string) {
	current := payload.Get("oflags")
	if current == "" {
		payload.Set("oflags", flag)
		return
	}
	for _, f := range strings.Split(current, ",") {
		if f == flag {
			return
		}
	}
	payload.Set("oflags", current+","+flag)
}

func setClose(payload *Payload, orderType, price, price2 string) {
	payload.Set("close[ordertype]", orderType)
	payload.Set("close[price]", price)
	if price2 != "" {
		payload.Set("close[price2]", price2)
	} else {
		payload.Del("close[price2]")
	}
}

// AddOrderBatch() option
type AddOrderBatchOption func(payload *Payload)

// Pass RFC3339 timestamp (e.g. 2021-04-01T00:18:45Z) after which the matching
// engine should reject the new order request to arg 'deadline'.
func AddBatchWithDeadline(deadline string) AddOrderBatchOption {
	return func(payload *Payload) {
		payload.Set("deadline", deadline)
	}
}

// Validates inputs only. Do not submit order. Defaults to "false" if not called.
func ValidateAddOrderBatch() AddOrderBatchOption {
	return func(payload *Payload) {
		payload.Set("validate", "true")
	}
}

// BatchOrder is one order of an AddOrderBatch() request. Build with
// NewBatchOrder() and the Set* methods. Unset fields are not sent.
type BatchOrder struct {
	OrderType      string
	Direction      string
	Volume         string
	DisplayVolume  string
	Price          string
	Price2         string
	Trigger        string
	Leverage       string
	ReduceOnly     bool
	STPType        string
	OrderFlags     string
	TimeInForce    string
	StartTime      string
	ExpireTime     string
	UserRef        string
	ClientOrderID  string
	CloseOrderType string
	ClosePrice     string
	ClosePrice2    string
}

// Constructor function for BatchOrder with the three required fields.
//
// # Enums:
//
// 'orderType': "market", "limit", "stop-loss", "take-profit",
// "stop-loss-limit", "take-profit-limit", "trailing-stop",
// "trailing-stop-limit", "settle-position"
//
// 'direction': "buy", "sell"
func NewBatchOrder(orderType, direction, volume string) *BatchOrder {
	return &BatchOrder{
		OrderType: orderType,
		Direction: direction,
		Volume:    volume,
	}
}

func (o *BatchOrder) SetPrice(price string) *BatchOrder {
	o.Price = price
	return o
}

func (o *BatchOrder) SetPrice2(price2 string) *BatchOrder {
	o.Price2 = price2
	return o
}

func (o *BatchOrder) SetDisplayVolume(displayVol string) *BatchOrder {
	o.DisplayVolume = displayVol
	return o
}

func (o *BatchOrder) SetIndexTrigger() *BatchOrder {
	o.Trigger = "index"
	return o
}

func (o *BatchOrder) SetLeverage(leverage string) *BatchOrder {
	o.Leverage = leverage
	return o
}

func (o *BatchOrder) SetReduceOnly() *BatchOrder {
	o.ReduceOnly = true
	return o
}

// Sets self trade prevention behavior. Silently ignores invalid 'stpType'.
//
// # Enum:
//
// 'stpType': "cancel-newest", "cancel-oldest", "cancel-both"
func (o *BatchOrder) SetSTPType(stpType string) *BatchOrder {
	if validSTPType[stpType] {
		o.STPType = stpType
	}
	return o
}

// Appends 'flag' to the order flags.
//
// # Enum:
//
// 'flag': "post", "fcib", "fciq", "nompp", "viqc"
func (o *BatchOrder) SetOrderFlag(flag string) *BatchOrder {
	if !validOrderFlag[flag] {
		return o
	}
	if o.OrderFlags == "" {
		o.OrderFlags = flag
	} else if !strings.Contains(","+o.OrderFlags+",", ","+flag+",") {
		o.OrderFlags += "," + flag
	}
	return o
}

// # Enum:
//
// 'timeInForce': "GTC", "IOC", "GTD"
func (o *BatchOrder) SetTimeInForce(timeInForce string) *BatchOrder {
	if validTimeInForce[timeInForce] {
		o.TimeInForce = timeInForce
	}
	return o
}

func (o *BatchOrder) SetStartTime(startTime string) *BatchOrder {
	o.StartTime = startTime
	return o
}

func (o *BatchOrder) SetExpireTime(expireTime string) *BatchOrder {
	o.ExpireTime = expireTime
	return o
}

func (o *BatchOrder) SetUserRef(userRef string) *BatchOrder {
	o.UserRef = userRef
	return o
}

func (o *BatchOrder) SetClientOrderID(clOrdID string) *BatchOrder {
	o.ClientOrderID = clOrdID
	return o
}

func (o *BatchOrder) SetCloseOrder(orderType, price, price2 string) *BatchOrder {
	o.CloseOrderType = orderType
	o.ClosePrice = price
	o.ClosePrice2 = price2
	return o
}

// addTo writes the order as orders[i][field] entries in a fixed field order.
func (o *BatchOrder) addTo(payload *Payload, i int) {
	prefix := "orders[" + strconv.Itoa(i) + "]"
	add := func(key, value string) {
		if value != "" {
			payload.Add(prefix+"["+key+"]", value)
		}
	}
	add("ordertype", o.OrderType)
	add("type", o.Direction)
	add("volume", o.Volume)
	add("displayvol", o.DisplayVolume)
	add("price", o.Price)
	add("price2", o.Price2)
	add("trigger", o.Trigger)
	add("leverage", o.Leverage)
	if o.ReduceOnly {
		add("reduce_only", "true")
	}
	add("stptype", o.STPType)
	add("oflags", o.OrderFlags)
	add("timeinforce", o.TimeInForce)
	add("starttm", o.StartTime)
	add("expiretm", o.ExpireTime)
	add("userref", o.UserRef)
	add("cl_ord_id", o.ClientOrderID)
	if o.CloseOrderType != "" {
		payload.Add(prefix+"[close][ordertype]", o.CloseOrderType)
		if o.ClosePrice != "" {
			payload.Add(prefix+"[close][price]", o.ClosePrice)
		}
		if o.ClosePrice2 != "" {
			payload.Add(prefix+"[close][price2]", o.ClosePrice2)
		}
	}
}

// EditOrder() option
type EditOrderOption func(payload *Payload)

// Field "userref" is an optional user-specified integer id associated with
// edit request. The parent order's userref is not retained
func NewUserRef(userRef string) EditOrderOption {
	return func(payload *Payload) {
		payload.Set("userref", userRef)
	}
}

// Updates order quantity in terms of the base asset.
func NewVolume(volume string) EditOrderOption {
	return func(payload *Payload) {
		payload.Set("volume", volume)
	}
}

// Updates the visible quantity of an iceberg order
func NewDisplayVolume(displayVol string) EditOrderOption {
	return func(payload *Payload) {
		payload.Set("displayvol", displayVol)
	}
}

// Updates limit price for "limit" orders or trigger price for stop and
// take-profit orders
func NewPrice(price string) EditOrderOption {
	return func(payload *Payload) {
		payload.Set("price", price)
	}
}

// Updates limit price for "stop-loss-limit", "take-profit-limit" and
// "trailing-stop-limit" orders
func NewPrice2(price2 string) EditOrderOption {
	return func(payload *Payload) {
		payload.Set("price2", price2)
	}
}

// Post-only is not retained from the parent order and must be set on every
// edit request
func NewPostOnly() EditOrderOption {
	return func(payload *Payload) {
		addOrderFlag(payload, "post")
	}
}

// RFC3339 timestamp after which the matching engine should reject the edit
func NewDeadline(deadline string) EditOrderOption {
	return func(payload *Payload) {
		payload.Set("deadline", deadline)
	}
}

// Receive pending replace before the order is completely replaced
func NewCancelResponse() EditOrderOption {
	return func(payload *Payload) {
		payload.Set("cancel_response", "true")
	}
}

// Validate inputs only. Do not submit order. Defaults to false if not called.
func ValidateEditOrder() EditOrderOption {
	return func(payload *Payload) {
		payload.Set("validate", "true")
	}
}

// #endregion

// #region Funding options

// GetDepositMethods() option
type GetDepositMethodsOption func(payload *Payload)

// Asset class being deposited. Defaults to "currency" if not called
func DMWithAssetClass(aclass string) GetDepositMethodsOption {
	return func(payload *Payload) {
		payload.Set("aclass", aclass)
	}
}

// GetDepositAddresses() option
type GetDepositAddressesOption func(payload *Payload)

// Whether or not to generate a new address. Defaults to false if not called
func DAWithNew() GetDepositAddressesOption {
	return func(payload *Payload) {
		payload.Set("new", "true")
	}
}

// Amount you wish to deposit (only required for "Bitcoin Lightning" method)
func DAWithAmount(amount string) GetDepositAddressesOption {
	return func(payload *Payload) {
		payload.Set("amount", amount)
	}
}

// GetDepositsStatus() option
type GetDepositsStatusOption func(payload *Payload)

// Filter for specific asset being deposited
func DSWithAsset(asset string) GetDepositsStatusOption {
	return func(payload *Payload) {
		payload.Set("asset", asset)
	}
}

// Filter for specific name of deposit method
func DSWithMethod(method string) GetDepositsStatusOption {
	return func(payload *Payload) {
		payload.Set("method", method)
	}
}

// Start unix timestamp of results (exclusive)
func DSWithStart(start string) GetDepositsStatusOption {
	return func(payload *Payload) {
		payload.Set("start", start)
	}
}

// End unix timestamp of results (inclusive)
func DSWithEnd(end string) GetDepositsStatusOption {
	return func(payload *Payload) {
		payload.Set("end", end)
	}
}

// Number of results to include per page
func DSWithLimit(limit uint) GetDepositsStatusOption {
	return func(payload *Payload) {
		payload.Set("limit", strconv.FormatUint(uint64(limit), 10))
	}
}

// Filter asset class being deposited. Defaults to "currency" if not called
func DSWithAssetClass(aclass string) GetDepositsStatusOption {
	return func(payload *Payload) {
		payload.Set("aclass", aclass)
	}
}

// WithdrawFunds() option
type WithdrawFundsOption func(payload *Payload)

// Crypto address that can be used to confirm address matches key (will
// return an error if it doesn't)
func WFWithAddress(address string) WithdrawFundsOption {
	return func(payload *Payload) {
		payload.Set("address", address)
	}
}

// Withdrawal fails if the fee would be greater than 'maxFee'
func WFWithMaxFee(maxFee string) WithdrawFundsOption {
	return func(payload *Payload) {
		payload.Set("max_fee", maxFee)
	}
}

// GetWithdrawalsStatus() option
type GetWithdrawalsStatusOption func(payload *Payload)

// Filter for specific asset being withdrawn
func WSWithAsset(asset string) GetWithdrawalsStatusOption {
	return func(payload *Payload) {
		payload.Set("asset", asset)
	}
}

// Filter for specific name of withdrawal method
func WSWithMethod(method string) GetWithdrawalsStatusOption {
	return func(payload *Payload) {
		payload.Set("method", method)
	}
}

// Start unix timestamp of results (exclusive)
func WSWithStart(start string) GetWithdrawalsStatusOption {
	return func(payload *Payload) {
		payload.Set("start", start)
	}
}

// End unix timestamp of results (inclusive)
func WSWithEnd(end string) GetWithdrawalsStatusOption {
	return func(payload *Payload) {
		payload.Set("end", end)
	}
}

// Filter asset class being withdrawn. Defaults to "currency" if not called
func WSWithAssetClass(aclass string) GetWithdrawalsStatusOption {
	return func(payload *Payload) {
		payload.Set("aclass", aclass)
	}
}

// #endregion

// #region Enum validation maps

var validCloseTime = map[string]bool{
	"open":  true,
	"close": true,
	"both":  true,
}

var validTradeType = map[string]bool{
	"all":              true,
	"any position":     true,
	"closed position":  true,
	"closing position": true,
	"no position":      true,
}

var validLedgerType = map[string]bool{
	"all":        true,
	"trade":      true,
	"deposit":    true,
	"withdrawal": true,
	"transfer":   true,
	"margin":     true,
	"adjustment": true,
	"rollover":   true,
	"credit":     true,
	"settled":    true,
	"staking":    true,
	"dividend":   true,
	"sale":       true,
	"nft_rebate": true,
}

var validSTPType = map[string]bool{
	"cancel-newest": true,
	"cancel-oldest": true,
	"cancel-both":   true,
}

var validOrderFlag = map[string]bool{
	"post":  true,
	"fcib":  true,
	"fciq":  true,
	"nompp": true,
	"viqc":  true,
}

var validTimeInForce = map[string]bool{
	"GTC": true,
	"IOC": true,
	"GTD": true,
}

// #endregion
