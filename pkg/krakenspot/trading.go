package krakenspot

import (
	"context"
	"fmt"
	"strconv"
)

// #region Authenticated Trading endpoints

// Calls Kraken API private Trading "AddOrder" endpoint. Creates a new order
// of type arg 'orderType' with direction or side passed to arg 'direction' and
// size/quantity passed to arg 'volume' for the specified market passed to arg
// 'pair'. Accepts any number of functional options passed to arg 'options' to
// modify behavior or add additional constraints to orders.
//
// # Enums:
//
// 'orderType': Market(), Limit(), StopLoss(), TakeProfit(), StopLossLimit(),
// TakeProfitLimit(), TrailingStop(), TrailingStopLimit(), SettlePosition()
//
// 'direction': "buy", "sell"
//
// 'volume': >= 0
//
// 'pair': Call public market data endpoint function ListTradeablePairs() for a
// current list of possible values to pass to this arg
//
// CAUTION: Conflicting 'options' args passed may not always result in an invalid
// order. Later options overwrite the values of earlier ones for the same field.
//
// # Required Permissions:
//
// Orders and trades - Create & modify orders;
//
// # Functional Options:
//
//	func UserRef(userRef string) AddOrderOption
//	func ClientOrderID(clOrdID string) AddOrderOption
//	func DisplayVolume(displayVol string) AddOrderOption
//	func IndexTrigger() AddOrderOption
//	func Leverage(leverage string) AddOrderOption
//	func ReduceOnly() AddOrderOption
//	func STPCancelOldest() AddOrderOption
//	func STPCancelBoth() AddOrderOption
//	func PostOnly() AddOrderOption
//	func FCIB() AddOrderOption
//	func FCIQ() AddOrderOption
//	func NOMPP() AddOrderOption
//	func VIQC() AddOrderOption
//	func ImmediateOrCancel() AddOrderOption
//	func GoodTilDate(expireTime string) AddOrderOption
//	func CloseLimit(price string) AddOrderOption
//	func CloseStopLoss(price string) AddOrderOption
//	func CloseTakeProfit(price string) AddOrderOption
//	func CloseStopLossLimit(price, price2 string) AddOrderOption
//	func CloseTakeProfitLimit(price, price2 string) AddOrderOption
//	func CloseTrailingStop(price string) AddOrderOption
//	func CloseTrailingStopLimit(price, price2 string) AddOrderOption
//	func AddWithDeadline(deadline string) AddOrderOption
//	func ValidateAddOrder() AddOrderOption
//
// # Example Usage:
//
//	newOrder, err := kc.AddOrder(ctx, krakenspot.Limit("45000"), "buy", "1.0", "XXBTZUSD", krakenspot.PostOnly(), krakenspot.CloseLimit("49000"))
func (kc *KrakenClient) AddOrder(ctx context.Context, orderType OrderType, direction, volume, pair string, options ...AddOrderOption) (*AddOrderResp, error) {
	if orderType == nil {
		return nil, fmt.Errorf("%w; nil order type", ErrInvalidArg)
	}
	if !validDirection[direction] {
		return nil, fmt.Errorf("%w; invalid direction %q, expected \"buy\" or \"sell\"", ErrInvalidArg, direction)
	}
	payload := NewPayload()
	orderType(payload)
	payload.Add("type", direction)
	payload.Add("volume", volume)
	payload.Add("pair", pair)
	for _, option := range options {
		option(payload)
	}
	newOrder, err := QueryPrivate[AddOrderResp](ctx, kc, EndpointAddOrder, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling AddOrder() | %w", err)
	}
	return newOrder, nil
}

var validDirection = map[string]bool{
	"buy":  true,
	"sell": true,
}

// Calls Kraken API private Trading "AddOrderBatch" endpoint. Sends between 2
// and 15 orders, all for the single pair passed to arg 'pair'. Orders rejected
// by validation are dropped and the rest of the batch is processed. Returned
// txids are in the same order as 'orders'. Build orders with NewBatchOrder().
//
// # Required Permissions:
//
// Orders and trades - Create & modify orders;
//
// # Functional Options:
//
//	func AddBatchWithDeadline(deadline string) AddOrderBatchOption
//	func ValidateAddOrderBatch() AddOrderBatchOption
//
// # Example Usage:
//
//	orders := []krakenspot.BatchOrder{
//		*krakenspot.NewBatchOrder("limit", "buy", "0.1").SetPrice("45000").SetOrderFlag("post"),
//		*krakenspot.NewBatchOrder("limit", "sell", "0.1").SetPrice("47000").SetOrderFlag("post"),
//	}
//	batchOrderResp, err := kc.AddOrderBatch(ctx, orders, "XXBTZUSD", krakenspot.ValidateAddOrderBatch())
func (kc *KrakenClient) AddOrderBatch(ctx context.Context, orders []BatchOrder, pair string, options ...AddOrderBatchOption) (*AddOrderBatchResp, error) {
	if len(orders) < 2 || len(orders) > 15 {
		return nil, fmt.Errorf("%w; batch must contain 2 to 15 orders, got %d", ErrInvalidArg, len(orders))
	}
	payload := NewPayload()
	for i := range orders {
		orders[i].addTo(payload, i)
	}
	payload.Add("pair", pair)
	for _, option := range options {
		option(payload)
	}
	newOrders, err := QueryPrivate[AddOrderBatchResp](ctx, kc, EndpointAddOrderBatch, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling AddOrderBatch() | %w", err)
	}
	return newOrders, nil
}

// Calls Kraken API private Trading "EditOrder" endpoint. Edit volume and price
// on open orders with transaction ID or user reference ID passed to arg 'txID'.
// Uneditable orders include triggered stop/profit orders, orders with
// conditional close terms attached, those already cancelled or filled, and
// those where the executed volume is greater than the newly supplied volume.
//
// Note: Field "userref" and the post-only flag from the parent order are not
// retained. Pass NewUserRef() and NewPostOnly() again if still needed.
//
// # Required Permissions:
//
// Orders and trades - Create & modify orders;
//
// # Functional Options:
//
//	func NewUserRef(userRef string) EditOrderOption
//	func NewVolume(volume string) EditOrderOption
//	func NewDisplayVolume(displayVol string) EditOrderOption
//	func NewPrice(price string) EditOrderOption
//	func NewPrice2(price2 string) EditOrderOption
//	func NewPostOnly() EditOrderOption
//	func NewDeadline(deadline string) EditOrderOption
//	func NewCancelResponse() EditOrderOption
//	func ValidateEditOrder() EditOrderOption
//
// # Example Usage:
//
//	editOrder, err := kc.EditOrder(ctx, "OHYO67-6LP66-HMQ437", "XXBTZUSD", krakenspot.NewVolume("2.1234"), krakenspot.NewPostOnly(), krakenspot.NewPrice("45000.1"))
func (kc *KrakenClient) EditOrder(ctx context.Context, txID, pair string, options ...EditOrderOption) (*EditOrderResp, error) {
	payload := NewPayload()
	payload.Add("txid", txID)
	payload.Add("pair", pair)
	for _, option := range options {
		option(payload)
	}
	if !payload.Has("volume") && !payload.Has("price") && !payload.Has("price2") && !payload.Has("displayvol") {
		return nil, fmt.Errorf("%w; at least one of NewVolume(), NewPrice(), NewPrice2() or NewDisplayVolume() required", ErrInvalidArg)
	}
	editOrder, err := QueryPrivate[EditOrderResp](ctx, kc, EndpointEditOrder, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling EditOrder() | %w", err)
	}
	return editOrder, nil
}

// Calls Kraken API private Trading "CancelOrder" endpoint. Cancels a particular
// open order (or set of open orders) by transaction ID or user reference ID
// passed to arg 'txID'.
//
// # Required Permissions:
//
// Orders and trades - Create & modify orders or Orders and trades - Cancel & close orders;
func (kc *KrakenClient) CancelOrder(ctx context.Context, txID string) (*CancelOrderResp, error) {
	if txID == "" {
		return nil, fmt.Errorf("%w; empty txid", ErrInvalidArg)
	}
	payload := NewPayload()
	payload.Add("txid", txID)
	cancelResp, err := QueryPrivate[CancelOrderResp](ctx, kc, EndpointCancelOrder, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling CancelOrder() | %w", err)
	}
	return cancelResp, nil
}

// Calls Kraken API private Trading "CancelOrder" endpoint. Cancels the open
// order placed with ClientOrderID() 'clOrdID'.
//
// # Required Permissions:
//
// Orders and trades - Create & modify orders or Orders and trades - Cancel & close orders;
func (kc *KrakenClient) CancelOrderByClientID(ctx context.Context, clOrdID string) (*CancelOrderResp, error) {
	if clOrdID == "" {
		return nil, fmt.Errorf("%w; empty client order id", ErrInvalidArg)
	}
	payload := NewPayload()
	payload.Add("cl_ord_id", clOrdID)
	cancelResp, err := QueryPrivate[CancelOrderResp](ctx, kc, EndpointCancelOrder, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling CancelOrderByClientID() | %w", err)
	}
	return cancelResp, nil
}

// Calls Kraken API private Trading "CancelAll" endpoint. Cancels all open orders.
//
// # Required Permissions:
//
// Orders and trades - Create & modify orders or Orders and trades - Cancel & close orders;
func (kc *KrakenClient) CancelAllOrders(ctx context.Context) (*CancelOrderResp, error) {
	cancelResp, err := QueryPrivate[CancelOrderResp](ctx, kc, EndpointCancelAll, nil)
	if err != nil {
		return nil, fmt.Errorf("error calling CancelAllOrders() | %w", err)
	}
	return cancelResp, nil
}

// Calls Kraken API private Trading "CancelAllOrdersAfter" endpoint. Provides a
// "Dead Man's Switch": all orders are cancelled 'timeout' seconds from now
// unless the call is repeated with a new timeout before then. Passing 0
// disables the timer.
//
// # Enum:
//
// 'timeout': [0..86400]
//
// # Required Permissions:
//
// Orders and trades - Create & modify orders or Orders and trades - Cancel & close orders;
//
// # Example Usage:
//
//	ticker := time.NewTicker(15 * time.Second)
//	for range ticker.C {
//		if _, err := kc.CancelAllOrdersAfter(ctx, 60); err != nil {
//			log.Println(err)
//		}
//	}
func (kc *KrakenClient) CancelAllOrdersAfter(ctx context.Context, timeout uint32) (*CancelAllAfter, error) {
	if timeout > 86400 {
		return nil, fmt.Errorf("%w; timeout must be 0 to 86400 seconds", ErrInvalidArg)
	}
	payload := NewPayload()
	payload.Add("timeout", strconv.FormatUint(uint64(timeout), 10))
	cancelAfter, err := QueryPrivate[CancelAllAfter](ctx, kc, EndpointCancelAllOrdersAfter, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling CancelAllOrdersAfter() | %w", err)
	}
	return cancelAfter, nil
}

// Calls Kraken API private Trading "CancelOrderBatch" endpoint. Cancels up to
// 50 orders by transaction ID or user reference ID passed to 'txIDs'.
//
// # Required Permissions:
//
// Orders and trades - Create & modify orders or Orders and trades - Cancel & close orders;
func (kc *KrakenClient) CancelOrderBatch(ctx context.Context, txIDs []string) (*CancelOrderResp, error) {
	if len(txIDs) == 0 || len(txIDs) > 50 {
		return nil, fmt.Errorf("%w; between 1 and 50 txids required", ErrInvalidArg)
	}
	payload := NewPayload()
	for i, txID := range txIDs {
		payload.Add("orders["+strconv.Itoa(i)+"]", txID)
	}
	cancelResp, err := QueryPrivate[CancelOrderResp](ctx, kc, EndpointCancelOrderBatch, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling CancelOrderBatch() | %w", err)
	}
	return cancelResp, nil
}

// #endregion
