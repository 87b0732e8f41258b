// The data.go file contains the data structure declarations for Kraken REST
// API results, plus the custom json.Unmarshal functions needed where Kraken
// encodes records as positional arrays.
package krakenspot

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// #region Public Market Data structs

type ServerTime struct {
	UnixTime int64  `json:"unixtime"`
	Rfc1123  string `json:"rfc1123"`
}

type SystemStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type AssetInfo struct {
	Ticker          string
	Aclass          string  `json:"aclass"`
	Altname         string  `json:"altname"`
	Decimals        uint8   `json:"decimals"`
	DisplayDecimals uint8   `json:"display_decimals"`
	CollateralValue float32 `json:"collateral_value"`
	Status          string  `json:"status"`
}

type AssetPairInfo struct {
	Ticker             string
	Altname            string      `json:"altname"`
	Wsname             string      `json:"wsname"`
	AclassBase         string      `json:"aclass_base"`
	Base               string      `json:"base"`
	AclassQuote        string      `json:"aclass_quote"`
	Quote              string      `json:"quote"`
	CostDecimals       uint8       `json:"cost_decimals"`
	PairDecimals       uint8       `json:"pair_decimals"`
	LotDecimals        uint8       `json:"lot_decimals"`
	LotMultiplier      uint8       `json:"lot_multiplier"`
	LeverageBuy        []uint8     `json:"leverage_buy"`
	LeverageSell       []uint8     `json:"leverage_sell"`
	Fees               [][]float64 `json:"fees"`
	FeesMaker          [][]float64 `json:"fees_maker"`
	FeeVolumeCurrency  string      `json:"fee_volume_currency"`
	MarginCall         uint8       `json:"margin_call"`
	MarginStop         uint8       `json:"margin_stop"`
	OrderMin           string      `json:"ordermin"`
	CostMin            string      `json:"costmin"`
	TickSize           string      `json:"tick_size"`
	Status             string      `json:"status"`
	LongPositionLimit  uint32      `json:"long_position_limit"`
	ShortPositionLimit uint32      `json:"short_position_limit"`
}

type TickerInfo struct {
	Ticker          string
	Ask             TickerBookInfo      `json:"a"`
	Bid             TickerBookInfo      `json:"b"`
	LastTradeClosed TickerLastTradeInfo `json:"c"`
	Volume          TickerDailyInfo     `json:"v"`
	VWAP            TickerDailyInfo     `json:"p"`
	NumberOfTrades  TickerDailyInfoInt  `json:"t"`
	Low             TickerDailyInfo     `json:"l"`
	High            TickerDailyInfo     `json:"h"`
	Open            string              `json:"o"`
}

type TickerBookInfo struct {
	Price          string
	WholeLotVolume string
	LotVolume      string
}

type TickerLastTradeInfo struct {
	Price     string
	LotVolume string
}

type TickerDailyInfo struct {
	Today       string
	Last24Hours string
}

type TickerDailyInfoInt struct {
	Today       int
	Last24Hours int
}

func (ti *TickerBookInfo) UnmarshalJSON(data []byte) error {
	var v []string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w | %w", ErrUnexpectedJSONInput, err)
	}
	if len(v) != 3 {
		return fmt.Errorf("%w | incorrect length", ErrUnexpectedJSONInput)
	}
	ti.Price = v[0]
	ti.WholeLotVolume = v[1]
	ti.LotVolume = v[2]
	return nil
}

func (ti *TickerLastTradeInfo) UnmarshalJSON(data []byte) error {
	var v []string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w | %w", ErrUnexpectedJSONInput, err)
	}
	if len(v) != 2 {
		return fmt.Errorf("%w | incorrect length", ErrUnexpectedJSONInput)
	}
	ti.Price = v[0]
	ti.LotVolume = v[1]
	return nil
}

func (ti *TickerDailyInfo) UnmarshalJSON(data []byte) error {
	var v []string
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w | %w", ErrUnexpectedJSONInput, err)
	}
	if len(v) != 2 {
		return fmt.Errorf("%w | incorrect length", ErrUnexpectedJSONInput)
	}
	ti.Today = v[0]
	ti.Last24Hours = v[1]
	return nil
}

func (ti *TickerDailyInfoInt) UnmarshalJSON(data []byte) error {
	var v []int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w | %w", ErrUnexpectedJSONInput, err)
	}
	if len(v) != 2 {
		return fmt.Errorf("%w | incorrect length", ErrUnexpectedJSONInput)
	}
	ti.Today = v[0]
	ti.Last24Hours = v[1]
	return nil
}

type TickerVolume struct {
	Ticker string
	Volume float64
}

type OHLCResp struct {
	Ticker  string
	Data    []OHLCData
	Current OHLCData
	Last    uint64
}

type OHLCData struct {
	Time   uint64
	Open   string
	High   string
	Low    string
	Close  string
	VWAP   string
	Volume string
	Count  uint32
}

// The last entry Kraken returns is the still-open interval and is stored in
// Current rather than Data.
func (ohlc *OHLCResp) UnmarshalJSON(data []byte) error {
	var dataMap map[string]json.RawMessage
	if err := json.Unmarshal(data, &dataMap); err != nil {
		return fmt.Errorf("%w | %w", ErrUnexpectedJSONInput, err)
	}
	last, err := takeLast(dataMap)
	if err != nil {
		return err
	}
	ohlc.Last, err = strconv.ParseUint(last, 10, 64)
	if err != nil {
		return fmt.Errorf("%w; \"last\" is not an integer | %w", ErrUnexpectedJSONInput, err)
	}
	ticker, rows, err := singlePairRows(dataMap)
	if err != nil {
		return err
	}
	ohlc.Ticker = ticker
	ohlc.Data = make([]OHLCData, 0, len(rows))
	for _, row := range rows {
		fields, err := positional(row, 8)
		if err != nil {
			return err
		}
		var entry OHLCData
		if entry.Time, err = uintField(fields[0]); err != nil {
			return err
		}
		strs, err := stringFields(fields[1:7])
		if err != nil {
			return err
		}
		entry.Open, entry.High, entry.Low, entry.Close, entry.VWAP, entry.Volume = strs[0], strs[1], strs[2], strs[3], strs[4], strs[5]
		count, err := uintField(fields[7])
		if err != nil {
			return err
		}
		entry.Count = uint32(count)
		ohlc.Data = append(ohlc.Data, entry)
	}
	if n := len(ohlc.Data); n > 0 {
		ohlc.Current = ohlc.Data[n-1]
		ohlc.Data = ohlc.Data[:n-1]
	}
	return nil
}

type OrderBook struct {
	Ticker string
	Asks   []BookEntry `json:"asks"`
	Bids   []BookEntry `json:"bids"`
}

type BookEntry struct {
	Price  string
	Volume string
	Time   uint64
}

func (be *BookEntry) UnmarshalJSON(data []byte) error {
	fields, err := positional(data, 3)
	if err != nil {
		return err
	}
	strs, err := stringFields(fields[:2])
	if err != nil {
		return err
	}
	be.Price, be.Volume = strs[0], strs[1]
	be.Time, err = uintField(fields[2])
	return err
}

type TradesResp struct {
	Ticker string
	Trades []Trade
	Last   string
}

type Trade struct {
	Price     string
	Volume    string
	Time      float64
	Direction string // "b" buy, "s" sell
	OrderType string // "m" market, "l" limit
	Misc      string
	TradeID   int64
}

func (tr *TradesResp) UnmarshalJSON(data []byte) error {
	var dataMap map[string]json.RawMessage
	if err := json.Unmarshal(data, &dataMap); err != nil {
		return fmt.Errorf("%w | %w", ErrUnexpectedJSONInput, err)
	}
	last, err := takeLast(dataMap)
	if err != nil {
		return err
	}
	tr.Last = last
	ticker, rows, err := singlePairRows(dataMap)
	if err != nil {
		return err
	}
	tr.Ticker = ticker
	tr.Trades = make([]Trade, len(rows))
	for i, row := range rows {
		fields, err := positional(row, 7)
		if err != nil {
			return err
		}
		strs, err := stringFields(fields[:2])
		if err != nil {
			return err
		}
		t := Trade{Price: strs[0], Volume: strs[1]}
		if t.Time, err = floatField(fields[2]); err != nil {
			return err
		}
		strs, err = stringFields(fields[3:6])
		if err != nil {
			return err
		}
		t.Direction, t.OrderType, t.Misc = strs[0], strs[1], strs[2]
		id, err := uintField(fields[6])
		if err != nil {
			return err
		}
		t.TradeID = int64(id)
		tr.Trades[i] = t
	}
	return nil
}

type SpreadResp struct {
	Ticker  string
	Spreads []Spread
	Last    uint64
}

type Spread struct {
	Time uint64
	Bid  string
	Ask  string
}

func (sr *SpreadResp) UnmarshalJSON(data []byte) error {
	var dataMap map[string]json.RawMessage
	if err := json.Unmarshal(data, &dataMap); err != nil {
		return fmt.Errorf("%w | %w", ErrUnexpectedJSONInput, err)
	}
	last, err := takeLast(dataMap)
	if err != nil {
		return err
	}
	sr.Last, err = strconv.ParseUint(last, 10, 64)
	if err != nil {
		return fmt.Errorf("%w; \"last\" is not an integer | %w", ErrUnexpectedJSONInput, err)
	}
	ticker, rows, err := singlePairRows(dataMap)
	if err != nil {
		return err
	}
	sr.Ticker = ticker
	sr.Spreads = make([]Spread, len(rows))
	for i, row := range rows {
		fields, err := positional(row, 3)
		if err != nil {
			return err
		}
		var s Spread
		if s.Time, err = uintField(fields[0]); err != nil {
			return err
		}
		strs, err := stringFields(fields[1:])
		if err != nil {
			return err
		}
		s.Bid, s.Ask = strs[0], strs[1]
		sr.Spreads[i] = s
	}
	return nil
}

// #endregion

// #region Private Account Data structs

type ExtendedBalance struct {
	Balance    string `json:"balance"`
	Credit     string `json:"credit"`
	CreditUsed string `json:"credit_used"`
	HoldTrade  string `json:"hold_trade"`
}

type TradeBalance struct {
	EquivalentBalance string `json:"eb"`
	TradeBalance      string `json:"tb"`
	OpenMargin        string `json:"m"`
	UnrealizedPnL     string `json:"n"`
	CostBasis         string `json:"c"`
	FloatingValuation string `json:"v"`
	Equity            string `json:"e"`
	FreeMargin        string `json:"mf"`
	MarginLevel       string `json:"ml"`
	UnexecutedValue   string `json:"uv"`
}

type OpenOrdersResp struct {
	OpenOrders map[string]Order `json:"open"`
}

type ClosedOrdersResp struct {
	ClosedOrders map[string]Order `json:"closed"`
	Count        int              `json:"count"`
}

type Order struct {
	RefID          string           `json:"refid"`
	UserRef        int              `json:"userref"`
	ClientOrderID  string           `json:"cl_ord_id"`
	Status         string           `json:"status"`
	OpenTime       float64          `json:"opentm"`
	StartTime      float64          `json:"starttm"`
	ExpireTime     float64          `json:"expiretm"`
	Description    OrderDescription `json:"descr"`
	Volume         string           `json:"vol"`
	VolumeExecuted string           `json:"vol_exec"`
	QuoteCost      string           `json:"cost"`
	QuoteFee       string           `json:"fee"`
	AvgPrice       string           `json:"price"`
	StopPrice      string           `json:"stopprice"`
	LimitPrice     string           `json:"limitprice"`
	Trigger        string           `json:"trigger"`
	Misc           string           `json:"misc"`
	OrderFlags     string           `json:"oflags"`
	TradeIDs       []string         `json:"trades"`
	CloseTime      float64          `json:"closetm,omitempty"`
	Reason         string           `json:"reason,omitempty"`
}

type OrderDescription struct {
	Pair             string `json:"pair"`
	Direction        string `json:"type"`
	OrderType        string `json:"ordertype"`
	Price            string `json:"price"`  // Limit price for limit orders. Trigger price for stop and take-profit orders
	Price2           string `json:"price2"` // Secondary limit price for *-limit orders
	Leverage         string `json:"leverage"`
	Description      string `json:"order"`
	CloseDescription string `json:"close"`
}

type TradesHistoryResp struct {
	Trades map[string]TradeInfo `json:"trades"`
	Count  int                  `json:"count"`
}

type TradeInfo struct {
	OrderTxID           string   `json:"ordertxid"`
	PositionTxID        string   `json:"postxid"`
	Pair                string   `json:"pair"`
	Time                float64  `json:"time"`
	Direction           string   `json:"type"`
	OrderType           string   `json:"ordertype"`
	AvgPrice            string   `json:"price"`
	QuoteCost           string   `json:"cost"`
	QuoteFee            string   `json:"fee"`
	Volume              string   `json:"vol"`
	InitialMargin       string   `json:"margin"`
	Leverage            string   `json:"leverage"`
	Misc                string   `json:"misc"`
	TradeID             int      `json:"trade_id"`
	PositionStatus      string   `json:"posstatus"`
	PortionClosedPrice  string   `json:"cprice"`
	PortionClosedCost   string   `json:"ccost"`
	PortionClosedFee    string   `json:"cfee"`
	PortionClosedVolume string   `json:"cvol"`
	PortionMarginFreed  string   `json:"cmargin"`
	PortionClosedPnL    string   `json:"net"`
	Trades              []string `json:"trades"`
	Maker               bool     `json:"maker"`
}

type OpenPosition struct {
	OrderTxID      string  `json:"ordertxid"`
	PositionStatus string  `json:"posstatus"`
	Pair           string  `json:"pair"`
	Time           float64 `json:"time"`
	Direction      string  `json:"type"`
	OrderType      string  `json:"ordertype"`
	QuoteCost      string  `json:"cost"`
	QuoteFee       string  `json:"fee"`
	Size           string  `json:"vol"`
	VolumeClosed   string  `json:"vol_closed"`
	InitialMargin  string  `json:"margin"`
	CurrentValue   string  `json:"value"`
	UPnL           string  `json:"net"`
	Terms          string  `json:"terms"`
	RolloverTime   string  `json:"rollovertm"`
	Misc           string  `json:"misc"`
	OrderFlags     string  `json:"oflags"`
}

type LedgersInfoResp struct {
	Ledgers map[string]Ledger `json:"ledger"`
	Count   int               `json:"count"`
}

type Ledger struct {
	RefID      string  `json:"refid"`
	Time       float64 `json:"time"`
	Type       string  `json:"type"`
	SubType    string  `json:"subtype"`
	AssetClass string  `json:"aclass"`
	Asset      string  `json:"asset"`
	TxAmount   string  `json:"amount"`
	TxFee      string  `json:"fee"`
	EndBalance string  `json:"balance"`
}

type TradeVolume struct {
	Currency      string         `json:"currency"`
	CurrentVolume string         `json:"volume"`
	Fees          map[string]Fee `json:"fees"`
	MakerFees     map[string]Fee `json:"fees_maker"`
}

type Fee struct {
	Fee        string `json:"fee"`
	MinFee     string `json:"min_fee"`
	MaxFee     string `json:"max_fee"`
	NextFee    string `json:"next_fee"`
	TierVolume string `json:"tier_volume"`
	NextVolume string `json:"next_volume"`
}

// #endregion

// #region Private Trading Data structs

type AddOrderResp struct {
	Description AddOrderDescription `json:"descr"`
	TxID        []string            `json:"txid"`
}

type AddOrderDescription struct {
	OrderDescription string `json:"order"`
	CloseDescription string `json:"close"`
}

type AddOrderBatchResp struct {
	Orders []BatchResp `json:"orders"`
}

type BatchResp struct {
	Description BatchOrderDescription `json:"descr"`
	Error       string                `json:"error"`
	TxID        string                `json:"txid"`
}

type BatchOrderDescription struct {
	OrderDescription string `json:"order"`
}

type EditOrderResp struct {
	Description        EditOrderDescription `json:"descr"`
	NewTxID            string               `json:"txid"`
	Volume             string               `json:"volume"`
	Price              string               `json:"price"`
	Price2             string               `json:"price2"`
	NewUserRef         int                  `json:"newuserref"`
	OldUserRef         int                  `json:"olduserref"`
	NumOrdersCancelled uint8                `json:"orders_cancelled"`
	OldTxID            string               `json:"originaltxid"`
	Status             string               `json:"status"`
	ErrorMessage       string               `json:"error_message"`
}

type EditOrderDescription struct {
	OrderDescription string `json:"order"`
}

type CancelOrderResp struct {
	Count   int  `json:"count"`
	Pending bool `json:"pending"`
}

type CancelAllAfter struct {
	CurrentTime string `json:"currentTime"`
	TriggerTime string `json:"triggerTime"`
}

// #endregion

// #region Private Funding Data structs

type DepositMethod struct {
	Method             string      `json:"method"`
	MinDeposit         string      `json:"minimum"`
	MaxDeposit         interface{} `json:"limit"` // false when unlimited, otherwise a decimal string
	Fee                string      `json:"fee"`
	AddressSetupFee    string      `json:"address-setup-fee"`
	CanGenerateAddress bool        `json:"gen-address"`
}

type DepositAddress struct {
	Address    string      `json:"address"`
	ExpireTime string      `json:"expiretm"`
	New        bool        `json:"new"`
	Memo       string      `json:"memo"`
	Tag        interface{} `json:"tag"`
}

type DepositStatus struct {
	Method         string      `json:"method"`
	AssetClass     string      `json:"aclass"`
	Asset          string      `json:"asset"`
	RefID          string      `json:"refid"`
	TxID           string      `json:"txid"`
	Info           string      `json:"info"`
	Amount         string      `json:"amount"`
	Fee            interface{} `json:"fee"`
	TimeRequested  int64       `json:"time"`
	Status         string      `json:"status"`
	StatusProperty string      `json:"status-prop"`
	Originators    []string    `json:"originators"`
}

type WithdrawalInfo struct {
	Method string `json:"method"`
	Limit  string `json:"limit"`
	Amount string `json:"amount"`
	Fee    string `json:"fee"`
}

type WithdrawalStatus struct {
	Method         string      `json:"method"`
	Network        string      `json:"network"`
	AssetClass     string      `json:"aclass"`
	Asset          string      `json:"asset"`
	RefID          string      `json:"refid"`
	TxID           string      `json:"txid"`
	Info           string      `json:"info"`
	Amount         string      `json:"amount"`
	Fee            interface{} `json:"fee"`
	TimeRequested  int64       `json:"time"`
	Status         string      `json:"status"`
	StatusProperty string      `json:"status-prop"`
	Key            string      `json:"key"`
}

type RefIDResp struct {
	RefID string `json:"refid"`
}

// #endregion

// #region Private Staking Data structs

type StakeableAsset struct {
	Method         string             `json:"method"`
	Asset          string             `json:"asset"`
	StakingAsset   string             `json:"staking_asset"`
	Rewards        StakingRewards     `json:"rewards"`
	OnChain        bool               `json:"on_chain"`
	CanStake       bool               `json:"can_stake"`
	CanUnstake     bool               `json:"can_unstake"`
	MinimumAmount  StakingMinimums    `json:"minimum_amount"`
	Lock           *StakingLockPeriod `json:"lock,omitempty"`
	EnabledForUser bool               `json:"enabled_for_user"`
	Disabled       bool               `json:"disabled"`
}

type StakingRewards struct {
	Reward string `json:"reward"`
	Type   string `json:"type"`
}

type StakingMinimums struct {
	Staking   string `json:"staking"`
	Unstaking string `json:"unstaking"`
}

type StakingLockPeriod struct {
	Unstaking []StakingLock `json:"unstaking"`
	Staking   []StakingLock `json:"staking"`
	Lockup    []StakingLock `json:"lockup"`
}

type StakingLock struct {
	Days       float64 `json:"days"`
	Percentage float64 `json:"percentage"`
}

type StakingTransaction struct {
	Method    string `json:"method"`
	Aclass    string `json:"aclass"`
	Asset     string `json:"asset"`
	RefID     string `json:"refid"`
	Amount    string `json:"amount"`
	Fee       string `json:"fee"`
	Time      int64  `json:"time"`
	Status    string `json:"status"`
	Type      string `json:"type"` // "bonding", "reward" or "unbonding"
	BondStart int64  `json:"bond_start"`
	BondEnd   int64  `json:"bond_end"`
}

// #endregion

// #region Private Subaccounts and WebSocket structs

type AccountTransfer struct {
	TransferID string `json:"transfer_id"`
	Status     string `json:"status"`
}

type WebSocketsToken struct {
	Token   string `json:"token"`
	Expires int    `json:"expires"`
}

// #endregion

// #region positional JSON helpers

// takeLast removes and returns the "last" cursor from a pair-keyed result.
// Kraken sends it as a number for OHLC and Spread and as a string for Trades.
func takeLast(dataMap map[string]json.RawMessage) (string, error) {
	raw, ok := dataMap["last"]
	if !ok {
		return "", fmt.Errorf("%w; missing \"last\"", ErrUnexpectedJSONInput)
	}
	delete(dataMap, "last")
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("%w; \"last\" is neither string nor number | %w", ErrUnexpectedJSONInput, err)
	}
	return n.String(), nil
}

// singlePairRows returns the only remaining key of a pair-keyed result along
// with its rows.
func singlePairRows(dataMap map[string]json.RawMessage) (string, []json.RawMessage, error) {
	if len(dataMap) != 1 {
		return "", nil, fmt.Errorf("%w; expected exactly one pair, got %d", ErrUnexpectedJSONInput, len(dataMap))
	}
	for ticker, raw := range dataMap {
		var rows []json.RawMessage
		if err := json.Unmarshal(raw, &rows); err != nil {
			return "", nil, fmt.Errorf("%w; rows for %s | %w", ErrUnexpectedJSONInput, ticker, err)
		}
		return ticker, rows, nil
	}
	return "", nil, nil
}

func positional(data []byte, length int) ([]json.RawMessage, error) {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w | %w", ErrUnexpectedJSONInput, err)
	}
	if len(fields) < length {
		return nil, fmt.Errorf("%w | expected %d fields, got %d", ErrUnexpectedJSONInput, length, len(fields))
	}
	return fields, nil
}

func stringFields(fields []json.RawMessage) ([]string, error) {
	out := make([]string, len(fields))
	for i, f := range fields {
		if err := json.Unmarshal(f, &out[i]); err != nil {
			return nil, fmt.Errorf("%w; expected string, got %s", ErrUnexpectedJSONInput, string(f))
		}
	}
	return out, nil
}

func uintField(field json.RawMessage) (uint64, error) {
	var n json.Number
	if err := json.Unmarshal(field, &n); err != nil {
		return 0, fmt.Errorf("%w; expected number, got %s", ErrUnexpectedJSONInput, string(field))
	}
	v, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w; expected integer, got %s", ErrUnexpectedJSONInput, n)
	}
	return v, nil
}

func floatField(field json.RawMessage) (float64, error) {
	var f float64
	if err := json.Unmarshal(field, &f); err != nil {
		return 0, fmt.Errorf("%w; expected number, got %s", ErrUnexpectedJSONInput, string(field))
	}
	return f, nil
}

// #endregion
