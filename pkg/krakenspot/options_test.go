package krakenspot

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func applyOptions[T ~func(*Payload)](options ...T) *Payload {
	payload := NewPayload()
	for _, option := range options {
		option(payload)
	}
	return payload
}

func TestAccountOptions(t *testing.T) {
	tests := []struct {
		name    string
		payload *Payload
		want    string
	}{
		{
			name:    "open orders",
			payload: applyOptions(OOWithTrades(true), OOWithUserRef(123), OOWithClientOrderID("abc")),
			want:    "trades=true&userref=123&cl_ord_id=abc",
		},
		{
			name:    "open orders trades false omitted",
			payload: applyOptions(OOWithTrades(false)),
			want:    "",
		},
		{
			name: "closed orders",
			payload: applyOptions(
				COWithTrades(true),
				COWithUserRef(-5),
				COWithStart(1688000000),
				COWithEnd(1689000000),
				COWithOffset(50),
				COWithCloseTime("close"),
				COWithConsolidateTaker(false),
			),
			want: "trades=true&userref=-5&start=1688000000&end=1689000000&ofs=50&closetime=close&consolidate_taker=false",
		},
		{
			name:    "closed orders invalid close time ignored",
			payload: applyOptions(COWithCloseTime("sometime")),
			want:    "",
		},
		{
			name:    "orders info",
			payload: applyOptions(OIWithTrades(true), OIWithUserRef(7), OIWithConsolidateTaker(true)),
			want:    "trades=true&userref=7&consolidate_taker=true",
		},
		{
			name: "trades history",
			payload: applyOptions(
				THWithType("closed position"),
				THWithTrades(true),
				THWithStart(1),
				THWithEnd(2),
				THWithOffset(3),
				THWithConsolidateTaker(true),
			),
			want: "type=closed+position&trades=true&start=1&end=2&ofs=3&consolidate_taker=true",
		},
		{
			name:    "trades history invalid type ignored",
			payload: applyOptions(THWithType("some position")),
			want:    "",
		},
		{
			name:    "trade info",
			payload: applyOptions(TIWithTrades(true)),
			want:    "trades=true",
		},
		{
			name:    "open positions",
			payload: applyOptions(OPWithTxID("TF5GVO-T7ZZ2-6NBKBI"), OPWithDoCalcs(true)),
			want:    "txid=TF5GVO-T7ZZ2-6NBKBI&docalcs=true",
		},
		{
			name: "ledgers info",
			payload: applyOptions(
				LIWithAsset("XBT,ETH"),
				LIWithAclass("currency"),
				LIWithType("staking"),
				LIWithStart(10),
				LIWithEnd(20),
				LIWithOffset(30),
				LIWithoutCount(true),
			),
			want: "asset=XBT%2CETH&aclass=currency&type=staking&start=10&end=20&ofs=30&without_count=true",
		},
		{
			name:    "ledgers info invalid type ignored",
			payload: applyOptions(LIWithType("airdrop")),
			want:    "",
		},
		{
			name:    "ledger",
			payload: applyOptions(GLWithTrades(true)),
			want:    "trades=true",
		},
		{
			name:    "trade volume",
			payload: applyOptions(TVWithPair("XXBTZUSD,XETHZUSD")),
			want:    "pair=XXBTZUSD%2CXETHZUSD",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.payload.Encode())
		})
	}
}

func TestOrderTypes(t *testing.T) {
	tests := []struct {
		name      string
		orderType OrderType
		want      string
	}{
		{"market", Market(), "ordertype=market"},
		{"limit", Limit("37500"), "ordertype=limit&price=37500"},
		{"stop loss", StopLoss("-5%"), "ordertype=stop-loss&price=-5%25"},
		{"take profit", TakeProfit("40000"), "ordertype=take-profit&price=40000"},
		{"stop loss limit", StopLossLimit("30000", "29900"), "ordertype=stop-loss-limit&price=30000&price2=29900"},
		{"take profit limit", TakeProfitLimit("40000", "40100"), "ordertype=take-profit-limit&price=40000&price2=40100"},
		{"trailing stop", TrailingStop("+1%"), "ordertype=trailing-stop&price=%2B1%25"},
		{"trailing stop limit", TrailingStopLimit("+100", "+50"), "ordertype=trailing-stop-limit&price=%2B100&price2=%2B50"},
		{"settle position", SettlePosition("2"), "ordertype=settle-position&leverage=2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := NewPayload()
			tt.orderType(payload)
			assert.Equal(t, tt.want, payload.Encode())
		})
	}
}

func TestAddOrderOptions(t *testing.T) {
	t.Run("order flags accumulate without duplicates", func(t *testing.T) {
		payload := applyOptions(PostOnly(), FCIB(), FCIQ(), NOMPP(), VIQC(), PostOnly())
		assert.Equal(t, "post,fcib,fciq,nompp,viqc", payload.Get("oflags"))
		assert.Equal(t, 1, payload.Len())
	})

	t.Run("general options", func(t *testing.T) {
		payload := applyOptions(
			UserRef("42"),
			DisplayVolume("0.1"),
			IndexTrigger(),
			Leverage("3"),
			ReduceOnly(),
			STPCancelBoth(),
			GoodTilDate("+60"),
			AddWithDeadline("2021-04-01T00:18:45Z"),
			ValidateAddOrder(),
		)
		assert.Equal(t, "userref=42&displayvol=0.1&trigger=index&leverage=3&reduce_only=true"+
			"&stptype=cancel-both&timeinforce=GTD&expiretm=%2B60&deadline=2021-04-01T00%3A18%3A45Z&validate=true",
			payload.Encode())
	})

	t.Run("later exclusive option wins", func(t *testing.T) {
		payload := applyOptions(STPCancelOldest(), STPCancelBoth(), GoodTilDate("0"), ImmediateOrCancel())
		assert.Equal(t, "cancel-both", payload.Get("stptype"))
		assert.Equal(t, "IOC", payload.Get("timeinforce"))
	})

	t.Run("close orders", func(t *testing.T) {
		payload := applyOptions(CloseStopLossLimit("30000", "29900"))
		assert.Equal(t, "close%5Bordertype%5D=stop-loss-limit&close%5Bprice%5D=30000&close%5Bprice2%5D=29900", payload.Encode())

		CloseLimit("35000")(payload)
		assert.Equal(t, "limit", payload.Get("close[ordertype]"))
		assert.Equal(t, "35000", payload.Get("close[price]"))
		assert.False(t, payload.Has("close[price2]"))
	})

	t.Run("close order variants", func(t *testing.T) {
		tests := []struct {
			option    AddOrderOption
			orderType string
			hasPrice2 bool
		}{
			{CloseStopLoss("1"), "stop-loss", false},
			{CloseTakeProfit("1"), "take-profit", false},
			{CloseTakeProfitLimit("1", "2"), "take-profit-limit", true},
			{CloseTrailingStop("+1"), "trailing-stop", false},
			{CloseTrailingStopLimit("+1", "+2"), "trailing-stop-limit", true},
		}
		for _, tt := range tests {
			payload := applyOptions(tt.option)
			assert.Equal(t, tt.orderType, payload.Get("close[ordertype]"))
			assert.Equal(t, tt.hasPrice2, payload.Has("close[price2]"))
		}
	})

	t.Run("client order id", func(t *testing.T) {
		id := NewClientOrderID()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.NotEqual(t, id, NewClientOrderID())
		assert.Equal(t, id, applyOptions(ClientOrderID(id)).Get("cl_ord_id"))
	})
}

func TestBatchOrder(t *testing.T) {
	t.Run("fields in fixed order", func(t *testing.T) {
		order := NewBatchOrder("limit", "buy", "1.25").
			SetPrice("37500").
			SetPrice2("37600").
			SetDisplayVolume("0.25").
			SetIndexTrigger().
			SetLeverage("2").
			SetReduceOnly().
			SetSTPType("cancel-oldest").
			SetOrderFlag("post").
			SetOrderFlag("fciq").
			SetOrderFlag("post").
			SetTimeInForce("GTD").
			SetStartTime("0").
			SetExpireTime("+30").
			SetUserRef("9").
			SetClientOrderID("cid").
			SetCloseOrder("stop-loss-limit", "30000", "29900")

		payload := NewPayload()
		order.addTo(payload, 1)
		assert.Equal(t, []string{
			"orders[1][ordertype]",
			"orders[1][type]",
			"orders[1][volume]",
			"orders[1][displayvol]",
			"orders[1][price]",
			"orders[1][price2]",
			"orders[1][trigger]",
			"orders[1][leverage]",
			"orders[1][reduce_only]",
			"orders[1][stptype]",
			"orders[1][oflags]",
			"orders[1][timeinforce]",
			"orders[1][starttm]",
			"orders[1][expiretm]",
			"orders[1][userref]",
			"orders[1][cl_ord_id]",
			"orders[1][close][ordertype]",
			"orders[1][close][price]",
			"orders[1][close][price2]",
		}, payload.Keys())
		assert.Equal(t, "post,fciq", payload.Get("orders[1][oflags]"))
		assert.Equal(t, "true", payload.Get("orders[1][reduce_only]"))
	})

	t.Run("unset fields omitted", func(t *testing.T) {
		payload := NewPayload()
		NewBatchOrder("market", "sell", "0.5").addTo(payload, 0)
		assert.Equal(t, []string{"orders[0][ordertype]", "orders[0][type]", "orders[0][volume]"}, payload.Keys())
	})

	t.Run("invalid enums ignored", func(t *testing.T) {
		order := NewBatchOrder("limit", "buy", "1").
			SetSTPType("cancel-everything").
			SetOrderFlag("postonly").
			SetTimeInForce("FOK")
		assert.Empty(t, order.STPType)
		assert.Empty(t, order.OrderFlags)
		assert.Empty(t, order.TimeInForce)
	})

	t.Run("batch options", func(t *testing.T) {
		payload := applyOptions(AddBatchWithDeadline("2021-04-01T00:18:45Z"), ValidateAddOrderBatch())
		assert.Equal(t, "deadline=2021-04-01T00%3A18%3A45Z&validate=true", payload.Encode())
	})
}

func TestEditOrderOptions(t *testing.T) {
	payload := applyOptions(
		NewUserRef("11"),
		NewVolume("2"),
		NewDisplayVolume("0.5"),
		NewPrice("30000"),
		NewPrice2("29900"),
		NewPostOnly(),
		NewDeadline("2021-04-01T00:18:45Z"),
		NewCancelResponse(),
		ValidateEditOrder(),
	)
	assert.Equal(t, "userref=11&volume=2&displayvol=0.5&price=30000&price2=29900&oflags=post"+
		"&deadline=2021-04-01T00%3A18%3A45Z&cancel_response=true&validate=true", payload.Encode())
}

func TestFundingOptions(t *testing.T) {
	tests := []struct {
		name    string
		payload *Payload
		want    string
	}{
		{"deposit methods", applyOptions(DMWithAssetClass("currency")), "aclass=currency"},
		{"deposit addresses", applyOptions(DAWithNew(), DAWithAmount("0.1")), "new=true&amount=0.1"},
		{
			name: "deposits status",
			payload: applyOptions(
				DSWithAsset("XBT"),
				DSWithMethod("Bitcoin"),
				DSWithStart("1"),
				DSWithEnd("2"),
				DSWithLimit(25),
				DSWithAssetClass("currency"),
			),
			want: "asset=XBT&method=Bitcoin&start=1&end=2&limit=25&aclass=currency",
		},
		{"withdraw funds", applyOptions(WFWithAddress("bc1qxyz"), WFWithMaxFee("0.0001")), "address=bc1qxyz&max_fee=0.0001"},
		{
			name: "withdrawals status",
			payload: applyOptions(
				WSWithAsset("XBT"),
				WSWithMethod("Bitcoin"),
				WSWithStart("1"),
				WSWithEnd("2"),
				WSWithAssetClass("currency"),
			),
			want: "asset=XBT&method=Bitcoin&start=1&end=2&aclass=currency",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.payload.Encode())
		})
	}
}
