package krakenspot

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountBalances(t *testing.T) {
	fk := newFakeKraken(t, map[string]string{
		EndpointBalance: okBody(`{"ZUSD":"171288.6158","XXBT":"0.0011"}`),
		EndpointBalanceEx: okBody(`{
			"ZUSD":{"balance":"25435.21","credit":"100","credit_used":"50","hold_trade":"1000.123456"},
			"XXBT":{"balance":"1.2345678901","hold_trade":"0.2"},
			"XTZ":{"balance":"12"}}`),
		EndpointAssets: okBody(`{
			"XXBT":{"aclass":"currency","altname":"XBT","decimals":4},
			"ZUSD":{"aclass":"currency","altname":"USD","decimals":4}}`),
	})
	kc := fk.client(t)
	ctx := context.Background()

	balances, err := kc.GetAccountBalances(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0.0011", balances["XXBT"])

	usd, err := kc.TotalUSDBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "171288.6158", usd.String())

	ext, err := kc.GetExtendedBalances(ctx)
	require.NoError(t, err)
	assert.Equal(t, "100", ext["ZUSD"].Credit)

	available, err := kc.GetAvailableBalances(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1.0346", available["XXBT"].String())
	assert.Equal(t, "24485.0865", available["ZUSD"].String())
	// no asset info, left unrounded
	assert.Equal(t, "12", available["XTZ"].String())

	availableUSD, err := kc.AvailableUSDBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, "24485.0865", availableUSD.String())
}

func TestTotalUSDBalance_NoUSD(t *testing.T) {
	fk := newFakeKraken(t, map[string]string{
		EndpointBalance: okBody(`{"XXBT":"0.0011"}`),
	})
	usd, err := fk.client(t).TotalUSDBalance(context.Background())
	require.NoError(t, err)
	assert.True(t, usd.IsZero())
}

func TestAccountQueries(t *testing.T) {
	order := `{"refid":null,"userref":0,"cl_ord_id":"6d1b345e-2821-40e2-ad83-4ecb18a06876","status":"open",
		"opentm":1688666559.8974,"descr":{"pair":"XBTUSD","type":"buy","ordertype":"limit","price":"30010.0",
		"price2":"0","leverage":"none","order":"buy 1.25 XBTUSD @ limit 30010.0","close":""},
		"vol":"1.25","vol_exec":"0.37","cost":"11253.7","fee":"0.0","price":"30010.0","misc":"","oflags":"fciq"}`
	fk := newFakeKraken(t, map[string]string{
		EndpointTradeBalance:  okBody(`{"eb":"1101.3425","tb":"392.2264","m":"7.0354","n":"-10.0232","c":"21.1219","v":"31.1450","e":"382.2032","mf":"375.1678","ml":"5432.57"}`),
		EndpointOpenOrders:    okBody(`{"open":{"OQCLML-BW3P3-BUCMWZ":` + order + `}}`),
		EndpointClosedOrders:  okBody(`{"closed":{"OQCLML-BW3P3-BUCMWZ":` + order + `},"count":1}`),
		EndpointQueryOrders:   okBody(`{"OBCMZD-JIEE7-77TH3F":` + order + `}`),
		EndpointTradesHistory: okBody(`{"trades":{"THVRQM-33VKH-UCI7BS":{"ordertxid":"OQCLML-BW3P3-BUCMWZ","pair":"XXBTZUSD","time":1688667796.8802,"type":"buy","ordertype":"limit","price":"30010.00000","cost":"600.20000","fee":"0.00000","vol":"0.02000000","margin":"0.00000","misc":"","trade_id":40274859,"maker":true}},"count":1}`),
		EndpointQueryTrades:   okBody(`{"THVRQM-33VKH-UCI7BS":{"ordertxid":"OQCLML-BW3P3-BUCMWZ","pair":"XXBTZUSD","type":"sell"}}`),
		EndpointOpenPositions: okBody(`{"TF5GVO-T7ZZ2-6NBKBI":{"ordertxid":"OLWNFG-LLH4R-D6SFFP","posstatus":"open","pair":"XXBTZUSD","vol":"8.82412861","net":"+0.0032"}}`),
		EndpointLedgers:       okBody(`{"ledger":{"L4UESK-KG3EQ-UFO4T5":{"refid":"TJKLXX-PGMUI-4NTLXU","time":1688464484.1787,"type":"trade","subtype":"","aclass":"currency","asset":"ZGBP","amount":"-24.5000","fee":"0.0490","balance":"459567.9171"}},"count":1}`),
		EndpointQueryLedgers:  okBody(`{"L4UESK-KG3EQ-UFO4T5":{"refid":"TJKLXX-PGMUI-4NTLXU","type":"trade","asset":"ZGBP"}}`),
		EndpointTradeVolume:   okBody(`{"currency":"ZUSD","volume":"200709587.4223","fees":{"XXBTZUSD":{"fee":"0.1000","min_fee":"0.1000","max_fee":"0.2600","next_fee":null,"tier_volume":"10000000.0000","next_volume":null}}}`),
	})
	kc := fk.client(t)
	ctx := context.Background()

	t.Run("trade balance", func(t *testing.T) {
		tb, err := kc.GetTradeBalance(ctx, "ZUSD")
		require.NoError(t, err)
		assert.Equal(t, "375.1678", tb.FreeMargin)
		assert.Equal(t, "ZUSD", fk.Last(t).Form().Get("asset"))

		_, err = kc.GetTradeBalance(ctx, "ZUSD", "XXBT")
		assert.ErrorIs(t, err, ErrTooManyArgs)
	})

	t.Run("open orders", func(t *testing.T) {
		open, err := kc.GetOpenOrders(ctx, OOWithTrades(true), OOWithClientOrderID("6d1b345e-2821-40e2-ad83-4ecb18a06876"))
		require.NoError(t, err)
		o := open.OpenOrders["OQCLML-BW3P3-BUCMWZ"]
		assert.Equal(t, "limit", o.Description.OrderType)
		assert.Equal(t, "6d1b345e-2821-40e2-ad83-4ecb18a06876", o.ClientOrderID)
		form := fk.Last(t).Form()
		assert.Equal(t, "true", form.Get("trades"))
		assert.Equal(t, "6d1b345e-2821-40e2-ad83-4ecb18a06876", form.Get("cl_ord_id"))
	})

	t.Run("closed orders", func(t *testing.T) {
		closed, err := kc.GetClosedOrders(ctx, COWithCloseTime("open"), COWithOffset(50))
		require.NoError(t, err)
		assert.Equal(t, 1, closed.Count)
		assert.Contains(t, fk.Last(t).Body, "&closetime=open&ofs=50")
	})

	t.Run("orders info", func(t *testing.T) {
		orders, err := kc.GetOrdersInfo(ctx, []string{"OBCMZD-JIEE7-77TH3F", "OMMDB2-FSB6Z-7W3HPO"})
		require.NoError(t, err)
		assert.Contains(t, orders, "OBCMZD-JIEE7-77TH3F")
		assert.Equal(t, "OBCMZD-JIEE7-77TH3F,OMMDB2-FSB6Z-7W3HPO", fk.Last(t).Form().Get("txid"))

		_, err = kc.GetOrdersInfo(ctx, nil)
		assert.ErrorIs(t, err, ErrInvalidArg)
		_, err = kc.GetOrdersInfo(ctx, make([]string, 51))
		assert.ErrorIs(t, err, ErrInvalidArg)
	})

	t.Run("trades history", func(t *testing.T) {
		history, err := kc.GetTradesHistory(ctx, THWithType("no position"))
		require.NoError(t, err)
		trade := history.Trades["THVRQM-33VKH-UCI7BS"]
		assert.Equal(t, 40274859, trade.TradeID)
		assert.True(t, trade.Maker)
		assert.Equal(t, "no position", fk.Last(t).Form().Get("type"))
	})

	t.Run("trade info", func(t *testing.T) {
		trades, err := kc.GetTradeInfo(ctx, []string{"THVRQM-33VKH-UCI7BS"}, TIWithTrades(true))
		require.NoError(t, err)
		assert.Equal(t, "sell", trades["THVRQM-33VKH-UCI7BS"].Direction)

		_, err = kc.GetTradeInfo(ctx, make([]string, 21))
		assert.ErrorIs(t, err, ErrInvalidArg)
	})

	t.Run("open positions", func(t *testing.T) {
		positions, err := kc.GetOpenPositions(ctx, OPWithDoCalcs(true))
		require.NoError(t, err)
		assert.Equal(t, "+0.0032", positions["TF5GVO-T7ZZ2-6NBKBI"].UPnL)
		assert.Equal(t, "true", fk.Last(t).Form().Get("docalcs"))
	})

	t.Run("ledgers", func(t *testing.T) {
		ledgers, err := kc.GetLedgersInfo(ctx, LIWithAsset("ZGBP"), LIWithType("trade"))
		require.NoError(t, err)
		assert.Equal(t, "459567.9171", ledgers.Ledgers["L4UESK-KG3EQ-UFO4T5"].EndBalance)

		ledger, err := kc.GetLedger(ctx, []string{"L4UESK-KG3EQ-UFO4T5"}, GLWithTrades(true))
		require.NoError(t, err)
		assert.Equal(t, "ZGBP", ledger["L4UESK-KG3EQ-UFO4T5"].Asset)
		form := fk.Last(t).Form()
		assert.Equal(t, "L4UESK-KG3EQ-UFO4T5", form.Get("id"))
		assert.Equal(t, "true", form.Get("trades"))

		_, err = kc.GetLedger(ctx, nil)
		assert.ErrorIs(t, err, ErrInvalidArg)
	})

	t.Run("trade volume", func(t *testing.T) {
		volume, err := kc.GetTradeVolume(ctx, TVWithPair("XXBTZUSD"))
		require.NoError(t, err)
		assert.Equal(t, "0.2600", volume.Fees["XXBTZUSD"].MaxFee)
		assert.True(t, strings.HasSuffix(fk.Last(t).Body, "&pair=XXBTZUSD"))
	})
}
