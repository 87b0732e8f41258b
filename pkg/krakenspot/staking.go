package krakenspot

import (
	"context"
	"fmt"
)

// #region Authenticated Staking endpoints

// Calls Kraken API private Staking "Stake" endpoint. Stakes 'amount' of
// 'asset' using staking 'method' and returns the reference ID of the bonding
// transaction. Call ListStakeableAssets() for valid asset and method pairs.
//
// # Required Permissions:
//
// Funds permissions - Withdraw;
//
// # Example Usage:
//
//	refID, err := kc.StakeAsset(ctx, "DOT", "10", "polkadot-staked")
func (kc *KrakenClient) StakeAsset(ctx context.Context, asset, amount, method string) (string, error) {
	payload := NewPayload()
	payload.Add("asset", asset)
	payload.Add("amount", amount)
	payload.Add("method", method)
	ref, err := QueryPrivate[RefIDResp](ctx, kc, EndpointStake, payload)
	if err != nil {
		return "", fmt.Errorf("error calling StakeAsset() | %w", err)
	}
	return ref.RefID, nil
}

// Calls Kraken API private Staking "Unstake" endpoint. Unstakes 'amount' of
// staked 'asset' (e.g. "DOT.S") and returns the reference ID of the unbonding
// transaction.
//
// # Required Permissions:
//
// Funds permissions - Withdraw;
func (kc *KrakenClient) UnstakeAsset(ctx context.Context, asset, amount string) (string, error) {
	payload := NewPayload()
	payload.Add("asset", asset)
	payload.Add("amount", amount)
	ref, err := QueryPrivate[RefIDResp](ctx, kc, EndpointUnstake, payload)
	if err != nil {
		return "", fmt.Errorf("error calling UnstakeAsset() | %w", err)
	}
	return ref.RefID, nil
}

// Calls Kraken API private Staking "Staking/Assets" endpoint. Lists the assets
// the account can stake along with rewards, minimums and lock periods.
//
// # Required Permissions:
//
// Funds permissions - Query;
func (kc *KrakenClient) ListStakeableAssets(ctx context.Context) ([]StakeableAsset, error) {
	assets, err := QueryPrivate[[]StakeableAsset](ctx, kc, EndpointStakingAssets, nil)
	if err != nil {
		return nil, fmt.Errorf("error calling ListStakeableAssets() | %w", err)
	}
	return *assets, nil
}

// Calls Kraken API private Staking "Staking/Pending" endpoint. Lists staking
// transactions that have not completed yet.
//
// # Required Permissions:
//
// Funds permissions - Query;
func (kc *KrakenClient) GetPendingStakingTransactions(ctx context.Context) ([]StakingTransaction, error) {
	pending, err := QueryPrivate[[]StakingTransaction](ctx, kc, EndpointStakingPending, nil)
	if err != nil {
		return nil, fmt.Errorf("error calling GetPendingStakingTransactions() | %w", err)
	}
	return *pending, nil
}

// Calls Kraken API private Staking "Staking/Transactions" endpoint. Lists the
// last 1000 staking transactions.
//
// # Required Permissions:
//
// Funds permissions - Query;
func (kc *KrakenClient) ListStakingTransactions(ctx context.Context) ([]StakingTransaction, error) {
	txs, err := QueryPrivate[[]StakingTransaction](ctx, kc, EndpointStakingTransactions, nil)
	if err != nil {
		return nil, fmt.Errorf("error calling ListStakingTransactions() | %w", err)
	}
	return *txs, nil
}

// #endregion
