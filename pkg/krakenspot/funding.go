package krakenspot

import (
	"context"
	"errors"
	"fmt"
)

// #region Authenticated Funding endpoints

// Calls Kraken API private Funding "DepositMethods" endpoint. Retrieve methods
// available for depositing a specified asset passed to arg 'asset'.
//
// # Required Permissions:
//
// Funds permissions - Query;
//
// Funds permissions - Deposit;
//
// # Functional Options:
//
//	func DMWithAssetClass(aclass string) GetDepositMethodsOption
//
// # Example Usage:
//
//	methods, err := kc.GetDepositMethods(ctx, "XBT")
func (kc *KrakenClient) GetDepositMethods(ctx context.Context, asset string, options ...GetDepositMethodsOption) ([]DepositMethod, error) {
	payload := NewPayload()
	payload.Add("asset", asset)
	for _, option := range options {
		option(payload)
	}
	methods, err := QueryPrivate[[]DepositMethod](ctx, kc, EndpointDepositMethods, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling GetDepositMethods() | %w", err)
	}
	return *methods, nil
}

// Calls Kraken API private Funding "DepositAddresses" endpoint. Retrieve (or
// generate new with DAWithNew() passed to arg 'options') deposit addresses
// for a particular asset and method.
//
// # Required Permissions:
//
// Funds permissions - Query;
//
// # Functional Options:
//
//	func DAWithNew() GetDepositAddressesOption
//	func DAWithAmount(amount string) GetDepositAddressesOption
//
// # Example Usage:
//
//	depositAddresses, err := kc.GetDepositAddresses(ctx, "XBT", "Bitcoin", krakenspot.DAWithNew())
func (kc *KrakenClient) GetDepositAddresses(ctx context.Context, asset, method string, options ...GetDepositAddressesOption) ([]DepositAddress, error) {
	payload := NewPayload()
	payload.Add("asset", asset)
	payload.Add("method", method)
	for _, option := range options {
		option(payload)
	}
	addresses, err := QueryPrivate[[]DepositAddress](ctx, kc, EndpointDepositAddresses, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling GetDepositAddresses() | %w", err)
	}
	return *addresses, nil
}

// Calls Kraken API private Funding "DepositStatus" endpoint. Retrieves
// information about recent deposits, most recent first.
//
// # Required Permissions:
//
// Funds permissions - Query;
//
// # Functional Options:
//
//	func DSWithAsset(asset string) GetDepositsStatusOption
//	func DSWithMethod(method string) GetDepositsStatusOption
//	func DSWithStart(start string) GetDepositsStatusOption
//	func DSWithEnd(end string) GetDepositsStatusOption
//	func DSWithLimit(limit uint) GetDepositsStatusOption
//	func DSWithAssetClass(aclass string) GetDepositsStatusOption
func (kc *KrakenClient) GetDepositsStatus(ctx context.Context, options ...GetDepositsStatusOption) ([]DepositStatus, error) {
	payload := NewPayload()
	for _, option := range options {
		option(payload)
	}
	statuses, err := QueryPrivate[[]DepositStatus](ctx, kc, EndpointDepositStatus, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling GetDepositsStatus() | %w", err)
	}
	return *statuses, nil
}

// Calls Kraken API private Funding "WithdrawInfo" endpoint. Retrieve fee
// information about potential withdrawals for specified args 'asset',
// withdrawal key name 'key', and 'amount'.
//
// # Required Permissions:
//
// Funds permissions - Query;
//
// Funds permissions - Withdraw;
func (kc *KrakenClient) GetWithdrawalInfo(ctx context.Context, asset, key, amount string) (*WithdrawalInfo, error) {
	payload := NewPayload()
	payload.Add("asset", asset)
	payload.Add("key", key)
	payload.Add("amount", amount)
	info, err := QueryPrivate[WithdrawalInfo](ctx, kc, EndpointWithdrawInfo, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling GetWithdrawalInfo() | %w", err)
	}
	return info, nil
}

// Calls Kraken API private Funding "Withdraw" endpoint. Makes a withdrawal
// request for specified args 'asset', withdrawal key name 'key', and 'amount'.
// If successful, returns resulting reference ID.
//
// # Required Permissions:
//
// Funds permissions - Withdraw;
//
// # Functional Options:
//
//	func WFWithAddress(address string) WithdrawFundsOption
//	func WFWithMaxFee(maxFee string) WithdrawFundsOption
//
// # Example Usage:
//
//	refID, err := kc.WithdrawFunds(ctx, "XBT", "btc_testnet_with1", "0.725")
func (kc *KrakenClient) WithdrawFunds(ctx context.Context, asset, key, amount string, options ...WithdrawFundsOption) (string, error) {
	payload := NewPayload()
	payload.Add("asset", asset)
	payload.Add("key", key)
	payload.Add("amount", amount)
	for _, option := range options {
		option(payload)
	}
	ref, err := QueryPrivate[RefIDResp](ctx, kc, EndpointWithdraw, payload)
	if err != nil {
		return "", fmt.Errorf("error calling WithdrawFunds() | %w", err)
	}
	return ref.RefID, nil
}

// Calls Kraken API private Funding "WithdrawStatus" endpoint. Retrieves
// information about recent withdrawals, most recent first.
//
// # Required Permissions:
//
// Funds permissions - Withdraw; OR
// Data - Query ledger entries;
//
// # Functional Options:
//
//	func WSWithAsset(asset string) GetWithdrawalsStatusOption
//	func WSWithMethod(method string) GetWithdrawalsStatusOption
//	func WSWithStart(start string) GetWithdrawalsStatusOption
//	func WSWithEnd(end string) GetWithdrawalsStatusOption
//	func WSWithAssetClass(aclass string) GetWithdrawalsStatusOption
func (kc *KrakenClient) GetWithdrawalsStatus(ctx context.Context, options ...GetWithdrawalsStatusOption) ([]WithdrawalStatus, error) {
	payload := NewPayload()
	for _, option := range options {
		option(payload)
	}
	statuses, err := QueryPrivate[[]WithdrawalStatus](ctx, kc, EndpointWithdrawStatus, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling GetWithdrawalsStatus() | %w", err)
	}
	return *statuses, nil
}

var errWithdrawalNotCancelled = errors.New("withdrawal cancellation was unsuccessful but no errors returned")

// Calls Kraken API private Funding "WithdrawCancel" endpoint. Cancels a
// recently requested withdrawal with reference ID 'refID' if it has not
// already been successfully processed.
//
// # Required Permissions:
//
// Funds permissions - Withdraw;
//
// # Example Usage:
//
//	err := kc.CancelWithdrawal(ctx, "XBT", "FTQcuak-V6Za8qrWnhzTx67yYHz8Tg")
func (kc *KrakenClient) CancelWithdrawal(ctx context.Context, asset, refID string) error {
	payload := NewPayload()
	payload.Add("asset", asset)
	payload.Add("refid", refID)
	cancelled, err := QueryPrivate[bool](ctx, kc, EndpointWithdrawCancel, payload)
	if err != nil {
		return fmt.Errorf("error calling CancelWithdrawal() | %w", err)
	}
	if !*cancelled {
		return errWithdrawalNotCancelled
	}
	return nil
}

// Calls Kraken API private Funding "WalletTransfer" endpoint. Transfers 'amount'
// of 'asset' from the Kraken spot wallet to the Kraken Futures wallet and returns
// the reference ID. Transfers the other way must be requested through the
// Futures API.
//
// # Required Permissions:
//
// Funds permissions - Withdraw;
//
// # Example Usage:
//
//	refID, err := kc.TransferToFutures(ctx, "ZUSD", "10000")
func (kc *KrakenClient) TransferToFutures(ctx context.Context, asset, amount string) (string, error) {
	payload := NewPayload()
	payload.Add("asset", asset)
	payload.Add("from", "Spot Wallet")
	payload.Add("to", "Futures Wallet")
	payload.Add("amount", amount)
	ref, err := QueryPrivate[RefIDResp](ctx, kc, EndpointWalletTransfer, payload)
	if err != nil {
		return "", fmt.Errorf("error calling TransferToFutures() | %w", err)
	}
	return ref.RefID, nil
}

// #endregion
