package krakenspot

import (
	"context"
	"errors"
	"fmt"
)

var errSubaccountNotCreated = errors.New("subaccount was not created but no errors returned")

// #region Authenticated Subaccounts endpoints

// Calls Kraken API private Subaccounts "CreateSubaccount" endpoint. Creates a
// trading subaccount with details passed to args 'username' and 'email'
//
// Note: Subaccounts are currently only available to institutional clients.
//
// # Required Permissions:
//
// Institutional verification;
//
// # Example Usage:
//
//	err := kc.CreateSubaccount(ctx, "kraken-sub-1", "trader@example.com")
func (kc *KrakenClient) CreateSubaccount(ctx context.Context, username, email string) error {
	payload := NewPayload()
	payload.Add("username", username)
	payload.Add("email", email)
	created, err := QueryPrivate[bool](ctx, kc, EndpointCreateSubaccount, payload)
	if err != nil {
		return fmt.Errorf("error calling CreateSubaccount() | %w", err)
	}
	if !*created {
		return errSubaccountNotCreated
	}
	return nil
}

// Calls Kraken API private Subaccounts "AccountTransfer" endpoint. Transfer
// funds to and from master and subaccounts. Must be called by the master
// account.
//
// # Required Permissions:
//
// Institutional verification;
//
// # Example Usage:
//
//	transfer, err := kc.AccountTransfer(ctx, "XBT", "1.0", "ABCD 1234 EFGH 5678", "IJKL 0987 MNOP 6543")
func (kc *KrakenClient) AccountTransfer(ctx context.Context, asset, amount, fromAccount, toAccount string) (*AccountTransfer, error) {
	payload := NewPayload()
	payload.Add("asset", asset)
	payload.Add("amount", amount)
	payload.Add("from", fromAccount)
	payload.Add("to", toAccount)
	transfer, err := QueryPrivate[AccountTransfer](ctx, kc, EndpointAccountTransfer, payload)
	if err != nil {
		return nil, fmt.Errorf("error calling AccountTransfer() | %w", err)
	}
	return transfer, nil
}

// #endregion
