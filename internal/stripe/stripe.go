// Package stripe wraps the payment API calls the storefront makes:
// customers, payment intents for orders, the hosting subscription, and
// Connect account onboarding for site owners.
package stripe

import (
	"fmt"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/account"
	"github.com/stripe/stripe-go/v80/accountlink"
	"github.com/stripe/stripe-go/v80/customer"
	"github.com/stripe/stripe-go/v80/paymentintent"
	"github.com/stripe/stripe-go/v80/subscription"
)

type Client struct {
	hostingPriceID string
}

// NewClient sets the package-level API key and remembers the price id
// that identifies the hosting subscription in webhook traffic.
func NewClient(secretKey, hostingPriceID string) *Client {
	stripe.Key = secretKey
	return &Client{hostingPriceID: hostingPriceID}
}

func (c *Client) HostingPriceID() string {
	return c.hostingPriceID
}

func (c *Client) CreateCustomer(email, name string) (*stripe.Customer, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}

	return customer.New(params)
}

// CreatePaymentIntent opens an intent for an order total. When a
// destination account is given, funds route to that connected account.
func (c *Client) CreatePaymentIntent(amountCents int64, currency, customerID, destinationAccount string) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if customerID != "" {
		params.Customer = stripe.String(customerID)
	}
	if destinationAccount != "" {
		params.TransferData = &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(destinationAccount),
		}
	}

	return paymentintent.New(params)
}

func (c *Client) GetPaymentIntent(id string) (*stripe.PaymentIntent, error) {
	return paymentintent.Get(id, nil)
}

// CreateHostingSubscription starts the site-hosting subscription for a
// customer, left incomplete so the client can confirm the first invoice's
// payment intent.
func (c *Client) CreateHostingSubscription(customerID string) (*stripe.Subscription, error) {
	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(c.hostingPriceID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
		PaymentSettings: &stripe.SubscriptionPaymentSettingsParams{
			SaveDefaultPaymentMethod: stripe.String("on_subscription"),
		},
	}
	params.AddExpand("latest_invoice.payment_intent")

	return subscription.New(params)
}

func (c *Client) CancelSubscription(subscriptionID string) (*stripe.Subscription, error) {
	return subscription.Cancel(subscriptionID, nil)
}

// CreateExpressAccount opens a Connect Express account for a site owner.
func (c *Client) CreateExpressAccount(email string) (*stripe.Account, error) {
	params := &stripe.AccountParams{
		Type:  stripe.String(string(stripe.AccountTypeExpress)),
		Email: stripe.String(email),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{
				Requested: stripe.Bool(true),
			},
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
	}

	return account.New(params)
}

// CreateOnboardingLink returns the hosted onboarding URL for an account.
func (c *Client) CreateOnboardingLink(accountID, refreshURL, returnURL string) (*stripe.AccountLink, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
	}

	return accountlink.New(params)
}

// AccountStatus is the live readiness of a connected account.
type AccountStatus struct {
	ChargesEnabled   bool `json:"charges_enabled"`
	PayoutsEnabled   bool `json:"payouts_enabled"`
	DetailsSubmitted bool `json:"details_submitted"`
}

func (s AccountStatus) Ready() bool {
	return s.ChargesEnabled && s.PayoutsEnabled && s.DetailsSubmitted
}

// GetAccountStatus queries the payment API directly rather than trusting
// any locally cached flags.
func (c *Client) GetAccountStatus(accountID string) (AccountStatus, error) {
	acct, err := account.GetByID(accountID, nil)
	if err != nil {
		return AccountStatus{}, fmt.Errorf("failed to fetch account %s: %w", accountID, err)
	}
	return AccountStatus{
		ChargesEnabled:   acct.ChargesEnabled,
		PayoutsEnabled:   acct.PayoutsEnabled,
		DetailsSubmitted: acct.DetailsSubmitted,
	}, nil
}

func (c *Client) DeleteAccount(accountID string) error {
	if _, err := account.Del(accountID, nil); err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	return nil
}
