package payment

import (
	"fmt"

	"github.com/storefront/backend/internal/domain/checkout"
)

const (
	cashfreeProductionBaseURL = "https://api.cashfree.com/pg"
	cashfreeSandboxBaseURL    = "https://sandbox.cashfree.com/pg"
	cashfreeAPIVersion        = "2023-08-01"
)

// CashfreeConfig holds Cashfree PG credentials and environment selection.
// Mode must be set explicitly; there is no default environment, so a
// misconfigured deployment fails closed instead of hitting production
// with sandbox keys or vice versa.
type CashfreeConfig struct {
	Mode      string // "sandbox" or "production"
	AppID     string // x-client-id
	SecretKey string // x-client-secret
}

// Validate checks the configuration
func (c *CashfreeConfig) Validate() error {
	if c.Mode == "" {
		return checkout.ErrGatewayNotConfigured
	}
	if c.Mode != "sandbox" && c.Mode != "production" {
		return fmt.Errorf("cashfree: invalid mode %q", c.Mode)
	}
	if c.AppID == "" {
		return fmt.Errorf("cashfree: app id is required")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("cashfree: secret key is required")
	}
	return nil
}

// BaseURL returns the API base URL for the configured mode
func (c *CashfreeConfig) BaseURL() string {
	if c.Mode == "production" {
		return cashfreeProductionBaseURL
	}
	return cashfreeSandboxBaseURL
}
