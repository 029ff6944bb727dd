package googleauth

import "fmt"

// Config holds Google OAuth client configuration
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("googleauth: ClientID is required")
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("googleauth: ClientSecret is required")
	}
	if c.RedirectURL == "" {
		return fmt.Errorf("googleauth: RedirectURL is required")
	}
	return nil
}

// UserInfo is the verified Google identity returned by Exchange.
type UserInfo struct {
	ID      string // Google subject id
	Email   string
	Name    string
	Picture string
}
