package config

import "fmt"

// SMSConfig holds the credentials and sender identity for the SMS provider.
type SMSConfig struct {
	AccessKey  string `koanf:"accesskey"`
	Originator string `koanf:"originator"`
}

func (c *SMSConfig) Validate() error {
	if c.AccessKey == "" {
		return fmt.Errorf("sms access key is not configured")
	}
	if c.Originator == "" {
		return fmt.Errorf("sms originator is not configured")
	}
	// MessageBird caps alphanumeric originators at 11 characters.
	if len(c.Originator) > 11 {
		return fmt.Errorf("sms originator must be at most 11 characters: %s", c.Originator)
	}
	return nil
}
