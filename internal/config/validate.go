package config

import "fmt"

func (c *Config) Validate() error {
	if c.Version == 0 {
		return fmt.Errorf("config.version must be > 0")
	}

	hasAccess := c.S3.AccessKey != ""
	hasSecret := c.S3.SecretKey != ""
	if hasAccess != hasSecret {
		return fmt.Errorf("s3.access_key and s3.secret_key must be set together (or both left empty for the default credential chain)")
	}
	if hasAccess && c.S3.Region == "" {
		return fmt.Errorf("s3.region is required when static credentials are configured")
	}

	return nil
}
