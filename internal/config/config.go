package config

import "fmt"

// DefaultPageSize is the number of entries shown per page.
const DefaultPageSize = 100

type Config struct {
	BundlePath string
	Keyword    string
	PageSize   int
}

func (c Config) Validate() error {
	if c.BundlePath == "" {
		return fmt.Errorf("support bundle path is required (use -p <dir>)")
	}
	if c.Keyword == "" {
		return fmt.Errorf("keyword is required (use -k <keyword>)")
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	return nil
}
