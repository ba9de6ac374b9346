package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	return nil
}

func (l *LLMConfig) validate() error {
	if l.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if l.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", l.Timeout)
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	if l.MaxBulkItems <= 0 {
		return fmt.Errorf("max_bulk_items must be > 0 (got %d)", l.MaxBulkItems)
	}
	if l.ExampleCount <= 0 {
		return fmt.Errorf("example_count must be > 0 (got %d)", l.ExampleCount)
	}
	return nil
}
