package repository

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"gfabackend/services"
)

// LoadRuleTable builds the process-wide rule table. The table is loaded once
// per process lifetime and handed to the engine explicitly; it is never
// reloaded mid-run, so every result in a process traces to one version.
//
// When RULES_FILE is set, the table is read from that JSON file (site- or
// revision-specific tables); otherwise the built-in APP-2/APP-151 table is
// used.
func LoadRuleTable(logger *zap.Logger) (*services.RuleTable, error) {
	path := os.Getenv("RULES_FILE")
	if path == "" {
		table, err := services.DefaultRuleTable()
		if err != nil {
			return nil, fmt.Errorf("load built-in rule table: %w", err)
		}
		logger.Info("rule table loaded",
			zap.String("source", "built-in"),
			zap.String("version", table.Version()),
			zap.Int("entries", len(table.Entries())))
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file %s: %w", path, err)
	}
	table, err := services.RuleTableFromJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}
	logger.Info("rule table loaded",
		zap.String("source", path),
		zap.String("version", table.Version()),
		zap.Int("entries", len(table.Entries())))
	return table, nil
}
