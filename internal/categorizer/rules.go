package categorizer

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"stmt-engine/internal/logging"
)

// rulesFile is the YAML document shape for a category rules file:
//
//	categories:
//	  - name: Income
//	    keywords: ["payroll", "deposit"]
type rulesFile struct {
	Categories []Rule `yaml:"categories"`
}

// LoadRules reads an ordered rule set from a YAML file. A missing file is
// not an error: the built-in defaults are returned so categorization stays
// total. A present but malformed file is an error, since silently ignoring
// a broken rules file would miscategorize every transaction.
func LoadRules(filename string, logger logging.Logger) ([]Rule, error) {
	if logger == nil {
		logger = logging.Nop()
	}

	path, err := findConfigFile(filename)
	if err != nil {
		logger.Debug("No category rules file found, using defaults",
			logging.Field{Key: "file", Value: filename})
		return DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading rules file %s: %w", path, err)
	}

	var doc rulesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing rules file %s: %w", path, err)
	}

	if len(doc.Categories) == 0 {
		logger.Warn("Rules file contains no categories, using defaults",
			logging.Field{Key: "file", Value: path})
		return DefaultRules(), nil
	}

	logger.Info("Loaded category rules",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: len(doc.Categories)})
	return doc.Categories, nil
}

// findConfigFile looks for a configuration file in standard locations.
func findConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	homeDir, err := os.UserHomeDir()
	if err == nil {
		configPath := filepath.Join(homeDir, ".config", "stmt-engine", filename)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}
	}

	return "", os.ErrNotExist
}
