package infrastructure

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"binner/internal/domain"
)

type YAMLConfigReader struct {
	logger *zap.Logger
}

func NewYAMLConfigReader(logger *zap.Logger) *YAMLConfigReader {
	return &YAMLConfigReader{logger: logger}
}

// ReadConfig loads the configuration file at path. An empty path or a
// missing file is not an error: the tool normally runs bare in a pipe, so
// defaults apply. Command-line overrides are the caller's business.
func (r *YAMLConfigReader) ReadConfig(path string) (*domain.Config, error) {
	// decimals: 0 is a valid setting, so the "shortest form" default has
	// to be in place before unmarshalling.
	config := domain.Config{Decimals: -1}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			r.logger.Debug("Config file not found, using defaults", zap.String("path", path))
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, &config); err != nil {
				return nil, err
			}
		}
	}

	r.setDefaults(&config)

	return &config, nil
}

func (r *YAMLConfigReader) setDefaults(config *domain.Config) {
	if config.BinWidth == 0 {
		config.BinWidth = 1.0
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}
