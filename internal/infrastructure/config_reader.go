package infrastructure

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/MovGP0/ThermodynimcComputing/internal/domain"
)

type YAMLConfigReader struct {
	logger *zap.Logger
}

func NewYAMLConfigReader(logger *zap.Logger) *YAMLConfigReader {
	return &YAMLConfigReader{logger: logger}
}

// Read overlays the YAML file at path onto cfg, which arrives carrying
// the per-command defaults. CLI flag overrides are applied by the caller
// afterwards.
func (r *YAMLConfigReader) Read(path string, cfg *domain.Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	r.setDefaults(cfg)
	r.logger.Debug("config loaded", zap.String("path", path))
	return nil
}

func (r *YAMLConfigReader) setDefaults(cfg *domain.Config) {
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = 100000
	}
	if cfg.StartTemp == 0 {
		cfg.StartTemp = 2.4
	}
	if cfg.CoolingRate <= 0 || cfg.CoolingRate >= 1 {
		cfg.CoolingRate = 0.995
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
