package core

import (
	"fmt"

	"github.com/chorewheel/chorewheel/pkg/models"
	"github.com/spf13/viper"
)

// ConfigurationManager loads the global tuning configuration from the
// .chorewheelrc file.
type ConfigurationManager interface {
	LoadGlobalConfig() (*models.GlobalConfig, error)
}

// viperConfigManager implements ConfigurationManager using Viper for reading
// YAML configuration files.
type viperConfigManager struct {
	// basePath is the root directory where .chorewheelrc resides.
	basePath string
}

// NewConfigurationManager creates a ConfigurationManager that reads
// configuration files relative to basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// DefaultGlobalConfig returns the stock tuning policy. The numbers are
// product choices, not contracts: Essential work weighs four times Low work,
// never-done tasks score as three full frequency windows overdue, focus-week
// tasks get a half-again boost, and low-energy days are capped at three
// recommendations.
func DefaultGlobalConfig() *models.GlobalConfig {
	return &models.GlobalConfig{
		NeverDoneMultiplier: 3,
		FocusBoost:          1.5,
		PriorityWeights: map[models.Priority]float64{
			models.PriorityEssential: 4,
			models.PriorityHigh:      3,
			models.PriorityMedium:    2,
			models.PriorityLow:       1,
		},
		EnergyCaps: map[models.EnergyLevel]int{
			models.EnergyLow:      3,
			models.EnergyModerate: 6,
			models.EnergyGood:     0, // uncapped
		},
		Rotation:        DefaultRotation,
		StatsWindowDays: 30,
	}
}

// LoadGlobalConfig reads the .chorewheelrc file from the base path using
// Viper. If the file does not exist, the stock policy is returned.
func (cm *viperConfigManager) LoadGlobalConfig() (*models.GlobalConfig, error) {
	cfg := DefaultGlobalConfig()

	v := viper.New()
	v.SetConfigName(".chorewheelrc")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("scoring.never_done_multiplier", cfg.NeverDoneMultiplier)
	v.SetDefault("scoring.focus_boost", cfg.FocusBoost)
	v.SetDefault("scoring.weights.essential", cfg.PriorityWeights[models.PriorityEssential])
	v.SetDefault("scoring.weights.high", cfg.PriorityWeights[models.PriorityHigh])
	v.SetDefault("scoring.weights.medium", cfg.PriorityWeights[models.PriorityMedium])
	v.SetDefault("scoring.weights.low", cfg.PriorityWeights[models.PriorityLow])
	v.SetDefault("energy_caps.low", cfg.EnergyCaps[models.EnergyLow])
	v.SetDefault("energy_caps.moderate", cfg.EnergyCaps[models.EnergyModerate])
	v.SetDefault("energy_caps.good", cfg.EnergyCaps[models.EnergyGood])
	v.SetDefault("stats.window_days", cfg.StatsWindowDays)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .chorewheelrc: %w", err)
	}

	cfg.NeverDoneMultiplier = v.GetFloat64("scoring.never_done_multiplier")
	cfg.FocusBoost = v.GetFloat64("scoring.focus_boost")
	cfg.PriorityWeights = map[models.Priority]float64{
		models.PriorityEssential: v.GetFloat64("scoring.weights.essential"),
		models.PriorityHigh:      v.GetFloat64("scoring.weights.high"),
		models.PriorityMedium:    v.GetFloat64("scoring.weights.medium"),
		models.PriorityLow:       v.GetFloat64("scoring.weights.low"),
	}
	cfg.EnergyCaps = map[models.EnergyLevel]int{
		models.EnergyLow:      v.GetInt("energy_caps.low"),
		models.EnergyModerate: v.GetInt("energy_caps.moderate"),
		models.EnergyGood:     v.GetInt("energy_caps.good"),
	}
	cfg.StatsWindowDays = v.GetInt("stats.window_days")

	// The rotation sequence is a flat list of category names.
	if rot := v.GetStringSlice("rotation"); len(rot) > 0 {
		seq := make([]models.Category, 0, len(rot))
		for _, c := range rot {
			cat := models.Category(c)
			if !validCategories[cat] {
				return nil, fmt.Errorf("reading .chorewheelrc: unknown rotation category %q", c)
			}
			seq = append(seq, cat)
		}
		cfg.Rotation = seq
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("reading .chorewheelrc: %w", err)
	}
	return cfg, nil
}

// validateConfig rejects tuning values the engine cannot work with.
func validateConfig(cfg *models.GlobalConfig) error {
	if cfg.NeverDoneMultiplier <= 0 {
		return fmt.Errorf("scoring.never_done_multiplier must be positive")
	}
	if cfg.FocusBoost < 1 {
		return fmt.Errorf("scoring.focus_boost must be >= 1")
	}
	for p, w := range cfg.PriorityWeights {
		if w <= 0 {
			return fmt.Errorf("scoring weight for %s must be positive", p)
		}
	}
	for e, n := range cfg.EnergyCaps {
		if n < 0 {
			return fmt.Errorf("energy cap for %s must not be negative", e)
		}
	}
	return nil
}
