// Package config provides configuration management for the label exporter.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"label-exporter/internal/logger"
	"label-exporter/internal/types"
)

const (
	// DefaultConfigFileName is looked up in the working directory when no
	// explicit path is given.
	DefaultConfigFileName = "label-exporter-config.json"
	// EnvExcelFile names the input spreadsheet when it is not given positionally.
	EnvExcelFile = "EXCEL_FILE"
	// EnvPDFFile names the reference document when it is not given positionally.
	EnvPDFFile = "PDF_FILE"

	DefaultOutputDir       = "output_pdfs"
	DefaultChunkSize       = 500
	DefaultDPI             = 150
	DefaultColorFontFile   = "Sansation_Regular.ttf"
	DefaultHangtagFontFile = "Sansation_Bold.ttf"
	DefaultLogLevel        = "info"
)

// ConfigManager manages application configuration
type ConfigManager struct {
	configPath string
	config     *types.Config
}

// NewConfigManager creates a new ConfigManager for configPath. An empty path
// means DefaultConfigFileName in the working directory.
func NewConfigManager(configPath string) *ConfigManager {
	if configPath == "" {
		configPath = DefaultConfigFileName
	}
	return &ConfigManager{
		configPath: configPath,
		config:     defaultConfig(),
	}
}

func defaultConfig() *types.Config {
	return &types.Config{
		OutputDir:       DefaultOutputDir,
		ChunkSize:       DefaultChunkSize,
		DPI:             DefaultDPI,
		ColorFontFile:   DefaultColorFontFile,
		HangtagFontFile: DefaultHangtagFontFile,
		LogLevel:        DefaultLogLevel,
	}
}

// Load reads the config file. A missing file keeps the defaults; invalid JSON
// is logged and also falls back to defaults. Zero fields are back-filled.
func (m *ConfigManager) Load() error {
	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("config file not found, using defaults", logger.String("path", m.configPath))
			m.config = defaultConfig()
			return nil
		}
		return types.NewAppError(types.ErrConfig, "failed to read config file", err)
	}

	cfg := &types.Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		logger.Warn("invalid config file format, using defaults",
			logger.String("path", m.configPath), logger.Err(err))
		m.config = defaultConfig()
		return nil
	}

	applyDefaults(cfg)
	m.config = cfg
	logger.Debug("configuration loaded", logger.String("path", m.configPath))
	return nil
}

func applyDefaults(cfg *types.Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.DPI <= 0 {
		cfg.DPI = DefaultDPI
	}
	if cfg.ColorFontFile == "" {
		cfg.ColorFontFile = DefaultColorFontFile
	}
	if cfg.HangtagFontFile == "" {
		cfg.HangtagFontFile = DefaultHangtagFontFile
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

// Save writes the current configuration to the config file.
func (m *ConfigManager) Save() error {
	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return types.NewAppError(types.ErrConfig, "failed to create config directory", err)
	}

	data, err := json.MarshalIndent(m.GetConfig(), "", "  ")
	if err != nil {
		return types.NewAppError(types.ErrConfig, "failed to marshal config", err)
	}
	if err := os.WriteFile(m.configPath, data, 0644); err != nil {
		return types.NewAppError(types.ErrConfig, "failed to write config file", err)
	}

	logger.Info("configuration saved", logger.String("path", m.configPath))
	return nil
}

// GetConfig returns the current configuration.
func (m *ConfigManager) GetConfig() *types.Config {
	if m.config == nil {
		return defaultConfig()
	}
	return m.config
}

// SetConfig replaces the configuration; zero fields are back-filled.
func (m *ConfigManager) SetConfig(cfg *types.Config) {
	if cfg != nil {
		applyDefaults(cfg)
	}
	m.config = cfg
}

// GetConfigPath returns the path to the config file.
func (m *ConfigManager) GetConfigPath() string {
	return m.configPath
}

// GetExcelFile returns the spreadsheet path from the environment, if set.
func (m *ConfigManager) GetExcelFile() string {
	return os.Getenv(EnvExcelFile)
}

// GetPDFFile returns the reference document path from the environment, if set.
func (m *ConfigManager) GetPDFFile() string {
	return os.Getenv(EnvPDFFile)
}
