package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"bikeshare/catalog"
	"bikeshare/loader"
	"bikeshare/utils"
)

const (
	ConfigFilepath = "./explorer/config/config.yaml"

	logLevelEnv = "LOG_LEVEL"
	dataDirEnv  = "DATA_DIR"
	pageSizeEnv = "PAGE_SIZE"
)

// ExplorerConfig configuration of the bikeshare explorer
// + DataDir: directory with the city files
// + Cities: trips file of each city, relative to DataDir
// + Stations: optional stations coordinates file of each city, relative to DataDir
// + PageSize: amount of raw trips shown at once
// + LogLevel: logrus level
// + Loader: trip loader configuration
type ExplorerConfig struct {
	DataDir  string                  `yaml:"data_dir" validate:"required"`
	Cities   map[string]string       `yaml:"cities" validate:"required,min=1,dive,keys,required,endkeys,required"`
	Stations map[string]string       `yaml:"stations" validate:"dive,keys,required,endkeys,required"`
	PageSize int                     `yaml:"page_size" validate:"gt=0"`
	LogLevel string                  `yaml:"log_level" validate:"required,oneof=trace debug info warn warning error fatal panic"`
	Loader   loader.TripLoaderConfig `yaml:"loader"`
}

// DefaultConfig returns the configuration used when the config file doesn't set a field
func DefaultConfig() ExplorerConfig {
	cities := make(map[string]string, len(catalog.DefaultCityData))
	for city, file := range catalog.DefaultCityData {
		cities[city] = file
	}

	return ExplorerConfig{
		DataDir:  ".",
		Cities:   cities,
		Stations: map[string]string{},
		PageSize: 5,
		LogLevel: "info",
		Loader:   loader.DefaultConfig(),
	}
}

// LoadConfig reads the config file at configFilepath on top of DefaultConfig, applies the
// LOG_LEVEL, DATA_DIR and PAGE_SIZE env vars and validates the result
func LoadConfig(configFilepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	explorerConfig := DefaultConfig()
	err = yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %s", err)
	}

	if logLevel := os.Getenv(logLevelEnv); logLevel != "" {
		explorerConfig.LogLevel = logLevel
	}
	if dataDir := os.Getenv(dataDirEnv); dataDir != "" {
		explorerConfig.DataDir = dataDir
	}
	if pageSize := os.Getenv(pageSizeEnv); pageSize != "" {
		explorerConfig.PageSize, err = strconv.Atoi(pageSize)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %s", pageSizeEnv, err)
		}
	}

	if err := explorerConfig.Validate(); err != nil {
		return nil, err
	}
	return &explorerConfig, nil
}

func (ec *ExplorerConfig) Validate() error {
	if err := validator.New().Struct(ec); err != nil {
		return fmt.Errorf("invalid explorer config: %w", err)
	}
	return nil
}

// GetCatalog returns the dataset catalog described by the config
func (ec *ExplorerConfig) GetCatalog() *catalog.Catalog {
	return catalog.NewCatalog(ec.DataDir, ec.Cities, ec.Stations)
}
