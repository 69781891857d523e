package utils

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrConfigFile = errors.New("error reading config file")

// GetConfigFile returns the content of the config file at filepath. Errors wrap ErrConfigFile.
func GetConfigFile(filepath string) ([]byte, error) {
	configFile, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFile, err)
	}
	defer configFile.Close()

	configFileBytes, err := io.ReadAll(configFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigFile, filepath, err)
	}

	return configFileBytes, nil
}
