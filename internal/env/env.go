// Package env reads the dispatcher's own settings. Settings are named
// PYTHON_EXEC_<NAME> and come from the process environment first and from the
// settings dotenv file second. The settings file is never exported into the
// environment handed to the interpreter.
package env

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const envPrefix = "PYTHON_EXEC_"

var (
	mu         sync.RWMutex
	fileValues = map[string]string{}
)

// Load reads the settings file at path. Only PYTHON_EXEC_* keys are kept. A
// missing file is not an error.
func Load(path string) error {
	values, err := godotenv.Read(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("python-exec: unable to parse %s: %w", path, err)
	}

	kept := make(map[string]string, len(values))
	for key, value := range values {
		if strings.HasPrefix(key, envPrefix) {
			kept[key] = value
		}
	}

	mu.Lock()
	fileValues = kept
	mu.Unlock()
	return nil
}

// Reset forgets the values read by Load.
func Reset() {
	mu.Lock()
	fileValues = map[string]string{}
	mu.Unlock()
}

// GetExecEnv returns the value of the PYTHON_EXEC_<name> setting, or an empty
// string when it isn't set anywhere.
func GetExecEnv(name string) string {
	key := envPrefix + name
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	mu.RLock()
	defer mu.RUnlock()
	return fileValues[key]
}

// GetExecEnvBool parses the setting with strconv.ParseBool. The second return
// value reports whether the setting was present and valid.
func GetExecEnvBool(name string) (bool, bool) {
	value, err := strconv.ParseBool(GetExecEnv(name))
	if err != nil {
		return false, false
	}
	return value, true
}

// GetExecEnvInt parses the setting as a base 10 integer. The second return
// value reports whether the setting was present and valid.
func GetExecEnvInt(name string) (int, bool) {
	value, err := strconv.Atoi(GetExecEnv(name))
	if err != nil {
		return 0, false
	}
	return value, true
}
