package env

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load loads environment variables from a .env file in the working directory.
// A missing file is reported as an error so the caller can decide how loud to be about it.
func Load(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// RequiredStringVariable returns the value of an environment variable or panics if not set
func RequiredStringVariable(name string) string {
	value := os.Getenv(name)
	if value == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", name))
	}
	return value
}

// StringVariable returns the value of an environment variable or a default value
func StringVariable(name, defaultValue string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return defaultValue
}

// IntVariable returns the value of an environment variable as int, or defaultValue if not set.
// Panics when the variable is set to something that is not an integer.
func IntVariable(name string, defaultValue int) int {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		panic(fmt.Sprintf("environment variable %s must be an integer, got: %s", name, value))
	}
	return intValue
}

// Uint64Variable is IntVariable for unsigned 64-bit values such as random seeds.
func Uint64Variable(name string, defaultValue uint64) uint64 {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue
	}
	uintValue, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("environment variable %s must be an unsigned integer, got: %s", name, value))
	}
	return uintValue
}

// FloatVariable returns the value of an environment variable as float64, or defaultValue if not set.
func FloatVariable(name string, defaultValue float64) float64 {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		panic(fmt.Sprintf("environment variable %s must be a number, got: %s", name, value))
	}
	return floatValue
}

// BoolVariable accepts the values understood by strconv.ParseBool.
func BoolVariable(name string, defaultValue bool) bool {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		panic(fmt.Sprintf("environment variable %s must be a boolean, got: %s", name, value))
	}
	return boolValue
}
