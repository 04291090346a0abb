package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/fourstack/connect4/internal/engine"
)

type Config struct {
	SearchDepth int
	MoveTime    time.Duration
	NodeBudget  int64
	Parallel    bool
	Weights     engine.Weights
}

func LoadConfig() *Config {
	searchDepth := GetEnvAsInt("SEARCH_DEPTH", engine.DefaultDepth)
	moveTimeMs := GetEnvAsInt("MOVE_TIME_MS", 0)
	nodeBudget := GetEnvAsInt("NODE_BUDGET", 0)
	parallel := GetEnvAsBool("PARALLEL_SEARCH", false)

	weights := engine.DefaultWeights()
	weights.Center = GetEnvAsInt("WEIGHT_CENTER", weights.Center)
	weights.OpenTwo = GetEnvAsInt("WEIGHT_OPEN_TWO", weights.OpenTwo)
	weights.OpenThree = GetEnvAsInt("WEIGHT_OPEN_THREE", weights.OpenThree)
	weights.Win = GetEnvAsInt("WIN_SCORE", weights.Win)

	return &Config{
		SearchDepth: searchDepth,
		MoveTime:    time.Duration(moveTimeMs) * time.Millisecond,
		NodeBudget:  int64(nodeBudget),
		Parallel:    parallel,
		Weights:     weights,
	}
}

// EngineConfig maps the loaded settings onto an engine construction.
func (c *Config) EngineConfig() engine.Config {
	return engine.Config{
		Weights:    c.Weights,
		Depth:      c.SearchDepth,
		MoveTime:   c.MoveTime,
		NodeBudget: c.NodeBudget,
		Parallel:   c.Parallel,
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %v", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
