package constants

import (
	"os"
	"path/filepath"
)

const DefaultHomeEnv = "WALLETFEE_HOME"
const ConfigEnv = "WALLETFEE_CONFIG"

// DefaultHome is searched last for a config.yaml.
var DefaultHome = homeDir()

func homeDir() string {
	if home := os.Getenv(DefaultHomeEnv); home != "" {
		return home
	}
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return "/data"
	}
	return filepath.Join(userHomeDir, ".walletfee")
}
