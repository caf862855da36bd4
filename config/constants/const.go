package constants

import (
	"os"
	"path/filepath"
)

const DefaultHomeEnv string = "ADDRCHECK_HOME"
const ConfigEnv string = "ADDRCHECK_CONFIG"

// Section of config.yaml holding addrcheck settings
const ConfigSection string = "addrcheck"

var DefaultHome string

func init() {
	if home := os.Getenv(DefaultHomeEnv); home != "" {
		DefaultHome = home
		return
	} else {
		// ~/.addrcheck default
		userHomeDir, err := os.UserHomeDir()
		if err != nil {
			DefaultHome = "/data"
		} else {
			DefaultHome = filepath.Join(userHomeDir, ".addrcheck")
		}
	}
}
