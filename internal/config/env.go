package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read at start-up
const (
	EnvPolicy     = "RRGO_POLICY"
	EnvPolicyFile = "RRGO_POLICY_FILE"
	EnvFormat     = "RRGO_FORMAT"
)

// DefaultPolicyFile is picked up automatically when it exists in the working directory
const DefaultPolicyFile = "policy.yaml"

// Env holds flag defaults taken from the environment
type Env struct {
	Policy     string
	PolicyFile string
	Format     string
}

// LoadEnv loads .env style files into the process environment and returns the
// values rrgo cares about. Missing files are not an error; variables already set win.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, err
		}
	}
	return Env{
		Policy:     os.Getenv(EnvPolicy),
		PolicyFile: os.Getenv(EnvPolicyFile),
		Format:     os.Getenv(EnvFormat),
	}, nil
}

// ResolvePolicyFile picks the policy file from the flag, then the environment,
// then policy.yaml in the working directory if it exists.
func ResolvePolicyFile(flagValue string, env Env) string {
	if flagValue != "" {
		return flagValue
	}
	if env.PolicyFile != "" {
		return env.PolicyFile
	}
	if _, err := os.Stat(DefaultPolicyFile); err == nil {
		return DefaultPolicyFile
	}
	return ""
}
