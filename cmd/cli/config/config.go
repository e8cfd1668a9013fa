package config

import (
	"os"
	"path/filepath"
)

const defaultAPIURL = "http://localhost:8080"

const tokenFileName = ".bounty_token"

// APIURL returns the base URL for the OpenBounty API.
// It can be overridden with the BOUNTY_API_URL environment variable.
func APIURL() string {
	if v := os.Getenv("BOUNTY_API_URL"); v != "" {
		return v
	}
	return defaultAPIURL
}

// ==========================
// Token Storage Helpers
// ==========================

// SaveToken stores the token in the user's home directory for later CLI calls.
func SaveToken(token string) error {
	return os.WriteFile(tokenPath(), []byte(token), 0600)
}

func LoadToken() (string, error) {
	data, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ClearToken removes the stored token. Missing file counts as logged out.
func ClearToken() error {
	err := os.Remove(tokenPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func tokenPath() string {
	dir, _ := os.UserHomeDir()
	return filepath.Join(dir, tokenFileName)
}
