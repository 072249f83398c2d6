package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSession is returned when a command needs a session and none is configured
var ErrNoSession = errors.New("no session: run 'stopwatch session new' or pass --session")

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	Session     string
	SessionFile string
	Output      string
	Verbose     bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("STOPWATCH_SERVER", "http://localhost:8080"),
		Session:     os.Getenv("STOPWATCH_SESSION"),
		SessionFile: getEnvOrDefault("STOPWATCH_SESSION_FILE", defaultSessionFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadSession loads the session code from file if not already set
func (c *Config) LoadSession() error {
	if c.Session != "" {
		return nil
	}

	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No session file is fine
		}
		return err
	}

	c.Session = strings.TrimSpace(string(data))
	return nil
}

// SaveSession saves the session code to the session file
func (c *Config) SaveSession(code string) error {
	c.Session = code

	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.SessionFile, []byte(code), 0600)
}

// ClearSession removes the session file if it holds code
func (c *Config) ClearSession(code string) error {
	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if strings.TrimSpace(string(data)) != code {
		return nil
	}
	return os.Remove(c.SessionFile)
}

// RequireSession returns the configured session code
func (c *Config) RequireSession() (string, error) {
	if c.Session == "" {
		return "", ErrNoSession
	}
	return c.Session, nil
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stopwatch/session"
	}
	return filepath.Join(home, ".stopwatch", "session")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
