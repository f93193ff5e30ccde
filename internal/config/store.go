package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// userIDKey is the only field of the settings file this tool reads.
const userIDKey = "userId"

// Settings is the content of the settings file. Fields other than userId
// are kept as-is so that saving does not drop them.
type Settings struct {
	UserID string

	extra map[string]json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler. The document must be a JSON
// object; a userId that is not a string is an error.
func (s *Settings) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	var userID string
	if raw, ok := fields[userIDKey]; ok {
		if err := json.Unmarshal(raw, &userID); err != nil {
			return fmt.Errorf("%s: %w", userIDKey, err)
		}
		delete(fields, userIDKey)
	}
	s.UserID = userID
	s.extra = fields
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Settings) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage, len(s.extra)+1)
	for k, v := range s.extra {
		fields[k] = v
	}
	if s.UserID != "" {
		b, err := json.Marshal(s.UserID)
		if err != nil {
			return nil, err
		}
		fields[userIDKey] = b
	}
	return json.Marshal(fields)
}

// Store reads and writes the settings file at a fixed path. There is no
// locking: the last writer wins.
type Store struct {
	path string
	log  logrus.FieldLogger
}

// NewStore creates a store for the settings file at path.
func NewStore(path string, log logrus.FieldLogger) *Store {
	return &Store{path: path, log: log}
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file. A missing, unreadable or unparsable file
// yields empty settings; problems other than a missing file are logged.
func (s *Store) Load() Settings {
	logEntry := s.log.WithField("path", s.path)
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		logEntry.Debug("No config file")
		return Settings{}
	}
	if err != nil {
		logEntry.WithField("cause", err).Warning("Could not read config file, using empty config")
		return Settings{}
	}
	var settings Settings
	if err := json.Unmarshal(b, &settings); err != nil {
		logEntry.WithField("cause", err).Warning("Could not parse config file, using empty config")
		return Settings{}
	}
	return settings
}

// Save writes settings as indented JSON, creating the directory if needed.
func (s *Store) Save(settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	b, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	b = append(b, '\n')
	if err := os.WriteFile(s.path, b, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	s.log.WithField("path", s.path).Debug("Config saved")
	return nil
}

// Exists reports whether the settings file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Remove deletes the settings file.
func (s *Store) Remove() error {
	return os.Remove(s.path)
}
