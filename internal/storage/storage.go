package storage

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/timetrack-cli/timetrack/internal/model"
)

// DefaultPath returns the default data file location in the user's home
// directory. The file name carries the active codec's extension, so JSON
// and binary builds never share a file.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, "timetracking."+activeCodec().Name()), nil
}

// Load reads the full event log from path. A missing, unreadable or
// undecodable file yields an empty log, never an error: the tool favours
// availability over strict data integrity. A file that exists but does
// not decode is moved aside with a .corrupt suffix so its contents are
// not lost on the next save.
func Load(path string) model.Log {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return model.Log{}
	}
	if err != nil {
		log.Warnf("cannot read %s, starting with an empty log: %v", path, err)
		return model.Log{}
	}

	events, err := activeCodec().Decode(data)
	if err != nil {
		backup := path + ".corrupt"
		if renameErr := os.Rename(path, backup); renameErr == nil {
			log.Warnf("corrupt data in %s (backed up to %s): %v", path, backup, err)
		} else {
			log.Warnf("corrupt data in %s: %v", path, err)
		}
		return model.Log{}
	}
	log.Debugf("loaded %d events from %s", len(events), path)
	return events
}

// Save atomically rewrites the full event log at path: encode, write to a
// temp file, rename into place.
func Save(path string, events model.Log) error {
	data, err := activeCodec().Encode(events)
	if err != nil {
		return fmt.Errorf("storage error encoding log: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	log.Debugf("saved %d events to %s", len(events), path)
	return nil
}
