package macro

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/gapvim/internal/input/key"
)

// persistedMacro is one register in the macros file.
type persistedMacro struct {
	Register string `json:"register"`
	Keys     string `json:"keys"`
}

// persistedData is the root structure of the macros file.
type persistedData struct {
	Version    int              `json:"version"`
	SavedAt    time.Time        `json:"saved_at"`
	LastPlayed string           `json:"last_played,omitempty"`
	Macros     []persistedMacro `json:"macros"`
}

const currentVersion = 1

// Export encodes the registers of recorder as JSON.
func Export(recorder *Recorder) ([]byte, error) {
	regs := recorder.Registers()
	data := persistedData{
		Version: currentVersion,
		SavedAt: time.Now(),
		Macros:  []persistedMacro{},
	}
	if lp := recorder.LastPlayed(); lp != 0 {
		data.LastPlayed = string(lp)
	}
	for _, name := range regs.NonEmpty() {
		data.Macros = append(data.Macros, persistedMacro{
			Register: string(name),
			Keys:     key.FormatSequence(regs.Get(name)),
		})
	}
	return json.MarshalIndent(data, "", "  ")
}

// Import decodes JSON produced by Export into recorder. With merge set,
// registers that already hold a macro are kept.
func Import(recorder *Recorder, jsonData []byte, merge bool) error {
	var data persistedData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return fmt.Errorf("failed to unmarshal macros: %w", err)
	}
	if data.Version > currentVersion {
		return fmt.Errorf("unsupported macros version: %d (max supported: %d)",
			data.Version, currentVersion)
	}

	regs := recorder.Registers()
	if !merge {
		regs.ClearAll()
	}
	for _, m := range data.Macros {
		name := []rune(m.Register)
		if len(name) != 1 || !IsValidRegister(name[0]) {
			continue
		}
		if merge && regs.Len(name[0]) > 0 {
			continue
		}
		events, err := key.ParseSequence(m.Keys)
		if err != nil {
			return fmt.Errorf("register %s: %w", m.Register, err)
		}
		_ = regs.Set(name[0], events)
	}
	if lp := []rune(data.LastPlayed); len(lp) == 1 && IsValidRegister(lp[0]) {
		recorder.SetLastPlayed(lp[0])
	}
	return nil
}

// Save writes the registers to path. The file is written atomically using
// a temporary file and rename.
func Save(recorder *Recorder, path string) error {
	jsonData, err := Export(recorder)
	if err != nil {
		return fmt.Errorf("failed to marshal macros: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Load replaces the registers with the contents of path. A missing file
// leaves the registers untouched.
func Load(recorder *Recorder, path string) error {
	jsonData, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read macros file: %w", err)
	}
	return Import(recorder, jsonData, false)
}

// DefaultMacrosPath returns the default path for storing macros, e.g.
// ~/.config/gapvim/macros.json.
func DefaultMacrosPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "gapvim", "macros.json"), nil
}
