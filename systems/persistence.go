package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/sandbox/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Zoom  float64 `json:"zoom"`
	Debug bool    `json:"debug"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "zombie-sandbox",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was saved.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings stores the camera zoom and debug toggle.
func SaveCurrentSettings(e *ecs.ECS) {
	saved := &SavedSettings{}
	if entry, ok := components.Camera.First(e.World); ok {
		saved.Zoom = components.Camera.Get(entry).Zoom
	}
	saved.Debug = GetOrCreateSettings(e).Debug
	_ = SaveSettings(saved)
}

// ApplySavedSettings restores the saved zoom and debug toggle. The zoom is
// clamped by the next UpdateCamera.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	if entry, ok := components.Camera.First(e.World); ok && saved.Zoom > 0 {
		components.Camera.Get(entry).Zoom = saved.Zoom
	}
	GetOrCreateSettings(e).Debug = saved.Debug
}
