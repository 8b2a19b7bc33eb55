package systems

import (
	"github.com/automoto/sandbox/archetypes"
	"github.com/automoto/sandbox/components"
	cfg "github.com/automoto/sandbox/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the settings singleton, creating it from config
// on first use.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(ecs.World); ok {
		return components.Settings.Get(entry)
	}
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.Set(entry, &components.SettingsData{
		Debug: cfg.Debug.ShowCollision,
	})
	return components.Settings.Get(entry)
}

// UpdateSettings toggles the debug overlay.
func UpdateSettings(ecs *ecs.ECS) {
	input, ok := getInput(ecs)
	if !ok {
		return
	}
	if input.Action(cfg.ActionDebug).JustPressed {
		settings := GetOrCreateSettings(ecs)
		settings.Debug = !settings.Debug
	}
}
