package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"billiards": {
		Seed: 7, Dt: DefaultDt, Duration: 30.0, Friction: "collision", LogLevel: "info",
		Screen: ScreenConfig{Width: 1290, Height: 720},
		Balls:  BallsConfig{Count: 16, MinRadius: 18, MaxRadius: 18, MaxAttempts: 10000},
		Launch: LaunchConfig{Speed: 1200, MaxSpeed: 5000, ScrollStep: 100},
		Render: RenderConfig{LineThickness: 3, FPS: 60},
	},
	"crowded": {
		Seed: 42, Dt: DefaultDt, Duration: 10.0, Friction: "drag", LogLevel: "info",
		Screen: ScreenConfig{Width: 1290, Height: 720},
		Balls:  BallsConfig{Count: 400, MinRadius: 4, MaxRadius: 12, MaxAttempts: 10000, InitialSpeed: 150},
		Launch: LaunchConfig{Speed: 300, MaxSpeed: 5000, ScrollStep: 100},
		Render: RenderConfig{LineThickness: 1, FPS: 60},
	},
	"sparse": {
		Seed: 42, Dt: DefaultDt, Duration: 20.0, Friction: "drag", LogLevel: "info",
		Screen: ScreenConfig{Width: 1290, Height: 720},
		Balls:  BallsConfig{Count: 12, MinRadius: 20, MaxRadius: 40, MaxAttempts: 10000, InitialSpeed: 200},
		Launch: LaunchConfig{Speed: 600, MaxSpeed: 5000, ScrollStep: 100},
		Render: RenderConfig{LineThickness: 2, FPS: 60},
	},
	"frictionless": {
		Seed: 42, Dt: DefaultDt, Duration: 20.0, Friction: "none", LogLevel: "info",
		Screen: ScreenConfig{Width: 1290, Height: 720},
		Balls:  BallsConfig{Count: 60, MinRadius: 6, MaxRadius: 24, MaxAttempts: 10000, InitialSpeed: 250},
		Launch: LaunchConfig{Speed: 300, MaxSpeed: 5000, ScrollStep: 100},
		Render: RenderConfig{LineThickness: 2, FPS: 60},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
