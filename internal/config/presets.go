package config

// Presets are named starting configurations selectable with --preset.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"bouncy": {
		WindowWidth: DefaultWindowW, WindowHeight: DefaultWindowH,
		Dt: DefaultDt, DiskRadius: DefaultDiskRadius, Margin: DefaultMargin,
		Physics: PhysicsConfig{
			FrictionEnabled: false,
			Restitution:     1.0,
			Slop:            DefaultSlop,
			Percent:         DefaultPercent,
		},
	},
	"billiards": {
		WindowWidth: DefaultWindowW, WindowHeight: DefaultWindowH,
		Dt: DefaultDt, DiskRadius: 15, Margin: DefaultMargin,
		Physics: PhysicsConfig{
			FrictionEnabled: true,
			Restitution:     0.95,
			LinearDamping:   0.8,
			Slop:            DefaultSlop,
			Percent:         DefaultPercent,
		},
	},
	"syrup": {
		WindowWidth: DefaultWindowW, WindowHeight: DefaultWindowH,
		Dt: DefaultDt, DiskRadius: DefaultDiskRadius, Margin: DefaultMargin,
		Physics: PhysicsConfig{
			FrictionEnabled: true,
			Restitution:     0.1,
			LinearDamping:   6.0,
			Slop:            DefaultSlop,
			Percent:         DefaultPercent,
		},
	},
	"rain": {
		WindowWidth: DefaultWindowW, WindowHeight: DefaultWindowH,
		Dt: DefaultDt, DiskRadius: 10, Margin: DefaultMargin,
		Physics: PhysicsConfig{
			FrictionEnabled: false,
			Restitution:     0.4,
			GravityY:        -980,
			Slop:            DefaultSlop,
			Percent:         DefaultPercent,
		},
	},
}

// Preset returns the named preset, or nil if unknown.
func Preset(name string) *Config {
	return Presets[name]
}
