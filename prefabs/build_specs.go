package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// ComponentSpec returns the decoded spec of one component of a prefab.
// The zero value is returned when the prefab lacks the component.
func ComponentSpec[T any](filename, component string) (T, bool, error) {
	var zero T
	spec, err := LoadEntityBuildSpec(filename)
	if err != nil {
		return zero, false, err
	}
	raw, ok := spec.Components[component]
	if !ok {
		return zero, false, nil
	}
	out, err := DecodeComponentSpec[T](raw)
	if err != nil {
		return zero, false, err
	}
	return out, true, nil
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	// Rotation about the screen normal, in degrees.
	Rotation float64 `yaml:"rotation"`
}

type PhysicsBodyComponentSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Radius     float64 `yaml:"radius"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
	Static     bool    `yaml:"static"`
	Frozen     bool    `yaml:"frozen"`
}

type CharacterMovementComponentSpec struct {
	Mass      float64 `yaml:"mass"`
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

type ShapeRenderComponentSpec struct {
	Radius float64   `yaml:"radius"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Color  YAMLColor `yaml:"color"`
}

type LineRenderComponentSpec struct {
	StartX    float64   `yaml:"start_x"`
	StartY    float64   `yaml:"start_y"`
	EndX      float64   `yaml:"end_x"`
	EndY      float64   `yaml:"end_y"`
	Width     float32   `yaml:"width"`
	Color     YAMLColor `yaml:"color"`
	AntiAlias bool      `yaml:"anti_alias"`
}

type BoundsComponentSpec struct {
	Radius float64 `yaml:"radius"`
}

type AreaTriggerComponentSpec struct {
	Radius float64 `yaml:"radius"`
}

type ProjectileComponentSpec struct {
	Speed    float64 `yaml:"speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

type TTLComponentSpec struct {
	Frames int `yaml:"frames"`
}

// GravityBallComponentSpec holds the field tuning. Pointer fields fall back
// to the core defaults when omitted.
type GravityBallComponentSpec struct {
	Mode                 string    `yaml:"mode"`
	AttractForce         *float64  `yaml:"attract_force"`
	RepulsionForce       *float64  `yaml:"repulsion_force"`
	HomingAcceleration   *float64  `yaml:"homing_acceleration"`
	MovementSpeed        *float64  `yaml:"movement_speed"`
	MaxDistanceToCarrier *float64  `yaml:"max_distance_to_carrier"`
	AreaRadius           *float64  `yaml:"area_radius"`
	AnchorOffset         *Vec3Spec `yaml:"anchor_offset"`
}

type CarrierComponentSpec struct {
	ActiveDuration     *float64 `yaml:"active_duration"`
	SwingMagnitude     *float64 `yaml:"swing_magnitude"`
	HookSlack          *float64 `yaml:"hook_slack"`
	MuzzleOffset       Vec3Spec `yaml:"muzzle_offset"`
	HookOffset         Vec3Spec `yaml:"hook_offset"`
	GravityBall        string   `yaml:"gravity_ball"`
	Projectile         string   `yaml:"projectile"`
	FireCooldownFrames int      `yaml:"fire_cooldown_frames"`
}

type LevelBoundsComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}
