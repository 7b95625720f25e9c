package sim

import "math"

// Tuning holds every gameplay constant. DefaultTuning returns the shipped values;
// config may override individual fields.
type Tuning struct {
	// --- Flight ---
	ThrottleRate float64 `mapstructure:"throttleRate"` // throttle units per second (brake is 2x)
	PitchRate    float64 `mapstructure:"pitchRate"`    // rad/s
	YawRate      float64 `mapstructure:"yawRate"`      // rad/s
	RollRate     float64 `mapstructure:"rollRate"`     // rad/s
	VerticalRate float64 `mapstructure:"verticalRate"` // direct climb/sink assist, units/s²
	MaxPitch     float64 `mapstructure:"maxPitch"`     // rad, ±
	MaxRoll      float64 `mapstructure:"maxRoll"`      // rad, ±
	MaxSpeed     float64 `mapstructure:"maxSpeed"`     // thrust at full throttle
	Drag         float64 `mapstructure:"drag"`         // velocity multiplier per step
	Gravity      float64 `mapstructure:"gravity"`      // units/s²
	GroundLevel  float64 `mapstructure:"groundLevel"`  // minimum aircraft altitude
	Boundary     float64 `mapstructure:"boundary"`     // half-width of the square flight area
	LevelingRate float64 `mapstructure:"levelingRate"` // auto-level decay per second

	// --- Weapons ---
	FireInterval       float64 `mapstructure:"fireInterval"`       // s between player shots
	ProjectileSpeed    float64 `mapstructure:"projectileSpeed"`    // units/s
	ProjectileLifetime float64 `mapstructure:"projectileLifetime"` // s
	ProjectileRange    float64 `mapstructure:"projectileRange"`    // max distance from world origin
	HitRadius          float64 `mapstructure:"hitRadius"`          // strict < counts as a hit
	ProjectileDamage   float64 `mapstructure:"projectileDamage"`
	EnemyFireChance    float64 `mapstructure:"enemyFireChance"` // per enemy per frame

	// --- Enemies ---
	WaveSize      int     `mapstructure:"waveSize"`
	OrbitRadius   float64 `mapstructure:"orbitRadius"`
	OrbitRate     float64 `mapstructure:"orbitRate"`     // rad/s around the centre
	OrbitSpacing  float64 `mapstructure:"orbitSpacing"`  // rad between slots
	CruiseAlt     float64 `mapstructure:"cruiseAlt"`     // mean enemy altitude
	AltSwing      float64 `mapstructure:"altSwing"`      // ± altitude oscillation
	AltSwingRate  float64 `mapstructure:"altSwingRate"`  // rad/s of the altitude oscillation
	StartAltitude float64 `mapstructure:"startAltitude"` // player spawn height
	StartThrottle float64 `mapstructure:"startThrottle"`

	// --- Scoring ---
	MaxHealth  float64 `mapstructure:"maxHealth"`
	KillPoints int     `mapstructure:"killPoints"`
	WaveBonus  int     `mapstructure:"waveBonus"`
}

// DefaultTuning returns the stock arcade feel.
func DefaultTuning() Tuning {
	return Tuning{
		ThrottleRate: 2.0,
		PitchRate:    1.5,
		YawRate:      1.0,
		RollRate:     2.0,
		VerticalRate: 15.0,
		MaxPitch:     math.Pi / 3,
		MaxRoll:      math.Pi / 2,
		MaxSpeed:     50,
		Drag:         0.98,
		Gravity:      9.8,
		GroundLevel:  2,
		Boundary:     100,
		LevelingRate: 0.5,

		FireInterval:       0.5,
		ProjectileSpeed:    100,
		ProjectileLifetime: 3.0,
		ProjectileRange:    500,
		HitRadius:          8,
		ProjectileDamage:   25,
		EnemyFireChance:    0.02,

		WaveSize:      3,
		OrbitRadius:   60,
		OrbitRate:     0.5,
		OrbitSpacing:  2,
		CruiseAlt:     25,
		AltSwing:      10,
		AltSwingRate:  0.3,
		StartAltitude: 10,
		StartThrottle: 0.5,

		MaxHealth:  100,
		KillPoints: 100,
		WaveBonus:  500,
	}
}
