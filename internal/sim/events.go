package sim

// Side says who fired a projectile.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// ExpireReason is why a projectile left play without hitting anything.
type ExpireReason int

const (
	ExpireNone ExpireReason = iota
	ExpireLifetime
	ExpireGround
	ExpireBounds
)

func (r ExpireReason) String() string {
	switch r {
	case ExpireLifetime:
		return "lifetime"
	case ExpireGround:
		return "ground"
	case ExpireBounds:
		return "bounds"
	default:
		return "none"
	}
}

// EventKind tags one frame Event.
type EventKind int

const (
	EventShot EventKind = iota
	EventHit
	EventExpire
	EventKill
	EventWaveCleared
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventHit:
		return "hit"
	case EventExpire:
		return "expire"
	case EventKill:
		return "kill"
	case EventWaveCleared:
		return "wave_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is something that happened during one Scene.Frame. Consumers (audio,
// HUD feed, metrics, SimLog) react to these; the core never calls them directly.
type Event struct {
	Kind       EventKind
	Side       Side // shooter side for shot/hit/expire
	Projectile uint64
	EnemyID    string // target for player hits and kills
	Reason     ExpireReason
	Position   Vec3
	Damage     float64
	Score      int // store score after the event
	Wave       int // store wave after the event
}
