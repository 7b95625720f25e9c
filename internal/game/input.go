package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Gridiron-Aces/internal/sim"
)

// Action is a named flight control.
type Action string

const (
	ActionThrottleUp   Action = "throttleUp"
	ActionThrottleDown Action = "throttleDown"
	ActionPitchUp      Action = "pitchUp"
	ActionPitchDown    Action = "pitchDown"
	ActionYawLeft      Action = "yawLeft"
	ActionYawRight     Action = "yawRight"
	ActionRollLeft     Action = "rollLeft"
	ActionRollRight    Action = "rollRight"
	ActionMoveUp       Action = "moveUp"
	ActionMoveDown     Action = "moveDown"
	ActionShoot        Action = "shoot"
	ActionBrake        Action = "brake"
)

// Actions lists every flight action in display order.
var Actions = []Action{
	ActionThrottleUp, ActionThrottleDown,
	ActionPitchUp, ActionPitchDown,
	ActionYawLeft, ActionYawRight,
	ActionRollLeft, ActionRollRight,
	ActionMoveUp, ActionMoveDown,
	ActionShoot, ActionBrake,
}

// KeyMap binds each action to one or more keys.
type KeyMap map[Action][]ebiten.Key

// DefaultKeyMap is the stock layout.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ActionThrottleUp:   {ebiten.KeyW, ebiten.KeyArrowUp},
		ActionThrottleDown: {ebiten.KeyS, ebiten.KeyArrowDown},
		ActionPitchUp:      {ebiten.KeyX},
		ActionPitchDown:    {ebiten.KeyZ},
		ActionYawLeft:      {ebiten.KeyA, ebiten.KeyArrowLeft},
		ActionYawRight:     {ebiten.KeyD, ebiten.KeyArrowRight},
		ActionRollLeft:     {ebiten.KeyQ},
		ActionRollRight:    {ebiten.KeyE},
		ActionMoveUp:       {ebiten.KeyR},
		ActionMoveDown:     {ebiten.KeyF},
		ActionShoot:        {ebiten.KeySpace},
		ActionBrake:        {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	}
}

// lookupAction matches case-insensitively; config keys arrive lower-cased.
func lookupAction(name string) (Action, bool) {
	for _, a := range Actions {
		if strings.EqualFold(string(a), name) {
			return a, true
		}
	}
	return "", false
}

// ParseKeyMap applies overrides (action name → key names) on top of the
// defaults. An override replaces every key of that action.
func ParseKeyMap(overrides map[string][]string) (KeyMap, error) {
	km := DefaultKeyMap()
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, ok := lookupAction(name)
		if !ok {
			return nil, fmt.Errorf("unknown control action %q", name)
		}
		keys := make([]ebiten.Key, 0, len(overrides[name]))
		for _, kn := range overrides[name] {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(kn)); err != nil {
				return nil, fmt.Errorf("control %s: key %q: %w", action, kn, err)
			}
			keys = append(keys, k)
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("control %s: no keys bound", action)
		}
		km[action] = keys
	}
	return km, nil
}

// Describe lists the bound key names for an action, e.g. "W/ArrowUp".
func (km KeyMap) Describe(a Action) string {
	parts := make([]string, 0, len(km[a]))
	for _, k := range km[a] {
		parts = append(parts, k.String())
	}
	return strings.Join(parts, "/")
}

// keyState is the slice of ebiten input the game reads.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (km KeyMap) held(ks keyState, a Action) bool {
	for _, k := range km[a] {
		if ks.Pressed(k) {
			return true
		}
	}
	return false
}

// Controls samples the current frame's flight inputs.
func (km KeyMap) Controls(ks keyState) sim.Controls {
	return sim.Controls{
		ThrottleUp:   km.held(ks, ActionThrottleUp),
		ThrottleDown: km.held(ks, ActionThrottleDown),
		PitchUp:      km.held(ks, ActionPitchUp),
		PitchDown:    km.held(ks, ActionPitchDown),
		YawLeft:      km.held(ks, ActionYawLeft),
		YawRight:     km.held(ks, ActionYawRight),
		RollLeft:     km.held(ks, ActionRollLeft),
		RollRight:    km.held(ks, ActionRollRight),
		MoveUp:       km.held(ks, ActionMoveUp),
		MoveDown:     km.held(ks, ActionMoveDown),
		Shoot:        km.held(ks, ActionShoot),
		Brake:        km.held(ks, ActionBrake),
	}
}
