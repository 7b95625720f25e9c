package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakeKeys is a scripted keyboard. just holds keys pressed this frame.
type fakeKeys struct {
	down map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{down: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeKeys) Pressed(k ebiten.Key) bool     { return f.down[k] }
func (f *fakeKeys) JustPressed(k ebiten.Key) bool { return f.just[k] }

func (f *fakeKeys) hold(keys ...ebiten.Key) {
	for _, k := range keys {
		f.down[k] = true
	}
}

func (f *fakeKeys) tap(keys ...ebiten.Key) {
	for _, k := range keys {
		f.just[k] = true
	}
}

// endFrame clears taps; held keys stay down.
func (f *fakeKeys) endFrame() {
	f.just = map[ebiten.Key]bool{}
}

func (f *fakeKeys) releaseAll() {
	f.down = map[ebiten.Key]bool{}
	f.just = map[ebiten.Key]bool{}
}

func TestDefaultKeyMap_CoversEveryAction(t *testing.T) {
	km := DefaultKeyMap()
	for _, a := range Actions {
		if len(km[a]) == 0 {
			t.Fatalf("action %s has no default key", a)
		}
	}
	if got := km.Describe(ActionThrottleUp); got != "W/ArrowUp" {
		t.Fatalf("throttleUp keys = %q", got)
	}
}

func TestKeyMap_Controls(t *testing.T) {
	km := DefaultKeyMap()
	keys := newFakeKeys()
	keys.hold(ebiten.KeyArrowUp, ebiten.KeyD, ebiten.KeySpace, ebiten.KeyShiftRight, ebiten.KeyX)

	c := km.Controls(keys)
	if !c.ThrottleUp || !c.YawRight || !c.Shoot || !c.Brake || !c.PitchUp {
		t.Fatalf("held inputs missing: %+v", c)
	}
	if c.ThrottleDown || c.YawLeft || c.PitchDown || c.RollLeft || c.MoveUp {
		t.Fatalf("unheld inputs set: %+v", c)
	}
}

func TestParseKeyMap_Overrides(t *testing.T) {
	km, err := ParseKeyMap(map[string][]string{
		"shoot":      {"Enter", "J"},
		"throttleup": {"I"},
	})
	if err != nil {
		t.Fatalf("ParseKeyMap: %v", err)
	}
	if got := km[ActionShoot]; len(got) != 2 || got[0] != ebiten.KeyEnter || got[1] != ebiten.KeyJ {
		t.Fatalf("shoot = %v", got)
	}
	if got := km[ActionThrottleUp]; len(got) != 1 || got[0] != ebiten.KeyI {
		t.Fatalf("throttleUp = %v", got)
	}
	if got := km[ActionBrake]; len(got) != 2 {
		t.Fatalf("untouched brake binding changed: %v", got)
	}
}

func TestParseKeyMap_Errors(t *testing.T) {
	cases := map[string]map[string][]string{
		"unknown action": {"barrelRoll": {"B"}},
		"unknown key":    {"shoot": {"NotAKey"}},
		"empty binding":  {"shoot": {}},
	}
	for name, in := range cases {
		if _, err := ParseKeyMap(in); err == nil {
			t.Fatalf("%s: accepted %v", name, in)
		}
	}
}
