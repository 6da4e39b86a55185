package game

// KeyCode names a keyboard key using the DOM KeyboardEvent.code values the
// viewer sends.
type KeyCode string

const (
	KeyW       KeyCode = "KeyW"
	KeyA       KeyCode = "KeyA"
	KeyS       KeyCode = "KeyS"
	KeyD       KeyCode = "KeyD"
	KeyP       KeyCode = "KeyP"
	ArrowUp    KeyCode = "ArrowUp"
	ArrowDown  KeyCode = "ArrowDown"
	ArrowLeft  KeyCode = "ArrowLeft"
	ArrowRight KeyCode = "ArrowRight"
	Enter      KeyCode = "Enter"
)

var knownKeys = map[KeyCode]bool{
	KeyW: true, KeyA: true, KeyS: true, KeyD: true, KeyP: true,
	ArrowUp: true, ArrowDown: true, ArrowLeft: true, ArrowRight: true,
	Enter: true,
}

// IsKnownKey reports whether the key is one the table reacts to.
func IsKnownKey(k KeyCode) bool {
	return knownKeys[k]
}

// KeyEvent is a press or release coming from an input transport.
type KeyEvent struct {
	Key     KeyCode `json:"key"`
	Pressed bool    `json:"pressed"`
}

// ButtonInput tracks held keys and the press/release edges of the current
// tick. Clear must be called once per tick after the update systems ran.
type ButtonInput struct {
	pressed      map[KeyCode]bool
	justPressed  map[KeyCode]bool
	justReleased map[KeyCode]bool
}

func NewButtonInput() *ButtonInput {
	return &ButtonInput{
		pressed:      make(map[KeyCode]bool),
		justPressed:  make(map[KeyCode]bool),
		justReleased: make(map[KeyCode]bool),
	}
}

// Press registers a key going down. A repeat while already held does not
// fire a second edge.
func (b *ButtonInput) Press(k KeyCode) {
	if b.pressed[k] {
		return
	}
	b.pressed[k] = true
	b.justPressed[k] = true
}

// Release registers a key going up.
func (b *ButtonInput) Release(k KeyCode) {
	if !b.pressed[k] {
		return
	}
	delete(b.pressed, k)
	b.justReleased[k] = true
}

// Apply feeds one transport event into the input state.
func (b *ButtonInput) Apply(ev KeyEvent) {
	if ev.Pressed {
		b.Press(ev.Key)
	} else {
		b.Release(ev.Key)
	}
}

func (b *ButtonInput) Pressed(k KeyCode) bool {
	return b.pressed[k]
}

// AnyPressed reports whether any of the keys is held.
func (b *ButtonInput) AnyPressed(keys ...KeyCode) bool {
	for _, k := range keys {
		if b.pressed[k] {
			return true
		}
	}
	return false
}

func (b *ButtonInput) JustPressed(k KeyCode) bool {
	return b.justPressed[k]
}

func (b *ButtonInput) JustReleased(k KeyCode) bool {
	return b.justReleased[k]
}

// Clear drops this tick's edges. Held keys stay held.
func (b *ButtonInput) Clear() {
	clear(b.justPressed)
	clear(b.justReleased)
}
