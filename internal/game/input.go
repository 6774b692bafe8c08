package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"horde-arena/internal/shared/input"
	"horde-arena/internal/world"
)

// joystickReach is how far (px) the pointer must drag from its press point
// for a full-strength stick.
const joystickReach = 40

// Joystick is a virtual stick anchored where the mouse button or first
// touch went down.
type Joystick struct {
	Active   bool
	OriginX  float32
	OriginY  float32
	X, Y     float32 // normalized, magnitude <= 1
	touchID  ebiten.TouchID
	touching bool
}

func ReadInput(stick *Joystick) input.State {
	stick.update()
	return input.State{
		Up:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:   ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		StickX: stick.X,
		StickY: stick.Y,
	}
}

// ReadStart is edge-triggered: Enter starts from idle or after the end,
// R restarts at any time.
func ReadStart(phase world.Phase) bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return true
	}
	if phase != world.PhaseIdle && !phase.Ended() {
		return false
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter)
}

var choiceKeys = [][2]ebiten.Key{
	{ebiten.Key1, ebiten.KeyNumpad1},
	{ebiten.Key2, ebiten.KeyNumpad2},
	{ebiten.Key3, ebiten.KeyNumpad3},
	{ebiten.Key4, ebiten.KeyNumpad4},
}

// ReadChoice returns the offer index picked this frame, if any.
func ReadChoice(offered int) (int, bool) {
	for i, keys := range choiceKeys {
		if i >= offered {
			break
		}
		if inpututil.IsKeyJustPressed(keys[0]) || inpututil.IsKeyJustPressed(keys[1]) {
			return i, true
		}
	}
	return 0, false
}

func (j *Joystick) update() {
	x, y, down := j.pointer()
	if !down {
		*j = Joystick{}
		return
	}
	if !j.Active {
		j.Active = true
		j.OriginX, j.OriginY = x, y
	}
	j.X, j.Y = input.StickFromDrag(x-j.OriginX, y-j.OriginY, joystickReach)
}

// pointer reports the first active touch, falling back to the left mouse
// button.
func (j *Joystick) pointer() (x, y float32, down bool) {
	if j.touching && !inpututil.IsTouchJustReleased(j.touchID) {
		tx, ty := ebiten.TouchPosition(j.touchID)
		if tx != 0 || ty != 0 {
			return float32(tx), float32(ty), true
		}
	}
	j.touching = false

	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		j.touchID, j.touching = ids[0], true
		tx, ty := ebiten.TouchPosition(ids[0])
		return float32(tx), float32(ty), true
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		return float32(mx), float32(my), true
	}
	return 0, 0, false
}
