package automation

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// RobotClicker issues real clicks through robotgo: move the pointer to the
// coordinate, then press the left button once.
type RobotClicker struct{}

// Click moves to (x, y) and clicks. robotgo panics on some platform
// failures instead of returning an error; the recover turns that into an
// ordinary click failure the executor can report.
func (RobotClicker) Click(x, y int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("click at (%d,%d): %v", x, y, r)
		}
	}()

	robotgo.Move(x, y)
	robotgo.Click("left", false)
	return nil
}
