package game

import "github.com/sirupsen/logrus"

// Input action names understood by Route.
const (
	ActionSpeedUp  = "speedUp"
	ActionSlowDown = "slowDown"
	ActionPause    = "pause"
	ActionQuit     = "quit"
)

var knownActions = map[string]bool{
	ActionSpeedUp:  true,
	ActionSlowDown: true,
	ActionPause:    true,
	ActionQuit:     true,
}

// IsKnownAction reports whether Route does anything with action.
func IsKnownAction(action string) bool {
	return knownActions[action]
}

// Route maps a pressed input action to a time-scale step or a transition request.
// Unknown actions are not errors; they route to None so new bindings need not be mirrored here.
func Route(action string, ts *TimeScaleController) Trans {
	switch action {
	case ActionSpeedUp:
		from, to := ts.SpeedUp()
		logrus.Infof("Speeding up, from %v to %v", from, to)
		return None()
	case ActionSlowDown:
		from, to := ts.SlowDown()
		logrus.Infof("Slowing down, from %v to %v", from, to)
		return None()
	case ActionPause:
		return Push(NewPaused())
	case ActionQuit:
		return Quit()
	default:
		logrus.Debugf("ignoring unbound action %q", action)
		return None()
	}
}

func isScaleAction(action string) bool {
	return action == ActionSpeedUp || action == ActionSlowDown
}
