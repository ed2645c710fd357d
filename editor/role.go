package editor

import "parabola/curve"

// Role names one of the three points.
type Role uint8

const (
	RoleLeft Role = iota
	RoleDrag
	RoleRight

	roleCount
)

func (r Role) String() string {
	switch r {
	case RoleLeft:
		return "left"
	case RoleDrag:
		return "drag"
	case RoleRight:
		return "right"
	default:
		return "none"
	}
}

// Points holds exactly one point per role.
type Points [roleCount]curve.Point

// InitialPoints is the configuration the editor opens with.
var InitialPoints = Points{
	RoleLeft:  {X: 5.4, Y: 3.2},
	RoleDrag:  {X: 9.5, Y: 0.7},
	RoleRight: {X: 12.3, Y: -3.6},
}
