package view

import "context"

// Role is the structural part of a row that received a click.
type Role int

const (
	RoleNone Role = iota
	RoleToggle
	RoleLabel
	RoleDelete
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleToggle:
		return "toggle"
	case RoleLabel:
		return "label"
	case RoleDelete:
		return "delete"
	default:
		return "none"
	}
}

// Target is a click on one part of one row.
type Target struct {
	Row  *Row
	Role Role
}

// Handler reacts to a click on a row.
type Handler func(ctx context.Context, row *Row) error

// Dispatcher maps roles to handlers. Roles without a handler are ignored.
type Dispatcher struct {
	handlers map[Role]Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Role]Handler)}
}

// Handle registers h for role, replacing any previous handler.
func (d *Dispatcher) Handle(role Role, h Handler) {
	d.handlers[role] = h
}

// Dispatch runs the handler for the target's role. It reports whether a
// handler ran.
func (d *Dispatcher) Dispatch(ctx context.Context, target Target) (bool, error) {
	if target.Row == nil {
		return false, nil
	}
	h, ok := d.handlers[target.Role]
	if !ok {
		return false, nil
	}
	return true, h(ctx, target.Row)
}
