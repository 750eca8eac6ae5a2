package view

import (
	"github.com/aretw0/introspection"
)

// ControllerState exposes internal state for observability.
type ControllerState struct {
	View    State `json:"view"`
	Visible int   `json:"visible"`
	Total   int   `json:"total"`
}

// Snapshot returns an introspection view of the controller.
func (c *Controller) Snapshot() introspection.Introspectable {
	return controllerIntrospector{c}
}

type controllerIntrospector struct {
	c *Controller
}

func (i controllerIntrospector) State() any {
	return ControllerState{
		View:    i.c.state,
		Visible: len(i.c.Visible()),
		Total:   i.c.store.Len(),
	}
}

func (i controllerIntrospector) ComponentType() string {
	return "controller"
}

var _ introspection.Component = controllerIntrospector{}
