package models

// View is a navigation target of the terminal UI.
type View string

const (
	ViewMain     View = "main"
	ViewLogin    View = "signin"
	ViewRegister View = "signup"
)

// Notification is the transient modal shown after auth actions.
type Notification struct {
	Success bool
	Message string
}
