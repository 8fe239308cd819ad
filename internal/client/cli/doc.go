// Package cli implements the interactive terminal client: a REPL whose
// commands prompt for input, call the auth and content services, and print
// the resulting state. The App also receives notifications and view changes
// from the services.
//
// Commands
//
//	signed out:  register, login, help, exit
//	signed in:   whoami, profile, edit, avatar, (l)ist | cards, add,
//	             like <n|id>, delete <n|id>, logout, help, exit
//
// Cards are addressed either by their 1-based position in the last printed
// list or by id.
package cli
