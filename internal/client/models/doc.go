// Package models defines the client-side representation of the Around
// backend resources: the authenticated user, the profile, photo cards and
// their like state, plus the small view-level types (notifications and
// navigation targets) exchanged between services and the terminal UI.
package models
