// Package services implements the account and card operations of the
// development backend on top of the repositories.
package services
