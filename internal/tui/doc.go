// Package tui implements the terminal user interface of the birthday keeper
// on top of Bubble Tea.
//
// Two programs run one after another: the login flow (menu, sign-in and
// sign-up pages behind [RootModel]) produces a [models.Session], and the
// contacts loop lists, shows, adds and deletes the contacts of that session
// until the user quits or logs out.
package tui
