// Package form holds the state and submission logic of the sign-in form:
// field validators, per-field state, the single error slot and the
// controller that gates, dispatches and interprets a login attempt.
//
// Rendering is left to a view binder, which calls SetEmail, SetPassword and
// Submit from its event handlers and reads Email, Password and Err when it
// renders.
package form
