package form

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

const DefaultDestination = "/error"

var (
	// ErrPending is returned by Submit and Begin while a login attempt is
	// still in flight.
	ErrPending = errors.New("form: login already in progress")
	// ErrBlocked is returned when the gate rejects the current field values.
	ErrBlocked = errors.New("form: invalid email or password")
)

// Credentials is the pair read from the fields at submit time.
type Credentials struct {
	Email    string
	Password string
}

// Authenticator performs the login exchange. A nil error means success; a
// non-nil error's message is shown to the user as is.
type Authenticator interface {
	Login(ctx context.Context, email, password string) error
}

type AuthenticatorFunc func(ctx context.Context, email, password string) error

func (f AuthenticatorFunc) Login(ctx context.Context, email, password string) error {
	return f(ctx, email, password)
}

// Navigator moves the user to another page.
type Navigator interface {
	Navigate(path string) error
}

type NavigatorFunc func(path string) error

func (f NavigatorFunc) Navigate(path string) error { return f(path) }

// Messages are the fixed user-facing strings the controller and its binders
// need.
type Messages struct {
	Blocked          string
	EmailHint        string
	PasswordHint     string
	NavigationFailed string
}

var DefaultMessages = Messages{
	Blocked:          "Please provide a valid email and password!",
	EmailHint:        "Enter a valid email address",
	PasswordHint:     "Password can't be blank!",
	NavigationFailed: "Signed in, but the next page could not be opened",
}

// Status is the state of the most recent submission attempt.
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSucceeded
	StatusFailed
	StatusBlocked
	StatusNavigationFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	case StatusBlocked:
		return "blocked"
	case StatusNavigationFailed:
		return "navigation failed"
	}
	return "unknown"
}

// Controller owns the field state and error slot of one sign-in form and
// drives submissions. All methods except Attempt.Run must be called from the
// goroutine that owns the UI.
type Controller struct {
	email    *Field
	password *Field
	err      ErrorState
	status   Status

	auth        Authenticator
	nav         Navigator
	gate        Gate
	mode        Mode
	destination string
	msgs        Messages

	spawn    func(func())
	post     func(func())
	onChange func()
	log      *logrus.Entry
}

// Option configures a Controller.
type Option func(*Controller)

// WithGate replaces the default RequireValid gate. A nil gate lets every
// submission through.
func WithGate(g Gate) Option {
	return func(c *Controller) { c.gate = g }
}

// WithMode selects eager or lazy field validation.
func WithMode(m Mode) Option {
	return func(c *Controller) { c.mode = m }
}

// WithDestination sets the path opened after a successful login.
func WithDestination(path string) Option {
	return func(c *Controller) { c.destination = path }
}

// WithSpawner sets how the login task is started. The default runs it on a
// new goroutine.
func WithSpawner(spawn func(func())) Option {
	return func(c *Controller) { c.spawn = spawn }
}

// WithPoster sets how the login result is handed back to the UI goroutine.
// The default calls the continuation directly.
func WithPoster(post func(func())) Option {
	return func(c *Controller) { c.post = post }
}

// WithChangeHook registers a callback run after every state change made by a
// submission, typically a re-render.
func WithChangeHook(fn func()) Option {
	return func(c *Controller) { c.onChange = fn }
}

func WithMessages(m Messages) Option {
	return func(c *Controller) { c.msgs = m }
}

func WithLogger(l *logrus.Entry) Option {
	return func(c *Controller) { c.log = l }
}

// New returns a controller with empty fields and no error.
func New(auth Authenticator, nav Navigator, opts ...Option) *Controller {
	c := &Controller{
		auth:        auth,
		nav:         nav,
		gate:        RequireValid,
		mode:        Eager,
		destination: DefaultDestination,
		msgs:        DefaultMessages,
		spawn:       func(fn func()) { go fn() },
		post:        func(fn func()) { fn() },
		onChange:    func() {},
		log:         logrus.WithField("component", "form"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.gate == nil {
		c.gate = AlwaysPass
	}
	c.email = NewField(ValidateEmail, c.mode)
	c.password = NewField(ValidatePassword, c.mode)
	return c
}

func (c *Controller) Email() *Field       { return c.email }
func (c *Controller) Password() *Field    { return c.password }
func (c *Controller) Err() *ErrorState    { return &c.err }
func (c *Controller) Status() Status      { return c.status }
func (c *Controller) Pending() bool       { return c.status == StatusPending }
func (c *Controller) Destination() string { return c.destination }
func (c *Controller) Messages() Messages  { return c.msgs }

// SetEmail is the input handler for the email field.
func (c *Controller) SetEmail(v string) { c.email.SetValue(v) }

// SetPassword is the input handler for the password field.
func (c *Controller) SetPassword(v string) { c.password.SetValue(v) }

// Attempt is a login request that passed the gate and has not run yet.
type Attempt struct {
	creds Credentials
	auth  Authenticator
}

func (a Attempt) Credentials() Credentials { return a.creds }

// Run performs the login call. It does not touch controller state and may be
// called from any goroutine.
func (a Attempt) Run(ctx context.Context) Result {
	return Result{Err: a.auth.Login(ctx, a.creds.Email, a.creds.Password)}
}

// Result is the outcome of Attempt.Run.
type Result struct {
	Err error
}

// Begin reads both fields, applies the gate and, if it passes, marks the
// controller pending. When the gate fails the fixed blocked message is
// written to the error slot and ErrBlocked is returned.
func (c *Controller) Begin() (Attempt, error) {
	if c.status == StatusPending {
		return Attempt{}, ErrPending
	}

	creds := Credentials{
		Email:    c.email.Value(),
		Password: c.password.Value(),
	}

	if !c.gate(c.email, c.password) {
		c.err.Set(c.msgs.Blocked)
		c.status = StatusBlocked
		c.log.WithField("email", creds.Email).Debug("submission blocked by validation")
		return Attempt{}, ErrBlocked
	}

	c.status = StatusPending
	c.log.WithField("email", creds.Email).Debug("login attempt started")
	return Attempt{creds: creds, auth: c.auth}, nil
}

// Complete applies the outcome of a login attempt. On success the error slot
// is left alone and the navigator is asked to open the destination; a
// navigation failure is reported in the error slot. On failure the login
// error's message is shown verbatim.
func (c *Controller) Complete(res Result) {
	if res.Err != nil {
		c.status = StatusFailed
		c.err.Set(res.Err.Error())
		c.log.WithError(res.Err).Debug("login failed")
		return
	}

	c.status = StatusSucceeded
	c.log.WithField("destination", c.destination).Debug("login succeeded")
	if err := c.nav.Navigate(c.destination); err != nil {
		c.status = StatusNavigationFailed
		c.err.Set(c.msgs.NavigationFailed + ": " + err.Error())
		c.log.WithError(err).Warn("navigation after login failed")
	}
}

// Submit handles a submit event: it runs Begin, then starts the login call
// with the configured spawner and posts Complete back with the poster. The
// change hook runs after each state change.
func (c *Controller) Submit(ctx context.Context) error {
	attempt, err := c.Begin()
	if errors.Is(err, ErrPending) {
		return err
	}
	c.onChange()
	if err != nil {
		return err
	}

	c.spawn(func() {
		res := attempt.Run(ctx)
		c.post(func() {
			c.Complete(res)
			c.onChange()
		})
	})
	return nil
}
