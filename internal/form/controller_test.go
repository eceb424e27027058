package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginCall struct {
	email, password string
}

type fakeAuth struct {
	calls []loginCall
	err   error
}

func (f *fakeAuth) Login(_ context.Context, email, password string) error {
	f.calls = append(f.calls, loginCall{email, password})
	return f.err
}

type fakeNav struct {
	paths []string
	err   error
}

func (f *fakeNav) Navigate(path string) error {
	f.paths = append(f.paths, path)
	return f.err
}

func syncSpawn(fn func()) { fn() }

func newTestController(auth Authenticator, nav Navigator, opts ...Option) *Controller {
	return New(auth, nav, append([]Option{WithSpawner(syncSpawn)}, opts...)...)
}

func TestSubmitSendsEachFieldOnce(t *testing.T) {
	auth, nav := &fakeAuth{}, &fakeNav{}
	c := newTestController(auth, nav)

	c.SetEmail("a@b.co")
	c.SetPassword("x")
	require.NoError(t, c.Submit(context.Background()))

	require.Len(t, auth.calls, 1)
	assert.Equal(t, loginCall{"a@b.co", "x"}, auth.calls[0])
}

func TestSubmitBlockedByInvalidEmail(t *testing.T) {
	auth, nav := &fakeAuth{}, &fakeNav{}
	c := newTestController(auth, nav)

	c.SetEmail("not-an-email")
	c.SetPassword("x")
	err := c.Submit(context.Background())

	require.ErrorIs(t, err, ErrBlocked)
	assert.Empty(t, auth.calls)
	assert.Empty(t, nav.paths)
	assert.Equal(t, "Please provide a valid email and password!", c.Err().Message())
	assert.Equal(t, StatusBlocked, c.Status())
}

func TestSubmitBlockedOnUntouchedForm(t *testing.T) {
	auth := &fakeAuth{}
	c := newTestController(auth, &fakeNav{})

	require.ErrorIs(t, c.Submit(context.Background()), ErrBlocked)
	assert.Empty(t, auth.calls)
}

func TestAlwaysPassSkipsValidation(t *testing.T) {
	auth := &fakeAuth{}
	c := newTestController(auth, &fakeNav{}, WithGate(AlwaysPass))

	c.SetEmail("nope")
	require.NoError(t, c.Submit(context.Background()))

	require.Len(t, auth.calls, 1)
	assert.Equal(t, loginCall{"nope", ""}, auth.calls[0])
	assert.True(t, c.Err().IsEmpty())
}

func TestLazyModeValidatesAtSubmit(t *testing.T) {
	auth := &fakeAuth{}
	c := newTestController(auth, &fakeNav{}, WithMode(Lazy))

	c.SetEmail("a@b.co")
	c.SetPassword("x")
	assert.False(t, c.Email().Valid())

	require.NoError(t, c.Submit(context.Background()))
	assert.True(t, c.Email().Valid())
	assert.Len(t, auth.calls, 1)
}

func TestLoginFailureShowsMessageVerbatim(t *testing.T) {
	auth, nav := &fakeAuth{err: errors.New("Invalid credentials")}, &fakeNav{}
	c := newTestController(auth, nav)

	c.SetEmail("a@b.co")
	c.SetPassword("x")
	require.NoError(t, c.Submit(context.Background()))

	assert.Equal(t, "Invalid credentials", c.Err().Message())
	assert.Equal(t, StatusFailed, c.Status())
	assert.Empty(t, nav.paths)
}

func TestLoginSuccessNavigatesOnce(t *testing.T) {
	auth, nav := &fakeAuth{}, &fakeNav{}
	c := newTestController(auth, nav, WithDestination("/home"))

	c.SetEmail("a@b.co")
	c.SetPassword("x")
	require.NoError(t, c.Submit(context.Background()))

	assert.Equal(t, []string{"/home"}, nav.paths)
	assert.True(t, c.Err().IsEmpty())
	assert.Equal(t, StatusSucceeded, c.Status())
}

func TestLoginSuccessLeavesPreviousErrorAlone(t *testing.T) {
	auth, nav := &fakeAuth{err: errors.New("Invalid credentials")}, &fakeNav{}
	c := newTestController(auth, nav)
	c.SetEmail("a@b.co")
	c.SetPassword("x")
	require.NoError(t, c.Submit(context.Background()))

	auth.err = nil
	require.NoError(t, c.Submit(context.Background()))

	assert.Equal(t, []string{DefaultDestination}, nav.paths)
	assert.Equal(t, "Invalid credentials", c.Err().Message())
}

func TestNavigationFailureIsReported(t *testing.T) {
	nav := &fakeNav{err: errors.New("window not available")}
	c := newTestController(&fakeAuth{}, nav)
	c.SetEmail("a@b.co")
	c.SetPassword("x")
	require.NoError(t, c.Submit(context.Background()))

	assert.Equal(t, StatusNavigationFailed, c.Status())
	assert.Equal(t, DefaultMessages.NavigationFailed+": window not available", c.Err().Message())
}

func TestResubmitWhilePendingIsIgnored(t *testing.T) {
	auth := &fakeAuth{}
	var queued []func()
	c := New(auth, &fakeNav{}, WithSpawner(func(fn func()) { queued = append(queued, fn) }))
	c.SetEmail("a@b.co")
	c.SetPassword("x")

	require.NoError(t, c.Submit(context.Background()))
	assert.True(t, c.Pending())
	require.ErrorIs(t, c.Submit(context.Background()), ErrPending)
	require.Len(t, queued, 1)

	queued[0]()
	assert.False(t, c.Pending())
	assert.Len(t, auth.calls, 1)

	require.NoError(t, c.Submit(context.Background()))
	assert.Len(t, queued, 2)
}

func TestResultIsPostedBeforeStateChanges(t *testing.T) {
	var posted []func()
	c := newTestController(&fakeAuth{err: errors.New("nope")}, &fakeNav{},
		WithPoster(func(fn func()) { posted = append(posted, fn) }))
	c.SetEmail("a@b.co")
	c.SetPassword("x")

	require.NoError(t, c.Submit(context.Background()))
	assert.True(t, c.Pending())
	assert.True(t, c.Err().IsEmpty())

	require.Len(t, posted, 1)
	posted[0]()
	assert.Equal(t, "nope", c.Err().Message())
}

func TestChangeHookRunsPerStateChange(t *testing.T) {
	changes := 0
	c := newTestController(&fakeAuth{}, &fakeNav{}, WithChangeHook(func() { changes++ }))

	_ = c.Submit(context.Background())
	assert.Equal(t, 1, changes)

	c.SetEmail("a@b.co")
	c.SetPassword("x")
	require.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, 3, changes)
}

func TestBeginCapturesCredentialsAtSubmit(t *testing.T) {
	auth := &fakeAuth{}
	c := newTestController(auth, &fakeNav{})
	c.SetEmail("a@b.co")
	c.SetPassword("first")

	attempt, err := c.Begin()
	require.NoError(t, err)
	c.SetPassword("second")

	c.Complete(attempt.Run(context.Background()))
	assert.Equal(t, Credentials{"a@b.co", "first"}, attempt.Credentials())
	assert.Equal(t, []loginCall{{"a@b.co", "first"}}, auth.calls)
}
