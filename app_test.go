package spur_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davrell/spur"
	"github.com/davrell/spur/injection"
)

type config struct {
	env string
}

type mailer interface {
	Send(msg string) string
}

type smtpMailer struct {
	cfg *config
}

func (m *smtpMailer) Send(msg string) string { return m.cfg.env + ": " + msg }

type noopMailer struct{}

func (m *noopMailer) Send(msg string) string { return msg }

func smtpMailerFactory() *injection.Injectable {
	return injection.Factory(
		injection.Ctor1(func(cfg *config) (*smtpMailer, error) { return &smtpMailer{cfg: cfg}, nil }),
		[]injection.Dependency{injection.DepOf[*config]("cfg")},
	)
}

func noopMailerFactory() *injection.Injectable {
	return injection.Factory(func(args []any) (*noopMailer, error) {
		return &noopMailer{}, nil
	}, nil)
}

//
// -----------------------------------------------------------------------------
// Registration
// -----------------------------------------------------------------------------

// TestAppInstance verifies an instance registered against an interface is
// returned as-is by a session.
func TestAppInstance(t *testing.T) {
	t.Parallel()

	app := spur.New()
	m := &noopMailer{}
	require.NoError(t, app.Instance(m, injection.WithIface((*mailer)(nil))))
	app.Mount()

	sess, err := app.CreateSession()
	require.NoError(t, err)

	got, err := sess.Get((*mailer)(nil))
	require.NoError(t, err)
	assert.Same(t, m, got)
}

// TestAppInstance_WithKey verifies explicit keys route registration and
// lookup.
func TestAppInstance_WithKey(t *testing.T) {
	t.Parallel()

	app := spur.New()
	m := &noopMailer{}
	require.NoError(t, app.Instance(m, injection.WithKey("mailer.noop")))
	app.Mount()

	sess, err := app.CreateSession()
	require.NoError(t, err)

	got, err := sess.Get(nil, injection.Named("mailer.noop"))
	require.NoError(t, err)
	assert.Same(t, m, got)
}

// TestAppRegister_Factory verifies a factory registered without iface or
// key is resolvable under its result type.
func TestAppRegister_Factory(t *testing.T) {
	t.Parallel()

	app := spur.New()
	require.NoError(t, app.Register(noopMailerFactory()))
	app.Mount()

	sess, err := app.CreateSession()
	require.NoError(t, err)

	got, err := injection.GetAs[*noopMailer](sess.Injector())
	require.NoError(t, err)
	assert.NotNil(t, got)
}

// TestAppRegister_Force verifies duplicate registration fails with
// ItemExistsError and Force replaces the binding.
func TestAppRegister_Force(t *testing.T) {
	t.Parallel()

	app := spur.New()
	require.NoError(t, app.Instance(&config{env: "old"}))

	err := app.Instance(&config{env: "new"})
	var exists injection.ItemExistsError
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, "config", exists.Key)

	require.NoError(t, app.Instance(&config{env: "new"}, injection.Force()))
	app.Mount()

	sess, err := app.CreateSession()
	require.NoError(t, err)
	got, err := injection.GetAs[*config](sess.Injector())
	require.NoError(t, err)
	assert.Equal(t, "new", got.env)
}

// TestAppRegister_AsList verifies one-to-many bindings fan out in
// registration order.
func TestAppRegister_AsList(t *testing.T) {
	t.Parallel()

	app := spur.New()
	require.NoError(t, app.Instance(&config{env: "test"}))
	require.NoError(t, app.Register(smtpMailerFactory(),
		injection.WithIface((*mailer)(nil)), injection.AsList()))
	require.NoError(t, app.Register(noopMailerFactory(),
		injection.WithIface((*mailer)(nil)), injection.AsList()))
	app.Mount()

	sess, err := app.CreateSession()
	require.NoError(t, err)

	mailers, err := injection.GetListAs[mailer](sess.Injector())
	require.NoError(t, err)
	require.Len(t, mailers, 2)
	assert.IsType(t, &smtpMailer{}, mailers[0])
	assert.IsType(t, &noopMailer{}, mailers[1])
}

//
// -----------------------------------------------------------------------------
// Scopes
// -----------------------------------------------------------------------------

// TestAppScopes verifies a scope-only binding resolves in sessions created
// with that scope and fails with InjectionError otherwise.
func TestAppScopes(t *testing.T) {
	t.Parallel()

	app := spur.New()
	require.NoError(t, app.Register(noopMailerFactory(), injection.InScope("test")))
	app.Mount()

	scoped, err := app.CreateSession("test")
	require.NoError(t, err)
	_, err = scoped.Get((*noopMailer)(nil))
	require.NoError(t, err)

	plain, err := app.CreateSession()
	require.NoError(t, err)
	_, err = plain.Get((*noopMailer)(nil))
	var injErr injection.InjectionError
	require.True(t, errors.As(err, &injErr))
	assert.Equal(t, "noopMailer", injErr.Key)
}

// TestAppScopes_ScopeShadowsRoot verifies a requested scope sits before
// the root scope in priority order.
func TestAppScopes_ScopeShadowsRoot(t *testing.T) {
	t.Parallel()

	app := spur.New()
	require.NoError(t, app.Instance(&config{env: "root"}))
	require.NoError(t, app.Instance(&config{env: "test"}, injection.InScope("test")))
	app.Mount()

	sess, err := app.CreateSession("test")
	require.NoError(t, err)
	got, err := injection.GetAs[*config](sess.Injector())
	require.NoError(t, err)
	assert.Equal(t, "test", got.env)
}

//
// -----------------------------------------------------------------------------
// Mount gates
// -----------------------------------------------------------------------------

// TestAppMountGates verifies registration and inclusion close at Mount and
// sessions require it.
func TestAppMountGates(t *testing.T) {
	t.Parallel()

	app := spur.New()

	_, err := app.CreateSession()
	require.ErrorIs(t, err, spur.ErrNotMounted)

	app.Mount()
	assert.True(t, app.Mounted())

	require.ErrorIs(t, app.Instance(&config{}), spur.ErrMounted)
	require.ErrorIs(t, app.Register(noopMailerFactory()), spur.ErrMounted)
	require.ErrorIs(t, app.Include(spur.ModuleFunc(func(*spur.App) error { return nil })), spur.ErrMounted)

	// Mount is idempotent.
	app.Mount()
}

//
// -----------------------------------------------------------------------------
// Include
// -----------------------------------------------------------------------------

type mailModule struct{}

func (mailModule) Mount(app *spur.App) error {
	return app.Register(noopMailerFactory())
}

func (mailModule) ModuleName() string { return "mail" }

// TestAppInclude verifies module mounting, the recorded include names, and
// the rejection of values without the mount hook.
func TestAppInclude(t *testing.T) {
	t.Parallel()

	app := spur.New()
	require.NoError(t, app.Include(mailModule{}))
	require.NoError(t, app.Include(spur.ModuleFunc(func(a *spur.App) error {
		return a.Instance(&config{env: "mod"})
	})))

	includes := app.Includes()
	require.Len(t, includes, 2)
	assert.Equal(t, "mail", includes[0])

	err := app.Include(42)
	var incErr spur.IncludeModuleError
	require.True(t, errors.As(err, &incErr))
	assert.Equal(t, "int", incErr.Module)
	assert.Len(t, app.Includes(), 2)

	app.Mount()
	sess, err := app.CreateSession()
	require.NoError(t, err)
	_, err = sess.Get((*noopMailer)(nil))
	require.NoError(t, err)
}

// TestAppInclude_MountFailure verifies a failing module mount propagates
// and is not recorded.
func TestAppInclude_MountFailure(t *testing.T) {
	t.Parallel()

	app := spur.New()
	boom := errors.New("boom")
	err := app.Include(spur.ModuleFunc(func(*spur.App) error { return boom }))
	require.ErrorIs(t, err, boom)
	assert.Empty(t, app.Includes())
}

//
// -----------------------------------------------------------------------------
// Logging
// -----------------------------------------------------------------------------

// TestAppLogging verifies the zerolog wiring: registration and mount are
// logged, and sessions trace resolutions.
func TestAppLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)

	app := spur.New(spur.WithLogger(logger))
	require.NoError(t, app.Instance(&config{env: "test"}))
	app.Mount()

	sess, err := app.CreateSession()
	require.NoError(t, err)
	_, err = injection.GetAs[*config](sess.Injector())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "registered injectable")
	assert.Contains(t, out, "app mounted")
	assert.Contains(t, out, "session created")
	assert.Contains(t, out, "resolved")
	assert.Contains(t, out, `"key":"config"`)
}
