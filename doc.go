// Package spur is a small dependency-injection runtime: components declare
// what they need by interface key, and a resolver builds a satisfying
// object graph on demand.
//
// The module splits in two layers:
//
//   - injection: the resolution core — keyed registry, scoped provider,
//     and the injector that recursively realizes factories with
//     per-session caching. See that package's doc for the algorithm.
//
//   - spur (this package): the application facade. An App aggregates
//     providers by named scope and exposes registration sugar; a Session
//     owns a private provider plus an injector and triggers resolution;
//     Module is the mount hook for external registration code.
//
// Typical wiring:
//
//	app := spur.New()
//	_ = app.Instance(cfg)
//	_ = app.Register(injection.Factory(
//	    injection.Ctor1(NewRepo),
//	    []injection.Dependency{injection.DepOf[*Config]("cfg")},
//	))
//	app.Mount()
//
//	sess, _ := app.CreateSession()
//	repo, _ := injection.GetAs[*Repo](sess.Injector())
//
// Registration is only allowed before Mount; sessions are created after.
// Each session resolves against its own injector, so cache-enabled
// factories yield one instance per session. Runnable demos live under
// examples/.
package spur
