// Package injection implements the resolution core: a keyed registry, a
// scoped provider, and an injector that builds object graphs on demand.
//
// The moving parts, leaves first:
//
//   - Registry[V]: a string-keyed collection where every key is either in
//     single mode (one value, override requires Force) or list mode (an
//     append-ordered sequence), fixed at first registration.
//
//   - Injectable: a description of how to obtain a value. Either an
//     Instance wrapping something already built, or a Factory wrapping a
//     constructor plus an explicit, ordered dependency signature and a
//     cache flag. Dependencies are declared, not reflected: each parameter
//     names the registry key it resolves from, or is marked explicit-only
//     via Arg.
//
//   - Provider: a named collection of Injectables. The registration key is
//     taken from WithKey, else derived from WithIface, else from the
//     injectable's own result type.
//
//   - Injector: resolves an interface against an ordered provider list
//     (first provider holding the key wins), realizing factories
//     recursively and memoizing cache-enabled results for its own
//     lifetime. One injector corresponds to one resolution session; it is
//     not safe for concurrent use, but independent injectors may share
//     providers once registration is over.
//
// Failures are typed (ItemExistsError, InjectionError,
// DependencyInjectionError, UnresolvedParamError, CyclicDependencyError,
// ...) and always propagate to the caller; there is no silent defaulting.
//
// The app-level facade lives in the parent package. Import:
//
//	"github.com/davrell/spur/injection"
package injection
