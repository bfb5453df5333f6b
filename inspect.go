package spur

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/davrell/spur/injection"
)

// InspectResult is a merged description of everything a mounted session
// can resolve: one entry per effective key, with shadowed registrations
// already collapsed (the highest-priority provider wins, exactly as
// resolution would). Purely for debugging and visualization.
type InspectResult struct {
	Injectables map[string]injection.Description
}

// Inspect describes the mounted graph. It fails with ErrSessionNotMounted
// before Mount.
func (s *Session) Inspect() (InspectResult, error) {
	if !s.mounted {
		return InspectResult{}, ErrSessionNotMounted
	}

	merged := make(map[string]injection.Description)
	// Walk lowest priority first so higher-priority providers overwrite
	// shadowed keys.
	for _, p := range lo.Reverse(append([]*injection.Provider(nil), s.providers...)) {
		for _, desc := range p.Describe() {
			merged[desc.Key] = desc
		}
	}
	return InspectResult{Injectables: merged}, nil
}

// Keys returns the described keys, sorted.
func (r InspectResult) Keys() []string {
	keys := lo.Keys(r.Injectables)
	sort.Strings(keys)
	return keys
}

// String renders one line per injectable:
//
//	Mailer <- factory *mail.SMTPMailer (cfg=Config)
func (r InspectResult) String() string {
	var b strings.Builder
	for _, key := range r.Keys() {
		desc := r.Injectables[key]
		for _, item := range desc.Items {
			fmt.Fprintf(&b, "%s <- %s", key, item.Label)
			if len(item.Deps) > 0 {
				pairs := lo.Map(item.Deps, func(d injection.DepDescription, _ int) string {
					return d.Param + "=" + d.Key
				})
				fmt.Fprintf(&b, " (%s)", strings.Join(pairs, ", "))
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
