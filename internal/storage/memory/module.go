package memory

import "go.uber.org/fx"

// Module wires the in-memory session store.
var Module = fx.Provide(
	NewSessionStore,
	func(s *SessionStore) Store { return s },
)
