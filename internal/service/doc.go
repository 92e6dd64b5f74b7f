// Package service contains the application use cases. It sits between the
// HTTP layer and the domain: services resolve request defaults, consult the
// stores in internal/store, run the study planner and translate failures
// into errors the API layer can map to status codes.
//
// Services receive their collaborators through constructor injection and
// depend only on store interfaces, never on a concrete database. Operations
// that touch more than one store run inside store.RunInTransaction.
package service
