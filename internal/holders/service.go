// Package holders maintains the registry of account holders. Holder names
// are stored exactly as entered; registration and removal match by exact
// name, while duplicate detection elsewhere normalizes case and
// whitespace.
package holders

import "slices"

// Service provides in-memory lookup over the holder registry.
type Service struct {
	names []string
}

// NewService creates a Service from a copy of names.
func NewService(names []string) *Service {
	return &Service{names: append([]string(nil), names...)}
}

// All returns the registered holders in registration order.
func (s *Service) All() []string {
	return s.names
}

// Exists reports whether a holder is registered under exactly this name.
func (s *Service) Exists(name string) bool {
	return slices.Contains(s.names, name)
}

// Add registers a holder. Reports whether the name was new.
func (s *Service) Add(name string) bool {
	if name == "" || s.Exists(name) {
		return false
	}
	s.names = append(s.names, name)
	return true
}

// Remove unregisters a holder. The caller is responsible for cascading the
// removal to the holder's records.
func (s *Service) Remove(name string) bool {
	i := slices.Index(s.names, name)
	if i < 0 {
		return false
	}
	s.names = slices.Delete(s.names, i, i+1)
	return true
}
