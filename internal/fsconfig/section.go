package fsconfig

import (
	"fmt"
	"log/slog"

	"github.com/beevik/etree"
)

// Section is a schema-bound live view over a named subtree of the
// configuration document. What a section does with its subtree is up to
// the schema package providing it; the manager only binds and registers
// them by name.
type Section interface {
	Name() string
}

// BuildFunc constructs a section instance against the document root.
// The manager is passed through so sections can trigger commits or run
// console queries of their own.
type BuildFunc func(spec SectionSpec, root *etree.Element, log *slog.Logger, mng *Manager) (Section, error)

// SectionSpec declares one section to bind during manager construction.
// Schema is the section's schema definition, opaque to this package.
type SectionSpec struct {
	Name   string
	Schema any
	Build  BuildFunc
}

func (m *Manager) bindSections(specs []SectionSpec) error {
	for _, spec := range specs {
		if spec.Build == nil {
			return fmt.Errorf("section %q has no build function", spec.Name)
		}
		section, err := spec.Build(spec, m.root, m.log, m)
		if err != nil {
			return fmt.Errorf("binding section %q: %w", spec.Name, err)
		}
		m.sections[section.Name()] = section
	}
	return nil
}

// Section looks up a bound section by name.
func (m *Manager) Section(name string) (Section, bool) {
	s, ok := m.sections[name]
	return s, ok
}

// Sections returns the names of all bound sections.
func (m *Manager) Sections() []string {
	names := make([]string, 0, len(m.sections))
	for name := range m.sections {
		names = append(names, name)
	}
	return names
}
