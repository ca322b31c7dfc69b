package loader

import (
	"sort"
	"strings"
)

// Probe reports which companion components are active in the host.
type Probe interface {
	// IsPresent reports whether the named component is active.
	IsPresent(name string) bool
	// Version returns the version of the named component, if known.
	Version(name string) (string, bool)
}

// StaticProbe is a Probe over a fixed set of components.
type StaticProbe struct {
	versions map[string]string
}

// NewStaticProbe creates a probe for the given components, mapped to their
// versions. An empty version means unknown.
func NewStaticProbe(components map[string]string) *StaticProbe {
	versions := make(map[string]string, len(components))
	for name, version := range components {
		versions[name] = version
	}
	return &StaticProbe{versions: versions}
}

// ParseComponents builds a probe from a list like "Nexo,BetonQuest@3.1.0".
// Blank entries are ignored.
func ParseComponents(list string) *StaticProbe {
	components := make(map[string]string)
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, version, _ := strings.Cut(entry, "@")
		components[strings.TrimSpace(name)] = strings.TrimSpace(version)
	}
	return NewStaticProbe(components)
}

// IsPresent implements Probe.
func (p *StaticProbe) IsPresent(name string) bool {
	_, ok := p.versions[name]
	return ok
}

// Version implements Probe.
func (p *StaticProbe) Version(name string) (string, bool) {
	v, ok := p.versions[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Names returns the known component names, sorted.
func (p *StaticProbe) Names() []string {
	names := make([]string, 0, len(p.versions))
	for name := range p.versions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
