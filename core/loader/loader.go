package loader

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"tooltips/core/integration"
	"tooltips/core/script"

	"go.uber.org/zap"
	"golang.org/x/mod/semver"
)

// ErrIncompatibleVersion marks a component whose version the adapter does not support.
var ErrIncompatibleVersion = errors.New("incompatible component version")

// Env is handed to an integration while it installs.
type Env struct {
	// Component is the present component the integration was selected for.
	Component string
	// Version is the component version, empty if unknown.
	Version string
	// Registry receives capability providers.
	Registry *integration.Registry
	// Scripts receives conditions, actions and placeholder expansions.
	Scripts *script.Registry
	// Logger is scoped to the component.
	Logger *zap.Logger
}

// Integration describes how to wire one companion component into the host.
type Integration struct {
	// Name labels the integration in logs and reports. Defaults to the first component.
	Name string
	// Components lists candidate component names; the first present one is used.
	Components []string
	// Require validates the component version before installing. Optional.
	Require func(version string) error
	// Install constructs the adapter and registers it.
	Install func(ctx context.Context, env *Env) error
	// Shutdown releases adapter state at host shutdown. Optional.
	Shutdown func(ctx context.Context) error
	// ShutdownWhenSkipped runs Shutdown for a present component even if
	// Require or Install rejected it.
	ShutdownWhenSkipped bool
}

func (in Integration) label() string {
	if in.Name != "" {
		return in.Name
	}
	if len(in.Components) > 0 {
		return in.Components[0]
	}
	return "unnamed"
}

// Status is the outcome of one integration during LoadAll.
type Status string

const (
	// StatusAbsent means none of the integration's components is present.
	StatusAbsent Status = "absent"
	// StatusRegistered means the adapter was installed.
	StatusRegistered Status = "registered"
	// StatusSkipped means the component is present but was not installed.
	StatusSkipped Status = "skipped"
)

// Result is the report line of one integration.
type Result struct {
	Name      string `json:"name"`
	Component string `json:"component,omitempty"`
	Version   string `json:"version,omitempty"`
	Status    Status `json:"status"`
	Reason    string `json:"reason,omitempty"`
}

// Manager bootstraps the integration catalog against a Probe.
type Manager struct {
	mu           sync.Mutex
	probe        Probe
	registry     *integration.Registry
	scripts      *script.Registry
	logger       *zap.Logger
	integrations []Integration
	teardown     []Integration
	report       []Result
	loaded       bool
	stopped      bool
}

// NewManager creates a new integration manager.
func NewManager(probe Probe, registry *integration.Registry, scripts *script.Registry, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		probe:    probe,
		registry: registry,
		scripts:  scripts,
		logger:   logger,
	}
}

// Register appends an integration to the catalog.
func (m *Manager) Register(in Integration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.integrations = append(m.integrations, in)
}

// LoadAll installs every integration whose component is present, in catalog order.
// It runs once; later calls return the first report.
func (m *Manager) LoadAll(ctx context.Context) []Result {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loaded || m.stopped {
		return m.reportLocked()
	}
	m.loaded = true

	for _, in := range m.integrations {
		result := m.loadOne(ctx, in)
		m.report = append(m.report, result)
	}

	return m.reportLocked()
}

func (m *Manager) loadOne(ctx context.Context, in Integration) Result {
	result := Result{Name: in.label(), Status: StatusAbsent}

	component, ok := m.selectComponent(in.Components)
	if !ok {
		return result
	}
	version, _ := m.probe.Version(component)
	result.Component = component
	result.Version = version

	l := m.logger.With(zap.String("integration", result.Name), zap.String("component", component))

	if in.Require != nil {
		if err := in.Require(version); err != nil {
			l.Warn("Unsupported component version, integration skipped",
				zap.String("version", version),
				zap.Error(err),
			)
			result.Status = StatusSkipped
			result.Reason = err.Error()
			m.skipLocked(in)
			return result
		}
	}

	if in.Install != nil {
		env := &Env{
			Component: component,
			Version:   version,
			Registry:  m.registry,
			Scripts:   m.scripts,
			Logger:    l,
		}
		if err := in.Install(ctx, env); err != nil {
			l.Warn("Integration failed to install, skipped", zap.Error(err))
			result.Status = StatusSkipped
			result.Reason = err.Error()
			m.skipLocked(in)
			return result
		}
	}

	m.teardown = append(m.teardown, in)
	result.Status = StatusRegistered
	l.Info("Integration registered", zap.String("version", version))
	return result
}

func (m *Manager) skipLocked(in Integration) {
	if in.ShutdownWhenSkipped {
		m.teardown = append(m.teardown, in)
	}
}

func (m *Manager) selectComponent(candidates []string) (string, bool) {
	for _, name := range candidates {
		if m.probe.IsPresent(name) {
			return name, true
		}
	}
	return "", false
}

// Report returns the outcome of LoadAll.
func (m *Manager) Report() []Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reportLocked()
}

func (m *Manager) reportLocked() []Result {
	out := make([]Result, len(m.report))
	copy(out, m.report)
	return out
}

// Shutdown closes the registry to new providers and tears down installed
// integrations in reverse order, plus skipped ones marked ShutdownWhenSkipped.
// It is safe to call more than once.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopped {
		return nil
	}
	m.stopped = true
	m.registry.Close()

	var errs []error
	for i := len(m.teardown) - 1; i >= 0; i-- {
		in := m.teardown[i]
		if in.Shutdown == nil {
			continue
		}
		if err := in.Shutdown(ctx); err != nil {
			m.logger.Error("Integration shutdown failed",
				zap.String("integration", in.label()),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("%s: %w", in.label(), err))
		}
	}
	return errors.Join(errs...)
}

// MajorVersion returns a Require func accepting versions whose major part is major.
// Versions may omit the leading "v" and minor or patch parts ("3", "3.1").
// Versions that are not semver ("3.0.0.1", "3.0.0_DEV") are judged by their
// leading digits.
func MajorVersion(major int) func(version string) error {
	want := strconv.Itoa(major)
	return func(version string) error {
		if leadingMajor(version) != want {
			return fmt.Errorf("%w: %q, requires %d.x", ErrIncompatibleVersion, version, major)
		}
		return nil
	}
}

func leadingMajor(version string) string {
	v := strings.TrimSpace(version)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if semver.IsValid(v) {
		return strings.TrimPrefix(semver.Major(v), "v")
	}

	digits := strings.TrimPrefix(v, "v")
	end := strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' })
	if end >= 0 {
		digits = digits[:end]
	}
	return digits
}
