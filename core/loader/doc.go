// Package loader provides the integration bootstrap of the host.
//
// It detects which optional companion components are available and, for each
// one found, installs the matching adapter into the capability registry.
//
// # Probe
//
// A Probe answers whether a component is present and which version it runs.
// StaticProbe builds that answer from the configured component list, so the
// host decides availability once at startup:
//
//	INTEGRATION_COMPONENTS="packetevents,Nexo,BetonQuest@3.1.0"
//
// # Manager
//
// The Manager holds the ordered integration catalog. It handles:
//   - Registration of integrations via Register()
//   - One-shot installation of the present ones via LoadAll()
//   - Teardown of stateful adapters via Shutdown()
//
// Registration order is part of the contract: dispatch over furniture
// providers is first-match, so an integration installed earlier wins ties.
//
// A missing component is silent. A component whose version is not supported,
// or whose installation fails, is skipped with a warning; integrations
// installed before it stay installed.
package loader
