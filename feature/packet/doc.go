// Package packet implements the in-process packet adapter.
//
// A Bus is registered in the exclusive packet slot of the capability
// registry, named after the network component that was found (packetevents
// is preferred over ProtocolLib). Callers send packets through it;
// interceptors may rewrite or cancel them before delivery.
package packet
