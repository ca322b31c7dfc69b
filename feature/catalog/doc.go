// Package catalog declares the default integrations of the host and the order
// they are bootstrapped in.
//
// Order matters: it is the fallback order of furniture dispatch.
//
//	packet layer (packetevents, else ProtocolLib)
//	Nexo, Oraxen, ItemsAdder, MythicCrucible, CraftEngine
//	WorldGuard
//	AxGens, PlaceholderAPI, BetonQuest
//
// Furniture integrations read the placement table of the configured database,
// WorldGuard reads its region document from object storage. BetonQuest is
// only wired for major version 3.
package catalog
