// Package area implements the region-backed area adapter.
//
// Protected regions (e.g. exported from WorldGuard) are kept as a JSON
// document in object storage:
//
//	{"regions": [{"id": "spawn", "world": "world", "priority": 10,
//	              "min": {"x": -50, "y": 0, "z": -50}, "max": {"x": 50, "y": 255, "z": 50}}]}
//
// Provider loads the document and answers AreaAt with every region
// containing the location. Push validates and uploads a new document.
package area
