// Package placeholder exposes the capability dispatcher as text placeholders.
//
// Keys resolved under the "tooltips" identifier:
//   - %tooltips_furniture%: id of the furniture at the target block
//   - %tooltips_provider%: provider that recognized that furniture
//   - %tooltips_areas%: comma separated regions covering the target block
package placeholder
