// Package script holds the scripted hooks companion integrations contribute
// to the host: conditions, actions and placeholder expansions.
//
// Each hook kind is a named registry. Registering a name twice replaces the
// previous hook, mirroring the capability registry.
//
// # Placeholders
//
// Expansions resolve "%identifier_key%" tokens. Expand walks a text and
// replaces every token whose identifier has a registered expansion that
// resolves the key; unknown tokens are left untouched.
package script
