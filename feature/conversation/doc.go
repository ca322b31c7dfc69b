// Package conversation implements the quest conversation adapter.
//
// BetonQuest 3 renders NPC conversations through a named conversation IO.
// The Manager tracks the open conversations shown as tooltips, and installs
// the script hooks presets use to drive them:
//   - actions: selectoption <n>, nextoption, endconversation
//   - condition: inconversation
//
// The Manager is the host's only stateful adapter: Shutdown ends every open
// conversation and rejects new ones, so no session outlives the host.
package conversation
