package loader

// Config holds configuration for the integration bootstrap.
type Config struct {
	// Components lists the companion components available to the host,
	// comma separated, each optionally suffixed with "@version".
	Components string `mapstructure:"components" default:""`
	// RegionsObject is the storage object holding protected region definitions.
	RegionsObject string `mapstructure:"regions_object" default:"regions/worldguard.json"`
	// ConversationIO is the name the conversation adapter registers under.
	ConversationIO string `mapstructure:"conversation_io" default:"tooltips"`
}
