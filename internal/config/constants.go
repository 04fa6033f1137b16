package config

// Environment variable names
const (
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvGameSettingsPath = "GAME_SETTINGS_PATH"
	EnvArchiveSize      = "ARCHIVE_SIZE"
	EnvArchiveTTL       = "ARCHIVE_TTL"
	EnvSeed             = "ARENA_SEED"
	EnvWorkers          = "ARENA_WORKERS"
)

// Defaults used when the environment leaves a value unset
const (
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "emoji-battler"
	DefaultVersion          = "dev"
	DefaultGameSettingsPath = "configs/game.yaml"
	DefaultArchiveSize      = 64
	DefaultArchiveTTLString = "30m"
	DefaultWorkers          = 4
)

// Validation tags
const (
	TagLteOne = "lte_one"
)

// Error messages
const (
	ErrMsgInvalidArchiveSize = "invalid ARCHIVE_SIZE value"
	ErrMsgInvalidArchiveTTL  = "invalid ARCHIVE_TTL value"
	ErrMsgReadSettings       = "reading game settings %s: %w"
	ErrMsgParseSettings      = "parsing game settings %s: %w"
	ErrMsgInvalidSettings    = "invalid game settings"
	ErrMsgTierOrder          = "shop tiers must have increasing max_round values"
)
