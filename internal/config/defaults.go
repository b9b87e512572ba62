package config

const (
	// DefaultConfigFile is the config file looked up in the working directory
	DefaultConfigFile = "zrep.yaml"
	// DefaultEnvFile is the dotenv file loaded before reading the environment
	DefaultEnvFile = ".env"
	// DefaultFormat is the report format used when none is given
	DefaultFormat = "playwright"
	// DefaultWorkers is the number of workers delivering test events
	DefaultWorkers = 4
	// DefaultReporterFragment identifies the zephyr entry in a reporter list
	DefaultReporterFragment = "zephyr"
	// DefaultPathsToIgnore are skipped when scanning a report directory
	DefaultPathsToIgnore = "node_modules,vendor,playwright-report"
	// EnvPrefix prefixes every environment variable read by zrep
	EnvPrefix = "ZEPHYR"
)

// MissingSettingsMessage tells the user which settings zrep needs when none were found.
const MissingSettingsMessage = "Please provide required options in the config file: host, projectKey, user and password or authorizationToken"
