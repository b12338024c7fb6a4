package constants

const (
	Version        = `0.0.1`
	ConfigFile     = `cfg`
	ConfigFileType = `yaml`
	ConfigDir      = `/.pad/`
	LogFile        = `pad.log`

	DefaultEndpoint = `http://localhost:5001`
)
