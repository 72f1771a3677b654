package logger

// ParametersDefinition contains the definition of configuration parameters used by the
// global logger.
type ParametersDefinition struct {
	// Level is the minimum enabled logging level.
	Level string `default:"info" usage:"the minimum enabled logging level"`
	// DisableCaller stops annotating logs with the calling function's file name and line number.
	DisableCaller bool `default:"false" usage:"disable caller info in the logs"`
	// DisableStacktrace disables automatic stacktrace capturing.
	DisableStacktrace bool `default:"false" usage:"disable stack traces in the logs"`
	// Encoding sets the logger's encoding.
	Encoding string `default:"console" usage:"the logger's encoding, \"json\" or \"console\""`
	// OutputPaths is a list of URLs, file paths or stdout/stderr to write logging output to.
	OutputPaths []string `default:"stdout" usage:"a list of file paths or stdout/stderr to write logging output to"`
	// DisableEvents prevents log messages from being raised as events.
	DisableEvents bool `default:"true" usage:"disable logger events"`
}

// Parameters contains the configuration parameters of the logger plugin.
var Parameters = &ParametersDefinition{}
