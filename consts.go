package diag

const (
	// ServiceName is the DI/service locator name for the diagnostics service.
	ServiceName = "diag"
	emptyString = ""

	// AbortExitCode is the default status passed to Exit by a failed check.
	// It matches a process killed by SIGABRT.
	AbortExitCode = 134

	defaultFailMessage = "This should not be reached."
	failTemplate       = "file: {}({}) `{}`: {}"
	unknownFunction    = "unknown"
)

const (
	errMsgNilConfig         = "Diagnostics config is nil."
	errMsgNilService        = "Diagnostics service is nil."
	errMsgConfigInvalid     = "Diagnostics configuration is invalid."
	errMsgUnsupportedFormat = "Unsupported configuration format."
	errMsgConfigParse       = "Diagnostics configuration could not be parsed."
	errMsgConfigRead        = "Diagnostics configuration file could not be read."
)
