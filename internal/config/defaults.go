package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultUnitTestDir holds the unit test sources, the headers file and the runner file
	DefaultUnitTestDir = "unit_test"
	// DefaultHeadersFile is the file receiving the test declarations
	DefaultHeadersFile = "ut.h"
	// DefaultRunnerFile is the file receiving the RUN_TEST registrations
	DefaultRunnerFile = "ut_runner.c"

	// DefaultSourcePattern selects unit test source files by name
	DefaultSourcePattern = `^ut_.+\.c$`
	// DefaultFunctionPattern matches a trimmed test function signature line
	DefaultFunctionPattern = `^void UT_.+\(void\)$`

	DefaultHeadersStartMarker = `^.+Put tests declaration here.+$`
	DefaultHeadersEndMarker   = `^.+End of the tests declaration.+$`
	DefaultRunnerStartMarker  = `^.+UNITY_BEGIN\(\).+$`
	DefaultRunnerEndMarker    = `^.+UNITY_END\(\).+$`

	// DefaultRegistrationTemplate wraps a bare test name into a runner call
	DefaultRegistrationTemplate = "RUN_TEST(%s);"

	// DebugEnvVar enables debug output when set to a true value
	DebugEnvVar = "UTGEN_DEBUG"
	// EnvFile is loaded from the project path before reading DebugEnvVar
	EnvFile = ".env"
)
