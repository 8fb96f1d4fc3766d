package config

const (
	// DefaultOutputDir is the default output root directory
	DefaultOutputDir = "."
	// DefaultRunsDir is the run directory created under the output root
	DefaultRunsDir = "runs"
	// DefaultListFile is the XML test listing written by the test executable
	DefaultListFile = "tests.xml"
	// DefaultReportFile is the HTML report file name
	DefaultReportFile = "report.html"
	// DefaultManifestFile is the JSON manifest of the last run
	DefaultManifestFile = "results.json"
	// DefaultSubsystem is the test subsystem the driver runs
	DefaultSubsystem = "rhi"
	// DefaultReferenceDir is the repository directory holding reference images
	DefaultReferenceDir = "TestKit"
	// DefaultReferenceImage is the reference image name inside each test case directory
	DefaultReferenceImage = "reference.png"
	// DefaultFilterEnv is the environment variable holding the test name filter
	DefaultFilterEnv = "LYRA_TESTKIT_FILTER"
	// DefaultConfigFile is picked up from the working directory when --config is not given
	DefaultConfigFile = "testkit.yaml"
	// DefaultEnvFile is loaded from the working directory when present
	DefaultEnvFile = ".env"
	// RepositoryMarker marks the repository root
	RepositoryMarker = ".git"
)

// DefaultBackends are the report columns following the reference column
var DefaultBackends = []string{
	"vulkan",
	"d3d12",
}
