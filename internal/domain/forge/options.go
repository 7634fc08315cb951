package forge

// ReportFormat is a coverage report format accepted by forge coverage.
type ReportFormat string

const (
	ReportSummary  ReportFormat = "summary"
	ReportLcov     ReportFormat = "lcov"
	ReportDebug    ReportFormat = "debug"
	ReportBytecode ReportFormat = "bytecode"
)

// FilterOptions are the test-selection flags shared by forge test and
// forge coverage. Nil fields emit nothing.
type FilterOptions struct {
	MatchTest       *string
	NoMatchTest     *string
	MatchContract   *string
	NoMatchContract *string
	MatchPath       *string
	NoMatchPath     *string
}

// DisplayOptions control output shape and verbosity.
type DisplayOptions struct {
	// Verbosity 1-5 renders as a single -v..v flag; 0 emits nothing.
	Verbosity int
	JSON      bool
	List      bool
	Summary   bool
	Detailed  bool
	GasReport bool
	Quiet     bool
}

// ExecutionOptions control how the test run executes.
type ExecutionOptions struct {
	FuzzRuns                *int
	FuzzSeed                *string
	FFI                     bool
	FailFast                bool
	AllowFailure            bool
	EtherscanAPIKey         *string
	DecodeInternal          bool
	AlwaysUseCreate2Factory bool
}

// EVMOptions configure the in-memory EVM environment.
type EVMOptions struct {
	Sender             *string
	TxOrigin           *string
	InitialBalance     *string
	GasLimit           *uint64
	GasPrice           *uint64
	BlockBaseFeePerGas *uint64
	BlockNumber        *uint64
	BlockTimestamp     *uint64
	BlockCoinbase      *string
	ChainID            *uint64
	NoStorageCaching   bool
}

// BuildOptions configure compilation before the run.
type BuildOptions struct {
	ForceBuild    bool
	NoCache       bool
	Optimize      bool
	OptimizerRuns *int
	ViaIR         bool
	EVMVersion    *string
	UseSolc       *string
	Offline       bool
	NoAutoDetect  bool
	Libraries     []string
}

// TestOptions is the full option set for forge test.
type TestOptions struct {
	Filter    FilterOptions
	Display   DisplayOptions
	Execution ExecutionOptions
	EVM       EVMOptions
	Build     BuildOptions
}

// CoverageOptions is the full option set for forge coverage. It shares
// the test surface and adds the coverage-only report flags.
type CoverageOptions struct {
	// Report emits one --report pair per entry, in order.
	Report          []ReportFormat
	ReportFile      *string
	LcovVersion     *string
	IRMinimum       bool
	IncludeLibs     bool
	NoMatchCoverage *string

	Filter    FilterOptions
	Display   DisplayOptions
	Execution ExecutionOptions
	EVM       EVMOptions
	Build     BuildOptions
}
