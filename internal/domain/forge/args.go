package forge

import (
	"strconv"
	"strings"
)

// BuildTestArgs translates test options into the forge test argument
// vector. Pure and order-stable: identical options yield byte-identical
// vectors. The fork URL pair, when present, always comes first.
func BuildTestArgs(forkURL string, opts *TestOptions) []string {
	b := &argBuilder{}
	b.forkURL(forkURL)
	if opts != nil {
		b.filter(&opts.Filter)
		b.display(&opts.Display)
		b.execution(&opts.Execution)
		b.evm(&opts.EVM)
		b.build(&opts.Build)
	}
	return b.args
}

// BuildCoverageArgs translates coverage options into the forge coverage
// argument vector. Report flags repeat once per requested format, in
// order.
func BuildCoverageArgs(forkURL string, opts *CoverageOptions) []string {
	b := &argBuilder{}
	b.forkURL(forkURL)
	if opts != nil {
		b.report(opts)
		b.filter(&opts.Filter)
		b.display(&opts.Display)
		b.execution(&opts.Execution)
		b.evm(&opts.EVM)
		b.build(&opts.Build)
	}
	return b.args
}

// argBuilder accumulates CLI tokens. Field presence controls emission:
// nil pointers and false bools produce nothing.
type argBuilder struct {
	args []string
}

func (b *argBuilder) flag(name string, set bool) {
	if set {
		b.args = append(b.args, name)
	}
}

func (b *argBuilder) stringOpt(name string, value *string) {
	if value != nil {
		b.args = append(b.args, name, *value)
	}
}

func (b *argBuilder) intOpt(name string, value *int) {
	if value != nil {
		b.args = append(b.args, name, strconv.Itoa(*value))
	}
}

func (b *argBuilder) uint64Opt(name string, value *uint64) {
	if value != nil {
		b.args = append(b.args, name, strconv.FormatUint(*value, 10))
	}
}

func (b *argBuilder) forkURL(url string) {
	if url != "" {
		b.args = append(b.args, "--fork-url", url)
	}
}

func (b *argBuilder) report(opts *CoverageOptions) {
	for _, format := range opts.Report {
		b.args = append(b.args, "--report", string(format))
	}
	b.stringOpt("--report-file", opts.ReportFile)
	b.stringOpt("--lcov-version", opts.LcovVersion)
	b.flag("--ir-minimum", opts.IRMinimum)
	b.flag("--include-libs", opts.IncludeLibs)
	b.stringOpt("--no-match-coverage", opts.NoMatchCoverage)
}

func (b *argBuilder) filter(opts *FilterOptions) {
	b.stringOpt("--match-test", opts.MatchTest)
	b.stringOpt("--no-match-test", opts.NoMatchTest)
	b.stringOpt("--match-contract", opts.MatchContract)
	b.stringOpt("--no-match-contract", opts.NoMatchContract)
	b.stringOpt("--match-path", opts.MatchPath)
	b.stringOpt("--no-match-path", opts.NoMatchPath)
}

func (b *argBuilder) display(opts *DisplayOptions) {
	if opts.Verbosity > 0 {
		level := opts.Verbosity
		if level > 5 {
			level = 5
		}
		b.args = append(b.args, "-"+strings.Repeat("v", level))
	}
	b.flag("--json", opts.JSON)
	b.flag("--list", opts.List)
	b.flag("--summary", opts.Summary)
	b.flag("--detailed", opts.Detailed)
	b.flag("--gas-report", opts.GasReport)
	b.flag("--quiet", opts.Quiet)
}

func (b *argBuilder) execution(opts *ExecutionOptions) {
	b.intOpt("--fuzz-runs", opts.FuzzRuns)
	b.stringOpt("--fuzz-seed", opts.FuzzSeed)
	b.flag("--ffi", opts.FFI)
	b.flag("--fail-fast", opts.FailFast)
	b.flag("--allow-failure", opts.AllowFailure)
	b.stringOpt("--etherscan-api-key", opts.EtherscanAPIKey)
	b.flag("--decode-internal", opts.DecodeInternal)
	b.flag("--always-use-create-2-factory", opts.AlwaysUseCreate2Factory)
}

func (b *argBuilder) evm(opts *EVMOptions) {
	b.stringOpt("--sender", opts.Sender)
	b.stringOpt("--tx-origin", opts.TxOrigin)
	b.stringOpt("--initial-balance", opts.InitialBalance)
	b.uint64Opt("--gas-limit", opts.GasLimit)
	b.uint64Opt("--gas-price", opts.GasPrice)
	b.uint64Opt("--block-base-fee-per-gas", opts.BlockBaseFeePerGas)
	b.uint64Opt("--block-number", opts.BlockNumber)
	b.uint64Opt("--block-timestamp", opts.BlockTimestamp)
	b.stringOpt("--block-coinbase", opts.BlockCoinbase)
	b.uint64Opt("--chain", opts.ChainID)
	b.flag("--no-storage-caching", opts.NoStorageCaching)
}

func (b *argBuilder) build(opts *BuildOptions) {
	b.flag("--force", opts.ForceBuild)
	b.flag("--no-cache", opts.NoCache)
	b.flag("--optimize", opts.Optimize)
	b.intOpt("--optimizer-runs", opts.OptimizerRuns)
	b.flag("--via-ir", opts.ViaIR)
	b.stringOpt("--evm-version", opts.EVMVersion)
	b.stringOpt("--use", opts.UseSolc)
	b.flag("--offline", opts.Offline)
	b.flag("--no-auto-detect", opts.NoAutoDetect)
	for _, lib := range opts.Libraries {
		b.args = append(b.args, "--libraries", lib)
	}
}
