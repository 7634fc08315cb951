package cli

import (
	"github.com/spf13/cobra"

	forgedomain "github.com/DiamondsLab/diamond-forge/internal/domain/forge"
)

// Flag plumbing shared by test and coverage. Options fields are only
// populated for flags the user actually set, so unset flags emit no
// forge tokens.

func stringPtr(cmd *cobra.Command, name string) *string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return &v
	}
	return nil
}

func intPtr(cmd *cobra.Command, name string) *int {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetInt(name)
		return &v
	}
	return nil
}

func uint64Ptr(cmd *cobra.Command, name string) *uint64 {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetUint64(name)
		return &v
	}
	return nil
}

func boolFlag(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func countFlag(cmd *cobra.Command, name string) int {
	v, _ := cmd.Flags().GetCount(name)
	return v
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("match-test", "", "Only run tests matching the regex")
	cmd.Flags().String("no-match-test", "", "Skip tests matching the regex")
	cmd.Flags().String("match-contract", "", "Only run tests in contracts matching the regex")
	cmd.Flags().String("no-match-contract", "", "Skip tests in contracts matching the regex")
	cmd.Flags().String("match-path", "", "Only run tests in files matching the glob")
	cmd.Flags().String("no-match-path", "", "Skip tests in files matching the glob")
}

func filterOptions(cmd *cobra.Command) forgedomain.FilterOptions {
	return forgedomain.FilterOptions{
		MatchTest:       stringPtr(cmd, "match-test"),
		NoMatchTest:     stringPtr(cmd, "no-match-test"),
		MatchContract:   stringPtr(cmd, "match-contract"),
		NoMatchContract: stringPtr(cmd, "no-match-contract"),
		MatchPath:       stringPtr(cmd, "match-path"),
		NoMatchPath:     stringPtr(cmd, "no-match-path"),
	}
}

func addDisplayFlags(cmd *cobra.Command) {
	cmd.Flags().CountP("verbosity", "v", "Verbosity level, repeatable up to -vvvvv")
	cmd.Flags().Bool("json", false, "Output test results as JSON")
	cmd.Flags().Bool("list", false, "List tests instead of running them")
	cmd.Flags().Bool("summary", false, "Print a test summary table")
	cmd.Flags().Bool("detailed", false, "Print detailed test summary")
	cmd.Flags().Bool("gas-report", false, "Print a gas report")
	cmd.Flags().Bool("quiet", false, "Suppress forge output except results")
}

func displayOptions(cmd *cobra.Command) forgedomain.DisplayOptions {
	return forgedomain.DisplayOptions{
		Verbosity: countFlag(cmd, "verbosity"),
		JSON:      boolFlag(cmd, "json"),
		List:      boolFlag(cmd, "list"),
		Summary:   boolFlag(cmd, "summary"),
		Detailed:  boolFlag(cmd, "detailed"),
		GasReport: boolFlag(cmd, "gas-report"),
		Quiet:     boolFlag(cmd, "quiet"),
	}
}

func addExecutionFlags(cmd *cobra.Command) {
	cmd.Flags().Int("fuzz-runs", 0, "Number of fuzz runs")
	cmd.Flags().String("fuzz-seed", "", "Seed for the fuzzer")
	cmd.Flags().Bool("ffi", false, "Enable the FFI cheatcode")
	cmd.Flags().Bool("fail-fast", false, "Stop on the first test failure")
	cmd.Flags().Bool("allow-failure", false, "Exit zero even if tests fail")
	cmd.Flags().String("etherscan-api-key", "", "Etherscan API key for trace decoding")
	cmd.Flags().Bool("decode-internal", false, "Decode internal function calls in traces")
	cmd.Flags().Bool("always-use-create-2-factory", false, "Use the CREATE2 factory for all deployments")
}

func executionOptions(cmd *cobra.Command) forgedomain.ExecutionOptions {
	return forgedomain.ExecutionOptions{
		FuzzRuns:                intPtr(cmd, "fuzz-runs"),
		FuzzSeed:                stringPtr(cmd, "fuzz-seed"),
		FFI:                     boolFlag(cmd, "ffi"),
		FailFast:                boolFlag(cmd, "fail-fast"),
		AllowFailure:            boolFlag(cmd, "allow-failure"),
		EtherscanAPIKey:         stringPtr(cmd, "etherscan-api-key"),
		DecodeInternal:          boolFlag(cmd, "decode-internal"),
		AlwaysUseCreate2Factory: boolFlag(cmd, "always-use-create-2-factory"),
	}
}

func addEVMFlags(cmd *cobra.Command) {
	cmd.Flags().String("sender", "", "Address executing the tests")
	cmd.Flags().String("tx-origin", "", "Transaction origin address")
	cmd.Flags().String("initial-balance", "", "Initial balance of test contracts")
	cmd.Flags().Uint64("gas-limit", 0, "Block gas limit")
	cmd.Flags().Uint64("gas-price", 0, "Gas price in wei")
	cmd.Flags().Uint64("block-base-fee-per-gas", 0, "Block base fee per gas")
	cmd.Flags().Uint64("block-number", 0, "Block number for the EVM environment")
	cmd.Flags().Uint64("block-timestamp", 0, "Block timestamp for the EVM environment")
	cmd.Flags().String("block-coinbase", "", "Block coinbase address")
	cmd.Flags().Uint64("chain", 0, "Chain ID for the EVM environment")
	cmd.Flags().Bool("no-storage-caching", false, "Disable fork storage caching")
}

func evmOptions(cmd *cobra.Command) forgedomain.EVMOptions {
	return forgedomain.EVMOptions{
		Sender:             stringPtr(cmd, "sender"),
		TxOrigin:           stringPtr(cmd, "tx-origin"),
		InitialBalance:     stringPtr(cmd, "initial-balance"),
		GasLimit:           uint64Ptr(cmd, "gas-limit"),
		GasPrice:           uint64Ptr(cmd, "gas-price"),
		BlockBaseFeePerGas: uint64Ptr(cmd, "block-base-fee-per-gas"),
		BlockNumber:        uint64Ptr(cmd, "block-number"),
		BlockTimestamp:     uint64Ptr(cmd, "block-timestamp"),
		BlockCoinbase:      stringPtr(cmd, "block-coinbase"),
		ChainID:            uint64Ptr(cmd, "chain"),
		NoStorageCaching:   boolFlag(cmd, "no-storage-caching"),
	}
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("force-build", false, "Recompile everything, ignoring the cache")
	cmd.Flags().Bool("no-cache", false, "Disable the compiler cache")
	cmd.Flags().Bool("optimize", false, "Enable the Solidity optimizer")
	cmd.Flags().Int("optimizer-runs", 0, "Number of optimizer runs")
	cmd.Flags().Bool("via-ir", false, "Compile via the IR pipeline")
	cmd.Flags().String("evm-version", "", "Target EVM version")
	cmd.Flags().String("use", "", "Solc version to use")
	cmd.Flags().Bool("offline", false, "Do not download missing solc versions")
	cmd.Flags().Bool("no-auto-detect", false, "Disable solc auto-detection")
	cmd.Flags().StringSlice("libraries", nil, "Linked library addresses (path:lib:address)")
}

func buildOptions(cmd *cobra.Command) forgedomain.BuildOptions {
	libraries, _ := cmd.Flags().GetStringSlice("libraries")
	return forgedomain.BuildOptions{
		ForceBuild:    boolFlag(cmd, "force-build"),
		NoCache:       boolFlag(cmd, "no-cache"),
		Optimize:      boolFlag(cmd, "optimize"),
		OptimizerRuns: intPtr(cmd, "optimizer-runs"),
		ViaIR:         boolFlag(cmd, "via-ir"),
		EVMVersion:    stringPtr(cmd, "evm-version"),
		UseSolc:       stringPtr(cmd, "use"),
		Offline:       boolFlag(cmd, "offline"),
		NoAutoDetect:  boolFlag(cmd, "no-auto-detect"),
		Libraries:     libraries,
	}
}

// addPipelineFlags registers the orchestration flags shared by test and
// coverage.
func addPipelineFlags(cmd *cobra.Command) {
	cmd.Flags().String("diamond-name", "", "Name of the diamond contract (required)")
	cmd.Flags().Bool("skip-deployment", false, "Use the existing deployment instead of reconciling")
	cmd.Flags().Bool("skip-helpers", false, "Skip regenerating the Solidity helpers")
	cmd.Flags().Bool("force", false, "Redeploy even if a usable deployment exists")
	cmd.Flags().Bool("save-deployment", false, "Persist the deployment record even on ephemeral networks")
	_ = cmd.MarkFlagRequired("diamond-name")
}
