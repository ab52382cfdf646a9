// Parses flags and dispatches the crawlcheck subcommands.
//
// The default command is 'check', which takes an optional target alias:
//
//	crawlcheck [check] [TARGET] [-l] [--version VERSION]
//
// Global flags:
//
//	-q, --quiet      Suppress informational output.
//	-v, --verbose    Enable verbose output.
//	-d, --debug      Enable debug output.
//	-c, --config     Path to the crawlcheck.yml config file.
//	    --address    Containerd socket address.
//	    --namespace  Containerd namespace for probe containers.
//
// Flags override build-time defaults set via linker flags. After parsing,
// the global logger is reconfigured to reflect the final level before the
// selected command runs.
package cli
