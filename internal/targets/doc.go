// Package targets loads the project configuration that maps target aliases
// to container image definitions.
//
// The config file is YAML:
//
//	version: "1.0"          # default release version (optional)
//	targets:
//	  default:
//	    image: registry.example.com/acme/crawler
//	  staging:
//	    image: registry.example.com/acme/crawler-staging
//	    version: rc1        # per-target override (optional)
//
// [Config.ImageRef] resolves an alias and an optional explicit version into
// the fully qualified reference the contract checks run against.
package targets
