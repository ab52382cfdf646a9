// Package check validates a built image against the platform's runtime
// contract.
//
// [Run] executes four checks in fixed order against a single image
// reference: the image exists locally, the start-crawl and list-spiders
// entrypoints are on the PATH, and the companion package is installed
// whenever the base framework package is. Entrypoint and package presence
// are observed by running one-shot probe commands inside disposable
// containers of the image; every probe container is removed regardless of
// its outcome.
//
// The first failing check aborts the sequence. Contract violations match
// [ErrContract] and carry remediation text; infrastructure errors from the
// runtime propagate unmodified.
package check
