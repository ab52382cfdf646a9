package check

import "errors"

// The single category for contract violations: something required by the
// platform contract is absent from the image. The wrapped message carries
// the check-specific remediation. Infrastructure errors from the runtime
// are never wrapped in this.
var ErrContract = errors.New("image contract violation")
