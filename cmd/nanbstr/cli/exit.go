// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError carries a process exit code for outcomes that are reported
// but not successful. A command returns it after writing its own
// diagnostics; main recognizes the ExitCode method and exits with the
// code instead of printing a second "error:" line. inspect uses this
// when --skip-invalid drops items: the run completes, the output is
// valid, and the exit code says it was not clean.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitError) ExitCode() int {
	return e.Code
}
