package scrubjay

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/scrubjay/pkg/display"
	sjerrors "github.com/arthur-debert/scrubjay/pkg/errors"
)

// ReportError prints err on w unless the command already reported it.
// Usage errors come from cobra and are followed by the help of cmd, the
// command that failed.
func ReportError(cmd *cobra.Command, err error, w io.Writer) {
	if err == nil || errors.Is(err, ErrReported) {
		return
	}
	styles := display.NewStyles(w, display.ColorProfile("auto", fileOf(w)))
	fmt.Fprintln(w, display.ErrorLine(styles, err))

	if cmd != nil && sjerrors.GetErrorCode(err) == sjerrors.ErrUnknown {
		fmt.Fprintln(w)
		_ = cmd.Help()
	}
}
