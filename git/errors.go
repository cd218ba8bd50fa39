package git

import (
	"context"
	"errors"
	"strings"

	platformerrors "github.com/jmgilman/gitc/errors"
	"github.com/jmgilman/gitc/exec"
)

// mapExecError classifies a failed git invocation as a platform error.
// The original error stays in the chain for errors.Is/errors.As.
func mapExecError(ctx context.Context, err error, binary string, args []string) error {
	if err == nil {
		return nil
	}

	command := binary + " " + strings.Join(args, " ")
	details := map[string]interface{}{
		"command": command,
	}

	var execErr *exec.ExecError
	if errors.As(err, &execErr) {
		details["exit_code"] = execErr.ExitCode
		if execErr.Dir != "" {
			details["dir"] = execErr.Dir
		}
		if execErr.NotFound() {
			return platformerrors.WrapWithContext(err, platformerrors.CodeNotFound,
				"git executable not found: "+binary, details)
		}
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return platformerrors.WrapWithContext(err, platformerrors.CodeTimeout,
			command+" interrupted: "+ctxErr.Error(), details)
	}

	return platformerrors.WrapWithContext(err, platformerrors.CodeExecutionFailed,
		command+" failed", details)
}
