package cmd

import (
	"errors"
	"os"
	"os/exec"
	"strconv"

	"github.com/etnz/inventory/config"
	"github.com/rs/zerolog/log"
)

// RunExtension attempts to find and execute an external inv-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The extension receives the resolved configuration as INV_* environment
// variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "inv-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debug().Err(err).Str("extension", name).Msg("extension not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	cmd.Env = os.Environ()
	if cfg, err := Config(); err != nil {
		log.Warn().Err(err).Str("extension", name).Msg("configuration not passed to the extension")
	} else {
		cmd.Env = append(cmd.Env, cfg.Environ()...)
	}
	cmd.Env = append(cmd.Env, config.EnvVerbose+"="+strconv.FormatBool(*Verbose))

	log.Debug().Str("extension", lp).Strs("args", args).Msg("running extension")
	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fail(1, "executing external command %q: %v", name, err)
		return true, 1
	}

	return true, 0
}
