package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"

	"github.com/capsulecorplab/go-seps/internal/assets"
	"github.com/capsulecorplab/go-seps/internal/config"
)

// ErrNoDeployTarget indicates an install without a configured target.
var ErrNoDeployTarget = errors.New("no deploy host/dir configured")

// push copies the generated HTML files, their sources, and the
// stylesheets to the configured target: scp to the remote host, or a
// plain cp when --local is given. Missing stylesheets are restored
// from the embedded defaults first.
func push(htmlFiles, srcFiles []string, flags *cliFlags, deploy config.DeployConfig) error {
	if deploy.Dir == "" || (!flags.local && deploy.Host == "") {
		return ErrNoDeployTarget
	}
	if err := assets.Materialize("."); err != nil {
		return err
	}

	files := make([]string, 0, len(htmlFiles)+len(srcFiles)+len(assets.Stylesheets))
	files = append(files, htmlFiles...)
	files = append(files, srcFiles...)
	files = append(files, assets.Stylesheets...)

	var cmd *exec.Cmd
	if flags.local {
		args := []string{}
		if !flags.quiet {
			args = append(args, "-v")
		}
		args = append(args, files...)
		args = append(args, deploy.Dir)
		cmd = exec.Command("cp", args...)
	} else {
		user := deploy.User
		if flags.user != "" {
			user = flags.user
		}
		target := deploy.Host + ":" + deploy.Dir
		if user != "" {
			target = user + "@" + target
		}
		args := []string{}
		if flags.quiet {
			args = append(args, "-q")
		}
		args = append(args, files...)
		args = append(args, target)
		cmd = exec.Command("scp", args...)
	}

	log.Debugf("running %v", cmd.Args)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("installing SEP files: %w", err)
	}
	return nil
}
