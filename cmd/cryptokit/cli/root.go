// Copyright 2026 The Cryptokit Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the cryptokit command line tool.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scanhound/cryptokit"
	"github.com/scanhound/cryptokit/config"
	"github.com/scanhound/cryptokit/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrVerificationFailed is returned by the verify command when the signature
// does not match. It maps to exit code 2.
var ErrVerificationFailed = errors.New("signature verification failed")

type rootOptions struct {
	configPath string
	v          *viper.Viper
	cfg        config.Config
	prims      *cryptokit.Primitives
	logger     *logrus.Logger
}

// New returns the root command with every subcommand attached.
func New() *cobra.Command {
	ro := &rootOptions{v: config.NewViper()}

	cmd := &cobra.Command{
		Use:           "cryptokit",
		Short:         "Digests, request signatures and identifiers for the scanning platform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return ro.setup(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVarP(&ro.configPath, "config", "c", "", "config file (default $HOME/.cryptokit.yaml)")
	if err := config.BindFlags(ro.v, cmd.PersistentFlags()); err != nil {
		panic(err)
	}

	cmd.AddCommand(
		digestCmd(ro),
		shortHashCmd(ro),
		signCmd(ro),
		verifyCmd(ro),
		idCmd(ro),
		keyIDCmd(ro),
		uuidCmd(ro),
		probeCmd(ro),
		configCmd(ro),
		envCmd(ro),
		docsCmd(),
	)

	return cmd
}

func (ro *rootOptions) setup(stderr io.Writer) error {
	read, err := config.ReadFile(ro.v, ro.configPath)
	if err != nil {
		return err
	}

	ro.cfg, err = config.FromViper(ro.v)
	if err != nil {
		return err
	}

	ro.logger = newLogger(stderr, ro.cfg.LogLevel)
	log.SetLogger(ro.logger)
	if read != "" {
		log.Debugf("using config file %s", read)
	}

	ro.prims, err = cryptokit.New(cryptokit.WithConfig(ro.cfg))
	if err != nil {
		return err
	}

	return nil
}

// newLogger writes text to terminals and JSON everywhere else.
func newLogger(out io.Writer, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}

	logger.SetLevel(lvl)
	return logger
}

// ExitCode maps an error returned by the root command to a process exit code
// and prints it.
func ExitCode(err error) int {
	fmt.Fprintln(os.Stderr, "Error:", err)
	if errors.Is(err, ErrVerificationFailed) {
		return 2
	}

	return 1
}
