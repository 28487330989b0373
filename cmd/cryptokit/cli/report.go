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

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/scanhound/cryptokit/config"
	"github.com/scanhound/cryptokit/cryptoutil"
	"github.com/scanhound/cryptokit/environment"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

type outputFormat struct {
	json bool
}

func (o *outputFormat) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.json, "json", false, "print JSON instead of YAML")
}

func (o *outputFormat) write(w io.Writer, v any) error {
	if o.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func probeCmd(ro *rootOptions) *cobra.Command {
	out := &outputFormat{}
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Print the digest engine selected for this process and why",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return out.write(cmd.OutOrStdout(), ro.prims.Capabilities())
		},
	}

	out.addFlags(cmd)
	return cmd
}

func configCmd(ro *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := config.Marshal(ro.cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := json.MarshalIndent(config.Schema(), "", "  ")
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	})

	return cmd
}

func envCmd(ro *rootOptions) *cobra.Command {
	var (
		all    bool
		filter bool
	)

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the cryptokit environment with secrets obfuscated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []environment.CaptureOption{}
			if !all {
				opts = append(opts, environment.WithPrefixes(config.EnvPrefix+"_"))
			}

			if filter {
				opts = append(opts, environment.WithFilterVarsEnabled())
			}

			vars := environment.New(opts...).Capture(os.Environ())
			for _, k := range environment.SortedKeys(vars) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", k, vars[k])
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include variables without the CRYPTOKIT_ prefix")
	cmd.Flags().BoolVar(&filter, "filter", false, "drop sensitive variables instead of obfuscating them")
	return cmd
}

func docsCmd() *cobra.Command {
	out := &outputFormat{}
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Print the package documentation and the available strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return out.write(cmd.OutOrStdout(), struct {
				Package    cryptoutil.Documentation         `json:"package" yaml:"package"`
				Strategies cryptoutil.StrategyDocumentation `json:"strategies" yaml:"strategies"`
			}{
				Package:    cryptoutil.PackageDocumentation(),
				Strategies: cryptoutil.GetStrategyDocumentation(),
			})
		},
	}

	out.addFlags(cmd)
	return cmd
}
