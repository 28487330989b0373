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
	"fmt"

	"github.com/spf13/cobra"
)

func digestCmd(ro *rootOptions) *cobra.Command {
	src := &messageSource{}
	cmd := &cobra.Command{
		Use:   "digest [message]",
		Short: "Print the SHA-256 digest of a message, a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && src.file == "" {
				fmt.Fprintln(cmd.OutOrStdout(), ro.prims.DigestString(args[0]))
				return nil
			}

			r, err := src.open(cmd, args)
			if err != nil {
				return err
			}
			defer r.Close()

			d, err := ro.prims.DigestReader(r)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}

	src.addFlags(cmd)
	return cmd
}

func shortHashCmd(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shorthash <text>",
		Short: "Print the 16 character fingerprint of a text (not for security use)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ro.prims.ShortHash(args[0]))
			return nil
		},
	}
}
