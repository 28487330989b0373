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

func idCmd(ro *rootOptions) *cobra.Command {
	var (
		prefix string
		n      int
		count  int
	)

	cmd := &cobra.Command{
		Use:   "id",
		Short: "Print random identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			byteLength := n
			if !cmd.Flags().Changed("bytes") {
				byteLength = ro.cfg.IDBytes
			}

			for i := 0; i < count; i++ {
				id, err := ro.prims.SecureID(prefix, byteLength)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), id)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&prefix, "prefix", "p", "", "identifier prefix")
	cmd.Flags().IntVarP(&n, "bytes", "b", 0, "random bytes (default from id-bytes)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers")
	return cmd
}

func keyIDCmd(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keyid",
		Short: "Print a new key_ identifier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := ro.prims.KeyID()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func uuidCmd(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "uuid",
		Short: "Print a random version 4 UUID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := ro.prims.UUID()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}
