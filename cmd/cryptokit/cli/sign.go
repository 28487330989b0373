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
	"errors"
	"fmt"

	"github.com/scanhound/cryptokit/cryptoutil"
	"github.com/spf13/cobra"
)

const keySecret = "secret"

type secretSource struct {
	secret string
}

func (s *secretSource) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.secret, keySecret, "", "signing secret (or CRYPTOKIT_SECRET)")
}

// value prefers the flag and falls back to CRYPTOKIT_SECRET.
func (s *secretSource) value(ro *rootOptions, cmd *cobra.Command) []byte {
	if cmd.Flags().Changed(keySecret) {
		return []byte(s.secret)
	}

	return []byte(ro.v.GetString(keySecret))
}

func signCmd(ro *rootOptions) *cobra.Command {
	src := &messageSource{}
	secret := &secretSource{}
	cmd := &cobra.Command{
		Use:   "sign [message]",
		Short: "Print the sig_ signature of a message under a secret",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := src.open(cmd, args)
			if err != nil {
				return err
			}
			defer r.Close()

			sig, err := ro.prims.SignReader(r, secret.value(ro, cmd))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}

	src.addFlags(cmd)
	secret.addFlags(cmd)
	return cmd
}

func verifyCmd(ro *rootOptions) *cobra.Command {
	src := &messageSource{}
	secret := &secretSource{}
	var signature string
	cmd := &cobra.Command{
		Use:   "verify [message]",
		Short: "Check a sig_ signature; exits with status 2 when it does not match",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := src.open(cmd, args)
			if err != nil {
				return err
			}
			defer r.Close()

			err = ro.prims.VerifyReader(r, signature, secret.value(ro, cmd))
			switch {
			case err == nil:
				fmt.Fprintln(cmd.OutOrStdout(), "OK")
				return nil
			case errors.As(err, &cryptoutil.ErrVerifyFailed{}), errors.As(err, &cryptoutil.ErrInvalidSignature{}):
				return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
			default:
				return err
			}
		},
	}

	src.addFlags(cmd)
	secret.addFlags(cmd)
	cmd.Flags().StringVarP(&signature, "signature", "s", "", "signature to check")
	_ = cmd.MarkFlagRequired("signature")
	return cmd
}
