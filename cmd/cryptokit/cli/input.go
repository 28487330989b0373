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
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// messageSource is the -f/--file flag shared by the commands that read a message.
type messageSource struct {
	file string
}

func (m *messageSource) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&m.file, "file", "f", "", "read the message from a file, - for stdin")
}

// open returns the message given as the only argument, the file named by --file,
// or stdin when neither is set.
func (m *messageSource) open(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	switch {
	case len(args) > 0 && m.file != "":
		return nil, errors.New("pass either a message argument or --file, not both")
	case len(args) > 0:
		return io.NopCloser(strings.NewReader(args[0])), nil
	case m.file == "" || m.file == "-":
		return io.NopCloser(cmd.InOrStdin()), nil
	default:
		f, err := os.Open(m.file)
		if err != nil {
			return nil, fmt.Errorf("failed to open message file: %w", err)
		}

		return f, nil
	}
}
