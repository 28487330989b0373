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

package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namer interface {
	Name() string
}

type fixed string

func (f fixed) Name() string { return string(f) }

func TestRegistry(t *testing.T) {
	reg := New[namer]()
	reg.Register("platform", "standard library", func() namer { return fixed("platform") })
	reg.Register("pure", "portable", func() namer { return fixed("pure") })

	tests := []struct {
		name    string
		lookup  string
		want    string
		wantErr bool
	}{
		{name: "platform entry", lookup: "platform", want: "platform"},
		{name: "pure entry", lookup: "pure", want: "pure"},
		{name: "missing entry", lookup: "hardware", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.NewEntity(tt.lookup)
			if tt.wantErr {
				var notFound ErrNotFound
				require.True(t, errors.As(err, &notFound))
				assert.Equal(t, tt.lookup, notFound.Name)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name())
		})
	}
}

func TestAllEntriesSorted(t *testing.T) {
	reg := New[namer]()
	reg.Register("zeta", "", func() namer { return fixed("zeta") })
	reg.Register("alpha", "", func() namer { return fixed("alpha") })
	reg.Register("mid", "", func() namer { return fixed("mid") })

	entries := reg.AllEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "alpha", entries[0].Name)
	assert.Equal(t, "mid", entries[1].Name)
	assert.Equal(t, "zeta", entries[2].Name)
}

func TestRegisterReplaces(t *testing.T) {
	reg := New[namer]()
	reg.Register("pure", "first", func() namer { return fixed("one") })
	reg.Register("pure", "second", func() namer { return fixed("two") })

	entry, ok := reg.Entry("pure")
	require.True(t, ok)
	assert.Equal(t, "second", entry.Description)
	assert.Equal(t, "two", entry.Factory().Name())
}
