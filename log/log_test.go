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

package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogrus(t *testing.T) (*logrus.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	l := logrus.New()
	l.SetOutput(buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return l, buf
}

func TestDefaultIsSilent(t *testing.T) {
	assert.IsType(t, SilentLogger{}, GetLogger())
}

func TestSetLoggerRoutesOutput(t *testing.T) {
	l, buf := newBufferedLogrus(t)
	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })

	Infof("selected %s strategy", "pure")
	Debug("probe finished")

	out := buf.String()
	assert.Contains(t, out, "selected pure strategy")
	assert.Contains(t, out, "probe finished")
	assert.Contains(t, out, "level=debug")
}

func TestWarnfWrapsErrors(t *testing.T) {
	l, buf := newBufferedLogrus(t)
	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })

	Warnf("platform self-test failed: %w", errors.New("mismatch"))
	require.Contains(t, buf.String(), "platform self-test failed: mismatch")
	assert.Contains(t, buf.String(), "level=warning")
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	l, _ := newBufferedLogrus(t)
	SetLogger(l)
	SetLogger(nil)
	assert.IsType(t, SilentLogger{}, GetLogger())
}
