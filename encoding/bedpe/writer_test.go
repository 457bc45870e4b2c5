// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package bedpe_test

import (
	"bytes"
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grailbio/bedpe/encoding/bedpe"
	"github.com/grailbio/testutil"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRoundTrip(t *testing.T) {
	data := "chr1\t100\t200\tchr5\t5000\t5100\tpair1\t0.5\t+\t-\n" +
		"chr2\t300\t400\tchr2\t600\t700\t\t1.0\t-\t+\n"
	tbl, err := bedpe.Load(strings.NewReader(data), bedpe.LoadOpts{})
	require.NoError(t, err)
	require.NoError(t, bedpe.Bind(tbl))

	var out bytes.Buffer
	require.NoError(t, bedpe.Write(&out, tbl, bedpe.WriteOpts{BufSize: 64}))
	assert.Equal(t, data, out.String())
	for _, line := range strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n") {
		assert.Len(t, strings.Split(line, "\t"), bedpe.NumFields)
	}
}

func TestWriteFloatRendering(t *testing.T) {
	// An integral score in a float column is rendered as a float.
	data := "chr1\t1\t2\tchr1\t3\t4\ta\t2.5\t+\t+\n" +
		"chr1\t1\t2\tchr1\t3\t4\tb\t3\t+\t+\n"
	tbl, err := bedpe.Load(strings.NewReader(data), bedpe.LoadOpts{})
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, bedpe.Write(&out, tbl, bedpe.WriteOpts{}))
	assert.Equal(t, "chr1\t1\t2\tchr1\t3\t4\ta\t2.5\t+\t+\n"+
		"chr1\t1\t2\tchr1\t3\t4\tb\t3.0\t+\t+\n", out.String())
}

func TestWriteSmallFloats(t *testing.T) {
	// Small magnitudes keep fixed-point notation.
	data := "chr1\t1\t2\tchr1\t3\t4\tn\t0.000001\t+\t+\n" +
		"chr1\t1\t2\tchr1\t3\t4\tm\t1e-7\t+\t+\n"
	tbl, err := bedpe.Load(strings.NewReader(data), bedpe.LoadOpts{})
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, bedpe.Write(&out, tbl, bedpe.WriteOpts{}))
	assert.Equal(t, "chr1\t1\t2\tchr1\t3\t4\tn\t0.000001\t+\t+\n"+
		"chr1\t1\t2\tchr1\t3\t4\tm\t0.0000001\t+\t+\n", out.String())
}

func TestWriteSerializeError(t *testing.T) {
	tbl := &bedpe.Table{Columns: []bedpe.Column{
		{Name: "a", Kind: bedpe.Text, Values: []bedpe.Value{bedpe.TextValue("x\ty")}},
	}}
	err := bedpe.Write(ioutil.Discard, tbl, bedpe.WriteOpts{})
	assert.Equal(t, bedpe.SerializeError, bedpe.KindOf(err))

	tbl = &bedpe.Table{Columns: []bedpe.Column{
		{Name: "a", Kind: bedpe.Text, Values: []bedpe.Value{{Kind: bedpe.Kind(99)}}},
	}}
	err = bedpe.Write(ioutil.Discard, tbl, bedpe.WriteOpts{})
	assert.Equal(t, bedpe.SerializeError, bedpe.KindOf(err))
	assert.Contains(t, err.Error(), "write: serialize error")
}

func TestWritePath(t *testing.T) {
	tempDir, cleanup := testutil.TempDir(t, "", "")
	defer cleanup()
	ctx := context.Background()

	tbl, err := bedpe.Load(strings.NewReader(sampleBEDPE), bedpe.LoadOpts{})
	require.NoError(t, err)

	plainPath := filepath.Join(tempDir, "out.bedpe")
	require.NoError(t, ioutil.WriteFile(plainPath, []byte("stale contents\n"), 0600))
	require.NoError(t, bedpe.WritePath(ctx, plainPath, tbl, bedpe.WriteOpts{}))
	got, err := ioutil.ReadFile(plainPath)
	require.NoError(t, err)
	assert.Equal(t, sampleBEDPE, string(got))

	gzPath := filepath.Join(tempDir, "out.bedpe.gz")
	require.NoError(t, bedpe.WritePath(ctx, gzPath, tbl, bedpe.WriteOpts{}))
	f, err := os.Open(gzPath)
	require.NoError(t, err)
	defer f.Close()
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	got, err = ioutil.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, sampleBEDPE, string(got))

	// A regular file cannot be used as a directory.
	err = bedpe.WritePath(ctx, filepath.Join(plainPath, "dir", "out.bedpe"), tbl, bedpe.WriteOpts{})
	assert.Equal(t, bedpe.IOError, bedpe.KindOf(err))
}
