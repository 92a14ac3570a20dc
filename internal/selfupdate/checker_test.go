package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T, handler http.Handler) *Checker {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(
		WithBaseURLs(srv.URL, srv.URL),
		WithHTTPClient(srv.Client()),
	)
}

func TestCheck_UpdateAvailable(t *testing.T) {
	c := newTestChecker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/parladev/parla/releases/latest", r.URL.Path)
		fmt.Fprint(w, `{"tag_name": "v1.2.0", "html_url": "https://example.com/v1.2.0"}`)
	}))

	result, err := c.Check(context.Background(), "v1.1.0")
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
	assert.Equal(t, "https://example.com/v1.2.0", result.ReleaseURL)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	c := newTestChecker(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v1.1.0"}`)
	}))

	result, err := c.Check(context.Background(), "v1.1.0")
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_DevBuildSkipsNetwork(t *testing.T) {
	c := newTestChecker(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("dev build should not hit the network")
	}))

	result, err := c.Check(context.Background(), "(devel)")
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_HTTPError(t *testing.T) {
	c := newTestChecker(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	_, err := c.Check(context.Background(), "v1.0.0")
	assert.Error(t, err)
}

func TestNewerVersion(t *testing.T) {
	cases := []struct {
		current, latest string
		want            bool
	}{
		{"v1.0.0", "v1.0.1", true},
		{"v1.0.0", "v2.0.0", true},
		{"1.0.0", "1.1.0", true}, // bare versions get a v prefix
		{"v1.1.0", "v1.1.0", false},
		{"v2.0.0", "v1.9.9", false},
		{"garbage", "v1.0.0", false},
		{"v1.0.0", "garbage", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, newerVersion(tc.current, tc.latest),
			"newerVersion(%q, %q)", tc.current, tc.latest)
	}
}

func TestAssetName(t *testing.T) {
	name, err := assetName("linux", "amd64")
	require.NoError(t, err)
	assert.Equal(t, "parla_Linux_x86_64.tar.gz", name)

	name, err = assetName("darwin", "arm64")
	require.NoError(t, err)
	assert.Equal(t, "parla_Darwin_all.tar.gz", name)

	_, err = assetName("windows", "amd64")
	assert.Error(t, err)

	_, err = assetName("linux", "mips")
	assert.Error(t, err)
}

func makeTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name, Mode: 0o755, Size: int64(len(content)), Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestUpdate_FullFlow(t *testing.T) {
	binary := []byte("#!/new-binary")
	archive := makeTarGz(t, "parla", binary)
	sum := sha256.Sum256(archive)

	asset, err := assetName(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		t.Skipf("no release asset for this platform: %v", err)
	}
	checksums := hex.EncodeToString(sum[:]) + "  " + asset + "\n"

	mux := http.NewServeMux()
	mux.HandleFunc("/parladev/parla/releases/download/v1.2.0/"+asset,
		func(w http.ResponseWriter, _ *http.Request) { w.Write(archive) })
	mux.HandleFunc("/parladev/parla/releases/download/v1.2.0/checksums.txt",
		func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte(checksums)) })

	c := newTestChecker(t, mux)
	target := filepath.Join(t.TempDir(), "parla")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))
	c.execPath = func() (string, error) { return target, nil }

	var stages []string
	err = c.Update(context.Background(), "v1.1.0", "v1.2.0", func(p Progress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"download", "verify", "extract", "apply", "done"}, stages)

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, binary, got)
}

func TestUpdate_ChecksumMismatch(t *testing.T) {
	archive := makeTarGz(t, "parla", []byte("bin"))
	asset, err := assetName(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		t.Skipf("no release asset for this platform: %v", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/parladev/parla/releases/download/v1.2.0/"+asset,
		func(w http.ResponseWriter, _ *http.Request) { w.Write(archive) })
	mux.HandleFunc("/parladev/parla/releases/download/v1.2.0/checksums.txt",
		func(w http.ResponseWriter, _ *http.Request) {
			fmt.Fprintf(w, "%064d  %s\n", 0, asset)
		})

	c := newTestChecker(t, mux)
	err = c.Update(context.Background(), "v1.1.0", "v1.2.0", func(Progress) {})
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestUpdate_DevBuild(t *testing.T) {
	c := New()
	err := c.Update(context.Background(), "(devel)", "", func(Progress) {})
	assert.ErrorIs(t, err, ErrDevBuild)
}
