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

func TestReleaseAsset(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin is one universal archive", "darwin", "amd64", "funda_Darwin_all.tar.gz", false},
		{"darwin arm64 same archive", "darwin", "arm64", "funda_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "funda_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "funda_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "funda_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "funda_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "funda_Windows_arm64.zip", false},
		{"no freebsd release", "freebsd", "amd64", "", true},
		{"no mips release", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := releaseAsset(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChecksumIndex(t *testing.T) {
	input := "" +
		"1111aaaa  funda_Linux_x86_64.tar.gz\n" +
		"garbage line without a digest\n" +
		"   \n" +
		"too many  fields  on this line\n" +
		"2222bbbb  funda_Windows_x86_64.zip\n"

	index := checksumIndex([]byte(input))

	assert.Equal(t, map[string]string{
		"funda_Linux_x86_64.tar.gz": "1111aaaa",
		"funda_Windows_x86_64.zip":  "2222bbbb",
	}, index)
	assert.Empty(t, checksumIndex(nil))
}

func TestCheckDigest(t *testing.T) {
	data := []byte("release archive bytes")
	sum := sha256.Sum256(data)

	require.NoError(t, checkDigest(data, hex.EncodeToString(sum[:])))

	err := checkDigest(data, hex.EncodeToString(make([]byte, 32)))
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestUnpackBinary(t *testing.T) {
	binary := []byte("#!/bin/sh\necho sawubona")

	t.Run("finds funda in a tar.gz", func(t *testing.T) {
		archive := tarGzWith(t, "funda", binary)
		got, err := unpackBinary(archive, "funda_Linux_x86_64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binary, got)
	})

	t.Run("archive without the binary", func(t *testing.T) {
		archive := tarGzWith(t, "README.md", binary)
		_, err := unpackBinary(archive, "funda_Linux_x86_64.tar.gz")
		require.ErrorContains(t, err, "not found")
	})
}

func TestSwapBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "funda")
	require.NoError(t, os.WriteFile(target, []byte("old build"), 0755))

	replacement := []byte("new build")
	digest := sha256.Sum256(replacement)
	require.NoError(t, swapBinary(replacement, target, digest[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm(), "mode of the old binary must survive the swap")
}

func TestUpdate(t *testing.T) {
	binary := []byte("funda v2 build")
	archive := tarGzWith(t, "funda", binary)
	archiveSum := sha256.Sum256(archive)
	archiveHex := hex.EncodeToString(archiveSum[:])

	serve := func(t *testing.T, checksumsHex string, withArchive bool) *httptest.Server {
		t.Helper()
		// Update resolves the asset for the platform it runs on, so the
		// fake release must serve that same name.
		platformAsset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
		require.NoError(t, err)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/repos/lamila/fundabuddy/releases/latest":
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
			case fmt.Sprintf("/lamila/fundabuddy/releases/download/v2.0.0/%s", platformAsset):
				if withArchive {
					_, _ = w.Write(archive)
				} else {
					w.WriteHeader(http.StatusNotFound)
				}
			case "/lamila/fundabuddy/releases/download/v2.0.0/checksums.txt":
				_, _ = w.Write([]byte(fmt.Sprintf("%s  %s\n", checksumsHex, platformAsset)))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		t.Cleanup(server.Close)
		return server
	}

	t.Run("full update cycle", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "funda")
		require.NoError(t, os.WriteFile(execPath, []byte("old build"), 0755))

		server := serve(t, archiveHex, true)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binary, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build refuses", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already on latest", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		err := NewChecker(WithBaseURL(server.URL)).
			Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("bad checksum aborts before apply", func(t *testing.T) {
		server := serve(t, hex.EncodeToString(make([]byte, 32)), true)
		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))

		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("missing archive", func(t *testing.T) {
		server := serve(t, archiveHex, false)
		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))

		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.ErrorContains(t, err, "download archive")
	})
}

// tarGzWith builds a tar.gz holding a single executable file.
func tarGzWith(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
	return buf.Bytes()
}
