package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
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

func TestReleaseAssetName(t *testing.T) {
	cases := []struct {
		goos, goarch string
		want         string
		wantErr      bool
	}{
		{"darwin", "amd64", "mentora_Darwin_all.tar.gz", false},
		{"darwin", "arm64", "mentora_Darwin_all.tar.gz", false},
		{"linux", "amd64", "mentora_Linux_x86_64.tar.gz", false},
		{"linux", "arm64", "mentora_Linux_arm64.tar.gz", false},
		{"linux", "386", "mentora_Linux_i386.tar.gz", false},
		{"windows", "amd64", "mentora_Windows_x86_64.zip", false},
		{"windows", "arm64", "mentora_Windows_arm64.zip", false},
		{"freebsd", "amd64", "", true},
		{"linux", "mips", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.goos+"/"+tc.goarch, func(t *testing.T) {
			got, err := releaseAssetName(tc.goos, tc.goarch)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestChecksumFor(t *testing.T) {
	manifest := []byte("abc123  mentora_Darwin_all.tar.gz\n" +
		"badline\n" +
		"too many fields here\n" +
		"def456  mentora_Linux_x86_64.tar.gz\n")

	got, ok := checksumFor(manifest, "mentora_Linux_x86_64.tar.gz")
	require.True(t, ok)
	assert.Equal(t, "def456", got)

	_, ok = checksumFor(manifest, "mentora_Windows_x86_64.zip")
	assert.False(t, ok)

	_, ok = checksumFor(nil, "anything")
	assert.False(t, ok)
}

func TestExtractExecutable(t *testing.T) {
	content := []byte("#!/bin/sh\necho mentora")

	t.Run("tar.gz", func(t *testing.T) {
		got, err := extractExecutable(tarGzWith(t, "mentora", content), false)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("tar.gz nested path", func(t *testing.T) {
		got, err := extractExecutable(tarGzWith(t, "dist/mentora", content), false)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("tar.gz missing binary", func(t *testing.T) {
		_, err := extractExecutable(tarGzWith(t, "README.md", content), false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("zip", func(t *testing.T) {
		got, err := extractExecutable(zipWith(t, "mentora.exe", content), true)
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})
}

func TestSwapBinary(t *testing.T) {
	target := filepath.Join(t.TempDir(), "mentora")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	require.NoError(t, swapBinary(target, []byte("new-binary-content")))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, []byte("new-binary-content"), got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

func TestSwapBinary_MissingTarget(t *testing.T) {
	err := swapBinary(filepath.Join(t.TempDir(), "absent"), []byte("data"))
	require.Error(t, err)
}

// releaseServer serves a fake GitHub API and release download tree for
// one v2.0.0 release holding the given archive under the host
// platform's asset name.
func releaseServer(t *testing.T, asset string, archive []byte, manifest string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/mentora-app/mentora/releases/latest":
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		case "/mentora-app/mentora/releases/download/v2.0.0/" + asset:
			_, _ = w.Write(archive)
		case "/mentora-app/mentora/releases/download/v2.0.0/checksums.txt":
			_, _ = w.Write([]byte(manifest))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	asset, err := releaseAssetName(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)

	binaryName := "mentora"
	if runtime.GOOS == "windows" {
		binaryName = "mentora.exe"
	}
	content := []byte("new-mentora-binary")
	var archive []byte
	if runtime.GOOS == "windows" {
		archive = zipWith(t, binaryName, content)
	} else {
		archive = tarGzWith(t, binaryName, content)
	}
	manifest := fmt.Sprintf("%s  %s\n", sha256Hex(archive), asset)

	t.Run("happy path", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), binaryName)
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		server := releaseServer(t, asset, archive, manifest)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(),
			&UpdateInput{CurrentVersion: "v1.0.0", TargetVersion: ""},
			func(p UpdateProgress) { stages = append(stages, p.Stage) })
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		err := NewChecker().Update(context.Background(),
			&UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := releaseServer(t, asset, archive, manifest)
		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))

		err := checker.Update(context.Background(),
			&UpdateInput{CurrentVersion: "v2.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		bad := fmt.Sprintf("%064d  %s\n", 0, asset)
		server := releaseServer(t, asset, archive, bad)
		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))

		err := checker.Update(context.Background(),
			&UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/repos/mentora-app/mentora/releases/latest" {
				_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(server.Close)
		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))

		err := checker.Update(context.Background(),
			&UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

func tarGzWith(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)
	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

func zipWith(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
