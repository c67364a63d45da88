package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// UpdateProgress is reported once per stage so the update command can
// print what it is doing.
type UpdateProgress struct {
	Stage   string
	Message string
}

// Update replaces the running binary with the release build for this
// platform. Stages: check, download, verify, extract, apply, done.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(UpdateProgress)) error {
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	tag := input.TargetVersion
	if tag == "" {
		progress(UpdateProgress{Stage: "check", Message: "Checking for latest version..."})
		result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if !result.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = result.LatestVersion
	}

	asset, err := releaseAsset(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}
	release := fmt.Sprintf("%s/%s/%s/releases/download/%s",
		strings.TrimRight(c.downloadBaseURL, "/"), c.owner, c.repo, tag)

	progress(UpdateProgress{Stage: "download", Message: fmt.Sprintf("Downloading %s...", tag)})
	archive, err := c.fetch(ctx, release+"/"+asset)
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	progress(UpdateProgress{Stage: "verify", Message: "Verifying checksum..."})
	sums, err := c.fetch(ctx, release+"/checksums.txt")
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	want, ok := checksumIndex(sums)[asset]
	if !ok {
		return fmt.Errorf("no checksum listed for %s", asset)
	}
	if err := checkDigest(archive, want); err != nil {
		return err
	}

	progress(UpdateProgress{Stage: "extract", Message: "Extracting binary..."})
	binary, err := unpackBinary(archive, asset)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	progress(UpdateProgress{Stage: "apply", Message: "Applying update..."})
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	digest := sha256.Sum256(binary)
	if err := swapBinary(binary, target, digest[:]); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	progress(UpdateProgress{Stage: "done", Message: fmt.Sprintf("Updated to %s", tag)})
	return nil
}

// Release archive names follow the goreleaser defaults for this repo.
var releaseArch = map[string]string{
	"amd64": "x86_64",
	"arm64": "arm64",
	"386":   "i386",
}

func releaseAsset(goos, goarch string) (string, error) {
	if goos == "darwin" {
		// Universal binary, one archive for both macOS architectures.
		return "funda_Darwin_all.tar.gz", nil
	}
	arch, ok := releaseArch[goarch]
	if !ok {
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}
	switch goos {
	case "linux":
		return "funda_Linux_" + arch + ".tar.gz", nil
	case "windows":
		return "funda_Windows_" + arch + ".zip", nil
	}
	return "", fmt.Errorf("unsupported operating system: %s", goos)
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// checksumIndex parses a checksums.txt into asset → hex digest. Lines
// that don't look like "<digest>  <name>" are skipped.
func checksumIndex(data []byte) map[string]string {
	index := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) != 2 {
			continue
		}
		index[fields[1]] = fields[0]
	}
	return index
}

func checkDigest(data []byte, wantHex string) error {
	sum := sha256.Sum256(data)
	if got := hex.EncodeToString(sum[:]); got != wantHex {
		return fmt.Errorf("%w: want %s, got %s", ErrChecksum, wantHex, got)
	}
	return nil
}

func unpackBinary(archive []byte, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return fromZip(archive, "funda.exe")
	}
	return fromTarGz(archive, "funda")
}

func fromTarGz(data []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

func fromZip(data []byte, name string) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range r.File {
		if filepath.Base(f.Name) == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer func() { _ = rc.Close() }()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

// swapBinary writes the new binary next to the target, re-verifies the
// digest of what actually landed on disk, and renames it into place so
// the running executable is replaced atomically with its mode intact.
func swapBinary(binary []byte, target string, wantDigest []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	stage, err := os.MkdirTemp(filepath.Dir(target), ".funda-update-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(stage) }()

	staged := filepath.Join(stage, "funda-new")
	if err := os.WriteFile(staged, binary, 0600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	onDisk, err := os.ReadFile(staged)
	if err != nil {
		return fmt.Errorf("re-read temp file: %w", err)
	}
	sum := sha256.Sum256(onDisk)
	if !bytes.Equal(sum[:], wantDigest) {
		return fmt.Errorf("%w: staged file changed after write", ErrChecksum)
	}

	if err := os.Rename(staged, target); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	if err := os.Chmod(target, info.Mode()); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	return nil
}
