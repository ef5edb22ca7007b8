package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin", "arm64", "academy_Darwin_all.tar.gz", false},
		{"darwin", "amd64", "academy_Darwin_all.tar.gz", false},
		{"linux", "amd64", "academy_Linux_x86_64.tar.gz", false},
		{"linux", "arm64", "academy_Linux_arm64.tar.gz", false},
		{"linux", "386", "academy_Linux_i386.tar.gz", false},
		{"windows", "amd64", "academy_Windows_x86_64.zip", false},
		{"windows", "arm64", "academy_Windows_arm64.zip", false},
		{"linux", "mips", "", true},
		{"plan9", "amd64", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.goarch, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseChecksums(t *testing.T) {
	data := []byte(`abc123  academy_Darwin_all.tar.gz
def456  academy_Linux_x86_64.tar.gz

malformed line with too many fields here
`)
	got := parseChecksums(data)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got["academy_Darwin_all.tar.gz"] != "abc123" {
		t.Errorf("darwin checksum = %q", got["academy_Darwin_all.tar.gz"])
	}
	if got["academy_Linux_x86_64.tar.gz"] != "def456" {
		t.Errorf("linux checksum = %q", got["academy_Linux_x86_64.tar.gz"])
	}
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello academy")
	sum := sha256.Sum256(data)
	good := hex.EncodeToString(sum[:])

	if err := verifyChecksum(data, good); err != nil {
		t.Errorf("matching checksum rejected: %v", err)
	}

	err := verifyChecksum(data, "deadbeef")
	if !errors.Is(err, ErrChecksum) {
		t.Errorf("expected ErrChecksum, got %v", err)
	}
}

func buildTarGz(t *testing.T, files map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		hdr := &tar.Header{
			Name:     name,
			Mode:     0755,
			Size:     int64(len(content)),
			Typeflag: tar.TypeReg,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("write tar header: %v", err)
		}
		if _, err := tw.Write(content); err != nil {
			t.Fatalf("write tar content: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("close tar: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	return buf.Bytes()
}

func TestExtractBinary(t *testing.T) {
	binary := []byte("fake academy binary")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, map[string][]byte{
			"LICENSE": []byte("MIT"),
			"academy": binary,
		})
		got, err := extractBinary(archive, "academy_Linux_x86_64.tar.gz")
		if err != nil {
			t.Fatalf("extract: %v", err)
		}
		if !bytes.Equal(got, binary) {
			t.Errorf("extracted content does not match")
		}
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, map[string][]byte{
			"LICENSE": []byte("MIT"),
		})
		_, err := extractBinary(archive, "academy_Linux_x86_64.tar.gz")
		if err == nil {
			t.Fatal("expected error for archive without binary")
		}
	})
}

func TestApplyUpdate(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "academy")
	if err := os.WriteFile(target, []byte("old binary"), 0755); err != nil {
		t.Fatalf("write target: %v", err)
	}

	newBinary := []byte("new binary")
	hash := sha256.Sum256(newBinary)
	if err := applyUpdate(newBinary, target, hash[:]); err != nil {
		t.Fatalf("applyUpdate: %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if !bytes.Equal(got, newBinary) {
		t.Errorf("target was not replaced")
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("stat target: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}
}

func TestUpdate(t *testing.T) {
	asset, err := assetName()
	if err != nil {
		t.Skipf("unsupported platform: %v", err)
	}

	binary := []byte("released academy binary")
	var archive []byte
	if filepath.Ext(asset) == ".zip" {
		t.Skip("zip archive path covered by extract tests")
	}
	archive = buildTarGz(t, map[string][]byte{"academy": binary})

	archiveSum := sha256.Sum256(archive)
	checksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveSum[:]), asset)

	newServer := func(t *testing.T, checksumBody string) *httptest.Server {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/trio-sh/academy/releases/latest", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"tag_name": "v2.0.0"}`)
		})
		mux.HandleFunc("/trio-sh/academy/releases/download/v2.0.0/"+asset, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write(archive)
		})
		mux.HandleFunc("/trio-sh/academy/releases/download/v2.0.0/checksums.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, checksumBody)
		})
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)
		return server
	}

	newTarget := func(t *testing.T) string {
		dir := t.TempDir()
		target := filepath.Join(dir, "academy")
		if err := os.WriteFile(target, []byte("old binary"), 0755); err != nil {
			t.Fatalf("write target: %v", err)
		}
		return target
	}

	t.Run("happy path", func(t *testing.T) {
		server := newServer(t, checksums)
		target := newTarget(t)

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return target, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}

		want := []string{"check", "download", "verify", "extract", "apply", "done"}
		if len(stages) != len(want) {
			t.Fatalf("stages = %v, want %v", stages, want)
		}
		for i := range want {
			if stages[i] != want[i] {
				t.Errorf("stage[%d] = %q, want %q", i, stages[i], want[i])
			}
		}

		got, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("read target: %v", err)
		}
		if !bytes.Equal(got, binary) {
			t.Errorf("target was not replaced with the released binary")
		}
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		if !errors.Is(err, ErrDevBuild) {
			t.Errorf("expected ErrDevBuild, got %v", err)
		}
	})

	t.Run("already latest", func(t *testing.T) {
		server := newServer(t, checksums)
		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "2.0.0"}, func(UpdateProgress) {})
		if !errors.Is(err, ErrAlreadyLatest) {
			t.Errorf("expected ErrAlreadyLatest, got %v", err)
		}
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		badSum := sha256.Sum256([]byte("something else"))
		server := newServer(t, fmt.Sprintf("%s  %s\n", hex.EncodeToString(badSum[:]), asset))
		target := newTarget(t)

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return target, nil }),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "1.0.0"}, func(UpdateProgress) {})
		if !errors.Is(err, ErrChecksum) {
			t.Errorf("expected ErrChecksum, got %v", err)
		}

		got, _ := os.ReadFile(target)
		if !bytes.Equal(got, []byte("old binary")) {
			t.Errorf("target was modified despite checksum failure")
		}
	})

	t.Run("download failure", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/trio-sh/academy/releases/latest", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"tag_name": "v2.0.0"}`)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "1.0.0"}, func(UpdateProgress) {})
		if err == nil {
			t.Fatal("expected error when download fails")
		}
	})
}
