package search

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/spf13/afero"
)

// buildZip assembles an in-memory zip with the given name -> content
// entries, in map-independent caller-specified order.
func buildZip(t *testing.T, entries [][2]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e[0])
		if err != nil {
			t.Fatalf("create zip entry %s: %v", e[0], err)
		}
		if _, err := w.Write([]byte(e[1])); err != nil {
			t.Fatalf("write zip entry %s: %v", e[0], err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestIsArchive(t *testing.T) {
	fs := afero.NewMemMapFs()

	zipData := buildZip(t, [][2]string{{"inner.log", "hello\n"}})
	if err := afero.WriteFile(fs, "bundle/nodes/node1.zip", zipData, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "bundle/metadata.yaml", []byte("kind: SupportBundle\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "bundle/empty", nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if got, err := isArchive(fs, "bundle/nodes/node1.zip"); err != nil || !got {
		t.Errorf("isArchive(zip) = %v, %v, want true, nil", got, err)
	}
	if got, err := isArchive(fs, "bundle/metadata.yaml"); err != nil || got {
		t.Errorf("isArchive(yaml) = %v, %v, want false, nil", got, err)
	}
	if got, err := isArchive(fs, "bundle/empty"); err != nil || got {
		t.Errorf("isArchive(empty) = %v, %v, want false, nil", got, err)
	}
	if _, err := isArchive(fs, "bundle/noexist"); err == nil {
		t.Error("isArchive(missing) error = nil, want non-nil")
	}
}

func TestWalkArchive(t *testing.T) {
	fs := afero.NewMemMapFs()
	zipData := buildZip(t, [][2]string{
		{"node1/logs/kubelet.log", "line one\nline two\n"},
		{"node1/logs/", ""}, // directory entry, must be skipped
		{"node1/logs/containerd.log", "only line\n"},
	})
	if err := afero.WriteFile(fs, "bundle/nodes/node1.zip", zipData, 0o644); err != nil {
		t.Fatal(err)
	}

	var paths []string
	var contents []string
	err := walkArchive(fs, "bundle/nodes/node1.zip", func(virtualPath string, r io.Reader) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		paths = append(paths, virtualPath)
		contents = append(contents, string(data))
		return nil
	})
	if err != nil {
		t.Fatalf("walkArchive: %v", err)
	}

	wantPaths := []string{
		"bundle/nodes/node1.zip/node1/logs/kubelet.log",
		"bundle/nodes/node1.zip/node1/logs/containerd.log",
	}
	if len(paths) != len(wantPaths) {
		t.Fatalf("visited %d entries, want %d: %v", len(paths), len(wantPaths), paths)
	}
	for i := range wantPaths {
		if paths[i] != wantPaths[i] {
			t.Errorf("virtual path[%d] = %q, want %q", i, paths[i], wantPaths[i])
		}
	}
	if contents[0] != "line one\nline two\n" {
		t.Errorf("entry content = %q", contents[0])
	}
}

func TestWalkArchiveNotAZip(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "bundle/fake.zip", []byte("PK\x03\x04 truncated"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := walkArchive(fs, "bundle/fake.zip", func(string, io.Reader) error { return nil })
	if err == nil {
		t.Error("walkArchive(malformed) error = nil, want non-nil")
	}
}
