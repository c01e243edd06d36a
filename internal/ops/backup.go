// Package ops provides operator utilities for the on-disk data
// directory: tar.gz backups and their restoration.
package ops

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ManifestName is the archive entry describing the backup itself. It is
// written by BackupDataDir and never restored into the data dir.
const ManifestName = "manifest.json"

// Manifest records what a backup archive contains and when it was
// taken.
type Manifest struct {
	CreatedAt time.Time `json:"createdAt"`
	Files     []string  `json:"files"`
}

type archiveEntry struct {
	path string
	rel  string
	info fs.FileInfo
}

// BackupDataDir archives srcDir (snapshots, sqlite database) into a
// tar.gz at archivePath, with a manifest listing the archived files.
// Symlinks are skipped for predictable restores.
func BackupDataDir(srcDir, archivePath string) error {
	srcDir = filepath.Clean(strings.TrimSpace(srcDir))
	archivePath = filepath.Clean(strings.TrimSpace(archivePath))
	if srcDir == "" || archivePath == "" {
		return fmt.Errorf("srcDir and archivePath are required")
	}
	info, err := os.Stat(srcDir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("source is not a directory: %s", srcDir)
	}

	entries, err := collectEntries(srcDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(archivePath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	tw := tar.NewWriter(gz)
	defer tw.Close()

	if err := writeManifest(tw, entries); err != nil {
		return err
	}
	for _, e := range entries {
		if err := writeEntry(tw, e); err != nil {
			return err
		}
	}
	return nil
}

func collectEntries(srcDir string) ([]archiveEntry, error) {
	var entries []archiveEntry
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if path == srcDir {
			return nil
		}
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		entries = append(entries, archiveEntry{
			path: path,
			rel:  filepath.ToSlash(rel),
			info: info,
		})
		return nil
	})
	return entries, err
}

func writeManifest(tw *tar.Writer, entries []archiveEntry) error {
	m := Manifest{CreatedAt: time.Now().UTC(), Files: []string{}}
	for _, e := range entries {
		if !e.info.IsDir() {
			m.Files = append(m.Files, e.rel)
		}
	}
	body, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := tw.WriteHeader(&tar.Header{
		Name:     ManifestName,
		Typeflag: tar.TypeReg,
		Mode:     0o644,
		Size:     int64(len(body)),
		ModTime:  m.CreatedAt,
	}); err != nil {
		return err
	}
	_, err = tw.Write(body)
	return err
}

func writeEntry(tw *tar.Writer, e archiveEntry) error {
	hdr, err := tar.FileInfoHeader(e.info, "")
	if err != nil {
		return err
	}
	hdr.Name = e.rel
	if e.info.IsDir() && !strings.HasSuffix(hdr.Name, "/") {
		hdr.Name += "/"
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return err
	}
	if e.info.IsDir() {
		return nil
	}

	src, err := os.Open(e.path)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(tw, src)
	return err
}

// RestoreDataDir unpacks an archive produced by BackupDataDir into
// targetDir, refusing entries that would escape it.
func RestoreDataDir(archivePath, targetDir string) error {
	archivePath = filepath.Clean(strings.TrimSpace(archivePath))
	targetDir = filepath.Clean(strings.TrimSpace(targetDir))
	if archivePath == "" || targetDir == "" {
		return fmt.Errorf("archivePath and targetDir are required")
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return err
	}

	f, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		rel, err := sanitizeArchiveRelPath(hdr.Name)
		if err != nil {
			return err
		}
		if rel == ManifestName {
			continue
		}
		outPath := filepath.Join(targetDir, rel)

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(outPath, os.FileMode(hdr.Mode)); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
				return err
			}
			dst, err := os.OpenFile(outPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(hdr.Mode))
			if err != nil {
				return err
			}
			if _, err := io.Copy(dst, tr); err != nil {
				_ = dst.Close()
				return err
			}
			if err := dst.Close(); err != nil {
				return err
			}
		default:
			// Ignore unsupported entry types.
		}
	}
	return nil
}

// ReadManifest returns the manifest of a backup archive, or an error
// for archives that carry none.
func ReadManifest(archivePath string) (Manifest, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return Manifest{}, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return Manifest{}, err
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Manifest{}, err
		}
		if filepath.ToSlash(filepath.Clean(hdr.Name)) != ManifestName {
			continue
		}
		var m Manifest
		if err := json.NewDecoder(tr).Decode(&m); err != nil {
			return Manifest{}, fmt.Errorf("decode manifest: %w", err)
		}
		return m, nil
	}
	return Manifest{}, fmt.Errorf("no manifest in %s", archivePath)
}

func sanitizeArchiveRelPath(name string) (string, error) {
	name = filepath.Clean(strings.TrimSpace(name))
	if name == "." || name == "" {
		return "", fmt.Errorf("invalid archive entry path")
	}
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("invalid absolute archive entry path: %s", name)
	}
	if strings.HasPrefix(name, ".."+string(filepath.Separator)) || name == ".." {
		return "", fmt.Errorf("invalid archive entry path traversal: %s", name)
	}
	return name, nil
}
