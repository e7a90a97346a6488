package embedfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// PackFile packs srcDir and writes the container to outPath.
//
// Uses atomic writes (temp file + rename) so a failed pack never leaves a
// partial container behind. Parent directories are created as needed.
func PackFile(ctx context.Context, srcDir, outPath string, opts ...PackOption) error {
	data, err := Pack(ctx, srcDir, opts...)
	if err != nil {
		return fmt.Errorf("pack %s: %w", srcDir, err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := writeFileAtomic(outPath, data); err != nil {
		return fmt.Errorf("write container: %w", err)
	}
	return nil
}

// UnpackFile reads the container at inPath and unpacks it under destDir.
func UnpackFile(ctx context.Context, inPath, destDir string, opts ...UnpackOption) error {
	data, err := os.ReadFile(inPath) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return fmt.Errorf("read container: %w", err)
	}
	if err := Unpack(ctx, data, destDir, opts...); err != nil {
		return fmt.Errorf("unpack %s: %w", inPath, err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file then renames to target,
// ensuring atomic replacement of the target file.
func writeFileAtomic(target string, data []byte) error {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, ".embedfs-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	// CreateTemp uses 0600; containers are build outputs read by other tools.
	if err := tmp.Chmod(0o644); err != nil { //nolint:gosec // see above
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
