package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// resolveClientAssetsDir locates the directory holding the preview client.
// An explicitly configured directory wins; otherwise we probe next to the
// working directory and next to the executable so `go run .` and a deployed
// binary both find it.
func resolveClientAssetsDir(configured string) (string, error) {
	if configured != "" {
		if dir, ok := usableAssetsDir(configured); ok {
			return dir, nil
		}
		return "", fmt.Errorf("configured client dir %s is not a directory", configured)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve client assets: %w", err)
	}
	if dir, ok := probeClientAssetsDir(cwd); ok {
		return dir, nil
	}
	exePath, err := os.Executable()
	if err == nil {
		if dir, ok := probeClientAssetsDir(filepath.Dir(exePath)); ok {
			return dir, nil
		}
	}
	return "", fmt.Errorf("client assets directory not found")
}

func probeClientAssetsDir(base string) (string, bool) {
	candidates := []string{
		filepath.Join(base, "client"),
		filepath.Join(base, "..", "client"),
	}
	for _, candidate := range candidates {
		if dir, ok := usableAssetsDir(candidate); ok {
			return dir, true
		}
	}
	return "", false
}

func usableAssetsDir(candidate string) (string, bool) {
	info, err := os.Stat(candidate)
	if err != nil || !info.IsDir() {
		return "", false
	}
	abs, err := filepath.Abs(candidate)
	if err != nil {
		return "", false
	}
	return abs, true
}
