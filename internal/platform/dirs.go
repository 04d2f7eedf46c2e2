package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions  = 0o755
	DefaultFilePermissions = 0o644
)

// PostersDirName is the cache subdirectory holding poster images
const PostersDirName = "posters"

// IsAndroid reports whether the process runs inside an Android app
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// CacheDir returns the poster cache directory for appID. It does not create
// the directory.
func CacheDir(appID string) (string, error) {
	if appID == "" {
		return "", fmt.Errorf("app id is empty")
	}
	if IsAndroid() {
		// app-private storage, wiped with the app
		if data := os.Getenv("FILESDIR"); data != "" {
			return filepath.Join(data, "cache", PostersDirName), nil
		}
		return filepath.Join(os.TempDir(), appID, PostersDirName), nil
	}

	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user cache directory: %w", err)
	}
	return filepath.Join(base, appID, PostersDirName), nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
