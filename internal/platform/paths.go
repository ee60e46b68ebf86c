package platform

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Well-known names inside the config directory
const (
	AppDirName     = "storefront"
	ConfigFileName = "storefront.toml"
	TermLogName    = "storefront-term.log"

	// MaxLogBytes is the size at which the terminal log is rotated
	MaxLogBytes int64 = 1 << 20
)

// androidConfigRoot is where Fyne Android builds keep app files
const androidConfigRoot = "/data/local/tmp"

// IsAndroid reports whether the process runs on Android
func IsAndroid() bool {
	// Check multiple ways to detect Android environment
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// ConfigDir returns the per-user storefront config directory.
// The directory is not created.
func ConfigDir() (string, error) {
	if IsAndroid() {
		return filepath.Join(androidConfigRoot, AppDirName), nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// ConfigFilePath returns the path of storefront.toml
func ConfigFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LogFilePath returns the terminal preview log path, creating its directory
func LogFilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return filepath.Join(dir, TermLogName), nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// RotateLogIfNeeded renames path to path+".old" once it grows past maxBytes,
// replacing any previous backup
func RotateLogIfNeeded(path string, maxBytes int64) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.Size() <= maxBytes {
		return false
	}

	oldPath := path + ".old"
	_ = os.Remove(oldPath)

	if err := os.Rename(path, oldPath); err != nil {
		log.Printf("Failed to rotate log: path=%s err=%v", path, err)
		return false
	}
	return true
}
