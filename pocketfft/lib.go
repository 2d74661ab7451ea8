package pocketfft

import (
	"os"
	"path/filepath"
	"runtime"
)

// The bridge artifact is located once per process and never reloaded.
// Search order: an exact path in POCKETFFT_LIBRARY, the platform-named
// artifact under POCKETFFT_PATH (directly or one directory deep), the
// executable's own directory, and finally the bare soname so the system
// loader's default search path applies.

func artifactName() string {
	switch runtime.GOOS {
	case "darwin":
		return "libpocketfft_bridge.dylib"
	case "windows":
		return "pocketfft_bridge.dll"
	default:
		return "libpocketfft_bridge.so"
	}
}

func candidatePaths() []string {
	var paths []string

	if p := os.Getenv("POCKETFFT_LIBRARY"); p != "" {
		paths = append(paths, p)
	}

	name := artifactName()

	if dir := os.Getenv("POCKETFFT_PATH"); dir != "" {
		paths = append(paths, filepath.Join(dir, name))
		if matches, err := filepath.Glob(filepath.Join(dir, "*", name)); err == nil {
			paths = append(paths, matches...)
		}
	}

	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), name))
	}

	return append(paths, name)
}

// Available reports whether the bridge library could be located and all
// of its entry points resolved.
func Available() bool {
	_, err := load()

	return err == nil
}

// LibraryPath returns the path the bridge was loaded from, or the empty
// string when it is not available.
func LibraryPath() string {
	b, err := load()
	if err != nil {
		return ""
	}

	return b.path
}
