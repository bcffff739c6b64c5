package completion

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// getCompletionPaths resolves the install directories for shell on the
// current platform, rooted in the user's home directory.
func getCompletionPaths(shell string) (CompletionPaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return CompletionPaths{}, fmt.Errorf("resolving user home: %w", err)
	}
	switch shell {
	case "bash":
		return bashPaths(home), nil
	case "zsh":
		return zshPaths(home), nil
	case "fish":
		return fishPaths(home), nil
	case "powershell":
		return powerShellPaths(home), nil
	default:
		return CompletionPaths{}, fmt.Errorf("unsupported shell: %s", shell)
	}
}

func bashPaths(home string) CompletionPaths {
	return CompletionPaths{
		Primary:  filepath.Join(home, ".local", "share", "bash-completion", "completions"),
		Fallback: filepath.Join(home, ".bash_completion.d"),
		Comment:  "user-local bash-completion directory",
	}
}

func zshPaths(home string) CompletionPaths {
	return CompletionPaths{
		Primary:  filepath.Join(home, ".zsh", "completion"),
		Fallback: filepath.Join(home, ".zfunc"),
		Comment:  "user-local zsh completions; the directory must be on fpath",
	}
}

func fishPaths(home string) CompletionPaths {
	return CompletionPaths{
		Primary:   filepath.Join(home, ".config", "fish", "completions"),
		Fallback:  filepath.Join(home, ".local", "share", "fish", "completions"),
		Extension: ".fish",
		Comment:   "fish user completions directory",
	}
}

// powerShellPaths varies by platform: Windows keeps completions under
// Documents, macOS under Library, everything else under XDG config.
func powerShellPaths(home string) CompletionPaths {
	paths := CompletionPaths{
		Primary:   filepath.Join(home, ".config", "powershell", "Completions"),
		Fallback:  filepath.Join(home, ".local", "share", "powershell", "Completions"),
		Extension: ".ps1",
		Comment:   "PowerShell Core user completions directory",
	}
	switch runtime.GOOS {
	case "windows":
		if isPowerShellCore() {
			paths.Primary = filepath.Join(home, "Documents", "PowerShell", "Completions")
		} else {
			paths.Primary = filepath.Join(home, "Documents", "WindowsPowerShell", "Completions")
		}
		paths.Fallback = filepath.Join(home, ".config", "powershell", "Completions")
	case "darwin":
		paths.Primary = filepath.Join(home, "Library", "PowerShell", "Completions")
		paths.Fallback = filepath.Join(home, ".config", "powershell", "Completions")
	}
	return paths
}

// isPowerShellCore reports whether pwsh is on PATH, distinguishing
// PowerShell Core from Windows PowerShell.
func isPowerShellCore() bool {
	_, err := exec.LookPath("pwsh")
	return err == nil
}

// ensureDir creates the directory when missing and settles its
// permission bits.
func ensureDir(path string, perm os.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return err
	}
	return ensurePermission(path, perm)
}

// ensurePermission chmods path to perm when the current bits differ.
// Windows has no POSIX permission bits; the check is skipped there.
func ensurePermission(path string, perm os.FileMode) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if runtime.GOOS == "windows" {
		return nil
	}
	if actual := info.Mode().Perm(); actual != perm {
		if err := os.Chmod(path, perm); err != nil {
			return fmt.Errorf("chmod %s from %o to %o: %w", path, actual, perm, err)
		}
	}
	return nil
}
