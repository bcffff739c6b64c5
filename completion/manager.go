package completion

import (
	"fmt"
	"os"
	"path/filepath"
)

// CompletionManager generates a completion script for one shell and
// installs it where that shell looks for user completions.
type CompletionManager struct {
	Shell       string
	ProgramName string
	Paths       CompletionPaths

	generator Generator
	script    string
}

// NewCompletionManager resolves the install paths for shell and returns
// a manager generating scripts for programName, reduced to its base
// name so full binary paths are accepted.
func NewCompletionManager(shell, programName string) (*CompletionManager, error) {
	paths, err := getCompletionPaths(shell)
	if err != nil {
		return nil, fmt.Errorf("resolving completion paths: %w", err)
	}
	return &CompletionManager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       paths,
		generator:   GetGenerator(shell),
	}, nil
}

// Accept generates and retains the completion script for data.
func (cm *CompletionManager) Accept(data CompletionData) {
	cm.script = cm.generator.Generate(cm.ProgramName, data)
}

// Script returns the script generated by the last Accept call.
func (cm *CompletionManager) Script() string {
	return cm.script
}

// SaveCompletion writes the generated script into the shell's
// completion directory under the shell's file naming convention.
// Accept must have run first.
func (cm *CompletionManager) SaveCompletion() error {
	if cm.script == "" {
		return fmt.Errorf("no completion script generated")
	}
	dir, err := cm.installDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, cm.completionFileName())
	if err := os.WriteFile(path, []byte(cm.script), 0644); err != nil {
		return fmt.Errorf("writing completion file: %w", err)
	}
	return ensurePermission(path, 0644)
}

// installDir returns the directory scripts install to, creating it when
// missing. The fallback serves when the primary cannot be prepared.
func (cm *CompletionManager) installDir() (string, error) {
	err := ensureDir(cm.Paths.Primary, 0755)
	if err == nil {
		return cm.Paths.Primary, nil
	}
	if cm.Paths.Fallback != "" {
		if fbErr := ensureDir(cm.Paths.Fallback, 0755); fbErr == nil {
			return cm.Paths.Fallback, nil
		}
	}
	return "", fmt.Errorf("creating completion directory: %w", err)
}

// completionFileName applies the shell's naming convention to the
// program name.
func (cm *CompletionManager) completionFileName() string {
	conv := shellConventions(cm.Shell)
	return conv.Prefix + cm.ProgramName + conv.Extension
}

// shellConventions returns the completion file naming rules for shell.
func shellConventions(shell string) CompletionFileInfo {
	switch shell {
	case "zsh":
		return CompletionFileInfo{Prefix: "_", Comment: "zsh completion files start with an underscore"}
	case "fish":
		return CompletionFileInfo{Extension: ".fish", Comment: "fish completion files end in .fish"}
	case "powershell":
		return CompletionFileInfo{Extension: ".ps1", Comment: "PowerShell completion scripts end in .ps1"}
	default:
		return CompletionFileInfo{Comment: "bash completion files carry the bare command name"}
	}
}
