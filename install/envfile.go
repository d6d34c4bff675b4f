package install

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Default names of the environment file and its template.
const (
	DefaultEnvFile     = ".env"
	DefaultEnvTemplate = ".env.example"
)

// EnvStatus describes what CreateEnvFile did.
type EnvStatus int

const (
	// EnvFailed means the env file could not be written.
	EnvFailed EnvStatus = iota
	// EnvExists means the env file was already present and left untouched.
	EnvExists
	// EnvCreated means the env file was copied from the template.
	EnvCreated
	// EnvTemplateMissing means there was no template to copy.
	EnvTemplateMissing
)

func (s EnvStatus) String() string {
	switch s {
	case EnvExists:
		return "exists"
	case EnvCreated:
		return "created"
	case EnvTemplateMissing:
		return "template-missing"
	default:
		return "failed"
	}
}

// CreateEnvFile copies templateName to envName inside dir unless envName exists.
// An existing env file is never overwritten.
func CreateEnvFile(dir, envName, templateName string) (EnvStatus, error) {
	envPath := filepath.Join(dir, envName)
	templatePath := filepath.Join(dir, templateName)

	if _, err := os.Stat(envPath); err == nil {
		return EnvExists, nil
	}

	data, err := os.ReadFile(templatePath)
	if errors.Is(err, fs.ErrNotExist) {
		return EnvTemplateMissing, nil
	}
	if err != nil {
		return EnvFailed, fmt.Errorf("read %s: %w", templateName, err)
	}

	// O_EXCL keeps a file created since the Stat above.
	f, err := os.OpenFile(envPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, fs.ErrExist) {
		return EnvExists, nil
	}
	if err != nil {
		return EnvFailed, fmt.Errorf("create %s: %w", envName, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return EnvFailed, fmt.Errorf("write %s: %w", envName, err)
	}
	if err := f.Close(); err != nil {
		return EnvFailed, fmt.Errorf("close %s: %w", envName, err)
	}
	return EnvCreated, nil
}
