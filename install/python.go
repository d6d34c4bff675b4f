package install

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fredrikaverpil/gemmakit/gk"
)

// MinPython is the minimum supported Python version.
var MinPython = PythonVersion{Major: 3, Minor: 8}

// DefaultPythonCandidates are the interpreter names probed in order.
var DefaultPythonCandidates = []string{"python3", "python"}

// versionScript prints the interpreter's major.minor.micro version.
const versionScript = "import sys; print('%d.%d.%d' % sys.version_info[:3])"

// PythonVersion is an interpreter version triple.
type PythonVersion struct {
	Major int
	Minor int
	Micro int
}

func (v PythonVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
}

// VersionAdequate reports whether v satisfies MinPython.
//
// The comparison checks major and minor independently, so 4.0 is rejected.
// This mirrors the check the project has always shipped and is kept as is.
func VersionAdequate(v PythonVersion) bool {
	return v.Major >= MinPython.Major && v.Minor >= MinPython.Minor
}

// ParsePythonVersion parses "X.Y" or "X.Y.Z", tolerating a "Python " prefix
// and release suffixes such as "3.13.0rc1".
func ParsePythonVersion(s string) (PythonVersion, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "Python ")
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return PythonVersion{}, fmt.Errorf("parse python version %q: expected X.Y[.Z]", s)
	}

	nums := make([]int, 3)
	for i := 0; i < len(parts) && i < 3; i++ {
		digits := leadingDigits(parts[i])
		if digits == "" {
			return PythonVersion{}, fmt.Errorf("parse python version %q: invalid component %q", s, parts[i])
		}
		n, err := strconv.Atoi(digits)
		if err != nil {
			return PythonVersion{}, fmt.Errorf("parse python version %q: %w", s, err)
		}
		nums[i] = n
	}
	return PythonVersion{Major: nums[0], Minor: nums[1], Micro: nums[2]}, nil
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

// ErrNoPython is returned when none of the interpreter candidates can be run.
var ErrNoPython = errors.New("no python interpreter found")

// ProbePython runs each candidate in order and returns the first version reported.
func ProbePython(ctx context.Context, candidates []string) (PythonVersion, error) {
	log := gk.LoggerFromContext(ctx)
	var errs []error
	for _, name := range candidates {
		res, err := gk.Capture(ctx, name, "-c", versionScript)
		if err != nil {
			log.Debug("python probe failed", "candidate", name, "err", err)
			errs = append(errs, err)
			continue
		}
		v, err := ParsePythonVersion(res.Stdout)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		log.Debug("python found", "candidate", name, "version", v.String())
		return v, nil
	}
	return PythonVersion{}, errors.Join(append([]error{ErrNoPython}, errs...)...)
}
