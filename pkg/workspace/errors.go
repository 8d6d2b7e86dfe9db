package workspace

import (
	"errors"
	"fmt"
)

var (
	ErrNotADirectory             = errors.New("path exists but is not a directory")
	ErrNotAWorkspace             = errors.New("directory is not a markhor workspace")
	ErrInvalidWorkspaceConfig    = errors.New("workspace config is missing or malformed")
	ErrPathIsFile                = errors.New("path exists and is a file, not a directory")
	ErrWorkspaceCreationConflict = errors.New("target exists and is not empty")
	ErrNotMarkhorFile            = errors.New("path does not reference a .markhor file")
	ErrNoFileStem                = errors.New("path has no file stem")
	ErrNoParentDirectory         = errors.New("path has no parent directory")
)

// ConflictRule identifies which of the four content-file ownership rules
// (R1-R4, see the storage model's conflict-check algorithm) was violated.
type ConflictRule int

const (
	RuleR1 ConflictRule = iota + 1
	RuleR2
	RuleR3
	RuleR4
)

func (r ConflictRule) String() string {
	switch r {
	case RuleR1:
		return "R1"
	case RuleR2:
		return "R2"
	case RuleR3:
		return "R3"
	case RuleR4:
		return "R4"
	default:
		return "unknown rule"
	}
}

// ConflictError reports which ownership rule blocked a create or move, and
// names the on-disk entry that triggered it so the caller can explain the
// failure without re-running the scan.
type ConflictError struct {
	Rule     ConflictRule
	Path     string
	TrueBase string
	Hex      string
}

func (e *ConflictError) Error() string {
	switch e.Rule {
	case RuleR1:
		return fmt.Sprintf("%s: metadata file already exists", e.Path)
	case RuleR2:
		return fmt.Sprintf("%s: would be adopted as a content file (%s)", e.Path, e.Rule)
	case RuleR3:
		return fmt.Sprintf("trueBase=%s, hex=%s: base document %s.markhor already exists (%s)", e.TrueBase, e.Hex, e.TrueBase, e.Rule)
	case RuleR4:
		return fmt.Sprintf("trueBase=%s: a suffixed document %s.<hex>.markhor already exists (%s)", e.TrueBase, e.TrueBase, e.Rule)
	default:
		return fmt.Sprintf("%s: conflict (%s)", e.Path, e.Rule)
	}
}
