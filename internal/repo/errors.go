package repo

import (
	"fmt"

	"github.com/wasabi0522/musubi/internal/result"
)

// classedError is a fixed failure message with its result class.
type classedError struct {
	msg   string
	class result.Class
}

func (e *classedError) Error() string             { return e.msg }
func (e *classedError) ResultClass() result.Class { return e.class }

var (
	// ErrNotRepository is returned by mutating operations on a path outside any repository.
	ErrNotRepository error = &classedError{"Not a repository", result.ClassNotRepository}
	// ErrUnmergedFiles is returned when a continue is attempted with conflicts left.
	ErrUnmergedFiles error = &classedError{"Unmerged files remain", result.ClassPrecondition}
	// ErrNothingInProgress is returned when continue is attempted while idle.
	ErrNothingInProgress error = &classedError{"No merge/rebase in progress", result.ClassPrecondition}
	// ErrEmptyMessage is returned by Commit when the message is blank.
	ErrEmptyMessage error = &classedError{"Commit message is required", result.ClassPrecondition}
)

// PathOutsideRepoError indicates a file argument resolves outside the repository root.
type PathOutsideRepoError struct {
	Path string
	Root string
}

func (e *PathOutsideRepoError) Error() string {
	return fmt.Sprintf("path '%s' is outside repository '%s'", e.Path, e.Root)
}

func (e *PathOutsideRepoError) ResultClass() result.Class { return result.ClassPrecondition }

// NotConflictedError indicates a per-file resolution was requested for a path
// that has no conflict.
type NotConflictedError struct {
	Path string
}

func (e *NotConflictedError) Error() string {
	return fmt.Sprintf("path '%s' is not conflicted", e.Path)
}

func (e *NotConflictedError) ResultClass() result.Class { return result.ClassPrecondition }

// MissingArgumentError indicates a required argument was empty and had no default.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s is required", e.Name)
}

func (e *MissingArgumentError) ResultClass() result.Class { return result.ClassPrecondition }
