package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/relpredict/internal/component"
	"github.com/roach88/relpredict/internal/record"
)

// LoadIssue is one problem found while loading component files.
type LoadIssue struct {
	File    string `json:"file"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
}

// LoadResult holds the components of every file that loaded cleanly.
type LoadResult struct {
	Components []record.Record
	Files      map[string]int // component count per file
	Issues     []LoadIssue
}

// loadComponents loads every path. Files with problems contribute issues
// instead of components. Missing files are a command error; the returned
// error is an ExitError.
func loadComponents(l *component.Loader, paths []string) (*LoadResult, error) {
	res := &LoadResult{Files: make(map[string]int, len(paths))}
	for _, p := range paths {
		recs, errs := l.LoadFile(p)
		if len(errs) == 0 {
			res.Components = append(res.Components, recs...)
			res.Files[p] = len(recs)
			continue
		}
		for _, err := range errs {
			issue := toIssue(p, err)
			if issue.Code == ErrCodeNotFound {
				return nil, NewExitError(ExitCommandError, fmt.Sprintf("component file not found: %s", p))
			}
			res.Issues = append(res.Issues, issue)
		}
	}
	return res, nil
}

func toIssue(file string, err error) LoadIssue {
	var le *component.LoadError
	if !errors.As(err, &le) {
		return LoadIssue{File: file, Code: ErrCodeGeneric, Message: err.Error()}
	}
	issue := LoadIssue{File: file, Code: le.Code, Message: le.Message}
	if le.Pos.IsValid() {
		issue.Line = le.Pos.Line()
	}
	return issue
}

// reportLoadIssues prints issues and returns the failure exit error.
func reportLoadIssues(f *OutputFormatter, issues []LoadIssue) error {
	if f.JSON() {
		if err := f.Error(issues[0].Code, fmt.Sprintf("%d component load error(s)", len(issues)), issues); err != nil {
			return err
		}
		return NewExitError(ExitFailure, "component files are invalid")
	}

	var b strings.Builder
	for _, is := range issues {
		if is.Line > 0 {
			fmt.Fprintf(&b, "%s:%d: [%s] %s\n", is.File, is.Line, is.Code, is.Message)
		} else {
			fmt.Fprintf(&b, "%s: [%s] %s\n", is.File, is.Code, is.Message)
		}
	}
	fmt.Fprint(f.Writer, b.String())
	return NewExitError(ExitFailure, "component files are invalid")
}
