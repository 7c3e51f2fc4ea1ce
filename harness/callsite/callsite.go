// Copyright The Mantle Authors
// SPDX-License-Identifier: Apache-2.0

// Package callsite recovers the location and source text of a function
// call from the running program. The harness uses it to report failing
// assertions the way they were written.
package callsite

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/coreos/pkg/capnslog"
)

var (
	plog = capnslog.NewPackageLogger("github.com/flatcar/utf", "harness/callsite")

	// ErrNoCall is returned by Expr when no call to the requested
	// function spans the given line.
	ErrNoCall = errors.New("callsite: no matching call")

	// ErrAmbiguous is returned by Expr when more than one call to the
	// function spans the line. The runtime reports lines, not columns,
	// so there is no telling which of them is meant.
	ErrAmbiguous = errors.New("callsite: several matching calls")

	cacheMu sync.Mutex
	cache   = make(map[string]*sourceFile)
)

// Location identifies a call in the program source. Expr is empty when
// the source could not be read or parsed.
type Location struct {
	File string
	Line int
	Expr string
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

type sourceFile struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
	err  error
}

// Caller returns the location of a call to the function named fn, as
// seen skip frames above the caller of Caller. With skip 0 it describes
// the line that called Caller.
func Caller(skip int, fn string) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}

	loc := Location{File: file, Line: line}
	expr, err := Expr(file, line, fn)
	if err != nil {
		plog.Debugf("No source for %s: %v", loc, err)
		return loc
	}
	loc.Expr = expr
	return loc
}

// Here is Caller without the source text.
func Here(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}

// Panicking returns the location of the frame that raised the panic
// currently being recovered. It must be called from the deferred
// function that calls recover.
func Panicking() Location {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	unwinding := false
	for {
		frame, more := frames.Next()
		switch {
		case frame.Function == "runtime.gopanic" || frame.Function == "runtime.sigpanic":
			unwinding = true
		case unwinding && !strings.HasPrefix(frame.Function, "runtime."):
			return Location{File: frame.File, Line: frame.Line}
		}
		if !more {
			return Location{}
		}
	}
}

// Expr returns the source text of the call to fn that spans line in the
// named file. Calls spread over several lines are joined into one.
func Expr(path string, line int, fn string) (string, error) {
	sf, err := load(path)
	if err != nil {
		return "", err
	}

	var found []*ast.CallExpr
	ast.Inspect(sf.file, func(n ast.Node) bool {
		if n == nil {
			return false
		}
		start := sf.fset.Position(n.Pos()).Line
		end := sf.fset.Position(n.End()).Line
		if line < start || line > end {
			return false
		}
		if call, ok := n.(*ast.CallExpr); ok && callName(call) == fn {
			found = append(found, call)
			return false
		}
		return true
	})
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%w to %s at %s:%d", ErrNoCall, fn, path, line)
	case 1:
	default:
		return "", fmt.Errorf("%w to %s at %s:%d", ErrAmbiguous, fn, path, line)
	}

	begin := sf.fset.Position(found[0].Pos()).Offset
	end := sf.fset.Position(found[0].End()).Offset
	return strings.Join(strings.Fields(string(sf.src[begin:end])), " "), nil
}

func callName(call *ast.CallExpr) string {
	switch fun := call.Fun.(type) {
	case *ast.Ident:
		return fun.Name
	case *ast.SelectorExpr:
		return fun.Sel.Name
	case *ast.IndexExpr:
		return callName(&ast.CallExpr{Fun: fun.X})
	case *ast.IndexListExpr:
		return callName(&ast.CallExpr{Fun: fun.X})
	}
	return ""
}

// load parses a source file once per process; failures are cached too.
func load(path string) (*sourceFile, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if sf, ok := cache[path]; ok {
		return sf, sf.err
	}

	sf := &sourceFile{fset: token.NewFileSet()}
	sf.src, sf.err = os.ReadFile(path)
	if sf.err == nil {
		sf.file, sf.err = parser.ParseFile(sf.fset, path, sf.src, 0)
		if sf.err != nil {
			sf.err = fmt.Errorf("parsing %s: %w", path, sf.err)
		}
	}
	cache[path] = sf
	return sf, sf.err
}
