package cabinet

import (
	"runtime"

	"golang.org/x/text/encoding"
)

// TransformFunc rewrites a record's content before serialization. It
// receives the value passed to Write and returns the value that is actually
// marshalled; it must not retain or mutate its argument.
type TransformFunc func(content any) any

// Options configures a Store.
type Options struct {
	// Encoding is the text encoding record files are written and read in.
	// A nil Encoding means plain UTF-8, which is also what every encoder
	// in golang.org/x/text transforms to and from.
	Encoding encoding.Encoding

	// Indent is the indentation unit for serialized records. Records are
	// always pretty-printed; an empty Indent selects the default of two
	// spaces rather than compact output.
	Indent string

	// Transform, when non-nil, is applied to content before each write.
	Transform TransformFunc

	// GitPath is the git binary used by Commit. Empty selects a platform
	// default, resolved once at construction.
	GitPath string
}

// DefaultOptions returns the configuration used when New is given a nil
// Options.
func DefaultOptions() Options {
	return Options{
		Indent:  "  ",
		GitPath: defaultGitPath(),
	}
}

// withDefaults merges o over DefaultOptions. A nil receiver yields the
// defaults unchanged.
func (o *Options) withDefaults() Options {
	merged := DefaultOptions()
	if o == nil {
		return merged
	}
	if o.Encoding != nil {
		merged.Encoding = o.Encoding
	}
	if o.Indent != "" {
		merged.Indent = o.Indent
	}
	if o.Transform != nil {
		merged.Transform = o.Transform
	}
	if o.GitPath != "" {
		merged.GitPath = o.GitPath
	}
	return merged
}

// defaultGitPath returns the conventional git location for the current
// platform. The path is not probed for existence; a missing binary shows
// up as a CommitError on first use.
func defaultGitPath() string {
	switch runtime.GOOS {
	case "windows":
		return `C:\Program Files\Git\bin\git.exe`
	case "linux":
		return "/usr/bin/git"
	default:
		return "git"
	}
}
