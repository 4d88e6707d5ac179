package main

import "strings"

// outputFlag is a path flag that may also be given bare: "-index" selects the
// configured default path, "-index=out.json" an explicit one.
type outputFlag struct {
	set  bool
	path string
}

func (f *outputFlag) String() string {
	if f == nil {
		return ""
	}
	return f.path
}

func (f *outputFlag) Set(v string) error {
	f.set = true
	if v != "true" {
		f.path = v
	}
	return nil
}

func (f *outputFlag) IsBoolFlag() bool { return true }

// resolve returns the path to write and whether the flag was given at all.
func (f *outputFlag) resolve(fallback string) (string, bool) {
	if !f.set {
		return "", false
	}
	if f.path == "" {
		return fallback, true
	}
	return f.path, true
}

// joinOutputValues rewrites "-name value" into "-name=value" for the named
// output flags, so they accept a separate value like any string flag while
// still allowing the bare form. A following argument that starts with "-" is
// the next flag, not a value.
func joinOutputValues(args []string, names ...string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if isOutputFlag(arg, names) && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, arg+"="+args[i+1])
			i++
			continue
		}
		out = append(out, arg)
	}
	return out
}

func isOutputFlag(arg string, names []string) bool {
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if name == arg {
		return false
	}
	for _, n := range names {
		if name == n {
			return true
		}
	}
	return false
}
