package main

import (
	"strings"

	"github.com/jmgilman/gitc/errors"
)

// valueOptions are the git clone options that take their value as the next
// argument. Their value must stay attached and must not be read as the
// repository.
var valueOptions = map[string]bool{
	"-b": true, "--branch": true,
	"-o": true, "--origin": true,
	"-u": true, "--upload-pack": true,
	"-c": true, "--config": true,
	"-j": true, "--jobs": true,
	"--ref-format":        true,
	"--revision":          true,
	"--depth":             true,
	"--shallow-since":     true,
	"--shallow-exclude":   true,
	"--reference":         true,
	"--reference-if-able": true,
	"--separate-git-dir":  true,
	"--template":          true,
	"--server-option":     true,
	"--filter":            true,
	"--bundle-uri":        true,
}

// shortValueLetters are the short git clone options that take a value.
const shortValueLetters = "bocuj"

// invocation is a command line split into gitc's own concerns and the
// options passed through to git clone.
type invocation struct {
	passthrough []string
	positional  []string
	help        bool
	version     bool
}

// splitArgs separates options from positional arguments. Options keep their
// order and are passed to git clone verbatim; everything after "--" is
// positional.
func splitArgs(args []string) (*invocation, error) {
	inv := &invocation{}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			inv.positional = append(inv.positional, args[i+1:]...)
			return inv, nil
		case arg == "-h" || arg == "--help":
			inv.help = true
		case arg == "--version":
			inv.version = true
		case arg == "-" || !strings.HasPrefix(arg, "-"):
			inv.positional = append(inv.positional, arg)
		case valueOptions[arg] || shortGroupNeedsValue(arg):
			if i+1 >= len(args) {
				return inv, errors.Newf(errors.CodeInvalidInput, "option %s requires a value", arg)
			}
			inv.passthrough = append(inv.passthrough, arg, args[i+1])
			i++
		default:
			inv.passthrough = append(inv.passthrough, arg)
		}
	}

	return inv, nil
}

// shortGroupNeedsValue reports whether a group of short options such as
// "-qb" ends in an option that takes the next argument as its value. As in
// git, the first value-taking letter consumes the rest of the group, so
// "-bq" is the branch "q" and needs nothing more.
func shortGroupNeedsValue(arg string) bool {
	if len(arg) < 3 || arg[0] != '-' || arg[1] == '-' {
		return false
	}
	for i := 1; i < len(arg); i++ {
		if strings.IndexByte(shortValueLetters, arg[i]) >= 0 {
			return i == len(arg)-1
		}
	}
	return false
}
