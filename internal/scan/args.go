package scan

import "strings"

// NormalizeArgs rewrites space separated file type lists ("-f .js .php") into one
// --file-types occurrence per value so the flag parser accepts them. A bare -f with
// no values is dropped. Arguments after "--" and subcommand invocations are untouched.
func NormalizeArgs(args []string) []string {
	if len(args) < 2 || isCommand(args[1]) {
		return args
	}

	out := make([]string, 0, len(args))
	out = append(out, args[0])
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if arg != "-f" && arg != "--file-types" && arg != "-file-types" {
			out = append(out, arg)
			continue
		}
		for i+1 < len(args) && !looksLikeFlag(args[i+1]) {
			i++
			out = append(out, "--file-types", args[i])
		}
	}
	return out
}

func looksLikeFlag(arg string) bool {
	return strings.HasPrefix(arg, "-") && len(arg) > 1
}

func isCommand(arg string) bool {
	return arg == "history"
}
