package fswatch

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// ParseOps parses a comma-separated operation list ("create,write") into a
// fsnotify operation mask. An empty spec yields the zero mask, which
// delivers every operation.
func ParseOps(spec string) (fsnotify.Op, error) {
	var mask fsnotify.Op
	for _, part := range strings.Split(spec, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "":
			continue
		case "create":
			mask |= fsnotify.Create
		case "write":
			mask |= fsnotify.Write
		case "remove":
			mask |= fsnotify.Remove
		case "rename":
			mask |= fsnotify.Rename
		case "chmod":
			mask |= fsnotify.Chmod
		default:
			return 0, fmt.Errorf("fswatch: unknown operation %q", strings.TrimSpace(part))
		}
	}
	return mask, nil
}
