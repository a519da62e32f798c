package module

import (
	"strings"
)

// splitHead splits a dotted path into its head segment and remainder.
// nested is false when the path has a single segment.
func splitHead(path string) (head, rest string, nested bool) {
	if i := strings.IndexByte(path, '.'); i >= 0 {
		return path[:i], path[i+1:], true
	}
	return path, "", false
}

// splitLegacy splits a legacy underscore-joined name on its LAST
// underscore into (moduleName, portName). Names that themselves contain
// underscores are ambiguous under this scheme; last-underscore-wins is
// preserved as inherited behavior.
func splitLegacy(name string) (moduleName, portName string, ok bool) {
	if i := strings.LastIndexByte(name, '_'); i >= 0 {
		return name[:i], name[i+1:], true
	}
	return "", "", false
}
