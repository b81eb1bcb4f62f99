// Package methods segments the flattened reference text into per-method
// definitions and groups related methods that share documentation.
package methods

import "strings"

// Names lists every documented JV-Link method in declared order. The
// segmenter expects detail sections in exactly this order, and error-code
// and rendering output sort by position in this list.
var Names = []string{
	"JVInit",
	"JVSetUIProperties",
	"JVSetServiceKey",
	"JVSetSaveFlag",
	"JVSetSavePath",
	"JVOpen",
	"JVRTOpen",
	"JVStatus",
	"JVRead",
	"JVGets",
	"JVSkip",
	"JVCancel",
	"JVClose",
	"JVFiledelete",
	"JVFukuFile",
	"JVFuku",
	"JVMVCheck",
	"JVMVCheckWithType",
	"JVMVPlay",
	"JVMVPlayWithType",
	"JVMVOpen",
	"JVMVRead",
	"JVCourseFile",
	"JVCourseFile2",
	"JVWatchEvent",
	"JVWatchEventClose",
}

// groupPairs lists method pairs documented as one unit: the secondary
// member's sections live under the primary's detail block.
var groupPairs = [][2]string{
	{"JVMVCheck", "JVMVCheckWithType"},
	{"JVMVPlay", "JVMVPlayWithType"},
	{"JVWatchEvent", "JVWatchEventClose"},
}

// Index returns the declared position of name, or len(Names) when unknown.
func Index(name string) int {
	for i, n := range Names {
		if n == name {
			return i
		}
	}
	return len(Names)
}

// IsName reports whether s is a known method name.
func IsName(s string) bool {
	return Index(s) < len(Names)
}

// NamesInText lists the method names mentioned in text, in declared order,
// each at most once. The text is split on slashes first so headings like
// "JVMVCheck／JVMVCheckWithType" surface both members; a name is counted
// whenever a segment contains it, so JVMVCheckWithType also yields
// JVMVCheck.
func NamesInText(text string) []string {
	normalized := strings.ReplaceAll(text, "／", "/")
	var found []string
	for _, segment := range strings.Split(normalized, "/") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		for _, name := range Names {
			if strings.Contains(segment, name) && !contains(found, name) {
				found = append(found, name)
			}
		}
	}
	return found
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

