// SPDX-License-Identifier: MPL-2.0

package scan

import "github.com/avrovalidate/avrovalidate/pkg/types"

// NormalizeArgs drops repeated arguments, keeping the first occurrence of each
// in its original position. No arguments means standard input.
func NormalizeArgs(args []string) []types.FilesystemPath {
	seen := make(map[string]struct{}, len(args))
	out := make([]types.FilesystemPath, 0, len(args))
	for _, arg := range args {
		if _, dup := seen[arg]; dup {
			continue
		}
		seen[arg] = struct{}{}
		out = append(out, types.FilesystemPath(arg))
	}

	if len(out) == 0 {
		return []types.FilesystemPath{types.StdinPath}
	}
	return out
}
