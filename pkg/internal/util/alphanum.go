// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"regexp"
	"strconv"
)

var chunkifyRegexp = regexp.MustCompile(`(\d+|\D+)`)

func chunkify(s string) []string {
	return chunkifyRegexp.FindAllString(s, -1)
}

// AlphanumLess reports whether a strictly precedes b in natural order, where
// runs of digits are compared by their numeric value, so "CS 9" < "CS 10".
func AlphanumLess(a, b string) bool {
	chunksA := chunkify(a)
	chunksB := chunkify(b)

	for i := 0; i < len(chunksA) && i < len(chunksB); i++ {
		x, y := chunksA[i], chunksB[i]

		xInt, xErr := strconv.Atoi(x)
		yInt, yErr := strconv.Atoi(y)

		// If both chunks are numeric, compare them as integers
		if xErr == nil && yErr == nil {
			if xInt != yInt {
				return xInt < yInt
			}

			continue
		}

		if x != y {
			return x < y
		}
	}

	// Every shared chunk is equal, so the shorter string goes first.
	return len(chunksA) < len(chunksB)
}
