// Copyright 2025 Tanguy Berteau
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package act

import (
	"fmt"
	"strings"
)

// IsValidAction reports whether an action pattern denotes at least one operation of the catalog
// Rules, tried in order, first success wins:
// 1. the pattern is an operation id of the catalog, exact case sensitive match
// 2. the pattern ends with /* and an operation id starts with prefix plus a path separator
// 3. the pattern ends with a bare * and an operation id starts with the prefix, no separator required
// Rule 2 MUST be checked before rule 3: a pattern ending in /* also ends in * and rule 3 alone would match on a wider prefix
// A pattern matching nothing is NOT an error, it is a normal false verdict
// Returns an error only on malformed input: empty pattern or catalog not built with MakeOperationCatalog
func IsValidAction(pattern string, catalog OperationCatalog) (isValid bool, err error) {
	if pattern == "" {
		return false, fmt.Errorf("act invalid argument: empty action pattern")
	}
	if catalog.members == nil {
		return false, fmt.Errorf("act invalid argument: operation catalog has not been built")
	}
	if catalog.Contains(pattern) {
		return true, nil
	}
	if strings.HasSuffix(pattern, "/*") {
		prefix := strings.TrimSuffix(pattern, "/*") + "/"
		for _, operationID := range catalog.ordered {
			if strings.HasPrefix(operationID, prefix) {
				return true, nil
			}
		}
		return false, nil
	}
	if strings.HasSuffix(pattern, "*") {
		prefix := strings.TrimSuffix(pattern, "*")
		for _, operationID := range catalog.ordered {
			if strings.HasPrefix(operationID, prefix) {
				return true, nil
			}
		}
	}
	return false, nil
}
