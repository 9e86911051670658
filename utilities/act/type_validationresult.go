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

// ValidationResult the partition of one action pattern list into valid and invalid patterns, evaluation order kept
type ValidationResult struct {
	ValidPatterns   []string
	InvalidPatterns []string
}

// IsValid reports whether every pattern of the list was valid
func (validationResult ValidationResult) IsValid() bool {
	return len(validationResult.InvalidPatterns) == 0
}
