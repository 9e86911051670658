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

// ValidateActions classifies every pattern of an action list against the catalog
// Every pattern is evaluated, NO short circuit on the first invalid one: the report needs the full partition
func ValidateActions(patterns []string, catalog OperationCatalog) (validationResult ValidationResult, err error) {
	for _, pattern := range patterns {
		isValid, err := IsValidAction(pattern, catalog)
		if err != nil {
			return validationResult, err
		}
		if isValid {
			validationResult.ValidPatterns = append(validationResult.ValidPatterns, pattern)
		} else {
			validationResult.InvalidPatterns = append(validationResult.InvalidPatterns, pattern)
		}
	}
	return validationResult, nil
}
