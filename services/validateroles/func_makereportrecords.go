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

package validateroles

// makeReportRecords renders the validations as csv records, one row per action pattern
func makeReportRecords(validations []roleValidation) (records [][]string) {
	records = append(records, []string{"roleName", "facet", "actionPattern", "isValid"})
	for _, validation := range validations {
		for _, facet := range validation.facets {
			for _, pattern := range facet.result.ValidPatterns {
				records = append(records, []string{validation.roleName, facet.facet, pattern, "true"})
			}
			for _, pattern := range facet.result.InvalidPatterns {
				records = append(records, []string{validation.roleName, facet.facet, pattern, "false"})
			}
		}
	}
	return records
}
