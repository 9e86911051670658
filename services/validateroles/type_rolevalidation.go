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

import (
	"github.com/TanguyBerteau/agt/utilities/act"
)

// roleValidation is the validation outcome of one role definition, one facet at a time
type roleValidation struct {
	roleName string
	facets   []facetValidation
}

// facetValidation carries the verdicts for one action list of a role definition
// facet is one of Actions, NotActions, DataActions, NotDataActions
type facetValidation struct {
	facet  string
	result act.ValidationResult
}

func (r roleValidation) isValid() bool {
	for _, facet := range r.facets {
		if !facet.result.IsValid() {
			return false
		}
	}
	return true
}

func (r roleValidation) invalidPatternCount() (count int) {
	for _, facet := range r.facets {
		count += len(facet.result.InvalidPatterns)
	}
	return count
}
