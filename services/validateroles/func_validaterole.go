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
	"github.com/TanguyBerteau/agt/utilities/rol"
)

// validateRole validates the four action lists of one role definition against the catalog
func validateRole(roleDefinition rol.RoleDefinition, catalog act.OperationCatalog) (validation roleValidation, err error) {
	validation.roleName = roleDefinition.RoleName
	facets := []struct {
		name     string
		patterns []string
	}{
		{"Actions", roleDefinition.Actions},
		{"NotActions", roleDefinition.NotActions},
		{"DataActions", roleDefinition.DataActions},
		{"NotDataActions", roleDefinition.NotDataActions},
	}
	for _, facet := range facets {
		result, err := act.ValidateActions(facet.patterns, catalog)
		if err != nil {
			return validation, err
		}
		validation.facets = append(validation.facets, facetValidation{
			facet:  facet.name,
			result: result,
		})
	}
	return validation, nil
}
