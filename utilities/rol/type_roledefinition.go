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

package rol

// RoleDefinition a role definition with explicit typed action pattern lists
// The four facets are ordered as returned by the API, permissions blocks flattened
type RoleDefinition struct {
	ID               string
	Name             string
	RoleName         string
	Description      string
	RoleType         string
	AssignableScopes []string
	Actions          []string
	NotActions       []string
	DataActions      []string
	NotDataActions   []string
}

// IsCustom reports whether the role definition is a custom role
func (roleDefinition RoleDefinition) IsCustom() bool {
	return roleDefinition.RoleType == "CustomRole"
}
