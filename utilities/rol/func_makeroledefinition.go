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

import (
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
)

// MakeRoleDefinition converts an API role definition into the explicit typed structure
// Multiple permissions blocks are flattened facet by facet, order kept
func MakeRoleDefinition(armRoleDefinition *armauthorization.RoleDefinition) (roleDefinition RoleDefinition) {
	if armRoleDefinition == nil {
		return roleDefinition
	}
	if armRoleDefinition.ID != nil {
		roleDefinition.ID = *armRoleDefinition.ID
	}
	if armRoleDefinition.Name != nil {
		roleDefinition.Name = *armRoleDefinition.Name
	}
	properties := armRoleDefinition.Properties
	if properties == nil {
		return roleDefinition
	}
	if properties.RoleName != nil {
		roleDefinition.RoleName = *properties.RoleName
	}
	if properties.Description != nil {
		roleDefinition.Description = *properties.Description
	}
	if properties.RoleType != nil {
		roleDefinition.RoleType = *properties.RoleType
	}
	roleDefinition.AssignableScopes = flattenPatterns(properties.AssignableScopes)
	for _, permission := range properties.Permissions {
		if permission == nil {
			continue
		}
		roleDefinition.Actions = append(roleDefinition.Actions, flattenPatterns(permission.Actions)...)
		roleDefinition.NotActions = append(roleDefinition.NotActions, flattenPatterns(permission.NotActions)...)
		roleDefinition.DataActions = append(roleDefinition.DataActions, flattenPatterns(permission.DataActions)...)
		roleDefinition.NotDataActions = append(roleDefinition.NotDataActions, flattenPatterns(permission.NotDataActions)...)
	}
	return roleDefinition
}

func flattenPatterns(patterns []*string) (flattened []string) {
	for _, pattern := range patterns {
		if pattern != nil {
			flattened = append(flattened, *pattern)
		}
	}
	return flattened
}
