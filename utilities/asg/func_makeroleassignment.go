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

package asg

import (
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
)

// MakeRoleAssignment converts an API role assignment, nil fields flattened to empty strings
func MakeRoleAssignment(armRoleAssignment *armauthorization.RoleAssignment) (roleAssignment RoleAssignment) {
	if armRoleAssignment == nil {
		return roleAssignment
	}
	if armRoleAssignment.ID != nil {
		roleAssignment.ID = *armRoleAssignment.ID
	}
	if armRoleAssignment.Name != nil {
		roleAssignment.Name = *armRoleAssignment.Name
	}
	properties := armRoleAssignment.Properties
	if properties == nil {
		return roleAssignment
	}
	if properties.Scope != nil {
		roleAssignment.Scope = *properties.Scope
	}
	if properties.RoleDefinitionID != nil {
		roleAssignment.RoleDefinitionID = *properties.RoleDefinitionID
	}
	if properties.PrincipalID != nil {
		roleAssignment.PrincipalID = *properties.PrincipalID
	}
	return roleAssignment
}
