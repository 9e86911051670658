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
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
)

func TestUnitMakeRoleDefinition(t *testing.T) {
	armRoleDefinition := &armauthorization.RoleDefinition{
		ID:   to.Ptr("/subscriptions/aaaa/providers/Microsoft.Authorization/roleDefinitions/bbbb"),
		Name: to.Ptr("bbbb"),
		Properties: &armauthorization.RoleDefinitionProperties{
			RoleName:         to.Ptr("Virtual machine operator"),
			Description:      to.Ptr("Can start and restart virtual machines"),
			RoleType:         to.Ptr("CustomRole"),
			AssignableScopes: []*string{to.Ptr("/subscriptions/aaaa")},
			Permissions: []*armauthorization.Permission{
				{
					Actions:    []*string{to.Ptr("Microsoft.Compute/virtualMachines/start/action")},
					NotActions: []*string{to.Ptr("Microsoft.Compute/virtualMachines/delete")},
				},
				{
					Actions:        []*string{to.Ptr("Microsoft.Compute/virtualMachines/restart/action")},
					DataActions:    []*string{to.Ptr("Microsoft.Storage/storageAccounts/blobServices/containers/blobs/read")},
					NotDataActions: []*string{to.Ptr("Microsoft.Storage/storageAccounts/blobServices/containers/blobs/write")},
				},
			},
		},
	}

	roleDefinition := MakeRoleDefinition(armRoleDefinition)

	if roleDefinition.RoleName != "Virtual machine operator" {
		t.Errorf("RoleName want Virtual machine operator got %s", roleDefinition.RoleName)
	}
	if !roleDefinition.IsCustom() {
		t.Errorf("IsCustom want true got false")
	}
	// two permissions blocks flattened, order kept
	if len(roleDefinition.Actions) != 2 {
		t.Errorf("Want 2 actions got %d", len(roleDefinition.Actions))
	}
	if roleDefinition.Actions[0] != "Microsoft.Compute/virtualMachines/start/action" {
		t.Errorf("First action want the first block one got %s", roleDefinition.Actions[0])
	}
	if len(roleDefinition.NotActions) != 1 {
		t.Errorf("Want 1 notAction got %d", len(roleDefinition.NotActions))
	}
	if len(roleDefinition.DataActions) != 1 {
		t.Errorf("Want 1 dataAction got %d", len(roleDefinition.DataActions))
	}
	if len(roleDefinition.NotDataActions) != 1 {
		t.Errorf("Want 1 notDataAction got %d", len(roleDefinition.NotDataActions))
	}
	if len(roleDefinition.AssignableScopes) != 1 {
		t.Errorf("Want 1 assignable scope got %d", len(roleDefinition.AssignableScopes))
	}
}

func TestUnitMakeRoleDefinitionNilSafe(t *testing.T) {
	var tests = []struct {
		name              string
		armRoleDefinition *armauthorization.RoleDefinition
	}{
		{"nilRoleDefinition", nil},
		{"nilProperties", &armauthorization.RoleDefinition{ID: to.Ptr("id")}},
		{"nilPermission", &armauthorization.RoleDefinition{
			Properties: &armauthorization.RoleDefinitionProperties{
				Permissions: []*armauthorization.Permission{nil},
			},
		}},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			roleDefinition := MakeRoleDefinition(test.armRoleDefinition)
			if len(roleDefinition.Actions) != 0 {
				t.Errorf("Want no actions got %d", len(roleDefinition.Actions))
			}
			if roleDefinition.IsCustom() {
				t.Errorf("IsCustom want false got true")
			}
		})
	}
}
