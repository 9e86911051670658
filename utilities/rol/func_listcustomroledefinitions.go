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
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
)

// ListCustomRoleDefinitions returns the custom role definitions visible at a given scope
func ListCustomRoleDefinitions(ctx context.Context, roleDefinitionsClient *armauthorization.RoleDefinitionsClient, scope string) (roleDefinitions []RoleDefinition, err error) {
	pager := roleDefinitionsClient.NewListPager(scope, &armauthorization.RoleDefinitionsClientListOptions{
		Filter: to.Ptr("type eq 'CustomRole'"),
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, armRoleDefinition := range page.Value {
			roleDefinitions = append(roleDefinitions, MakeRoleDefinition(armRoleDefinition))
		}
	}
	return roleDefinitions, nil
}
