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
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
)

// GetRoleDefinition returns the role definition with a given role name at a given scope
func GetRoleDefinition(ctx context.Context, roleDefinitionsClient *armauthorization.RoleDefinitionsClient, scope string, roleName string) (roleDefinition RoleDefinition, err error) {
	pager := roleDefinitionsClient.NewListPager(scope, &armauthorization.RoleDefinitionsClientListOptions{
		Filter: to.Ptr(fmt.Sprintf("roleName eq '%s'", roleName)),
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return roleDefinition, err
		}
		for _, armRoleDefinition := range page.Value {
			return MakeRoleDefinition(armRoleDefinition), nil
		}
	}
	return roleDefinition, fmt.Errorf("rol role definition not found at scope %s: '%s'", scope, roleName)
}
