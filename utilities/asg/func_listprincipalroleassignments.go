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
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
)

// ListPrincipalRoleAssignments lists the role assignments of one principal in every given
// subscription context, in subscription order. The result is NOT de duplicated, use
// DedupeRoleAssignments before acting on it
func ListPrincipalRoleAssignments(ctx context.Context, credential azcore.TokenCredential, subscriptionIDs []string, principalObjectID string) (roleAssignments []RoleAssignment, err error) {
	for _, subscriptionID := range subscriptionIDs {
		roleAssignmentsClient, err := armauthorization.NewRoleAssignmentsClient(subscriptionID, credential, nil)
		if err != nil {
			return nil, fmt.Errorf("armauthorization.NewRoleAssignmentsClient subscription %s %v", subscriptionID, err)
		}
		pager := roleAssignmentsClient.NewListForSubscriptionPager(&armauthorization.RoleAssignmentsClientListForSubscriptionOptions{
			Filter: to.Ptr(fmt.Sprintf("principalId eq '%s'", principalObjectID)),
		})
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return nil, fmt.Errorf("list role assignments subscription %s %v", subscriptionID, err)
			}
			for _, armRoleAssignment := range page.Value {
				roleAssignments = append(roleAssignments, MakeRoleAssignment(armRoleAssignment))
			}
		}
	}
	return roleAssignments, nil
}
