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

package pol

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/policyinsights/armpolicyinsights"
)

// ListNonCompliantStates lists the latest non compliant policy states of one subscription
func ListNonCompliantStates(ctx context.Context, policyStatesClient *armpolicyinsights.PolicyStatesClient, subscriptionID string) (policyStates []PolicyState, err error) {
	pager := policyStatesClient.NewListQueryResultsForSubscriptionPager(
		armpolicyinsights.PolicyStatesResourceLatest,
		subscriptionID,
		&armpolicyinsights.QueryOptions{
			Filter: to.Ptr("complianceState eq 'NonCompliant'"),
		},
		nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, armPolicyState := range page.Value {
			if armPolicyState == nil {
				continue
			}
			var policyState PolicyState
			if armPolicyState.ResourceID != nil {
				policyState.ResourceID = *armPolicyState.ResourceID
			}
			if armPolicyState.PolicyAssignmentID != nil {
				policyState.PolicyAssignmentID = *armPolicyState.PolicyAssignmentID
			}
			if armPolicyState.PolicyAssignmentName != nil {
				policyState.PolicyAssignmentName = *armPolicyState.PolicyAssignmentName
			}
			if armPolicyState.PolicyDefinitionName != nil {
				policyState.PolicyDefinitionName = *armPolicyState.PolicyDefinitionName
			}
			if armPolicyState.ComplianceState != nil {
				policyState.ComplianceState = *armPolicyState.ComplianceState
			}
			if armPolicyState.Timestamp != nil {
				policyState.Timestamp = *armPolicyState.Timestamp
			}
			policyStates = append(policyStates, policyState)
		}
	}
	return policyStates, nil
}
