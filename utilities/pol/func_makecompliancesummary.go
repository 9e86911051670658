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
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/policyinsights/armpolicyinsights"
)

// MakeComplianceSummary flattens a summarize answer into one row per policy assignment
// The API returns at most one summary element for a subscription scope query
func MakeComplianceSummary(subscriptionID string, summarizeResults armpolicyinsights.SummarizeResults) (complianceSummary ComplianceSummary) {
	complianceSummary.SubscriptionID = subscriptionID
	for _, summary := range summarizeResults.Value {
		if summary == nil {
			continue
		}
		if summary.Results != nil {
			if summary.Results.NonCompliantResources != nil {
				complianceSummary.NonCompliantResources = *summary.Results.NonCompliantResources
			}
			if summary.Results.NonCompliantPolicies != nil {
				complianceSummary.NonCompliantPolicies = *summary.Results.NonCompliantPolicies
			}
		}
		for _, policyAssignmentSummary := range summary.PolicyAssignments {
			if policyAssignmentSummary == nil {
				continue
			}
			var policyAssignmentCompliance PolicyAssignmentCompliance
			if policyAssignmentSummary.PolicyAssignmentID != nil {
				policyAssignmentCompliance.PolicyAssignmentID = *policyAssignmentSummary.PolicyAssignmentID
			}
			if policyAssignmentSummary.Results != nil {
				if policyAssignmentSummary.Results.NonCompliantResources != nil {
					policyAssignmentCompliance.NonCompliantResources = *policyAssignmentSummary.Results.NonCompliantResources
				}
				if policyAssignmentSummary.Results.NonCompliantPolicies != nil {
					policyAssignmentCompliance.NonCompliantPolicies = *policyAssignmentSummary.Results.NonCompliantPolicies
				}
			}
			complianceSummary.PolicyAssignments = append(complianceSummary.PolicyAssignments, policyAssignmentCompliance)
		}
	}
	return complianceSummary
}
