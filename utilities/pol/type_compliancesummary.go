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

// ComplianceSummary the compliance summary of one subscription, flattened per policy assignment
type ComplianceSummary struct {
	SubscriptionID        string
	NonCompliantResources int32
	NonCompliantPolicies  int32
	PolicyAssignments     []PolicyAssignmentCompliance
}

// PolicyAssignmentCompliance the non compliance counts of one policy assignment
type PolicyAssignmentCompliance struct {
	PolicyAssignmentID    string
	NonCompliantResources int32
	NonCompliantPolicies  int32
}

// IsCompliant reports whether the subscription has no non compliant resource left
func (complianceSummary ComplianceSummary) IsCompliant() bool {
	return complianceSummary.NonCompliantResources == 0
}
