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

package reportcompliance

import (
	"strconv"

	"github.com/TanguyBerteau/agt/utilities/pol"
)

// makeReportRecords renders the summaries as csv records
// One row per subscription for the totals, then one row per non compliant policy assignment
func makeReportRecords(complianceSummaries []pol.ComplianceSummary, displayNames map[string]string) (records [][]string) {
	records = append(records, []string{"subscriptionID", "subscriptionName", "policyAssignmentID", "nonCompliantResources", "nonCompliantPolicies"})
	for _, complianceSummary := range complianceSummaries {
		records = append(records, []string{
			complianceSummary.SubscriptionID,
			displayNames[complianceSummary.SubscriptionID],
			"",
			strconv.FormatInt(int64(complianceSummary.NonCompliantResources), 10),
			strconv.FormatInt(int64(complianceSummary.NonCompliantPolicies), 10),
		})
		for _, policyAssignment := range complianceSummary.PolicyAssignments {
			records = append(records, []string{
				complianceSummary.SubscriptionID,
				displayNames[complianceSummary.SubscriptionID],
				policyAssignment.PolicyAssignmentID,
				strconv.FormatInt(int64(policyAssignment.NonCompliantResources), 10),
				strconv.FormatInt(int64(policyAssignment.NonCompliantPolicies), 10),
			})
		}
	}
	return records
}
