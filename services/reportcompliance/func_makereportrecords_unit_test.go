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
	"testing"

	"github.com/TanguyBerteau/agt/utilities/pol"
)

func TestUnitMakeReportRecords(t *testing.T) {
	complianceSummaries := []pol.ComplianceSummary{
		{
			SubscriptionID:        "aaaa",
			NonCompliantResources: 7,
			NonCompliantPolicies:  2,
			PolicyAssignments: []pol.PolicyAssignmentCompliance{
				{
					PolicyAssignmentID:    "/subscriptions/aaaa/providers/Microsoft.Authorization/policyAssignments/deny-public-ip",
					NonCompliantResources: 7,
					NonCompliantPolicies:  2,
				},
			},
		},
		{
			SubscriptionID: "bbbb",
		},
	}
	displayNames := map[string]string{"aaaa": "prod", "bbbb": "sandbox"}

	records := makeReportRecords(complianceSummaries, displayNames)

	// header, prod totals, prod assignment, sandbox totals
	if len(records) != 4 {
		t.Fatalf("Records count want 4 got %d", len(records))
	}
	if records[1][1] != "prod" || records[1][2] != "" || records[1][3] != "7" {
		t.Errorf("Subscription totals row got %v", records[1])
	}
	if records[2][2] != "/subscriptions/aaaa/providers/Microsoft.Authorization/policyAssignments/deny-public-ip" {
		t.Errorf("Assignment row got %v", records[2])
	}
	if records[3][1] != "sandbox" || records[3][3] != "0" {
		t.Errorf("Compliant subscription row got %v", records[3])
	}
}
