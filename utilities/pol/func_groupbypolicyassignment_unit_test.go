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
	"testing"
)

func TestUnitGroupByPolicyAssignment(t *testing.T) {
	denyPublicIP := "/subscriptions/aaaa/providers/Microsoft.Authorization/policyAssignments/deny-public-ip"
	requireTags := "/subscriptions/aaaa/providers/Microsoft.Authorization/policyAssignments/require-tags"
	policyStates := []PolicyState{
		{ResourceID: "vm1", PolicyAssignmentID: denyPublicIP},
		{ResourceID: "vm2", PolicyAssignmentID: denyPublicIP},
		{ResourceID: "storage1", PolicyAssignmentID: requireTags},
		{ResourceID: "orphan", PolicyAssignmentID: ""},
	}

	policyAssignmentIDs, countByPolicyAssignmentID := GroupByPolicyAssignment(policyStates)

	if len(policyAssignmentIDs) != 2 {
		t.Fatalf("Want 2 policy assignments got %d", len(policyAssignmentIDs))
	}
	if policyAssignmentIDs[0] != denyPublicIP {
		t.Errorf("First policy assignment want %s got %s", denyPublicIP, policyAssignmentIDs[0])
	}
	if countByPolicyAssignmentID[denyPublicIP] != 2 {
		t.Errorf("deny-public-ip count want 2 got %d", countByPolicyAssignmentID[denyPublicIP])
	}
	if countByPolicyAssignmentID[requireTags] != 1 {
		t.Errorf("require-tags count want 1 got %d", countByPolicyAssignmentID[requireTags])
	}
}
