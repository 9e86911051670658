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
	"testing"
)

func TestUnitDedupeRoleAssignments(t *testing.T) {
	managementGroupAssignment := RoleAssignment{
		ID:    "/providers/Microsoft.Management/managementGroups/corp/providers/Microsoft.Authorization/roleAssignments/1111",
		Name:  "1111",
		Scope: "/providers/Microsoft.Management/managementGroups/corp",
	}
	subscriptionAssignment := RoleAssignment{
		ID:    "/subscriptions/aaaa/providers/Microsoft.Authorization/roleAssignments/2222",
		Name:  "2222",
		Scope: "/subscriptions/aaaa",
	}

	var tests = []struct {
		name            string
		roleAssignments []RoleAssignment
		wantCount       int
		wantFirstID     string
	}{
		{
			// the management group assignment is discovered through two subscription contexts
			name:            "managementGroupAssignmentSeenTwice",
			roleAssignments: []RoleAssignment{managementGroupAssignment, subscriptionAssignment, managementGroupAssignment},
			wantCount:       2,
			wantFirstID:     managementGroupAssignment.ID,
		},
		{
			name:            "noDuplicates",
			roleAssignments: []RoleAssignment{subscriptionAssignment, managementGroupAssignment},
			wantCount:       2,
			wantFirstID:     subscriptionAssignment.ID,
		},
		{
			name:            "empty",
			roleAssignments: []RoleAssignment{},
			wantCount:       0,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			deduped := DedupeRoleAssignments(test.roleAssignments)
			if len(deduped) != test.wantCount {
				t.Errorf("Want %d role assignments got %d", test.wantCount, len(deduped))
			}
			if test.wantCount > 0 && deduped[0].ID != test.wantFirstID {
				t.Errorf("First role assignment want %s got %s", test.wantFirstID, deduped[0].ID)
			}
		})
	}
}
