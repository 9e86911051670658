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

// DedupeRoleAssignments removes the duplicates a multi subscription listing surfaces for
// assignments above subscription scope. Keyed on the fully qualified assignment id, first
// occurrence wins, discovery order kept
func DedupeRoleAssignments(roleAssignments []RoleAssignment) (deduped []RoleAssignment) {
	seen := make(map[string]struct{}, len(roleAssignments))
	for _, roleAssignment := range roleAssignments {
		if _, found := seen[roleAssignment.ID]; found {
			continue
		}
		seen[roleAssignment.ID] = struct{}{}
		deduped = append(deduped, roleAssignment)
	}
	return deduped
}
