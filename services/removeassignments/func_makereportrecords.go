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

package removeassignments

import (
	"github.com/TanguyBerteau/agt/utilities/asg"
)

// makeReportRecords renders the assignments slated for deletion as csv records
func makeReportRecords(principalObjectID string, roleAssignments []asg.RoleAssignment) (records [][]string) {
	records = append(records, []string{"principalObjectID", "assignmentID", "scope", "roleDefinitionID"})
	for _, roleAssignment := range roleAssignments {
		records = append(records, []string{
			principalObjectID,
			roleAssignment.ID,
			roleAssignment.Scope,
			roleAssignment.RoleDefinitionID,
		})
	}
	return records
}
