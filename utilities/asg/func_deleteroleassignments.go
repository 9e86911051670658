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
	"log"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
)

// DeleteRoleAssignments deletes role assignments one by one through their fully qualified id
// A failed deletion does NOT stop the loop: the remaining assignments are still processed and
// the failure is logged as a warning, the caller gets the deleted count
func DeleteRoleAssignments(ctx context.Context, roleAssignmentsClient *armauthorization.RoleAssignmentsClient, roleAssignments []RoleAssignment) (deletedCount int) {
	for _, roleAssignment := range roleAssignments {
		_, err := roleAssignmentsClient.DeleteByID(ctx, roleAssignment.ID, nil)
		if err != nil {
			log.Printf("asg WARNING impossible to DELETE role assignment %s %v", roleAssignment.ID, err)
			continue
		}
		deletedCount++
		log.Printf("asg deleted role assignment %s scope %s", roleAssignment.Name, roleAssignment.Scope)
	}
	return deletedCount
}
