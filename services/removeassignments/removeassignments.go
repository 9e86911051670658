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
	"fmt"
	"io"
	"log"
	"path/filepath"
	"time"

	"github.com/TanguyBerteau/agt/utilities/asg"
	"github.com/TanguyBerteau/agt/utilities/ask"
	"github.com/TanguyBerteau/agt/utilities/ffo"
	"github.com/TanguyBerteau/agt/utilities/logging"
	"github.com/TanguyBerteau/agt/utilities/sub"
)

// RemoveAssignments deletes every role assignment of the principal across all enabled subscriptions
// confirmReader answers the confirmation prompt, autoApprove skips it
func RemoveAssignments(global *Global, confirmReader io.Reader, principalObjectID string, autoApprove bool) (err error) {
	start := time.Now()
	subscriptionIDs, _, err := sub.ListEnabledSubscriptions(global.ctx, global.subscriptionsClient)
	if err != nil {
		log.Println(logging.Entry{
			TaskName:    "removeassignments",
			Environment: global.environment,
			Severity:    "CRITICAL",
			Message:     "subscriptions_unavailable",
			Description: fmt.Sprintf("sub.ListEnabledSubscriptions %v", err),
			InitID:      global.initID,
		})
		return err
	}

	roleAssignments, err := asg.ListPrincipalRoleAssignments(global.ctx, global.credential, subscriptionIDs, principalObjectID)
	if err != nil {
		log.Println(logging.Entry{
			TaskName:    "removeassignments",
			Environment: global.environment,
			Severity:    "CRITICAL",
			Message:     "role_assignments_unavailable",
			Description: fmt.Sprintf("asg.ListPrincipalRoleAssignments %v", err),
			InitID:      global.initID,
		})
		return err
	}
	roleAssignments = asg.DedupeRoleAssignments(roleAssignments)
	if len(roleAssignments) == 0 {
		log.Println(logging.Entry{
			TaskName:       "removeassignments",
			Environment:    global.environment,
			Severity:       "NOTICE",
			Message:        "finish",
			Description:    fmt.Sprintf("principal %s has no role assignment on %d subscriptions", principalObjectID, len(subscriptionIDs)),
			InitID:         global.initID,
			LatencySeconds: time.Since(start).Seconds(),
		})
		return nil
	}

	for _, roleAssignment := range roleAssignments {
		log.Println(logging.Entry{
			TaskName:    "removeassignments",
			Environment: global.environment,
			Severity:    "INFO",
			Message:     "assignment_to_delete",
			Description: fmt.Sprintf("%s on scope %s", roleAssignment.ID, roleAssignment.Scope),
			InitID:      global.initID,
		})
	}

	if global.reportFormat == "csv" || global.reportFormat == "both" {
		ffo.CheckPath(global.reportFolderPath)
		reportPath := filepath.Join(global.reportFolderPath, fmt.Sprintf("removed_assignments_%s.csv", global.environment))
		err = ffo.WriteCSV(reportPath, makeReportRecords(principalObjectID, roleAssignments))
		if err != nil {
			log.Println(logging.Entry{
				TaskName:    "removeassignments",
				Environment: global.environment,
				Severity:    "CRITICAL",
				Message:     "report_write_failed",
				Description: fmt.Sprintf("ffo.WriteCSV %s %v", reportPath, err),
				InitID:      global.initID,
			})
			return err
		}
		log.Println(logging.Entry{
			TaskName:    "removeassignments",
			Environment: global.environment,
			Severity:    "NOTICE",
			Message:     "report_written",
			Description: reportPath,
			InitID:      global.initID,
		})
	}

	if !autoApprove {
		confirmed, err := ask.Confirm(confirmReader, fmt.Sprintf("Delete %d role assignments of principal %s", len(roleAssignments), principalObjectID))
		if err != nil {
			return err
		}
		if !confirmed {
			log.Println(logging.Entry{
				TaskName:    "removeassignments",
				Environment: global.environment,
				Severity:    "NOTICE",
				Message:     "aborted_by_user",
				InitID:      global.initID,
			})
			return nil
		}
	}

	deletedCount := asg.DeleteRoleAssignments(global.ctx, global.roleAssignmentsClient, roleAssignments)

	log.Println(logging.Entry{
		TaskName:       "removeassignments",
		Environment:    global.environment,
		Severity:       "NOTICE",
		Message:        "finish",
		Description:    fmt.Sprintf("%d of %d role assignments deleted", deletedCount, len(roleAssignments)),
		InitID:         global.initID,
		LatencySeconds: time.Since(start).Seconds(),
	})
	return nil
}
