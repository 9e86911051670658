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

package rem

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MakeRemediationName builds a unique remediation task name from a policy assignment id
// Remediation names must be unique per scope: the uuid suffix lets the same assignment be
// remediated again on a later run without colliding with a finished task
func MakeRemediationName(policyAssignmentID string) string {
	parts := strings.Split(policyAssignmentID, "/")
	policyAssignmentName := parts[len(parts)-1]
	return fmt.Sprintf("agt-%s-%v", policyAssignmentName, uuid.New())
}
