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
	"strings"
	"testing"
)

func TestUnitMakeRemediationName(t *testing.T) {
	policyAssignmentID := "/subscriptions/aaaa/providers/Microsoft.Authorization/policyAssignments/deny-public-ip"

	name := MakeRemediationName(policyAssignmentID)
	if !strings.HasPrefix(name, "agt-deny-public-ip-") {
		t.Errorf("Name should start with agt-deny-public-ip- and is %s", name)
	}

	otherName := MakeRemediationName(policyAssignmentID)
	if name == otherName {
		t.Errorf("Two names for the same assignment should differ, both are %s", name)
	}
}
