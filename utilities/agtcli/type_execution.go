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

package agtcli

import (
	"context"

	"github.com/TanguyBerteau/agt/utilities/solution"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// Execution carries the state of one cli run: the chosen command, its parameters and the situated settings
type Execution struct {
	agtVersion string
	commands   struct {
		dumpSettings      bool
		editWAFExclusions bool
		remediate         bool
		removeAssignments bool
		reportCompliance  bool
		validateRoles     bool
	}
	credential      azcore.TokenCredential
	ctx             context.Context
	environmentName string
	goVersion       string
	initID          string
	parameters      struct {
		autoApprove           bool
		editAction            string
		matchVariable         string
		principalObjectID     string
		resourceGroupName     string
		roleName              string
		selector              string
		selectorMatchOperator string
		wafPolicyName         string
	}
	repositoryPath string
	settings       solution.Settings
}
