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
	"fmt"
	"log"
	"os"

	"github.com/TanguyBerteau/agt/services/editwafexclusions"
	"github.com/TanguyBerteau/agt/services/remediate"
	"github.com/TanguyBerteau/agt/services/removeassignments"
	"github.com/TanguyBerteau/agt/services/reportcompliance"
	"github.com/TanguyBerteau/agt/services/validateroles"
	"github.com/TanguyBerteau/agt/utilities/ffo"
	"github.com/TanguyBerteau/agt/utilities/logging"

	"github.com/google/uuid"
)

// Initialize parses the arguments and prepares the execution, to be called once before AGTCli
func Initialize(ctx context.Context, execution *Execution) {
	log.SetFlags(0)
	execution.ctx = ctx
	execution.initID = fmt.Sprintf("%v", uuid.New())
	execution.checkArguments()
	execution.initialize()
}

// AGTCli runs the one command selected on the command line
func AGTCli(execution *Execution) (err error) {
	switch {
	case execution.commands.validateRoles:
		var global validateroles.Global
		err = validateroles.Initialize(execution.ctx, &global, execution.credential, &execution.settings, execution.environmentName, execution.initID)
		if err != nil {
			return err
		}
		return validateroles.ValidateRoles(&global, execution.parameters.roleName)
	case execution.commands.reportCompliance:
		var global reportcompliance.Global
		err = reportcompliance.Initialize(execution.ctx, &global, execution.credential, &execution.settings, execution.environmentName, execution.initID)
		if err != nil {
			return err
		}
		return reportcompliance.ReportCompliance(&global)
	case execution.commands.remediate:
		var global remediate.Global
		err = remediate.Initialize(execution.ctx, &global, execution.credential, &execution.settings, execution.environmentName, execution.initID)
		if err != nil {
			return err
		}
		return remediate.Remediate(&global, os.Stdin, execution.parameters.autoApprove)
	case execution.commands.removeAssignments:
		var global removeassignments.Global
		err = removeassignments.Initialize(execution.ctx, &global, execution.credential, &execution.settings, execution.environmentName, execution.initID)
		if err != nil {
			return err
		}
		return removeassignments.RemoveAssignments(&global, os.Stdin, execution.parameters.principalObjectID, execution.parameters.autoApprove)
	case execution.commands.editWAFExclusions:
		var global editwafexclusions.Global
		err = editwafexclusions.Initialize(execution.ctx, &global, execution.credential, &execution.settings, execution.environmentName, execution.initID)
		if err != nil {
			return err
		}
		return editwafexclusions.EditWAFExclusions(&global, os.Stdin,
			execution.parameters.resourceGroupName,
			execution.parameters.wafPolicyName,
			execution.parameters.editAction,
			execution.parameters.matchVariable,
			execution.parameters.selectorMatchOperator,
			execution.parameters.selector,
			execution.parameters.autoApprove)
	case execution.commands.dumpSettings:
		dumpPath := fmt.Sprintf("%s/solution_dump_%s.yaml", execution.repositoryPath, execution.environmentName)
		err = ffo.MarshalYAMLWrite(dumpPath, execution.settings)
		if err != nil {
			return err
		}
		log.Println(logging.Entry{
			TaskName:    "agtcli",
			Environment: execution.environmentName,
			Severity:    "NOTICE",
			Message:     "settings_dumped",
			Description: dumpPath,
			InitID:      execution.initID,
		})
	}
	return nil
}
