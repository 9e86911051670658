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
	"flag"
	"fmt"
	"log"

	"github.com/TanguyBerteau/agt/utilities/solution"
)

// checkArguments check cli arguments, exactly one command per run
func (execution *Execution) checkArguments() {
	flag.BoolVar(&execution.commands.validateRoles, "validateroles", false, "validate custom role definition action patterns against the provider operation catalog")
	flag.BoolVar(&execution.commands.reportCompliance, "reportcompliance", false, "report policy compliance for every enabled subscription")
	flag.BoolVar(&execution.commands.remediate, "remediate", false, "create remediation tasks for non compliant policy assignments")
	flag.BoolVar(&execution.commands.removeAssignments, "removeassignments", false, "delete the role assignments of one principal across enabled subscriptions")
	flag.BoolVar(&execution.commands.editWAFExclusions, "editwafexclusions", false, "add or remove one managed rules exclusion on a WAF policy")
	flag.BoolVar(&execution.commands.dumpSettings, "dump", false, fmt.Sprintf("dump the situated settings next to %s", solution.SettingsFileName))
	flag.StringVar(&execution.repositoryPath, "repo", ".", "Path to the root of the configuration repository")
	flag.StringVar(&execution.environmentName, "environment", solution.DevelopmentEnvironmentName, "Environment name")
	flag.StringVar(&execution.parameters.roleName, "role", "", "Role name, scopes validateroles to one custom role")
	flag.StringVar(&execution.parameters.principalObjectID, "principal", "", "Object id of the principal whose role assignments are removed")
	flag.StringVar(&execution.parameters.resourceGroupName, "resourcegroup", "", "Resource group of the WAF policy")
	flag.StringVar(&execution.parameters.wafPolicyName, "wafpolicy", "", "WAF policy name")
	flag.StringVar(&execution.parameters.editAction, "editaction", "add", "add or remove the WAF exclusion")
	flag.StringVar(&execution.parameters.matchVariable, "matchvariable", "", "WAF exclusion match variable e.g. RequestCookieNames")
	flag.StringVar(&execution.parameters.selectorMatchOperator, "operator", "", "WAF exclusion selector match operator e.g. Equals")
	flag.StringVar(&execution.parameters.selector, "selector", "", "WAF exclusion selector")
	flag.BoolVar(&execution.parameters.autoApprove, "autoapprove", false, "skip the confirmation prompts of destructive commands")
	flag.Parse()

	commandCount := 0
	for _, command := range []bool{
		execution.commands.validateRoles,
		execution.commands.reportCompliance,
		execution.commands.remediate,
		execution.commands.removeAssignments,
		execution.commands.editWAFExclusions,
		execution.commands.dumpSettings,
	} {
		if command {
			commandCount++
		}
	}
	if commandCount != 1 {
		log.Fatalln("Choose exactly one command: validateroles, reportcompliance, remediate, removeassignments, editwafexclusions or dump")
	}
	if execution.commands.removeAssignments && execution.parameters.principalObjectID == "" {
		log.Fatalln("Missing principal argument")
	}
	if execution.commands.editWAFExclusions {
		if execution.parameters.resourceGroupName == "" {
			log.Fatalln("Missing resourcegroup argument")
		}
		if execution.parameters.wafPolicyName == "" {
			log.Fatalln("Missing wafpolicy argument")
		}
	}
}
