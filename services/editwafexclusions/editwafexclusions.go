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

package editwafexclusions

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/TanguyBerteau/agt/utilities/ask"
	"github.com/TanguyBerteau/agt/utilities/erm"
	"github.com/TanguyBerteau/agt/utilities/logging"
	"github.com/TanguyBerteau/agt/utilities/waf"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
)

// EditWAFExclusions adds or removes one managed rules exclusion entry on a WAF policy
// editAction is add or remove, confirmReader answers the confirmation prompt, autoApprove skips it
func EditWAFExclusions(global *Global, confirmReader io.Reader, resourceGroupName string, wafPolicyName string, editAction string, matchVariable string, selectorMatchOperator string, selector string, autoApprove bool) (err error) {
	start := time.Now()
	if editAction != "add" && editAction != "remove" {
		return fmt.Errorf("editwafexclusions unknown edit action '%s', accepted values add remove", editAction)
	}
	entry, err := waf.MakeExclusionEntry(matchVariable, selectorMatchOperator, selector)
	if err != nil {
		log.Println(logging.Entry{
			TaskName:    "editwafexclusions",
			Environment: global.environment,
			Severity:    "CRITICAL",
			Message:     "invalid_exclusion_entry",
			Description: fmt.Sprintf("waf.MakeExclusionEntry %v", err),
			InitID:      global.initID,
		})
		return err
	}

	policy, err := waf.GetWAFPolicy(global.ctx, global.wafPoliciesClient, resourceGroupName, wafPolicyName)
	if err != nil {
		log.Println(logging.Entry{
			TaskName:    "editwafexclusions",
			Environment: global.environment,
			Severity:    "CRITICAL",
			Message:     "waf_policy_unavailable",
			Description: fmt.Sprintf("waf.GetWAFPolicy %s %s %v", resourceGroupName, wafPolicyName, err),
			InitID:      global.initID,
		})
		return err
	}
	if policy.Properties == nil || policy.Properties.ManagedRules == nil {
		return fmt.Errorf("editwafexclusions policy %s has no managed rules definition", wafPolicyName)
	}

	var changed bool
	exclusions := policy.Properties.ManagedRules.Exclusions
	switch editAction {
	case "add":
		exclusions, changed = waf.AddExclusion(exclusions, entry)
	case "remove":
		exclusions, changed = waf.RemoveExclusion(exclusions, entry)
	}
	if !changed {
		log.Println(logging.Entry{
			TaskName:       "editwafexclusions",
			Environment:    global.environment,
			Severity:       "NOTICE",
			Message:        "finish",
			Description:    fmt.Sprintf("policy %s already in the wanted state, nothing to write", wafPolicyName),
			InitID:         global.initID,
			LatencySeconds: time.Since(start).Seconds(),
		})
		return nil
	}
	policy.Properties.ManagedRules.Exclusions = exclusions

	if !autoApprove {
		confirmed, err := ask.Confirm(confirmReader, fmt.Sprintf("%s exclusion %s %s %s on policy %s", editAction, matchVariable, selectorMatchOperator, selector, wafPolicyName))
		if err != nil {
			return err
		}
		if !confirmed {
			log.Println(logging.Entry{
				TaskName:    "editwafexclusions",
				Environment: global.environment,
				Severity:    "NOTICE",
				Message:     "aborted_by_user",
				InitID:      global.initID,
			})
			return nil
		}
	}

	err = updateWAFPolicy(global, resourceGroupName, wafPolicyName, policy)
	if err != nil {
		log.Println(logging.Entry{
			TaskName:    "editwafexclusions",
			Environment: global.environment,
			Severity:    "CRITICAL",
			Message:     "waf_policy_write_failed",
			Description: fmt.Sprintf("waf.UpdateWAFPolicy %s %v", wafPolicyName, err),
			InitID:      global.initID,
		})
		return err
	}

	log.Println(logging.Entry{
		TaskName:       "editwafexclusions",
		Environment:    global.environment,
		Severity:       "NOTICE",
		Message:        "finish",
		Description:    fmt.Sprintf("policy %s updated, %d exclusions", wafPolicyName, len(exclusions)),
		InitID:         global.initID,
		LatencySeconds: time.Since(start).Seconds(),
	})
	return nil
}

func updateWAFPolicy(global *Global, resourceGroupName string, wafPolicyName string, policy armnetwork.WebApplicationFirewallPolicy) (err error) {
	deadline := time.Now().Add(time.Duration(global.retryTimeOutSeconds) * time.Second)
	for {
		err = waf.UpdateWAFPolicy(global.ctx, global.wafPoliciesClient, resourceGroupName, wafPolicyName, policy)
		if err == nil {
			return nil
		}
		if erm.IsNotTransientElseWait(err, 5) {
			return err
		}
		if time.Now().After(deadline) {
			return err
		}
	}
}
