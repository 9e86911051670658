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

package remediate

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/TanguyBerteau/agt/utilities/ask"
	"github.com/TanguyBerteau/agt/utilities/erm"
	"github.com/TanguyBerteau/agt/utilities/logging"
	"github.com/TanguyBerteau/agt/utilities/pol"
	"github.com/TanguyBerteau/agt/utilities/rem"
	"github.com/TanguyBerteau/agt/utilities/sub"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/policyinsights/armpolicyinsights"
)

// remediationCandidate is one policy assignment to remediate on one subscription
type remediationCandidate struct {
	subscriptionID        string
	policyAssignmentID    string
	nonCompliantResources int
}

// Remediate creates one remediation task per non compliant policy assignment on every enabled subscription
// confirmReader answers the confirmation prompt, autoApprove skips it
func Remediate(global *Global, confirmReader io.Reader, autoApprove bool) (err error) {
	start := time.Now()
	subscriptionIDs, displayNames, err := sub.ListEnabledSubscriptions(global.ctx, global.subscriptionsClient)
	if err != nil {
		log.Println(logging.Entry{
			TaskName:    "remediate",
			Environment: global.environment,
			Severity:    "CRITICAL",
			Message:     "subscriptions_unavailable",
			Description: fmt.Sprintf("sub.ListEnabledSubscriptions %v", err),
			InitID:      global.initID,
		})
		return err
	}

	var candidates []remediationCandidate
	for _, subscriptionID := range subscriptionIDs {
		policyStates, err := pol.ListNonCompliantStates(global.ctx, global.policyStatesClient, subscriptionID)
		if err != nil {
			log.Println(logging.Entry{
				TaskName:       "remediate",
				Environment:    global.environment,
				Severity:       "WARNING",
				Message:        "subscription_skipped",
				Description:    fmt.Sprintf("pol.ListNonCompliantStates %v", err),
				InitID:         global.initID,
				SubscriptionID: subscriptionID,
			})
			continue
		}
		policyAssignmentIDs, countByPolicyAssignmentID := pol.GroupByPolicyAssignment(policyStates)
		for _, policyAssignmentID := range policyAssignmentIDs {
			candidates = append(candidates, remediationCandidate{
				subscriptionID:        subscriptionID,
				policyAssignmentID:    policyAssignmentID,
				nonCompliantResources: countByPolicyAssignmentID[policyAssignmentID],
			})
			log.Println(logging.Entry{
				TaskName:       "remediate",
				Environment:    global.environment,
				Severity:       "INFO",
				Message:        "remediation_candidate",
				Description:    fmt.Sprintf("%s %s %d non compliant resources", displayNames[subscriptionID], policyAssignmentID, countByPolicyAssignmentID[policyAssignmentID]),
				InitID:         global.initID,
				SubscriptionID: subscriptionID,
			})
		}
	}
	if len(candidates) == 0 {
		log.Println(logging.Entry{
			TaskName:       "remediate",
			Environment:    global.environment,
			Severity:       "NOTICE",
			Message:        "finish",
			Description:    fmt.Sprintf("no non compliant policy assignment on %d subscriptions, nothing to remediate", len(subscriptionIDs)),
			InitID:         global.initID,
			LatencySeconds: time.Since(start).Seconds(),
		})
		return nil
	}

	if !autoApprove {
		confirmed, err := ask.Confirm(confirmReader, fmt.Sprintf("Create %d remediation tasks across %d subscriptions", len(candidates), len(subscriptionIDs)))
		if err != nil {
			return err
		}
		if !confirmed {
			log.Println(logging.Entry{
				TaskName:    "remediate",
				Environment: global.environment,
				Severity:    "NOTICE",
				Message:     "aborted_by_user",
				InitID:      global.initID,
			})
			return nil
		}
	}

	remediationsClients := make(map[string]*armpolicyinsights.RemediationsClient)
	createdCount := 0
	for _, candidate := range candidates {
		remediationsClient, ok := remediationsClients[candidate.subscriptionID]
		if !ok {
			remediationsClient, err = armpolicyinsights.NewRemediationsClient(candidate.subscriptionID, global.credential, nil)
			if err != nil {
				log.Println(logging.Entry{
					TaskName:       "remediate",
					Environment:    global.environment,
					Severity:       "WARNING",
					Message:        "remediation_failed",
					Description:    fmt.Sprintf("armpolicyinsights.NewRemediationsClient %v", err),
					InitID:         global.initID,
					SubscriptionID: candidate.subscriptionID,
				})
				continue
			}
			remediationsClients[candidate.subscriptionID] = remediationsClient
		}
		remediationName := rem.MakeRemediationName(candidate.policyAssignmentID)
		err = createRemediation(global, remediationsClient, remediationName, candidate.policyAssignmentID)
		if err != nil {
			log.Println(logging.Entry{
				TaskName:       "remediate",
				Environment:    global.environment,
				Severity:       "WARNING",
				Message:        "remediation_failed",
				Description:    fmt.Sprintf("rem.CreateRemediation %s %v", candidate.policyAssignmentID, err),
				InitID:         global.initID,
				SubscriptionID: candidate.subscriptionID,
			})
			continue
		}
		createdCount++
		log.Println(logging.Entry{
			TaskName:       "remediate",
			Environment:    global.environment,
			Severity:       "NOTICE",
			Message:        "remediation_created",
			Description:    fmt.Sprintf("%s for %s", remediationName, candidate.policyAssignmentID),
			InitID:         global.initID,
			SubscriptionID: candidate.subscriptionID,
		})
	}

	log.Println(logging.Entry{
		TaskName:       "remediate",
		Environment:    global.environment,
		Severity:       "NOTICE",
		Message:        "finish",
		Description:    fmt.Sprintf("%d of %d remediation tasks created", createdCount, len(candidates)),
		InitID:         global.initID,
		LatencySeconds: time.Since(start).Seconds(),
	})
	return nil
}

func createRemediation(global *Global, remediationsClient *armpolicyinsights.RemediationsClient, remediationName string, policyAssignmentID string) (err error) {
	deadline := time.Now().Add(time.Duration(global.retryTimeOutSeconds) * time.Second)
	for {
		err = rem.CreateRemediation(global.ctx, remediationsClient, remediationName, policyAssignmentID, global.resourceDiscoveryMode)
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
