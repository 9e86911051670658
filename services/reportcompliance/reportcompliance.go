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

package reportcompliance

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/TanguyBerteau/agt/utilities/erm"
	"github.com/TanguyBerteau/agt/utilities/ffo"
	"github.com/TanguyBerteau/agt/utilities/logging"
	"github.com/TanguyBerteau/agt/utilities/pol"
	"github.com/TanguyBerteau/agt/utilities/str"
	"github.com/TanguyBerteau/agt/utilities/sub"
)

// ReportCompliance fetches the policy compliance summary of every enabled subscription
func ReportCompliance(global *Global) (err error) {
	start := time.Now()
	subscriptionIDs, displayNames, err := sub.ListEnabledSubscriptions(global.ctx, global.subscriptionsClient)
	if err != nil {
		log.Println(logging.Entry{
			TaskName:    "reportcompliance",
			Environment: global.environment,
			Severity:    "CRITICAL",
			Message:     "subscriptions_unavailable",
			Description: fmt.Sprintf("sub.ListEnabledSubscriptions %v", err),
			InitID:      global.initID,
		})
		return err
	}
	log.Println(logging.Entry{
		TaskName:    "reportcompliance",
		Environment: global.environment,
		Severity:    "NOTICE",
		Message:     "subscriptions_listed",
		Description: fmt.Sprintf("%d enabled subscriptions %s", len(subscriptionIDs), str.FlattenMapStringString(displayNames)),
		InitID:      global.initID,
	})

	var complianceSummaries []pol.ComplianceSummary
	for _, subscriptionID := range subscriptionIDs {
		complianceSummary, err := getComplianceSummary(global, subscriptionID)
		if err != nil {
			log.Println(logging.Entry{
				TaskName:       "reportcompliance",
				Environment:    global.environment,
				Severity:       "WARNING",
				Message:        "summary_skipped",
				Description:    fmt.Sprintf("pol.GetComplianceSummary %v", err),
				InitID:         global.initID,
				SubscriptionID: subscriptionID,
			})
			continue
		}
		complianceSummaries = append(complianceSummaries, complianceSummary)
		severity := "INFO"
		message := "subscription_compliant"
		if !complianceSummary.IsCompliant() {
			severity = "WARNING"
			message = "subscription_not_compliant"
		}
		log.Println(logging.Entry{
			TaskName:       "reportcompliance",
			Environment:    global.environment,
			Severity:       severity,
			Message:        message,
			Description:    fmt.Sprintf("%s %d non compliant resources on %d policies", displayNames[subscriptionID], complianceSummary.NonCompliantResources, complianceSummary.NonCompliantPolicies),
			InitID:         global.initID,
			SubscriptionID: subscriptionID,
		})
	}

	if global.reportFormat == "csv" || global.reportFormat == "both" {
		ffo.CheckPath(global.reportFolderPath)
		reportPath := filepath.Join(global.reportFolderPath, fmt.Sprintf("compliance_summaries_%s.csv", global.environment))
		err = ffo.WriteCSV(reportPath, makeReportRecords(complianceSummaries, displayNames))
		if err != nil {
			log.Println(logging.Entry{
				TaskName:    "reportcompliance",
				Environment: global.environment,
				Severity:    "CRITICAL",
				Message:     "report_write_failed",
				Description: fmt.Sprintf("ffo.WriteCSV %s %v", reportPath, err),
				InitID:      global.initID,
			})
			return err
		}
		log.Println(logging.Entry{
			TaskName:    "reportcompliance",
			Environment: global.environment,
			Severity:    "NOTICE",
			Message:     "report_written",
			Description: reportPath,
			InitID:      global.initID,
		})
	}

	log.Println(logging.Entry{
		TaskName:       "reportcompliance",
		Environment:    global.environment,
		Severity:       "NOTICE",
		Message:        "finish",
		Description:    fmt.Sprintf("%d of %d subscriptions summarized", len(complianceSummaries), len(subscriptionIDs)),
		InitID:         global.initID,
		LatencySeconds: time.Since(start).Seconds(),
	})
	return nil
}

func getComplianceSummary(global *Global, subscriptionID string) (complianceSummary pol.ComplianceSummary, err error) {
	deadline := time.Now().Add(time.Duration(global.retryTimeOutSeconds) * time.Second)
	for {
		complianceSummary, err = pol.GetComplianceSummary(global.ctx, global.policyStatesClient, subscriptionID)
		if err == nil {
			return complianceSummary, nil
		}
		if erm.IsNotTransientElseWait(err, 5) {
			return complianceSummary, err
		}
		if time.Now().After(deadline) {
			return complianceSummary, err
		}
	}
}
