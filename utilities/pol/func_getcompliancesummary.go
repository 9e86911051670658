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

package pol

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/policyinsights/armpolicyinsights"
)

// GetComplianceSummary summarizes the latest policy states of one subscription
func GetComplianceSummary(ctx context.Context, policyStatesClient *armpolicyinsights.PolicyStatesClient, subscriptionID string) (complianceSummary ComplianceSummary, err error) {
	response, err := policyStatesClient.SummarizeForSubscription(ctx,
		armpolicyinsights.PolicyStatesSummaryResourceTypeLatest,
		subscriptionID,
		nil,
		nil)
	if err != nil {
		return complianceSummary, err
	}
	return MakeComplianceSummary(subscriptionID, response.SummarizeResults), nil
}
