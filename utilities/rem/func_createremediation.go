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
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/policyinsights/armpolicyinsights"
)

// CreateRemediation creates a remediation task for one policy assignment at subscription scope
// resourceDiscoveryMode accepts ReEvaluateCompliance, anything else falls back to ExistingNonCompliant
func CreateRemediation(ctx context.Context, remediationsClient *armpolicyinsights.RemediationsClient, remediationName string, policyAssignmentID string, resourceDiscoveryMode string) (err error) {
	discoveryMode := armpolicyinsights.ResourceDiscoveryModeExistingNonCompliant
	if resourceDiscoveryMode == string(armpolicyinsights.ResourceDiscoveryModeReEvaluateCompliance) {
		discoveryMode = armpolicyinsights.ResourceDiscoveryModeReEvaluateCompliance
	}
	remediation := armpolicyinsights.Remediation{
		Properties: &armpolicyinsights.RemediationProperties{
			PolicyAssignmentID:    to.Ptr(policyAssignmentID),
			ResourceDiscoveryMode: to.Ptr(discoveryMode),
		},
	}
	_, err = remediationsClient.CreateOrUpdateAtSubscription(ctx, remediationName, remediation, nil)
	if err != nil {
		return err
	}
	return nil
}
