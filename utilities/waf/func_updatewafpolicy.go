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

package waf

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v4"
)

// UpdateWAFPolicy writes the policy back, the whole policy is sent as the API has no patch on exclusions
func UpdateWAFPolicy(ctx context.Context, wafPoliciesClient *armnetwork.WebApplicationFirewallPoliciesClient, resourceGroupName string, policyName string, policy armnetwork.WebApplicationFirewallPolicy) (err error) {
	_, err = wafPoliciesClient.CreateOrUpdate(ctx, resourceGroupName, policyName, policy, nil)
	if err != nil {
		return err
	}
	return nil
}
