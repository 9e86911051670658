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

// GetWAFPolicy fetches one web application firewall policy
func GetWAFPolicy(ctx context.Context, wafPoliciesClient *armnetwork.WebApplicationFirewallPoliciesClient, resourceGroupName string, policyName string) (policy armnetwork.WebApplicationFirewallPolicy, err error) {
	resp, err := wafPoliciesClient.Get(ctx, resourceGroupName, policyName, nil)
	if err != nil {
		return policy, err
	}
	return resp.WebApplicationFirewallPolicy, nil
}
