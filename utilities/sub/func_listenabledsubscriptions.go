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

package sub

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

// ListEnabledSubscriptions returns the ids of the enabled subscriptions visible to the caller, and their display names by id
func ListEnabledSubscriptions(ctx context.Context, subscriptionsClient *armsubscriptions.Client) (subscriptionIDs []string, displayNames map[string]string, err error) {
	displayNames = make(map[string]string)
	pager := subscriptionsClient.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, nil, err
		}
		for _, subscription := range page.Value {
			if subscription.SubscriptionID == nil {
				continue
			}
			if subscription.State != nil && *subscription.State != armsubscriptions.SubscriptionStateEnabled {
				continue
			}
			subscriptionIDs = append(subscriptionIDs, *subscription.SubscriptionID)
			if subscription.DisplayName != nil {
				displayNames[*subscription.SubscriptionID] = *subscription.DisplayName
			}
		}
	}
	return subscriptionIDs, displayNames, nil
}
