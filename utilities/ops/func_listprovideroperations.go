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

package ops

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
	"github.com/TanguyBerteau/agt/utilities/act"
)

// ListProviderOperations loads the full operation catalog: every registered operation of every
// resource provider, management and data actions alike, resource type operations flattened in
// MakeOperationCatalog discards the duplicates some providers declare at both levels
func ListProviderOperations(ctx context.Context, providerOperationsMetadataClient *armauthorization.ProviderOperationsMetadataClient) (catalog act.OperationCatalog, err error) {
	var operationIDs []string
	pager := providerOperationsMetadataClient.NewListPager(&armauthorization.ProviderOperationsMetadataClientListOptions{
		Expand: to.Ptr("resourceTypes"),
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return catalog, err
		}
		for _, providerOperationsMetadata := range page.Value {
			if providerOperationsMetadata == nil {
				continue
			}
			for _, operation := range providerOperationsMetadata.Operations {
				if operation != nil && operation.Name != nil {
					operationIDs = append(operationIDs, *operation.Name)
				}
			}
			for _, resourceType := range providerOperationsMetadata.ResourceTypes {
				if resourceType == nil {
					continue
				}
				for _, operation := range resourceType.Operations {
					if operation != nil && operation.Name != nil {
						operationIDs = append(operationIDs, *operation.Name)
					}
				}
			}
		}
	}
	return act.MakeOperationCatalog(operationIDs), nil
}
