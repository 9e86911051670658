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

package aut

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

// GetCredential returns a token credential from the default chain: environment, managed identity, then az cli
// tenantID restricts the az cli leg of the chain, empty string means the cli default tenant
func GetCredential(tenantID string) (credential azcore.TokenCredential, err error) {
	options := azidentity.DefaultAzureCredentialOptions{}
	if tenantID != "" {
		options.TenantID = tenantID
	}
	credential, err = azidentity.NewDefaultAzureCredential(&options)
	if err != nil {
		return nil, fmt.Errorf("azidentity.NewDefaultAzureCredential %v", err)
	}
	return credential, nil
}
