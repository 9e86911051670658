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

package validateroles

import (
	"context"
	"fmt"
	"log"

	"github.com/TanguyBerteau/agt/utilities/logging"
	"github.com/TanguyBerteau/agt/utilities/solution"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
)

// Global structure for global variables
type Global struct {
	ctx                              context.Context
	environment                      string
	initID                           string
	providerOperationsMetadataClient *armauthorization.ProviderOperationsMetadataClient
	reportFolderPath                 string
	reportFormat                     string
	retryTimeOutSeconds              int64
	roleDefinitionsClient            *armauthorization.RoleDefinitionsClient
	scope                            string
}

// Initialize builds the API clients and situates the task on the target subscription
func Initialize(ctx context.Context, global *Global, credential azcore.TokenCredential, settings *solution.Settings, environment string, initID string) (err error) {
	global.ctx = ctx
	global.environment = environment
	global.initID = initID
	global.retryTimeOutSeconds = settings.RetryTimeOutSeconds
	global.scope = "/subscriptions/" + settings.Hosting.SubscriptionID
	global.reportFolderPath = settings.Reporting.FolderPath
	global.reportFormat = settings.Reporting.Format

	global.roleDefinitionsClient, err = armauthorization.NewRoleDefinitionsClient(credential, nil)
	if err != nil {
		log.Println(logging.Entry{
			TaskName:    "validateroles",
			Environment: global.environment,
			Severity:    "CRITICAL",
			Message:     "init_failed",
			Description: fmt.Sprintf("armauthorization.NewRoleDefinitionsClient %v", err),
			InitID:      global.initID,
		})
		return err
	}
	global.providerOperationsMetadataClient, err = armauthorization.NewProviderOperationsMetadataClient(credential, nil)
	if err != nil {
		log.Println(logging.Entry{
			TaskName:    "validateroles",
			Environment: global.environment,
			Severity:    "CRITICAL",
			Message:     "init_failed",
			Description: fmt.Sprintf("armauthorization.NewProviderOperationsMetadataClient %v", err),
			InitID:      global.initID,
		})
		return err
	}
	return nil
}
