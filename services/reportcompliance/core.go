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
	"context"
	"fmt"
	"log"

	"github.com/TanguyBerteau/agt/utilities/logging"
	"github.com/TanguyBerteau/agt/utilities/solution"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/policyinsights/armpolicyinsights"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

// Global structure for global variables
type Global struct {
	ctx                 context.Context
	environment         string
	initID              string
	policyStatesClient  *armpolicyinsights.PolicyStatesClient
	reportFolderPath    string
	reportFormat        string
	retryTimeOutSeconds int64
	subscriptionsClient *armsubscriptions.Client
}

// Initialize builds the API clients used to browse subscriptions and their compliance states
func Initialize(ctx context.Context, global *Global, credential azcore.TokenCredential, settings *solution.Settings, environment string, initID string) (err error) {
	global.ctx = ctx
	global.environment = environment
	global.initID = initID
	global.retryTimeOutSeconds = settings.RetryTimeOutSeconds
	global.reportFolderPath = settings.Reporting.FolderPath
	global.reportFormat = settings.Reporting.Format

	global.subscriptionsClient, err = armsubscriptions.NewClient(credential, nil)
	if err != nil {
		log.Println(logging.Entry{
			TaskName:    "reportcompliance",
			Environment: global.environment,
			Severity:    "CRITICAL",
			Message:     "init_failed",
			Description: fmt.Sprintf("armsubscriptions.NewClient %v", err),
			InitID:      global.initID,
		})
		return err
	}
	global.policyStatesClient, err = armpolicyinsights.NewPolicyStatesClient(credential, nil)
	if err != nil {
		log.Println(logging.Entry{
			TaskName:    "reportcompliance",
			Environment: global.environment,
			Severity:    "CRITICAL",
			Message:     "init_failed",
			Description: fmt.Sprintf("armpolicyinsights.NewPolicyStatesClient %v", err),
			InitID:      global.initID,
		})
		return err
	}
	return nil
}
