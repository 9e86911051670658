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

package agtcli

import (
	"fmt"
	"log"

	"github.com/TanguyBerteau/agt/utilities/aut"
	"github.com/TanguyBerteau/agt/utilities/ffo"
	"github.com/TanguyBerteau/agt/utilities/logging"
	"github.com/TanguyBerteau/agt/utilities/solution"
	"github.com/TanguyBerteau/agt/utilities/validater"
)

// initialize loads and situates the solution settings then builds the credential, crashes execution on errors
func (execution *Execution) initialize() {
	var err error
	execution.goVersion, execution.agtVersion, err = getVersions(execution.repositoryPath)
	if err != nil {
		log.Fatalln(logging.Entry{
			TaskName:    "agtcli",
			Environment: execution.environmentName,
			Severity:    "CRITICAL",
			Message:     "init_failed",
			Description: fmt.Sprintf("getVersions %v", err),
			InitID:      execution.initID,
		})
	}

	settingsPath := execution.repositoryPath + "/" + solution.SettingsFileName
	err = ffo.ReadUnmarshalYAML(settingsPath, &execution.settings)
	if err != nil {
		log.Fatalln(logging.Entry{
			TaskName:    "agtcli",
			Environment: execution.environmentName,
			Severity:    "CRITICAL",
			Message:     "init_failed",
			Description: fmt.Sprintf("ffo.ReadUnmarshalYAML %s %v", settingsPath, err),
			InitID:      execution.initID,
		})
	}
	err = validater.ValidateStruct(&execution.settings, "settings")
	if err != nil {
		log.Fatalln(logging.Entry{
			TaskName:    "agtcli",
			Environment: execution.environmentName,
			Severity:    "CRITICAL",
			Message:     "init_failed",
			Description: fmt.Sprintf("validater.ValidateStruct %v", err),
			InitID:      execution.initID,
		})
	}
	execution.settings.Situate(execution.environmentName)
	if execution.settings.Hosting.SubscriptionID == "" {
		log.Fatalln(logging.Entry{
			TaskName:    "agtcli",
			Environment: execution.environmentName,
			Severity:    "CRITICAL",
			Message:     "init_failed",
			Description: fmt.Sprintf("no subscriptionID for environment %s in %s", execution.environmentName, solution.SettingsFileName),
			InitID:      execution.initID,
		})
	}

	execution.credential, err = aut.GetCredential(execution.settings.Hosting.TenantID)
	if err != nil {
		log.Fatalln(logging.Entry{
			TaskName:    "agtcli",
			Environment: execution.environmentName,
			Severity:    "CRITICAL",
			Message:     "init_failed",
			Description: fmt.Sprintf("aut.GetCredential %v", err),
			InitID:      execution.initID,
		})
	}

	log.Println(logging.Entry{
		TaskName:    "agtcli",
		Environment: execution.environmentName,
		Severity:    "NOTICE",
		Message:     "coldstart",
		Description: fmt.Sprintf("agt %s on go %s", execution.agtVersion, execution.goVersion),
		InitID:      execution.initID,
	})
}
