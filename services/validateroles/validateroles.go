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
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/TanguyBerteau/agt/utilities/act"
	"github.com/TanguyBerteau/agt/utilities/erm"
	"github.com/TanguyBerteau/agt/utilities/ffo"
	"github.com/TanguyBerteau/agt/utilities/logging"
	"github.com/TanguyBerteau/agt/utilities/ops"
	"github.com/TanguyBerteau/agt/utilities/rol"
)

// ValidateRoles checks action patterns of custom role definitions against the provider operation catalog
// When roleName is empty every custom role on the scope is checked, else only the named one
func ValidateRoles(global *Global, roleName string) (err error) {
	start := time.Now()
	catalog, err := listOperationCatalog(global)
	if err != nil {
		log.Println(logging.Entry{
			TaskName:    "validateroles",
			Environment: global.environment,
			Severity:    "CRITICAL",
			Message:     "operation_catalog_unavailable",
			Description: fmt.Sprintf("ops.ListProviderOperations %v", err),
			InitID:      global.initID,
		})
		return err
	}
	log.Println(logging.Entry{
		TaskName:    "validateroles",
		Environment: global.environment,
		Severity:    "NOTICE",
		Message:     "operation_catalog_loaded",
		Description: fmt.Sprintf("%d operations", catalog.Size()),
		InitID:      global.initID,
	})

	var roleDefinitions []rol.RoleDefinition
	if roleName != "" {
		roleDefinition, err := rol.GetRoleDefinition(global.ctx, global.roleDefinitionsClient, global.scope, roleName)
		if err != nil {
			log.Println(logging.Entry{
				TaskName:    "validateroles",
				Environment: global.environment,
				Severity:    "CRITICAL",
				Message:     "role_definition_not_found",
				Description: fmt.Sprintf("rol.GetRoleDefinition %s %v", roleName, err),
				InitID:      global.initID,
			})
			return err
		}
		roleDefinitions = append(roleDefinitions, roleDefinition)
	} else {
		roleDefinitions, err = rol.ListCustomRoleDefinitions(global.ctx, global.roleDefinitionsClient, global.scope)
		if err != nil {
			log.Println(logging.Entry{
				TaskName:    "validateroles",
				Environment: global.environment,
				Severity:    "CRITICAL",
				Message:     "role_definitions_unavailable",
				Description: fmt.Sprintf("rol.ListCustomRoleDefinitions %v", err),
				InitID:      global.initID,
			})
			return err
		}
	}

	var validations []roleValidation
	invalidRoleCount := 0
	for _, roleDefinition := range roleDefinitions {
		validation, err := validateRole(roleDefinition, catalog)
		if err != nil {
			// a malformed role is a finding, not a reason to stop the run
			log.Println(logging.Entry{
				TaskName:    "validateroles",
				Environment: global.environment,
				Severity:    "WARNING",
				Message:     "role_validation_skipped",
				Description: fmt.Sprintf("%s %v", roleDefinition.RoleName, err),
				InitID:      global.initID,
			})
			continue
		}
		validations = append(validations, validation)
		if validation.isValid() {
			log.Println(logging.Entry{
				TaskName:    "validateroles",
				Environment: global.environment,
				Severity:    "INFO",
				Message:     "role_valid",
				Description: validation.roleName,
				InitID:      global.initID,
			})
		} else {
			invalidRoleCount++
			for _, facet := range validation.facets {
				for _, pattern := range facet.result.InvalidPatterns {
					log.Println(logging.Entry{
						TaskName:    "validateroles",
						Environment: global.environment,
						Severity:    "WARNING",
						Message:     "invalid_action_pattern",
						Description: fmt.Sprintf("%s %s %s", validation.roleName, facet.facet, pattern),
						InitID:      global.initID,
					})
				}
			}
		}
	}

	if global.reportFormat == "csv" || global.reportFormat == "both" {
		ffo.CheckPath(global.reportFolderPath)
		reportPath := filepath.Join(global.reportFolderPath, fmt.Sprintf("role_validations_%s.csv", global.environment))
		err = ffo.WriteCSV(reportPath, makeReportRecords(validations))
		if err != nil {
			log.Println(logging.Entry{
				TaskName:    "validateroles",
				Environment: global.environment,
				Severity:    "CRITICAL",
				Message:     "report_write_failed",
				Description: fmt.Sprintf("ffo.WriteCSV %s %v", reportPath, err),
				InitID:      global.initID,
			})
			return err
		}
		log.Println(logging.Entry{
			TaskName:    "validateroles",
			Environment: global.environment,
			Severity:    "NOTICE",
			Message:     "report_written",
			Description: reportPath,
			InitID:      global.initID,
		})
	}

	log.Println(logging.Entry{
		TaskName:       "validateroles",
		Environment:    global.environment,
		Severity:       "NOTICE",
		Message:        "finish",
		Description:    fmt.Sprintf("%d roles checked, %d with invalid patterns", len(validations), invalidRoleCount),
		InitID:         global.initID,
		LatencySeconds: time.Since(start).Seconds(),
	})
	return nil
}

// listOperationCatalog retries the catalog load on transient API answers until the timeout runs out
func listOperationCatalog(global *Global) (catalog act.OperationCatalog, err error) {
	deadline := time.Now().Add(time.Duration(global.retryTimeOutSeconds) * time.Second)
	for {
		catalog, err = ops.ListProviderOperations(global.ctx, global.providerOperationsMetadataClient)
		if err == nil {
			return catalog, nil
		}
		if erm.IsNotTransientElseWait(err, 5) {
			return catalog, err
		}
		if time.Now().After(deadline) {
			return catalog, err
		}
	}
}
