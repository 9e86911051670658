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
	"testing"

	"github.com/TanguyBerteau/agt/utilities/act"
	"github.com/TanguyBerteau/agt/utilities/rol"
)

func TestUnitValidateRole(t *testing.T) {
	catalog := act.MakeOperationCatalog([]string{
		"Microsoft.Compute/virtualMachines/read",
		"Microsoft.Compute/virtualMachines/start/action",
		"Microsoft.Storage/storageAccounts/blobServices/containers/read",
	})
	roleDefinition := rol.RoleDefinition{
		RoleName: "vm operator",
		RoleType: "CustomRole",
		Actions: []string{
			"Microsoft.Compute/virtualMachines/*",
			"Microsoft.Compute/virtualMachines/reboot/action",
		},
		NotActions:  []string{"Microsoft.Compute/virtualMachines/start/action"},
		DataActions: []string{"Microsoft.Storage/storageAccounts/blobServices/containers/read"},
	}

	validation, err := validateRole(roleDefinition, catalog)
	if err != nil {
		t.Fatalf("Should not return an error and got %v", err)
	}
	if len(validation.facets) != 4 {
		t.Fatalf("Facets count want 4 got %d", len(validation.facets))
	}
	if validation.isValid() {
		t.Errorf("Role carries an unregistered pattern and should not be valid")
	}
	if validation.invalidPatternCount() != 1 {
		t.Errorf("Invalid pattern count want 1 got %d", validation.invalidPatternCount())
	}
	actionsFacet := validation.facets[0]
	if actionsFacet.facet != "Actions" {
		t.Errorf("First facet want Actions got %s", actionsFacet.facet)
	}
	if len(actionsFacet.result.ValidPatterns) != 1 || actionsFacet.result.ValidPatterns[0] != "Microsoft.Compute/virtualMachines/*" {
		t.Errorf("Actions valid patterns got %v", actionsFacet.result.ValidPatterns)
	}
	if len(actionsFacet.result.InvalidPatterns) != 1 || actionsFacet.result.InvalidPatterns[0] != "Microsoft.Compute/virtualMachines/reboot/action" {
		t.Errorf("Actions invalid patterns got %v", actionsFacet.result.InvalidPatterns)
	}
	// empty facets are valid
	if !validation.facets[3].result.IsValid() {
		t.Errorf("Empty NotDataActions facet should be valid")
	}
}
