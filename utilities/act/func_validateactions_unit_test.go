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

package act

import (
	"testing"
)

func TestUnitValidateActions(t *testing.T) {
	catalog := MakeOperationCatalog([]string{
		"Microsoft.Compute/virtualMachines/read",
		"Microsoft.Compute/virtualMachines/write",
	})
	var tests = []struct {
		name                string
		patterns            []string
		wantValidPatterns   []string
		wantInvalidPatterns []string
		wantIsValid         bool
	}{
		{
			// no short circuit: the pattern after the first invalid one is still classified
			name: "mixedVerdicts",
			patterns: []string{
				"Microsoft.Compute/virtualMachines/read",
				"Microsoft.Compute/*",
				"Microsoft.Storage/*",
				"Microsoft.Compute/virtualMachines/delete",
			},
			wantValidPatterns:   []string{"Microsoft.Compute/virtualMachines/read", "Microsoft.Compute/*"},
			wantInvalidPatterns: []string{"Microsoft.Storage/*", "Microsoft.Compute/virtualMachines/delete"},
			wantIsValid:         false,
		},
		{
			name:              "allValid",
			patterns:          []string{"*", "Microsoft.Compute/virtualMachines/write"},
			wantValidPatterns: []string{"*", "Microsoft.Compute/virtualMachines/write"},
			wantIsValid:       true,
		},
		{
			name:        "emptyList",
			patterns:    []string{},
			wantIsValid: true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			validationResult, err := ValidateActions(test.patterns, catalog)
			if err != nil {
				t.Fatalf("Did not expect an error and got %s", err.Error())
			}
			if len(validationResult.ValidPatterns) != len(test.wantValidPatterns) {
				t.Errorf("Want %d valid patterns got %d", len(test.wantValidPatterns), len(validationResult.ValidPatterns))
			}
			for i, wantPattern := range test.wantValidPatterns {
				if validationResult.ValidPatterns[i] != wantPattern {
					t.Errorf("Valid pattern %d want %s got %s", i, wantPattern, validationResult.ValidPatterns[i])
				}
			}
			if len(validationResult.InvalidPatterns) != len(test.wantInvalidPatterns) {
				t.Errorf("Want %d invalid patterns got %d", len(test.wantInvalidPatterns), len(validationResult.InvalidPatterns))
			}
			for i, wantPattern := range test.wantInvalidPatterns {
				if validationResult.InvalidPatterns[i] != wantPattern {
					t.Errorf("Invalid pattern %d want %s got %s", i, wantPattern, validationResult.InvalidPatterns[i])
				}
			}
			if validationResult.IsValid() != test.wantIsValid {
				t.Errorf("IsValid want %v got %v", test.wantIsValid, validationResult.IsValid())
			}
		})
	}
}

func TestUnitValidateActionsFailsFastOnMalformedInput(t *testing.T) {
	catalog := MakeOperationCatalog([]string{"Microsoft.Compute/virtualMachines/read"})
	_, err := ValidateActions([]string{"Microsoft.Compute/virtualMachines/read", ""}, catalog)
	if err == nil {
		t.Errorf("Expect an invalid argument error on an empty pattern did not get it")
	}
}

func TestUnitMakeOperationCatalog(t *testing.T) {
	catalog := MakeOperationCatalog([]string{
		"Microsoft.Compute/virtualMachines/read",
		"Microsoft.Compute/virtualMachines/read",
		"",
		"Microsoft.Compute/virtualMachines/write",
	})
	if catalog.Size() != 2 {
		t.Errorf("Size want 2 got %d", catalog.Size())
	}
	operationIDs := catalog.OperationIDs()
	if operationIDs[0] != "Microsoft.Compute/virtualMachines/read" {
		t.Errorf("First operation id want the first inserted got %s", operationIDs[0])
	}
	if catalog.Contains("") {
		t.Errorf("Empty string should have been discarded at build time")
	}
}
